// Copyright 2024 The gqlkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "fmt"

// SlotKind distinguishes a single optional child from an ordered sequence.
type SlotKind int

const (
	SlotSingle SlotKind = iota
	SlotList
)

// SlotSpec names one child-bearing slot of a node kind and its cardinality.
type SlotSpec struct {
	Name string
	Kind SlotKind
}

// Key is the position of a child within its parent: a slot name for a
// single-child slot, or an index into a sequence slot.
type Key struct {
	name    string
	index   int
	isIndex bool
}

// SlotKey builds a Key addressing a single-child slot.
func SlotKey(name string) Key { return Key{name: name} }

// IndexKey builds a Key addressing position i of a sequence slot. Callers
// must separately track which slot the sequence belongs to; IndexKey alone
// identifies only the position within it.
func IndexKey(i int) Key { return Key{index: i, isIndex: true} }

// IsIndex reports whether the Key addresses a sequence position.
func (k Key) IsIndex() bool { return k.isIndex }

// Index returns the sequence position; only meaningful if IsIndex is true.
func (k Key) Index() int { return k.index }

// Name returns the slot name; only meaningful if IsIndex is false.
func (k Key) Name() string { return k.name }

func (k Key) String() string {
	if k.isIndex {
		return fmt.Sprintf("%d", k.index)
	}
	return k.name
}

// visitOrder is the registry: for each Kind, the ordered list of
// child-bearing slots that participate in traversal. Leaf scalar fields
// (Value, Operation, Block, ...) are never listed here.
var visitOrder = map[Kind][]SlotSpec{
	KindDocument: {
		{"Definitions", SlotList},
	},
	KindOperationDefinition: {
		{"Name", SlotSingle},
		{"VariableDefinitions", SlotList},
		{"Directives", SlotList},
		{"SelectionSet", SlotSingle},
	},
	KindVariableDefinition: {
		{"Variable", SlotSingle},
		{"Type", SlotSingle},
		{"DefaultValue", SlotSingle},
	},
	KindVariable: {
		{"Name", SlotSingle},
	},
	KindSelectionSet: {
		{"Selections", SlotList},
	},
	KindField: {
		{"Alias", SlotSingle},
		{"Name", SlotSingle},
		{"Arguments", SlotList},
		{"Directives", SlotList},
		{"SelectionSet", SlotSingle},
	},
	KindArgument: {
		{"Name", SlotSingle},
		{"Value", SlotSingle},
	},
	KindFragmentSpread: {
		{"Name", SlotSingle},
		{"Directives", SlotList},
	},
	KindInlineFragment: {
		{"TypeCondition", SlotSingle},
		{"Directives", SlotList},
		{"SelectionSet", SlotSingle},
	},
	KindFragmentDefinition: {
		{"Name", SlotSingle},
		{"TypeCondition", SlotSingle},
		{"Directives", SlotList},
		{"SelectionSet", SlotSingle},
	},
	KindNamedType: {
		{"Name", SlotSingle},
	},
	KindListType: {
		{"Type", SlotSingle},
	},
	KindNonNullType: {
		{"Type", SlotSingle},
	},
	KindDirective: {
		{"Name", SlotSingle},
		{"Arguments", SlotList},
	},
	KindName:         {},
	KindIntValue:     {},
	KindFloatValue:   {},
	KindStringValue:  {},
	KindBooleanValue: {},
	KindNullValue:    {},
	KindEnumValue:    {},
	KindListValue: {
		{"Values", SlotList},
	},
	KindObjectValue: {
		{"Fields", SlotList},
	},
	KindObjectField: {
		{"Name", SlotSingle},
		{"Value", SlotSingle},
	},
	KindSchemaDefinition: {
		{"OperationTypes", SlotList},
	},
	KindOperationTypeDefinition: {
		{"Type", SlotSingle},
	},
	KindScalarDefinition: {
		{"Name", SlotSingle},
	},
	KindObjectDefinition: {
		{"Name", SlotSingle},
		{"Interfaces", SlotList},
		{"Fields", SlotList},
	},
	KindFieldDefinition: {
		{"Name", SlotSingle},
		{"Arguments", SlotList},
		{"Type", SlotSingle},
	},
	KindInputValueDefinition: {
		{"Name", SlotSingle},
		{"Type", SlotSingle},
		{"DefaultValue", SlotSingle},
	},
	KindInterfaceDefinition: {
		{"Name", SlotSingle},
		{"Fields", SlotList},
	},
	KindUnionDefinition: {
		{"Name", SlotSingle},
		{"Types", SlotList},
	},
	KindEnumDefinition: {
		{"Name", SlotSingle},
		{"Values", SlotList},
	},
	KindEnumValueDefinition: {
		{"Name", SlotSingle},
	},
	KindInputObjectDefinition: {
		{"Name", SlotSingle},
		{"Fields", SlotList},
	},
	KindDirectiveDefinition: {
		{"Name", SlotSingle},
		{"Arguments", SlotList},
		{"Locations", SlotList},
	},
}

// VisitOrder returns the ordered, child-bearing slots for kind k, or nil if
// k is not a registered kind.
func VisitOrder(k Kind) []SlotSpec {
	return visitOrder[k]
}

// KnownKind reports whether k is a member of the closed node-kind set.
func KnownKind(k Kind) bool {
	_, ok := visitOrder[k]
	return ok
}

// requiredSingleSlots names the single-child slots that must never resolve
// to an absent child on a well-formed node, per kind. Sequence slots are
// always optional (an empty sequence is well-formed); absent slots not
// listed here are also optional (e.g. Field.Alias, Field.SelectionSet,
// VariableDefinition.DefaultValue).
var requiredSingleSlots = map[Kind]map[string]bool{
	KindOperationDefinition: {"SelectionSet": true},
	KindVariableDefinition:  {"Variable": true, "Type": true},
	KindVariable:            {"Name": true},
	KindField:               {"Name": true},
	KindArgument:            {"Name": true, "Value": true},
	KindFragmentSpread:      {"Name": true},
	KindInlineFragment:      {"SelectionSet": true},
	KindFragmentDefinition:  {"Name": true, "TypeCondition": true, "SelectionSet": true},
	KindNamedType:           {"Name": true},
	KindListType:            {"Type": true},
	KindNonNullType:         {"Type": true},
	KindDirective:           {"Name": true},
	KindObjectField:         {"Name": true, "Value": true},
	KindOperationTypeDefinition: {"Type": true},
	KindScalarDefinition:        {"Name": true},
	KindObjectDefinition:        {"Name": true},
	KindFieldDefinition:         {"Name": true, "Type": true},
	KindInputValueDefinition:    {"Name": true, "Type": true},
	KindInterfaceDefinition:     {"Name": true},
	KindUnionDefinition:         {"Name": true},
	KindEnumDefinition:          {"Name": true},
	KindEnumValueDefinition:     {"Name": true},
	KindInputObjectDefinition:   {"Name": true},
	KindDirectiveDefinition:     {"Name": true},
}

// RequiredSingleSlot reports whether slot is a required (non-absent)
// single-child slot of kind k.
func RequiredSingleSlot(k Kind, slot string) bool {
	return requiredSingleSlots[k][slot]
}
