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

// GetChild returns the single-child value of slot on n, or nil if the slot
// is absent. ok is false if slot is not a single-child slot of n's kind.
func GetChild(n Node, slot string) (child Node, ok bool) {
	switch v := n.(type) {
	case *OperationDefinition:
		switch slot {
		case "Name":
			return v.Name, true
		case "SelectionSet":
			return v.SelectionSet, true
		}
	case *VariableDefinition:
		switch slot {
		case "Variable":
			return v.Variable, true
		case "Type":
			return v.Type, true
		case "DefaultValue":
			return v.DefaultValue, true
		}
	case *Variable:
		if slot == "Name" {
			return v.Name, true
		}
	case *Field:
		switch slot {
		case "Alias":
			return v.Alias, true
		case "Name":
			return v.Name, true
		case "SelectionSet":
			return v.SelectionSet, true
		}
	case *Argument:
		switch slot {
		case "Name":
			return v.Name, true
		case "Value":
			return v.Value, true
		}
	case *FragmentSpread:
		if slot == "Name" {
			return v.Name, true
		}
	case *InlineFragment:
		switch slot {
		case "TypeCondition":
			return v.TypeCondition, true
		case "SelectionSet":
			return v.SelectionSet, true
		}
	case *FragmentDefinition:
		switch slot {
		case "Name":
			return v.Name, true
		case "TypeCondition":
			return v.TypeCondition, true
		case "SelectionSet":
			return v.SelectionSet, true
		}
	case *NamedType:
		if slot == "Name" {
			return v.Name, true
		}
	case *ListType:
		if slot == "Type" {
			return v.Type, true
		}
	case *NonNullType:
		if slot == "Type" {
			return v.Type, true
		}
	case *Directive:
		if slot == "Name" {
			return v.Name, true
		}
	case *ObjectField:
		switch slot {
		case "Name":
			return v.Name, true
		case "Value":
			return v.Value, true
		}
	case *OperationTypeDefinition:
		if slot == "Type" {
			return v.Type, true
		}
	case *ScalarTypeDefinition:
		if slot == "Name" {
			return v.Name, true
		}
	case *ObjectTypeDefinition:
		if slot == "Name" {
			return v.Name, true
		}
	case *FieldDefinition:
		switch slot {
		case "Name":
			return v.Name, true
		case "Type":
			return v.Type, true
		}
	case *InputValueDefinition:
		switch slot {
		case "Name":
			return v.Name, true
		case "Type":
			return v.Type, true
		case "DefaultValue":
			return v.DefaultValue, true
		}
	case *InterfaceTypeDefinition:
		if slot == "Name" {
			return v.Name, true
		}
	case *UnionTypeDefinition:
		if slot == "Name" {
			return v.Name, true
		}
	case *EnumTypeDefinition:
		if slot == "Name" {
			return v.Name, true
		}
	case *EnumValueDefinition:
		if slot == "Name" {
			return v.Name, true
		}
	case *InputObjectTypeDefinition:
		if slot == "Name" {
			return v.Name, true
		}
	case *DirectiveDefinition:
		if slot == "Name" {
			return v.Name, true
		}
	}
	return nil, false
}

// GetChildren returns the sequence-slot value of slot on n. ok is false if
// slot is not a sequence slot of n's kind.
func GetChildren(n Node, slot string) (children []Node, ok bool) {
	switch v := n.(type) {
	case *Document:
		if slot == "Definitions" {
			return v.Definitions, true
		}
	case *OperationDefinition:
		switch slot {
		case "VariableDefinitions":
			return v.VariableDefinitions, true
		case "Directives":
			return v.Directives, true
		}
	case *SelectionSet:
		if slot == "Selections" {
			return v.Selections, true
		}
	case *Field:
		switch slot {
		case "Arguments":
			return v.Arguments, true
		case "Directives":
			return v.Directives, true
		}
	case *FragmentSpread:
		if slot == "Directives" {
			return v.Directives, true
		}
	case *InlineFragment:
		if slot == "Directives" {
			return v.Directives, true
		}
	case *FragmentDefinition:
		if slot == "Directives" {
			return v.Directives, true
		}
	case *Directive:
		if slot == "Arguments" {
			return v.Arguments, true
		}
	case *ListValue:
		if slot == "Values" {
			return v.Values, true
		}
	case *ObjectValue:
		if slot == "Fields" {
			return v.Fields, true
		}
	case *SchemaDefinition:
		if slot == "OperationTypes" {
			return v.OperationTypes, true
		}
	case *ObjectTypeDefinition:
		switch slot {
		case "Interfaces":
			return v.Interfaces, true
		case "Fields":
			return v.Fields, true
		}
	case *FieldDefinition:
		if slot == "Arguments" {
			return v.Arguments, true
		}
	case *InterfaceTypeDefinition:
		if slot == "Fields" {
			return v.Fields, true
		}
	case *UnionTypeDefinition:
		if slot == "Types" {
			return v.Types, true
		}
	case *EnumTypeDefinition:
		if slot == "Values" {
			return v.Values, true
		}
	case *InputObjectTypeDefinition:
		if slot == "Fields" {
			return v.Fields, true
		}
	case *DirectiveDefinition:
		switch slot {
		case "Arguments":
			return v.Arguments, true
		case "Locations":
			return v.Locations, true
		}
	}
	return nil, false
}

// SetChild returns a shallow copy of n with its single-child slot replaced
// by v. n itself is never mutated. v may be nil (clearing the slot) or a
// node of any kind: the registry does not enforce that a slot only ever
// holds the kind it started with.
func SetChild(n Node, slot string, v Node) Node {
	switch x := n.(type) {
	case *OperationDefinition:
		c := *x
		switch slot {
		case "Name":
			c.Name = v
		case "SelectionSet":
			c.SelectionSet = v
		default:
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		return &c
	case *VariableDefinition:
		c := *x
		switch slot {
		case "Variable":
			c.Variable = v
		case "Type":
			c.Type = v
		case "DefaultValue":
			c.DefaultValue = v
		default:
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		return &c
	case *Variable:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *Field:
		c := *x
		switch slot {
		case "Alias":
			c.Alias = v
		case "Name":
			c.Name = v
		case "SelectionSet":
			c.SelectionSet = v
		default:
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		return &c
	case *Argument:
		c := *x
		switch slot {
		case "Name":
			c.Name = v
		case "Value":
			c.Value = v
		default:
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		return &c
	case *FragmentSpread:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *InlineFragment:
		c := *x
		switch slot {
		case "TypeCondition":
			c.TypeCondition = v
		case "SelectionSet":
			c.SelectionSet = v
		default:
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		return &c
	case *FragmentDefinition:
		c := *x
		switch slot {
		case "Name":
			c.Name = v
		case "TypeCondition":
			c.TypeCondition = v
		case "SelectionSet":
			c.SelectionSet = v
		default:
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		return &c
	case *NamedType:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *ListType:
		c := *x
		if slot != "Type" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Type = v
		return &c
	case *NonNullType:
		c := *x
		if slot != "Type" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Type = v
		return &c
	case *Directive:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *ObjectField:
		c := *x
		switch slot {
		case "Name":
			c.Name = v
		case "Value":
			c.Value = v
		default:
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		return &c
	case *OperationTypeDefinition:
		c := *x
		if slot != "Type" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Type = v
		return &c
	case *ScalarTypeDefinition:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *ObjectTypeDefinition:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *FieldDefinition:
		c := *x
		switch slot {
		case "Name":
			c.Name = v
		case "Type":
			c.Type = v
		default:
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		return &c
	case *InputValueDefinition:
		c := *x
		switch slot {
		case "Name":
			c.Name = v
		case "Type":
			c.Type = v
		case "DefaultValue":
			c.DefaultValue = v
		default:
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		return &c
	case *InterfaceTypeDefinition:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *UnionTypeDefinition:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *EnumTypeDefinition:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *EnumValueDefinition:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *InputObjectTypeDefinition:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	case *DirectiveDefinition:
		c := *x
		if slot != "Name" {
			panic(fmt.Sprintf("ast: unknown single slot %q on %T", slot, n))
		}
		c.Name = v
		return &c
	}
	panic(fmt.Sprintf("ast: %T has no single-child slots", n))
}

// SetChildren returns a shallow copy of n with its sequence slot replaced
// by v. n itself is never mutated.
func SetChildren(n Node, slot string, v []Node) Node {
	switch x := n.(type) {
	case *Document:
		c := *x
		if slot != "Definitions" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Definitions = v
		return &c
	case *OperationDefinition:
		c := *x
		switch slot {
		case "VariableDefinitions":
			c.VariableDefinitions = v
		case "Directives":
			c.Directives = v
		default:
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		return &c
	case *SelectionSet:
		c := *x
		if slot != "Selections" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Selections = v
		return &c
	case *Field:
		c := *x
		switch slot {
		case "Arguments":
			c.Arguments = v
		case "Directives":
			c.Directives = v
		default:
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		return &c
	case *FragmentSpread:
		c := *x
		if slot != "Directives" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Directives = v
		return &c
	case *InlineFragment:
		c := *x
		if slot != "Directives" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Directives = v
		return &c
	case *FragmentDefinition:
		c := *x
		if slot != "Directives" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Directives = v
		return &c
	case *Directive:
		c := *x
		if slot != "Arguments" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Arguments = v
		return &c
	case *ListValue:
		c := *x
		if slot != "Values" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Values = v
		return &c
	case *ObjectValue:
		c := *x
		if slot != "Fields" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Fields = v
		return &c
	case *SchemaDefinition:
		c := *x
		if slot != "OperationTypes" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.OperationTypes = v
		return &c
	case *ObjectTypeDefinition:
		c := *x
		switch slot {
		case "Interfaces":
			c.Interfaces = v
		case "Fields":
			c.Fields = v
		default:
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		return &c
	case *FieldDefinition:
		c := *x
		if slot != "Arguments" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Arguments = v
		return &c
	case *InterfaceTypeDefinition:
		c := *x
		if slot != "Fields" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Fields = v
		return &c
	case *UnionTypeDefinition:
		c := *x
		if slot != "Types" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Types = v
		return &c
	case *EnumTypeDefinition:
		c := *x
		if slot != "Values" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Values = v
		return &c
	case *InputObjectTypeDefinition:
		c := *x
		if slot != "Fields" {
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		c.Fields = v
		return &c
	case *DirectiveDefinition:
		c := *x
		switch slot {
		case "Arguments":
			c.Arguments = v
		case "Locations":
			c.Locations = v
		default:
			panic(fmt.Sprintf("ast: unknown list slot %q on %T", slot, n))
		}
		return &c
	}
	panic(fmt.Sprintf("ast: %T has no sequence slots", n))
}
