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

import "github.com/cockroachdb/apd/v2"

// Location is the optional source-position leaf a parser may attach to a
// node. The traversal engine never reads it; it is carried purely for
// pass-through to a printer or diagnostics layer.
type Location struct {
	Start, End int
}

// Node is implemented by every document node variant. GetKind reports the
// variant's string discriminator; Loc is the pass-through source location.
type Node interface {
	GetKind() Kind
	GetLoc() *Location
}

type base struct {
	Loc *Location
}

func (b *base) GetLoc() *Location { return b.Loc }

// Document is the root of a GraphQL-like document: a sequence of
// operation, fragment, and type-system definitions.
type Document struct {
	base
	Definitions []Node
}

func (n *Document) GetKind() Kind { return KindDocument }

// OperationDefinition is a query/mutation/subscription.
type OperationDefinition struct {
	base
	Operation           string // "query" | "mutation" | "subscription"
	Name                Node
	VariableDefinitions []Node
	Directives          []Node
	SelectionSet        Node
}

func (n *OperationDefinition) GetKind() Kind { return KindOperationDefinition }

// VariableDefinition declares a named, typed operation variable.
type VariableDefinition struct {
	base
	Variable     Node
	Type         Node // NamedType | ListType | NonNullType
	DefaultValue Node // a Value node, or nil
}

func (n *VariableDefinition) GetKind() Kind { return KindVariableDefinition }

// Variable references an operation variable, e.g. $id.
type Variable struct {
	base
	Name Node
}

func (n *Variable) GetKind() Kind { return KindVariable }

// SelectionSet is the `{ ... }` block of a field, fragment, or operation.
type SelectionSet struct {
	base
	Selections []Node // Field | FragmentSpread | InlineFragment
}

func (n *SelectionSet) GetKind() Kind { return KindSelectionSet }

// Field selects a single field, with an optional alias, arguments,
// directives, and a nested selection set for composite-typed fields.
type Field struct {
	base
	Alias        Node
	Name         Node
	Arguments    []Node
	Directives   []Node
	SelectionSet Node
}

func (n *Field) GetKind() Kind { return KindField }

// Argument is a single name:value pair attached to a field or directive.
type Argument struct {
	base
	Name  Node
	Value Node
}

func (n *Argument) GetKind() Kind { return KindArgument }

// FragmentSpread references a named fragment via `...Name`.
type FragmentSpread struct {
	base
	Name       Node
	Directives []Node
}

func (n *FragmentSpread) GetKind() Kind { return KindFragmentSpread }

// InlineFragment is an anonymous, optionally type-conditioned fragment.
type InlineFragment struct {
	base
	TypeCondition Node
	Directives    []Node
	SelectionSet  Node
}

func (n *InlineFragment) GetKind() Kind { return KindInlineFragment }

// FragmentDefinition declares a reusable, named fragment.
type FragmentDefinition struct {
	base
	Name          Node
	TypeCondition Node
	Directives    []Node
	SelectionSet  Node
}

func (n *FragmentDefinition) GetKind() Kind { return KindFragmentDefinition }

// NamedType references a type by name, e.g. `Human`.
type NamedType struct {
	base
	Name Node
}

func (n *NamedType) GetKind() Kind { return KindNamedType }

// ListType wraps another type as a list, e.g. `[Human]`.
type ListType struct {
	base
	Type Node
}

func (n *ListType) GetKind() Kind { return KindListType }

// NonNullType wraps a named or list type as non-null, e.g. `Human!`.
type NonNullType struct {
	base
	Type Node // NamedType | ListType; not enforced by the engine
}

func (n *NonNullType) GetKind() Kind { return KindNonNullType }

// Directive is a single `@name(args...)` annotation.
type Directive struct {
	base
	Name      Node
	Arguments []Node
}

func (n *Directive) GetKind() Kind { return KindDirective }

// Name is a leaf identifier, e.g. a field, argument, or type name.
type Name struct {
	base
	Value string
}

func (n *Name) GetKind() Kind { return KindName }

// IntValue is an integer literal, represented with arbitrary precision so
// edits and clones never lose fidelity.
type IntValue struct {
	base
	Value apd.Decimal
}

func (n *IntValue) GetKind() Kind { return KindIntValue }

// FloatValue is a floating-point literal, arbitrary-precision for the same
// reason as IntValue.
type FloatValue struct {
	base
	Value apd.Decimal
}

func (n *FloatValue) GetKind() Kind { return KindFloatValue }

// StringValue is a string literal. Block reports whether it was written as
// a triple-quoted block string; it does not participate in traversal.
type StringValue struct {
	base
	Value string
	Block bool
}

func (n *StringValue) GetKind() Kind { return KindStringValue }

// BooleanValue is a `true`/`false` literal.
type BooleanValue struct {
	base
	Value bool
}

func (n *BooleanValue) GetKind() Kind { return KindBooleanValue }

// NullValue is the `null` literal. It carries no slots.
type NullValue struct {
	base
}

func (n *NullValue) GetKind() Kind { return KindNullValue }

// EnumValue is an unquoted enum member reference.
type EnumValue struct {
	base
	Value string
}

func (n *EnumValue) GetKind() Kind { return KindEnumValue }

// ListValue is a literal `[...]` list of values.
type ListValue struct {
	base
	Values []Node
}

func (n *ListValue) GetKind() Kind { return KindListValue }

// ObjectValue is a literal `{...}` input object.
type ObjectValue struct {
	base
	Fields []Node // ObjectField
}

func (n *ObjectValue) GetKind() Kind { return KindObjectValue }

// ObjectField is a single name:value pair inside an ObjectValue.
type ObjectField struct {
	base
	Name  Node
	Value Node
}

func (n *ObjectField) GetKind() Kind { return KindObjectField }

// --- Schema-definition-language variants ---

// SchemaDefinition declares the root operation types of a schema.
type SchemaDefinition struct {
	base
	OperationTypes []Node // OperationTypeDefinition
}

func (n *SchemaDefinition) GetKind() Kind { return KindSchemaDefinition }

// OperationTypeDefinition binds an operation kind to a root type.
type OperationTypeDefinition struct {
	base
	Operation string // "query" | "mutation" | "subscription"
	Type      Node
}

func (n *OperationTypeDefinition) GetKind() Kind { return KindOperationTypeDefinition }

// ScalarTypeDefinition declares a custom scalar.
type ScalarTypeDefinition struct {
	base
	Name Node
}

func (n *ScalarTypeDefinition) GetKind() Kind { return KindScalarDefinition }

// ObjectTypeDefinition declares an object type and the interfaces it
// implements.
type ObjectTypeDefinition struct {
	base
	Name       Node
	Interfaces []Node // NamedType
	Fields     []Node // FieldDefinition
}

func (n *ObjectTypeDefinition) GetKind() Kind { return KindObjectDefinition }

// FieldDefinition declares one field of an object or interface type.
type FieldDefinition struct {
	base
	Name      Node
	Arguments []Node // InputValueDefinition
	Type      Node
}

func (n *FieldDefinition) GetKind() Kind { return KindFieldDefinition }

// InputValueDefinition declares a field argument or input-object field.
type InputValueDefinition struct {
	base
	Name         Node
	Type         Node
	DefaultValue Node
}

func (n *InputValueDefinition) GetKind() Kind { return KindInputValueDefinition }

// InterfaceTypeDefinition declares an interface type.
type InterfaceTypeDefinition struct {
	base
	Name   Node
	Fields []Node // FieldDefinition
}

func (n *InterfaceTypeDefinition) GetKind() Kind { return KindInterfaceDefinition }

// UnionTypeDefinition declares a union of object types.
type UnionTypeDefinition struct {
	base
	Name  Node
	Types []Node // NamedType
}

func (n *UnionTypeDefinition) GetKind() Kind { return KindUnionDefinition }

// EnumTypeDefinition declares an enum type.
type EnumTypeDefinition struct {
	base
	Name   Node
	Values []Node // EnumValueDefinition
}

func (n *EnumTypeDefinition) GetKind() Kind { return KindEnumDefinition }

// EnumValueDefinition declares one member of an enum type.
type EnumValueDefinition struct {
	base
	Name Node
}

func (n *EnumValueDefinition) GetKind() Kind { return KindEnumValueDefinition }

// InputObjectTypeDefinition declares an input object type.
type InputObjectTypeDefinition struct {
	base
	Name   Node
	Fields []Node // InputValueDefinition
}

func (n *InputObjectTypeDefinition) GetKind() Kind { return KindInputObjectDefinition }

// DirectiveDefinition declares a custom directive and the locations it may
// annotate.
type DirectiveDefinition struct {
	base
	Name      Node
	Arguments []Node // InputValueDefinition
	Locations []Node // Name
}

func (n *DirectiveDefinition) GetKind() Kind { return KindDirectiveDefinition }
