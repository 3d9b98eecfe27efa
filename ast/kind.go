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

// Package ast defines the closed set of document node kinds, their
// ordered child slots, and the deep-clone primitive the traversal engine
// builds on.
package ast

// Kind identifies a Node's variant. It is the string discriminator every
// Node exposes through GetKind.
type Kind string

// The closed set of node kinds. Order here has no semantic meaning; the
// traversal order per kind is fixed separately by the Registry.
const (
	KindDocument            Kind = "Document"
	KindOperationDefinition Kind = "OperationDefinition"
	KindVariableDefinition  Kind = "VariableDefinition"
	KindVariable            Kind = "Variable"
	KindSelectionSet        Kind = "SelectionSet"
	KindField               Kind = "Field"
	KindArgument            Kind = "Argument"
	KindFragmentSpread      Kind = "FragmentSpread"
	KindInlineFragment      Kind = "InlineFragment"
	KindFragmentDefinition  Kind = "FragmentDefinition"
	KindNamedType           Kind = "NamedType"
	KindListType            Kind = "ListType"
	KindNonNullType         Kind = "NonNullType"
	KindDirective           Kind = "Directive"
	KindName                Kind = "Name"
	KindIntValue            Kind = "IntValue"
	KindFloatValue          Kind = "FloatValue"
	KindStringValue         Kind = "StringValue"
	KindBooleanValue        Kind = "BooleanValue"
	KindNullValue           Kind = "NullValue"
	KindEnumValue           Kind = "EnumValue"
	KindListValue           Kind = "ListValue"
	KindObjectValue         Kind = "ObjectValue"
	KindObjectField         Kind = "ObjectField"

	// Schema-definition variants. These round out the closed set of node
	// kinds beyond query documents, so a schema-definition-language
	// document can be traversed with the same engine.
	KindSchemaDefinition        Kind = "SchemaDefinition"
	KindOperationTypeDefinition Kind = "OperationTypeDefinition"
	KindScalarDefinition        Kind = "ScalarTypeDefinition"
	KindObjectDefinition        Kind = "ObjectTypeDefinition"
	KindFieldDefinition         Kind = "FieldDefinition"
	KindInputValueDefinition    Kind = "InputValueDefinition"
	KindInterfaceDefinition     Kind = "InterfaceTypeDefinition"
	KindUnionDefinition         Kind = "UnionTypeDefinition"
	KindEnumDefinition          Kind = "EnumTypeDefinition"
	KindEnumValueDefinition     Kind = "EnumValueDefinition"
	KindInputObjectDefinition   Kind = "InputObjectTypeDefinition"
	KindDirectiveDefinition     Kind = "DirectiveDefinition"
)
