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

// Package schema is a minimal, in-memory GraphQL-like type system: enough
// of a registry of named types and their fields for a type tracker to walk
// alongside a document traversal.
package schema

import "fmt"

// TypeKind classifies a named type.
type TypeKind int

const (
	Scalar TypeKind = iota
	Object
	Interface
	Union
	Enum
	InputObject
)

// Type is a named type in the schema: an object, interface, union, enum,
// scalar, or input object.
type Type struct {
	Name string
	Kind TypeKind

	Fields     FieldMap      // Object, Interface
	Interfaces []string      // Object: names of implemented interfaces
	PossibleTypes []string   // Union: member object type names
	EnumValues []string      // Enum
	InputFields FieldMap     // InputObject
}

// IsCompositeType reports whether t can carry a selection set: object,
// interface, and union types are composite; scalars, enums, and input
// objects are not.
func IsCompositeType(t *Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind {
	case Object, Interface, Union:
		return true
	default:
		return false
	}
}

// FieldDef describes one field of an object or interface type: its
// resolved type reference and argument list.
type FieldDef struct {
	Name      string
	Type      TypeRef
	Arguments ArgMap
}

// FieldMap is an ordered field table: Names preserves declaration order,
// By resolves a field by name.
type FieldMap struct {
	Names []string
	By    map[string]*FieldDef
}

func (m *FieldMap) add(f *FieldDef) {
	if m.By == nil {
		m.By = map[string]*FieldDef{}
	}
	if _, exists := m.By[f.Name]; !exists {
		m.Names = append(m.Names, f.Name)
	}
	m.By[f.Name] = f
}

// ArgDef describes one argument of a field or directive.
type ArgDef struct {
	Name string
	Type TypeRef
}

// ArgMap is an ordered argument table, mirroring FieldMap.
type ArgMap struct {
	Names []string
	By    map[string]*ArgDef
}

func (m *ArgMap) add(a *ArgDef) {
	if m.By == nil {
		m.By = map[string]*ArgDef{}
	}
	if _, exists := m.By[a.Name]; !exists {
		m.Names = append(m.Names, a.Name)
	}
	m.By[a.Name] = a
}

// TypeRef is a resolved type reference: a named type, wrapped zero or more
// times in List and/or NonNull.
type TypeRef struct {
	Named    string
	List     bool
	NonNull  bool
	OfType   *TypeRef // element type, when List or NonNull wraps another ref
}

// List wraps ref as a list type.
func List(ref TypeRef) TypeRef {
	r := ref
	return TypeRef{List: true, OfType: &r}
}

// NonNull wraps ref as a non-null type.
func NonNull(ref TypeRef) TypeRef {
	r := ref
	return TypeRef{NonNull: true, OfType: &r}
}

// Named builds a bare named-type reference.
func Named(name string) TypeRef { return TypeRef{Named: name} }

// Schema is the closed set of named types making up a document's type
// system, plus the three (or fewer) root operation types.
type Schema struct {
	Types map[string]*Type

	Query        string
	Mutation     string
	Subscription string
}

// TypeByName resolves a named type, or nil if unknown.
func (s *Schema) TypeByName(name string) *Type {
	if s == nil {
		return nil
	}
	return s.Types[name]
}

// FieldFor resolves a field by name on an object or interface type,
// returning its field definition (whose Type is the field's unresolved
// TypeRef; see ResolveType), or ok=false if the parent type carries no such
// field (or isn't an Object/Interface at all).
func (s *Schema) FieldFor(parentType *Type, fieldName string) (def *FieldDef, ok bool) {
	if parentType == nil {
		return nil, false
	}
	if parentType.Kind != Object && parentType.Kind != Interface {
		return nil, false
	}
	def, ok = parentType.Fields.By[fieldName]
	return def, ok
}

// ResolveType dereferences a TypeRef down to its named Type, unwrapping any
// List/NonNull wrapping.
func (s *Schema) ResolveType(ref TypeRef) *Type {
	for ref.OfType != nil {
		ref = *ref.OfType
	}
	return s.TypeByName(ref.Named)
}

// Builder accumulates types for New.
type Builder struct {
	schema *Schema
}

// New starts a literal schema builder.
func New() *Builder {
	return &Builder{schema: &Schema{Types: map[string]*Type{}}}
}

// Root sets the root operation types.
func (b *Builder) Root(query, mutation, subscription string) *Builder {
	b.schema.Query, b.schema.Mutation, b.schema.Subscription = query, mutation, subscription
	return b
}

// Add registers t, keyed by its Name. It panics on a duplicate name, since
// a schema is built once up front, not incrementally under contention.
func (b *Builder) Add(t *Type) *Builder {
	if _, exists := b.schema.Types[t.Name]; exists {
		panic(fmt.Sprintf("schema: duplicate type %q", t.Name))
	}
	b.schema.Types[t.Name] = t
	return b
}

// Build returns the finished schema.
func (b *Builder) Build() *Schema {
	return b.schema
}

// NewObjectType builds an Object type with fields added via AddField.
func NewObjectType(name string, interfaces ...string) *Type {
	return &Type{Name: name, Kind: Object, Interfaces: interfaces}
}

// NewInterfaceType builds an Interface type.
func NewInterfaceType(name string) *Type {
	return &Type{Name: name, Kind: Interface}
}

// NewUnionType builds a Union type over possibleTypes. Duplicate member
// names (a caller listing the same object type twice) are collapsed.
func NewUnionType(name string, possibleTypes ...string) *Type {
	return &Type{Name: name, Kind: Union, PossibleTypes: dedupStrings(possibleTypes)}
}

// NewScalarType builds a Scalar type.
func NewScalarType(name string) *Type {
	return &Type{Name: name, Kind: Scalar}
}

// NewEnumType builds an Enum type.
func NewEnumType(name string, values ...string) *Type {
	return &Type{Name: name, Kind: Enum, EnumValues: values}
}

// AddField appends a field definition (with optional arguments) to an
// Object or Interface type.
func AddField(t *Type, name string, ref TypeRef, args ...ArgDef) *Type {
	fd := &FieldDef{Name: name, Type: ref}
	for i := range args {
		fd.Arguments.add(&args[i])
	}
	t.Fields.add(fd)
	return t
}
