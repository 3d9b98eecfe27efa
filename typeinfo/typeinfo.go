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

// Package typeinfo implements visitor.TypeTracker over a schema: it keeps
// type, parent-type, input-type, and field-definition stacks synchronized
// with a traversal's enter/leave events.
package typeinfo

import (
	"github.com/gqlkit/visitor/ast"
	"github.com/gqlkit/visitor/schema"
)

// TypeInfo tracks the schema type context of the node currently being
// visited. Zero value is not usable; build one with New.
type TypeInfo struct {
	schema *schema.Schema

	typeStack       []*schema.Type
	parentTypeStack []*schema.Type
	inputTypeStack  []schema.TypeRef
	fieldDefStack   []*schema.FieldDef
}

// New builds a TypeInfo rooted at the schema's operation type for
// operation ("query", "mutation", or "subscription").
func New(s *schema.Schema, operation string) *TypeInfo {
	t := &TypeInfo{schema: s}
	var rootName string
	switch operation {
	case "mutation":
		rootName = s.Mutation
	case "subscription":
		rootName = s.Subscription
	default:
		rootName = s.Query
	}
	t.typeStack = []*schema.Type{s.TypeByName(rootName)}
	return t
}

// GetType returns the composite or leaf type of the node currently being
// visited, or nil if none is known at this position.
func (t *TypeInfo) GetType() *schema.Type {
	if len(t.typeStack) == 0 {
		return nil
	}
	return t.typeStack[len(t.typeStack)-1]
}

// GetParentType returns the type enclosing the current selection, i.e. the
// type of the nearest enclosing Field/FragmentDefinition/InlineFragment.
func (t *TypeInfo) GetParentType() *schema.Type {
	if len(t.parentTypeStack) == 0 {
		return nil
	}
	return t.parentTypeStack[len(t.parentTypeStack)-1]
}

// GetInputType returns the expected input type for the current position
// (an Argument's Value, a VariableDefinition, an ObjectField's Value).
func (t *TypeInfo) GetInputType() *schema.TypeRef {
	if len(t.inputTypeStack) == 0 {
		return nil
	}
	return &t.inputTypeStack[len(t.inputTypeStack)-1]
}

// GetFieldDef returns the field definition selected by the current Field
// node, or nil outside of one.
func (t *TypeInfo) GetFieldDef() *schema.FieldDef {
	if len(t.fieldDefStack) == 0 {
		return nil
	}
	return t.fieldDefStack[len(t.fieldDefStack)-1]
}

// Enter implements visitor.TypeTracker.
func (t *TypeInfo) Enter(n ast.Node) {
	switch x := n.(type) {
	case *ast.SelectionSet:
		t.parentTypeStack = append(t.parentTypeStack, t.GetType())

	case *ast.Field:
		parent := t.GetParentType()
		var fieldType schema.TypeRef
		def, ok := t.schema.FieldFor(parent, fieldNameOf(x))
		if ok {
			fieldType = def.Type
		}
		t.fieldDefStack = append(t.fieldDefStack, def)
		t.typeStack = append(t.typeStack, t.schema.ResolveType(fieldType))

	case *ast.FragmentDefinition:
		t.typeStack = append(t.typeStack, t.schema.TypeByName(namedTypeNameOf(x.TypeCondition)))

	case *ast.InlineFragment:
		if x.TypeCondition != nil {
			t.typeStack = append(t.typeStack, t.schema.TypeByName(namedTypeNameOf(x.TypeCondition)))
		} else {
			t.typeStack = append(t.typeStack, t.GetType())
		}

	case *ast.VariableDefinition:
		t.inputTypeStack = append(t.inputTypeStack, typeRefOf(x.Type))

	case *ast.Argument:
		var ref schema.TypeRef
		if def := t.GetFieldDef(); def != nil {
			if a, ok := def.Arguments.By[fieldNameOf(x)]; ok {
				ref = a.Type
			}
		}
		t.inputTypeStack = append(t.inputTypeStack, ref)

	case *ast.ListValue:
		ref := schema.TypeRef{}
		if top := t.GetInputType(); top != nil {
			ref = *top
		}
		if ref.List && ref.OfType != nil {
			ref = *ref.OfType
		}
		t.inputTypeStack = append(t.inputTypeStack, ref)

	case *ast.ObjectField:
		var ref schema.TypeRef
		if top := t.GetInputType(); top != nil {
			parent := t.schema.ResolveType(*top)
			if parent != nil {
				if f, ok := parent.InputFields.By[fieldNameOf(x)]; ok {
					ref = f.Type
				}
			}
		}
		t.inputTypeStack = append(t.inputTypeStack, ref)
	}
}

// Leave implements visitor.TypeTracker.
func (t *TypeInfo) Leave(n ast.Node) {
	switch n.(type) {
	case *ast.SelectionSet:
		t.parentTypeStack = t.parentTypeStack[:len(t.parentTypeStack)-1]
	case *ast.Field:
		t.fieldDefStack = t.fieldDefStack[:len(t.fieldDefStack)-1]
		t.typeStack = t.typeStack[:len(t.typeStack)-1]
	case *ast.FragmentDefinition, *ast.InlineFragment:
		t.typeStack = t.typeStack[:len(t.typeStack)-1]
	case *ast.VariableDefinition, *ast.Argument, *ast.ListValue, *ast.ObjectField:
		t.inputTypeStack = t.inputTypeStack[:len(t.inputTypeStack)-1]
	}
}

func fieldNameOf(n ast.Node) string {
	var nameNode ast.Node
	switch x := n.(type) {
	case *ast.Field:
		nameNode = x.Name
	case *ast.Argument:
		nameNode = x.Name
	case *ast.ObjectField:
		nameNode = x.Name
	}
	if name, ok := nameNode.(*ast.Name); ok {
		return name.Value
	}
	return ""
}

func namedTypeNameOf(n ast.Node) string {
	nt, ok := n.(*ast.NamedType)
	if !ok {
		return ""
	}
	if name, ok := nt.Name.(*ast.Name); ok {
		return name.Value
	}
	return ""
}

func typeRefOf(n ast.Node) schema.TypeRef {
	switch x := n.(type) {
	case *ast.NamedType:
		return schema.Named(namedTypeNameOf(x))
	case *ast.ListType:
		return schema.List(typeRefOf(x.Type))
	case *ast.NonNullType:
		return schema.NonNull(typeRefOf(x.Type))
	}
	return schema.TypeRef{}
}
