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

// CloneDeep recursively copies a subtree, including every child slot.
// Unlike the traversal engine's own copy-on-write, which shares untouched
// subtrees with the input, CloneDeep allocates a fresh node for every node
// and a fresh slice for every child sequence — useful when a callback wants
// to keep a copy of a structure that survives edits it makes to the
// original during its own traversal. The Location pointer is shared with n,
// and scalar leaves are copied by value, so an IntValue/FloatValue clone's
// apd.Decimal still shares its coefficient storage with the original.
func CloneDeep(n Node) Node {
	if n == nil {
		return nil
	}
	loc := n.GetLoc()
	switch x := n.(type) {
	case *Document:
		return &Document{base{loc}, cloneList(x.Definitions)}
	case *OperationDefinition:
		return &OperationDefinition{
			base{loc}, x.Operation, CloneDeep(x.Name),
			cloneList(x.VariableDefinitions), cloneList(x.Directives),
			CloneDeep(x.SelectionSet),
		}
	case *VariableDefinition:
		return &VariableDefinition{base{loc}, CloneDeep(x.Variable), CloneDeep(x.Type), CloneDeep(x.DefaultValue)}
	case *Variable:
		return &Variable{base{loc}, CloneDeep(x.Name)}
	case *SelectionSet:
		return &SelectionSet{base{loc}, cloneList(x.Selections)}
	case *Field:
		return &Field{
			base{loc}, CloneDeep(x.Alias), CloneDeep(x.Name),
			cloneList(x.Arguments), cloneList(x.Directives), CloneDeep(x.SelectionSet),
		}
	case *Argument:
		return &Argument{base{loc}, CloneDeep(x.Name), CloneDeep(x.Value)}
	case *FragmentSpread:
		return &FragmentSpread{base{loc}, CloneDeep(x.Name), cloneList(x.Directives)}
	case *InlineFragment:
		return &InlineFragment{base{loc}, CloneDeep(x.TypeCondition), cloneList(x.Directives), CloneDeep(x.SelectionSet)}
	case *FragmentDefinition:
		return &FragmentDefinition{base{loc}, CloneDeep(x.Name), CloneDeep(x.TypeCondition), cloneList(x.Directives), CloneDeep(x.SelectionSet)}
	case *NamedType:
		return &NamedType{base{loc}, CloneDeep(x.Name)}
	case *ListType:
		return &ListType{base{loc}, CloneDeep(x.Type)}
	case *NonNullType:
		return &NonNullType{base{loc}, CloneDeep(x.Type)}
	case *Directive:
		return &Directive{base{loc}, CloneDeep(x.Name), cloneList(x.Arguments)}
	case *Name:
		return &Name{base{loc}, x.Value}
	case *IntValue:
		v := *x
		return &v
	case *FloatValue:
		v := *x
		return &v
	case *StringValue:
		v := *x
		return &v
	case *BooleanValue:
		v := *x
		return &v
	case *NullValue:
		v := *x
		return &v
	case *EnumValue:
		v := *x
		return &v
	case *ListValue:
		return &ListValue{base{loc}, cloneList(x.Values)}
	case *ObjectValue:
		return &ObjectValue{base{loc}, cloneList(x.Fields)}
	case *ObjectField:
		return &ObjectField{base{loc}, CloneDeep(x.Name), CloneDeep(x.Value)}
	case *SchemaDefinition:
		return &SchemaDefinition{base{loc}, cloneList(x.OperationTypes)}
	case *OperationTypeDefinition:
		return &OperationTypeDefinition{base{loc}, x.Operation, CloneDeep(x.Type)}
	case *ScalarTypeDefinition:
		return &ScalarTypeDefinition{base{loc}, CloneDeep(x.Name)}
	case *ObjectTypeDefinition:
		return &ObjectTypeDefinition{base{loc}, CloneDeep(x.Name), cloneList(x.Interfaces), cloneList(x.Fields)}
	case *FieldDefinition:
		return &FieldDefinition{base{loc}, CloneDeep(x.Name), cloneList(x.Arguments), CloneDeep(x.Type)}
	case *InputValueDefinition:
		return &InputValueDefinition{base{loc}, CloneDeep(x.Name), CloneDeep(x.Type), CloneDeep(x.DefaultValue)}
	case *InterfaceTypeDefinition:
		return &InterfaceTypeDefinition{base{loc}, CloneDeep(x.Name), cloneList(x.Fields)}
	case *UnionTypeDefinition:
		return &UnionTypeDefinition{base{loc}, CloneDeep(x.Name), cloneList(x.Types)}
	case *EnumTypeDefinition:
		return &EnumTypeDefinition{base{loc}, CloneDeep(x.Name), cloneList(x.Values)}
	case *EnumValueDefinition:
		return &EnumValueDefinition{base{loc}, CloneDeep(x.Name)}
	case *InputObjectTypeDefinition:
		return &InputObjectTypeDefinition{base{loc}, CloneDeep(x.Name), cloneList(x.Fields)}
	case *DirectiveDefinition:
		return &DirectiveDefinition{base{loc}, CloneDeep(x.Name), cloneList(x.Arguments), cloneList(x.Locations)}
	}
	panic("ast: CloneDeep: unregistered node kind")
}

func cloneList(list []Node) []Node {
	if list == nil {
		return nil
	}
	out := make([]Node, len(list))
	for i, n := range list {
		out[i] = CloneDeep(n)
	}
	return out
}
