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

// Package printer renders a document tree back to GraphQL-like source
// text. It is schema-agnostic: printing never consults a schema, only the
// node tree itself.
package printer

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v2"

	"github.com/gqlkit/visitor/ast"
	"github.com/gqlkit/visitor/visitor"
)

// Print renders root to source text. It drives the traversal engine with a
// wildcard Leave callback instead of a bespoke recursive walk, so the
// printer exercises the same node-model/registry machinery the rest of the
// module is built on.
func Print(root ast.Node) string {
	if root == nil {
		return ""
	}
	rendered := map[ast.Node]string{}
	v := visitor.Simple(nil, func(p visitor.Params) visitor.Result {
		rendered[p.Node] = render(p.Node, rendered)
		return visitor.Continue
	})
	result, err := visitor.Visit(root, v)
	if err != nil {
		// Print is only ever handed a tree that already passed
		// ast.Validate inside Visit; a well-formed caller never reaches
		// this branch.
		panic(err)
	}
	return rendered[result]
}

func render(n ast.Node, child map[ast.Node]string) string {
	r := func(c ast.Node) string {
		if c == nil {
			return ""
		}
		return child[c]
	}
	join := func(list []ast.Node, sep string) string {
		parts := make([]string, len(list))
		for i, c := range list {
			parts[i] = r(c)
		}
		return strings.Join(parts, sep)
	}

	switch x := n.(type) {
	case *ast.Document:
		return join(x.Definitions, "\n\n")

	case *ast.OperationDefinition:
		var b strings.Builder
		b.WriteString(x.Operation)
		if x.Name != nil {
			b.WriteString(" " + r(x.Name))
		}
		if len(x.VariableDefinitions) > 0 {
			b.WriteString("(" + join(x.VariableDefinitions, ", ") + ")")
		}
		for _, d := range x.Directives {
			b.WriteString(" " + r(d))
		}
		b.WriteString(" " + r(x.SelectionSet))
		return b.String()

	case *ast.VariableDefinition:
		s := r(x.Variable) + ": " + r(x.Type)
		if x.DefaultValue != nil {
			s += " = " + r(x.DefaultValue)
		}
		return s

	case *ast.Variable:
		return "$" + r(x.Name)

	case *ast.SelectionSet:
		return "{ " + join(x.Selections, ", ") + " }"

	case *ast.Field:
		var b strings.Builder
		if x.Alias != nil {
			b.WriteString(r(x.Alias) + ": ")
		}
		b.WriteString(r(x.Name))
		if len(x.Arguments) > 0 {
			b.WriteString("(" + join(x.Arguments, ", ") + ")")
		}
		for _, d := range x.Directives {
			b.WriteString(" " + r(d))
		}
		if x.SelectionSet != nil {
			b.WriteString(" " + r(x.SelectionSet))
		}
		return b.String()

	case *ast.Argument:
		return r(x.Name) + ": " + r(x.Value)

	case *ast.FragmentSpread:
		s := "..." + r(x.Name)
		for _, d := range x.Directives {
			s += " " + r(d)
		}
		return s

	case *ast.InlineFragment:
		s := "..."
		if x.TypeCondition != nil {
			s += " on " + r(x.TypeCondition)
		}
		for _, d := range x.Directives {
			s += " " + r(d)
		}
		return s + " " + r(x.SelectionSet)

	case *ast.FragmentDefinition:
		s := "fragment " + r(x.Name) + " on " + r(x.TypeCondition)
		for _, d := range x.Directives {
			s += " " + r(d)
		}
		return s + " " + r(x.SelectionSet)

	case *ast.NamedType:
		return r(x.Name)

	case *ast.ListType:
		return "[" + r(x.Type) + "]"

	case *ast.NonNullType:
		return r(x.Type) + "!"

	case *ast.Directive:
		s := "@" + r(x.Name)
		if len(x.Arguments) > 0 {
			s += "(" + join(x.Arguments, ", ") + ")"
		}
		return s

	case *ast.Name:
		return x.Value

	case *ast.IntValue:
		return decimalString(x.Value)

	case *ast.FloatValue:
		return decimalString(x.Value)

	case *ast.StringValue:
		if x.Block {
			return `"""` + x.Value + `"""`
		}
		return fmt.Sprintf("%q", x.Value)

	case *ast.BooleanValue:
		if x.Value {
			return "true"
		}
		return "false"

	case *ast.NullValue:
		return "null"

	case *ast.EnumValue:
		return x.Value

	case *ast.ListValue:
		return "[" + join(x.Values, ", ") + "]"

	case *ast.ObjectValue:
		return "{ " + join(x.Fields, ", ") + " }"

	case *ast.ObjectField:
		return r(x.Name) + ": " + r(x.Value)

	case *ast.SchemaDefinition:
		return "schema { " + join(x.OperationTypes, ", ") + " }"

	case *ast.OperationTypeDefinition:
		return x.Operation + ": " + r(x.Type)

	case *ast.ScalarTypeDefinition:
		return "scalar " + r(x.Name)

	case *ast.ObjectTypeDefinition:
		s := "type " + r(x.Name)
		if len(x.Interfaces) > 0 {
			s += " implements " + join(x.Interfaces, " & ")
		}
		return s + " { " + join(x.Fields, " ") + " }"

	case *ast.FieldDefinition:
		s := r(x.Name)
		if len(x.Arguments) > 0 {
			s += "(" + join(x.Arguments, ", ") + ")"
		}
		return s + ": " + r(x.Type)

	case *ast.InputValueDefinition:
		s := r(x.Name) + ": " + r(x.Type)
		if x.DefaultValue != nil {
			s += " = " + r(x.DefaultValue)
		}
		return s

	case *ast.InterfaceTypeDefinition:
		return "interface " + r(x.Name) + " { " + join(x.Fields, " ") + " }"

	case *ast.UnionTypeDefinition:
		return "union " + r(x.Name) + " = " + join(x.Types, " | ")

	case *ast.EnumTypeDefinition:
		return "enum " + r(x.Name) + " { " + join(x.Values, " ") + " }"

	case *ast.EnumValueDefinition:
		return r(x.Name)

	case *ast.InputObjectTypeDefinition:
		return "input " + r(x.Name) + " { " + join(x.Fields, " ") + " }"

	case *ast.DirectiveDefinition:
		s := "directive @" + r(x.Name)
		if len(x.Arguments) > 0 {
			s += "(" + join(x.Arguments, ", ") + ")"
		}
		s += " on " + join(x.Locations, " | ")
		return s
	}
	return ""
}

func decimalString(d apd.Decimal) string {
	return d.String()
}
