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

package printer_test

import (
	"testing"

	"github.com/kylelemons/godebug/diff"
	"github.com/stretchr/testify/assert"

	"github.com/gqlkit/visitor/ast"
	"github.com/gqlkit/visitor/printer"
)

func requireSame(t *testing.T, want, got string) {
	t.Helper()
	if want != got {
		t.Errorf("printed output differs:\n%s", diff.Diff(got, want))
	}
}

func TestPrintQueryWithVariablesAndArguments(t *testing.T) {
	doc := &ast.OperationDefinition{
		Operation: "query",
		Name:      &ast.Name{Value: "GetHuman"},
		VariableDefinitions: []ast.Node{
			&ast.VariableDefinition{
				Variable: &ast.Variable{Name: &ast.Name{Value: "id"}},
				Type:     &ast.NonNullType{Type: &ast.NamedType{Name: &ast.Name{Value: "Int"}}},
			},
		},
		SelectionSet: &ast.SelectionSet{Selections: []ast.Node{
			&ast.Field{
				Alias: &ast.Name{Value: "character"},
				Name:  &ast.Name{Value: "human"},
				Arguments: []ast.Node{
					&ast.Argument{Name: &ast.Name{Value: "id"}, Value: &ast.Variable{Name: &ast.Name{Value: "id"}}},
				},
				SelectionSet: &ast.SelectionSet{Selections: []ast.Node{
					&ast.Field{Name: &ast.Name{Value: "name"}},
				}},
			},
		}},
	}

	requireSame(t, "query GetHuman($id: Int!) { character: human(id: $id) { name } }", printer.Print(doc))
}

func TestPrintScalarLiterals(t *testing.T) {
	field := &ast.Field{
		Name: &ast.Name{Value: "f"},
		Arguments: []ast.Node{
			&ast.Argument{Name: &ast.Name{Value: "s"}, Value: &ast.StringValue{Value: "hi"}},
			&ast.Argument{Name: &ast.Name{Value: "b"}, Value: &ast.BooleanValue{Value: true}},
			&ast.Argument{Name: &ast.Name{Value: "n"}, Value: &ast.NullValue{}},
			&ast.Argument{Name: &ast.Name{Value: "e"}, Value: &ast.EnumValue{Value: "RED"}},
		},
	}
	assert.Equal(t, `f(s: "hi", b: true, n: null, e: RED)`, printer.Print(field))
}

func TestPrintEmptyTreeIsEmptyString(t *testing.T) {
	assert.Equal(t, "", printer.Print(nil))
}
