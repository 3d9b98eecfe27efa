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

package testfixture

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v2"
	"gopkg.in/yaml.v3"

	"github.com/gqlkit/visitor/ast"
)

// doc is the YAML shape of a single operation fixture. It covers the
// subset of the node model a hand-written fixture is likely to need:
// one operation, its variables, and a tree of fields.
type doc struct {
	Operation string      `yaml:"operation"`
	Name      string      `yaml:"name,omitempty"`
	Variables []varDefDoc `yaml:"variables,omitempty"`
	Selection []fieldDoc  `yaml:"selectionSet"`
}

type varDefDoc struct {
	Name    string    `yaml:"name"`
	Type    string    `yaml:"type"`
	Default *valueDoc `yaml:"default,omitempty"`
}

type fieldDoc struct {
	Alias     string     `yaml:"alias,omitempty"`
	Name      string     `yaml:"name"`
	Arguments []argDoc   `yaml:"arguments,omitempty"`
	Selection []fieldDoc `yaml:"selectionSet,omitempty"`
}

type argDoc struct {
	Name  string   `yaml:"name"`
	Value valueDoc `yaml:"value"`
}

// valueDoc is a tagged union of literal kinds; exactly one field should be
// set by the fixture author.
type valueDoc struct {
	Int    *int64     `yaml:"int,omitempty"`
	Float  *float64   `yaml:"float,omitempty"`
	String *string    `yaml:"string,omitempty"`
	Bool   *bool      `yaml:"bool,omitempty"`
	Null   bool       `yaml:"null,omitempty"`
	Enum   *string    `yaml:"enum,omitempty"`
	Var    *string    `yaml:"var,omitempty"`
	List   []valueDoc `yaml:"list,omitempty"`
}

// Decode parses a YAML-described fixture document into an
// *ast.OperationDefinition.
func Decode(data []byte) (*ast.OperationDefinition, error) {
	var d doc
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("testfixture: %w", err)
	}
	if d.Operation == "" {
		d.Operation = "query"
	}

	op := &ast.OperationDefinition{
		Operation:    d.Operation,
		SelectionSet: &ast.SelectionSet{Selections: buildFields(d.Selection)},
	}
	if d.Name != "" {
		op.Name = &ast.Name{Value: d.Name}
	}
	for _, v := range d.Variables {
		vd := &ast.VariableDefinition{
			Variable: &ast.Variable{Name: &ast.Name{Value: v.Name}},
			Type:     parseTypeRef(v.Type),
		}
		if v.Default != nil {
			vd.DefaultValue = buildValue(*v.Default)
		}
		op.VariableDefinitions = append(op.VariableDefinitions, vd)
	}
	return op, nil
}

func buildFields(docs []fieldDoc) []ast.Node {
	out := make([]ast.Node, len(docs))
	for i, f := range docs {
		field := &ast.Field{Name: &ast.Name{Value: f.Name}}
		if f.Alias != "" {
			field.Alias = &ast.Name{Value: f.Alias}
		}
		for _, a := range f.Arguments {
			field.Arguments = append(field.Arguments, &ast.Argument{
				Name:  &ast.Name{Value: a.Name},
				Value: buildValue(a.Value),
			})
		}
		if f.Selection != nil {
			field.SelectionSet = &ast.SelectionSet{Selections: buildFields(f.Selection)}
		}
		out[i] = field
	}
	return out
}

func buildValue(v valueDoc) ast.Node {
	switch {
	case v.Int != nil:
		return &ast.IntValue{Value: *apd.New(*v.Int, 0)}
	case v.Float != nil:
		d, _, _ := apd.NewFromString(strconv.FormatFloat(*v.Float, 'f', -1, 64))
		return &ast.FloatValue{Value: *d}
	case v.String != nil:
		return &ast.StringValue{Value: *v.String}
	case v.Bool != nil:
		return &ast.BooleanValue{Value: *v.Bool}
	case v.Null:
		return &ast.NullValue{}
	case v.Enum != nil:
		return &ast.EnumValue{Value: *v.Enum}
	case v.Var != nil:
		return &ast.Variable{Name: &ast.Name{Value: *v.Var}}
	case v.List != nil:
		values := make([]ast.Node, len(v.List))
		for i, e := range v.List {
			values[i] = buildValue(e)
		}
		return &ast.ListValue{Values: values}
	default:
		return &ast.NullValue{}
	}
}

// parseTypeRef builds a Type node from a compact GraphQL-like type string,
// e.g. "[Int!]!". Only the wrapping syntax a variable declaration needs
// (brackets for list, trailing bang for non-null) is supported.
func parseTypeRef(s string) ast.Node {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "!") {
		return &ast.NonNullType{Type: parseTypeRef(strings.TrimSuffix(s, "!"))}
	}
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return &ast.ListType{Type: parseTypeRef(s[1 : len(s)-1])}
	}
	return &ast.NamedType{Name: &ast.Name{Value: s}}
}
