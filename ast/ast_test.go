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

package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlkit/visitor/ast"
)

func TestVisitOrder(t *testing.T) {
	assert.Equal(t, []ast.SlotSpec{
		{Name: "Alias", Kind: ast.SlotSingle},
		{Name: "Name", Kind: ast.SlotSingle},
		{Name: "Arguments", Kind: ast.SlotList},
		{Name: "Directives", Kind: ast.SlotList},
		{Name: "SelectionSet", Kind: ast.SlotSingle},
	}, ast.VisitOrder(ast.KindField))

	assert.Nil(t, ast.VisitOrder(ast.Kind("Bogus")))
	assert.True(t, ast.KnownKind(ast.KindField))
	assert.False(t, ast.KnownKind(ast.Kind("Bogus")))
}

func TestGetSetChild(t *testing.T) {
	f := &ast.Field{Name: &ast.Name{Value: "a"}}
	n, ok := ast.GetChild(f, "Name")
	require.True(t, ok)
	assert.Equal(t, "a", n.(*ast.Name).Value)

	f2 := ast.SetChild(f, "Name", &ast.Name{Value: "b"})
	assert.Equal(t, "a", f.Name.(*ast.Name).Value, "original must not be mutated")
	assert.Equal(t, "b", f2.(*ast.Field).Name.(*ast.Name).Value)
}

func TestGetSetChildren(t *testing.T) {
	ss := &ast.SelectionSet{Selections: []ast.Node{
		&ast.Field{Name: &ast.Name{Value: "a"}},
		&ast.Field{Name: &ast.Name{Value: "b"}},
	}}
	list, ok := ast.GetChildren(ss, "Selections")
	require.True(t, ok)
	assert.Len(t, list, 2)

	ss2 := ast.SetChildren(ss, "Selections", list[:1])
	assert.Len(t, ss.Selections, 2, "original must not be mutated")
	assert.Len(t, ss2.(*ast.SelectionSet).Selections, 1)
}

func TestCloneDeepIsIndependent(t *testing.T) {
	orig := &ast.Field{
		Name: &ast.Name{Value: "a"},
		SelectionSet: &ast.SelectionSet{Selections: []ast.Node{
			&ast.Field{Name: &ast.Name{Value: "x"}},
		}},
	}
	clone := ast.CloneDeep(orig).(*ast.Field)
	clone.Name.(*ast.Name).Value = "changed"
	clone.SelectionSet.(*ast.SelectionSet).Selections[0].(*ast.Field).Name.(*ast.Name).Value = "changed-too"

	assert.Equal(t, "a", orig.Name.(*ast.Name).Value)
	assert.Equal(t, "x", orig.SelectionSet.(*ast.SelectionSet).Selections[0].(*ast.Field).Name.(*ast.Name).Value)
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ast.ValidateName("human"))
	assert.NoError(t, ast.ValidateName("_private1"))
	assert.Error(t, ast.ValidateName(""))
	assert.Error(t, ast.ValidateName("1abc"))
	assert.Error(t, ast.ValidateName("has-dash"))
}
