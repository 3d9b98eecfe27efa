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

package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gqlkit/visitor/ast"
	"github.com/gqlkit/visitor/internal/testfixture"
	"github.com/gqlkit/visitor/printer"
	"github.com/gqlkit/visitor/visitor"
)

// fixtureBundle bundles the YAML documents exercised by
// TestWalkAgainstFixtureBundle into a single txtar archive, the way a
// table test with several sizable inputs reads better as named files than
// as a wall of Go struct literals.
const fixtureBundle = `walk engine fixtures: path/skip/delete scenarios
-- plain.yaml --
operation: query
name: GetHuman
selectionSet:
  - name: human
    arguments:
      - name: id
        value: {int: 1}
    selectionSet:
      - name: name
      - name: pets
        selectionSet:
          - name: name
-- nested_skip.yaml --
operation: query
selectionSet:
  - name: a
  - name: b
    selectionSet:
      - name: x
      - name: y
  - name: c
`

func TestWalkAgainstFixtureBundle(t *testing.T) {
	bundle := testfixture.LoadBundle([]byte(fixtureBundle))

	t.Run("delete matching field everywhere", func(t *testing.T) {
		data, err := bundle.File("plain.yaml")
		require.NoError(t, err)
		doc, err := testfixture.Decode(data)
		require.NoError(t, err)

		v := visitor.ForKinds(map[ast.Kind]visitor.KindFuncs{
			ast.KindField: {Enter: func(p visitor.Params) visitor.Result {
				if p.Node.(*ast.Field).Name.(*ast.Name).Value == "pets" {
					return visitor.Delete
				}
				return visitor.Continue
			}},
		})

		result, err := visitor.Visit(doc, v)
		require.NoError(t, err)
		require.Equal(t, `query GetHuman { human(id: 1) { name } }`, printer.Print(result))
	})

	t.Run("skip subtree leaves nested fields unvisited", func(t *testing.T) {
		data, err := bundle.File("nested_skip.yaml")
		require.NoError(t, err)
		doc, err := testfixture.Decode(data)
		require.NoError(t, err)

		var entered []string
		v := visitor.ForKinds(map[ast.Kind]visitor.KindFuncs{
			ast.KindField: {Enter: func(p visitor.Params) visitor.Result {
				name := p.Node.(*ast.Field).Name.(*ast.Name).Value
				entered = append(entered, name)
				if name == "b" {
					return visitor.Skip
				}
				return visitor.Continue
			}},
		})

		result, err := visitor.Visit(doc, v)
		require.NoError(t, err)
		require.Equal(t, []string{"a", "b", "c"}, entered)
		require.Equal(t, `query { a, b { x, y }, c }`, printer.Print(result))
	})

	_, err := bundle.File("missing.yaml")
	require.Error(t, err)
}
