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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gqlkit/visitor/ast"
	"github.com/gqlkit/visitor/visitor"
)

func TestParallelIndependentSkips(t *testing.T) {
	doc := &ast.Document{Definitions: []ast.Node{
		anonQuery(selSet(
			field("a", selSet(field("x", nil))),
			field("b", selSet(field("y", nil))),
		)),
	}}

	var entered1, entered2 []string
	skipAt := func(skipName string, log *[]string) *visitor.Visitor {
		return visitor.ForKinds(map[ast.Kind]visitor.KindFuncs{
			ast.KindField: {Enter: func(p visitor.Params) visitor.Result {
				name := p.Node.(*ast.Field).Name.(*ast.Name).Value
				*log = append(*log, name)
				if name == skipName {
					return visitor.Skip
				}
				return visitor.Continue
			}},
		})
	}
	v1 := skipAt("a", &entered1)
	v2 := skipAt("b", &entered2)

	combined := visitor.VisitInParallel(v1, v2)
	_, err := visitor.Visit(doc, combined)
	require.NoError(t, err)

	// v1 skips at "a", so it never sees "x" (inside a) but does see "b"
	// and, since it doesn't skip b, "y" too. v2 is the mirror image.
	assert.Equal(t, []string{"a", "b", "y"}, entered1)
	assert.Equal(t, []string{"a", "x", "b"}, entered2)
}

func TestParallelStopOnlyWhenAllStopped(t *testing.T) {
	doc := &ast.Document{Definitions: []ast.Node{
		anonQuery(selSet(field("a", nil), field("b", nil), field("c", nil))),
	}}

	var entered2 []string
	v1 := visitor.ForKinds(map[ast.Kind]visitor.KindFuncs{
		ast.KindField: {Enter: func(p visitor.Params) visitor.Result {
			if p.Node.(*ast.Field).Name.(*ast.Name).Value == "a" {
				return visitor.Stop
			}
			return visitor.Continue
		}},
	})
	v2 := visitor.ForKinds(map[ast.Kind]visitor.KindFuncs{
		ast.KindField: {Enter: func(p visitor.Params) visitor.Result {
			entered2 = append(entered2, p.Node.(*ast.Field).Name.(*ast.Name).Value)
			return visitor.Continue
		}},
	})

	result, err := visitor.Visit(doc, visitor.VisitInParallel(v1, v2))
	require.NoError(t, err)

	// v1 stopped after "a", but v2 keeps going, so the overall traversal
	// does not abort — every field is still entered and the combinator
	// only reports Stop once every sub-visitor has stopped.
	assert.Equal(t, []string{"a", "b", "c"}, entered2)
	assert.Same(t, doc, result)
}
