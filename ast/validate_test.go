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

func TestValidateAcceptsWellFormedTree(t *testing.T) {
	doc := &ast.OperationDefinition{
		Operation: "query",
		SelectionSet: &ast.SelectionSet{Selections: []ast.Node{
			&ast.Field{Name: &ast.Name{Value: "a"}},
		}},
	}
	assert.NoError(t, ast.Validate(doc))
}

func TestValidateRejectsMissingRequiredSlot(t *testing.T) {
	doc := &ast.OperationDefinition{Operation: "query"}
	err := ast.Validate(doc)
	require.Error(t, err)
	var merr *ast.MalformedError
	require.ErrorAs(t, err, &merr)
	assert.Equal(t, "SelectionSet", merr.Path[0].Name())
}

func TestValidateRejectsInvalidIdentifier(t *testing.T) {
	doc := &ast.OperationDefinition{
		Operation: "query",
		SelectionSet: &ast.SelectionSet{Selections: []ast.Node{
			&ast.Field{Name: &ast.Name{Value: "1bad"}},
		}},
	}
	assert.Error(t, ast.Validate(doc))
}
