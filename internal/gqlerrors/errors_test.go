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

package gqlerrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gqlkit/visitor/ast"
	"github.com/gqlkit/visitor/internal/gqlerrors"
)

func TestErrorFormatsPathAndMessage(t *testing.T) {
	path := []ast.Key{ast.SlotKey("SelectionSet"), ast.IndexKey(1)}
	err := gqlerrors.MalformedNode(path, "required slot %q is absent", "Name")
	assert.Equal(t, "SelectionSet/1: required slot \"Name\" is absent", err.Error())
	assert.Equal(t, gqlerrors.KindMalformedNode, err.Kind)
}

func TestErrorUnwrapsCause(t *testing.T) {
	err := gqlerrors.InvalidEdit(nil, 42)
	assert.True(t, errors.Is(err, err))
	assert.NotNil(t, errors.Unwrap(err))
}
