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

// Package gqlerrors implements the traversal engine's two fatal error
// cases, malformed nodes and invalid callback edits. Both carry the Path at
// which the traversal engine detected them.
package gqlerrors

import (
	"strings"

	"golang.org/x/xerrors"

	"github.com/gqlkit/visitor/ast"
)

// Kind classifies a fatal traversal error.
type Kind string

const (
	// KindMalformedNode: a node whose kind is unknown to the registry, or
	// whose required slot is missing.
	KindMalformedNode Kind = "malformed-node"
	// KindInvalidEdit: a callback returned a value that is neither a Node
	// nor a recognized sentinel.
	KindInvalidEdit Kind = "invalid-edit"
)

// Error is the single exported error type for both fatal cases. It wraps a
// cause with xerrors so callers can still xerrors.Is/As through it.
type Error struct {
	Kind Kind
	Path []ast.Key
	err  error
}

// Newf builds an Error of the given kind at path, wrapping a formatted
// cause.
func Newf(kind Kind, path []ast.Key, format string, args ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Path: append([]ast.Key(nil), path...),
		err:  xerrors.Errorf(format, args...),
	}
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.err.Error()
	}
	parts := make([]string, len(e.Path))
	for i, k := range e.Path {
		parts[i] = k.String()
	}
	return strings.Join(parts, "/") + ": " + e.err.Error()
}

// Unwrap exposes the wrapped cause for xerrors.Is/As and the stdlib errors
// package.
func (e *Error) Unwrap() error { return e.err }

// MalformedNode reports a node whose kind is unregistered, or whose
// required slot is missing, at path.
func MalformedNode(path []ast.Key, format string, args ...interface{}) *Error {
	return Newf(KindMalformedNode, path, format, args...)
}

// InvalidEdit reports a callback return value that is neither a Node nor a
// recognized sentinel, at path.
func InvalidEdit(path []ast.Key, value interface{}) *Error {
	return Newf(KindInvalidEdit, path, "invalid edit: callback returned %#v", value)
}
