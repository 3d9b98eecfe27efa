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

// Package visitor implements a depth-first AST traversal engine that
// dispatches enter/leave events to pluggable callbacks, along with two
// compositions over it: a combinator that runs several visitors in
// lockstep, and one that keeps a type tracker synchronized with traversal.
package visitor

import "github.com/gqlkit/visitor/ast"

type action int

const (
	actionContinue action = iota
	actionSkip
	actionStop
	actionDelete
	actionReplace
)

// Result is the value a callback returns to direct the engine: Continue,
// Skip, Stop, Delete, or Replace(node). There is no exported zero value
// other than Continue; callbacks build one of the package-level sentinels
// or call Replace.
type Result struct {
	action action
	node   ast.Node
}

// Continue proceeds normally: the event's default behavior.
var Continue = Result{action: actionContinue}

// Skip suppresses descent into the current node, at enter; its leave
// event is also suppressed, and the node is emitted unchanged.
var Skip = Result{action: actionSkip}

// Stop aborts the whole traversal immediately. No further leave events
// fire, and Visit returns the original input tree unchanged — any edits
// made before the Stop are discarded.
var Stop = Result{action: actionStop}

// Delete removes the current node from its parent.
var Delete = Result{action: actionDelete}

// Replace substitutes n for the current node. If returned at enter,
// traversal recurses into n instead of the original node.
func Replace(n ast.Node) Result {
	return Result{action: actionReplace, node: n}
}

// IsReplace reports whether r is a Replace result, returning its payload.
func (r Result) IsReplace() (ast.Node, bool) {
	return r.node, r.action == actionReplace
}
