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

package visitor

import "github.com/gqlkit/visitor/ast"

// Params is passed to every Enter/Leave callback. Key and Parent are nil
// for the root event. Path and Ancestors always satisfy len(Ancestors) ==
// len(Path)-1, and (when Key is non-nil) Path[len(Path)-1] == *Key.
type Params struct {
	Node      ast.Node
	Key       *ast.Key
	Parent    ast.Node
	Path      []ast.Key
	Ancestors []ast.Node
}

// Func is the callback signature for a single enter or leave event.
type Func func(p Params) Result

// EventVisitor is anything the engine can dispatch enter/leave events to:
// a plain *Visitor, or one of the combinators (VisitInParallel,
// VisitWithTypeInfo), which themselves satisfy EventVisitor so they can be
// passed back into Visit or composed further.
type EventVisitor interface {
	Enter(p Params) Result
	Leave(p Params) Result
}
