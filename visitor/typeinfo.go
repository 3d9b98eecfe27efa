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

// TypeTracker is the interface a schema-derived type context must satisfy
// to ride along with a traversal. Enter/Leave push and pop the tracker's
// internal stacks; callers read the current context through whatever
// accessors the concrete tracker exposes (GetType, GetParentType, and so
// on — not part of this interface, since the engine never calls them).
type TypeTracker interface {
	Enter(n ast.Node)
	Leave(n ast.Node)
}

type typeInfoVisitor struct {
	tracker TypeTracker
	user    EventVisitor
}

// VisitWithTypeInfo wraps user so every callback observes tracker's type
// context as of the moment just after the tracker has processed the event.
func VisitWithTypeInfo(tracker TypeTracker, user EventVisitor) EventVisitor {
	return &typeInfoVisitor{tracker: tracker, user: user}
}

func (t *typeInfoVisitor) Enter(p Params) Result {
	t.tracker.Enter(p.Node)
	r := t.user.Enter(p)

	switch {
	case r == Skip, r == Delete, r == Stop:
		if r != Stop {
			t.tracker.Leave(p.Node)
		}
		return r
	default:
		if n, ok := r.IsReplace(); ok {
			t.tracker.Leave(p.Node)
			t.tracker.Enter(n)
		}
		return r
	}
}

func (t *typeInfoVisitor) Leave(p Params) Result {
	r := t.user.Leave(p)
	if r != Stop {
		t.tracker.Leave(p.Node)
	}
	return r
}
