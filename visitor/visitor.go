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

// KindFuncs holds the enter/leave callbacks registered for one specific
// node kind. A KindFuncs with only Enter set registers a single callback,
// interpreted as the enter event.
type KindFuncs struct {
	Enter Func
	Leave Func
}

// Visitor is a visitor descriptor: per-kind callbacks plus wildcard
// enter/leave callbacks that apply to every kind. It implements
// EventVisitor directly, so a *Visitor can be passed to Visit,
// VisitInParallel, or VisitWithTypeInfo.
//
// Selection rule for event (kind, phase): if Kinds has a record for kind
// with a callback for phase, dispatch it; else if a wildcard callback for
// phase is set, dispatch it; else no dispatch (Continue).
type Visitor struct {
	Kinds map[ast.Kind]KindFuncs
	Enter Func
	Leave Func
}

func (v *Visitor) dispatch(p Params, leaving bool) Result {
	if v == nil {
		return Continue
	}
	var f Func
	if kf, ok := v.Kinds[p.Node.GetKind()]; ok {
		if leaving {
			f = kf.Leave
		} else {
			f = kf.Enter
		}
	}
	if f == nil {
		if leaving {
			f = v.Leave
		} else {
			f = v.Enter
		}
	}
	if f == nil {
		return Continue
	}
	return f(p)
}

// Enter implements EventVisitor.
func (v *Visitor) Enter(p Params) Result { return v.dispatch(p, false) }

// Leave implements EventVisitor.
func (v *Visitor) Leave(p Params) Result { return v.dispatch(p, true) }

// Simple builds a Visitor with only wildcard enter/leave callbacks — the
// top-level {enter?, leave?} descriptor shape.
func Simple(enter, leave Func) *Visitor {
	return &Visitor{Enter: enter, Leave: leave}
}

// ForKinds builds a Visitor with only per-kind callbacks — the
// kind-keyed-map descriptor shape.
func ForKinds(kinds map[ast.Kind]KindFuncs) *Visitor {
	return &Visitor{Kinds: kinds}
}
