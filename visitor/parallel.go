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

type subState int

const (
	subActive subState = iota
	subSuspended
	subStopped
)

// parallel runs several visitors in lockstep over one traversal, each with
// its own independent skip/stop state.
type parallel struct {
	visitors []EventVisitor
	state    []subState
	// suspendedAt records the node a suspended sub-visitor skipped at, so
	// it can tell when the matching leave(n) resumes it.
	suspendedAt []ast.Node
}

// VisitInParallel composes visitors into one that advances all of them in
// lockstep: each keeps its own skip/stop state, and the combined command
// follows the precedence rules of dispatch below.
func VisitInParallel(visitors ...EventVisitor) EventVisitor {
	return &parallel{
		visitors:    visitors,
		state:       make([]subState, len(visitors)),
		suspendedAt: make([]ast.Node, len(visitors)),
	}
}

func (p *parallel) Enter(params Params) Result {
	return p.dispatch(params, false)
}

func (p *parallel) Leave(params Params) Result {
	return p.dispatch(params, true)
}

func (p *parallel) dispatch(params Params, leaving bool) Result {
	for i, v := range p.visitors {
		switch p.state[i] {
		case subStopped:
			continue
		case subSuspended:
			if leaving && p.suspendedAt[i] == params.Node {
				p.state[i] = subActive
				p.suspendedAt[i] = nil
			}
			continue
		}

		var r Result
		if leaving {
			r = v.Leave(params)
		} else {
			r = v.Enter(params)
		}

		switch {
		case r == Stop:
			p.state[i] = subStopped
		case r == Skip && !leaving:
			p.state[i] = subSuspended
			p.suspendedAt[i] = params.Node
		case r == Delete:
			return r
		default:
			if _, ok := r.IsReplace(); ok {
				return r
			}
		}
	}
	for _, s := range p.state {
		if s != subStopped {
			return Continue
		}
	}
	return Stop
}
