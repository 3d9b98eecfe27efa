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

import (
	"github.com/gqlkit/visitor/ast"
	"github.com/gqlkit/visitor/internal/gqlerrors"
)

// Visit performs one complete depth-first traversal of root, dispatching
// enter/leave events to v in the order fixed by each node kind's visit
// order (ast.VisitOrder), and returns the resulting — possibly identical,
// possibly edited — root. root is never mutated; an edited output shares
// every untouched subtree with root.
func Visit(root ast.Node, v EventVisitor) (ast.Node, error) {
	if root == nil {
		return nil, nil
	}
	if err := ast.Validate(root); err != nil {
		return nil, err
	}

	w := &walker{v: v}
	result, deleted := w.walk(root, nil, nil, nil, nil)
	if w.err != nil {
		return nil, w.err
	}
	if w.stopped {
		// Edits below the stop point are discarded; the returned tree
		// equals the input tree.
		return root, nil
	}
	if deleted {
		// Deleting the root has nothing to remove it from; treat it the
		// same as replacing the root with an absent node.
		return nil, nil
	}
	return result, nil
}

type walker struct {
	v       EventVisitor
	stopped bool
	err     error
}

func appendKey(path []ast.Key, k ast.Key) []ast.Key {
	out := make([]ast.Key, len(path)+1)
	copy(out, path)
	out[len(path)] = k
	return out
}

func appendAncestor(ancestors []ast.Node, n ast.Node) []ast.Node {
	out := make([]ast.Node, len(ancestors)+1)
	copy(out, ancestors)
	out[len(ancestors)] = n
	return out
}

// walk visits node (addressed by key within parent, at path/ancestors) and
// returns the node that should be substituted into the parent's slot, and
// whether the node should instead be dropped (a tombstone).
func (w *walker) walk(node ast.Node, key *ast.Key, parent ast.Node, path []ast.Key, ancestors []ast.Node) (result ast.Node, deleted bool) {
	if w.stopped || w.err != nil {
		return node, false
	}
	if !ast.KnownKind(node.GetKind()) {
		w.err = gqlerrors.MalformedNode(path, "node of unregistered kind %q", node.GetKind())
		return node, false
	}

	enter := w.v.Enter(Params{Node: node, Key: key, Parent: parent, Path: path, Ancestors: ancestors})
	switch {
	case enter == Stop:
		w.stopped = true
		return node, false
	case enter == Skip:
		return node, false
	case enter == Delete:
		return nil, true
	default:
		if n, ok := enter.IsReplace(); ok {
			node = n
		} else if enter != Continue {
			w.err = gqlerrors.InvalidEdit(path, enter)
			return node, false
		}
	}

	// childAncestors/path below deliberately use `node`, not the
	// progressively-materialized `current`: a child's ancestor list must
	// reflect each open frame as it stood before that frame's own edits
	// were folded in, not the edited result being built up as children
	// return.
	childAncestors := appendAncestor(ancestors, node)
	current := node

	for _, slot := range ast.VisitOrder(node.GetKind()) {
		if w.stopped || w.err != nil {
			break
		}
		switch slot.Kind {
		case ast.SlotSingle:
			child, _ := ast.GetChild(node, slot.Name)
			if child == nil {
				continue
			}
			k := ast.SlotKey(slot.Name)
			childPath := appendKey(path, k)
			newChild, del := w.walk(child, &k, node, childPath, childAncestors)
			if w.stopped || w.err != nil {
				break
			}
			if del {
				current = ast.SetChild(current, slot.Name, nil)
			} else if newChild != child {
				current = ast.SetChild(current, slot.Name, newChild)
			}
		case ast.SlotList:
			list, _ := ast.GetChildren(node, slot.Name)
			newList, changed := w.walkList(list, slot.Name, node, path, childAncestors)
			if w.stopped || w.err != nil {
				break
			}
			if changed {
				current = ast.SetChildren(current, slot.Name, newList)
			}
		}
	}
	if w.stopped || w.err != nil {
		return current, false
	}

	leave := w.v.Leave(Params{Node: current, Key: key, Parent: parent, Path: path, Ancestors: ancestors})
	switch {
	case leave == Stop:
		w.stopped = true
		return current, false
	case leave == Delete:
		return current, true
	case leave == Skip:
		// Skip has no effect at leave: the node is already fully
		// descended into, so there is nothing left to skip.
	default:
		if n, ok := leave.IsReplace(); ok {
			current = n
		} else if leave != Continue {
			w.err = gqlerrors.InvalidEdit(path, leave)
			return current, false
		}
	}
	return current, false
}

// walkList visits a sequence slot's elements in ascending original-index
// order. Indices are never renumbered mid-walk: a tombstone compacts the
// slot only at materialization, so a later sibling's Key is unaffected by
// an earlier sibling's Delete.
func (w *walker) walkList(list []ast.Node, slotName string, parent ast.Node, path []ast.Key, ancestors []ast.Node) ([]ast.Node, bool) {
	if len(list) == 0 {
		return list, false
	}
	out := make([]ast.Node, 0, len(list))
	changed := false
	slotPath := appendKey(path, ast.SlotKey(slotName))
	for i, child := range list {
		if w.stopped || w.err != nil {
			return list, false
		}
		k := ast.IndexKey(i)
		childPath := appendKey(slotPath, k)
		newChild, del := w.walk(child, &k, parent, childPath, ancestors)
		if w.stopped || w.err != nil {
			return list, false
		}
		if del {
			changed = true
			continue
		}
		if newChild != child {
			changed = true
		}
		out = append(out, newChild)
	}
	if !changed {
		return list, false
	}
	return out, true
}
