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

package ast

import "fmt"

// MalformedError reports the path (in slot-name/index Keys) at which
// Validate found a node of unregistered kind, or a required slot holding
// an absent child.
type MalformedError struct {
	Path []Key
	Msg  string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%v: %s", e.Path, e.Msg)
}

// Validate walks root and reports the first node whose kind is not in the
// registry, or whose required single-child slot is absent. The traversal
// engine calls it once before starting a walk, so a malformed tree is
// rejected up front rather than partway through traversal.
func Validate(root Node) error {
	return validate(root, nil)
}

func validate(n Node, path []Key) error {
	if n == nil {
		return nil
	}
	kind := n.GetKind()
	if !KnownKind(kind) {
		return &MalformedError{Path: path, Msg: fmt.Sprintf("node of unregistered kind %q", kind)}
	}
	if name, ok := n.(*Name); ok {
		if err := ValidateName(name.Value); err != nil {
			return &MalformedError{Path: path, Msg: err.Error()}
		}
	}
	for _, slot := range VisitOrder(kind) {
		switch slot.Kind {
		case SlotSingle:
			child, _ := GetChild(n, slot.Name)
			childPath := append(append([]Key(nil), path...), SlotKey(slot.Name))
			if child == nil {
				if RequiredSingleSlot(kind, slot.Name) {
					return &MalformedError{Path: childPath, Msg: fmt.Sprintf("required slot %q of %s is absent", slot.Name, kind)}
				}
				continue
			}
			if err := validate(child, childPath); err != nil {
				return err
			}
		case SlotList:
			children, _ := GetChildren(n, slot.Name)
			for i, child := range children {
				childPath := append(append([]Key(nil), path...), SlotKey(slot.Name), IndexKey(i))
				if err := validate(child, childPath); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
