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

package app

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gqlkit/visitor/ast"
	"github.com/gqlkit/visitor/schema"
	"github.com/gqlkit/visitor/typeinfo"
	"github.com/gqlkit/visitor/visitor"
)

// preset builds an EventVisitor given the CLI flags in scope. The returned
// report function is called once traversal completes and its result (if
// non-empty) is appended to the command's output; presets with nothing to
// add beyond the printed tree return one that always reports "".
type preset func(opts presetOptions) (v visitor.EventVisitor, report func() string, err error)

type presetOptions struct {
	field  string
	schema *schema.Schema
}

var presets = map[string]preset{
	"delete-field":  deleteFieldPreset,
	"wrap-typename": wrapTypenamePreset,
	"count-kinds":   countKindsPreset,
}

// presetNames lists the registered preset names, sorted for stable --help
// and error-message output.
func presetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func noReport() string { return "" }

// deleteFieldPreset removes every Field named opts.field, wherever it
// appears in the tree.
func deleteFieldPreset(opts presetOptions) (visitor.EventVisitor, func() string, error) {
	if opts.field == "" {
		return nil, nil, fmt.Errorf("preset delete-field requires --field")
	}
	v := visitor.ForKinds(map[ast.Kind]visitor.KindFuncs{
		ast.KindField: {Enter: func(p visitor.Params) visitor.Result {
			f := p.Node.(*ast.Field)
			if name, ok := f.Name.(*ast.Name); ok && name.Value == opts.field {
				return visitor.Delete
			}
			return visitor.Continue
		}},
	})
	return v, noReport, nil
}

// wrapTypenamePreset inserts a "__typename" selection under every leaf
// field whose resolved type is a composite (object, interface, or union)
// type, using opts.schema to resolve field types as it descends.
func wrapTypenamePreset(opts presetOptions) (visitor.EventVisitor, func() string, error) {
	if opts.schema == nil {
		return nil, nil, fmt.Errorf("preset wrap-typename requires --schema-proto")
	}
	tracker := typeinfo.New(opts.schema, "query")
	insert := visitor.ForKinds(map[ast.Kind]visitor.KindFuncs{
		ast.KindField: {Enter: func(p visitor.Params) visitor.Result {
			f := p.Node.(*ast.Field)
			if f.SelectionSet != nil {
				return visitor.Continue
			}
			if !schema.IsCompositeType(tracker.GetType()) {
				return visitor.Continue
			}
			clone := *f
			clone.SelectionSet = &ast.SelectionSet{
				Selections: []ast.Node{&ast.Field{Name: &ast.Name{Value: "__typename"}}},
			}
			return visitor.Replace(&clone)
		}},
	})
	return visitor.VisitWithTypeInfo(tracker, insert), noReport, nil
}

// countKindsPreset tallies how many times each node kind is entered,
// reporting the counts as a sorted "Kind: N" line list. It never edits the
// tree.
func countKindsPreset(opts presetOptions) (visitor.EventVisitor, func() string, error) {
	counts := map[ast.Kind]int{}
	v := visitor.Simple(func(p visitor.Params) visitor.Result {
		counts[p.Node.GetKind()]++
		return visitor.Continue
	}, nil)
	report := func() string {
		kinds := make([]string, 0, len(counts))
		for k := range counts {
			kinds = append(kinds, string(k))
		}
		sort.Strings(kinds)
		lines := make([]string, len(kinds))
		for i, k := range kinds {
			lines[i] = fmt.Sprintf("%s: %d", k, counts[ast.Kind(k)])
		}
		return strings.Join(lines, "\n")
	}
	return v, report, nil
}
