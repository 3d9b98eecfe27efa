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

// Package testfixture loads small, self-contained test inputs: txtar
// archives bundling several named YAML documents into one file, each
// decodable into a node tree by Decode.
package testfixture

import (
	"fmt"

	"golang.org/x/tools/txtar"
)

// Bundle is a parsed txtar archive: Comment is the archive's leading
// comment block (often used by a table test as a human-readable title),
// Files maps each archive member's name to its raw contents.
type Bundle struct {
	Comment string
	Files   map[string][]byte
}

// LoadBundle parses data as a txtar archive.
func LoadBundle(data []byte) *Bundle {
	a := txtar.Parse(data)
	b := &Bundle{Comment: string(a.Comment), Files: map[string][]byte{}}
	for _, f := range a.Files {
		b.Files[f.Name] = f.Data
	}
	return b
}

// File returns the named member, or an error if the bundle has none.
func (b *Bundle) File(name string) ([]byte, error) {
	data, ok := b.Files[name]
	if !ok {
		return nil, fmt.Errorf("testfixture: bundle has no file %q", name)
	}
	return data, nil
}
