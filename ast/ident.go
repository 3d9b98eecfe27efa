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

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9' || ch >= utf8.RuneSelf && unicode.IsDigit(ch)
}

// ValidateName reports whether name is a valid identifier: a letter or
// underscore followed by letters, digits, or underscores, where letters and
// digits include any Unicode letter or digit, not only ASCII. The input is
// first normalized to NFC so that visually-identical names that differ
// only in combining-character composition validate the same way.
func ValidateName(name string) error {
	name = norm.NFC.String(name)
	if name == "" {
		return fmt.Errorf("ast: empty name")
	}
	for i, r := range name {
		if isLetter(r) || r == '_' {
			continue
		}
		if i > 0 && isDigit(r) {
			continue
		}
		return fmt.Errorf("ast: invalid character %q in name %q", r, name)
	}
	return nil
}
