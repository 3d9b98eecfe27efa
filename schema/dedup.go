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

package schema

import "github.com/mpvl/unique"

type stringSlice []string

func (s stringSlice) Len() int           { return len(s) }
func (s stringSlice) Less(i, j int) bool { return s[i] < s[j] }
func (s stringSlice) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s stringSlice) Equal(i, j int) bool { return s[i] == s[j] }

// dedupStrings sorts and collapses duplicate names, the way a union's
// possible-types list should never report the same object type twice.
func dedupStrings(ss []string) []string {
	if len(ss) < 2 {
		return ss
	}
	cp := append(stringSlice(nil), stringSlice(ss)...)
	n := unique.Sort(cp)
	return []string(cp[:n])
}
