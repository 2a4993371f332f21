// Copyright 2011 Google Inc. All Rights Reserved.
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

package schem

import "strings"

// Clean strips line comments, block comments and compiler directives from
// raw source lines and re-splits the result so that exactly one top-level
// statement occupies each returned logical line.
//
// Block-comment state persists across the call, which is why Clean takes
// the whole file rather than a single line: a "/*" on one line and the
// matching "*/" several lines later must be elided as a unit.
func Clean(lines []string) []string {
	var result []string
	inBlockComment := false
	for _, line := range lines {
		var b strings.Builder
		i := 0
		for i < len(line) {
			if inBlockComment {
				if strings.HasPrefix(line[i:], "*/") {
					inBlockComment = false
					i += 2
				} else {
					i++
				}
				continue
			}
			if strings.HasPrefix(line[i:], "/*") {
				inBlockComment = true
				i += 2
				continue
			}
			if strings.HasPrefix(line[i:], "//") || line[i] == '`' {
				break
			}
			b.WriteByte(line[i])
			i++
		}
		stripped := strings.TrimSpace(b.String())
		if stripped == "" {
			continue
		}
		result = append(result, splitStatements(stripped)...)
	}
	return result
}

// splitStatements splits a single cleaned line containing multiple ';'
// terminated statements into one logical line per statement. A trailing
// fragment with no terminator is kept as-is, letting a later continuation
// line re-concatenate with it.
func splitStatements(line string) []string {
	parts := strings.Split(line, ";")
	var out []string
	for idx, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx < len(parts)-1 {
			out = append(out, part+";")
		} else if strings.HasSuffix(line, ";") {
			out = append(out, part+";")
		} else {
			out = append(out, part)
		}
	}
	return out
}
