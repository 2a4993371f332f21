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

// Declarations returns the identifiers declared by keyword ("input",
// "output", "inout", "wire" or "reg") within a module slice, in source
// order. Bit-range brackets are skipped and a stray "reg" qualifier
// embedded in a non-"reg" declaration (e.g. "output reg [7:0] q") is
// tolerated.
func Declarations(slice []string, keyword string) []string {
	var names []string
	for _, line := range slice {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, keyword) {
			continue
		}
		if keyword != "reg" {
			line = stripRegQualifier(line)
		}
		names = append(names, scanNames(line[len(keyword):])...)
	}
	return names
}

// stripRegQualifier removes a standalone "reg" token from a declaration
// line so callers querying a keyword other than "reg" don't see it folded
// into the identifier list (e.g. "output reg [7:0] q" -> "output [7:0] q").
func stripRegQualifier(line string) string {
	const tok = "reg"
	idx := strings.Index(line, tok)
	if idx <= 0 {
		return line
	}
	before := line[idx-1]
	if before != ' ' && before != '\t' {
		return line
	}
	after := idx + len(tok)
	if after < len(line) && line[after] != ' ' && line[after] != '\t' {
		return line
	}
	return line[:idx] + line[after:]
}

// scanNames extracts comma-separated identifiers from a declaration's
// tail (everything after the keyword), skipping bracketed bit ranges and
// discarding whitespace.
func scanNames(tail string) []string {
	var names []string
	var cur strings.Builder
	depth := 0
	flush := func() {
		name := strings.TrimSpace(cur.String())
		if name != "" {
			names = append(names, name)
		}
		cur.Reset()
	}
	for _, c := range tail {
		switch {
		case c == '[':
			depth++
		case c == ']':
			if depth > 0 {
				depth--
			}
		case depth > 0:
			// Inside a bit-range; skip.
		case c == ',' || c == ';':
			flush()
		case c == ' ' || c == '\t':
			// Discard whitespace inside a name.
		default:
			cur.WriteRune(c)
		}
	}
	flush()
	return names
}
