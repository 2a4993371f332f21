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

// punctuation is the set of characters that delimit tokens and are
// themselves emitted as one-character tokens. Parentheses are
// deliberately excluded: the gate parser relies on them surviving inside
// adjacent tokens to detect grouping.
const punctuation = ",:?;&|+-*=."

// Tokenize splits a logical line into tokens. Whitespace delimits but is
// discarded; each punctuation character delimits and is also emitted as
// its own single-character token.
func Tokenize(line string) []string {
	var tokens []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, c := range line {
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			flush()
		case strings.ContainsRune(punctuation, c):
			flush()
			tokens = append(tokens, string(c))
		default:
			cur.WriteRune(c)
		}
	}
	flush()
	return tokens
}
