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

// ModuleSlice returns the contiguous range of cleaned logical lines that
// make up the named module, from its "module NAME(" header through the
// line carrying "endmodule". The header must be a single logical line; it
// is recognised by the prefix "module " followed by name terminated by
// whitespace or '('.
func ModuleSlice(corpus []string, name string) ([]string, error) {
	start := -1
	for i, line := range corpus {
		if isModuleHeader(line, name) {
			start = i
			break
		}
	}
	if start == -1 {
		return nil, &StructuralError{
			Module: name,
			Reason: "no module header found; the header must fit on a single logical line of the form \"module " + name + "(...)\"",
		}
	}
	for i := start; i < len(corpus); i++ {
		if strings.Contains(corpus[i], "endmodule") {
			return corpus[start : i+1], nil
		}
	}
	return nil, &StructuralError{
		Module: name,
		Reason: "module header found but no matching \"endmodule\" terminator",
	}
}

// AllModuleNames returns every module name declared in corpus, in source
// order, for use in a "did you mean" suggestion when a named module
// cannot be found.
func AllModuleNames(corpus []string) []string {
	const prefix = "module "
	var names []string
	for _, line := range corpus {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		rest := line[len(prefix):]
		end := strings.IndexAny(rest, " \t(")
		if end <= 0 {
			continue
		}
		names = append(names, rest[:end])
	}
	return names
}

// isModuleHeader reports whether line is the header line of module name.
func isModuleHeader(line, name string) bool {
	const prefix = "module "
	if !strings.HasPrefix(line, prefix) {
		return false
	}
	rest := line[len(prefix):]
	if !strings.HasPrefix(rest, name) {
		return false
	}
	tail := rest[len(name):]
	return tail == "" || tail[0] == ' ' || tail[0] == '\t' || tail[0] == '('
}
