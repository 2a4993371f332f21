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

import "fmt"

// ConfigError reports a missing manifest or a manifest-listed source file
// that does not exist. The caller should exit with a non-zero status.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// StructuralError reports that the named top module could not be located,
// or that its header did not fit on a single logical line.
type StructuralError struct {
	Module string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("module %q: %s", e.Module, e.Reason)
}

// ParseError reports a gate expression whose top-level group mixes two
// distinct binary operators without parenthesisation. It carries enough
// context to print the raw and tokenised forms plus remediation guidance.
type ParseError struct {
	Raw    string
	Tokens []string
	Groups []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf(
		"ambiguous expression %q (tokens %v): groups %v mix more than one operator at the same parenthesisation level; add parentheses to indicate order of operations",
		e.Raw, e.Tokens, e.Groups)
}
