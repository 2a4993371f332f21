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

import "testing"

func TestEditDistance_Empty(t *testing.T) {
	if got := editDistance("", "schem", true, 0); got != 5 {
		t.Errorf("editDistance(\"\", \"schem\") = %d, want 5", got)
	}
	if got := editDistance("schem", "", true, 0); got != 5 {
		t.Errorf("editDistance(\"schem\", \"\") = %d, want 5", got)
	}
	if got := editDistance("", "", true, 0); got != 0 {
		t.Errorf("editDistance(\"\", \"\") = %d, want 0", got)
	}
}

func TestEditDistance_AllowReplacements(t *testing.T) {
	if got := editDistance("cpu", "cqu", true, 0); got != 1 {
		t.Errorf("with replacements: got %d, want 1", got)
	}
	if got := editDistance("cpu", "cqu", false, 0); got != 2 {
		t.Errorf("without replacements: got %d, want 2", got)
	}
}

func TestEditDistance_Basics(t *testing.T) {
	if got := editDistance("top_module", "top_module", true, 0); got != 0 {
		t.Errorf("identical strings: got %d, want 0", got)
	}
	if got := editDistance("top_modul", "top_module", true, 0); got != 1 {
		t.Errorf("one char short: got %d, want 1", got)
	}
}

func TestSuggestModule(t *testing.T) {
	candidates := []string{"alu", "decoder", "controlunit"}
	got, ok := SuggestModule("contorlunit", candidates)
	if !ok || got != "controlunit" {
		t.Fatalf("SuggestModule() = %q, %v, want \"controlunit\", true", got, ok)
	}
}

func TestSuggestModule_NoPlausibleMatch(t *testing.T) {
	_, ok := SuggestModule("zzzzzzzzzz", []string{"alu", "decoder"})
	if ok {
		t.Fatal("expected no suggestion for an unrelated name")
	}
}
