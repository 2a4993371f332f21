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

import (
	"strings"
	"testing"
)

func TestRender_AndGateProducesGateSymbolAndLeaves(t *testing.T) {
	corpus := []string{
		"module top(a, b, y);",
		"input a;",
		"input b;",
		"output y;",
		"assign y = a & b;",
		"endmodule",
	}
	sch, err := Build(corpus, "top")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Render(sch)
	if err != nil {
		t.Fatal(err)
	}
	dotText := string(out)
	for _, want := range []string{"rankdir", "AND", "\"a\"", "\"b\"", "\"y\""} {
		if !strings.Contains(dotText, want) {
			t.Errorf("rendered DOT missing %q:\n%s", want, dotText)
		}
	}
}

func TestRender_JunctionOnFanout(t *testing.T) {
	corpus := []string{
		"module top(a, x, y);",
		"input a;",
		"output x;",
		"output y;",
		"assign x = a;",
		"assign y = a;",
		"endmodule",
	}
	sch, err := Build(corpus, "top")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Render(sch)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "junction") {
		t.Errorf("expected a junction node for a's two-consumer fanout:\n%s", out)
	}
}

// TestRender_GatedWireFeedsRegister exercises a gated wire that itself
// drives a further, non-gated consumer (a register update) — chained
// combinational logic feeding sequential state. The wire's own edge to
// the register must survive, and its leaves must not also gain a
// redundant direct edge bypassing the gate box.
func TestRender_GatedWireFeedsRegister(t *testing.T) {
	corpus := []string{
		"module top(a, b, q);",
		"input a;",
		"input b;",
		"output q;",
		"wire w;",
		"assign w = a & b;",
		"reg q;",
		"q <= w;",
		"endmodule",
	}
	sch, err := Build(corpus, "top")
	if err != nil {
		t.Fatal(err)
	}
	out, err := Render(sch)
	if err != nil {
		t.Fatal(err)
	}
	dotText := string(out)

	if !strings.Contains(dotText, `"w" -> "q"`) {
		t.Errorf("expected w's edge into the register q to survive:\n%s", dotText)
	}
	if strings.Contains(dotText, `"a" -> "w"`) || strings.Contains(dotText, `"b" -> "w"`) {
		t.Errorf("leaves should only reach w through its gate box, not by a direct edge:\n%s", dotText)
	}
}
