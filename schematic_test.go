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

func TestAddInput(t *testing.T) {
	s := NewSchematic("top")
	s.AddInput("a")
	s.AddInput("b")
	if diff := len(s.Inputs); diff != 2 {
		t.Fatalf("len(Inputs) = %d, want 2", diff)
	}
	if s.Inputs[0] != "a" || s.Inputs[1] != "b" {
		t.Fatalf("Inputs = %v, want [a b]", s.Inputs)
	}
	if n, ok := s.Nodes["a"]; !ok || n.Role != Input {
		t.Fatalf("Nodes[a] = %+v, ok=%v, want Input role", n, ok)
	}
}

func TestConnect_CreatesNodeOnce(t *testing.T) {
	s := NewSchematic("top")
	s.AddInput("a")

	_, pre := s.Connect("a", "w", Wire, Leaf("a"), "", false)
	if pre {
		t.Fatal("Connect() reported pre-existing on first creation")
	}
	_, pre = s.Connect("a", "w", Wire, Leaf("a"), "", false)
	if !pre {
		t.Fatal("Connect() did not report pre-existing on second connection to same dest")
	}
	if len(s.Nodes) != 2 {
		t.Fatalf("len(Nodes) = %d, want 2 (a, w)", len(s.Nodes))
	}
	if len(s.Nodes["a"].Outgoing) != 2 {
		t.Fatalf("len(a.Outgoing) = %d, want 2 edges from two connects", len(s.Nodes["a"].Outgoing))
	}
}

func TestConnect_BlockMetadata(t *testing.T) {
	s := NewSchematic("top")
	s.AddInput("clk")
	_, _ = s.Connect("clk", "u0", Block, nil, "dff", true)
	u0 := s.Nodes["u0"]
	if u0.ModuleName != "dff" || !u0.Clocked {
		t.Fatalf("u0 = %+v, want ModuleName=dff Clocked=true", u0)
	}
}

func TestVisitedIsPerSchematic(t *testing.T) {
	s1 := NewSchematic("top")
	s2 := NewSchematic("top")
	s1.Visit("a")
	if s1.Visited("a") != true {
		t.Fatal("s1 should have visited a")
	}
	if s2.Visited("a") {
		t.Fatal("s2's visited set leaked from s1")
	}
}
