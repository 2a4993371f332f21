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

// Role distinguishes the six disjoint node kinds a schematic can hold.
type Role int

const (
	Input Role = iota
	Inout
	Wire
	Output
	Reg
	Block
)

func (r Role) String() string {
	switch r {
	case Input:
		return "input"
	case Inout:
		return "inout"
	case Wire:
		return "wire"
	case Output:
		return "output"
	case Reg:
		return "reg"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// Node is a single entry in the schematic's directed multigraph. It is a
// tagged union rather than a type lattice: exactly one Role applies, and
// only the fields that role uses are meaningful.
//
//   - Input, Reg: Name and Outgoing only.
//   - Inout, Wire, Output: Gate holds the driving gate tree, if any.
//   - Block: ModuleName is the instantiated module, Clocked reports
//     whether that module declares an input literally named "clk", and
//     InputNums carries any integer literals that appeared as arguments
//     in the instantiation.
type Node struct {
	Name       string
	Role       Role
	Gate       Gate
	ModuleName string
	Clocked    bool
	InputNums  []int
	Outgoing   []*Edge
}

// Edge is a directed connection from a driver to a consumer. Label is the
// driver's name, carried independently of Source so the renderer can
// label an edge without dereferencing its endpoint.
type Edge struct {
	Source *Node
	Dest   *Node
	Label  string
}

// Schematic is the directed multigraph built by the traversal engine for
// one top module.
type Schematic struct {
	ModuleName string
	Inputs     []string
	Nodes      map[string]*Node
	visited    map[string]bool
}

// NewSchematic returns an empty schematic for the named top module.
func NewSchematic(moduleName string) *Schematic {
	return &Schematic{
		ModuleName: moduleName,
		Nodes:      map[string]*Node{},
		visited:    map[string]bool{},
	}
}

// AddInput records name as a primary input of the top module, creating its
// Input node if it does not already exist, and appends it to Inputs in
// declaration order.
func (s *Schematic) AddInput(name string) *Node {
	s.Inputs = append(s.Inputs, name)
	return s.nodeFor(name, Input)
}

// AddInout records name as a primary inout of the top module, creating its
// Inout node if it does not already exist, and appends it to Inputs
// alongside the primary inputs — both are traversal entry points.
func (s *Schematic) AddInout(name string) *Node {
	s.Inputs = append(s.Inputs, name)
	return s.nodeFor(name, Inout)
}

// Visited reports whether name has already been expanded by the traversal
// engine, and Visit marks it expanded. Both operate on the schematic's own
// visited set rather than any package-level state, so concurrent
// traversals of distinct schematics never interfere.
func (s *Schematic) Visited(name string) bool {
	return s.visited[name]
}

func (s *Schematic) Visit(name string) {
	s.visited[name] = true
}

// nodeFor returns the existing node named name, creating it with the given
// role if absent. An existing node is never recreated or re-roled.
func (s *Schematic) nodeFor(name string, role Role) *Node {
	if n, ok := s.Nodes[name]; ok {
		return n
	}
	n := &Node{Name: name, Role: role}
	s.Nodes[name] = n
	return n
}

// Connect materialises an edge from source to a node named destName,
// creating destName's node (with the given role) on first mention. It
// reports whether destName's node already existed before this call; the
// traversal engine uses it to record a Block's InputNums only on first
// mention (recursion itself is governed by the visited set).
//
// A primary inout's node exists before its driving assignment is ever
// found (created up front by AddInout), so gate and module-name/clocked
// metadata attach the first time they're offered rather than strictly the
// first time destName is seen: once attached they are never overwritten,
// per the "gate trees are attached at the moment a continuous assignment
// is observed" lifecycle rule.
func (s *Schematic) Connect(source, destName string, role Role, gate Gate, moduleName string, clocked bool) (dest *Node, preexisted bool) {
	dest, preexisted = s.Nodes[destName]
	if !preexisted {
		dest = &Node{Name: destName, Role: role}
		s.Nodes[destName] = dest
	}
	if gate != nil && dest.Gate == nil {
		dest.Gate = gate
	}
	if moduleName != "" && dest.ModuleName == "" {
		dest.ModuleName = moduleName
		dest.Clocked = clocked
	}

	src := s.nodeFor(source, Input)
	edge := &Edge{Source: src, Dest: dest, Label: source}
	src.Outgoing = append(src.Outgoing, edge)
	return dest, preexisted
}
