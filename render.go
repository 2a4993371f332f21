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
	"fmt"
	"os/exec"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"
)

// dotNode is a drawable in the rendered schematic: one per Block, Reg,
// gated Wire/Output/Inout, primary input/output terminal, and internal
// gate-tree symbol. It implements graph.Node and dot.Node.
type dotNode struct {
	id    int64
	key   string
	label string
	shape string
}

func (n *dotNode) ID() int64     { return n.id }
func (n *dotNode) DOTID() string { return fmt.Sprintf("%q", n.key) }

func (n *dotNode) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%q", n.label)}}
	if n.shape != "" {
		attrs = append(attrs, encoding.Attribute{Key: "shape", Value: n.shape})
	}
	return attrs
}

// dotLine is one directed connection in the rendered multigraph. Several
// lines may share the same (From, To) pair — e.g. a gate whose two
// operands are the same signal — hence multi.DirectedGraph rather than a
// simple graph.
type dotLine struct {
	id      int64
	f, t    graph.Node
	label   string
	noArrow bool
}

func (e *dotLine) From() graph.Node         { return e.f }
func (e *dotLine) To() graph.Node           { return e.t }
func (e *dotLine) ID() int64                { return e.id }
func (e *dotLine) ReversedEdge() graph.Edge { return &dotLine{id: e.id, f: e.t, t: e.f, label: e.label} }

func (e *dotLine) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: fmt.Sprintf("%q", e.label)}}
	if e.noArrow {
		attrs = append(attrs, encoding.Attribute{Key: "arrowhead", Value: "none"})
	}
	return attrs
}

// renderer accumulates dot nodes/lines while walking a Schematic.
type renderer struct {
	g        *multi.DirectedGraph
	byName   map[string]*dotNode
	nextNode int64
	nextLine int64
}

func (r *renderer) newNode(key, label, shape string) *dotNode {
	n := &dotNode{id: r.nextNode, key: key, label: label, shape: shape}
	r.nextNode++
	r.g.AddNode(n)
	return n
}

func (r *renderer) link(from, to graph.Node, label string, noArrow bool) {
	r.g.SetLine(&dotLine{id: r.nextLine, f: from, t: to, label: label, noArrow: noArrow})
	r.nextLine++
}

// nodeFor returns the drawable for a schematic signal name, creating a
// plaintext terminal labelled with the name for any leaf that isn't itself a materialised
// schematic node (a literal or an otherwise-unrecognised reference).
func (r *renderer) nodeFor(name string) *dotNode {
	if n, ok := r.byName[name]; ok {
		return n
	}
	n := r.newNode(name, name, "plaintext")
	r.byName[name] = n
	return n
}

// renderGate materialises gate as a chain of gate-symbol drawables,
// wiring each operand's existing drawable into it, and returns the
// drawable for the tree's outermost operator.
func (r *renderer) renderGate(keyPrefix string, gate Gate) graph.Node {
	switch g := gate.(type) {
	case Leaf:
		return r.nodeFor(string(g))
	case *SingleInputGate:
		operand := r.renderGate(keyPrefix+"/~", g.Operand)
		gn := r.newNode(keyPrefix+"/~", "NOT", "invtriangle")
		r.link(operand, gn, "", false)
		return gn
	case *MultiInputGate:
		gn := r.newNode(keyPrefix+"/"+g.Op, gateSymbol(g.Op), "box")
		for i, operand := range g.Operands {
			child := r.renderGate(fmt.Sprintf("%s/%s/%d", keyPrefix, g.Op, i), operand)
			r.link(child, gn, "", false)
		}
		return gn
	case *TSB:
		gn := r.newNode(keyPrefix+"/tsb", "TSB", "box")
		in := r.renderGate(keyPrefix+"/tsb/in", g.Input)
		en := r.renderGate(keyPrefix+"/tsb/en", g.Enable)
		r.link(in, gn, "", false)
		r.link(en, gn, "EN", false)
		return gn
	default:
		return r.nodeFor(keyPrefix)
	}
}

func gateSymbol(op string) string {
	switch op {
	case "&":
		return "AND"
	case "|":
		return "OR"
	default:
		return op
	}
}

func nodeShape(role Role) string {
	switch role {
	case Block:
		return "box"
	case Reg:
		return "box"
	case Input, Inout:
		return "plaintext"
	case Output:
		return "plaintext"
	default:
		return "ellipse"
	}
}

// Render is a pure function from a Schematic to its DOT encoding: one
// drawable per Block (labelled with its referenced module name), every
// Reg, every gated Wire/Output/Inout (expanded into its full gate-tree
// symbol chain), a plaintext terminal labelled with its name for each
// primary input and output, and a junction node for every driver with more than one
// consumer. Orientation is left to right.
func Render(sch *Schematic) ([]byte, error) {
	r := &renderer{g: multi.NewDirectedGraph(), byName: map[string]*dotNode{}}

	var names []string
	for name := range sch.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n := sch.Nodes[name]
		switch n.Role {
		case Block:
			r.byName[name] = r.newNode(name, n.ModuleName, "box")
		case Reg:
			r.byName[name] = r.newNode(name, name+" (reg)", "box")
		default:
			label := name
			if n.Role == Output {
				label = name
			}
			r.byName[name] = r.newNode(name, label, nodeShape(n.Role))
		}
	}

	for _, name := range names {
		n := sch.Nodes[name]
		if (n.Role == Wire || n.Role == Output || n.Role == Inout) && n.Gate != nil {
			top := r.renderGate(name, n.Gate)
			r.link(top, r.byName[name], name, false)
		}
	}

	type rawEdge struct {
		from, to graph.Node
		label    string
	}
	var raw []rawEdge
	for _, name := range names {
		n := sch.Nodes[name]
		for _, e := range n.Outgoing {
			dest := e.Dest
			if (dest.Role == Wire || dest.Role == Output || dest.Role == Inout) && dest.Gate != nil {
				continue // destination's connectivity already expressed by the gate-tree chain above
			}
			raw = append(raw, rawEdge{from: r.byName[e.Source.Name], to: r.byName[e.Dest.Name], label: e.Label})
		}
	}

	byFrom := map[int64][]rawEdge{}
	for _, e := range raw {
		byFrom[e.from.ID()] = append(byFrom[e.from.ID()], e)
	}
	var froms []int64
	for id := range byFrom {
		froms = append(froms, id)
	}
	sort.Slice(froms, func(i, j int) bool { return froms[i] < froms[j] })
	for _, id := range froms {
		edges := byFrom[id]
		if len(edges) < 2 {
			r.link(edges[0].from, edges[0].to, edges[0].label, false)
			continue
		}
		junction := r.newNode(fmt.Sprintf("junction/%d", edges[0].from.ID()), "", "point")
		r.link(edges[0].from, junction, edges[0].label, true)
		for _, e := range edges {
			r.link(junction, e.to, e.label, false)
		}
	}

	wrapped := &attributedGraph{DirectedGraph: r.g}
	return dot.Marshal(wrapped, sanitizeID(sch.ModuleName), "", "  ", false)
}

// attributedGraph wraps a multi.DirectedGraph to add the graph-level
// "rankdir=LR" attribute so the schematic lays out left to right, matching
// a conventional signal-flow diagram.
type attributedGraph struct {
	*multi.DirectedGraph
}

func (*attributedGraph) DOTAttributers() (graphAttrs, node, edge encoding.Attributer) {
	return rankdirLR{}, nil, nil
}

type rankdirLR struct{}

func (rankdirLR) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "rankdir", Value: "LR"}}
}

func sanitizeID(name string) string {
	if name == "" {
		return "schematic"
	}
	return name
}

// Rasterize shells out to the external "dot" tool to render a DOT file
// into a PNG image, the external graph-drawing collaborator of the
// renderer interface.
func Rasterize(dotPath, pngPath string) error {
	cmd := exec.Command("dot", "-Tpng", "-o", pngPath, dotPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("dot -Tpng %s: %w: %s", dotPath, err, out)
	}
	return nil
}
