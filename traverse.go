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
	"strconv"
	"strings"
)

// reservedKeywords never count as a bare instantiated-module identifier.
var reservedKeywords = map[string]bool{
	"input": true, "output": true, "inout": true,
	"wire": true, "reg": true, "assign": true,
	"module": true, "endmodule": true,
}

// moduleInfo is the per-module slice plus its declared port/net sets,
// computed once per module name and cached for the lifetime of a Build.
type moduleInfo struct {
	name    string
	slice   []string
	inputs  []string
	outputs []string
	inouts  []string
	wires   []string
}

func (m *moduleInfo) portSet() []string {
	return append(append([]string{}, m.inputs...), m.inouts...)
}

// traversal carries the state shared across one Build call: the whole
// corpus (needed to fetch a submodule's own slice on descent) and a cache
// of already-sliced modules.
type traversal struct {
	corpus []string
	cache  map[string]*moduleInfo
}

func newTraversal(corpus []string) *traversal {
	return &traversal{corpus: corpus, cache: map[string]*moduleInfo{}}
}

func (t *traversal) moduleInfo(name string) (*moduleInfo, error) {
	if m, ok := t.cache[name]; ok {
		return m, nil
	}
	slice, err := ModuleSlice(t.corpus, name)
	if err != nil {
		return nil, err
	}
	m := &moduleInfo{
		name:    name,
		slice:   slice,
		inputs:  Declarations(slice, "input"),
		outputs: Declarations(slice, "output"),
		inouts:  Declarations(slice, "inout"),
		wires:   Declarations(slice, "wire"),
	}
	t.cache[name] = m
	return m, nil
}

// Build walks topModule's port-driven signal graph and returns the
// resulting schematic. The only error it returns is the StructuralError
// raised when topModule itself cannot be sliced, or a ParseError raised by
// an ambiguous gate expression encountered along the way; every other
// unrecognised construct is a silent under-approximation.
func Build(corpus []string, topModule string) (*Schematic, error) {
	t := newTraversal(corpus)
	info, err := t.moduleInfo(topModule)
	if err != nil {
		if se, ok := err.(*StructuralError); ok {
			if suggestion, found := SuggestModule(topModule, AllModuleNames(corpus)); found {
				return nil, &StructuralError{Module: se.Module, Reason: se.Reason + fmt.Sprintf("; did you mean %q?", suggestion)}
			}
		}
		return nil, err
	}

	sch := NewSchematic(topModule)
	for _, name := range info.inputs {
		sch.AddInput(name)
	}
	for _, name := range info.inouts {
		sch.AddInout(name)
	}

	for _, name := range info.inputs {
		if name == "clk" {
			continue
		}
		if err := t.trace(sch, info, name); err != nil {
			return nil, err
		}
	}
	for _, name := range info.inouts {
		if name == "clk" {
			continue
		}
		if err := t.trace(sch, info, name); err != nil {
			return nil, err
		}
	}
	return sch, nil
}

// trace expands nodeName's usages within info's module slice: every
// submodule port binding, continuous assignment, or register update that
// mentions nodeName produces an outgoing edge from it. It is idempotent;
// a nodeName already visited in sch returns immediately.
func (t *traversal) trace(sch *Schematic, info *moduleInfo, nodeName string) error {
	if sch.Visited(nodeName) {
		return nil
	}
	sch.Visit(nodeName)

	slice := info.slice
	i := 0
	for i < len(slice) {
		if nodeName != "clk" {
			if port, ok := findPortBinding(slice[i], nodeName); ok {
				if err := t.descendBlock(sch, info, i, port, nodeName); err != nil {
					return err
				}
				i++
				continue
			}
		}

		total, next := stitch(slice, i)
		toks := Tokenize(total)
		if err := t.classify(sch, info, nodeName, toks); err != nil {
			return err
		}
		i = next
	}
	return nil
}

// classify recognises the continuous-assignment and register-update
// statement shapes within a stitched, re-tokenised logical line and, if
// nodeName is referenced on the right-hand side, materialises the
// destination node and edge.
func (t *traversal) classify(sch *Schematic, info *moduleInfo, nodeName string, toks []string) error {
	if len(toks) < 4 {
		return nil
	}

	switch {
	case (toks[0] == "wire" || toks[0] == "assign") && toks[2] == "=":
		destName := toks[1]
		rhs := rhsTokens(toks[3:])
		if !containsName(rhs, nodeName) {
			return nil
		}
		role, ok := assignTargetRole(info, toks[0], destName)
		if !ok {
			return nil
		}
		// A bare single-identifier RHS ("assign y = a;", 5 tokens including
		// the ";") produces a node with no gate attachment.
		var gate Gate
		if len(rhs) > 1 {
			g, err := BuildGate(rhs)
			if err != nil {
				return err
			}
			gate = g
		}
		dest, _ := sch.Connect(nodeName, destName, role, gate, "", false)
		return t.followEdge(sch, info, dest)

	case toks[1] == "<" && toks[2] == "=":
		destName := toks[0]
		rhs := rhsTokens(toks[3:])
		if !containsName(rhs, nodeName) {
			return nil
		}
		dest, _ := sch.Connect(nodeName, destName, Reg, nil, "", false)
		return t.followEdge(sch, info, dest)
	}
	return nil
}

// assignTargetRole resolves the role a "wire" or "assign" statement's
// destination takes, by declaration-set membership for "assign" targets.
func assignTargetRole(info *moduleInfo, keyword, destName string) (Role, bool) {
	if keyword == "wire" {
		return Wire, true
	}
	switch {
	case containsName(info.wires, destName):
		return Wire, true
	case containsName(info.inouts, destName):
		return Inout, true
	case containsName(info.outputs, destName):
		return Output, true
	default:
		return 0, false
	}
}

// followEdge recurses the traversal into dest if it is an input-capable
// role (Wire, Reg, Block, Inout). A Block re-enters its own referenced
// module's slice and walks from each of its outputs and inouts; every
// other role continues within the current module's slice.
func (t *traversal) followEdge(sch *Schematic, info *moduleInfo, dest *Node) error {
	switch dest.Role {
	case Wire, Reg, Inout:
		return t.trace(sch, info, dest.Name)
	case Block:
		refInfo, err := t.moduleInfo(dest.ModuleName)
		if err != nil {
			return nil
		}
		for _, name := range refInfo.outputs {
			if err := t.trace(sch, refInfo, name); err != nil {
				return err
			}
		}
		for _, name := range refInfo.inouts {
			if err := t.trace(sch, refInfo, name); err != nil {
				return err
			}
		}
	}
	return nil
}

// descendBlock handles the submodule-instance branch: slice[branch] binds
// nodeName to port. The instantiation header ("modName instName(") is
// usually the prefix of the very same line ("sub u1(.in(a), .out(y));");
// when a source instead lays port bindings out on their own continuation
// lines, the header is sought forward from branch. Either way the cursor
// itself only ever advances past branch — no backward motion. Once found,
// port's membership in the referenced module's input/inout set is
// verified and a Block node keyed by the instance name is materialised.
func (t *traversal) descendBlock(sch *Schematic, info *moduleInfo, branch int, port, nodeName string) error {
	slice := info.slice
	modName, instName, ok := instantiationHeader(slice[branch])
	to := branch
	if !ok {
		for j := branch + 1; j < len(slice); j++ {
			if m, n, found := bareIdentifierLine(slice[j]); found {
				modName, instName, ok, to = m, n, true, j
				break
			}
		}
	}
	if !ok {
		return nil
	}

	refInfo, err := t.moduleInfo(modName)
	if err != nil {
		return nil
	}
	if !containsName(refInfo.portSet(), port) {
		return nil
	}
	clocked := containsName(refInfo.inputs, "clk")
	dest, preexisted := sch.Connect(nodeName, instName, Block, nil, modName, clocked)
	if !preexisted {
		dest.InputNums = extractIntLiterals(slice, branch, to)
	}
	return t.followEdge(sch, info, dest)
}

// findPortBinding searches line for a named port binding ".port(signal)"
// whose bound signal is exactly nodeName, anywhere in the line — an
// instantiation's bindings may share a line with its header and its
// siblings ("sub u1(.in(a), .out(y));").
func findPortBinding(line, nodeName string) (port string, ok bool) {
	for idx := 0; idx < len(line); idx++ {
		if line[idx] != '.' {
			continue
		}
		open := strings.IndexByte(line[idx:], '(')
		if open < 0 {
			break
		}
		open += idx
		closeIdx := strings.IndexByte(line[open:], ')')
		if closeIdx < 0 {
			break
		}
		closeIdx += open

		portCandidate := strings.TrimSpace(line[idx+1 : open])
		signal := strings.TrimSpace(line[open+1 : closeIdx])
		if signal == nodeName && isIdentifier(portCandidate) {
			return portCandidate, true
		}
		idx = closeIdx
	}
	return "", false
}

// instantiationHeader extracts a leading "moduleName instanceName" pair
// from the portion of line before its first port binding, if any.
func instantiationHeader(line string) (moduleName, instName string, ok bool) {
	head := line
	if idx := strings.IndexByte(line, '.'); idx >= 0 {
		head = line[:idx]
	}
	return bareIdentifierLine(head)
}

// bareIdentifierLine reports whether line is a plain "moduleName
// instanceName" instantiation header, ignoring a trailing "(" and any
// stray punctuation.
func bareIdentifierLine(line string) (moduleName, instName string, ok bool) {
	trimmed := strings.TrimRight(strings.TrimSpace(line), "(),;")
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return "", "", false
	}
	if !isIdentifier(fields[0]) || reservedKeywords[fields[0]] {
		return "", "", false
	}
	moduleName = fields[0]
	if len(fields) > 1 && isIdentifier(fields[1]) {
		instName = fields[1]
	} else {
		instName = moduleName
	}
	return moduleName, instName, true
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// stitch joins slice lines starting at i, up to and including the first
// one ending in ";", into one logical statement for re-tokenisation.
func stitch(slice []string, i int) (string, int) {
	var parts []string
	j := i
	for j < len(slice) {
		parts = append(parts, slice[j])
		terminated := strings.HasSuffix(slice[j], ";")
		j++
		if terminated {
			break
		}
	}
	return strings.Join(parts, " "), j
}

// rhsTokens drops a trailing statement-terminating ";" token, if present.
func rhsTokens(toks []string) []string {
	if len(toks) > 0 && toks[len(toks)-1] == ";" {
		return toks[:len(toks)-1]
	}
	return toks
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// extractIntLiterals collects every bare integer-literal token appearing
// in slice[from:to+1], in source order, as the instantiation's inputs-nums
// metadata.
func extractIntLiterals(slice []string, from, to int) []int {
	var nums []int
	for i := from; i <= to && i < len(slice); i++ {
		for _, tok := range Tokenize(slice[i]) {
			if n, err := strconv.Atoi(tok); err == nil {
				nums = append(nums, n)
			}
		}
	}
	return nums
}
