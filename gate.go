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

// Gate is a node in a combinational expression tree: a Leaf (a plain
// signal name), a MultiInputGate, a SingleInputGate, or a TSB.
type Gate interface {
	gateNode()
}

// Leaf is a plain signal name referenced as a gate operand.
type Leaf string

func (Leaf) gateNode() {}

// MultiInputGate is an N-ary operator over operands stored in source order.
// Op is the single punctuation character that separated the operands,
// usually "&" or "|".
type MultiInputGate struct {
	Op       string
	Operands []Gate
}

func (*MultiInputGate) gateNode() {}

// SingleInputGate represents logical negation ("~") of its one operand.
type SingleInputGate struct {
	Operand Gate
}

func (*SingleInputGate) gateNode() {}

// TSB is a tri-state buffer recognised from the ternary idiom
// "cond ? data : N'bzzz". Input is the data side, Enable is the cond side.
type TSB struct {
	Input  Gate
	Enable Gate
}

func (*TSB) gateNode() {}

// group is either a single-character punctuation separator (op != "") or
// an operand's constituent tokens, produced while scanning the RHS token
// stream at parenthesis-nesting depth zero.
type group struct {
	op     string
	tokens []string
}

// BuildGate parses the raw token list of the right-hand side of a
// continuous assignment into a typed Gate tree.
//
// The only failure this parser raises is the operator-uniqueness
// violation in BuildGate's step 5 (see ParseError); any other malformed
// input produces an undefined tree and is the caller's concern.
func BuildGate(tokens []string) (Gate, error) {
	raw := strings.Join(tokens, " ")
	tokens = dropEmpty(tokens)

	notGate := false
	for {
		if len(tokens) > 0 && strings.HasPrefix(tokens[0], "~(") {
			cand := append([]string{}, tokens...)
			cand[0] = cand[0][1:]
			if fullyWrapped(cand) {
				notGate = !notGate
				tokens = dropEmpty(peelOuterParens(cand))
				continue
			}
		}
		if fullyWrapped(tokens) {
			tokens = dropEmpty(peelOuterParens(tokens))
			continue
		}
		break
	}

	groups := groupTokens(tokens)

	var gate Gate
	if tsb, ok, err := buildTSB(groups); err != nil {
		return nil, err
	} else if ok {
		gate = tsb
	} else {
		g, err := buildMultiInput(groups, raw, tokens)
		if err != nil {
			return nil, err
		}
		gate = g
	}

	if notGate {
		gate = &SingleInputGate{Operand: gate}
	}
	return gate, nil
}

// buildTSB recognises the "cond ? data : N'bzzz" idiom in an already
// grouped token stream.
func buildTSB(groups []group) (*TSB, bool, error) {
	if len(groups) < 5 {
		return nil, false, nil
	}
	if groups[1].op != "?" || groups[3].op != ":" {
		return nil, false, nil
	}
	if !isHighImpedanceLiteral(strings.Join(groups[4].tokens, "")) {
		return nil, false, nil
	}
	enable, err := buildOperand(groups[0])
	if err != nil {
		return nil, false, err
	}
	input, err := buildOperand(groups[2])
	if err != nil {
		return nil, false, err
	}
	return &TSB{Input: input, Enable: enable}, true, nil
}

// isHighImpedanceLiteral reports whether text is a sized high-impedance
// literal such as "1'bz" or "8'bzzzzzzzz".
func isHighImpedanceLiteral(text string) bool {
	if text == "" || text[0] < '0' || text[0] > '9' {
		return false
	}
	return strings.Contains(text, "'") && strings.Contains(text, "z")
}

// buildMultiInput handles the general case: exactly one distinct operator
// symbol must appear among the groups.
func buildMultiInput(groups []group, raw string, tokens []string) (Gate, error) {
	gateChars := map[string]bool{}
	var order []string
	for _, g := range groups {
		if g.op != "" && !gateChars[g.op] {
			gateChars[g.op] = true
			order = append(order, g.op)
		}
	}
	if len(gateChars) != 1 {
		var observed []string
		for _, g := range groups {
			if g.op != "" {
				observed = append(observed, g.op)
			} else {
				observed = append(observed, strings.Join(g.tokens, " "))
			}
		}
		return nil, &ParseError{Raw: raw, Tokens: tokens, Groups: observed}
	}

	mig := &MultiInputGate{Op: order[0]}
	for _, g := range groups {
		if g.op != "" {
			continue
		}
		operand, err := buildOperand(g)
		if err != nil {
			return nil, err
		}
		mig.Operands = append(mig.Operands, operand)
	}
	return mig, nil
}

// buildOperand builds the Gate for a single non-operator group: a nested
// sub-expression if it still contains parentheses, otherwise a plain
// signal name (wrapped in a SingleInputGate if negated).
func buildOperand(g group) (Gate, error) {
	toks := append([]string{}, g.tokens...)
	negate := false
	if len(toks) > 0 && strings.HasPrefix(toks[0], "~") {
		negate = true
		toks[0] = toks[0][1:]
		toks = dropEmpty(toks)
	}

	var operand Gate
	if containsParen(toks) {
		sub, err := BuildGate(toks)
		if err != nil {
			return nil, err
		}
		operand = sub
	} else {
		operand = Leaf(strings.Join(toks, ""))
	}
	if negate {
		operand = &SingleInputGate{Operand: operand}
	}
	return operand, nil
}

// groupTokens splits tokens into operand groups separated by
// depth-zero punctuation tokens, then collapses adjacent identical
// operator groups ("&&", "||" reduce to their single-character form).
func groupTokens(tokens []string) []group {
	var groups []group
	var cur []string
	depth := 0
	flush := func() {
		if len(cur) > 0 {
			groups = append(groups, group{tokens: cur})
			cur = nil
		}
	}
	for _, tok := range tokens {
		if depth == 0 && len(tok) == 1 && strings.ContainsRune(punctuation, rune(tok[0])) {
			flush()
			groups = append(groups, group{op: tok})
			continue
		}
		cur = append(cur, tok)
		depth += parenDelta(tok)
	}
	flush()

	var deduped []group
	for _, g := range groups {
		if g.op != "" && len(deduped) > 0 && deduped[len(deduped)-1].op == g.op {
			continue
		}
		deduped = append(deduped, g)
	}
	return deduped
}

// parenDelta returns the net change in parenthesis nesting contributed
// by a single token's characters.
func parenDelta(tok string) int {
	d := 0
	for _, c := range tok {
		switch c {
		case '(':
			d++
		case ')':
			d--
		}
	}
	return d
}

func containsParen(tokens []string) bool {
	for _, t := range tokens {
		if strings.ContainsAny(t, "()") {
			return true
		}
	}
	return false
}

func dropEmpty(tokens []string) []string {
	var out []string
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// fullyWrapped reports whether tokens, taken as a character stream, form
// a single parenthesised group spanning the whole sequence: the opening
// '(' is the very first character and its matching ')' is the very last.
func fullyWrapped(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	first, last := tokens[0], tokens[len(tokens)-1]
	if first == "" || first[0] != '(' {
		return false
	}
	if last == "" || last[len(last)-1] != ')' {
		return false
	}
	total := 0
	for _, t := range tokens {
		total += len(t)
	}
	depth := 0
	seen := 0
	for _, t := range tokens {
		for _, c := range t {
			seen++
			switch c {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth < 0 {
				return false
			}
			if depth == 0 {
				return seen == total
			}
		}
	}
	return false
}

// peelOuterParens strips the leading '(' from the first token and the
// trailing ')' from the last token. Callers must have verified
// fullyWrapped first.
func peelOuterParens(tokens []string) []string {
	out := append([]string{}, tokens...)
	out[0] = out[0][1:]
	last := len(out) - 1
	out[last] = out[last][:len(out[last])-1]
	return out
}

// GateLeaves collects, in source order, every leaf signal name appearing
// in a gate tree.
func GateLeaves(g Gate) []string {
	var leaves []string
	var walk func(Gate)
	walk = func(g Gate) {
		switch n := g.(type) {
		case Leaf:
			leaves = append(leaves, string(n))
		case *SingleInputGate:
			walk(n.Operand)
		case *MultiInputGate:
			for _, o := range n.Operands {
				walk(o)
			}
		case *TSB:
			walk(n.Enable)
			walk(n.Input)
		}
	}
	walk(g)
	return leaves
}
