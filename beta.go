/*
   Copyright 2021 Joseph Cumines

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package rete

// betaChild is any node that can be notified of a newly created token in
// its parent beta memory: a JoinNode (for the next condition) or a
// ProductionNode (terminal, spec.md §4.4/§4.5).
type betaChild interface {
	notify(tok *Token)
}

// BetaMemory holds the partial matches after k conditions (spec.md §3/§4.4).
// A beta memory cannot be a child of more than one join node; the root
// beta memory is a singleton holding one sentinel empty-match token.
type BetaMemory struct {
	items    []*Token
	children []betaChild
}

// newRootBetaMemory builds the root beta memory with its sentinel token
// already in place, per spec.md §4.4 ("initialised with the sentinel
// empty token"). Modelling the sentinel as a real Token with a nil wme
// lets JoinNode.rightActivation treat the first condition uniformly with
// every later one: it is just "iterate parent.items and join-test them",
// where the first condition's join-test vector is always empty.
func newRootBetaMemory() *BetaMemory {
	b := &BetaMemory{}
	sentinel := newToken(nil, nil)
	b.items = append(b.items, sentinel)
	return b
}

// extend creates a new token combining parent and wme, appends it to
// items, and notifies every child in insertion order (spec.md §4.4).
func (b *BetaMemory) extend(parent *Token, wme *WME) *Token {
	tok := newToken(parent, wme)
	b.items = append(b.items, tok)
	tok.addOwner(b)
	for _, c := range b.children {
		c.notify(tok)
	}
	return tok
}

func (b *BetaMemory) removeToken(t *Token) {
	for i, tok := range b.items {
		if tok == t {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// JoinNode sits between a parent beta memory (left) and an alpha memory
// (right), applying variable-equality join tests (spec.md §4.3).
type JoinNode struct {
	parent            *BetaMemory
	alpha             *AlphaMemory
	tests             []JoinTest
	earlierConditions []Condition // self-contained per spec.md §9(i)
	child             *BetaMemory
}

// matches implements perform_join_tests (spec.md §4.3): every test must
// hold between the WME at the recorded earlier index on tok's path and wme.
func (j *JoinNode) matches(tok *Token, wme *WME) bool {
	path := tok.Path()
	for _, t := range j.tests {
		if t.EarlierIndex >= len(path) {
			return false
		}
		if path[t.EarlierIndex].Field(t.EarlierField) != wme.Field(t.ThisField) {
			return false
		}
	}
	return true
}

// rightActivation is called when wme enters j's alpha memory: iterate the
// parent beta memory's tokens in insertion order, extending the child
// beta memory for each that passes the join tests (spec.md §4.3).
func (j *JoinNode) rightActivation(wme *WME) {
	for _, tok := range j.parent.items {
		if j.matches(tok, wme) {
			j.child.extend(tok, wme)
		}
	}
}

// notify implements left_activation (spec.md §4.3): for each WME in the
// alpha memory in insertion order that passes the join tests with tok,
// extend the child beta memory.
func (j *JoinNode) notify(tok *Token) {
	for _, wme := range j.alpha.items {
		if j.matches(tok, wme) {
			j.child.extend(tok, wme)
		}
	}
}
