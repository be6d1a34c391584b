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

// Network owns every alpha memory, beta memory, join node, and production
// node; it is the discrimination network proper (spec.md §3 "Ownership").
type Network struct {
	rootBeta    *BetaMemory
	alphaIndex  *AlphaIndex
	productions map[string]*ProductionNode
	order       []*ProductionNode // production-insertion order, for the agenda
}

func newNetwork() *Network {
	return &Network{
		rootBeta:    newRootBetaMemory(),
		alphaIndex:  newAlphaIndex(),
		productions: make(map[string]*ProductionNode),
	}
}

// addProduction implements spec.md §4.6: walk p's conditions left to
// right, get-or-create each alpha memory, reuse an existing child join
// node of the current beta memory if one already tests the same alpha
// memory with the same test vector, otherwise build a new join node (and
// child beta memory), seeding it with every WME already present in its
// alpha memory. Finally attach a new production node to the terminal beta
// memory, seeded with whatever complete matches already exist there.
func (n *Network) addProduction(p *Production) (*ProductionNode, error) {
	if _, exists := n.productions[p.Name]; exists {
		return nil, &DuplicateProductionNameError{Name: p.Name}
	}
	for _, c := range p.Conditions {
		if err := c.validate(); err != nil {
			return nil, err
		}
	}

	currentBeta := n.rootBeta
	earlier := make([]Condition, 0, len(p.Conditions))
	for _, cond := range p.Conditions {
		mem := n.alphaIndex.getOrCreate(cond.constantTests())
		tests := computeJoinTests(cond, earlier)

		var join *JoinNode
		for _, ch := range currentBeta.children {
			if jn, ok := ch.(*JoinNode); ok && jn.alpha == mem && joinTestsEqual(jn.tests, tests) {
				join = jn
				break
			}
		}
		if join == nil {
			join = &JoinNode{
				parent:            currentBeta,
				alpha:             mem,
				tests:             tests,
				earlierConditions: append([]Condition(nil), earlier...),
				child:             &BetaMemory{},
			}
			currentBeta.children = append(currentBeta.children, join)
			mem.successors = append(mem.successors, join)
			// seed with WMEs already in the alpha memory (spec.md §4.6).
			for _, wme := range mem.items {
				join.rightActivation(wme)
			}
		}

		currentBeta = join.child
		earlier = append(earlier, cond)
	}

	pn := &ProductionNode{production: p}
	currentBeta.children = append(currentBeta.children, pn)
	n.productions[p.Name] = pn
	n.order = append(n.order, pn)
	// seed with matches already present on the (possibly shared) terminal
	// beta memory, symmetric to the join-node seeding above.
	for _, tok := range currentBeta.items {
		pn.notify(tok)
	}
	return pn, nil
}

// assert dispatches wme to every alpha memory it satisfies, in the order
// the alpha index's trie walk visits them (spec.md §4.8/§4.9).
func (n *Network) assert(wme *WME) {
	for _, mem := range n.alphaIndex.dispatch(wme) {
		mem.activate(wme)
	}
}

// retract implements the teardown half of spec.md §4.8: tear down every
// token that pins wme, then remove wme from every alpha memory it populated.
func (n *Network) retract(wme *WME) {
	mems := append([]*AlphaMemory(nil), wme.alphaMemories...)
	toks := append([]*Token(nil), wme.tokens...)
	for _, t := range toks {
		t.teardown()
	}
	for _, m := range mems {
		m.remove(wme)
	}
}
