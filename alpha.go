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

// AlphaMemory holds every WME currently satisfying one condition's
// constant tests, plus the join nodes that consume it (spec.md §3/§4.2).
// Two conditions with the same constant-test vector share the same
// AlphaMemory regardless of their variables.
type AlphaMemory struct {
	items      []*WME
	index      map[*WME]int
	successors []*JoinNode
}

func newAlphaMemory() *AlphaMemory {
	return &AlphaMemory{index: make(map[*WME]int)}
}

// activate appends wme (if not already present) and right-activates every
// successor join node, in insertion order, per spec.md §4.2.
func (m *AlphaMemory) activate(wme *WME) {
	if _, ok := m.index[wme]; ok {
		return
	}
	m.index[wme] = len(m.items)
	m.items = append(m.items, wme)
	wme.addAlphaMemory(m)
	for _, j := range m.successors {
		j.rightActivation(wme)
	}
}

// remove drops wme from the memory, used during retraction (spec.md §4.8).
// Removal is order-preserving (not swap-remove) so the insertion-order
// guarantee of spec.md §4.3/§5 holds for whatever WMEs remain.
func (m *AlphaMemory) remove(wme *WME) {
	idx, ok := m.index[wme]
	if !ok {
		return
	}
	m.items = append(m.items[:idx], m.items[idx+1:]...)
	for i := idx; i < len(m.items); i++ {
		m.index[m.items[i]] = i
	}
	delete(m.index, wme)
	wme.removeAlphaMemory(m)
}

// alphaTrieNode is one level of the alpha-index dispatch trie (spec.md
// §4.1/§4.9). A node may have a concrete branch per tested constant value
// for the current field and/or a single skip branch taken by conditions
// that leave the current field as a variable. Because fieldOrder always
// has exactly three entries, every leaf (memory non-nil) sits at depth 3
// regardless of which fields were skipped along the way.
type alphaTrieNode struct {
	concrete map[Term]*alphaTrieNode
	skip     *alphaTrieNode
	memory   *AlphaMemory
}

// AlphaIndex is the dispatch trie shared across all productions whose
// constant tests coincide (spec.md §4.1).
type AlphaIndex struct {
	root *alphaTrieNode
}

func newAlphaIndex() *AlphaIndex {
	return &AlphaIndex{root: &alphaTrieNode{}}
}

// getOrCreate returns the shared AlphaMemory for the given constant-test
// vector, creating trie branches and the memory itself as needed.
func (idx *AlphaIndex) getOrCreate(tests []constTest) *AlphaMemory {
	byField := make(map[FieldIndex]Term, len(tests))
	for _, t := range tests {
		byField[t.Field] = t.Value
	}
	node := idx.root
	for _, f := range fieldOrder {
		if v, ok := byField[f]; ok {
			if node.concrete == nil {
				node.concrete = make(map[Term]*alphaTrieNode)
			}
			child, ok := node.concrete[v]
			if !ok {
				child = &alphaTrieNode{}
				node.concrete[v] = child
			}
			node = child
		} else {
			if node.skip == nil {
				node.skip = &alphaTrieNode{}
			}
			node = node.skip
		}
	}
	if node.memory == nil {
		node.memory = newAlphaMemory()
	}
	return node.memory
}

// dispatch walks every path consistent with wme's field values (skip
// branches unconditionally, concrete branches on exact value match) and
// returns every leaf memory reached, per spec.md §4.9. A single WME may
// populate multiple alpha memories.
func (idx *AlphaIndex) dispatch(wme *WME) []*AlphaMemory {
	level := []*alphaTrieNode{idx.root}
	for _, f := range fieldOrder {
		v := wme.Field(f)
		var next []*alphaTrieNode
		for _, n := range level {
			if n.skip != nil {
				next = append(next, n.skip)
			}
			if n.concrete != nil {
				if c, ok := n.concrete[v]; ok {
					next = append(next, c)
				}
			}
		}
		level = next
	}
	var mems []*AlphaMemory
	for _, n := range level {
		if n.memory != nil {
			mems = append(mems, n.memory)
		}
	}
	return mems
}
