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

// tokenOwner is any structure holding a Token in one of its own lists,
// which must be told to drop it during teardown. A Token may have more
// than one owner: a terminal beta memory and every ProductionNode
// attached to it all reference the same Token object (see DESIGN.md,
// "Terminal-token double ownership").
type tokenOwner interface {
	removeToken(t *Token)
}

// Token is a node in a linked partial-match list: a child pointer to its
// parent, plus the one WME it pins. The full match is obtained by walking
// parent pointers to the root (spec.md §3). The root sentinel token (one
// per Engine, held by the root beta memory) has a nil parent and nil wme.
type Token struct {
	parent *Token
	wme    *WME
	owners []tokenOwner
	children []*Token
}

// newToken constructs a token extending parent with wme, wiring the
// parent/child back-reference and the WME's token back-reference. wme is
// nil only for the root sentinel.
func newToken(parent *Token, wme *WME) *Token {
	t := &Token{parent: parent, wme: wme}
	if parent != nil {
		parent.children = append(parent.children, t)
	}
	if wme != nil {
		wme.addToken(t)
	}
	return t
}

func (t *Token) addOwner(o tokenOwner) { t.owners = append(t.owners, o) }

func (t *Token) removeChild(c *Token) {
	for i, ch := range t.children {
		if ch == c {
			t.children = append(t.children[:i], t.children[i+1:]...)
			return
		}
	}
}

// Path returns the sequence of WMEs on t's path from the first matched
// condition to the one t itself pins, i.e. path(t) of spec.md §3/§4.11.
// Its length equals the depth of the beta memory (or production node)
// that owns t.
func (t *Token) Path() []*WME {
	var rev []*WME
	for cur := t; cur != nil && cur.wme != nil; cur = cur.parent {
		rev = append(rev, cur.wme)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev
}

// teardown implements the standard Rete retraction cascade (spec.md §4.8):
// recursively tear down children first, then unlink t from every owner,
// from its pinned WME, and from its parent.
func (t *Token) teardown() {
	children := t.children
	t.children = nil
	for _, c := range children {
		c.teardown()
	}
	owners := t.owners
	t.owners = nil
	for _, o := range owners {
		o.removeToken(t)
	}
	if t.wme != nil {
		t.wme.removeToken(t)
	}
	if t.parent != nil {
		t.parent.removeChild(t)
		t.parent = nil
	}
}
