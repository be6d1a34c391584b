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

import "testing"

type recordingOwner struct {
	removed []*Token
}

func (r *recordingOwner) removeToken(t *Token) { r.removed = append(r.removed, t) }

func TestToken_Path(t *testing.T) {
	root := newToken(nil, nil)
	w1 := &WME{Identifier: Sym("p1"), Attribute: Sym("name"), Value: Str("Alice")}
	w2 := &WME{Identifier: Sym("p1"), Attribute: Sym("age"), Value: Num(30)}
	t1 := newToken(root, w1)
	t2 := newToken(t1, w2)

	path := t2.Path()
	if len(path) != 2 || path[0] != w1 || path[1] != w2 {
		t.Errorf("Path() = %v, want [%v %v]", path, w1, w2)
	}
	if len(root.Path()) != 0 {
		t.Errorf("expected the sentinel root's Path() to be empty, got %v", root.Path())
	}
}

func TestToken_teardown_cascadesToChildren(t *testing.T) {
	root := newToken(nil, nil)
	w1 := &WME{Identifier: Sym("p1"), Attribute: Sym("name"), Value: Str("Alice")}
	w2 := &WME{Identifier: Sym("p1"), Attribute: Sym("age"), Value: Num(30)}
	t1 := newToken(root, w1)
	t2 := newToken(t1, w2)

	owner1 := &recordingOwner{}
	owner2 := &recordingOwner{}
	t1.addOwner(owner1)
	t2.addOwner(owner2)

	t1.teardown()

	if len(owner1.removed) != 1 || owner1.removed[0] != t1 {
		t.Errorf("expected t1's owner to be notified of t1, got %v", owner1.removed)
	}
	if len(owner2.removed) != 1 || owner2.removed[0] != t2 {
		t.Errorf("expected t2's owner to be notified of t2 (cascade), got %v", owner2.removed)
	}
	if len(w1.tokens) != 0 {
		t.Errorf("expected w1 to have no remaining tokens after teardown, got %v", w1.tokens)
	}
	if len(w2.tokens) != 0 {
		t.Errorf("expected w2 to have no remaining tokens after teardown, got %v", w2.tokens)
	}
	if len(root.children) != 0 {
		t.Errorf("expected root to have no remaining children after t1's teardown, got %v", root.children)
	}
}

func TestToken_teardown_multipleOwners(t *testing.T) {
	root := newToken(nil, nil)
	w := &WME{Identifier: Sym("p1"), Attribute: Sym("name"), Value: Str("Alice")}
	tok := newToken(root, w)

	beta := &recordingOwner{}
	prod := &recordingOwner{}
	tok.addOwner(beta)
	tok.addOwner(prod)

	tok.teardown()

	if len(beta.removed) != 1 || len(prod.removed) != 1 {
		t.Errorf("expected both owners to be notified exactly once, got beta=%v prod=%v", beta.removed, prod.removed)
	}
}
