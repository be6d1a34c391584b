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

// ProductionNode is the terminal network node for one Production: it
// owns a reference to the Production and the list of complete-match
// tokens currently satisfying all of its conditions that have not yet
// fired (spec.md §3/§4.5). It does not fire its own actions; that is the
// Engine's job, and Engine.Run drops a token from items when it fires it.
type ProductionNode struct {
	production *Production
	items      []*Token
}

// notify records tok (already a complete match, combining all conditions,
// built by the terminal beta memory's extend) as a new activation.
func (n *ProductionNode) notify(tok *Token) {
	n.items = append(n.items, tok)
	tok.addOwner(n)
}

func (n *ProductionNode) removeToken(t *Token) {
	for i, tok := range n.items {
		if tok == t {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return
		}
	}
}
