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

import "github.com/pkg/errors"

// Bindings maps a variable's name (Term.Name()) to the fact term it was
// bound to within a single activation (spec.md §4.11).
type Bindings map[string]Term

// Action is a user-supplied callback invoked when its Production fires.
// Actions may call Engine.Assert/Retract on eng; such mutation takes
// effect on the next recognize-act cycle's agenda rebuild (spec.md §5).
type Action func(bindings Bindings, eng *Engine) error

// Production is a named, ordered list of conditions plus an ordered list
// of actions (spec.md §3). Name must be unique within an Engine.
type Production struct {
	Name       string
	Conditions []Condition
	Actions    []Action
}

// bindingsFromToken walks tok's path (spec.md §4.11) assigning, for each
// condition/WME pair and each variable field, bindings[v] = wme.Field(f).
// A later assignment of an already-bound variable that disagrees with the
// earlier one is a checkable invariant violation (it should never happen,
// since join tests already enforce consistency) and is reported as an
// error rather than silently overwritten.
func bindingsFromToken(p *Production, tok *Token) (Bindings, error) {
	path := tok.Path()
	if len(path) != len(p.Conditions) {
		return nil, errors.Errorf("rete: token path length %d does not match production %q's %d conditions", len(path), p.Name, len(p.Conditions))
	}
	b := make(Bindings, len(p.Conditions))
	for i, cond := range p.Conditions {
		wme := path[i]
		for _, f := range fieldOrder {
			v := cond.Field(f)
			if !v.IsVariable() {
				continue
			}
			val := wme.Field(f)
			if existing, ok := b[v.Name()]; ok {
				if existing != val {
					return nil, errors.Errorf("rete: inconsistent binding for variable %s in production %q", v.Name(), p.Name)
				}
				continue
			}
			b[v.Name()] = val
		}
	}
	return b, nil
}
