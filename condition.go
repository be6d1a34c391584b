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

// Condition is a triple pattern whose fields are either constants
// (Sym/Str/Num/Bool) or variables (Var). Position within a Production
// matters: join tests reference earlier conditions by index (spec.md §3).
type Condition struct {
	Identifier Term
	Attribute  Term
	Value      Term
}

// Field returns the term occupying the given slot.
func (c Condition) Field(f FieldIndex) Term {
	switch f {
	case FieldIdentifier:
		return c.Identifier
	case FieldAttribute:
		return c.Attribute
	case FieldValue:
		return c.Value
	default:
		return Term{}
	}
}

// validate checks that every field is a well-formed term, returning a
// *MalformedConditionError otherwise (spec.md §7).
func (c Condition) validate() error {
	for _, f := range fieldOrder {
		v := c.Field(f)
		if !v.valid() {
			return &MalformedConditionError{Condition: c, Reason: "field " + f.String() + " is not a recognised term"}
		}
		if (v.kind == KindSymbol || v.kind == KindVariable) && v.name == "" {
			return &MalformedConditionError{Condition: c, Reason: "field " + f.String() + " has an empty name"}
		}
	}
	return nil
}

// constTest is one (field, constant) pair forming part of a constant-test
// vector (spec.md §4.1).
type constTest struct {
	Field FieldIndex
	Value Term
}

// constantTests returns the ordered constant-test vector for c: one entry
// per field that is not a variable, in fieldOrder. Two conditions with
// identical constantTests share the same alpha memory.
func (c Condition) constantTests() []constTest {
	var tests []constTest
	for _, f := range fieldOrder {
		v := c.Field(f)
		if !v.IsVariable() {
			tests = append(tests, constTest{Field: f, Value: v})
		}
	}
	return tests
}

// JoinTest is a single variable-equality test linking a field of an
// earlier condition in the same production to a field of the condition
// currently being joined (spec.md §4.3/§4.7).
type JoinTest struct {
	EarlierIndex int
	EarlierField FieldIndex
	ThisField    FieldIndex
}

// computeJoinTests implements spec.md §4.7 exactly: for each field f of
// condition (in fieldOrder) that is a variable v, scan earlier in order,
// and for each of its fields g (in fieldOrder) equal to v, emit a test.
func computeJoinTests(condition Condition, earlier []Condition) []JoinTest {
	var tests []JoinTest
	for _, f := range fieldOrder {
		v := condition.Field(f)
		if !v.IsVariable() {
			continue
		}
		for ei, ec := range earlier {
			for _, g := range fieldOrder {
				if ec.Field(g) == v {
					tests = append(tests, JoinTest{EarlierIndex: ei, EarlierField: g, ThisField: f})
				}
			}
		}
	}
	return tests
}

// joinTestsEqual reports whether two join-test vectors are identical,
// used to decide whether an existing join node may be shared (spec.md §4.6).
func joinTestsEqual(a, b []JoinTest) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
