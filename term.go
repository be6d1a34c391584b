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

import "fmt"

// Kind discriminates the concrete representation held by a Term.
type Kind uint8

const (
	// KindSymbol is an interned name, compared by string equality.
	KindSymbol Kind = iota
	// KindString is an arbitrary text value.
	KindString
	// KindNumber is a real number.
	KindNumber
	// KindBoolean is a true/false value.
	KindBoolean
	// KindVariable marks a condition-slot to be bound rather than matched
	// literally. Two variables are the same variable iff their Kind is
	// KindVariable and their name is equal; the conventional "?" prefix is
	// a caller/parser convention only, never inspected by the core.
	KindVariable
)

// Term is a single fact-term: a symbol, string, number, boolean, or a
// variable placeholder used in a Condition. Term is a plain comparable
// struct so it can be used directly as a map key (alpha-index dispatch,
// WME structural-equality keys, variable-binding maps) and compared with
// ==, matching the WME-equality and join-test-equality requirements of
// spec.md §3/§4.2/§4.3 without any interface indirection.
type Term struct {
	kind Kind
	name string // symbol / variable name
	str  string
	num  float64
	b    bool
}

// Sym constructs a symbol term.
func Sym(name string) Term { return Term{kind: KindSymbol, name: name} }

// Str constructs a string term.
func Str(s string) Term { return Term{kind: KindString, str: s} }

// Num constructs a number term.
func Num(n float64) Term { return Term{kind: KindNumber, num: n} }

// Bool constructs a boolean term.
func Bool(b bool) Term { return Term{kind: KindBoolean, b: b} }

// Var constructs a variable term identified by name. By convention name
// begins with "?" (e.g. "?x"), but the core never inspects the prefix;
// two Var terms are the same variable iff their names are equal.
func Var(name string) Term { return Term{kind: KindVariable, name: name} }

// Kind returns the term's discriminant.
func (t Term) Kind() Kind { return t.kind }

// IsVariable reports whether t is a variable placeholder.
func (t Term) IsVariable() bool { return t.kind == KindVariable }

// Name returns the symbol or variable name; it is empty for other kinds.
func (t Term) Name() string { return t.name }

func (t Term) String() string {
	switch t.kind {
	case KindSymbol:
		return t.name
	case KindString:
		return fmt.Sprintf("%q", t.str)
	case KindNumber:
		return fmt.Sprintf("%g", t.num)
	case KindBoolean:
		return fmt.Sprintf("%t", t.b)
	case KindVariable:
		return t.name
	default:
		return "<invalid term>"
	}
}

// valid reports whether t is one of the five recognised kinds. A
// zero-value Term has KindSymbol and so passes this check; it is rejected
// by Condition.validate's empty-name check instead.
func (t Term) valid() bool {
	return t.kind <= KindVariable
}
