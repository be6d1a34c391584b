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

import (
	"errors"
	"testing"
)

func TestDuplicateProductionNameError_message(t *testing.T) {
	err := &DuplicateProductionNameError{Name: "R1"}
	if got, want := err.Error(), `rete: duplicate production name "R1"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestActionError_unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := newActionError("R1", cause)
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the wrapped cause")
	}
	if got := err.Cause(); got.Error() != "boom" {
		t.Errorf("Cause() = %v, want boom-wrapping error", got)
	}
}

func TestMalformedConditionError_message(t *testing.T) {
	c := Condition{Identifier: Term{}, Attribute: Sym("a"), Value: Var("?v")}
	err := &MalformedConditionError{Condition: c, Reason: "field identifier is not a recognised term"}
	if got := err.Error(); got == "" {
		t.Error("expected a non-empty error message")
	}
}
