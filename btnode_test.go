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
	"testing"

	bt "github.com/joeycumines/go-behaviortree"
)

func TestEngine_Node_succeedsWithEmptyAgenda(t *testing.T) {
	e := NewEngine()
	node := e.Node()
	tick, _ := node()
	status, err := tick(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != bt.Success {
		t.Errorf("expected bt.Success on an empty agenda, got %v", status)
	}
}

func TestEngine_Node_runsOneCyclePerTick(t *testing.T) {
	e := NewEngine()
	var fired int
	_, err := e.AddProduction("R1", []Condition{
		{Identifier: Var("?x"), Attribute: Sym("f"), Value: Var("?v")},
	}, []Action{func(Bindings, *Engine) error { fired++; return nil }})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Assert(Sym("x"), Sym("f"), Num(1)); err != nil {
		t.Fatal(err)
	}

	node := e.Node()
	tick, _ := node()
	status, err := tick(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != bt.Success {
		t.Errorf("expected bt.Success once the agenda empties, got %v", status)
	}
	if fired != 1 {
		t.Errorf("expected exactly one fire, got %d", fired)
	}
}

func TestEngine_Node_reportsFailureOnActionError(t *testing.T) {
	e := NewEngine()
	boom := errAction("boom")
	_, err := e.AddProduction("R1", []Condition{
		{Identifier: Var("?x"), Attribute: Sym("f"), Value: Var("?v")},
	}, []Action{func(Bindings, *Engine) error { return boom }})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.Assert(Sym("x"), Sym("f"), Num(1)); err != nil {
		t.Fatal(err)
	}

	node := e.Node()
	tick, _ := node()
	status, err := tick(nil)
	if err == nil {
		t.Fatal("expected the tick to surface the action error")
	}
	if status != bt.Failure {
		t.Errorf("expected bt.Failure, got %v", status)
	}
}
