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
	"math/rand"
	"testing"
)

func TestDefaultStrategy_selectsFirst(t *testing.T) {
	p1 := &Production{Name: "R1"}
	p2 := &Production{Name: "R2"}
	agenda := []Activation{{Production: p1}, {Production: p2}}
	s := &DefaultStrategy{}
	act, ok := s.Select(agenda)
	if !ok || act.Production != p1 {
		t.Errorf("expected DefaultStrategy to select the first activation, got %+v, ok=%v", act, ok)
	}
	if _, ok := s.Select(nil); ok {
		t.Error("expected DefaultStrategy to decline an empty agenda")
	}
}

func TestRecencyStrategy_selectsMostRecent(t *testing.T) {
	p1 := &Production{Name: "R1"}
	p2 := &Production{Name: "R2"}
	oldWME := &WME{timestamp: 1}
	newWME := &WME{timestamp: 5}
	oldTok := newToken(newToken(nil, nil), oldWME)
	newTok := newToken(newToken(nil, nil), newWME)

	agenda := []Activation{
		{Production: p1, Token: oldTok},
		{Production: p2, Token: newTok},
	}
	s := &RecencyStrategy{}
	act, ok := s.Select(agenda)
	if !ok || act.Production != p2 {
		t.Errorf("expected RecencyStrategy to pick the activation with the newer timestamp, got %+v", act)
	}
}

func TestBucketBrigadeStrategy_selectionIsDeterministicUnderFixedSeed(t *testing.T) {
	p1 := &Production{Name: "R1"}
	p2 := &Production{Name: "R2"}
	agenda := []Activation{{Production: p1}, {Production: p2}}

	run := func(seed int64) []string {
		s := NewBucketBrigadeStrategy(rand.New(rand.NewSource(seed)))
		var picks []string
		for i := 0; i < 10; i++ {
			act, ok := s.Select(agenda)
			if !ok {
				t.Fatal("expected a selection from a non-empty agenda")
			}
			picks = append(picks, act.Production.Name)
		}
		return picks
	}

	a := run(42)
	b := run(42)
	if len(a) != len(b) {
		t.Fatal("expected equal-length pick sequences")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("pick %d differs between identically-seeded runs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestBucketBrigadeStrategy_feedbackAdjustsWeight(t *testing.T) {
	p := &Production{Name: "R1"}
	s := NewBucketBrigadeStrategy(rand.New(rand.NewSource(1)), WithInitialWeight(1.0), WithLearningRate(0.5), WithWeightFloor(0.1))
	s.Feedback(p, 1.0)
	if got, want := s.weights["R1"], 1.5; got != want {
		t.Errorf("after positive feedback, weight = %v, want %v", got, want)
	}
	s.Feedback(p, -1.0)
	if got, want := s.weights["R1"], 1.0; got != want {
		t.Errorf("after offsetting negative feedback, weight = %v, want %v", got, want)
	}
}

func TestBucketBrigadeStrategy_feedbackClampsAtFloor(t *testing.T) {
	p := &Production{Name: "R1"}
	s := NewBucketBrigadeStrategy(rand.New(rand.NewSource(1)), WithInitialWeight(0.2), WithLearningRate(1.0), WithWeightFloor(0.1))
	s.Feedback(p, -1.0)
	if got, want := s.weights["R1"], 0.1; got != want {
		t.Errorf("expected weight clamped to floor %v, got %v", want, got)
	}
}

func TestBucketBrigadeStrategy_fallsBackToUniformWhenTotalNonPositive(t *testing.T) {
	p1 := &Production{Name: "R1"}
	p2 := &Production{Name: "R2"}
	agenda := []Activation{{Production: p1}, {Production: p2}}
	s := NewBucketBrigadeStrategy(rand.New(rand.NewSource(7)), WithInitialWeight(0), WithWeightFloor(0))
	act, ok := s.Select(agenda)
	if !ok {
		t.Fatal("expected a selection even when total weight is zero")
	}
	if act.Production != p1 && act.Production != p2 {
		t.Errorf("expected a selection drawn from the agenda, got %+v", act)
	}
}
