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

import "math/rand"

// Activation is one member of the agenda/conflict set: a production
// together with one of its currently-satisfying tokens (spec.md §4.10).
type Activation struct {
	Production *Production
	Token      *Token

	node *ProductionNode // internal; lets Engine resolve feedback/teardown
}

// Strategy is the conflict-resolution capability set of spec.md §4.12:
// select one activation from the agenda, and optionally learn from
// feedback about a production's past performance.
type Strategy interface {
	// Select returns an activation from agenda, or ok=false if agenda is
	// empty or the strategy otherwise declines to fire anything.
	Select(agenda []Activation) (activation Activation, ok bool)
	// Feedback is called by Engine.ProvideFeedback; strategies that don't
	// learn (Default, Recency) ignore it.
	Feedback(p *Production, score float64)
}

// DefaultStrategy always selects the first agenda item (spec.md §4.12).
type DefaultStrategy struct{}

func (*DefaultStrategy) Select(agenda []Activation) (Activation, bool) {
	if len(agenda) == 0 {
		return Activation{}, false
	}
	return agenda[0], true
}

func (*DefaultStrategy) Feedback(*Production, float64) {}

// RecencyStrategy is a LEX-like strategy: it scores each activation by
// the sum of the assert-time timestamps of its matched WMEs and selects
// the highest-scoring activation, ties broken by agenda order (spec.md
// §4.12).
type RecencyStrategy struct{}

func (*RecencyStrategy) Select(agenda []Activation) (Activation, bool) {
	if len(agenda) == 0 {
		return Activation{}, false
	}
	best := 0
	bestScore := recencyScore(agenda[0])
	for i := 1; i < len(agenda); i++ {
		if s := recencyScore(agenda[i]); s > bestScore {
			bestScore = s
			best = i
		}
	}
	return agenda[best], true
}

func (*RecencyStrategy) Feedback(*Production, float64) {}

func recencyScore(a Activation) int64 {
	var sum int64
	for _, w := range a.Token.Path() {
		sum += w.timestamp
	}
	return sum
}

// defaultInitialWeight and defaultWeightFloor mirror the values spec.md
// §4.12 specifies as defaults; defaultLearningRate mirrors the default of
// the Python prototype this strategy is grounded on
// (_examples/original_source/rete_engine/conflictResolution.py,
// GamblersBucketBrigade.__init__).
const (
	defaultInitialWeight = 1.0
	defaultLearningRate  = 0.1
	defaultWeightFloor   = 0.1
)

// BucketBrigadeOption configures a BucketBrigadeStrategy.
type BucketBrigadeOption func(*BucketBrigadeStrategy)

// WithInitialWeight overrides the weight newly-seen productions start at.
func WithInitialWeight(w float64) BucketBrigadeOption {
	return func(s *BucketBrigadeStrategy) { s.initialWeight = w }
}

// WithLearningRate overrides the feedback learning rate.
func WithLearningRate(r float64) BucketBrigadeOption {
	return func(s *BucketBrigadeStrategy) { s.learningRate = r }
}

// WithWeightFloor overrides the lower clamp applied after feedback.
func WithWeightFloor(f float64) BucketBrigadeOption {
	return func(s *BucketBrigadeStrategy) { s.floor = f }
}

// BucketBrigadeStrategy is the Gambler's Bucket Brigade reinforcement
// strategy of spec.md §4.12: roulette-wheel selection weighted by
// per-production weights that Feedback nudges up or down.
type BucketBrigadeStrategy struct {
	rng           *rand.Rand
	weights       map[string]float64
	initialWeight float64
	learningRate  float64
	floor         float64
}

// NewBucketBrigadeStrategy constructs a BucketBrigadeStrategy. rng drives
// the roulette-wheel draw; callers that need reproducible selection
// (spec.md §9's "reproducible under test") should pass
// rand.New(rand.NewSource(seed)).
func NewBucketBrigadeStrategy(rng *rand.Rand, opts ...BucketBrigadeOption) *BucketBrigadeStrategy {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &BucketBrigadeStrategy{
		rng:           rng,
		weights:       make(map[string]float64),
		initialWeight: defaultInitialWeight,
		learningRate:  defaultLearningRate,
		floor:         defaultWeightFloor,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select implements the algorithm of spec.md §4.12: initialise missing
// weights, sum them, fall back to uniform choice if the total is
// non-positive, otherwise draw u in [0,total) and walk the agenda
// accumulating weight until the running sum meets or exceeds u.
func (s *BucketBrigadeStrategy) Select(agenda []Activation) (Activation, bool) {
	if len(agenda) == 0 {
		return Activation{}, false
	}
	total := 0.0
	for _, a := range agenda {
		name := a.Production.Name
		if _, ok := s.weights[name]; !ok {
			s.weights[name] = s.initialWeight
		}
		total += s.weights[name]
	}
	if total <= 0 {
		return agenda[s.rng.Intn(len(agenda))], true
	}
	u := s.rng.Float64() * total
	running := 0.0
	for _, a := range agenda {
		running += s.weights[a.Production.Name]
		if running >= u {
			return a, true
		}
	}
	// Floating-point degenerate fallback (spec.md §4.12 step 4).
	return agenda[0], true
}

// Feedback applies weights[p.Name] += score*learningRate, clamped to the
// configured floor (spec.md §4.12).
func (s *BucketBrigadeStrategy) Feedback(p *Production, score float64) {
	w, ok := s.weights[p.Name]
	if !ok {
		w = s.initialWeight
	}
	w += score * s.learningRate
	if w < s.floor {
		w = s.floor
	}
	s.weights[p.Name] = w
}
