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

// Package rete implements a forward-chaining, rule-based inference engine
// built around a discrimination network (the Rete algorithm): alpha
// memories, beta memories, join nodes, and production nodes maintain the
// set of satisfied rule activations incrementally as facts (WMEs) are
// asserted and retracted, and a pluggable conflict-resolution Strategy
// selects one activation per recognize-act cycle.
package rete

import "github.com/sirupsen/logrus"

// Engine is single-threaded and cooperative (spec.md §5): a recognize-act
// cycle runs to completion before the next begins, and there is no
// internal locking — concurrent external callers must serialize their own
// Assert/Retract/Run calls, exactly as spec.md §5 describes ("serializing
// assert/retract/run calls under one lock per engine instance" is a layer
// outside the core, not a feature of it).
type Engine struct {
	network  *Network
	wm       map[tripleKey]*WME
	clock    int64
	strategy Strategy
	log      *logrus.Logger
}

// WMEHandle is an opaque reference to an asserted WME, returned by Assert
// and consumed by Retract (spec.md §6).
type WMEHandle struct {
	wme *WME
}

// ProductionHandle is an opaque reference to a registered production,
// returned by AddProduction and consumed by ProvideFeedback (spec.md §6).
type ProductionHandle struct {
	node *ProductionNode
}

// NewEngine constructs an Engine with the DefaultStrategy unless
// overridden by WithStrategy.
func NewEngine(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Engine{
		network:  newNetwork(),
		wm:       make(map[tripleKey]*WME),
		strategy: cfg.strategy,
		log:      cfg.logger,
	}
}

// AddProduction registers a new production (condition/action rule) with
// the engine, building and sharing discrimination-network nodes as
// described by spec.md §4.6. name must be unique within the engine.
func (e *Engine) AddProduction(name string, conditions []Condition, actions []Action) (ProductionHandle, error) {
	p := &Production{Name: name, Conditions: conditions, Actions: actions}
	pn, err := e.network.addProduction(p)
	if err != nil {
		e.log.WithError(err).WithField("production", name).Debug("rete: add_production failed")
		return ProductionHandle{}, err
	}
	e.log.WithField("production", name).Debug("rete: production added")
	return ProductionHandle{node: pn}, nil
}

// Assert adds a fact to working memory, or returns the existing handle if
// an identical (id, attr, val) triple is already present (spec.md §4.2,
// §4.8 — repeated assertion of the same triple is silently idempotent).
func (e *Engine) Assert(id, attr, val Term) (WMEHandle, error) {
	return e.assertLocked(id, attr, val)
}

func (e *Engine) assertLocked(id, attr, val Term) (WMEHandle, error) {
	key := tripleKey{id, attr, val}
	if existing, ok := e.wm[key]; ok {
		return WMEHandle{wme: existing}, nil
	}
	e.clock++
	w := &WME{Identifier: id, Attribute: attr, Value: val, timestamp: e.clock}
	e.wm[key] = w
	e.network.assert(w)
	e.log.WithField("wme", w.String()).Debug("rete: wme asserted")
	return WMEHandle{wme: w}, nil
}

// Retract removes a previously-asserted WME from working memory, tearing
// down every token whose path depended on it (spec.md §4.8). Retracting a
// handle that is not (or no longer) in working memory returns
// ErrUnknownWME.
func (e *Engine) Retract(h WMEHandle) error {
	return e.retractLocked(h)
}

func (e *Engine) retractLocked(h WMEHandle) error {
	if h.wme == nil {
		return ErrUnknownWME
	}
	key := h.wme.key()
	if cur, ok := e.wm[key]; !ok || cur != h.wme {
		return ErrUnknownWME
	}
	delete(e.wm, key)
	e.network.retract(h.wme)
	e.log.WithField("wme", h.wme.String()).Debug("rete: wme retracted")
	return nil
}

// Agenda returns a snapshot of the current conflict set: the items of
// every production node, concatenated in production-registration order
// (spec.md §4.10). It does not advance a cycle.
func (e *Engine) Agenda() []Activation {
	var agenda []Activation
	for _, pn := range e.network.order {
		for _, tok := range pn.items {
			agenda = append(agenda, Activation{Production: pn.production, Token: tok, node: pn})
		}
	}
	return agenda
}

// SetStrategy swaps the engine's conflict-resolution strategy. Strategy
// state (e.g. learned weights) is per-strategy; swapping loses it.
func (e *Engine) SetStrategy(s Strategy) {
	e.strategy = s
}

// ProvideFeedback passes a score in [-1.0, 1.0] to the engine's current
// strategy for the production identified by h (spec.md §4.12/§6). Only
// learning strategies (BucketBrigadeStrategy) act on it.
func (e *Engine) ProvideFeedback(h ProductionHandle, score float64) error {
	if h.node == nil {
		return ErrInvalidProductionHandle
	}
	if score < -1.0 || score > 1.0 {
		return ErrFeedbackScoreOutOfRange
	}
	e.strategy.Feedback(h.node.production, score)
	return nil
}

// Run executes the recognize-act cycle (spec.md §4.10) up to maxCycles
// times: build the agenda, select one activation via the current
// strategy, execute its production's actions in order with bindings
// extracted from the activation's token, then rebuild the agenda (actions
// may have asserted/retracted facts). A selected activation is removed
// from its production node's items before its actions run, so each
// activation fires at most once. Returns the number of cycles that
// actually fired. A hard action error aborts the cycle and is returned;
// the engine's state reflects whatever the action completed before
// failing (spec.md §5/§7).
func (e *Engine) Run(maxCycles int) (int, error) {
	agenda := e.Agenda()
	for cycle := 0; cycle < maxCycles; cycle++ {
		if len(agenda) == 0 {
			return cycle, nil
		}
		act, ok := e.strategy.Select(agenda)
		if !ok {
			return cycle, nil
		}
		bindings, err := bindingsFromToken(act.Production, act.Token)
		if err != nil {
			return cycle, err
		}
		// refraction: a fired activation leaves the conflict set
		if act.node != nil {
			act.node.removeToken(act.Token)
		}
		e.log.WithField("production", act.Production.Name).WithField("cycle", cycle).Debug("rete: firing")
		for _, action := range act.Production.Actions {
			if err := action(bindings, e); err != nil {
				return cycle, newActionError(act.Production.Name, err)
			}
		}
		agenda = e.Agenda()
	}
	return maxCycles, nil
}
