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
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures an Engine at construction time, following the same
// functional-options shape the teacher uses for Plan (pabt.go's
// `type Option func(*config) error`), narrowed here to never fail since
// neither option below can produce an invalid Engine.
type Option func(*engineConfig)

type engineConfig struct {
	strategy Strategy
	logger   *logrus.Logger
}

func defaultConfig() *engineConfig {
	log := logrus.New()
	log.SetOutput(io.Discard) // silent unless the host supplies WithLogger
	return &engineConfig{
		strategy: &DefaultStrategy{},
		logger:   log,
	}
}

// WithStrategy sets the Engine's initial conflict-resolution strategy
// (spec.md §4.12). Equivalent to calling SetStrategy immediately after
// NewEngine.
func WithStrategy(s Strategy) Option {
	return func(c *engineConfig) { c.strategy = s }
}

// WithLogger sets the *logrus.Logger the Engine emits structured Debug
// entries to (spec.md §10.2). The default logger discards all output.
func WithLogger(l *logrus.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
