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
	"fmt"

	"github.com/pkg/errors"
)

// ErrUnknownWME is returned by Engine.Retract for a handle that is not
// (or is no longer) in working memory (spec.md §7).
var ErrUnknownWME = errors.New("rete: unknown wme")

// ErrInvalidProductionHandle is returned by Engine.ProvideFeedback for a
// zero-value ProductionHandle.
var ErrInvalidProductionHandle = errors.New("rete: invalid production handle")

// ErrFeedbackScoreOutOfRange is returned by Engine.ProvideFeedback for a
// score outside [-1.0, 1.0] (spec.md §6).
var ErrFeedbackScoreOutOfRange = errors.New("rete: feedback score out of range [-1.0, 1.0]")

// DuplicateProductionNameError is returned by Engine.AddProduction when
// name already identifies a production in the engine (spec.md §7).
type DuplicateProductionNameError struct {
	Name string
}

func (e *DuplicateProductionNameError) Error() string {
	return fmt.Sprintf("rete: duplicate production name %q", e.Name)
}

// MalformedConditionError is returned by Engine.AddProduction when a
// condition has a field that is not a valid term (spec.md §7).
type MalformedConditionError struct {
	Condition Condition
	Reason    string
}

func (e *MalformedConditionError) Error() string {
	return "rete: malformed condition: " + e.Reason
}

// ActionError wraps the error returned by an action callback, aborting
// the recognize-act cycle (spec.md §7). The underlying error is reachable
// via Unwrap/Cause.
type ActionError struct {
	Production string
	err        error
}

func (e *ActionError) Error() string {
	return e.err.Error()
}

// Unwrap exposes the original action error to errors.Is/As.
func (e *ActionError) Unwrap() error { return e.err }

// Cause exposes the original action error to github.com/pkg/errors callers.
func (e *ActionError) Cause() error { return errors.Cause(e.err) }

func newActionError(production string, err error) *ActionError {
	return &ActionError{
		Production: production,
		err:        errors.Wrapf(err, "rete: action error in production %q", production),
	}
}
