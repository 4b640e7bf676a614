// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package encode provides stateful categorical-to-integer encoders.
//
// An Encoder is fit exactly once per training run on the distinct values
// observed in the training set, then reused identically at inference
// time. Looking up a value that was never seen during fit returns the
// sentinel code 0 rather than an error: inference degrades gracefully on
// cold-start learners and courses instead of crashing. Fitted encoders
// are immutable afterwards and safe for concurrent read-only use.
package encode

import (
	"errors"

	json "github.com/goccy/go-json"
)

// SentinelCode is returned by Encode for values not seen during fit.
const SentinelCode = 0

// ErrAlreadyFitted indicates a second Fit call on the same encoder.
// Callers must construct a fresh encoder per training run.
var ErrAlreadyFitted = errors.New("encoder already fitted")

// Encoder maps the distinct values of one categorical domain to stable
// integer codes in [0, distinct count). Codes carry no meaning beyond
// consistency between fit and later lookups.
type Encoder struct {
	codes   map[string]int
	classes []string
	fitted  bool
}

// New creates an unfitted encoder.
func New() *Encoder {
	return &Encoder{codes: make(map[string]int)}
}

// Fit assigns one code per distinct value, in first-seen order.
// Fitting an already-fitted encoder is an error.
func (e *Encoder) Fit(values []string) error {
	if e.fitted {
		return ErrAlreadyFitted
	}
	for _, v := range values {
		if _, ok := e.codes[v]; !ok {
			e.codes[v] = len(e.classes)
			e.classes = append(e.classes, v)
		}
	}
	e.fitted = true
	return nil
}

// Encode returns the fitted code for v, or SentinelCode for a value not
// seen during fit. It never fails.
func (e *Encoder) Encode(v string) int {
	if code, ok := e.codes[v]; ok {
		return code
	}
	return SentinelCode
}

// Known reports whether v was seen during fit.
func (e *Encoder) Known(v string) bool {
	_, ok := e.codes[v]
	return ok
}

// Fitted reports whether Fit has been called.
func (e *Encoder) Fitted() bool {
	return e.fitted
}

// Len returns the number of distinct fitted values.
func (e *Encoder) Len() int {
	return len(e.classes)
}

// Classes returns the fitted values in code order. The returned slice is
// shared; callers must not mutate it.
func (e *Encoder) Classes() []string {
	return e.classes
}

// encoderState is the serialized form of a fitted encoder.
type encoderState struct {
	Classes []string `json:"classes"`
	Fitted  bool     `json:"fitted"`
}

// MarshalJSON persists the encoder as its ordered class list.
func (e *Encoder) MarshalJSON() ([]byte, error) {
	return json.Marshal(encoderState{Classes: e.classes, Fitted: e.fitted})
}

// UnmarshalJSON restores a fitted encoder from its ordered class list.
func (e *Encoder) UnmarshalJSON(data []byte) error {
	var st encoderState
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	e.codes = make(map[string]int, len(st.Classes))
	e.classes = st.Classes
	e.fitted = st.Fitted
	for i, v := range st.Classes {
		e.codes[v] = i
	}
	return nil
}
