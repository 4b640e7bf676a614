// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package learner

import (
	"errors"
	"sort"
)

// ErrInsufficientData indicates that a training set is too small to fit
// or evaluate a model (for example a stratified split where some class
// has fewer than two members). It is fatal for the training phase that
// hits it, not for the pipeline as a whole.
var ErrInsufficientData = errors.New("insufficient training data")

// ErrNotFitted indicates prediction on an unfitted model.
var ErrNotFitted = errors.New("model not fitted")

// Regressor is the black-box contract for continuous-target learners.
type Regressor interface {
	Fit(x [][]float64, y []float64) error
	Predict(features []float64) (float64, error)
	FeatureImportances() []float64
}

// Classifier is the black-box contract for multi-class learners.
// PredictProba returns a distribution over the full label set seen
// during fit, summing to 1.
type Classifier interface {
	Fit(x [][]float64, labels []string) error
	Predict(features []float64) (string, error)
	PredictProba(features []float64) (map[string]float64, error)
	Classes() []string
	FeatureImportances() []float64
}

// Importance pairs a feature name with its importance weight, for
// ranked reporting.
type Importance struct {
	Feature string  `json:"feature"`
	Weight  float64 `json:"weight"`
}

// RankImportances pairs names with weights and sorts descending by
// weight (name ascending on ties). Reporting only; nothing consumes the
// ranking programmatically.
func RankImportances(names []string, weights []float64) []Importance {
	n := len(names)
	if len(weights) < n {
		n = len(weights)
	}
	out := make([]Importance, n)
	for i := 0; i < n; i++ {
		out[i] = Importance{Feature: names[i], Weight: weights[i]}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Feature < out[j].Feature
	})
	return out
}
