// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package learner

import (
	"fmt"
	"math/rand"
)

// ForestConfig contains configuration shared by both forest learners.
type ForestConfig struct {
	// Trees is the ensemble size.
	Trees int

	// MaxDepth bounds tree growth.
	MaxDepth int

	// Seed drives bootstrap sampling and feature subsetting. The same
	// seed over the same data yields an identical ensemble.
	Seed int64
}

// applyDefaults fills zero values.
func (c ForestConfig) applyDefaults() ForestConfig {
	if c.Trees <= 0 {
		c.Trees = 100
	}
	if c.MaxDepth <= 0 {
		c.MaxDepth = 16
	}
	return c
}

// ForestRegressor is a bagged ensemble of variance-reduction CART
// trees predicting a continuous target. Fields are exported for bundle
// serialization only.
type ForestRegressor struct {
	Config      ForestConfig `json:"config"`
	Roots       []*Node      `json:"roots"`
	NumFeatures int          `json:"num_features"`
	Importances []float64    `json:"importances"`
}

// NewForestRegressor creates an unfitted regressor.
func NewForestRegressor(cfg ForestConfig) *ForestRegressor {
	return &ForestRegressor{Config: cfg.applyDefaults()}
}

// Fit grows the ensemble. Refitting replaces the previous model.
func (f *ForestRegressor) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("%w: no samples", ErrInsufficientData)
	}
	if len(x) != len(y) {
		return fmt.Errorf("sample/target length mismatch: %d vs %d", len(x), len(y))
	}

	f.NumFeatures = len(x[0])
	for i, row := range x {
		if len(row) != f.NumFeatures {
			return fmt.Errorf("inconsistent feature width at sample %d: %d vs %d", i, len(row), f.NumFeatures)
		}
	}

	rng := rand.New(rand.NewSource(f.Config.Seed)) //nolint:gosec // deterministic training, not crypto
	params := treeParams{
		maxDepth:   f.Config.MaxDepth,
		minSplit:   2,
		maxFeature: f.NumFeatures, // regression considers all features
	}

	f.Roots = make([]*Node, f.Config.Trees)
	total := make([]float64, f.NumFeatures)
	perTree := make([]float64, f.NumFeatures)
	for t := range f.Roots {
		idx := bootstrap(rng, len(x))
		for i := range perTree {
			perTree[i] = 0
		}
		f.Roots[t] = buildRegressionTree(x, y, idx, 0, params, rng, perTree)
		accumulateNormalized(total, perTree)
	}

	f.Importances = normalize(total)
	return nil
}

// Predict returns the ensemble mean for one feature vector.
func (f *ForestRegressor) Predict(features []float64) (float64, error) {
	if len(f.Roots) == 0 {
		return 0, ErrNotFitted
	}
	var sum float64
	for _, root := range f.Roots {
		sum += root.walk(features).Value
	}
	return sum / float64(len(f.Roots)), nil
}

// FeatureImportances returns mean normalized impurity decrease per
// feature. Reporting only.
func (f *ForestRegressor) FeatureImportances() []float64 {
	return f.Importances
}

// bootstrap draws n sample indices with replacement.
func bootstrap(rng *rand.Rand, n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = rng.Intn(n)
	}
	return idx
}

// accumulateNormalized adds the per-tree importances, normalized to sum
// to 1, into total.
func accumulateNormalized(total, perTree []float64) {
	var sum float64
	for _, v := range perTree {
		sum += v
	}
	if sum == 0 {
		return
	}
	for i, v := range perTree {
		total[i] += v / sum
	}
}

// normalize scales weights to sum to 1 (all zeros stay zero).
func normalize(weights []float64) []float64 {
	var sum float64
	for _, v := range weights {
		sum += v
	}
	out := make([]float64, len(weights))
	if sum == 0 {
		return out
	}
	for i, v := range weights {
		out[i] = v / sum
	}
	return out
}
