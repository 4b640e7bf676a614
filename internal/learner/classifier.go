// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package learner

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// ForestClassifier is a bagged ensemble of Gini CART trees over string
// labels. Probabilities are the mean of per-tree leaf distributions and
// always cover the full label set seen during fit. Fields are exported
// for bundle serialization only.
type ForestClassifier struct {
	Config      ForestConfig `json:"config"`
	Roots       []*Node      `json:"roots"`
	Labels      []string     `json:"labels"`
	NumFeatures int          `json:"num_features"`
	Importances []float64    `json:"importances"`
}

// NewForestClassifier creates an unfitted classifier.
func NewForestClassifier(cfg ForestConfig) *ForestClassifier {
	return &ForestClassifier{Config: cfg.applyDefaults()}
}

// Fit grows the ensemble. The class set is the sorted distinct labels.
// Refitting replaces the previous model.
func (f *ForestClassifier) Fit(x [][]float64, labels []string) error {
	if len(x) == 0 {
		return fmt.Errorf("%w: no samples", ErrInsufficientData)
	}
	if len(x) != len(labels) {
		return fmt.Errorf("sample/label length mismatch: %d vs %d", len(x), len(labels))
	}

	f.NumFeatures = len(x[0])
	for i, row := range x {
		if len(row) != f.NumFeatures {
			return fmt.Errorf("inconsistent feature width at sample %d: %d vs %d", i, len(row), f.NumFeatures)
		}
	}

	f.Labels = distinctSorted(labels)
	classIndex := make(map[string]int, len(f.Labels))
	for i, l := range f.Labels {
		classIndex[l] = i
	}
	y := make([]int, len(labels))
	for i, l := range labels {
		y[i] = classIndex[l]
	}

	rng := rand.New(rand.NewSource(f.Config.Seed)) //nolint:gosec // deterministic training, not crypto
	params := treeParams{
		maxDepth:   f.Config.MaxDepth,
		minSplit:   2,
		maxFeature: sqrtFeatures(f.NumFeatures),
	}

	f.Roots = make([]*Node, f.Config.Trees)
	total := make([]float64, f.NumFeatures)
	perTree := make([]float64, f.NumFeatures)
	for t := range f.Roots {
		idx := bootstrap(rng, len(x))
		for i := range perTree {
			perTree[i] = 0
		}
		f.Roots[t] = buildClassificationTree(x, y, idx, len(f.Labels), 0, params, rng, perTree)
		accumulateNormalized(total, perTree)
	}

	f.Importances = normalize(total)
	return nil
}

// Predict returns the most probable label for one feature vector.
func (f *ForestClassifier) Predict(features []float64) (string, error) {
	dist, err := f.proba(features)
	if err != nil {
		return "", err
	}
	best := 0
	for i, p := range dist {
		if p > dist[best] {
			best = i
		}
	}
	return f.Labels[best], nil
}

// PredictProba returns the per-label probability distribution. The map
// covers every label seen during fit and sums to 1.
func (f *ForestClassifier) PredictProba(features []float64) (map[string]float64, error) {
	dist, err := f.proba(features)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(f.Labels))
	for i, l := range f.Labels {
		out[l] = dist[i]
	}
	return out, nil
}

// proba averages the leaf distributions across trees.
func (f *ForestClassifier) proba(features []float64) ([]float64, error) {
	if len(f.Roots) == 0 {
		return nil, ErrNotFitted
	}
	dist := make([]float64, len(f.Labels))
	for _, root := range f.Roots {
		leaf := root.walk(features)
		for i, p := range leaf.Dist {
			dist[i] += p
		}
	}
	n := float64(len(f.Roots))
	for i := range dist {
		dist[i] /= n
	}
	return dist, nil
}

// Classes returns the label set seen during fit, sorted.
func (f *ForestClassifier) Classes() []string {
	return f.Labels
}

// FeatureImportances returns mean normalized impurity decrease per
// feature. Reporting only.
func (f *ForestClassifier) FeatureImportances() []float64 {
	return f.Importances
}

// sqrtFeatures is the classic forest heuristic for classification.
func sqrtFeatures(p int) int {
	m := int(math.Round(math.Sqrt(float64(p))))
	if m < 1 {
		m = 1
	}
	return m
}

func distinctSorted(labels []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, 4)
	for _, l := range labels {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
