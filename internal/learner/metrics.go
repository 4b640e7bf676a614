// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package learner

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// RSquared is the coefficient of determination of predictions against
// observed targets. 1 is a perfect fit; 0 matches predicting the mean;
// negative is worse than the mean.
func RSquared(predicted, observed []float64) (float64, error) {
	if len(predicted) != len(observed) {
		return 0, fmt.Errorf("length mismatch: %d predictions vs %d observations", len(predicted), len(observed))
	}
	if len(observed) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 observations for R²", ErrInsufficientData)
	}

	mean := floats.Sum(observed) / float64(len(observed))
	var ssRes, ssTot float64
	for i, obs := range observed {
		ssRes += (obs - predicted[i]) * (obs - predicted[i])
		ssTot += (obs - mean) * (obs - mean)
	}
	if ssTot == 0 {
		return 0, fmt.Errorf("%w: zero target variance, R² undefined", ErrInsufficientData)
	}
	return 1 - ssRes/ssTot, nil
}

// Accuracy is the fraction of exact label matches.
func Accuracy(predicted, observed []string) (float64, error) {
	if len(predicted) != len(observed) {
		return 0, fmt.Errorf("length mismatch: %d predictions vs %d observations", len(predicted), len(observed))
	}
	if len(observed) == 0 {
		return 0, fmt.Errorf("%w: no observations", ErrInsufficientData)
	}

	var hits int
	for i, obs := range observed {
		if predicted[i] == obs {
			hits++
		}
	}
	return float64(hits) / float64(len(observed)), nil
}

// ClassMetrics holds per-class evaluation figures.
type ClassMetrics struct {
	Label     string  `json:"label"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
	Support   int     `json:"support"`
}

// Report is a per-class classification report, ordered by label.
type Report []ClassMetrics

// ClassificationReport computes precision, recall and F1 per observed
// class.
func ClassificationReport(predicted, observed []string) (Report, error) {
	if len(predicted) != len(observed) {
		return nil, fmt.Errorf("length mismatch: %d predictions vs %d observations", len(predicted), len(observed))
	}

	type tally struct{ tp, fp, fn, support int }
	tallies := make(map[string]*tally)
	get := func(label string) *tally {
		if t, ok := tallies[label]; ok {
			return t
		}
		t := &tally{}
		tallies[label] = t
		return t
	}

	for i, obs := range observed {
		pred := predicted[i]
		get(obs).support++
		if pred == obs {
			get(obs).tp++
		} else {
			get(pred).fp++
			get(obs).fn++
		}
	}

	labels := make([]string, 0, len(tallies))
	for l := range tallies {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	report := make(Report, 0, len(labels))
	for _, l := range labels {
		t := tallies[l]
		var precision, recall, f1 float64
		if t.tp+t.fp > 0 {
			precision = float64(t.tp) / float64(t.tp+t.fp)
		}
		if t.tp+t.fn > 0 {
			recall = float64(t.tp) / float64(t.tp+t.fn)
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		report = append(report, ClassMetrics{Label: l, Precision: precision, Recall: recall, F1: f1, Support: t.support})
	}
	return report, nil
}

// String renders the report as an aligned table for logging.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-14s %9s %9s %9s %9s\n", "class", "precision", "recall", "f1", "support")
	for _, m := range r {
		fmt.Fprintf(&b, "%-14s %9.3f %9.3f %9.3f %9d\n", m.Label, m.Precision, m.Recall, m.F1, m.Support)
	}
	return b.String()
}
