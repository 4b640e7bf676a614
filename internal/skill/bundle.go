// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package skill

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/learnforge-io/learnforge/internal/artifact"
	"github.com/learnforge-io/learnforge/internal/learner"
)

// BundleFile is the persisted skill-model artifact name.
const BundleFile = "skill_assessment_model.json"

// Bundle is the opaque persisted skill-model artifact: the fitted
// classifier, the ordered feature-name list and the record table it was
// trained on. Read-only after training; safe for concurrent readers.
type Bundle struct {
	RunID        string                    `json:"run_id"`
	TrainedAt    time.Time                 `json:"trained_at"`
	FeatureNames []string                  `json:"feature_names"`
	Model        *learner.ForestClassifier `json:"model"`
	Records      []Record                  `json:"records"`
}

// Assessment is the classifier's answer for one set of activity metrics.
type Assessment struct {
	Label      string             `json:"predicted_skill"`
	Confidence map[string]float64 `json:"confidence"`
}

// Save writes the bundle as a single JSON blob into dir.
func (b *Bundle) Save(dir string) error {
	return artifact.WriteJSONFile(filepath.Join(dir, BundleFile), b)
}

// Load reads a bundle back from dir. A missing file surfaces
// artifact.ErrMissingArtifact.
func Load(dir string) (*Bundle, error) {
	var b Bundle
	if err := artifact.ReadJSONFile(filepath.Join(dir, BundleFile), &b); err != nil {
		return nil, err
	}
	if b.Model == nil {
		return nil, fmt.Errorf("skill bundle %s: no fitted model", BundleFile)
	}
	return &b, nil
}

// Assess predicts a skill label for the given activity metrics, keyed
// by FeatureNames. Missing features default to 0. The confidence map
// covers exactly the label set seen during training and sums to 1.
func (b *Bundle) Assess(metrics map[string]float64) (*Assessment, error) {
	features := make([]float64, len(b.FeatureNames))
	for i, name := range b.FeatureNames {
		features[i] = metrics[name] // zero default for missing keys
	}

	label, err := b.Model.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("predicting skill level: %w", err)
	}
	confidence, err := b.Model.PredictProba(features)
	if err != nil {
		return nil, fmt.Errorf("computing confidence: %w", err)
	}
	return &Assessment{Label: label, Confidence: confidence}, nil
}
