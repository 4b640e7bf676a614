// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package rating

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/learnforge-io/learnforge/internal/artifact"
	"github.com/learnforge-io/learnforge/internal/dataset"
	"github.com/learnforge-io/learnforge/internal/learner"
	"github.com/learnforge-io/learnforge/internal/logging"
	"github.com/learnforge-io/learnforge/internal/textsim"
)

// BundleFile is the persisted rating-model artifact name.
const BundleFile = "recommendation_model.json"

// Bundle is the opaque persisted rating-model artifact: the fitted
// regressor, its four encoders, the content-similarity index and the
// reference tables needed for lookup at inference time. Produced once
// by training, read-only afterwards; safe for concurrent readers.
type Bundle struct {
	RunID        string                   `json:"run_id"`
	TrainedAt    time.Time                `json:"trained_at"`
	FeatureNames []string                 `json:"feature_names"`
	Model        *learner.ForestRegressor `json:"model"`
	Encoders     Encoders                 `json:"encoders"`
	Similarity   *textsim.Index           `json:"similarity"`
	Courses      []dataset.Course         `json:"courses"`
	Learners     []dataset.Learner        `json:"learners"`
	TrainR2      float64                  `json:"train_r2"`
	TestR2       float64                  `json:"test_r2"`

	learnerByID map[string]dataset.Learner
}

// Recommendation is one ranked entry returned by Recommend.
type Recommendation struct {
	CourseID        string  `json:"course_id"`
	Title           string  `json:"title"`
	Category        string  `json:"category"`
	Difficulty      string  `json:"difficulty"`
	PredictedRating float64 `json:"predicted_rating"`
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
		return nil, fmt.Errorf("rating bundle %s: no fitted model", BundleFile)
	}
	b.index()
	return &b, nil
}

// index builds the learner lookup table.
func (b *Bundle) index() {
	b.learnerByID = make(map[string]dataset.Learner, len(b.Learners))
	for _, l := range b.Learners {
		b.learnerByID[l.UserID] = l
	}
}

// PredictRating returns the regressor's point estimate for one
// (user, course) pair. An unknown user degrades to a cold-start
// profile (sentinel codes, zero activity attributes) rather than
// failing; a malformed course is an error.
func (b *Bundle) PredictRating(userID string, course dataset.Course) (float64, error) {
	if b.learnerByID == nil {
		b.index()
	}
	l, ok := b.learnerByID[userID]
	if !ok {
		l = dataset.Learner{UserID: userID}
	}

	features, err := b.Encoders.vector(l, course)
	if err != nil {
		return 0, err
	}
	return b.Model.Predict(features)
}

// Recommend scores every catalog course for userID and returns the top
// N by predicted rating, sorted descending. Ties keep catalog order
// (stable sort). An unknown user yields an empty list and no error.
// Individual courses whose vectors cannot be built are skipped so one
// malformed row never aborts the whole call.
func (b *Bundle) Recommend(userID string, topN int) ([]Recommendation, error) {
	if b.learnerByID == nil {
		b.index()
	}
	if _, ok := b.learnerByID[userID]; !ok {
		return []Recommendation{}, nil
	}

	recs := make([]Recommendation, 0, len(b.Courses))
	skipped := 0
	for _, c := range b.Courses {
		predicted, err := b.PredictRating(userID, c)
		if err != nil {
			skipped++
			logging.Debug().
				Str("user_id", userID).
				Str("course_id", c.CourseID).
				Err(err).
				Msg("Skipping course during recommendation scoring")
			continue
		}
		recs = append(recs, Recommendation{
			CourseID:        c.CourseID,
			Title:           c.Title,
			Category:        c.Category,
			Difficulty:      c.Difficulty,
			PredictedRating: predicted,
		})
	}
	if skipped > 0 {
		logging.Warn().
			Str("user_id", userID).
			Int("skipped", skipped).
			Msg("Some courses could not be scored")
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].PredictedRating > recs[j].PredictedRating
	})
	if topN >= 0 && len(recs) > topN {
		recs = recs[:topN]
	}
	return recs, nil
}
