// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package rating

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/learnforge-io/learnforge/internal/dataset"
	"github.com/learnforge-io/learnforge/internal/learner"
	"github.com/learnforge-io/learnforge/internal/logging"
	"github.com/learnforge-io/learnforge/internal/textsim"
)

// TrainConfig parameterizes rating-model training.
type TrainConfig struct {
	Seed          int64
	Trees         int
	MaxDepth      int
	TestFraction  float64
	MaxVocabulary int
}

// Result reports a completed training run.
type Result struct {
	Bundle       *Bundle
	TrainR2      float64
	TestR2       float64
	TrainSamples int
	TestSamples  int
	Skipped      int // rated interactions dropped for missing references
}

// Train fits the rating model on the interactions that carry an
// observed rating. It fits the four encoders and the content-similarity
// index on the full rated set, then trains and evaluates the regressor
// on a fixed random 80/20 partition.
func Train(ds *dataset.Dataset, cfg TrainConfig) (*Result, error) {
	log := logging.With().Str("component", "rating").Logger()

	courseByID := make(map[string]dataset.Course, len(ds.Courses))
	for _, c := range ds.Courses {
		courseByID[c.CourseID] = c
	}
	learnerByID := make(map[string]dataset.Learner, len(ds.Learners))
	for _, l := range ds.Learners {
		learnerByID[l.UserID] = l
	}

	// Join rated interactions with their reference rows. Interactions
	// pointing at entities missing from the reference tables are
	// skipped, not fatal.
	type sample struct {
		learner dataset.Learner
		course  dataset.Course
		rating  float64
	}
	samples := make([]sample, 0, len(ds.Interactions))
	skipped := 0
	for _, in := range ds.Interactions {
		if !in.Rated() {
			continue
		}
		c, okC := courseByID[in.CourseID]
		l, okL := learnerByID[in.UserID]
		if !okC || !okL {
			skipped++
			continue
		}
		samples = append(samples, sample{learner: l, course: c, rating: float64(*in.Rating)})
	}
	if skipped > 0 {
		log.Warn().Int("skipped", skipped).Msg("Dropped rated interactions with missing references")
	}

	if err := requireDistinctRatings(samples, func(s sample) float64 { return s.rating }); err != nil {
		return nil, err
	}

	// Encoders are fit once on the full rated set and reused verbatim
	// at inference time.
	enc := newEncoders()
	userIDs := make([]string, len(samples))
	courseIDs := make([]string, len(samples))
	difficulties := make([]string, 0, len(samples)*2)
	categories := make([]string, len(samples))
	for i, s := range samples {
		userIDs[i] = s.learner.UserID
		courseIDs[i] = s.course.CourseID
		difficulties = append(difficulties, s.course.Difficulty, s.learner.ExperienceLevel)
		categories[i] = s.course.Category
	}
	if err := enc.User.Fit(userIDs); err != nil {
		return nil, fmt.Errorf("fitting user encoder: %w", err)
	}
	if err := enc.Course.Fit(courseIDs); err != nil {
		return nil, fmt.Errorf("fitting course encoder: %w", err)
	}
	if err := enc.Difficulty.Fit(difficulties); err != nil {
		return nil, fmt.Errorf("fitting difficulty encoder: %w", err)
	}
	if err := enc.Category.Fit(categories); err != nil {
		return nil, fmt.Errorf("fitting category encoder: %w", err)
	}

	x := make([][]float64, len(samples))
	y := make([]float64, len(samples))
	for i, s := range samples {
		v, err := enc.vector(s.learner, s.course)
		if err != nil {
			return nil, fmt.Errorf("building training vector: %w", err)
		}
		x[i] = v
		y[i] = s.rating
	}

	trainIdx, testIdx, err := learner.Split(len(x), cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, err
	}

	model := learner.NewForestRegressor(learner.ForestConfig{
		Trees:    cfg.Trees,
		MaxDepth: cfg.MaxDepth,
		Seed:     cfg.Seed,
	})
	if err := model.Fit(learner.Gather(x, trainIdx), learner.Gather(y, trainIdx)); err != nil {
		return nil, fmt.Errorf("fitting regressor: %w", err)
	}

	trainR2, err := evaluate(model, learner.Gather(x, trainIdx), learner.Gather(y, trainIdx))
	if err != nil {
		return nil, fmt.Errorf("evaluating train partition: %w", err)
	}
	testR2, err := evaluate(model, learner.Gather(x, testIdx), learner.Gather(y, testIdx))
	if err != nil {
		return nil, fmt.Errorf("evaluating test partition: %w", err)
	}

	// The similarity index spans the full course catalog, not only the
	// rated subset. It is persisted with the bundle but not consumed by
	// the regressor; see the extension-point note on textsim.Index.
	docs := make([]string, len(ds.Courses))
	for i, c := range ds.Courses {
		docs[i] = courseDocument(c)
	}
	index, err := textsim.BuildIndex(docs, cfg.MaxVocabulary)
	if err != nil {
		return nil, fmt.Errorf("building similarity index: %w", err)
	}

	bundle := &Bundle{
		RunID:        uuid.NewString(),
		TrainedAt:    time.Now().UTC(),
		FeatureNames: FeatureNames,
		Model:        model,
		Encoders:     enc,
		Similarity:   index,
		Courses:      ds.Courses,
		Learners:     ds.Learners,
		TrainR2:      trainR2,
		TestR2:       testR2,
	}

	log.Info().
		Str("run_id", bundle.RunID).
		Int("train_samples", len(trainIdx)).
		Int("test_samples", len(testIdx)).
		Float64("train_r2", trainR2).
		Float64("test_r2", testR2).
		Msg("Rating model trained")

	return &Result{
		Bundle:       bundle,
		TrainR2:      trainR2,
		TestR2:       testR2,
		TrainSamples: len(trainIdx),
		TestSamples:  len(testIdx),
		Skipped:      skipped,
	}, nil
}

// requireDistinctRatings enforces the evaluation precondition: at least
// two samples with at least two distinct rating values.
func requireDistinctRatings[T any](samples []T, ratingOf func(T) float64) error {
	distinct := make(map[float64]struct{})
	for _, s := range samples {
		distinct[ratingOf(s)] = struct{}{}
		if len(distinct) >= 2 {
			return nil
		}
	}
	return fmt.Errorf("%w: %d distinct rating value(s), need at least 2 for evaluation", learner.ErrInsufficientData, len(distinct))
}

// evaluate scores the model on one partition.
func evaluate(model learner.Regressor, x [][]float64, y []float64) (float64, error) {
	predicted := make([]float64, len(x))
	for i, row := range x {
		p, err := model.Predict(row)
		if err != nil {
			return 0, err
		}
		predicted[i] = p
	}
	return learner.RSquared(predicted, y)
}
