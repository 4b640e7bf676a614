// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package main smoke-tests the trained bundles: it loads both models,
// requests top-3 recommendations for the first learner and assesses a
// canonical activity profile. Both models must be present; run the two
// training phases first.
package main

import (
	"github.com/learnforge-io/learnforge/internal/config"
	"github.com/learnforge-io/learnforge/internal/inference"
	"github.com/learnforge-io/learnforge/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Timestamp: true})

	log := logging.With().Str("phase", "evaluate").Logger()

	engine, err := inference.Load(cfg.Paths.ModelsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load models; run train-rating and train-skill first")
	}

	recs, err := engine.Recommend("user_1", 3)
	if err != nil {
		log.Fatal().Err(err).Msg("Recommendation failed")
	}
	if len(recs) == 0 {
		log.Warn().Msg("No recommendations for user_1")
	}
	for i, rec := range recs {
		log.Info().
			Int("rank", i+1).
			Str("course_id", rec.CourseID).
			Str("title", rec.Title).
			Str("category", rec.Category).
			Str("difficulty", rec.Difficulty).
			Float64("predicted_rating", rec.PredictedRating).
			Msg("Recommendation")
	}

	assessment, err := engine.Assess(map[string]float64{
		"age":                     28,
		"time_available_per_week": 10,
		"avg_completion_rate":     0.85,
		"courses_completed":       5,
		"total_time_spent":        120,
		"avg_rating_given":        4.2,
		"beginner_courses":        2,
		"intermediate_courses":    3,
		"advanced_courses":        0,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Skill assessment failed")
	}
	ev := log.Info().Str("predicted_skill", assessment.Label)
	for label, p := range assessment.Confidence {
		ev = ev.Float64("confidence_"+label, p)
	}
	ev.Msg("Skill assessment")

	log.Info().Msg("Evaluation complete")
}
