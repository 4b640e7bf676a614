// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package main trains the course-rating model from the generated
// dataset and writes the recommendation bundle into the models
// directory. Run generate first.
package main

import (
	"errors"
	"time"

	"github.com/learnforge-io/learnforge/internal/artifact"
	"github.com/learnforge-io/learnforge/internal/config"
	"github.com/learnforge-io/learnforge/internal/dataset"
	"github.com/learnforge-io/learnforge/internal/learner"
	"github.com/learnforge-io/learnforge/internal/logging"
	"github.com/learnforge-io/learnforge/internal/rating"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Timestamp: true})

	log := logging.With().Str("phase", "train-rating").Logger()

	ds, err := dataset.LoadCSV(cfg.Paths.TrainingDataDir)
	if err != nil {
		if errors.Is(err, artifact.ErrMissingArtifact) {
			log.Fatal().Err(err).Msg("Training data not found; run generate first")
		}
		log.Fatal().Err(err).Msg("Failed to load training data")
	}

	start := time.Now()
	res, err := rating.Train(ds, rating.TrainConfig{
		Seed:          cfg.Rating.Seed,
		Trees:         cfg.Rating.Trees,
		MaxDepth:      cfg.Rating.MaxDepth,
		TestFraction:  cfg.Rating.TestFraction,
		MaxVocabulary: cfg.Rating.MaxVocabulary,
	})
	if err != nil {
		if errors.Is(err, learner.ErrInsufficientData) {
			log.Fatal().Err(err).Msg("Not enough rated interactions to train; regenerate with more interactions")
		}
		log.Fatal().Err(err).Msg("Training failed")
	}
	log.Info().
		Float64("train_r2", res.TrainR2).
		Float64("test_r2", res.TestR2).
		Int("train_samples", res.TrainSamples).
		Int("test_samples", res.TestSamples).
		Int("skipped", res.Skipped).
		Dur("elapsed", time.Since(start)).
		Msg("Rating model trained")

	if err := artifact.EnsureDir(cfg.Paths.ModelsDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to create models directory")
	}
	if err := res.Bundle.Save(cfg.Paths.ModelsDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to save recommendation bundle")
	}
	log.Info().Str("file", rating.BundleFile).Msg("Recommendation bundle saved")
}
