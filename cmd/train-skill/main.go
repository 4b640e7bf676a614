// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package main derives labeled skill records from the generated dataset,
// trains the skill-level classifier and writes the assessment bundle
// into the models directory. Run generate first.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/learnforge-io/learnforge/internal/artifact"
	"github.com/learnforge-io/learnforge/internal/config"
	"github.com/learnforge-io/learnforge/internal/dataset"
	"github.com/learnforge-io/learnforge/internal/learner"
	"github.com/learnforge-io/learnforge/internal/logging"
	"github.com/learnforge-io/learnforge/internal/skill"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Timestamp: true})

	log := logging.With().Str("phase", "train-skill").Logger()

	ds, err := dataset.LoadCSV(cfg.Paths.TrainingDataDir)
	if err != nil {
		if errors.Is(err, artifact.ErrMissingArtifact) {
			log.Fatal().Err(err).Msg("Training data not found; run generate first")
		}
		log.Fatal().Err(err).Msg("Failed to load training data")
	}

	records := skill.BuildRecords(ds)
	log.Info().Int("records", len(records)).Msg("Skill records derived")

	start := time.Now()
	res, err := skill.Train(records, skill.TrainConfig{
		Seed:         cfg.Skill.Seed,
		Trees:        cfg.Skill.Trees,
		MaxDepth:     cfg.Skill.MaxDepth,
		TestFraction: cfg.Skill.TestFraction,
	})
	if err != nil {
		if errors.Is(err, learner.ErrInsufficientData) {
			log.Fatal().Err(err).Msg("Not enough labeled learners to train; regenerate with more interactions")
		}
		log.Fatal().Err(err).Msg("Training failed")
	}
	log.Info().
		Float64("train_accuracy", res.TrainAccuracy).
		Float64("test_accuracy", res.TestAccuracy).
		Int("train_samples", res.TrainSamples).
		Int("test_samples", res.TestSamples).
		Dur("elapsed", time.Since(start)).
		Msg("Skill model trained")
	fmt.Fprintln(os.Stdout, res.Report)

	if err := artifact.EnsureDir(cfg.Paths.ModelsDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to create models directory")
	}
	if err := res.Bundle.Save(cfg.Paths.ModelsDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to save skill bundle")
	}
	log.Info().Str("file", skill.BundleFile).Msg("Skill bundle saved")
}
