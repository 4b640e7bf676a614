// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package main generates the synthetic course, learner and interaction
// collections and persists them as paired JSON and CSV files in the
// training-data directory. Generation is deterministic for a fixed seed
// and anchor date.
package main

import (
	"time"

	"github.com/learnforge-io/learnforge/internal/artifact"
	"github.com/learnforge-io/learnforge/internal/config"
	"github.com/learnforge-io/learnforge/internal/dataset"
	"github.com/learnforge-io/learnforge/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Timestamp: true})

	log := logging.With().Str("phase", "generate").Logger()

	if err := artifact.EnsureDir(cfg.Paths.TrainingDataDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to create training-data directory")
	}

	// Enrollment dates are counted back from UTC midnight, so two runs
	// on the same day with the same seed produce identical files.
	anchor := time.Now().UTC().Truncate(24 * time.Hour)

	start := time.Now()
	ds := dataset.Generate(dataset.GenSpec{
		Seed:         cfg.Generator.Seed,
		Courses:      cfg.Generator.Courses,
		Learners:     cfg.Generator.Learners,
		Interactions: cfg.Generator.Interactions,
		Anchor:       anchor,
	})
	log.Info().
		Int("courses", len(ds.Courses)).
		Int("learners", len(ds.Learners)).
		Int("interactions", len(ds.Interactions)).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset generated")

	if err := ds.Save(cfg.Paths.TrainingDataDir); err != nil {
		log.Fatal().Err(err).Msg("Failed to persist dataset")
	}
	log.Info().Str("dir", cfg.Paths.TrainingDataDir).Msg("Dataset saved")
}
