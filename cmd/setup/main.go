// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package main prepares the workspace for a pipeline run: it creates the
// training-data and model directories and verifies the configuration, so
// later phases fail only on real problems. Idempotent and argument-free,
// like every phase binary.
package main

import (
	"github.com/learnforge-io/learnforge/internal/artifact"
	"github.com/learnforge-io/learnforge/internal/config"
	"github.com/learnforge-io/learnforge/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Timestamp: true})

	log := logging.With().Str("phase", "setup").Logger()

	for _, dir := range []string{cfg.Paths.TrainingDataDir, cfg.Paths.ModelsDir} {
		if err := artifact.EnsureDir(dir); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("Failed to create directory")
		}
		log.Info().Str("dir", dir).Msg("Directory ready")
	}

	log.Info().Msg("Setup complete; run generate next")
}
