// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package config loads pipeline configuration via Koanf v2 with layered
// sources: built-in defaults first, then an optional YAML file. The
// pipeline deliberately has no environment-variable or flag surface;
// every phase binary runs argument-free.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in
// order of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"learnforge.yaml",
	"learnforge.yml",
}

// Config is the root configuration for all pipeline phases.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging"`
	Paths     PathsConfig     `koanf:"paths"`
	Generator GeneratorConfig `koanf:"generator"`
	Rating    RatingConfig    `koanf:"rating"`
	Skill     SkillConfig     `koanf:"skill"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
}

// PathsConfig names the artifact directories shared by all phases.
type PathsConfig struct {
	ModelsDir       string `koanf:"models_dir" validate:"required"`
	TrainingDataDir string `koanf:"training_data_dir" validate:"required"`
}

// GeneratorConfig controls synthetic dataset generation.
type GeneratorConfig struct {
	Seed         int64 `koanf:"seed"`
	Courses      int   `koanf:"courses" validate:"gt=0"`
	Learners     int   `koanf:"learners" validate:"gt=0"`
	Interactions int   `koanf:"interactions" validate:"gt=0"`
}

// RatingConfig controls rating-model training.
type RatingConfig struct {
	Seed          int64   `koanf:"seed"`
	Trees         int     `koanf:"trees" validate:"gt=0"`
	MaxDepth      int     `koanf:"max_depth" validate:"gt=0"`
	TestFraction  float64 `koanf:"test_fraction" validate:"gt=0,lt=1"`
	MaxVocabulary int     `koanf:"max_vocabulary" validate:"gt=0"`
}

// SkillConfig controls skill-model training.
type SkillConfig struct {
	Seed         int64   `koanf:"seed"`
	Trees        int     `koanf:"trees" validate:"gt=0"`
	MaxDepth     int     `koanf:"max_depth" validate:"gt=0"`
	TestFraction float64 `koanf:"test_fraction" validate:"gt=0,lt=1"`
}

// Default returns the built-in configuration. The seeds and sizes mirror
// the canonical pipeline run: 200 courses, 1000 learners, 5000
// interactions, everything seeded with 42 for reproducibility.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Paths: PathsConfig{
			ModelsDir:       "models",
			TrainingDataDir: "training_data",
		},
		Generator: GeneratorConfig{
			Seed:         42,
			Courses:      200,
			Learners:     1000,
			Interactions: 5000,
		},
		Rating: RatingConfig{
			Seed:          42,
			Trees:         100,
			MaxDepth:      16,
			TestFraction:  0.2,
			MaxVocabulary: 100,
		},
		Skill: SkillConfig{
			Seed:         42,
			Trees:        100,
			MaxDepth:     16,
			TestFraction: 0.2,
		},
	}
}

// Load builds the configuration from defaults overlaid with the first
// config file found in DefaultConfigPaths, then validates the result.
func Load() (*Config, error) {
	return loadFrom(findConfigFile())
}

// loadFrom loads defaults plus an optional YAML file at path (empty path
// means defaults only).
func loadFrom(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration via struct tags.
func (c *Config) Validate() error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// findConfigFile returns the first existing config file path, or empty.
func findConfigFile() string {
	for _, p := range DefaultConfigPaths {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}
