// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package artifact provides persistence helpers shared by the dataset
// store and the model bundles. Every pipeline phase either completes and
// persists its artifact or fails; a missing input artifact is always a
// structural error surfaced as ErrMissingArtifact.
package artifact

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// ErrMissingArtifact indicates that a required input file or persisted
// model bundle is absent. Callers treat it as fatal for the phase.
var ErrMissingArtifact = errors.New("missing artifact")

// WriteJSONFile marshals v with two-space indentation and writes it to path.
func WriteJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadJSONFile reads path and unmarshals it into v. A nonexistent file
// is reported as ErrMissingArtifact.
func ReadJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissingArtifact, path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates dir if it does not exist. Creating an existing
// directory is not an error.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}
