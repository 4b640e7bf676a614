// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package inference loads the persisted model bundles and exposes the
// two serving operations behind one facade. Loading is all-or-nothing:
// a deployment with only one of the two bundles is treated as broken.
package inference

import (
	"fmt"

	"github.com/learnforge-io/learnforge/internal/logging"
	"github.com/learnforge-io/learnforge/internal/rating"
	"github.com/learnforge-io/learnforge/internal/skill"
)

// Engine serves recommendations and skill assessments from bundles
// trained in earlier pipeline phases. Read-only after Load; safe for
// concurrent use.
type Engine struct {
	rating *rating.Bundle
	skill  *skill.Bundle
}

// Load reads both model bundles from dir. Either bundle missing or
// unreadable fails the whole load; the caller is expected to treat that
// as fatal and point the operator at the training phases.
func Load(dir string) (*Engine, error) {
	log := logging.With().Str("component", "inference").Logger()

	ratingBundle, err := rating.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading recommendation model: %w", err)
	}
	skillBundle, err := skill.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading skill model: %w", err)
	}

	log.Info().
		Str("dir", dir).
		Str("rating_run_id", ratingBundle.RunID).
		Str("skill_run_id", skillBundle.RunID).
		Msg("Model bundles loaded")

	return &Engine{rating: ratingBundle, skill: skillBundle}, nil
}

// Recommend returns up to topN unseen courses for the learner, highest
// predicted rating first. Unknown learners get an empty list.
func (e *Engine) Recommend(userID string, topN int) ([]rating.Recommendation, error) {
	return e.rating.Recommend(userID, topN)
}

// Assess classifies a learner's skill level from activity metrics keyed
// by skill.FeatureNames.
func (e *Engine) Assess(metrics map[string]float64) (*skill.Assessment, error) {
	return e.skill.Assess(metrics)
}
