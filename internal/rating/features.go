// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package rating trains and serves the course-rating predictor: a
// forest regressor over hybrid content and collaborative features of
// (learner, course) pairs, plus top-N recommendation ranking.
package rating

import (
	"fmt"
	"strings"

	"github.com/learnforge-io/learnforge/internal/dataset"
	"github.com/learnforge-io/learnforge/internal/encode"
)

// FeatureNames is the fixed 9-dimension feature order of the rating
// model. Changing the order invalidates persisted bundles.
var FeatureNames = []string{
	"user_encoded", "course_encoded", "difficulty_encoded", "category_encoded",
	"duration_hours", "popularity_score", "age", "experience_encoded",
	"time_available_per_week",
}

// Encoders are the four fitted categorical mappings of the rating model.
//
// Difficulty is deliberately shared between course difficulty and
// learner experience_level: the two attributes draw from the same
// three-tier domain, and encoding them through one mapping keeps their
// codes comparable. This sharing is part of the model contract, not an
// implementation accident.
type Encoders struct {
	User       *encode.Encoder `json:"user"`
	Course     *encode.Encoder `json:"course"`
	Difficulty *encode.Encoder `json:"difficulty"`
	Category   *encode.Encoder `json:"category"`
}

// newEncoders returns four unfitted encoders.
func newEncoders() Encoders {
	return Encoders{
		User:       encode.New(),
		Course:     encode.New(),
		Difficulty: encode.New(),
		Category:   encode.New(),
	}
}

// vector builds the 9-dimension feature vector for one (learner, course)
// pair. Unseen categorical values degrade to the sentinel code; a
// malformed course is an error so recommendation scoring can skip it.
func (e Encoders) vector(l dataset.Learner, c dataset.Course) ([]float64, error) {
	if c.DurationHours <= 0 {
		return nil, fmt.Errorf("course %s: non-positive duration %d", c.CourseID, c.DurationHours)
	}
	if c.Difficulty == "" || c.Category == "" {
		return nil, fmt.Errorf("course %s: missing difficulty or category", c.CourseID)
	}

	return []float64{
		float64(e.User.Encode(l.UserID)),
		float64(e.Course.Encode(c.CourseID)),
		float64(e.Difficulty.Encode(c.Difficulty)),
		float64(e.Category.Encode(c.Category)),
		float64(c.DurationHours),
		float64(c.PopularityScore),
		float64(l.Age),
		float64(e.Difficulty.Encode(l.ExperienceLevel)), // shared difficulty domain
		float64(l.TimeAvailablePerWeek),
	}, nil
}

// courseDocument is the per-course text document the similarity index
// is fit on: skills joined with the category.
func courseDocument(c dataset.Course) string {
	return strings.Join(c.SkillsTaught, " ") + " " + c.Category
}
