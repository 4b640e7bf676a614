// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package dataset

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// PreferredDifficultyBoost is the multiplier applied to an interaction's
// sampled completion rate when the course difficulty matches the
// learner's preferred difficulty. The boosted value is capped at 1.0
// before storage. The constant is preserved for compatibility with the
// labeling rules downstream; it is tunable, not semantically load-bearing.
const PreferredDifficultyBoost = 1.2

// RatingThreshold is the (pre-cap) completion rate above which a learner
// leaves a rating.
const RatingThreshold = 0.3

// GenSpec parameterizes synthetic dataset generation.
type GenSpec struct {
	// Seed drives the single deterministic random source. Two runs with
	// the same seed and the same Anchor produce byte-identical datasets.
	Seed int64

	// Courses, Learners and Interactions are the collection sizes.
	Courses      int
	Learners     int
	Interactions int

	// Anchor is the reference date that enrollment dates are counted
	// back from. Callers fix it (e.g. UTC midnight) to keep generation
	// reproducible.
	Anchor time.Time
}

// Generate produces the three related collections. All randomness flows
// through one seeded source, so generation is deterministic per GenSpec.
func Generate(spec GenSpec) *Dataset {
	rng := rand.New(rand.NewSource(spec.Seed)) //nolint:gosec // deterministic synthesis, not crypto

	courses := make([]Course, spec.Courses)
	for i := range courses {
		courses[i] = Course{
			CourseID:        fmt.Sprintf("course_%d", i+1),
			Title:           fmt.Sprintf("Course %d: %s Fundamentals", i+1, pick(rng, Categories)),
			Category:        pick(rng, Categories),
			Difficulty:      pick(rng, Difficulties),
			DurationHours:   5 + rng.Intn(46),
			Rating:          round1(3.5 + rng.Float64()*1.5),
			SkillsTaught:    sample(rng, Skills, 2+rng.Intn(4)),
			Prerequisites:   sample(rng, Skills, rng.Intn(4)),
			PopularityScore: 1 + rng.Intn(100),
		}
	}

	learners := make([]Learner, spec.Learners)
	for i := range learners {
		learners[i] = Learner{
			UserID:               fmt.Sprintf("user_%d", i+1),
			Age:                  18 + rng.Intn(48),
			ExperienceLevel:      pick(rng, Difficulties),
			CurrentSkills:        sample(rng, Skills, 1+rng.Intn(8)),
			LearningGoals:        sample(rng, Categories, 1+rng.Intn(3)),
			TimeAvailablePerWeek: 2 + rng.Intn(19),
			PreferredDifficulty:  pick(rng, Difficulties),
		}
	}

	interactions := make([]Interaction, spec.Interactions)
	for i := range interactions {
		learner := learners[rng.Intn(len(learners))]
		course := courses[rng.Intn(len(courses))]

		completion := boostedCompletion(0.1+rng.Float64()*0.9,
			course.Difficulty == learner.PreferredDifficulty)

		// The rating decision and time spent use the boosted, uncapped
		// rate; only the stored completion_rate is capped at 1.0.
		var rating *int
		if completion > RatingThreshold {
			r := 1 + rng.Intn(5)
			rating = &r
		}

		enrolled := spec.Anchor.AddDate(0, 0, -(1 + rng.Intn(365)))

		interactions[i] = Interaction{
			UserID:         learner.UserID,
			CourseID:       course.CourseID,
			EnrolledDate:   enrolled.Format(time.RFC3339),
			CompletionRate: math.Min(completion, 1.0),
			Rating:         rating,
			TimeSpentHours: float64(course.DurationHours) * completion * (0.8 + rng.Float64()*0.4),
		}
	}

	return &Dataset{Courses: courses, Learners: learners, Interactions: interactions}
}

// boostedCompletion applies the preferred-difficulty boost to a raw
// completion sample. The result is uncapped; callers cap the stored
// value at 1.0.
func boostedCompletion(raw float64, preferredMatch bool) float64 {
	if preferredMatch {
		return raw * PreferredDifficultyBoost
	}
	return raw
}

// pick returns one uniformly random element.
func pick(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

// sample returns k distinct elements in random order, like drawing
// without replacement.
func sample(rng *rand.Rand, values []string, k int) []string {
	if k > len(values) {
		k = len(values)
	}
	out := make([]string, 0, k)
	for _, idx := range rng.Perm(len(values))[:k] {
		out = append(out, values[idx])
	}
	return out
}

// round1 rounds to one decimal place to match the display-rating format.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
