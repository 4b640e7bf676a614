// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package skill derives ground-truth skill labels from learner
// interaction history and trains the skill-level classifier that
// approximates the labeling rule from activity features alone.
package skill

import (
	"github.com/learnforge-io/learnforge/internal/dataset"
)

// CompletionThreshold is the completion rate above which an interaction
// counts as a completed course.
const CompletionThreshold = 0.8

// DefaultRating is assumed for learners who completed courses without
// ever rating one.
const DefaultRating = 3.0

// FeatureNames is the fixed 9-dimension feature order of the skill
// classifier. Assess accepts metrics keyed by these names.
var FeatureNames = []string{
	"age", "time_available_per_week", "avg_completion_rate",
	"courses_completed", "total_time_spent", "avg_rating_given",
	"beginner_courses", "intermediate_courses", "advanced_courses",
}

// Record aggregates one learner's interaction history. Only learners
// with at least one interaction have a Record; the rest are excluded
// from classifier training entirely.
type Record struct {
	UserID                string  `json:"user_id"`
	Age                   int     `json:"age"`
	TimeAvailablePerWeek  int     `json:"time_available_per_week"`
	AvgCompletionRate     float64 `json:"avg_completion_rate"`
	CoursesCompleted      int     `json:"courses_completed"`
	TotalTimeSpent        float64 `json:"total_time_spent"`
	AvgRatingGiven        float64 `json:"avg_rating_given"`
	BeginnerCompleted     int     `json:"beginner_courses"`
	IntermediateCompleted int     `json:"intermediate_courses"`
	AdvancedCompleted     int     `json:"advanced_courses"`
	Label                 string  `json:"skill_label"`
}

// vector flattens the record into the fixed feature order.
func (r Record) vector() []float64 {
	return []float64{
		float64(r.Age),
		float64(r.TimeAvailablePerWeek),
		r.AvgCompletionRate,
		float64(r.CoursesCompleted),
		r.TotalTimeSpent,
		r.AvgRatingGiven,
		float64(r.BeginnerCompleted),
		float64(r.IntermediateCompleted),
		float64(r.AdvancedCompleted),
	}
}

// BuildRecords aggregates interactions per learner and derives each
// record's ground-truth label. Completed courses whose course row is
// missing from the catalog contribute to the completion count but not
// to the per-difficulty tallies.
func BuildRecords(ds *dataset.Dataset) []Record {
	courseByID := make(map[string]dataset.Course, len(ds.Courses))
	for _, c := range ds.Courses {
		courseByID[c.CourseID] = c
	}

	byUser := make(map[string][]dataset.Interaction)
	for _, in := range ds.Interactions {
		byUser[in.UserID] = append(byUser[in.UserID], in)
	}

	records := make([]Record, 0, len(byUser))
	for _, l := range ds.Learners {
		interactions := byUser[l.UserID]
		if len(interactions) == 0 {
			continue
		}

		rec := Record{
			UserID:               l.UserID,
			Age:                  l.Age,
			TimeAvailablePerWeek: l.TimeAvailablePerWeek,
		}

		var completionSum float64
		var ratingSum float64
		var ratingCount int
		for _, in := range interactions {
			completionSum += in.CompletionRate
			rec.TotalTimeSpent += in.TimeSpentHours
			if in.Rating != nil {
				ratingSum += float64(*in.Rating)
				ratingCount++
			}
			if in.CompletionRate > CompletionThreshold {
				rec.CoursesCompleted++
				if c, ok := courseByID[in.CourseID]; ok {
					switch c.Difficulty {
					case dataset.DifficultyBeginner:
						rec.BeginnerCompleted++
					case dataset.DifficultyIntermediate:
						rec.IntermediateCompleted++
					case dataset.DifficultyAdvanced:
						rec.AdvancedCompleted++
					}
				}
			}
		}

		rec.AvgCompletionRate = completionSum / float64(len(interactions))
		if ratingCount > 0 {
			rec.AvgRatingGiven = ratingSum / float64(ratingCount)
		} else {
			rec.AvgRatingGiven = DefaultRating
		}
		rec.Label = LabelFor(rec)

		records = append(records, rec)
	}
	return records
}
