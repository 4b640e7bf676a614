// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package dataset

import (
	"math"
	"reflect"
	"testing"
	"time"
)

var testAnchor = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func testSpec() GenSpec {
	return GenSpec{Seed: 42, Courses: 30, Learners: 50, Interactions: 400, Anchor: testAnchor}
}

func TestGenerateDeterminism(t *testing.T) {
	a := Generate(testSpec())
	b := Generate(testSpec())

	if !reflect.DeepEqual(a, b) {
		t.Fatal("two runs with the same seed and anchor produced different datasets")
	}

	c := Generate(GenSpec{Seed: 43, Courses: 30, Learners: 50, Interactions: 400, Anchor: testAnchor})
	if reflect.DeepEqual(a, c) {
		t.Fatal("different seeds produced identical datasets")
	}
}

func TestGenerateCourseFields(t *testing.T) {
	ds := Generate(testSpec())

	if len(ds.Courses) != 30 {
		t.Fatalf("len(Courses) = %d, want 30", len(ds.Courses))
	}

	seen := make(map[string]bool)
	for _, c := range ds.Courses {
		if seen[c.CourseID] {
			t.Errorf("duplicate course id %s", c.CourseID)
		}
		seen[c.CourseID] = true

		if c.DurationHours < 5 || c.DurationHours > 50 {
			t.Errorf("%s: duration %d outside [5,50]", c.CourseID, c.DurationHours)
		}
		if c.Rating < 3.5 || c.Rating > 5.0 {
			t.Errorf("%s: rating %f outside [3.5,5.0]", c.CourseID, c.Rating)
		}
		if len(c.SkillsTaught) < 2 || len(c.SkillsTaught) > 5 {
			t.Errorf("%s: %d skills taught, want 2-5", c.CourseID, len(c.SkillsTaught))
		}
		if len(c.Prerequisites) > 3 {
			t.Errorf("%s: %d prerequisites, want 0-3", c.CourseID, len(c.Prerequisites))
		}
		if c.PopularityScore < 1 || c.PopularityScore > 100 {
			t.Errorf("%s: popularity %d outside [1,100]", c.CourseID, c.PopularityScore)
		}
	}
}

func TestGenerateLearnerFields(t *testing.T) {
	ds := Generate(testSpec())

	for _, l := range ds.Learners {
		if l.Age < 18 || l.Age > 65 {
			t.Errorf("%s: age %d outside [18,65]", l.UserID, l.Age)
		}
		if len(l.CurrentSkills) < 1 || len(l.CurrentSkills) > 8 {
			t.Errorf("%s: %d current skills, want 1-8", l.UserID, len(l.CurrentSkills))
		}
		if len(l.LearningGoals) < 1 || len(l.LearningGoals) > 3 {
			t.Errorf("%s: %d learning goals, want 1-3", l.UserID, len(l.LearningGoals))
		}
		if l.TimeAvailablePerWeek < 2 || l.TimeAvailablePerWeek > 20 {
			t.Errorf("%s: time %d outside [2,20]", l.UserID, l.TimeAvailablePerWeek)
		}
	}
}

func TestGenerateInteractionInvariants(t *testing.T) {
	ds := Generate(testSpec())

	courses := make(map[string]Course)
	for _, c := range ds.Courses {
		courses[c.CourseID] = c
	}
	learners := make(map[string]Learner)
	for _, l := range ds.Learners {
		learners[l.UserID] = l
	}

	for i, in := range ds.Interactions {
		if in.CompletionRate < 0 || in.CompletionRate > 1 {
			t.Errorf("interaction %d: completion %f outside [0,1]", i, in.CompletionRate)
		}
		if _, ok := courses[in.CourseID]; !ok {
			t.Errorf("interaction %d: unknown course %s", i, in.CourseID)
		}
		if _, ok := learners[in.UserID]; !ok {
			t.Errorf("interaction %d: unknown user %s", i, in.UserID)
		}
		if in.Rating != nil && (*in.Rating < 1 || *in.Rating > 5) {
			t.Errorf("interaction %d: rating %d outside [1,5]", i, *in.Rating)
		}
		// A stored completion above the threshold always has a rating;
		// the converse can differ only through capping.
		if in.CompletionRate > RatingThreshold && in.Rating == nil {
			t.Errorf("interaction %d: completion %f > %f but no rating", i, in.CompletionRate, RatingThreshold)
		}
	}
}

func TestBoostedCompletion(t *testing.T) {
	tests := []struct {
		name  string
		raw   float64
		match bool
		want  float64
	}{
		{"no match passes through", 0.5, false, 0.5},
		{"match multiplies by 1.2", 0.5, true, 0.6},
		{"match may exceed 1 before capping", 0.9, true, 1.08},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := boostedCompletion(tt.raw, tt.match)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("boostedCompletion(%f, %v) = %f, want %f", tt.raw, tt.match, got, tt.want)
			}
		})
	}
}

func TestGeneratedBoostIsCapped(t *testing.T) {
	ds := Generate(testSpec())
	for i, in := range ds.Interactions {
		if in.CompletionRate > 1.0 {
			t.Errorf("interaction %d: stored completion %f exceeds 1.0", i, in.CompletionRate)
		}
	}
}

func TestSampleDistinct(t *testing.T) {
	ds := Generate(testSpec())
	for _, c := range ds.Courses {
		seen := make(map[string]bool)
		for _, s := range c.SkillsTaught {
			if seen[s] {
				t.Errorf("%s: duplicate skill %s in skills_taught", c.CourseID, s)
			}
			seen[s] = true
		}
	}
}
