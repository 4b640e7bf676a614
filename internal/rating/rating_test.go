// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package rating

import (
	"errors"
	"testing"
	"time"

	"github.com/learnforge-io/learnforge/internal/dataset"
	"github.com/learnforge-io/learnforge/internal/learner"
)

func trainDataset(t *testing.T) *dataset.Dataset {
	t.Helper()
	return dataset.Generate(dataset.GenSpec{
		Seed:         42,
		Courses:      25,
		Learners:     40,
		Interactions: 600,
		Anchor:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
}

func trainConfig() TrainConfig {
	return TrainConfig{Seed: 42, Trees: 15, MaxDepth: 8, TestFraction: 0.2, MaxVocabulary: 100}
}

func TestTrainProducesBundle(t *testing.T) {
	res, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatalf("Train() error: %v", err)
	}

	b := res.Bundle
	if b.Model == nil {
		t.Fatal("bundle has no model")
	}
	if !b.Encoders.User.Fitted() || !b.Encoders.Course.Fitted() ||
		!b.Encoders.Difficulty.Fitted() || !b.Encoders.Category.Fitted() {
		t.Error("not all encoders fitted")
	}
	if b.Similarity == nil || len(b.Similarity.Similarity) != len(b.Courses) {
		t.Error("similarity index missing or not course-aligned")
	}
	if len(b.FeatureNames) != 9 {
		t.Errorf("len(FeatureNames) = %d, want 9", len(b.FeatureNames))
	}
	if res.TrainSamples == 0 || res.TestSamples == 0 {
		t.Errorf("empty partition: train=%d test=%d", res.TrainSamples, res.TestSamples)
	}
	if res.TrainR2 <= 0 {
		t.Errorf("train R² = %f, want > 0 on seen data", res.TrainR2)
	}
}

func TestTrainDeterministicScores(t *testing.T) {
	a, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatal(err)
	}

	if a.TrainR2 != b.TrainR2 || a.TestR2 != b.TestR2 {
		t.Errorf("scores differ across identical runs: (%f,%f) vs (%f,%f)",
			a.TrainR2, a.TestR2, b.TrainR2, b.TestR2)
	}
}

func TestTrainInsufficientRatings(t *testing.T) {
	r := 4
	ds := &dataset.Dataset{
		Courses: []dataset.Course{{
			CourseID: "course_1", Category: "DevOps", Difficulty: "Beginner",
			DurationHours: 10, SkillsTaught: []string{"Docker"}, PopularityScore: 1,
		}},
		Learners: []dataset.Learner{{UserID: "user_1", Age: 30, ExperienceLevel: "Beginner", TimeAvailablePerWeek: 5}},
		Interactions: []dataset.Interaction{
			{UserID: "user_1", CourseID: "course_1", CompletionRate: 0.9, Rating: &r},
			{UserID: "user_1", CourseID: "course_1", CompletionRate: 0.8, Rating: &r},
		},
	}

	if _, err := Train(ds, trainConfig()); !errors.Is(err, learner.ErrInsufficientData) {
		t.Errorf("Train(one distinct rating) = %v, want ErrInsufficientData", err)
	}
}

func TestRecommendOrderingAndLength(t *testing.T) {
	res, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatal(err)
	}

	recs, err := res.Bundle.Recommend("user_1", 5)
	if err != nil {
		t.Fatalf("Recommend() error: %v", err)
	}
	if len(recs) != 5 {
		t.Fatalf("len(recs) = %d, want 5", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].PredictedRating > recs[i-1].PredictedRating {
			t.Errorf("ordering violated at %d: %f > %f", i, recs[i].PredictedRating, recs[i-1].PredictedRating)
		}
	}
}

func TestRecommendUnknownUserIsEmpty(t *testing.T) {
	res, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatal(err)
	}

	recs, err := res.Bundle.Recommend("user_does_not_exist", 5)
	if err != nil {
		t.Fatalf("Recommend(unknown) error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("len(recs) = %d for unknown user, want 0", len(recs))
	}
}

func TestRecommendTopNLargerThanCatalog(t *testing.T) {
	res, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatal(err)
	}

	recs, err := res.Bundle.Recommend("user_1", 10_000)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) > len(res.Bundle.Courses) {
		t.Errorf("len(recs) = %d exceeds catalog size %d", len(recs), len(res.Bundle.Courses))
	}
}

func TestRecommendSkipsMalformedCourse(t *testing.T) {
	res, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatal(err)
	}

	b := res.Bundle
	catalog := len(b.Courses)
	b.Courses = append(b.Courses, dataset.Course{CourseID: "broken", DurationHours: 0})

	recs, err := b.Recommend("user_1", catalog+10)
	if err != nil {
		t.Fatalf("Recommend() error with malformed course present: %v", err)
	}
	if len(recs) != catalog {
		t.Errorf("len(recs) = %d, want %d (malformed course skipped)", len(recs), catalog)
	}
	for _, r := range recs {
		if r.CourseID == "broken" {
			t.Error("malformed course was scored")
		}
	}
}

func TestPredictRatingColdStartUser(t *testing.T) {
	res, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatal(err)
	}

	got, err := res.Bundle.PredictRating("cold-start-user", res.Bundle.Courses[0])
	if err != nil {
		t.Fatalf("PredictRating(unknown user) error: %v", err)
	}
	if got < 1 || got > 5 {
		t.Errorf("PredictRating() = %f outside the 1-5 rating range", got)
	}
}

func TestBundleSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	res, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatal(err)
	}

	if err := res.Bundle.Save(dir); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	restored, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	course := res.Bundle.Courses[3]
	want, err := res.Bundle.PredictRating("user_1", course)
	if err != nil {
		t.Fatal(err)
	}
	got, err := restored.PredictRating("user_1", course)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("restored PredictRating() = %f, want %f", got, want)
	}

	if restored.Similarity == nil || len(restored.Similarity.Vocabulary) == 0 {
		t.Error("similarity index lost in round trip")
	}
}

func TestLoadMissingBundle(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load() from empty dir succeeded")
	}
}

func TestEncoderSharingForExperience(t *testing.T) {
	res, err := Train(trainDataset(t), trainConfig())
	if err != nil {
		t.Fatal(err)
	}

	// The difficulty encoder sees both course difficulties and learner
	// experience levels during fit; both domains are the same tiers.
	enc := res.Bundle.Encoders.Difficulty
	for _, tier := range dataset.Difficulties {
		if !enc.Known(tier) {
			t.Errorf("difficulty encoder does not know tier %q", tier)
		}
	}
	if enc.Len() != 3 {
		t.Errorf("difficulty encoder has %d classes, want 3", enc.Len())
	}
}
