// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package dataset

// Difficulty tiers shared by courses (difficulty) and learners
// (experience_level, preferred_difficulty). The three-value domain is
// deliberately identical across all of them; the rating model reuses one
// encoder for both course difficulty and learner experience level.
const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Difficulties lists the difficulty tiers in ascending order.
var Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// Course is an immutable catalog entry. Owned by the generator, read by
// every downstream component.
type Course struct {
	CourseID        string   `json:"course_id"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Difficulty      string   `json:"difficulty"`
	DurationHours   int      `json:"duration_hours"`
	Rating          float64  `json:"rating"`
	SkillsTaught    []string `json:"skills_taught"`
	Prerequisites   []string `json:"prerequisites"`
	PopularityScore int      `json:"popularity_score"`
}

// Learner is an immutable learner profile.
type Learner struct {
	UserID               string   `json:"user_id"`
	Age                  int      `json:"age"`
	ExperienceLevel      string   `json:"experience_level"`
	CurrentSkills        []string `json:"current_skills"`
	LearningGoals        []string `json:"learning_goals"`
	TimeAvailablePerWeek int      `json:"time_available_per_week"`
	PreferredDifficulty  string   `json:"preferred_difficulty"`
}

// Interaction is one learner-course interaction event. The (user, course)
// pair is many-to-many and duplicates are allowed. Rating is nil when the
// learner abandoned the course early (completion below the rating
// threshold); completion-preference boosting is described in the
// generator.
type Interaction struct {
	UserID         string  `json:"user_id"`
	CourseID       string  `json:"course_id"`
	EnrolledDate   string  `json:"enrolled_date"`
	CompletionRate float64 `json:"completion_rate"`
	Rating         *int    `json:"rating"`
	TimeSpentHours float64 `json:"time_spent_hours"`
}

// Rated reports whether the interaction carries an observed rating.
func (i Interaction) Rated() bool {
	return i.Rating != nil
}

// Dataset bundles the three generated collections.
type Dataset struct {
	Courses      []Course
	Learners     []Learner
	Interactions []Interaction
}
