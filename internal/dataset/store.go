// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/learnforge-io/learnforge/internal/artifact"
)

// Dataset file names inside the training-data directory. Each collection
// is persisted twice: JSON as the array-of-records form, CSV as the
// flattened tabular form the training phases read.
const (
	CoursesJSON      = "courses.json"
	CoursesCSV       = "courses.csv"
	LearnersJSON     = "users.json"
	LearnersCSV      = "users.csv"
	InteractionsJSON = "interactions.json"
	InteractionsCSV  = "interactions.csv"
)

// Save writes all six dataset files into dir.
func (d *Dataset) Save(dir string) error {
	if err := artifact.WriteJSONFile(filepath.Join(dir, CoursesJSON), d.Courses); err != nil {
		return err
	}
	if err := artifact.WriteJSONFile(filepath.Join(dir, LearnersJSON), d.Learners); err != nil {
		return err
	}
	if err := artifact.WriteJSONFile(filepath.Join(dir, InteractionsJSON), d.Interactions); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, CoursesCSV), courseHeader, d.Courses, courseRow); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, LearnersCSV), learnerHeader, d.Learners, learnerRow); err != nil {
		return err
	}
	return writeCSV(filepath.Join(dir, InteractionsCSV), interactionHeader, d.Interactions, interactionRow)
}

// LoadCSV reads the three CSV files back from dir. A missing file is
// reported as artifact.ErrMissingArtifact.
func LoadCSV(dir string) (*Dataset, error) {
	courses, err := readCSV(filepath.Join(dir, CoursesCSV), parseCourse)
	if err != nil {
		return nil, err
	}
	learners, err := readCSV(filepath.Join(dir, LearnersCSV), parseLearner)
	if err != nil {
		return nil, err
	}
	interactions, err := readCSV(filepath.Join(dir, InteractionsCSV), parseInteraction)
	if err != nil {
		return nil, err
	}
	return &Dataset{Courses: courses, Learners: learners, Interactions: interactions}, nil
}

var (
	courseHeader = []string{
		"course_id", "title", "category", "difficulty", "duration_hours",
		"rating", "skills_taught", "prerequisites", "popularity_score",
	}
	learnerHeader = []string{
		"user_id", "age", "experience_level", "current_skills",
		"learning_goals", "time_available_per_week", "preferred_difficulty",
	}
	interactionHeader = []string{
		"user_id", "course_id", "enrolled_date", "completion_rate",
		"rating", "time_spent_hours",
	}
)

func courseRow(c Course) []string {
	return []string{
		c.CourseID, c.Title, c.Category, c.Difficulty,
		strconv.Itoa(c.DurationHours),
		formatFloat(c.Rating),
		encodeList(c.SkillsTaught),
		encodeList(c.Prerequisites),
		strconv.Itoa(c.PopularityScore),
	}
}

func learnerRow(l Learner) []string {
	return []string{
		l.UserID,
		strconv.Itoa(l.Age),
		l.ExperienceLevel,
		encodeList(l.CurrentSkills),
		encodeList(l.LearningGoals),
		strconv.Itoa(l.TimeAvailablePerWeek),
		l.PreferredDifficulty,
	}
}

func interactionRow(i Interaction) []string {
	rating := ""
	if i.Rating != nil {
		rating = strconv.Itoa(*i.Rating)
	}
	return []string{
		i.UserID, i.CourseID, i.EnrolledDate,
		formatFloat(i.CompletionRate),
		rating,
		formatFloat(i.TimeSpentHours),
	}
}

func parseCourse(rec map[string]string) (Course, error) {
	duration, err := strconv.Atoi(rec["duration_hours"])
	if err != nil {
		return Course{}, fmt.Errorf("duration_hours: %w", err)
	}
	rating, err := strconv.ParseFloat(rec["rating"], 64)
	if err != nil {
		return Course{}, fmt.Errorf("rating: %w", err)
	}
	popularity, err := strconv.Atoi(rec["popularity_score"])
	if err != nil {
		return Course{}, fmt.Errorf("popularity_score: %w", err)
	}
	skills, err := decodeList(rec["skills_taught"])
	if err != nil {
		return Course{}, fmt.Errorf("skills_taught: %w", err)
	}
	prereqs, err := decodeList(rec["prerequisites"])
	if err != nil {
		return Course{}, fmt.Errorf("prerequisites: %w", err)
	}
	return Course{
		CourseID:        rec["course_id"],
		Title:           rec["title"],
		Category:        rec["category"],
		Difficulty:      rec["difficulty"],
		DurationHours:   duration,
		Rating:          rating,
		SkillsTaught:    skills,
		Prerequisites:   prereqs,
		PopularityScore: popularity,
	}, nil
}

func parseLearner(rec map[string]string) (Learner, error) {
	age, err := strconv.Atoi(rec["age"])
	if err != nil {
		return Learner{}, fmt.Errorf("age: %w", err)
	}
	hours, err := strconv.Atoi(rec["time_available_per_week"])
	if err != nil {
		return Learner{}, fmt.Errorf("time_available_per_week: %w", err)
	}
	skills, err := decodeList(rec["current_skills"])
	if err != nil {
		return Learner{}, fmt.Errorf("current_skills: %w", err)
	}
	goals, err := decodeList(rec["learning_goals"])
	if err != nil {
		return Learner{}, fmt.Errorf("learning_goals: %w", err)
	}
	return Learner{
		UserID:               rec["user_id"],
		Age:                  age,
		ExperienceLevel:      rec["experience_level"],
		CurrentSkills:        skills,
		LearningGoals:        goals,
		TimeAvailablePerWeek: hours,
		PreferredDifficulty:  rec["preferred_difficulty"],
	}, nil
}

func parseInteraction(rec map[string]string) (Interaction, error) {
	completion, err := strconv.ParseFloat(rec["completion_rate"], 64)
	if err != nil {
		return Interaction{}, fmt.Errorf("completion_rate: %w", err)
	}
	timeSpent, err := strconv.ParseFloat(rec["time_spent_hours"], 64)
	if err != nil {
		return Interaction{}, fmt.Errorf("time_spent_hours: %w", err)
	}
	var rating *int
	if raw := rec["rating"]; raw != "" {
		r, err := strconv.Atoi(raw)
		if err != nil {
			return Interaction{}, fmt.Errorf("rating: %w", err)
		}
		rating = &r
	}
	return Interaction{
		UserID:         rec["user_id"],
		CourseID:       rec["course_id"],
		EnrolledDate:   rec["enrolled_date"],
		CompletionRate: completion,
		Rating:         rating,
		TimeSpentHours: timeSpent,
	}, nil
}

// encodeList serializes a multi-valued field as a JSON array string so
// it survives the flat CSV form and parses back into a list.
func encodeList(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return string(data)
}

// decodeList parses the textual list representation written by encodeList.
func decodeList(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("parsing list field %q: %w", raw, err)
	}
	return out, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// writeCSV writes a header plus one row per record.
func writeCSV[T any](path string, header []string, records []T, row func(T) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header to %s: %w", path, err)
	}
	for _, rec := range records {
		if err := w.Write(row(rec)); err != nil {
			return fmt.Errorf("writing row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return f.Close()
}

// readCSV reads a headered CSV file and parses each row through parse,
// passing fields keyed by column name.
func readCSV[T any](path string, parse func(map[string]string) (T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", artifact.ErrMissingArtifact, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reading %s: empty file", path)
	}

	header := rows[0]
	out := make([]T, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		parsed, err := parse(rec)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		out = append(out, parsed)
	}
	return out, nil
}
