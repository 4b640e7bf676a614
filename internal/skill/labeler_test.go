// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package skill

import "testing"

func TestLabelFor(t *testing.T) {
	tests := []struct {
		name                             string
		beginner, intermediate, advanced int
		want                             string
	}{
		{"no completions", 0, 0, 0, "Beginner"},
		{"two advanced", 0, 0, 2, "Advanced"},
		{"many advanced", 0, 0, 5, "Advanced"},
		{"three intermediate one advanced", 0, 3, 1, "Advanced"},
		{"one advanced alone is not advanced", 0, 0, 1, "Beginner"},
		{"two intermediate one advanced stays intermediate", 0, 2, 1, "Intermediate"},
		{"two intermediate", 0, 2, 0, "Intermediate"},
		{"three beginner one intermediate", 3, 1, 0, "Intermediate"},
		{"three beginner no intermediate", 3, 0, 0, "Beginner"},
		{"two beginner one intermediate", 2, 1, 0, "Beginner"},
		{"ten beginner alone stays beginner", 10, 0, 0, "Beginner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Record{
				BeginnerCompleted:     tt.beginner,
				IntermediateCompleted: tt.intermediate,
				AdvancedCompleted:     tt.advanced,
			}
			if got := LabelFor(r); got != tt.want {
				t.Errorf("LabelFor(%d,%d,%d) = %q, want %q",
					tt.beginner, tt.intermediate, tt.advanced, got, tt.want)
			}
		})
	}
}

// tier orders labels for the monotonicity check.
func tier(label string) int {
	switch label {
	case "Intermediate":
		return 1
	case "Advanced":
		return 2
	default:
		return 0
	}
}

func TestLabelMonotonicInAdvancedCompletions(t *testing.T) {
	// Raising advanced completions from 1 to 2, all else fixed, never
	// lowers the derived tier.
	for beginner := 0; beginner <= 4; beginner++ {
		for intermediate := 0; intermediate <= 4; intermediate++ {
			before := LabelFor(Record{
				BeginnerCompleted:     beginner,
				IntermediateCompleted: intermediate,
				AdvancedCompleted:     1,
			})
			after := LabelFor(Record{
				BeginnerCompleted:     beginner,
				IntermediateCompleted: intermediate,
				AdvancedCompleted:     2,
			})
			if tier(after) < tier(before) {
				t.Errorf("label dropped from %q to %q at beginner=%d intermediate=%d",
					before, after, beginner, intermediate)
			}
		}
	}
}
