// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package skill

import "github.com/learnforge-io/learnforge/internal/dataset"

// Labeling thresholds. The rule is intentionally asymmetric and the
// constants are preserved exactly: they are the supervision signal the
// classifier is trained to approximate, so changing them retrains a
// different model. Tunable, not semantically load-bearing.
const (
	advancedDirect              = 2 // advanced completions alone
	advancedViaIntermediate     = 3
	advancedMinAdvanced         = 1
	intermediateDirect          = 2
	intermediateViaBeginner     = 3
	intermediateMinIntermediate = 1
)

// LabelFor derives the ground-truth skill label from a learner's
// per-difficulty completion counts. Pure function, no learned state.
func LabelFor(r Record) string {
	switch {
	case r.AdvancedCompleted >= advancedDirect ||
		(r.IntermediateCompleted >= advancedViaIntermediate && r.AdvancedCompleted >= advancedMinAdvanced):
		return dataset.DifficultyAdvanced
	case r.IntermediateCompleted >= intermediateDirect ||
		(r.BeginnerCompleted >= intermediateViaBeginner && r.IntermediateCompleted >= intermediateMinIntermediate):
		return dataset.DifficultyIntermediate
	default:
		return dataset.DifficultyBeginner
	}
}
