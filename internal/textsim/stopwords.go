// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package textsim

// stopWords is a compact English stop-word list. Course documents are
// short skill/category strings, so only the common function words that
// can appear in titles and category names matter here.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"but": {}, "by": {}, "for": {}, "from": {}, "has": {}, "have": {},
	"he": {}, "her": {}, "his": {}, "how": {}, "if": {}, "in": {},
	"into": {}, "is": {}, "it": {}, "its": {}, "no": {}, "not": {},
	"of": {}, "on": {}, "or": {}, "our": {}, "she": {}, "so": {},
	"such": {}, "that": {}, "the": {}, "their": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "to": {},
	"was": {}, "we": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "why": {}, "will": {},
	"with": {}, "you": {}, "your": {},
}
