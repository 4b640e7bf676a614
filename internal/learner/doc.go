// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package learner implements the supervised learners behind the
// pipeline's minimal fit/predict contract, plus the train/test split and
// evaluation helpers both training phases share.
//
// The learners are bagged CART ensembles (random forests):
//
//   - ForestRegressor: variance-reduction splits, mean-value leaves
//   - ForestClassifier: Gini splits, class-distribution leaves,
//     calibrated per-class probabilities via leaf averaging
//
// Both are deterministic given a seed, expose ranked feature importances
// for observability, and hide everything else behind the Regressor and
// Classifier interfaces so the surrounding pipeline never depends on the
// ensemble internals.
package learner
