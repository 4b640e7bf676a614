// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package skill

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/learnforge-io/learnforge/internal/learner"
	"github.com/learnforge-io/learnforge/internal/logging"
)

// TrainConfig parameterizes skill-classifier training.
type TrainConfig struct {
	Seed         int64
	Trees        int
	MaxDepth     int
	TestFraction float64
}

// Result reports a completed training run.
type Result struct {
	Bundle        *Bundle
	TrainAccuracy float64
	TestAccuracy  float64
	Report        learner.Report
	Importances   []learner.Importance
	TrainSamples  int
	TestSamples   int
}

// Train fits the skill classifier on labeled records with a stratified
// 80/20 split. Stratification requires every label to have at least two
// members; otherwise training fails with ErrInsufficientData.
func Train(records []Record, cfg TrainConfig) (*Result, error) {
	log := logging.With().Str("component", "skill").Logger()

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no skill records (no learner has any interaction)", learner.ErrInsufficientData)
	}

	x := make([][]float64, len(records))
	labels := make([]string, len(records))
	for i, r := range records {
		x[i] = r.vector()
		labels[i] = r.Label
	}

	trainIdx, testIdx, err := learner.StratifiedSplit(labels, cfg.TestFraction, cfg.Seed)
	if err != nil {
		return nil, err
	}

	model := learner.NewForestClassifier(learner.ForestConfig{
		Trees:    cfg.Trees,
		MaxDepth: cfg.MaxDepth,
		Seed:     cfg.Seed,
	})
	if err := model.Fit(learner.Gather(x, trainIdx), learner.Gather(labels, trainIdx)); err != nil {
		return nil, fmt.Errorf("fitting classifier: %w", err)
	}

	trainAcc, err := evaluate(model, learner.Gather(x, trainIdx), learner.Gather(labels, trainIdx))
	if err != nil {
		return nil, fmt.Errorf("evaluating train partition: %w", err)
	}
	testPredicted, testAcc, err := evaluateWithPredictions(model, learner.Gather(x, testIdx), learner.Gather(labels, testIdx))
	if err != nil {
		return nil, fmt.Errorf("evaluating test partition: %w", err)
	}

	report, err := learner.ClassificationReport(testPredicted, learner.Gather(labels, testIdx))
	if err != nil {
		return nil, fmt.Errorf("building classification report: %w", err)
	}

	importances := learner.RankImportances(FeatureNames, model.FeatureImportances())

	bundle := &Bundle{
		RunID:        uuid.NewString(),
		TrainedAt:    time.Now().UTC(),
		FeatureNames: FeatureNames,
		Model:        model,
		Records:      records,
	}

	log.Info().
		Str("run_id", bundle.RunID).
		Int("train_samples", len(trainIdx)).
		Int("test_samples", len(testIdx)).
		Float64("train_accuracy", trainAcc).
		Float64("test_accuracy", testAcc).
		Msg("Skill model trained")
	for _, imp := range importances {
		log.Debug().Str("feature", imp.Feature).Float64("importance", imp.Weight).Msg("Feature importance")
	}

	return &Result{
		Bundle:        bundle,
		TrainAccuracy: trainAcc,
		TestAccuracy:  testAcc,
		Report:        report,
		Importances:   importances,
		TrainSamples:  len(trainIdx),
		TestSamples:   len(testIdx),
	}, nil
}

func evaluate(model learner.Classifier, x [][]float64, labels []string) (float64, error) {
	_, acc, err := evaluateWithPredictions(model, x, labels)
	return acc, err
}

func evaluateWithPredictions(model learner.Classifier, x [][]float64, labels []string) ([]string, float64, error) {
	predicted := make([]string, len(x))
	for i, row := range x {
		p, err := model.Predict(row)
		if err != nil {
			return nil, 0, err
		}
		predicted[i] = p
	}
	acc, err := learner.Accuracy(predicted, labels)
	return predicted, acc, err
}
