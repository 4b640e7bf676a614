// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package learner

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitSizesAndCoverage(t *testing.T) {
	train, test, err := Split(100, 0.2, 42)
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	if len(test) != 20 {
		t.Errorf("len(test) = %d, want 20", len(test))
	}
	if len(train) != 80 {
		t.Errorf("len(train) = %d, want 80", len(train))
	}

	seen := make(map[int]bool)
	for _, i := range append(append([]int{}, train...), test...) {
		if seen[i] {
			t.Fatalf("index %d appears in both partitions", i)
		}
		seen[i] = true
	}
	if len(seen) != 100 {
		t.Errorf("partitions cover %d indices, want 100", len(seen))
	}
}

func TestSplitDeterministic(t *testing.T) {
	trainA, testA, _ := Split(50, 0.2, 7)
	trainB, testB, _ := Split(50, 0.2, 7)
	if !reflect.DeepEqual(trainA, trainB) || !reflect.DeepEqual(testA, testB) {
		t.Error("same seed produced different partitions")
	}

	_, testC, _ := Split(50, 0.2, 8)
	if reflect.DeepEqual(testA, testC) {
		t.Error("different seeds produced identical partitions")
	}
}

func TestSplitTooFewSamples(t *testing.T) {
	if _, _, err := Split(1, 0.2, 1); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("Split(1) = %v, want ErrInsufficientData", err)
	}
}

func TestStratifiedSplitPreservesProportions(t *testing.T) {
	labels := make([]string, 0, 50)
	for i := 0; i < 40; i++ {
		labels = append(labels, "majority")
	}
	for i := 0; i < 10; i++ {
		labels = append(labels, "minority")
	}

	train, test, err := StratifiedSplit(labels, 0.2, 42)
	if err != nil {
		t.Fatalf("StratifiedSplit() error: %v", err)
	}

	count := func(idx []int, label string) int {
		n := 0
		for _, i := range idx {
			if labels[i] == label {
				n++
			}
		}
		return n
	}

	if got := count(test, "majority"); got != 8 {
		t.Errorf("majority in test = %d, want 8", got)
	}
	if got := count(test, "minority"); got != 2 {
		t.Errorf("minority in test = %d, want 2", got)
	}
	if got := count(train, "majority"); got != 32 {
		t.Errorf("majority in train = %d, want 32", got)
	}
	if got := count(train, "minority"); got != 8 {
		t.Errorf("minority in train = %d, want 8", got)
	}
}

func TestStratifiedSplitSingletonClass(t *testing.T) {
	labels := []string{"a", "a", "a", "b"}
	if _, _, err := StratifiedSplit(labels, 0.2, 1); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("StratifiedSplit(singleton class) = %v, want ErrInsufficientData", err)
	}
}

func TestGather(t *testing.T) {
	x := []string{"a", "b", "c", "d"}
	got := Gather(x, []int{3, 0, 2})
	want := []string{"d", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Gather() = %v, want %v", got, want)
	}
}
