// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package learner

import (
	"fmt"
	"math/rand"
	"sort"
)

// Split partitions [0, n) into shuffled train and test index sets with
// the given test fraction. The partition is fixed for a given seed.
// At least one sample lands on each side, which requires n >= 2.
func Split(n int, testFraction float64, seed int64) (train, test []int, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: %d samples, need at least 2 to split", ErrInsufficientData, n)
	}

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic partitioning, not crypto
	perm := rng.Perm(n)

	nTest := int(float64(n) * testFraction)
	if nTest < 1 {
		nTest = 1
	}
	if nTest >= n {
		nTest = n - 1
	}
	return perm[nTest:], perm[:nTest], nil
}

// StratifiedSplit partitions label indices preserving class proportions
// in both partitions. Every class needs at least 2 members so that each
// side of the split sees it; otherwise ErrInsufficientData is returned
// with the offending class named.
func StratifiedSplit(labels []string, testFraction float64, seed int64) (train, test []int, err error) {
	if len(labels) < 2 {
		return nil, nil, fmt.Errorf("%w: %d samples, need at least 2 to split", ErrInsufficientData, len(labels))
	}

	byClass := make(map[string][]int)
	for i, l := range labels {
		byClass[l] = append(byClass[l], i)
	}

	classes := make([]string, 0, len(byClass))
	for c := range byClass {
		classes = append(classes, c)
	}
	sort.Strings(classes) // stable iteration for determinism

	rng := rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic partitioning, not crypto
	for _, c := range classes {
		members := byClass[c]
		if len(members) < 2 {
			return nil, nil, fmt.Errorf("%w: class %q has %d member(s), need at least 2 to stratify", ErrInsufficientData, c, len(members))
		}

		rng.Shuffle(len(members), func(i, j int) {
			members[i], members[j] = members[j], members[i]
		})

		nTest := int(float64(len(members)) * testFraction)
		if nTest < 1 {
			nTest = 1
		}
		if nTest >= len(members) {
			nTest = len(members) - 1
		}
		test = append(test, members[:nTest]...)
		train = append(train, members[nTest:]...)
	}
	return train, test, nil
}

// Gather selects rows of x by index.
func Gather[T any](x []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = x[j]
	}
	return out
}
