// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package learner

import (
	"math/rand"
	"sort"
)

// Node is one CART tree node. Internal nodes route on
// features[Feature] <= Threshold; leaves have Feature == -1 and carry
// either a mean value (regression) or a class distribution.
type Node struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      *Node     `json:"left,omitempty"`
	Right     *Node     `json:"right,omitempty"`
	Value     float64   `json:"value,omitempty"`
	Dist      []float64 `json:"dist,omitempty"`
}

// leaf reports whether the node is terminal.
func (n *Node) leaf() bool {
	return n.Feature < 0
}

// walk descends to the leaf for the given feature vector.
func (n *Node) walk(features []float64) *Node {
	cur := n
	for !cur.leaf() {
		if cur.Feature < len(features) && features[cur.Feature] <= cur.Threshold {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return cur
}

// treeParams bounds tree growth.
type treeParams struct {
	maxDepth   int
	minSplit   int
	maxFeature int // features considered per split
}

// buildRegressionTree grows a variance-reduction CART over the samples
// in idx. Impurity decreases of chosen splits are accumulated into
// importances (indexed by feature).
func buildRegressionTree(x [][]float64, y []float64, idx []int, depth int, p treeParams, rng *rand.Rand, importances []float64) *Node {
	mean, sse := meanSSE(y, idx)
	if depth >= p.maxDepth || len(idx) < p.minSplit || sse == 0 {
		return &Node{Feature: -1, Value: mean}
	}

	best, ok := bestRegressionSplit(x, y, idx, p, rng)
	if !ok {
		return &Node{Feature: -1, Value: mean}
	}

	importances[best.feature] += sse - best.impurity
	left, right := partition(x, idx, best.feature, best.threshold)
	return &Node{
		Feature:   best.feature,
		Threshold: best.threshold,
		Left:      buildRegressionTree(x, y, left, depth+1, p, rng, importances),
		Right:     buildRegressionTree(x, y, right, depth+1, p, rng, importances),
	}
}

// buildClassificationTree grows a Gini CART. y holds class indices in
// [0, classes).
func buildClassificationTree(x [][]float64, y []int, idx []int, classes, depth int, p treeParams, rng *rand.Rand, importances []float64) *Node {
	counts := classCounts(y, idx, classes)
	impurity := gini(counts, len(idx))
	if depth >= p.maxDepth || len(idx) < p.minSplit || impurity == 0 {
		return leafDist(counts, len(idx))
	}

	best, ok := bestClassificationSplit(x, y, idx, classes, p, rng)
	if !ok {
		return leafDist(counts, len(idx))
	}

	// Weighted impurity decrease, in sample units to match the
	// regression accumulation.
	importances[best.feature] += float64(len(idx))*impurity - best.impurity
	left, right := partition(x, idx, best.feature, best.threshold)
	return &Node{
		Feature:   best.feature,
		Threshold: best.threshold,
		Left:      buildClassificationTree(x, y, left, classes, depth+1, p, rng, importances),
		Right:     buildClassificationTree(x, y, right, classes, depth+1, p, rng, importances),
	}
}

type split struct {
	feature   int
	threshold float64
	impurity  float64 // post-split impurity, lower is better
}

// candidateFeatures returns maxFeature distinct feature indices.
func candidateFeatures(total int, p treeParams, rng *rand.Rand) []int {
	if p.maxFeature >= total {
		feats := make([]int, total)
		for i := range feats {
			feats[i] = i
		}
		return feats
	}
	return rng.Perm(total)[:p.maxFeature]
}

// bestRegressionSplit scans candidate features for the split minimizing
// the summed squared error of the two children.
func bestRegressionSplit(x [][]float64, y []float64, idx []int, p treeParams, rng *rand.Rand) (split, bool) {
	_, parentSSE := meanSSE(y, idx)
	best := split{impurity: parentSSE}
	found := false

	order := make([]int, len(idx))
	for _, f := range candidateFeatures(len(x[idx[0]]), p, rng) {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool { return x[order[a]][f] < x[order[b]][f] })

		// Prefix sums let each split position be scored in O(1).
		var sumL, sqL float64
		sumR, sqR := sums(y, order)
		for i := 0; i < len(order)-1; i++ {
			v := y[order[i]]
			sumL += v
			sqL += v * v
			sumR -= v
			sqR -= v * v

			if x[order[i]][f] == x[order[i+1]][f] {
				continue
			}

			nl, nr := float64(i+1), float64(len(order)-i-1)
			imp := (sqL - sumL*sumL/nl) + (sqR - sumR*sumR/nr)
			if imp < best.impurity {
				best = split{feature: f, threshold: midpoint(x[order[i]][f], x[order[i+1]][f]), impurity: imp}
				found = true
			}
		}
	}
	return best, found
}

// bestClassificationSplit scans candidate features for the split
// minimizing the weighted Gini impurity of the two children (in sample
// units: n_left*gini_left + n_right*gini_right).
func bestClassificationSplit(x [][]float64, y []int, idx []int, classes int, p treeParams, rng *rand.Rand) (split, bool) {
	parent := float64(len(idx)) * gini(classCounts(y, idx, classes), len(idx))
	best := split{impurity: parent}
	found := false

	order := make([]int, len(idx))
	countsL := make([]float64, classes)
	countsR := make([]float64, classes)
	for _, f := range candidateFeatures(len(x[idx[0]]), p, rng) {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool { return x[order[a]][f] < x[order[b]][f] })

		for c := range countsL {
			countsL[c] = 0
			countsR[c] = 0
		}
		for _, i := range order {
			countsR[y[i]]++
		}

		for i := 0; i < len(order)-1; i++ {
			c := y[order[i]]
			countsL[c]++
			countsR[c]--

			if x[order[i]][f] == x[order[i+1]][f] {
				continue
			}

			nl, nr := i+1, len(order)-i-1
			imp := float64(nl)*gini(countsL, nl) + float64(nr)*gini(countsR, nr)
			if imp < best.impurity {
				best = split{feature: f, threshold: midpoint(x[order[i]][f], x[order[i+1]][f]), impurity: imp}
				found = true
			}
		}
	}
	return best, found
}

// partition splits idx by the threshold test.
func partition(x [][]float64, idx []int, feature int, threshold float64) (left, right []int) {
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return left, right
}

func midpoint(a, b float64) float64 {
	return (a + b) / 2
}

func sums(y []float64, idx []int) (sum, sq float64) {
	for _, i := range idx {
		sum += y[i]
		sq += y[i] * y[i]
	}
	return sum, sq
}

// meanSSE returns the mean of y over idx and the sum of squared
// deviations from it.
func meanSSE(y []float64, idx []int) (mean, sse float64) {
	if len(idx) == 0 {
		return 0, 0
	}
	sum, sq := sums(y, idx)
	n := float64(len(idx))
	mean = sum / n
	sse = sq - sum*sum/n
	if sse < 0 {
		sse = 0 // floating-point guard
	}
	return mean, sse
}

func classCounts(y []int, idx []int, classes int) []float64 {
	counts := make([]float64, classes)
	for _, i := range idx {
		counts[y[i]]++
	}
	return counts
}

func gini(counts []float64, n int) float64 {
	if n == 0 {
		return 0
	}
	impurity := 1.0
	total := float64(n)
	for _, c := range counts {
		p := c / total
		impurity -= p * p
	}
	return impurity
}

// leafDist builds a classification leaf carrying the normalized class
// distribution.
func leafDist(counts []float64, n int) *Node {
	dist := make([]float64, len(counts))
	if n > 0 {
		for i, c := range counts {
			dist[i] = c / float64(n)
		}
	}
	return &Node{Feature: -1, Dist: dist}
}
