// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

package textsim

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{"lowercases and splits", "Python SQL Docker", []string{"python", "sql", "docker"}},
		{"drops stop words", "the art of Go and the science", []string{"art", "go", "science"}},
		{"splits on punctuation", "Node.js HTML/CSS", []string{"node", "js", "html", "css"}},
		{"drops single characters", "C++ R Java", []string{"java"}},
		{"empty document", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.doc)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.doc, got, tt.want)
			}
		})
	}
}

func TestFitTransformRowsAreNormalized(t *testing.T) {
	docs := []string{
		"python pandas numpy Data Science",
		"javascript react Web Development",
		"docker kubernetes DevOps",
	}
	vec := NewVectorizer(100)
	m, err := vec.FitTransform(docs)
	if err != nil {
		t.Fatalf("FitTransform() error: %v", err)
	}

	rows, cols := m.Dims()
	if rows != len(docs) {
		t.Fatalf("rows = %d, want %d", rows, len(docs))
	}
	if cols != len(vec.Vocabulary()) {
		t.Fatalf("cols = %d, want vocabulary size %d", cols, len(vec.Vocabulary()))
	}

	for i := 0; i < rows; i++ {
		var norm float64
		for j := 0; j < cols; j++ {
			norm += m.At(i, j) * m.At(i, j)
		}
		if math.Abs(math.Sqrt(norm)-1) > 1e-9 {
			t.Errorf("row %d norm = %f, want 1", i, math.Sqrt(norm))
		}
	}
}

func TestVocabularyCap(t *testing.T) {
	docs := []string{
		"alpha beta gamma delta epsilon",
		"alpha beta gamma delta",
		"alpha beta gamma",
		"alpha beta",
		"alpha",
	}
	vec := NewVectorizer(3)
	if _, err := vec.FitTransform(docs); err != nil {
		t.Fatal(err)
	}

	vocab := vec.Vocabulary()
	if len(vocab) != 3 {
		t.Fatalf("vocabulary size = %d, want 3", len(vocab))
	}
	// Highest-frequency terms survive, stored alphabetically.
	want := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(vocab, want) {
		t.Errorf("vocabulary = %v, want %v", vocab, want)
	}
}

func TestDoubleFitFails(t *testing.T) {
	vec := NewVectorizer(10)
	if _, err := vec.FitTransform([]string{"go programming"}); err != nil {
		t.Fatal(err)
	}
	if _, err := vec.FitTransform([]string{"again"}); !errors.Is(err, ErrAlreadyFitted) {
		t.Errorf("second FitTransform() = %v, want ErrAlreadyFitted", err)
	}
}

func TestEmptyVocabulary(t *testing.T) {
	vec := NewVectorizer(10)
	if _, err := vec.FitTransform([]string{"a", "of the"}); !errors.Is(err, ErrEmptyVocabulary) {
		t.Errorf("FitTransform(stop words only) = %v, want ErrEmptyVocabulary", err)
	}
}

func TestBuildIndexSimilarityProperties(t *testing.T) {
	docs := []string{
		"python pandas numpy Data Science",
		"python tensorflow Machine Learning",
		"javascript react Web Development",
	}
	ix, err := BuildIndex(docs, 100)
	if err != nil {
		t.Fatalf("BuildIndex() error: %v", err)
	}

	for i := range docs {
		self, err := ix.Sim(i, i)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(self-1) > 1e-9 {
			t.Errorf("Sim(%d,%d) = %f, want 1", i, i, self)
		}
		for j := range docs {
			sij, _ := ix.Sim(i, j)
			sji, _ := ix.Sim(j, i)
			if math.Abs(sij-sji) > 1e-9 {
				t.Errorf("similarity not symmetric at (%d,%d): %f vs %f", i, j, sij, sji)
			}
			if sij < -1e-9 || sij > 1+1e-9 {
				t.Errorf("Sim(%d,%d) = %f outside [0,1]", i, j, sij)
			}
		}
	}

	// The two python docs share a term; the web doc shares none with doc 0.
	shared, _ := ix.Sim(0, 1)
	disjoint, _ := ix.Sim(0, 2)
	if shared <= disjoint {
		t.Errorf("Sim(0,1) = %f should exceed Sim(0,2) = %f", shared, disjoint)
	}
	if disjoint > 1e-9 {
		t.Errorf("Sim(0,2) = %f, want ~0 for disjoint docs", disjoint)
	}
}

func TestSimOutOfRange(t *testing.T) {
	ix, err := BuildIndex([]string{"go programming", "rust programming"}, 10)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ix.Sim(0, 5); err == nil {
		t.Error("Sim() accepted out-of-range index")
	}
}

func TestTransformUsesFittedSpace(t *testing.T) {
	vec := NewVectorizer(100)
	if _, err := vec.FitTransform([]string{"python data", "javascript web"}); err != nil {
		t.Fatal(err)
	}

	row, err := vec.Transform("python and some unseen terms")
	if err != nil {
		t.Fatalf("Transform() error: %v", err)
	}

	var nonzero int
	for _, w := range row {
		if w != 0 {
			nonzero++
		}
	}
	if nonzero != 1 {
		t.Errorf("Transform() produced %d nonzero weights, want 1 (only 'python' in vocabulary)", nonzero)
	}
}
