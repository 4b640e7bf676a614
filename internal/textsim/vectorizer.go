// Learnforge - Course Recommendation and Skill Assessment Pipeline
// Copyright 2026 Learnforge contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/learnforge-io/learnforge

// Package textsim builds a term-weighted vector space over short course
// documents and derives a course-by-course cosine similarity matrix.
//
// Each course contributes one document (its skills joined with its
// category). The vector space uses smoothed TF-IDF weighting with an
// English stop-word filter and a capped vocabulary. The space is fit
// once at training time; adding a course requires refitting the whole
// corpus.
package textsim

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ErrAlreadyFitted indicates a second FitTransform call on a vectorizer.
var ErrAlreadyFitted = errors.New("vectorizer already fitted")

// ErrEmptyVocabulary indicates that no terms survived tokenization and
// stop-word filtering.
var ErrEmptyVocabulary = errors.New("empty vocabulary")

// Vectorizer converts documents into TF-IDF weighted, L2-normalized
// term vectors. Fit once per training run.
type Vectorizer struct {
	maxFeatures int

	vocabulary []string
	vocabIndex map[string]int
	idf        []float64
	fitted     bool
}

// NewVectorizer creates an unfitted vectorizer whose vocabulary is
// capped at maxFeatures terms (highest corpus frequency wins, ties
// resolved alphabetically).
func NewVectorizer(maxFeatures int) *Vectorizer {
	return &Vectorizer{maxFeatures: maxFeatures}
}

// FitTransform learns the vocabulary and IDF weights from docs and
// returns the docs×vocabulary TF-IDF matrix with L2-normalized rows.
func (v *Vectorizer) FitTransform(docs []string) (*mat.Dense, error) {
	if v.fitted {
		return nil, ErrAlreadyFitted
	}

	tokenized := make([][]string, len(docs))
	termCount := make(map[string]int)
	docFreq := make(map[string]int)
	for i, doc := range docs {
		tokens := Tokenize(doc)
		tokenized[i] = tokens

		seen := make(map[string]struct{})
		for _, tok := range tokens {
			termCount[tok]++
			if _, ok := seen[tok]; !ok {
				docFreq[tok]++
				seen[tok] = struct{}{}
			}
		}
	}

	if len(termCount) == 0 {
		return nil, ErrEmptyVocabulary
	}

	v.vocabulary = selectVocabulary(termCount, v.maxFeatures)
	v.vocabIndex = make(map[string]int, len(v.vocabulary))
	for i, term := range v.vocabulary {
		v.vocabIndex[term] = i
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1.
	n := float64(len(docs))
	v.idf = make([]float64, len(v.vocabulary))
	for i, term := range v.vocabulary {
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	v.fitted = true

	m := mat.NewDense(len(docs), len(v.vocabulary), nil)
	for i, tokens := range tokenized {
		v.fillRow(m, i, tokens)
	}
	return m, nil
}

// Transform maps a single document into the fitted vector space.
// Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(doc string) ([]float64, error) {
	if !v.fitted {
		return nil, errors.New("vectorizer not fitted")
	}
	m := mat.NewDense(1, len(v.vocabulary), nil)
	v.fillRow(m, 0, Tokenize(doc))
	return m.RawRowView(0), nil
}

// fillRow writes the normalized TF-IDF weights of tokens into row i.
func (v *Vectorizer) fillRow(m *mat.Dense, i int, tokens []string) {
	var norm float64
	for _, tok := range tokens {
		if j, ok := v.vocabIndex[tok]; ok {
			m.Set(i, j, m.At(i, j)+v.idf[j])
		}
	}
	row := m.RawRowView(i)
	for _, w := range row {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for j := range row {
			row[j] /= norm
		}
	}
}

// Vocabulary returns the fitted terms in column order.
func (v *Vectorizer) Vocabulary() []string {
	return v.vocabulary
}

// IDF returns the fitted inverse-document-frequency weights, aligned
// with Vocabulary.
func (v *Vectorizer) IDF() []float64 {
	return v.idf
}

// Tokenize lowercases the document and splits it into alphanumeric
// tokens of at least two characters, minus stop-words.
func Tokenize(doc string) []string {
	fields := strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		out = append(out, f)
	}
	return out
}

// selectVocabulary keeps the max highest-frequency terms (alphabetical
// tie-break) and returns them in alphabetical order for stable columns.
func selectVocabulary(termCount map[string]int, max int) []string {
	terms := make([]string, 0, len(termCount))
	for t := range termCount {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if termCount[terms[i]] != termCount[terms[j]] {
			return termCount[terms[i]] > termCount[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if max > 0 && len(terms) > max {
		terms = terms[:max]
	}
	sort.Strings(terms)
	return terms
}

// Cosine computes the symmetric document-by-document cosine similarity
// matrix for a row-normalized TF-IDF matrix: S = X·Xᵀ.
func Cosine(x *mat.Dense) *mat.Dense {
	rows, _ := x.Dims()
	s := mat.NewDense(rows, rows, nil)
	s.Mul(x, x.T())
	return s
}

// Index is the persisted content-similarity asset: the fitted vector
// space plus the precomputed similarity matrix.
//
// The index is trained and persisted alongside the rating model but is
// not consumed by the regressor's feature vector. It is kept as a
// precomputed asset for future content-based blending; see DESIGN.md.
type Index struct {
	Vocabulary []string    `json:"vocabulary"`
	IDF        []float64   `json:"idf"`
	Similarity [][]float64 `json:"similarity"`
}

// BuildIndex fits a vector space over docs and precomputes the full
// similarity matrix.
func BuildIndex(docs []string, maxFeatures int) (*Index, error) {
	vec := NewVectorizer(maxFeatures)
	m, err := vec.FitTransform(docs)
	if err != nil {
		return nil, fmt.Errorf("fitting vector space: %w", err)
	}

	cos := Cosine(m)
	sim := make([][]float64, len(docs))
	for i := range sim {
		sim[i] = make([]float64, len(docs))
		copy(sim[i], cos.RawRowView(i))
	}

	return &Index{
		Vocabulary: vec.Vocabulary(),
		IDF:        vec.IDF(),
		Similarity: sim,
	}, nil
}

// Sim returns the cosine similarity between documents i and j.
func (ix *Index) Sim(i, j int) (float64, error) {
	if i < 0 || i >= len(ix.Similarity) || j < 0 || j >= len(ix.Similarity) {
		return 0, fmt.Errorf("similarity index out of range: (%d, %d) with %d documents", i, j, len(ix.Similarity))
	}
	return ix.Similarity[i][j], nil
}
