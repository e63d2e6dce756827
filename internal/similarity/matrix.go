package similarity

import (
	"errors"
	"fmt"
	"math"

	"dramarec/internal/textutil"
)

// ErrTooManyEntries indicates the catalog exceeds the configured ceiling.
var ErrTooManyEntries = errors.New("catalog exceeds similarity matrix ceiling")

// Options controls matrix construction.
type Options struct {
	// MaxEntries caps the number of documents; zero means unlimited.
	MaxEntries int
}

// Scored pairs a document index with its similarity score.
type Scored struct {
	Index int
	Score float64
}

// Matrix is an immutable, symmetric cosine-similarity matrix stored row-major.
type Matrix struct {
	size   int
	values []float64
}

// Build computes the similarity matrix for docs.
func Build(docs []string, opts Options) (*Matrix, error) {
	n := len(docs)
	if opts.MaxEntries > 0 && n > opts.MaxEntries {
		return nil, fmt.Errorf("%w: %d entries, limit %d", ErrTooManyEntries, n, opts.MaxEntries)
	}

	raw := make([]*textutil.Fingerprint, n)
	corpus := textutil.NewCorpus()
	for i, doc := range docs {
		raw[i] = textutil.NewFingerprint(doc)
		corpus.Add(raw[i])
	}
	idf := corpus.IDF()
	weighted := make([]*textutil.Fingerprint, n)
	for i, fp := range raw {
		weighted[i] = fp.WithIDF(idf)
	}

	m := &Matrix{size: n, values: make([]float64, n*n)}
	for i := 0; i < n; i++ {
		if weighted[i] != nil {
			m.values[i*n+i] = 1
		}
		for j := i + 1; j < n; j++ {
			score := clamp(textutil.CosineSimilarity(weighted[i], weighted[j]))
			m.values[i*n+j] = score
			m.values[j*n+i] = score
		}
	}
	return m, nil
}

// Size returns the number of documents.
func (m *Matrix) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

// At returns the similarity between documents i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.values[i*m.size+j]
}

// Row returns (index, score) pairs for document i in index order.
func (m *Matrix) Row(i int) []Scored {
	row := make([]Scored, m.size)
	base := i * m.size
	for j := range row {
		row[j] = Scored{Index: j, Score: m.values[base+j]}
	}
	return row
}

// clamp keeps rounding error from pushing scores outside [0, 1].
func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
