package textutil

import (
	"math"
	"regexp"
	"strings"
)

// wordPattern matches runs of two or more letters, numbers or underscores.
// Combining marks end a token, so Thai words split at vowel and tone marks.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Fingerprint is a sparse weighted term vector with its Euclidean norm.
type Fingerprint struct {
	weights map[string]float64
	norm    float64
}

func newFingerprint(weights map[string]float64) *Fingerprint {
	if len(weights) == 0 {
		return nil
	}
	var sum float64
	for _, w := range weights {
		sum += w * w
	}
	return &Fingerprint{weights: weights, norm: math.Sqrt(sum)}
}

// NewFingerprint counts the terms of text. It returns nil when text has no
// tokens left after stop-word removal.
func NewFingerprint(text string) *Fingerprint {
	counts := make(map[string]float64)
	for _, term := range Tokenize(text) {
		counts[term]++
	}
	return newFingerprint(counts)
}

// Tokenize lowercases text and returns its word tokens with stop words removed.
func Tokenize(text string) []string {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	kept := words[:0]
	for _, word := range words {
		if !IsStopWord(word) {
			kept = append(kept, word)
		}
	}
	return kept
}

// TokenCount returns the number of distinct terms.
func (f *Fingerprint) TokenCount() int {
	if f == nil {
		return 0
	}
	return len(f.weights)
}

// Weight returns the weight of term, or 0 when absent.
func (f *Fingerprint) Weight(term string) float64 {
	if f == nil {
		return 0
	}
	return f.weights[term]
}

// WithIDF returns a copy whose weights are multiplied by idf. Terms missing
// from idf keep their weight.
func (f *Fingerprint) WithIDF(idf map[string]float64) *Fingerprint {
	if f == nil || len(idf) == 0 {
		return f
	}
	scaled := make(map[string]float64, len(f.weights))
	for term, w := range f.weights {
		if factor, ok := idf[term]; ok {
			w *= factor
		}
		if w != 0 {
			scaled[term] = w
		}
	}
	return newFingerprint(scaled)
}

// Corpus accumulates document frequencies.
type Corpus struct {
	docs int
	df   map[string]int
}

// NewCorpus creates an empty corpus.
func NewCorpus() *Corpus {
	return &Corpus{df: make(map[string]int)}
}

// Add counts one document. A nil fingerprint (no tokens) still counts toward
// the document total.
func (c *Corpus) Add(fp *Fingerprint) {
	if c == nil {
		return
	}
	c.docs++
	if fp != nil {
		for term := range fp.weights {
			c.df[term]++
		}
	}
}

// Len returns the number of documents added.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return c.docs
}

// IDF returns smoothed weights ln((1+n)/(1+df)) + 1, so a term present in
// every document still weighs 1.
func (c *Corpus) IDF() map[string]float64 {
	if c == nil || c.docs == 0 {
		return nil
	}
	n := float64(c.docs)
	idf := make(map[string]float64, len(c.df))
	for term, df := range c.df {
		idf[term] = 1 + math.Log((1+n)/(1+float64(df)))
	}
	return idf
}
