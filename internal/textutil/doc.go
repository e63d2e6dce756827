// Package textutil provides the text scoring primitives behind drama
// recommendations.
//
// The primary use cases are:
//   - Tokenizing free text into weighted term fingerprints (TF-IDF)
//   - Computing cosine similarity between fingerprints
//   - Fuzzy string scoring on a 0-100 scale (ratio, partial ratio, token
//     sort/set and the weighted blend used for "did you mean" hints)
//
// Tokenization lowercases text, keeps runs of two or more word characters,
// and drops common English stop words. Fuzzy scores are computed on
// SequenceMatcher similarity over Unicode code points.
package textutil
