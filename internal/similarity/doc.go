// Package similarity builds the pairwise content-similarity matrix for a
// catalog.
//
// Every document is turned into a TF-IDF fingerprint with IDF computed over
// the whole catalog, and cosine similarity is evaluated once per unordered
// pair. The result is a dense, symmetric n x n matrix, so Build refuses
// catalogs above a configured ceiling rather than allocating without bound.
// Adding or removing a document requires a full rebuild.
package similarity
