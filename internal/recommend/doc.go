// Package recommend answers drama queries against an immutable catalog
// snapshot.
//
// An Engine bundles the normalized records with their similarity matrix.
// Recommend decides whether a query names a known title (fuzzy partial ratio
// above TitleMatchThreshold) and, if so, returns the most similar other
// titles; otherwise it falls back to literal substring search over title,
// genre and mood text. TopRated pages through the catalog by rating.
//
// Engines never mutate after construction and are safe for concurrent use.
package recommend
