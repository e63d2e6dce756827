package recommend

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"dramarec/internal/catalog"
	"dramarec/internal/logging"
	"dramarec/internal/similarity"
	"dramarec/internal/textutil"
)

// Engine is the read-only index consulted by queries.
type Engine struct {
	records []catalog.Record
	matrix  *similarity.Matrix
	ranked  []int
	logger  *slog.Logger
}

// Build composes the similarity matrix for records and returns a ready Engine.
func Build(records []catalog.Record, opts similarity.Options, logger *slog.Logger) (*Engine, error) {
	docs := make([]string, len(records))
	for i, rec := range records {
		docs[i] = rec.Composite
	}
	matrix, err := similarity.Build(docs, opts)
	if err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}
	return NewEngine(records, matrix, logger)
}

// NewEngine wraps records and a matching similarity matrix.
func NewEngine(records []catalog.Record, matrix *similarity.Matrix, logger *slog.Logger) (*Engine, error) {
	if matrix == nil {
		return nil, errors.New("similarity matrix is required")
	}
	if matrix.Size() != len(records) {
		return nil, fmt.Errorf("similarity matrix covers %d entries, catalog has %d", matrix.Size(), len(records))
	}
	owned := make([]catalog.Record, len(records))
	copy(owned, records)

	ranked := make([]int, len(owned))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return owned[ranked[a]].Rating > owned[ranked[b]].Rating
	})

	logger = logging.NewComponentLogger(logger, "recommend")
	logger.Debug("engine ready", logging.Int("entries", len(owned)))

	return &Engine{
		records: owned,
		matrix:  matrix,
		ranked:  ranked,
		logger:  logger,
	}, nil
}

// Len returns the catalog size.
func (e *Engine) Len() int {
	return len(e.records)
}

// Record returns the record at catalog position i.
func (e *Engine) Record(i int) catalog.Record {
	return e.records[i]
}

// RatedCount returns how many records carry a non-zero rating.
func (e *Engine) RatedCount() int {
	n := 0
	for _, rec := range e.records {
		if rec.Rating > 0 {
			n++
		}
	}
	return n
}

// Similar returns every other record ordered by descending similarity to
// record i, ties broken by catalog order.
func (e *Engine) Similar(i int) []similarity.Scored {
	row := e.matrix.Row(i)
	others := make([]similarity.Scored, 0, len(row))
	for _, entry := range row {
		if entry.Index == i {
			continue
		}
		others = append(others, entry)
	}
	sort.SliceStable(others, func(a, b int) bool {
		return others[a].Score > others[b].Score
	})
	return others
}

// Suggest returns the title closest to query by weighted fuzzy ratio when
// the score reaches SuggestionCutoff.
func (e *Engine) Suggest(query string) (string, int, bool) {
	bestIdx, bestScore := -1, -1
	for i, rec := range e.records {
		score := textutil.WeightedRatio(query, rec.Title)
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}
	if bestIdx < 0 || bestScore < SuggestionCutoff {
		return "", bestScore, false
	}
	return e.records[bestIdx].Title, bestScore, true
}
