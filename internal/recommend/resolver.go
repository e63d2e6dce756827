package recommend

import (
	"fmt"
	"strings"

	"dramarec/internal/catalog"
	"dramarec/internal/logging"
	"dramarec/internal/textutil"
)

const (
	// TitleMatchThreshold is the fuzzy score a query must exceed to be
	// treated as a title.
	TitleMatchThreshold = 80
	// SuggestionCutoff is the minimum weighted score for a "did you mean" title.
	SuggestionCutoff = 40
)

// Header messages.
const (
	HeaderEmptyQuery = "Please enter a drama name or keyword."
	HeaderKeyword    = "Here are some dramas similar to what you searched for:"
	HeaderNoResults  = "No dramas found for your search. Try another keyword!"
)

// Outcome names the branch a query resolved through.
type Outcome string

const (
	OutcomeEmptyQuery Outcome = "empty_query"
	OutcomeTitleMatch Outcome = "title_match"
	OutcomeKeyword    Outcome = "keyword"
	OutcomeNoResults  Outcome = "no_results"
)

// Hit is one recommended record. Score is the content similarity to the
// matched title and stays 0 for keyword hits.
type Hit struct {
	Index  int
	Record catalog.Record
	Score  float64
}

// Result is the answer to a single query.
type Result struct {
	Header  string
	Outcome Outcome
	// MatchedTitle is set for title matches.
	MatchedTitle string
	// MatchScore is the best fuzzy score across the catalog.
	MatchScore int
	// Suggestion is the closest title when nothing matched.
	Suggestion string
	Hits       []Hit
}

// TitleMatchHeader returns the header used when query resolved to title.
func TitleMatchHeader(title string) string {
	return fmt.Sprintf("If you liked %s, you might also enjoy:", title)
}

// Recommend resolves query against the catalog and returns at most count hits.
func (e *Engine) Recommend(query string, count int) Result {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return Result{Header: HeaderEmptyQuery, Outcome: OutcomeEmptyQuery}
	}
	if count < 0 {
		count = 0
	}

	blobs := make([]string, len(e.records))
	bestIdx, bestScore := -1, -1
	for i, rec := range e.records {
		blobs[i] = rec.SearchText()
		score := textutil.PartialRatio(normalized, blobs[i])
		if score > bestScore {
			bestIdx, bestScore = i, score
		}
	}

	var result Result
	if bestIdx >= 0 && bestScore > TitleMatchThreshold {
		result = e.titleMatch(bestIdx, count)
	} else {
		result = e.keywordSearch(normalized, blobs, count)
	}
	result.MatchScore = max(bestScore, 0)

	e.logger.Debug("query resolved",
		logging.String("query", normalized),
		logging.String("outcome", string(result.Outcome)),
		logging.Int("match_score", result.MatchScore),
		logging.Int("hits", len(result.Hits)),
	)
	return result
}

func (e *Engine) titleMatch(idx, count int) Result {
	title := e.records[idx].Title
	similar := e.Similar(idx)
	if count < len(similar) {
		similar = similar[:count]
	}
	hits := make([]Hit, len(similar))
	for i, entry := range similar {
		hits[i] = Hit{Index: entry.Index, Record: e.records[entry.Index], Score: entry.Score}
	}
	return Result{
		Header:       TitleMatchHeader(title),
		Outcome:      OutcomeTitleMatch,
		MatchedTitle: title,
		Hits:         hits,
	}
}

func (e *Engine) keywordSearch(query string, blobs []string, count int) Result {
	var matches []int
	for i, blob := range blobs {
		if strings.Contains(blob, query) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		result := Result{Header: HeaderNoResults, Outcome: OutcomeNoResults}
		if title, _, ok := e.Suggest(query); ok {
			result.Suggestion = title
		}
		return result
	}
	if count < len(matches) {
		matches = matches[:count]
	}
	hits := make([]Hit, len(matches))
	for i, idx := range matches {
		hits[i] = Hit{Index: idx, Record: e.records[idx]}
	}
	return Result{Header: HeaderKeyword, Outcome: OutcomeKeyword, Hits: hits}
}
