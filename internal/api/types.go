package api

import (
	"dramarec/internal/catalog"
	"dramarec/internal/recommend"
)

// Drama describes a catalog entry in a transport-friendly format.
type Drama struct {
	Title     string  `json:"title"`
	Genres    string  `json:"genres"`
	MoodTags  string  `json:"moodTags"`
	Summary   string  `json:"summary"`
	MainLeads string  `json:"mainLeads"`
	Year      string  `json:"year,omitempty"`
	Rating    float64 `json:"rating"`
	// Score is the content similarity to the matched title.
	Score float64 `json:"score,omitempty"`
	// Fields is the full record keyed by normalized column name, including
	// Combined_Features and columns outside the fixed schema.
	Fields map[string]any `json:"fields"`
}

// RecommendResponse is the payload returned by /api/recommend.
type RecommendResponse struct {
	Query        string  `json:"query"`
	Header       string  `json:"header"`
	Outcome      string  `json:"outcome"`
	MatchedTitle string  `json:"matchedTitle,omitempty"`
	MatchScore   int     `json:"matchScore"`
	Suggestion   string  `json:"suggestion,omitempty"`
	Results      []Drama `json:"results"`
}

// TopRatedResponse is the payload returned by /api/top-rated.
type TopRatedResponse struct {
	Page       int     `json:"page"`
	PerPage    int     `json:"perPage"`
	TotalPages int     `json:"totalPages"`
	Results    []Drama `json:"results"`
}

// HealthResponse reports server liveness.
type HealthResponse struct {
	Status  string `json:"status"`
	Entries int    `json:"entries"`
	Rated   int    `json:"rated"`
}

// ErrorResponse carries a request failure.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

// FromRecord converts a catalog record.
func FromRecord(rec catalog.Record) Drama {
	return Drama{
		Title:     rec.Title,
		Genres:    rec.Genres,
		MoodTags:  rec.MoodTags,
		Summary:   rec.Summary,
		MainLeads: rec.MainLeads,
		Year:      rec.Year,
		Rating:    rec.Rating,
		Fields:    rec.Snapshot(),
	}
}

// FromResult converts a resolver result. Results is never nil.
func FromResult(query string, result recommend.Result) RecommendResponse {
	out := RecommendResponse{
		Query:        query,
		Header:       result.Header,
		Outcome:      string(result.Outcome),
		MatchedTitle: result.MatchedTitle,
		MatchScore:   result.MatchScore,
		Suggestion:   result.Suggestion,
		Results:      make([]Drama, 0, len(result.Hits)),
	}
	for _, hit := range result.Hits {
		drama := FromRecord(hit.Record)
		drama.Score = hit.Score
		out.Results = append(out.Results, drama)
	}
	return out
}

// FromRecords converts a slice of records. The result is never nil.
func FromRecords(records []catalog.Record) []Drama {
	out := make([]Drama, 0, len(records))
	for _, rec := range records {
		out = append(out, FromRecord(rec))
	}
	return out
}
