package catalog

import (
	"encoding/json"
	"strings"
)

// Normalized column names.
const (
	ColumnTitle     = "Title"
	ColumnGenres    = "Genres"
	ColumnMoodTags  = "Mood_Tags"
	ColumnSummary   = "Summary"
	ColumnMainLeads = "Main_Leads"
	ColumnYear      = "Year"
	ColumnRating    = "Personal_rating_out_of_10"
	ColumnComposite = "Combined_Features"
)

// NotSpecified replaces missing descriptive text.
const NotSpecified = "Not specified"

// Record is one normalized catalog entry.
type Record struct {
	Title     string
	Genres    string
	MoodTags  string
	Summary   string
	MainLeads string
	Year      string
	Rating    float64
	Composite string
	// Extra holds columns outside the fixed schema, keyed by normalized name.
	Extra map[string]string
}

// Snapshot returns every normalized field keyed by column name.
func (r Record) Snapshot() map[string]any {
	out := make(map[string]any, 8+len(r.Extra))
	for key, value := range r.Extra {
		out[key] = value
	}
	out[ColumnTitle] = r.Title
	out[ColumnGenres] = r.Genres
	out[ColumnMoodTags] = r.MoodTags
	out[ColumnSummary] = r.Summary
	out[ColumnMainLeads] = r.MainLeads
	out[ColumnYear] = r.Year
	out[ColumnRating] = r.Rating
	out[ColumnComposite] = r.Composite
	return out
}

// MarshalJSON encodes the record as its snapshot.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Snapshot())
}

// SearchText is the lowercased title, genre and mood text used for query
// matching. Summary and main leads are deliberately not part of it.
func (r Record) SearchText() string {
	return strings.ToLower(r.Title + " " + r.Genres + " " + r.MoodTags)
}
