package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrMissingTitleColumn indicates the input has no Title column after normalization.
var ErrMissingTitleColumn = errors.New("catalog: missing Title column")

// ErrEmptyInput indicates the input has no header row.
var ErrEmptyInput = errors.New("catalog: empty input")

// MaxRating is the upper bound for personal ratings.
const MaxRating = 10.0

// LoadFile reads a CSV or TSV catalog chosen by file extension.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}
	records, err := Load(f, comma)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// Load parses delimited catalog rows from r and normalizes them into Records.
func Load(r io.Reader, comma rune) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	hasTitle := false
	for i, cell := range header {
		columns[i] = NormalizeColumnName(cleanCell(cell))
		if columns[i] == ColumnTitle {
			hasTitle = true
		}
	}
	if !hasTitle {
		return nil, ErrMissingTitleColumn
	}

	var records []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		values := make(map[string]string, len(columns))
		for i, name := range columns {
			if name == "" || i >= len(row) {
				continue
			}
			if _, seen := values[name]; seen {
				continue
			}
			values[name] = cleanCell(row[i])
		}
		records = append(records, NewRecord(values))
	}
	return records, nil
}

// NewRecord builds a normalized Record from a row keyed by normalized
// column names. Missing or blank descriptive fields become NotSpecified,
// the rating is coerced with ParseRating, genres are decorated, and the
// composite feature text is derived.
func NewRecord(values map[string]string) Record {
	rec := Record{
		Title:     values[ColumnTitle],
		Genres:    orNotSpecified(values[ColumnGenres]),
		MoodTags:  orNotSpecified(values[ColumnMoodTags]),
		Summary:   orNotSpecified(values[ColumnSummary]),
		MainLeads: orNotSpecified(values[ColumnMainLeads]),
		Year:      values[ColumnYear],
		Rating:    ParseRating(values[ColumnRating]),
	}
	rec.Genres = DecorateGenres(rec.Genres)
	rec.Composite = ComposeFeatures(rec)

	for key, value := range values {
		if isSchemaColumn(key) {
			continue
		}
		if rec.Extra == nil {
			rec.Extra = make(map[string]string)
		}
		rec.Extra[key] = value
	}
	return rec
}

// ParseRating coerces a raw rating cell to a finite number in [0, MaxRating].
// Unparseable, NaN and infinite values are treated as unrated (0).
func ParseRating(raw string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return math.Min(math.Max(value, 0), MaxRating)
}

func orNotSpecified(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotSpecified
	}
	return value
}

func isSchemaColumn(name string) bool {
	switch name {
	case ColumnTitle, ColumnGenres, ColumnMoodTags, ColumnSummary,
		ColumnMainLeads, ColumnYear, ColumnRating, ColumnComposite:
		return true
	}
	return false
}

func cleanCell(value string) string {
	value = strings.TrimPrefix(value, "\ufeff")
	return strings.TrimSpace(norm.NFKC.String(value))
}
