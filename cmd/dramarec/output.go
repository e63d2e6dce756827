package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"dramarec/internal/catalog"
)

const maxColumnWidth = 48

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// writeJSON encodes v as indented JSON to the command's stdout. Titles and
// summaries are written without HTML escaping.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// isTerminal reports whether writer is an interactive terminal. Tables are
// only drawn for terminals so piped output stays line-oriented.
func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func formatRating(rating float64) string {
	if rating <= 0 {
		return "unrated"
	}
	return strconv.FormatFloat(rating, 'f', 1, 64) + "/10"
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 3, 64)
}

// renderRecords prints records numbered from start, as a table on terminals
// and one line per record otherwise. A non-nil scores slice adds a
// similarity column.
func renderRecords(out io.Writer, title string, start int, records []catalog.Record, scores []float64) {
	if !isTerminal(out) {
		fmt.Fprintln(out, title)
		for i, rec := range records {
			line := fmt.Sprintf("%d. %s | %s | %s | %s", start+i, rec.Title, rec.Genres, rec.MoodTags, formatRating(rec.Rating))
			if scores != nil {
				line += " | similarity " + formatScore(scores[i])
			}
			fmt.Fprintln(out, line)
		}
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(out, title)
		return
	}

	headers := []string{"#", "Title", "Genres", "Mood", "Rating"}
	aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight}
	if scores != nil {
		headers = append(headers, "Similarity")
		aligns = append(aligns, alignRight)
	}
	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		row := []string{strconv.Itoa(start + i), rec.Title, rec.Genres, rec.MoodTags, formatRating(rec.Rating)}
		if scores != nil {
			row = append(row, formatScore(scores[i]))
		}
		rows = append(rows, row)
	}
	fmt.Fprintln(out, renderTable(title, headers, rows, aligns))
}

func renderTable(title string, headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if title != "" {
		tw.SetTitle(title)
	}

	header := make(table.Row, columns)
	for i := range columns {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := range columns {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
			WidthMax:    maxColumnWidth,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
