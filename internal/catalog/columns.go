package catalog

import "strings"

var columnReplacer = strings.NewReplacer(" ", "_", "(", "", ")", "")

// NormalizeColumnName trims a header cell, replaces spaces with underscores
// and strips parentheses, so "Personal rating (out of 10)" becomes
// "Personal_rating_out_of_10".
func NormalizeColumnName(name string) string {
	return columnReplacer.Replace(strings.TrimSpace(name))
}
