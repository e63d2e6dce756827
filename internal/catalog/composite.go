package catalog

// ComposeFeatures joins the descriptive fields that drive content
// similarity. Title, year and rating are excluded.
func ComposeFeatures(r Record) string {
	return r.Genres + " " + r.MoodTags + " " + r.Summary + " " + r.MainLeads
}
