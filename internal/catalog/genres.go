package catalog

import "strings"

// genreSymbols maps known genre tags to their display symbol.
var genreSymbols = map[string]string{
	"Romance":      "❤",
	"Drama":        "🎭",
	"Comedy":       "😂",
	"Medical":      "🩺",
	"Action":       "🔥",
	"Music":        "🎵",
	"Office":       "🏢",
	"School":       "🏫",
	"Supernatural": "👻",
	"Sci-Fi":       "👽",
	"Business":     "💼",
	"Historical":   "🏰",
	"Thriller":     "😱",
	"Crime":        "🕵",
	"Youth":        "🧒",
	"Fantasy":      "🦄",
	"Mystery":      "🔍",
	"Life":         "🌱",
	"Food":         "🍜",
	"Sports":       "⚽",
}

// GenreSymbol returns the display symbol for tag, if it is a known genre.
func GenreSymbol(tag string) (string, bool) {
	symbol, ok := genreSymbols[strings.TrimSpace(tag)]
	return symbol, ok
}

// DecorateGenres prefixes every known comma-separated tag with its symbol
// and rejoins the tags with ", ". Unknown tags are kept verbatim.
func DecorateGenres(genres string) string {
	parts := strings.Split(genres, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if symbol, ok := genreSymbols[tag]; ok {
			out = append(out, symbol+" "+tag)
			continue
		}
		out = append(out, tag)
	}
	return strings.Join(out, ", ")
}
