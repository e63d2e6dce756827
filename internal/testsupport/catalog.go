package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleCSV is a small catalog exercising sentinel filling, rating coercion
// and genre decoration. Ratings sorted descending: Mystery Box (12, clamped
// to 10), Bad Buddy and Semantic Error (9.5), A Tale of Thousand Stars (9),
// 2gether (8.5), Cooking Crush (7), then the unrated KinnPorsche and Until We
// Meet Again.
const SampleCSV = ` Title ,Genres,Mood Tags,Summary,Main Leads,Year,Personal rating (out of 10)
2gether,"Romance, Comedy, Youth","Sweet, Fluffy",A popular engineering student fakes a relationship to chase away an admirer.,"Bright, Win",2020,8.5
Bad Buddy,"Romance, Comedy","Funny, Rivals",Two boys from rival families become close friends at university.,"Ohm, Nanon",2021,9.5
A Tale of Thousand Stars,"Romance, Drama","Emotional, Heartwarming",A volunteer teacher travels to a mountain village after a heart transplant.,"Earth, Mix",2021,9
KinnPorsche,"Action, Romance, Crime","Intense, Dark",A bartender becomes the bodyguard of a mafia heir.,"Mile, Apo",2022,not rated
Until We Meet Again,"Romance, Supernatural","Emotional, Tragic",Reincarnated lovers meet again at university.,"Ohm, Fluke",2019,
Semantic Error,"Romance, Comedy, School","Rivals, Funny",A rigid computer science student clashes with a free spirited design senior.,"Park Jae Chan, Park Seo Ham",2022,9.5
Cooking Crush,"Food, Romance, Slice of Life",,Chefs fall in love in a busy kitchen.,"Ohm, Fiat",2023,7
Mystery Box,,,,,2024,12
`

// SampleTitles lists SampleCSV titles in catalog order.
var SampleTitles = []string{
	"2gether",
	"Bad Buddy",
	"A Tale of Thousand Stars",
	"KinnPorsche",
	"Until We Meet Again",
	"Semantic Error",
	"Cooking Crush",
	"Mystery Box",
}

// WriteCatalog writes content to path, creating parent directories.
func WriteCatalog(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
