package recommend_test

import (
	"strings"
	"testing"

	"dramarec/internal/recommend"
	"dramarec/internal/testsupport"
)

func hitTitles(result recommend.Result) []string {
	titles := make([]string, len(result.Hits))
	for i, hit := range result.Hits {
		titles[i] = hit.Record.Title
	}
	return titles
}

func equalTitles(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRecommendEmptyQuery(t *testing.T) {
	engine := sampleEngine(t)
	for _, query := range []string{"", "   ", "\t\n"} {
		result := engine.Recommend(query, 5)
		if result.Outcome != recommend.OutcomeEmptyQuery || result.Header != recommend.HeaderEmptyQuery {
			t.Fatalf("Recommend(%q) = %+v", query, result)
		}
		if len(result.Hits) != 0 {
			t.Fatalf("Recommend(%q) returned hits", query)
		}
	}
}

func TestRecommendTitleMatch(t *testing.T) {
	engine := sampleEngine(t)
	tests := []struct {
		query string
		title string
		first []string
	}{
		{"bad buddy", "Bad Buddy", []string{"Until We Meet Again", "Semantic Error", "Cooking Crush", "2gether", "KinnPorsche"}},
		{"  BAD BUDDY  ", "Bad Buddy", []string{"Until We Meet Again", "Semantic Error"}},
		{"2gether", "2gether", []string{"Semantic Error", "Bad Buddy"}},
		{"kinporche!!", "KinnPorsche", nil},
		{"untill we met", "Until We Meet Again", []string{"Bad Buddy", "A Tale of Thousand Stars"}},
		{"romance", "2gether", []string{"Semantic Error"}},
		{"emotional", "A Tale of Thousand Stars", []string{"Until We Meet Again"}},
	}
	for _, tt := range tests {
		result := engine.Recommend(tt.query, 5)
		if result.Outcome != recommend.OutcomeTitleMatch {
			t.Fatalf("Recommend(%q) outcome = %s, want title match", tt.query, result.Outcome)
		}
		if result.MatchedTitle != tt.title {
			t.Fatalf("Recommend(%q) matched %q, want %q", tt.query, result.MatchedTitle, tt.title)
		}
		if result.Header != recommend.TitleMatchHeader(tt.title) {
			t.Fatalf("Recommend(%q) header = %q", tt.query, result.Header)
		}
		if result.MatchScore <= recommend.TitleMatchThreshold {
			t.Fatalf("Recommend(%q) match score %d not above threshold", tt.query, result.MatchScore)
		}
		if len(result.Hits) != 5 {
			t.Fatalf("Recommend(%q) returned %d hits", tt.query, len(result.Hits))
		}
		titles := hitTitles(result)
		for _, title := range titles {
			if title == tt.title {
				t.Fatalf("Recommend(%q) recommended the matched title", tt.query)
			}
		}
		if tt.first != nil && !equalTitles(titles[:len(tt.first)], tt.first) {
			t.Fatalf("Recommend(%q) hits = %v, want prefix %v", tt.query, titles, tt.first)
		}
	}
}

func TestRecommendTitleMatchScores(t *testing.T) {
	result := sampleEngine(t).Recommend("Bad Buddy", 2)
	if len(result.Hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(result.Hits))
	}
	if !approx(result.Hits[0].Score, 0.1634) || !approx(result.Hits[1].Score, 0.1562) {
		t.Fatalf("unexpected scores: %v, %v", result.Hits[0].Score, result.Hits[1].Score)
	}
}

func TestRecommendCountBounds(t *testing.T) {
	engine := sampleEngine(t)

	all := engine.Recommend("bad buddy", 100)
	if len(all.Hits) != engine.Len()-1 {
		t.Fatalf("expected %d hits, got %d", engine.Len()-1, len(all.Hits))
	}

	for _, n := range []int{0, -3} {
		result := engine.Recommend("bad buddy", n)
		if result.Outcome != recommend.OutcomeTitleMatch || len(result.Hits) != 0 {
			t.Fatalf("Recommend(n=%d) = %+v", n, result)
		}
	}
}

func TestRecommendNoResults(t *testing.T) {
	engine := sampleEngine(t)
	tests := []struct {
		query      string
		suggestion string
	}{
		{"transplant", "Semantic Error"},
		{"xyzzy qwerty", ""},
		{"bda budyd", "Bad Buddy"},
		{"2gthr", "2gether"},
	}
	for _, tt := range tests {
		result := engine.Recommend(tt.query, 5)
		if result.Outcome != recommend.OutcomeNoResults || result.Header != recommend.HeaderNoResults {
			t.Fatalf("Recommend(%q) = %+v, want no results", tt.query, result)
		}
		if len(result.Hits) != 0 {
			t.Fatalf("Recommend(%q) returned hits", tt.query)
		}
		if result.Suggestion != tt.suggestion {
			t.Fatalf("Recommend(%q) suggestion = %q, want %q", tt.query, result.Suggestion, tt.suggestion)
		}
		if result.MatchScore > recommend.TitleMatchThreshold {
			t.Fatalf("Recommend(%q) match score %d above threshold", tt.query, result.MatchScore)
		}
	}
}

func slowBurnCatalog() string {
	tags := strings.TrimSuffix(strings.Repeat("slow burn, ", 24), ", ")
	return testsupport.SampleCSV +
		`Slow Burn Story,"Romance, Drama","` + tags + `",Two neighbours take years to admit their feelings.,"Max, Tul",2018,6` + "\n" +
		`Another Slow Burn,Office,"` + tags + `",Coworkers drift together over a decade.,"Off, Gun",2017,5` + "\n"
}

func TestRecommendKeywordFallback(t *testing.T) {
	engine := newEngine(t, slowBurnCatalog())

	result := engine.Recommend("burn, slow", 5)
	if result.Outcome != recommend.OutcomeKeyword || result.Header != recommend.HeaderKeyword {
		t.Fatalf("outcome = %s header = %q, want keyword", result.Outcome, result.Header)
	}
	want := []string{"Slow Burn Story", "Another Slow Burn"}
	if got := hitTitles(result); !equalTitles(got, want) {
		t.Fatalf("hits = %v, want %v", got, want)
	}
	for _, hit := range result.Hits {
		if hit.Score != 0 {
			t.Fatalf("keyword hits carry no similarity score, got %v", hit.Score)
		}
	}

	limited := engine.Recommend("burn, slow", 1)
	if got := hitTitles(limited); !equalTitles(got, want[:1]) {
		t.Fatalf("limited hits = %v, want %v", got, want[:1])
	}
}

func TestRecommendSlowBurnTitleMatch(t *testing.T) {
	result := newEngine(t, slowBurnCatalog()).Recommend("slow burn", 3)
	if result.Outcome != recommend.OutcomeTitleMatch || result.MatchedTitle != "Slow Burn Story" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Hits) == 0 || result.Hits[0].Record.Title != "Another Slow Burn" {
		t.Fatalf("hits = %v", hitTitles(result))
	}
	if !approx(result.Hits[0].Score, 0.9929) {
		t.Fatalf("score = %v, want ~0.9929", result.Hits[0].Score)
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	engine := sampleEngine(t)
	first := engine.Recommend("funny", 5)
	for range 5 {
		again := engine.Recommend("funny", 5)
		if !equalTitles(hitTitles(first), hitTitles(again)) {
			t.Fatalf("results differ between calls: %v vs %v", hitTitles(first), hitTitles(again))
		}
	}
}
