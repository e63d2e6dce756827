package textutil

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	// partialExactCutoff treats window ratios above this value as exact matches.
	partialExactCutoff = 0.995

	weightedUnbaseScale  = 0.95
	weightedPartialScale = 0.90
	weightedLongScale    = 0.60
	weightedPartialRatio = 1.5
	weightedLongLenRatio = 8.0
)

// Ratio returns the SequenceMatcher similarity of a and b scaled to 0-100.
// Identical strings score 100; an empty operand otherwise scores 0.
func Ratio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	return roundScore(100 * difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio())
}

// PartialRatio scores the best alignment of the shorter string against
// equally sized windows of the longer one, so a query that appears inside a
// longer text scores 100.
func PartialRatio(a, b string) int {
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	shorter, longer := splitRunes(a), splitRunes(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	matcher := difflib.NewMatcher(shorter, longer)
	var best float64
	for _, block := range matcher.GetMatchingBlocks() {
		start := block.B - block.A
		if start < 0 {
			start = 0
		}
		if start > len(longer) {
			start = len(longer)
		}
		end := start + len(shorter)
		if end > len(longer) {
			end = len(longer)
		}
		r := difflib.NewMatcher(shorter, longer[start:end]).Ratio()
		if r > partialExactCutoff {
			return 100
		}
		if r > best {
			best = r
		}
	}
	return roundScore(100 * best)
}

// TokenSortRatio compares the processed strings after sorting their tokens.
func TokenSortRatio(a, b string) int {
	return Ratio(sortedTokens(FullProcess(a)), sortedTokens(FullProcess(b)))
}

// PartialTokenSortRatio is TokenSortRatio using partial alignment.
func PartialTokenSortRatio(a, b string) int {
	return PartialRatio(sortedTokens(FullProcess(a)), sortedTokens(FullProcess(b)))
}

// TokenSetRatio compares the shared and distinct token sets of both strings.
func TokenSetRatio(a, b string) int {
	return tokenSet(FullProcess(a), FullProcess(b), Ratio)
}

// PartialTokenSetRatio is TokenSetRatio using partial alignment.
func PartialTokenSetRatio(a, b string) int {
	return tokenSet(FullProcess(a), FullProcess(b), PartialRatio)
}

// WeightedRatio blends the plain, partial and token based scores the way a
// forgiving title lookup expects. Both inputs are processed with FullProcess.
func WeightedRatio(a, b string) int {
	p1, p2 := FullProcess(a), FullProcess(b)
	if p1 == "" || p2 == "" {
		return 0
	}

	base := float64(Ratio(p1, p2))
	l1, l2 := float64(runeLen(p1)), float64(runeLen(p2))
	lenRatio := math.Max(l1, l2) / math.Min(l1, l2)

	if lenRatio < weightedPartialRatio {
		tsor := float64(Ratio(sortedTokens(p1), sortedTokens(p2))) * weightedUnbaseScale
		tser := float64(tokenSet(p1, p2, Ratio)) * weightedUnbaseScale
		return roundScore(max(base, tsor, tser))
	}

	partialScale := weightedPartialScale
	if lenRatio > weightedLongLenRatio {
		partialScale = weightedLongScale
	}
	partial := float64(PartialRatio(p1, p2)) * partialScale
	ptsor := float64(PartialRatio(sortedTokens(p1), sortedTokens(p2))) * weightedUnbaseScale * partialScale
	ptser := float64(tokenSet(p1, p2, PartialRatio)) * weightedUnbaseScale * partialScale
	return roundScore(max(base, partial, ptsor, ptser))
}

// FullProcess prepares a string for token scoring: Latin-1 supplement runes
// (U+0080 to U+00FF) are dropped, every rune that is not a letter, number or
// underscore becomes a space, and the result is lowercased and trimmed.
// Letters outside that block, such as Thai or CJK, are kept.
func FullProcess(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII && r <= unicode.MaxLatin1:
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_':
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func tokenSet(p1, p2 string, score func(a, b string) int) int {
	if p1 == "" || p2 == "" {
		return 0
	}
	set1 := tokenSetOf(p1)
	set2 := tokenSetOf(p2)

	var sect, only1, only2 []string
	for tok := range set1 {
		if _, ok := set2[tok]; ok {
			sect = append(sect, tok)
		} else {
			only1 = append(only1, tok)
		}
	}
	for tok := range set2 {
		if _, ok := set1[tok]; !ok {
			only2 = append(only2, tok)
		}
	}
	sort.Strings(sect)
	sort.Strings(only1)
	sort.Strings(only2)

	sorted := strings.Join(sect, " ")
	combined1 := strings.TrimSpace(sorted + " " + strings.Join(only1, " "))
	combined2 := strings.TrimSpace(sorted + " " + strings.Join(only2, " "))

	return max(
		score(sorted, combined1),
		score(sorted, combined2),
		score(combined1, combined2),
	)
}

func tokenSetOf(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

func sortedTokens(s string) string {
	fields := strings.Fields(s)
	sort.Strings(fields)
	return strings.Join(fields, " ")
}

func splitRunes(s string) []string {
	return strings.Split(s, "")
}

func runeLen(s string) int {
	return len([]rune(s))
}

// roundScore rounds half to even, matching the scorer's integer contract.
func roundScore(v float64) int {
	return int(math.RoundToEven(v))
}
