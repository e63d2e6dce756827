package similarity

import (
	"errors"
	"testing"
)

var sampleDocs = []string{
	"❤ Romance, 😂 Comedy, 🧒 Youth Sweet, Fluffy A popular engineering student fakes a relationship.",
	"❤ Romance, 😂 Comedy Funny, Rivals Two boys from rival families become friends at university.",
	"❤ Romance, 🎭 Drama Emotional, Heartwarming A volunteer teacher travels to a mountain village.",
	"🔥 Action, ❤ Romance, 🕵 Crime Intense, Dark A bartender becomes the bodyguard of a mafia heir.",
	"Not specified Not specified Not specified Not specified",
	"",
}

func TestBuildIsSymmetricWithMaximalDiagonal(t *testing.T) {
	m, err := Build(sampleDocs, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Size() != len(sampleDocs) {
		t.Fatalf("Size() = %d, want %d", m.Size(), len(sampleDocs))
	}
	for i := 0; i < m.Size(); i++ {
		for j := 0; j < m.Size(); j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Fatalf("sim(%d,%d)=%v != sim(%d,%d)=%v", i, j, m.At(i, j), j, i, m.At(j, i))
			}
			if m.At(i, j) < 0 || m.At(i, j) > 1 {
				t.Fatalf("sim(%d,%d)=%v out of range", i, j, m.At(i, j))
			}
			if m.At(i, j) > m.At(i, i) {
				t.Fatalf("row %d: off-diagonal %v exceeds diagonal %v", i, m.At(i, j), m.At(i, i))
			}
		}
	}
}

func TestBuildDiagonal(t *testing.T) {
	m, err := Build(sampleDocs, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < 5; i++ {
		if m.At(i, i) != 1 {
			t.Fatalf("sim(%d,%d) = %v, want 1", i, i, m.At(i, i))
		}
	}
	// The empty document has no terms at all.
	if got := m.At(5, 5); got != 0 {
		t.Fatalf("degenerate diagonal = %v, want 0", got)
	}
}

func TestBuildRanksSharedVocabularyHigher(t *testing.T) {
	m, err := Build(sampleDocs, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// Romance and Comedy are shared by 0 and 1 only.
	if m.At(0, 1) <= m.At(0, 3) {
		t.Fatalf("expected comedy pair to outrank crime pair: %v <= %v", m.At(0, 1), m.At(0, 3))
	}
	if m.At(0, 4) != 0 {
		t.Fatalf("expected no overlap with sentinel-only document, got %v", m.At(0, 4))
	}
}

func TestRowMatchesAt(t *testing.T) {
	m, err := Build(sampleDocs, Options{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	row := m.Row(2)
	if len(row) != m.Size() {
		t.Fatalf("row length %d, want %d", len(row), m.Size())
	}
	for j, entry := range row {
		if entry.Index != j || entry.Score != m.At(2, j) {
			t.Fatalf("row[%d] = %+v, want index %d score %v", j, entry, j, m.At(2, j))
		}
	}
}

func TestBuildCeiling(t *testing.T) {
	_, err := Build(sampleDocs, Options{MaxEntries: 3})
	if !errors.Is(err, ErrTooManyEntries) {
		t.Fatalf("expected ErrTooManyEntries, got %v", err)
	}
	if _, err := Build(sampleDocs[:3], Options{MaxEntries: 3}); err != nil {
		t.Fatalf("Build at ceiling: %v", err)
	}
}

func TestBuildEmpty(t *testing.T) {
	m, err := Build(nil, Options{})
	if err != nil {
		t.Fatalf("Build(nil): %v", err)
	}
	if m.Size() != 0 {
		t.Fatalf("Size() = %d, want 0", m.Size())
	}
}
