package textutil

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
		want float64
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, NewFingerprint("campus romance"), 0},
		{"b nil", NewFingerprint("campus romance"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityIdentical(t *testing.T) {
	text := "Two rival engineering students fall for each other during a campus competition"
	got := CosineSimilarity(NewFingerprint(text), NewFingerprint(text))
	if math.Abs(got-1) > epsilon {
		t.Errorf("CosineSimilarity(identical) = %v, want 1.0", got)
	}
}

func TestCosineSimilarityCompletelyDifferent(t *testing.T) {
	a := NewFingerprint("medical hospital surgeon")
	b := NewFingerprint("music band guitar")

	if got := CosineSimilarity(a, b); got != 0 {
		t.Errorf("CosineSimilarity(different) = %v, want 0", got)
	}
}

func TestCosineSimilarityPartialOverlap(t *testing.T) {
	a := NewFingerprint("sweet campus romance")
	b := NewFingerprint("bitter office romance")

	got := CosineSimilarity(a, b)
	if got <= 0 || got >= 1 {
		t.Errorf("CosineSimilarity(partial) = %v, want between 0 and 1", got)
	}
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	a := NewFingerprint("school youth comedy heartwarming")
	b := NewFingerprint("youth comedy sports")

	ab := CosineSimilarity(a, b)
	ba := CosineSimilarity(b, a)
	if math.Abs(ab-ba) > epsilon {
		t.Errorf("CosineSimilarity not symmetric: (%v, %v)", ab, ba)
	}
}

func TestCosineSimilarityZeroNorm(t *testing.T) {
	a := &Fingerprint{weights: map[string]float64{}, norm: 0}
	b := NewFingerprint("office romance")

	if got := CosineSimilarity(a, b); got != 0 {
		t.Errorf("CosineSimilarity(zero norm) = %v, want 0", got)
	}
}

func TestNewFingerprintEmpty(t *testing.T) {
	if fp := NewFingerprint(""); fp != nil {
		t.Error("expected nil for empty text")
	}
}

func TestNewFingerprintOnlyStopWords(t *testing.T) {
	if fp := NewFingerprint("a an it to the not"); fp != nil {
		t.Error("expected nil for text with only stop words")
	}
}

func TestNewFingerprintNormCalculation(t *testing.T) {
	// love:2, story:1 -> sqrt(5)
	fp := NewFingerprint("love love story")
	if fp == nil {
		t.Fatal("expected fingerprint")
	}
	if math.Abs(fp.norm-math.Sqrt(5)) > 0.0001 {
		t.Errorf("norm = %v, want %v", fp.norm, math.Sqrt(5))
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple words",
			input: "Campus Romance",
			want:  []string{"campus", "romance"},
		},
		{
			name:  "drops stop words and single runes",
			input: "The boys are NOT in love, x",
			want:  []string{"boys", "love"},
		},
		{
			name:  "keeps digits and underscores",
			input: "2gether my_school 2020",
			want:  []string{"2gether", "my_school", "2020"},
		},
		{
			name:  "ignores symbols",
			input: "❤ Romance, 🎭 Drama",
			want:  []string{"romance", "drama"},
		},
		{
			name:  "combining marks split tokens",
			input: "สวัสดี ครับ",
			want:  []string{"สว", "สด", "คร"},
		},
		{
			name:  "sentinel keeps specified",
			input: "Not specified",
			want:  []string{"specified"},
		},
		{
			name:  "non latin letters",
			input: "รักแรก love",
			want:  []string{"รักแรก", "love"},
		},
		{
			name:  "empty string",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize() = %v (len %d), want %v (len %d)",
					got, len(got), tt.want, len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFingerprintTokenCount(t *testing.T) {
	tests := []struct {
		name string
		fp   *Fingerprint
		want int
	}{
		{"nil fingerprint", nil, 0},
		{"unique tokens", NewFingerprint("rival students competition"), 3},
		{"repeated tokens", NewFingerprint("love love story story story"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fp.TokenCount(); got != tt.want {
				t.Errorf("TokenCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCorpusSmoothedIDF(t *testing.T) {
	corpus := NewCorpus()
	corpus.Add(NewFingerprint("apple banana"))
	corpus.Add(NewFingerprint("apple cherry"))
	corpus.Add(nil)

	if corpus.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", corpus.Len())
	}
	idf := corpus.IDF()
	// n=3: apple df=2 -> ln(4/3)+1, banana df=1 -> ln(4/2)+1
	if want := math.Log(4.0/3.0) + 1; math.Abs(idf["apple"]-want) > epsilon {
		t.Errorf("idf[apple] = %v, want %v", idf["apple"], want)
	}
	if want := math.Log(2) + 1; math.Abs(idf["banana"]-want) > epsilon {
		t.Errorf("idf[banana] = %v, want %v", idf["banana"], want)
	}
}

func TestWithIDFDownweightsCommonTerms(t *testing.T) {
	corpus := NewCorpus()
	docs := []*Fingerprint{
		NewFingerprint("romance campus"),
		NewFingerprint("romance office"),
		NewFingerprint("romance medical"),
	}
	for _, fp := range docs {
		corpus.Add(fp)
	}
	weighted := docs[0].WithIDF(corpus.IDF())
	if weighted.Weight("romance") >= weighted.Weight("campus") {
		t.Fatalf("expected shared term to weigh less: romance=%v campus=%v",
			weighted.Weight("romance"), weighted.Weight("campus"))
	}
	if weighted.Weight("romance") != 1 {
		t.Fatalf("term present everywhere should keep weight 1, got %v", weighted.Weight("romance"))
	}
}
