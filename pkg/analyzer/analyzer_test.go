package analyzer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/wallfacer-web/nonfiction-reader/pkg/lexicon"
)

// testLexicon gives tests a controlled baseline instead of the embedded
// 600-word list, so assertions do not depend on its exact contents.
func testLexicon(common, academic []string) *lexicon.Lexicon {
	return lexicon.New(common, academic)
}

func TestAnalyze_EmptyText(t *testing.T) {
	a := New(lexicon.Default())

	r := a.Analyze("")

	if r.TotalWords != 0 {
		t.Errorf("TotalWords = %d, want 0", r.TotalWords)
	}
	if r.UniqueWords != 0 {
		t.Errorf("UniqueWords = %d, want 0", r.UniqueWords)
	}
	if r.CommonWordRatio != 0 || r.AcademicWordRatio != 0 || r.AvgSentenceLength != 0 {
		t.Errorf("ratios = (%v, %v, %v), want all 0",
			r.CommonWordRatio, r.AcademicWordRatio, r.AvgSentenceLength)
	}
	if r.DifficultyScore != 5.0 {
		t.Errorf("DifficultyScore = %v, want 5.0 for empty input", r.DifficultyScore)
	}
	if r.DifficultWords == nil || len(r.DifficultWords) != 0 {
		t.Errorf("DifficultWords = %v, want empty non-nil slice", r.DifficultWords)
	}
	if r.TechnicalTerms == nil || len(r.TechnicalTerms) != 0 {
		t.Errorf("TechnicalTerms = %v, want empty non-nil slice", r.TechnicalTerms)
	}
	if r.TextFeatures.Total() != 0 {
		t.Errorf("TextFeatures.Total() = %d, want 0", r.TextFeatures.Total())
	}
	if r.EstimatedReadingTime != "0 sec" {
		t.Errorf("EstimatedReadingTime = %q, want %q", r.EstimatedReadingTime, "0 sec")
	}
}

func TestAnalyze_SimpleSentences(t *testing.T) {
	a := New(testLexicon([]string{"the", "cat", "sat", "dog", "ran"}, nil))

	r := a.Analyze("The cat sat. The dog ran.")

	if r.TotalWords != 6 {
		t.Errorf("TotalWords = %d, want 6", r.TotalWords)
	}
	if r.UniqueWords != 5 {
		t.Errorf("UniqueWords = %d, want 5", r.UniqueWords)
	}
	if r.CommonWordRatio != 1.0 {
		t.Errorf("CommonWordRatio = %v, want 1.0", r.CommonWordRatio)
	}
	if r.AcademicWordRatio != 0 {
		t.Errorf("AcademicWordRatio = %v, want 0", r.AcademicWordRatio)
	}
	if r.AvgSentenceLength != 3.0 {
		t.Errorf("AvgSentenceLength = %v, want 3.0", r.AvgSentenceLength)
	}
	if len(r.DifficultWords) != 0 {
		t.Errorf("DifficultWords = %v, want empty", r.DifficultWords)
	}
	if len(r.TechnicalTerms) != 0 {
		t.Errorf("TechnicalTerms = %v, want empty", r.TechnicalTerms)
	}
}

func TestAnalyze_AcademicTextHitsUpperClamp(t *testing.T) {
	a := New(testLexicon([]string{"the"}, []string{"analysis", "research", "methodology"}))

	text := strings.Repeat("analysis research methodology. ", 10)
	r := a.Analyze(text)

	if r.CommonWordRatio != 0 {
		t.Errorf("CommonWordRatio = %v, want 0", r.CommonWordRatio)
	}
	if r.AcademicWordRatio != 1.0 {
		t.Errorf("AcademicWordRatio = %v, want 1.0", r.AcademicWordRatio)
	}
	// Coverage penalty alone is (0.95-0)*6 = 5.7 on top of the base 5,
	// so the score must sit at the upper clamp.
	if r.DifficultyScore != 10.0 {
		t.Errorf("DifficultyScore = %v, want 10.0 (clamped)", r.DifficultyScore)
	}
}

func TestAnalyze_ScoreAlwaysInRange(t *testing.T) {
	a := New(lexicon.Default())

	inputs := []string{
		"",
		"word",
		"!!! ??? ...",
		"12345 67890",
		strings.Repeat("electroencephalography ", 500),
		strings.Repeat("the and of to a in ", 500),
		strings.Repeat("• bullet line\n", 100),
		"The quick brown fox jumps over the lazy dog. " + strings.Repeat("Supercalifragilistic expialidocious antidisestablishmentarianism. ", 50),
	}

	for _, in := range inputs {
		r := a.Analyze(in)
		if r.DifficultyScore < 1.0 || r.DifficultyScore > 10.0 {
			t.Errorf("Analyze(%.30q...) score = %v, want within [1, 10]", in, r.DifficultyScore)
		}
	}
}

func TestAnalyze_DifficultWordListCapped(t *testing.T) {
	a := New(testLexicon([]string{"the"}, nil))

	words := []string{
		"aardvark", "binnacle", "coracle", "dervish", "eland",
		"ferrule", "gimlet", "hawser", "isthmus", "jacquard",
		"kestrel", "lanyard", "mizzen", "nacelle", "oakum",
		"paling", "quern", "rivulet", "sextant", "trireme",
	}
	r := a.Analyze(strings.Join(words, " "))

	if len(r.DifficultWords) != maxDifficultWords {
		t.Errorf("len(DifficultWords) = %d, want %d", len(r.DifficultWords), maxDifficultWords)
	}
	if r.DifficultWordCount != len(words) {
		t.Errorf("DifficultWordCount = %d, want %d (full pre-truncation count)",
			r.DifficultWordCount, len(words))
	}
	// First-occurrence order within the cap.
	if !reflect.DeepEqual(r.DifficultWords, words[:maxDifficultWords]) {
		t.Errorf("DifficultWords = %v, want first %d inputs in order", r.DifficultWords, maxDifficultWords)
	}
}

func TestAnalyze_TechnicalTermListCapped(t *testing.T) {
	academic := []string{
		"analysis", "approach", "concept", "criterion", "evidence",
		"framework", "hypothesis", "paradigm", "parameter", "phenomenon",
		"synthesis", "taxonomy",
	}
	a := New(testLexicon(nil, academic))

	r := a.Analyze(strings.Join(academic, " "))

	if len(r.TechnicalTerms) != maxTechnicalTerms {
		t.Errorf("len(TechnicalTerms) = %d, want %d", len(r.TechnicalTerms), maxTechnicalTerms)
	}
	if !reflect.DeepEqual(r.TechnicalTerms, academic[:maxTechnicalTerms]) {
		t.Errorf("TechnicalTerms = %v, want first %d inputs in order", r.TechnicalTerms, maxTechnicalTerms)
	}
}

func TestAnalyze_DistinctWordsCountedOnce(t *testing.T) {
	a := New(testLexicon([]string{"the"}, nil))

	r := a.Analyze("penumbra penumbra penumbra")

	if r.TotalWords != 3 {
		t.Errorf("TotalWords = %d, want 3", r.TotalWords)
	}
	if r.UniqueWords != 1 {
		t.Errorf("UniqueWords = %d, want 1", r.UniqueWords)
	}
	if r.DifficultWordCount != 1 {
		t.Errorf("DifficultWordCount = %d, want 1", r.DifficultWordCount)
	}
	if !reflect.DeepEqual(r.DifficultWords, []string{"penumbra"}) {
		t.Errorf("DifficultWords = %v, want [penumbra]", r.DifficultWords)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	a := New(lexicon.Default())
	text := "Abstract. This study presents an analysis of climate data [1] (Smith, 2019).\n\n1. Introduction follows."

	r1 := a.Analyze(text)
	r2 := a.Analyze(text)

	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("repeated analysis differs:\nfirst:  %+v\nsecond: %+v", r1, r2)
	}
}

func TestDetectFeatures(t *testing.T) {
	text := "Introduction:\n" +
		"1. First point\n" +
		"2. Second point\n" +
		"• A bullet\n" +
		"- Another bullet\n" +
		"As shown in [1] and (2019), results vary.\n" +
		"\"A direct quotation.\"\n" +
		"Some context (with an aside) here.\n"

	f := detectFeatures(text)

	if f.Headings != 1 {
		t.Errorf("Headings = %d, want 1", f.Headings)
	}
	if f.NumberedLists != 2 {
		t.Errorf("NumberedLists = %d, want 2", f.NumberedLists)
	}
	if f.BulletPoints != 2 {
		t.Errorf("BulletPoints = %d, want 2", f.BulletPoints)
	}
	if f.Citations != 2 {
		t.Errorf("Citations = %d, want 2", f.Citations)
	}
	if f.Quotations != 1 {
		t.Errorf("Quotations = %d, want 1", f.Quotations)
	}
	if f.Parenthetical != 2 {
		t.Errorf("Parenthetical = %d, want 2", f.Parenthetical)
	}
}

func TestAnalyze_BulletFeatureCount(t *testing.T) {
	a := New(lexicon.Default())

	text := strings.Repeat("• bullet item with several plain words here\n", 20)
	r := a.Analyze(text)

	if r.TextFeatures.BulletPoints != 20 {
		t.Errorf("BulletPoints = %d, want 20", r.TextFeatures.BulletPoints)
	}
}

func TestUnknownWords(t *testing.T) {
	a := New(testLexicon([]string{"the", "known"}, nil))

	got := a.UnknownWords("The penumbra and the gnomon. Penumbra again, known word, big.")

	// Distinct, longer than 3 letters, outside the baseline, in
	// first-occurrence order. "and", "big" are too short; "known" and
	// "the" are in the baseline.
	want := []string{"penumbra", "gnomon", "again", "word"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnknownWords() = %v, want %v", got, want)
	}
}

func TestFormatReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  string
	}{
		{0, "0 sec"},
		{50, "30 sec"},
		{99, "59 sec"},
		{100, "1 min"},
		{250, "2 min"},
		{5999, "59 min"},
		{6000, "1 hr 0 min"},
		{9000, "1 hr 30 min"},
		{12600, "2 hr 6 min"},
	}

	for _, tt := range tests {
		if got := FormatReadingTime(tt.words); got != tt.want {
			t.Errorf("FormatReadingTime(%d) = %q, want %q", tt.words, got, tt.want)
		}
	}
}

func TestReadingLevel_Bands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "Entry"},
		{3.0, "Entry"},
		{3.1, "Basic"},
		{5.0, "Basic"},
		{6.5, "Intermediate"},
		{7.0, "Intermediate"},
		{8.5, "Advanced"},
		{8.6, "Specialist"},
		{10.0, "Specialist"},
	}

	for _, tt := range tests {
		got := readingLevel(tt.score)
		if !strings.HasPrefix(got, tt.want) {
			t.Errorf("readingLevel(%v) = %q, want prefix %q", tt.score, got, tt.want)
		}
	}
}
