package analyzer

// FeatureCounts holds counts of structural features found in the raw text.
// Structure (headings, lists, citations) generally makes non-fiction easier
// to navigate, so a high total lowers the difficulty score.
type FeatureCounts struct {
	Headings      int `json:"headings" yaml:"headings"`
	NumberedLists int `json:"numbered_lists" yaml:"numbered_lists"`
	BulletPoints  int `json:"bullet_points" yaml:"bullet_points"`
	Citations     int `json:"citations" yaml:"citations"`
	Quotations    int `json:"quotations" yaml:"quotations"`
	Parenthetical int `json:"parenthetical" yaml:"parenthetical"`
}

// Total sums all feature counts.
func (f FeatureCounts) Total() int {
	return f.Headings + f.NumberedLists + f.BulletPoints + f.Citations + f.Quotations + f.Parenthetical
}

// Report is the full difficulty assessment for one piece of text.
// It is a plain value: created by one Analyze call, never mutated after.
type Report struct {
	TotalWords  int `json:"total_words" yaml:"total_words"`
	UniqueWords int `json:"unique_words" yaml:"unique_words"`

	CommonWordRatio   float64 `json:"common_word_ratio" yaml:"common_word_ratio"`
	AcademicWordRatio float64 `json:"academic_word_ratio" yaml:"academic_word_ratio"`
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`

	// DifficultWords lists up to 15 distinct words outside the common
	// baseline, in order of first occurrence. DifficultWordCount keeps the
	// full count; the score uses the count, the list is display only.
	DifficultWords     []string `json:"difficult_words" yaml:"difficult_words"`
	DifficultWordCount int      `json:"difficult_word_count" yaml:"difficult_word_count"`

	// TechnicalTerms lists up to 10 academic words seen in the text,
	// in order of first occurrence.
	TechnicalTerms []string `json:"technical_terms" yaml:"technical_terms"`

	TextFeatures FeatureCounts `json:"text_features" yaml:"text_features"`

	DifficultyScore      float64 `json:"difficulty_score" yaml:"difficulty_score"`
	ReadingLevel         string  `json:"reading_level" yaml:"reading_level"`
	EstimatedReadingTime string  `json:"estimated_reading_time" yaml:"estimated_reading_time"`

	// Percent views of the two ratios, kept for report display.
	VocabularyCoverage float64 `json:"vocabulary_coverage" yaml:"vocabulary_coverage"`
	AcademicDensity    float64 `json:"academic_density" yaml:"academic_density"`
}
