package models

import (
	"github.com/wallfacer-web/nonfiction-reader/pkg/analyzer"
	"github.com/wallfacer-web/nonfiction-reader/pkg/detector"
)

// SectionResult is the outcome of processing one section: the measured
// difficulty plus whatever the model produced. A model failure is recorded
// here without invalidating the difficulty numbers.
type SectionResult struct {
	Index        int             `json:"index" yaml:"index"`
	Text         string          `json:"-" yaml:"-"`
	WordCount    int             `json:"word_count" yaml:"word_count"`
	Difficulty   analyzer.Report `json:"difficulty" yaml:"difficulty"`
	Analysis     string          `json:"-" yaml:"-"`
	AnalysisType string          `json:"analysis_type" yaml:"analysis_type"` // detailed, simplified, skipped
	Error        string          `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType    string          `json:"error_type,omitempty" yaml:"error_type,omitempty"`
}

// RunSummary aggregates one processing run for the manifest.
type RunSummary struct {
	Title            string               `yaml:"title"`
	GeneratedAt      string               `yaml:"generated_at"`
	Model            string               `yaml:"model,omitempty"`
	Profile          detector.TextProfile `yaml:"profile"`
	TotalWords       int                  `yaml:"total_words"`
	SectionCount     int                  `yaml:"section_count"`
	Failed           int                  `yaml:"failed"`
	AvgDifficulty    float64              `yaml:"avg_difficulty"`
	AvgAcademic      float64              `yaml:"avg_academic_density"`
	TotalReadingTime string               `yaml:"total_reading_time"`
	Sections         []SectionResult      `yaml:"sections"`
}
