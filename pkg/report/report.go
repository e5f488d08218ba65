// Package report assembles the human-readable markdown report and the
// machine-readable YAML run manifest from processed sections. It is purely
// a serializer: all numbers come in precomputed.
package report

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wallfacer-web/nonfiction-reader/models"
	"github.com/wallfacer-web/nonfiction-reader/pkg/analyzer"
	"github.com/wallfacer-web/nonfiction-reader/pkg/detector"
)

// Summarize aggregates section results into a RunSummary.
func Summarize(title, model string, profile detector.TextProfile, results []models.SectionResult) models.RunSummary {
	s := models.RunSummary{
		Title:        title,
		GeneratedAt:  time.Now().Format("2006-01-02 15:04:05"),
		Model:        model,
		Profile:      profile,
		SectionCount: len(results),
		Sections:     results,
	}

	var diffSum, acadSum float64
	for _, r := range results {
		s.TotalWords += r.Difficulty.TotalWords
		diffSum += r.Difficulty.DifficultyScore
		acadSum += r.Difficulty.AcademicDensity
		if r.Error != "" {
			s.Failed++
		}
	}
	if len(results) > 0 {
		s.AvgDifficulty = diffSum / float64(len(results))
		s.AvgAcademic = acadSum / float64(len(results))
	}
	s.TotalReadingTime = analyzer.FormatReadingTime(s.TotalWords)

	return s
}

// Markdown renders the full reading-analysis report.
func Markdown(summary models.RunSummary) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Reading Analysis: %s\n\n", summary.Title)
	fmt.Fprintf(&sb, "Generated: %s\n\n", summary.GeneratedAt)
	if summary.Model != "" {
		fmt.Fprintf(&sb, "Model: %s\n\n", summary.Model)
	}

	sb.WriteString("## Overview\n\n")
	fmt.Fprintf(&sb, "- Sections processed: %d\n", summary.SectionCount)
	fmt.Fprintf(&sb, "- Total words: %d\n", summary.TotalWords)
	fmt.Fprintf(&sb, "- Average difficulty: %.1f/10\n", summary.AvgDifficulty)
	fmt.Fprintf(&sb, "- Average academic density: %.1f%%\n", summary.AvgAcademic)
	fmt.Fprintf(&sb, "- Estimated total reading time: %s\n", summary.TotalReadingTime)
	fmt.Fprintf(&sb, "- Language: %s, text type: %s\n", summary.Profile.Language, summary.Profile.TextType)
	if summary.Failed > 0 {
		fmt.Fprintf(&sb, "- Sections with model errors: %d\n", summary.Failed)
	}
	sb.WriteString("\n")

	for _, r := range summary.Sections {
		fmt.Fprintf(&sb, "---\n\n## Section %d\n\n", r.Index)

		sb.WriteString("### Difficulty\n\n")
		d := r.Difficulty
		fmt.Fprintf(&sb, "- Score: %.1f/10\n", d.DifficultyScore)
		fmt.Fprintf(&sb, "- Reading level: %s\n", d.ReadingLevel)
		fmt.Fprintf(&sb, "- Vocabulary coverage: %.1f%%\n", d.VocabularyCoverage)
		fmt.Fprintf(&sb, "- Academic density: %.1f%%\n", d.AcademicDensity)
		fmt.Fprintf(&sb, "- Words: %d (%d unique), avg sentence length %.1f\n",
			d.TotalWords, d.UniqueWords, d.AvgSentenceLength)
		fmt.Fprintf(&sb, "- Estimated reading time: %s\n", d.EstimatedReadingTime)
		if len(d.DifficultWords) > 0 {
			fmt.Fprintf(&sb, "- Difficult words: %s\n", strings.Join(d.DifficultWords, ", "))
		}
		if len(d.TechnicalTerms) > 0 {
			fmt.Fprintf(&sb, "- Technical terms: %s\n", strings.Join(d.TechnicalTerms, ", "))
		}
		sb.WriteString("\n### Original Text\n\n")
		sb.WriteString(r.Text)
		sb.WriteString("\n\n### Analysis\n\n")
		switch {
		case r.Error != "":
			fmt.Fprintf(&sb, "_Model analysis failed (%s): %s_\n", r.ErrorType, r.Error)
		case r.AnalysisType == "skipped":
			sb.WriteString("_Model analysis skipped._\n")
		default:
			sb.WriteString(r.Analysis)
			sb.WriteString("\n")
		}

		sb.WriteString("\n### Reading Advice\n\n")
		for _, rec := range Recommendations(d.DifficultyScore) {
			sb.WriteString(rec)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Manifest renders the YAML run manifest.
func Manifest(summary models.RunSummary) ([]byte, error) {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return data, nil
}
