// Package prompt builds the pedagogical prompts sent to the language model.
// The difficulty report is embedded as structured text so the model can
// ground its analysis in the measured numbers; the analyzer itself has no
// dependency in the other direction.
package prompt

import (
	"fmt"
	"strings"

	"github.com/wallfacer-web/nonfiction-reader/pkg/analyzer"
	"github.com/wallfacer-web/nonfiction-reader/pkg/detector"
)

// statsBlock renders the measured section numbers for prompt embedding.
func statsBlock(r analyzer.Report, p detector.TextProfile) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "- Total words: %d\n", r.TotalWords)
	fmt.Fprintf(&sb, "- Unique words: %d\n", r.UniqueWords)
	fmt.Fprintf(&sb, "- Vocabulary coverage: %.1f%%\n", r.VocabularyCoverage)
	fmt.Fprintf(&sb, "- Academic vocabulary density: %.1f%%\n", r.AcademicDensity)
	fmt.Fprintf(&sb, "- Difficulty: %.1f/10 (%s)\n", r.DifficultyScore, r.ReadingLevel)
	fmt.Fprintf(&sb, "- Estimated reading time: %s\n", r.EstimatedReadingTime)
	fmt.Fprintf(&sb, "- Text type: %s\n", p.TextType)
	if len(r.TechnicalTerms) > 0 {
		fmt.Fprintf(&sb, "- Technical terms present: %s\n", strings.Join(r.TechnicalTerms, ", "))
	}
	f := r.TextFeatures
	fmt.Fprintf(&sb, "- Structural features: %d headings, %d numbered lists, %d bullet points, %d citations, %d quotations, %d parentheticals\n",
		f.Headings, f.NumberedLists, f.BulletPoints, f.Citations, f.Quotations, f.Parenthetical)
	return sb.String()
}

// Detailed builds the deep single-section analysis prompt.
func Detailed(section string, r analyzer.Report, p detector.TextProfile) string {
	return fmt.Sprintf(`You are an experienced teacher of English for academic purposes. Analyze the
following non-fiction passage for a non-native English learner.

[PASSAGE]
%s

[MEASURED STATISTICS]
%s
Structure your analysis as follows:

## Difficulty Assessment
- Judge the academic reading difficulty of this passage for a non-native reader.
- Explain how the structural features (headings, lists, citations) help or
  hinder comprehension.
- Point out the language features most likely to block understanding.

## Key Vocabulary and Terminology
Pick 5-8 key words or terms and explain for each:
- its precise meaning in this subject context,
- word-family relations and common collocations,
- synonyms, antonyms, and related concepts.

## Argument Structure and Logic
- Identify the passage's argumentative pattern (cause-effect, comparison,
  classification, and so on).
- Separate the author's claims from the supporting evidence.
- Unpack any complex sentence structures and explain the signal words that
  carry the logic.

## Reading Strategy Guidance
- Pre-reading: what background knowledge should be activated first?
- Active reading: what should be annotated, questioned, and summarized?
- Critical reading: how should the evidence be evaluated for bias?

## Deep Comprehension (answer each)
1. What core problem or question does this passage address?
2. What key evidence, facts, or cases support the argument?
3. What role does this passage play in the larger argument, and how is it
   ordered internally?
4. Does the author acknowledge or answer opposing views?
5. Which key concepts are defined here, and how?
6. What background or historical context does the author supply?
7. What practical conclusions or advice does the passage offer?
8. What is distinctive about the author's viewpoint compared with the field?
9. What characterizes the author's style and method of argument?
10. What is the single most important takeaway?

## Critical Thinking Questions
Write 3-5 discussion questions that push the reader beyond the text.

## Comprehension Check
Summarize the main claims in plain English a learner can self-test against.

Be thorough and precise, and keep the needs of a non-native academic reader
in view throughout.`, section, statsBlock(r, p))
}

// Simplified builds the fast whole-book analysis prompt.
func Simplified(section string, r analyzer.Report, p detector.TextProfile) string {
	return fmt.Sprintf(`You are a teacher of English for academic purposes. Give a quick analysis of
the following non-fiction passage for a non-native English learner.

[PASSAGE]
%s

[STATISTICS]
Words: %d. Academic density: %.1f%%. Difficulty: %s.

Keep the analysis short:

## Key Terms (3-5)
The most important academic words or terms, each with a one-line gloss.

## Argument
The main claim and how the passage supports it, in 2-3 sentences.

## Core Points
- Core question the passage addresses
- Key supporting evidence
- Organizational logic
- Concepts a learner must understand
- Practical value of the content

## Reading Focus
What a learner should pay attention to when reading this passage.

Stay concise and concrete.`, section, r.TotalWords, r.AcademicDensity, r.ReadingLevel)
}

// ForMode dispatches to Detailed or Simplified.
func ForMode(detailed bool, section string, r analyzer.Report, p detector.TextProfile) string {
	if detailed {
		return Detailed(section, r, p)
	}
	return Simplified(section, r, p)
}
