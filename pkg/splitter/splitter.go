// Package splitter segments a document into analyzable sections. The
// strategy is heuristic: chapter-style headings first, blank-line paragraph
// breaks as the fallback, with a minimum word count so the analyzer is not
// fed fragments.
package splitter

import (
	"regexp"
	"strings"
)

// MinSectionWords is the smallest section worth analyzing. Non-fiction
// paragraphs shorter than this are usually headings or captions.
const MinSectionWords = 30

var (
	chapterRe   = regexp.MustCompile(`\n\s*(?:Chapter|Section|Part|\d+\.)\s+[A-Z][^\n]*\n`)
	paragraphRe = regexp.MustCompile(`\n\s*\n`)
)

// Section is one segment of the source document.
type Section struct {
	Index     int    // position in the document, starting at 1
	Text      string
	WordCount int
}

// Split segments text into ordered sections. Documents with chapter-style
// headings split on those; everything else splits on blank lines. Sections
// under MinSectionWords are dropped.
func Split(text string) []Section {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	parts := chapterRe.Split(trimmed, -1)
	if len(parts) <= 1 {
		parts = paragraphRe.Split(trimmed, -1)
	}

	sections := make([]Section, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		wc := len(strings.Fields(part))
		if wc < MinSectionWords {
			continue
		}
		sections = append(sections, Section{
			Index:     len(sections) + 1,
			Text:      part,
			WordCount: wc,
		})
	}

	return sections
}
