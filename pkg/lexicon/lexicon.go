// Package lexicon holds the reference word sets the difficulty analyzer
// scores against: a high-frequency common-word baseline and a set of
// academic vocabulary markers. Both are immutable after construction and
// safe for concurrent readers.
package lexicon

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon is the reference vocabulary for difficulty scoring.
// Membership tests are case-insensitive: entries are lowercased at
// construction and callers are expected to pass lowercased tokens.
type Lexicon struct {
	common   map[string]struct{}
	academic map[string]struct{}
}

// lexiconFile is the on-disk YAML form accepted by LoadFile.
type lexiconFile struct {
	Common   []string `yaml:"common"`
	Academic []string `yaml:"academic"`
}

// New builds a Lexicon from explicit word lists. Entries are lowercased;
// anything containing a non-letter character is dropped so the sets stay
// disjoint from punctuation and numerals.
func New(common, academic []string) *Lexicon {
	return &Lexicon{
		common:   buildSet(common),
		academic: buildSet(academic),
	}
}

// Default returns the embedded reference lexicon.
func Default() *Lexicon {
	return New(defaultCommonWords, defaultAcademicWords)
}

// LoadFile reads a lexicon from a YAML file with `common` and `academic`
// word lists, replacing the embedded defaults wholesale.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file: %w", err)
	}

	var f lexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file: %w", err)
	}
	if len(f.Common) == 0 {
		return nil, fmt.Errorf("lexicon file %s has no common words", path)
	}

	return New(f.Common, f.Academic), nil
}

// IsCommon reports whether word belongs to the common-word baseline.
func (l *Lexicon) IsCommon(word string) bool {
	_, ok := l.common[word]
	return ok
}

// IsAcademic reports whether word belongs to the academic vocabulary set.
func (l *Lexicon) IsAcademic(word string) bool {
	_, ok := l.academic[word]
	return ok
}

// CommonCount returns the size of the common-word baseline.
func (l *Lexicon) CommonCount() int { return len(l.common) }

// AcademicCount returns the size of the academic set.
func (l *Lexicon) AcademicCount() int { return len(l.academic) }

func buildSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" || !isAlpha(w) {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
