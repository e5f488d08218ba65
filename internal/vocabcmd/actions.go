// Package vocabcmd implements the `vocab` subcommands for inspecting the
// learner's vocabulary store.
package vocabcmd

import (
	"encoding/json"
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/wallfacer-web/nonfiction-reader/models"
	"github.com/wallfacer-web/nonfiction-reader/pkg/vocab"
)

func openStore(c *cli.Context) (*vocab.Store, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	path := cfg.VocabDB
	if c.IsSet("vocab-db") {
		path = c.String("vocab-db")
	}
	return vocab.Open(path)
}

// ListAction prints stored vocabulary entries.
func ListAction(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	words, err := store.ListWords(c.Int("limit"))
	if err != nil {
		return err
	}

	type entry struct {
		Word         string `json:"word" yaml:"word"`
		Definition   string `json:"definition,omitempty" yaml:"definition,omitempty"`
		LearnedCount int    `json:"learned_count" yaml:"learned_count"`
		FirstSeen    string `json:"first_seen,omitempty" yaml:"first_seen,omitempty"`
	}
	entries := make([]entry, len(words))
	for i, w := range words {
		entries[i] = entry{Word: w.Word, Definition: w.Definition, LearnedCount: w.LearnedCount, FirstSeen: w.FirstSeen}
	}

	var data []byte
	switch c.String("format") {
	case "yaml":
		data, err = yaml.Marshal(entries)
	default:
		data, err = json.MarshalIndent(entries, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal vocabulary: %w", err)
	}

	fmt.Println(string(data))
	return nil
}

// StatsAction prints vocabulary and learning-progress totals.
func StatsAction(c *cli.Context) error {
	store, err := openStore(c)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.GetStats()
	if err != nil {
		return err
	}

	fmt.Printf("Vocabulary entries:  %d\n", stats.TotalWords)
	fmt.Printf("Learned words:       %d\n", stats.LearnedWords)
	fmt.Printf("Sections processed:  %d\n", stats.SectionsProcessed)
	fmt.Printf("Processing time:     %s\n", stats.ReadingTime)

	return nil
}
