// Package analyze implements the `analyze` command: a difficulty-only
// assessment of a single text, with no model call. Useful for checking how
// hard a book is before committing to a full processing run.
package analyze

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/wallfacer-web/nonfiction-reader/internal/common"
	"github.com/wallfacer-web/nonfiction-reader/models"
	"github.com/wallfacer-web/nonfiction-reader/pkg/analyzer"
	"github.com/wallfacer-web/nonfiction-reader/pkg/detector"
	"github.com/wallfacer-web/nonfiction-reader/pkg/lexicon"
	"github.com/wallfacer-web/nonfiction-reader/pkg/splitter"
	"github.com/wallfacer-web/nonfiction-reader/pkg/vocab"
)

// output is the analyze command's result document.
type output struct {
	Title      string               `json:"title" yaml:"title"`
	Profile    detector.TextProfile `json:"profile" yaml:"profile"`
	Sections   int                  `json:"sections" yaml:"sections"`
	Difficulty analyzer.Report      `json:"difficulty" yaml:"difficulty"`
}

// AnalyzeAction scores a document's difficulty and prints the report.
func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	text, title, err := common.LoadSource(c)
	if err != nil {
		return err
	}

	lexPath := cfg.LexiconFile
	if c.IsSet("lexicon") {
		lexPath = c.String("lexicon")
	}
	lex := lexicon.Default()
	if lexPath != "" {
		if lex, err = lexicon.LoadFile(lexPath); err != nil {
			return err
		}
	}

	a := analyzer.New(lex)
	profile := detector.New().Profile(text)
	if !profile.IsEnglish {
		logger.Warn("Source does not look like English text", "language", profile.Language)
	}

	out := output{
		Title:      title,
		Profile:    profile,
		Sections:   len(splitter.Split(text)),
		Difficulty: a.Analyze(text),
	}

	if c.Bool("save-vocab") {
		dbPath := cfg.VocabDB
		if c.IsSet("vocab-db") {
			dbPath = c.String("vocab-db")
		}
		store, err := vocab.Open(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		unknown := a.UnknownWords(text)
		if err := store.AddWords(unknown); err != nil {
			return err
		}
		logger.Info("Vocabulary saved", "words", len(unknown), "db", store.Path())
	}

	var data []byte
	switch c.String("format") {
	case "yaml":
		data, err = yaml.Marshal(out)
	default:
		data, err = json.MarshalIndent(out, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
