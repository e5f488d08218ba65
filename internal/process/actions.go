// Package process implements the full reading-assistant pipeline behind
// the `process` command: ingest, profile, split, per-section difficulty
// analysis and model analysis, vocabulary harvesting, and report assembly.
package process

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/wallfacer-web/nonfiction-reader/internal/common"
	"github.com/wallfacer-web/nonfiction-reader/models"
	"github.com/wallfacer-web/nonfiction-reader/pkg/analyzer"
	"github.com/wallfacer-web/nonfiction-reader/pkg/detector"
	"github.com/wallfacer-web/nonfiction-reader/pkg/lexicon"
	"github.com/wallfacer-web/nonfiction-reader/pkg/ollama"
	"github.com/wallfacer-web/nonfiction-reader/pkg/report"
	"github.com/wallfacer-web/nonfiction-reader/pkg/splitter"
	"github.com/wallfacer-web/nonfiction-reader/pkg/storage"
	"github.com/wallfacer-web/nonfiction-reader/pkg/vocab"
)

// loadLexicon returns the lexicon from --lexicon / config, falling back to
// the embedded defaults.
func loadLexicon(c *cli.Context, cfg *models.Config) (*lexicon.Lexicon, error) {
	path := cfg.LexiconFile
	if c.IsSet("lexicon") {
		path = c.String("lexicon")
	}
	if path == "" {
		return lexicon.Default(), nil
	}
	return lexicon.LoadFile(path)
}

// ProcessAction runs the full pipeline.
func ProcessAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("model") {
		if err := cfg.SetModel(c.String("model")); err != nil {
			return err
		}
	}
	if c.IsSet("ollama-url") {
		cfg.OllamaURL = c.String("ollama-url")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("vocab-db") {
		cfg.VocabDB = c.String("vocab-db")
	}

	text, title, err := common.LoadSource(c)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(c, cfg)
	if err != nil {
		return err
	}

	profile := detector.New().Profile(text)
	if !profile.IsEnglish {
		logger.Warn("Source does not look like English text; analysis targets English non-fiction",
			"language", profile.Language, "confidence", profile.LanguageConfidence)
	}

	sections := splitter.Split(text)
	if len(sections) == 0 {
		return fmt.Errorf("no analyzable sections found (sections need at least %d words)", splitter.MinSectionWords)
	}
	logger.Info("Loaded book", "title", title, "sections", len(sections),
		"language", profile.Language, "text_type", profile.TextType,
		"preview", common.Truncate(text, 80))

	store, err := vocab.Open(cfg.VocabDB)
	if err != nil {
		return err
	}
	defer store.Close()

	p := &pipeline{
		analyzer: analyzer.New(lex),
		profile:  profile,
		detailed: c.Bool("detailed"),
	}
	if !c.Bool("skip-model") {
		p.client = ollama.NewClient(cfg.OllamaURL, cfg.Model)
	}

	start := time.Now()
	results := run(logger, p, sections, cfg.Workers)

	// Vocabulary harvest: every distinct unknown word across sections.
	seen := make(map[string]struct{})
	var unknown []string
	for _, sec := range sections {
		for _, w := range p.analyzer.UnknownWords(sec.Text) {
			if _, dup := seen[w]; dup {
				continue
			}
			seen[w] = struct{}{}
			unknown = append(unknown, w)
		}
	}
	if err := store.AddWords(unknown); err != nil {
		logger.Error("Failed to save vocabulary", "error", err)
	}

	summary := report.Summarize(title, modelName(p), profile, results)
	if err := store.RecordProgress(len(unknown), len(sections), time.Since(start)); err != nil {
		logger.Error("Failed to record progress", "error", err)
	}

	// Write report + manifest.
	s := &storage.Storage{}
	stamp := time.Now().Format("20060102_150405")
	reportPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("nonfiction_analysis_%s.md", stamp))
	manifestPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("nonfiction_analysis_%s.yaml", stamp))

	if err := s.SaveFile(reportPath, []byte(report.Markdown(summary))); err != nil {
		return err
	}
	manifest, err := report.Manifest(summary)
	if err != nil {
		return err
	}
	if err := s.SaveFile(manifestPath, manifest); err != nil {
		return err
	}

	fmt.Printf("Processed %q: %d sections, %d words, avg difficulty %.1f/10\n",
		title, summary.SectionCount, summary.TotalWords, summary.AvgDifficulty)
	fmt.Printf("New vocabulary recorded: %d words\n", len(unknown))
	fmt.Printf("Report:   %s\n", reportPath)
	fmt.Printf("Manifest: %s\n", manifestPath)
	if summary.Failed > 0 {
		fmt.Printf("Warning: %d section(s) failed model analysis (difficulty data still included)\n", summary.Failed)
	}

	return nil
}

func modelName(p *pipeline) string {
	if p.client == nil {
		return ""
	}
	return p.client.Model()
}
