// nonfiction-reader is a reading-assistance CLI for non-native English
// learners working through non-fiction texts. It scores reading
// difficulty, asks a locally hosted language model for pedagogical
// analysis, keeps a vocabulary notebook, and writes markdown reports.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/wallfacer-web/nonfiction-reader/internal/analyze"
	"github.com/wallfacer-web/nonfiction-reader/internal/process"
	"github.com/wallfacer-web/nonfiction-reader/internal/vocabcmd"
	"github.com/wallfacer-web/nonfiction-reader/pkg/help"
)

// sourceFlags select the document to work on; shared by analyze and process.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "file", Usage: "path to a .txt or .md source file"},
		&cli.StringFlag{Name: "url", Usage: "URL of an article to fetch and analyze"},
		&cli.StringFlag{Name: "text", Usage: "raw text to analyze"},
		&cli.StringFlag{Name: "title", Usage: "override the derived document title"},
		&cli.StringFlag{Name: "lexicon", Usage: "YAML lexicon file replacing the embedded word lists"},
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "config file path"},
		&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
	}
}

func main() {
	app := &cli.App{
		Name:  "nonfiction-reader",
		Usage: "reading assistant for non-native readers of English non-fiction",
		Commands: []*cli.Command{
			{
				Name:  "analyze",
				Usage: "Score a text's reading difficulty (no model call)",
				Flags: append(append(sourceFlags(), commonFlags()...),
					&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
					&cli.BoolFlag{Name: "save-vocab", Usage: "record unknown words in the vocabulary store"},
					&cli.StringFlag{Name: "vocab-db", Usage: "vocabulary database path"},
				),
				Action: analyze.AnalyzeAction,
			},
			{
				Name:  "process",
				Usage: "Run the full pipeline: split, score, model analysis, report",
				Flags: append(append(sourceFlags(), commonFlags()...),
					&cli.BoolFlag{Name: "detailed", Usage: "use the deep analysis prompt (slower)"},
					&cli.BoolFlag{Name: "skip-model", Usage: "skip the model call; difficulty only"},
					&cli.StringFlag{Name: "model", Usage: "model name (must be in the configured list)"},
					&cli.StringFlag{Name: "ollama-url", Usage: "Ollama endpoint base URL"},
					&cli.IntFlag{Name: "workers", Usage: "concurrent section workers"},
					&cli.StringFlag{Name: "output-dir", Usage: "directory for reports"},
					&cli.StringFlag{Name: "vocab-db", Usage: "vocabulary database path"},
				),
				Action: process.ProcessAction,
			},
			{
				Name:  "vocab",
				Usage: "Inspect the vocabulary store",
				Subcommands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List stored vocabulary entries",
						Flags: append(commonFlags(),
							&cli.IntFlag{Name: "limit", Value: 25, Usage: "max entries (0 = all)"},
							&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json or yaml"},
							&cli.StringFlag{Name: "vocab-db", Usage: "vocabulary database path"},
						),
						Action: vocabcmd.ListAction,
					},
					{
						Name:  "stats",
						Usage: "Show vocabulary and learning-progress totals",
						Flags: append(commonFlags(),
							&cli.StringFlag{Name: "vocab-db", Usage: "vocabulary database path"},
						),
						Action: vocabcmd.StatsAction,
					},
				},
			},
			{
				Name:  "coldstart",
				Usage: "Print a quick-start reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
