// Package help carries the quick-start reference printed by the coldstart
// command.
package help

const ColdstartYAML = `# nonfiction-reader Quick Start

analysis_modes:
  simplified: "Fast per-section analysis, best for whole books (default)"
  detailed: "Deep per-section analysis with full study guidance"

commands:
  check_difficulty: |
    nonfiction-reader analyze --file book.txt

  difficulty_from_url: |
    nonfiction-reader analyze --url "https://example.com/essay" --format yaml

  process_book: |
    nonfiction-reader process --file book.txt

  process_deeply: |
    nonfiction-reader process --file chapter.md --detailed

  offline_run: |
    # Difficulty report without a running model
    nonfiction-reader process --file book.txt --skip-model

  pick_model: |
    nonfiction-reader process --file book.txt --model "gemma3:12b"

  review_vocabulary: |
    nonfiction-reader vocab list --limit 50
    nonfiction-reader vocab stats

key_files:
  - "config.yaml (model, endpoint, workers, paths; optional)"
  - "reports/nonfiction_analysis_<stamp>.md (the reading report)"
  - "reports/nonfiction_analysis_<stamp>.yaml (machine-readable manifest)"
  - "vocabulary.db (SQLite vocabulary store)"

requirements:
  - "A local Ollama endpoint (default http://localhost:11434) for model analysis"
  - "Source text as .txt or .md, or a fetchable article URL"
`
