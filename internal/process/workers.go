package process

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/wallfacer-web/nonfiction-reader/models"
	"github.com/wallfacer-web/nonfiction-reader/pkg/analyzer"
	"github.com/wallfacer-web/nonfiction-reader/pkg/detector"
	"github.com/wallfacer-web/nonfiction-reader/pkg/ollama"
	"github.com/wallfacer-web/nonfiction-reader/pkg/prompt"
	"github.com/wallfacer-web/nonfiction-reader/pkg/splitter"
)

// Job is one section awaiting processing.
type Job struct {
	Section splitter.Section
}

// pipeline holds the per-run collaborators shared by all workers. The
// analyzer and profile are read-only; the model client is safe for
// concurrent calls.
type pipeline struct {
	analyzer *analyzer.Analyzer
	profile  detector.TextProfile
	client   *ollama.Client // nil when the model step is skipped
	detailed bool
}

// worker processes sections from jobs until the channel closes. Each
// section gets a full difficulty report even when the model call fails.
func worker(id int, logger *slog.Logger, p *pipeline, wg *sync.WaitGroup, jobs <-chan Job, results chan<- models.SectionResult) {
	defer wg.Done()
	for job := range jobs {
		sec := job.Section
		logger.Info("Processing section", "worker", id, "section", sec.Index, "words", sec.WordCount)

		result := models.SectionResult{
			Index:     sec.Index,
			Text:      sec.Text,
			WordCount: sec.WordCount,
		}

		result.Difficulty = p.analyzer.Analyze(sec.Text)

		if p.client == nil {
			result.AnalysisType = "skipped"
			results <- result
			continue
		}

		mode := ollama.ModeSimplified
		result.AnalysisType = "simplified"
		if p.detailed {
			mode = ollama.ModeDetailed
			result.AnalysisType = "detailed"
		}

		text := prompt.ForMode(p.detailed, sec.Text, result.Difficulty, p.profile)
		analysis, err := p.client.Generate(context.Background(), text, mode)
		if err != nil {
			logger.Error("Model call failed", "worker", id, "section", sec.Index, "error", err)
			result.Error = err.Error()
			result.ErrorType = "model_error"
		} else {
			result.Analysis = analysis
		}

		results <- result
		logger.Info("Section done", "worker", id, "section", sec.Index,
			"score", result.Difficulty.DifficultyScore)
	}
}

// run fans the sections out over workerCount workers and returns the
// results restored to document order.
func run(logger *slog.Logger, p *pipeline, sections []splitter.Section, workerCount int) []models.SectionResult {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan Job, len(sections))
	results := make(chan models.SectionResult, len(sections))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, p, &wg, jobs, results)
	}

	for _, sec := range sections {
		jobs <- Job{Section: sec}
	}
	close(jobs)

	wg.Wait()
	close(results)

	all := make([]models.SectionResult, 0, len(sections))
	for r := range results {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Index < all[j].Index })

	return all
}
