// Package vocab is the learner's vocabulary bookkeeping store. It records
// every unknown word a reader meets, keyed by lowercase word, plus a
// per-run learning-progress log. SQLite via modernc.org/sqlite, no cgo.
package vocab

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultDBName is the vocabulary database filename.
const DefaultDBName = "vocabulary.db"

// Store wraps the vocabulary database.
type Store struct {
	*sql.DB
	path string
}

// Word is one vocabulary entry.
type Word struct {
	Word           string
	Definition     string
	WordFamily     string
	FrequencyLevel int
	LearnedCount   int
	FirstSeen      string
	LastReviewed   string
}

// ProgressEntry is one learning-progress row.
type ProgressEntry struct {
	SessionDate        string
	WordsLearned       int
	SectionsProcessed  int
	ReadingTimeSeconds int
}

// Stats summarizes the store.
type Stats struct {
	TotalWords        int
	LearnedWords      int
	SectionsProcessed int
	ReadingTime       time.Duration
}

// Open opens or creates the vocabulary database at path and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultDBName
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary database: %w", err)
	}

	s := &Store{DB: db, path: path}
	if err := s.ensureSchemaExists(); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to initialize vocabulary schema: %w", err)
	}

	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

func (s *Store) ensureSchemaExists() error {
	var tableName string
	err := s.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='vocabulary'").Scan(&tableName)

	if err == sql.ErrNoRows {
		_, err := s.Exec(schema)
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to check schema: %w", err)
	}
	return nil
}

// AddWord upserts one word. The word is lowercased; an existing row keeps
// its learned_count and first_seen but picks up a non-empty definition.
func (s *Store) AddWord(word, definition, wordFamily string, frequencyLevel int) error {
	return s.upsert(s.DB, word, definition, wordFamily, frequencyLevel)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func (s *Store) upsert(e execer, word, definition, wordFamily string, frequencyLevel int) error {
	_, err := e.Exec(`
		INSERT INTO vocabulary (word, definition, word_family, frequency_level, first_seen)
		VALUES (lower(?), ?, ?, ?, date('now'))
		ON CONFLICT(word) DO UPDATE SET
			definition = CASE WHEN excluded.definition != '' THEN excluded.definition ELSE vocabulary.definition END,
			word_family = CASE WHEN excluded.word_family != '' THEN excluded.word_family ELSE vocabulary.word_family END,
			frequency_level = excluded.frequency_level`,
		word, definition, wordFamily, frequencyLevel)
	if err != nil {
		return fmt.Errorf("failed to upsert word %q: %w", word, err)
	}
	return nil
}

// AddWords upserts a batch of words with empty definitions in one
// transaction. Used by the processing pipeline to harvest unknown words.
func (s *Store) AddWords(words []string) error {
	if len(words) == 0 {
		return nil
	}

	tx, err := s.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, w := range words {
		if err := s.upsert(tx, w, "", "", 5); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit vocabulary batch: %w", err)
	}
	return nil
}

// MarkReviewed bumps a word's learned count and review date.
func (s *Store) MarkReviewed(word string) error {
	_, err := s.Exec(`
		UPDATE vocabulary
		SET learned_count = learned_count + 1, last_reviewed = date('now')
		WHERE word = lower(?)`, word)
	if err != nil {
		return fmt.Errorf("failed to mark %q reviewed: %w", word, err)
	}
	return nil
}

// LearnedWords returns all words with a positive learned count.
func (s *Store) LearnedWords() ([]string, error) {
	rows, err := s.Query("SELECT word FROM vocabulary WHERE learned_count > 0 ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("failed to query learned words: %w", err)
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("failed to scan word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// ListWords returns up to limit vocabulary entries, most recent first.
// limit <= 0 means no limit.
func (s *Store) ListWords(limit int) ([]Word, error) {
	query := `
		SELECT word, definition, word_family, frequency_level, learned_count,
		       COALESCE(first_seen, ''), COALESCE(last_reviewed, '')
		FROM vocabulary ORDER BY first_seen DESC, word`
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = s.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query vocabulary: %w", err)
	}
	defer rows.Close()

	var words []Word
	for rows.Next() {
		var w Word
		if err := rows.Scan(&w.Word, &w.Definition, &w.WordFamily, &w.FrequencyLevel,
			&w.LearnedCount, &w.FirstSeen, &w.LastReviewed); err != nil {
			return nil, fmt.Errorf("failed to scan vocabulary row: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// RecordProgress logs one processing run.
func (s *Store) RecordProgress(wordsLearned, sectionsProcessed int, readingTime time.Duration) error {
	_, err := s.Exec(`
		INSERT INTO learning_progress (session_date, words_learned, sections_processed, reading_time_seconds)
		VALUES (date('now'), ?, ?, ?)`,
		wordsLearned, sectionsProcessed, int(readingTime.Seconds()))
	if err != nil {
		return fmt.Errorf("failed to record progress: %w", err)
	}
	return nil
}

// GetStats aggregates vocabulary and progress totals.
func (s *Store) GetStats() (Stats, error) {
	var st Stats

	if err := s.QueryRow("SELECT COUNT(*) FROM vocabulary").Scan(&st.TotalWords); err != nil {
		return st, fmt.Errorf("failed to count vocabulary: %w", err)
	}
	if err := s.QueryRow("SELECT COUNT(*) FROM vocabulary WHERE learned_count > 0").Scan(&st.LearnedWords); err != nil {
		return st, fmt.Errorf("failed to count learned words: %w", err)
	}

	var seconds int
	err := s.QueryRow(`
		SELECT COALESCE(SUM(sections_processed), 0), COALESCE(SUM(reading_time_seconds), 0)
		FROM learning_progress`).Scan(&st.SectionsProcessed, &seconds)
	if err != nil {
		return st, fmt.Errorf("failed to aggregate progress: %w", err)
	}
	st.ReadingTime = time.Duration(seconds) * time.Second

	return st, nil
}
