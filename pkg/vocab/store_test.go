package vocab

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "vocab_test.db"))
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestAddWord_Lowercases(t *testing.T) {
	s := setupTestStore(t)

	if err := s.AddWord("Penumbra", "partial shadow", "penumbral", 4); err != nil {
		t.Fatalf("AddWord() error = %v", err)
	}

	words, err := s.ListWords(0)
	if err != nil {
		t.Fatalf("ListWords() error = %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1", len(words))
	}

	w := words[0]
	if w.Word != "penumbra" {
		t.Errorf("word = %q, want %q", w.Word, "penumbra")
	}
	if w.Definition != "partial shadow" {
		t.Errorf("definition = %q, want %q", w.Definition, "partial shadow")
	}
	if w.FrequencyLevel != 4 {
		t.Errorf("frequency_level = %d, want 4", w.FrequencyLevel)
	}
	if w.FirstSeen == "" {
		t.Error("first_seen not set")
	}
}

func TestAddWord_UpsertPreservesProgress(t *testing.T) {
	s := setupTestStore(t)

	if err := s.AddWord("gnomon", "", "", 5); err != nil {
		t.Fatalf("AddWord() error = %v", err)
	}
	if err := s.MarkReviewed("gnomon"); err != nil {
		t.Fatalf("MarkReviewed() error = %v", err)
	}

	// Re-adding the same word with a definition must keep the learned
	// count and fill in the definition.
	if err := s.AddWord("gnomon", "sundial pointer", "", 5); err != nil {
		t.Fatalf("AddWord() second call error = %v", err)
	}

	words, err := s.ListWords(0)
	if err != nil {
		t.Fatalf("ListWords() error = %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("got %d words, want 1 (upsert should not duplicate)", len(words))
	}

	w := words[0]
	if w.LearnedCount != 1 {
		t.Errorf("learned_count = %d, want 1", w.LearnedCount)
	}
	if w.Definition != "sundial pointer" {
		t.Errorf("definition = %q, want %q", w.Definition, "sundial pointer")
	}

	// An empty definition on a later upsert must not wipe the stored one.
	if err := s.AddWord("gnomon", "", "", 5); err != nil {
		t.Fatalf("AddWord() third call error = %v", err)
	}
	words, _ = s.ListWords(0)
	if words[0].Definition != "sundial pointer" {
		t.Errorf("definition after empty upsert = %q, want %q", words[0].Definition, "sundial pointer")
	}
}

func TestAddWords_Batch(t *testing.T) {
	s := setupTestStore(t)

	batch := []string{"aardvark", "binnacle", "aardvark", "coracle"}
	if err := s.AddWords(batch); err != nil {
		t.Fatalf("AddWords() error = %v", err)
	}

	words, err := s.ListWords(0)
	if err != nil {
		t.Fatalf("ListWords() error = %v", err)
	}
	if len(words) != 3 {
		t.Errorf("got %d words, want 3 (duplicates collapse)", len(words))
	}
}

func TestAddWords_Empty(t *testing.T) {
	s := setupTestStore(t)

	if err := s.AddWords(nil); err != nil {
		t.Errorf("AddWords(nil) error = %v, want nil", err)
	}
}

func TestLearnedWords(t *testing.T) {
	s := setupTestStore(t)

	if err := s.AddWords([]string{"rivulet", "sextant", "trireme"}); err != nil {
		t.Fatalf("AddWords() error = %v", err)
	}
	if err := s.MarkReviewed("sextant"); err != nil {
		t.Fatalf("MarkReviewed() error = %v", err)
	}
	if err := s.MarkReviewed("rivulet"); err != nil {
		t.Fatalf("MarkReviewed() error = %v", err)
	}

	learned, err := s.LearnedWords()
	if err != nil {
		t.Fatalf("LearnedWords() error = %v", err)
	}
	if len(learned) != 2 {
		t.Fatalf("got %d learned words, want 2", len(learned))
	}
	// Alphabetical ordering.
	if learned[0] != "rivulet" || learned[1] != "sextant" {
		t.Errorf("learned = %v, want [rivulet sextant]", learned)
	}
}

func TestListWords_Limit(t *testing.T) {
	s := setupTestStore(t)

	if err := s.AddWords([]string{"one", "two", "three", "four", "five"}); err != nil {
		t.Fatalf("AddWords() error = %v", err)
	}

	words, err := s.ListWords(2)
	if err != nil {
		t.Fatalf("ListWords(2) error = %v", err)
	}
	if len(words) != 2 {
		t.Errorf("got %d words, want 2", len(words))
	}
}

func TestGetStats(t *testing.T) {
	s := setupTestStore(t)

	if err := s.AddWords([]string{"aardvark", "binnacle", "coracle"}); err != nil {
		t.Fatalf("AddWords() error = %v", err)
	}
	if err := s.MarkReviewed("binnacle"); err != nil {
		t.Fatalf("MarkReviewed() error = %v", err)
	}
	if err := s.RecordProgress(3, 7, 90*time.Second); err != nil {
		t.Fatalf("RecordProgress() error = %v", err)
	}
	if err := s.RecordProgress(1, 2, 30*time.Second); err != nil {
		t.Fatalf("RecordProgress() error = %v", err)
	}

	stats, err := s.GetStats()
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}

	if stats.TotalWords != 3 {
		t.Errorf("TotalWords = %d, want 3", stats.TotalWords)
	}
	if stats.LearnedWords != 1 {
		t.Errorf("LearnedWords = %d, want 1", stats.LearnedWords)
	}
	if stats.SectionsProcessed != 9 {
		t.Errorf("SectionsProcessed = %d, want 9", stats.SectionsProcessed)
	}
	if stats.ReadingTime != 2*time.Minute {
		t.Errorf("ReadingTime = %v, want 2m0s", stats.ReadingTime)
	}
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab_test.db")

	s1, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := s1.AddWord("kestrel", "", "", 5); err != nil {
		t.Fatalf("AddWord() error = %v", err)
	}
	s1.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("Open() reopen error = %v", err)
	}
	defer s2.Close()

	words, err := s2.ListWords(0)
	if err != nil {
		t.Fatalf("ListWords() error = %v", err)
	}
	if len(words) != 1 || words[0].Word != "kestrel" {
		t.Errorf("reopened store words = %v, want [kestrel]", words)
	}
}
