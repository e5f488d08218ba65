package vocab

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Vocabulary: one row per encountered word, keyed by lowercase word
CREATE TABLE IF NOT EXISTS vocabulary (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    word TEXT NOT NULL UNIQUE,
    definition TEXT NOT NULL DEFAULT '',
    word_family TEXT NOT NULL DEFAULT '',
    frequency_level INTEGER NOT NULL DEFAULT 5,
    learned_count INTEGER NOT NULL DEFAULT 0,
    first_seen DATE,
    last_reviewed DATE
);

CREATE INDEX IF NOT EXISTS idx_vocabulary_learned ON vocabulary(learned_count);

-- Learning progress: one row per processing run
CREATE TABLE IF NOT EXISTS learning_progress (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_date DATE,
    words_learned INTEGER NOT NULL DEFAULT 0,
    sections_processed INTEGER NOT NULL DEFAULT 0,
    reading_time_seconds INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_progress_date ON learning_progress(session_date);
`
