// Package store keeps the rhyme dictionary in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verte-zerg/soneto/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// Store wraps SQLite access for the rhyme index.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	if path == "" {
		path = MemoryPath
	}
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create index dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}
	// Every pooled connection to :memory: would get its own empty database.
	db.SetMaxOpenConns(1)
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS words (
			word TEXT PRIMARY KEY,
			rhyme_key TEXT NOT NULL,
			folded_key TEXT NOT NULL,
			ending TEXT NOT NULL,
			vowels TEXT NOT NULL,
			source TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_words_ending ON words(ending);`,
		`CREATE INDEX IF NOT EXISTS idx_words_vowels ON words(vowels);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to migrate index: %w", err)
		}
	}
	return nil
}

// InsertWords adds entries to the index. Words already present are kept
// with their first source. It returns the number of new rows.
func (s *Store) InsertWords(ctx context.Context, entries []model.DictionaryEntry) (n int, err error) {
	if len(entries) == 0 {
		return 0, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR IGNORE INTO words (word, rhyme_key, folded_key, ending, vowels, source)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for _, e := range entries {
		res, err := stmt.ExecContext(ctx, e.Word, e.Key, e.Folded, e.Ending, e.Vowels, e.Source)
		if err != nil {
			return 0, fmt.Errorf("failed to insert %q: %w", e.Word, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		n += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// Candidates returns words sharing the ending or the final vowels of a rhyme
// key. Same-ending words come first, then builtin before user words, then
// alphabetical. A limit of zero or less returns every match.
func (s *Store) Candidates(ctx context.Context, ending, vowels string, limit int) ([]model.DictionaryEntry, error) {
	if ending == "" && vowels == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT word, rhyme_key, folded_key, ending, vowels, source
		FROM words
		WHERE ending = ? OR (vowels <> '' AND vowels = ?)
		ORDER BY (ending = ?) DESC, source ASC, word ASC
		LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, ending, vowels, ending, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.DictionaryEntry
	for rows.Next() {
		var e model.DictionaryEntry
		if err := rows.Scan(&e.Word, &e.Key, &e.Folded, &e.Ending, &e.Vowels, &e.Source); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountWords returns the number of indexed words per source.
func (s *Store) CountWords(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT source, COUNT(*) FROM words GROUP BY source`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	counts := map[string]int{}
	for rows.Next() {
		var source string
		var n int
		if err := rows.Scan(&source, &n); err != nil {
			return nil, err
		}
		counts[source] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
