package lookupcache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS movies (
    id         INTEGER NOT NULL,
    language   TEXT    NOT NULL DEFAULT '',
    payload    BLOB    NOT NULL,
    fetched_at TEXT    NOT NULL,
    PRIMARY KEY (id, language)
);
`

// Store persists raw movie payloads keyed by TMDB ID and language.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the cache database under dir.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("cache directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, "lookups.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Get returns the cached payload for the given movie, if present.
func (s *Store) Get(id int64, language string) ([]byte, bool) {
	if s == nil || s.db == nil {
		return nil, false
	}
	var payload []byte
	err := s.db.QueryRow(
		`SELECT payload FROM movies WHERE id = ? AND language = ?`,
		id, language,
	).Scan(&payload)
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Put stores or replaces the payload for the given movie.
func (s *Store) Put(id int64, language string, payload []byte) error {
	if s == nil || s.db == nil {
		return errors.New("cache not open")
	}
	_, err := s.db.Exec(
		`INSERT INTO movies (id, language, payload, fetched_at)
         VALUES (?, ?, ?, ?)
         ON CONFLICT(id, language) DO UPDATE SET
             payload = excluded.payload,
             fetched_at = excluded.fetched_at`,
		id, language, payload, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store payload: %w", err)
	}
	return nil
}
