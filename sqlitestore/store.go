// Package sqlitestore persists scroll positions in a SQLite database so they
// survive restarts.
package sqlitestore

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS scroll_positions (
    key TEXT PRIMARY KEY,
    value REAL NOT NULL,
    updated_at INTEGER NOT NULL    -- UnixNano
);
`

// Store is a SQLite-backed zscroll.Store. It is safe for concurrent use.
type Store struct {
	db *sql.DB

	mu     sync.Mutex
	closed bool
}

// Open opens or creates the database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(1000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("sqlitestore: store closed")

// Load returns the value stored under key.
func (s *Store) Load(key string) (float64, bool, error) {
	if s.isClosed() {
		return 0, false, ErrClosed
	}
	var value float64
	err := s.db.QueryRow("SELECT value FROM scroll_positions WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load %q: %w", key, err)
	}
	return value, true, nil
}

// Save stores value under key, replacing any previous value.
func (s *Store) Save(key string, value float64) error {
	if s.isClosed() {
		return ErrClosed
	}
	_, err := s.db.Exec(`
		INSERT INTO scroll_positions (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("save %q: %w", key, err)
	}
	return nil
}

// Delete removes the value stored under key.
func (s *Store) Delete(key string) error {
	if s.isClosed() {
		return ErrClosed
	}
	if _, err := s.db.Exec("DELETE FROM scroll_positions WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Prune removes values not saved since before.
func (s *Store) Prune(before time.Time) (int64, error) {
	if s.isClosed() {
		return 0, ErrClosed
	}
	res, err := s.db.Exec("DELETE FROM scroll_positions WHERE updated_at < ?", before.UnixNano())
	if err != nil {
		return 0, fmt.Errorf("prune: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func (s *Store) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
