// Package history persists recently submitted search queries.
package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/hoopreel/internal/db"
)

// Entry is one remembered search.
type Entry struct {
	Query      string
	Order      string
	SearchedAt time.Time
}

// Store keeps the most recent queries, newest first. Re-submitting a query
// moves it back to the top.
type Store struct {
	db   *sql.DB
	size int
	now  func() time.Time
}

// Open opens (or creates) the history database at path, keeping at most
// size queries. Use ":memory:" for a throwaway store.
func Open(path string, size int) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// A single connection keeps ":memory:" databases shared across calls.
	conn.SetMaxOpenConns(1)

	if err := initSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &Store{db: conn, size: size, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Add records a query and trims the store to its size.
// Blank queries are ignored.
func (s *Store) Add(query, order string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	return db.WithTx(s.db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO search_history (query, order_by, searched_at) VALUES (?, ?, ?)
			ON CONFLICT(query) DO UPDATE SET
				order_by = excluded.order_by,
				searched_at = excluded.searched_at
		`, query, order, s.now().UnixNano())
		if err != nil {
			return err
		}

		if s.size <= 0 {
			return nil
		}
		_, err = tx.Exec(`
			DELETE FROM search_history
			WHERE query NOT IN (
				SELECT query FROM search_history ORDER BY searched_at DESC LIMIT ?
			)
		`, s.size)
		return err
	})
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT query, order_by, searched_at FROM search_history
		ORDER BY searched_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.Query, &e.Order, &ts); err != nil {
			return nil, err
		}
		e.SearchedAt = time.Unix(0, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Queries returns up to limit query strings, newest first.
func (s *Store) Queries(limit int) ([]string, error) {
	entries, err := s.Recent(limit)
	if err != nil {
		return nil, err
	}
	queries := make([]string, len(entries))
	for i, e := range entries {
		queries[i] = e.Query
	}
	return queries, nil
}

// Clear removes every entry.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM search_history`)
	return err
}
