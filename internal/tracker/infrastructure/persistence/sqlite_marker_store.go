package persistence

import (
	"context"
	"database/sql"
	"errors"
)

// SQLiteMarkerStore persists the startup-orchestration markers (last
// materialized week, last rollover date) as key-value rows.
type SQLiteMarkerStore struct {
	db *sql.DB
}

// NewSQLiteMarkerStore creates a new SQLite marker store.
func NewSQLiteMarkerStore(db *sql.DB) *SQLiteMarkerStore {
	return &SQLiteMarkerStore{db: db}
}

// Get returns the stored value, or "" when the key is absent.
func (s *SQLiteMarkerStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM markers WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

// Set stores or replaces the value for a key.
func (s *SQLiteMarkerStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO markers (key, value) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}
