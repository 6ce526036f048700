package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed KeyValueStore for durable user preferences (basket, saved
// places, home, traffic time). Shares the application database.
type SqliteStore struct {
	DB *sql.DB
}

func NewSqliteStore(db *sql.DB) *SqliteStore {
	return &SqliteStore{DB: db}
}

func (s *SqliteStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.DB == nil {
		return "", false, errors.New("kv store: db is nil")
	}

	var value string
	err := s.DB.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?;`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}

	return value, true, nil
}

func (s *SqliteStore) Set(ctx context.Context, key, value string) error {
	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}

	q := `INSERT OR REPLACE INTO kv_store (key, value) VALUES (?, ?);`
	if _, err := s.DB.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (s *SqliteStore) Delete(ctx context.Context, key string) error {
	if s.DB == nil {
		return errors.New("kv store: db is nil")
	}

	if _, err := s.DB.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?;`, key); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}
