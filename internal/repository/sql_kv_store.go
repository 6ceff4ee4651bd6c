package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

// SQLKVStore implementa KVStore sobre database/sql con placeholders "?".
// Se usa con el archivo sqlite local.
type SQLKVStore struct {
	DB *sql.DB
}

func NewSQLKVStore(db *sql.DB) *SQLKVStore {
	return &SQLKVStore{DB: db}
}

func (r *SQLKVStore) Put(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	const query = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := r.DB.ExecContext(ctx, query, key, value, time.Now().UTC())
	return err
}

func (r *SQLKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv_entries WHERE key = ?`
	var value string
	err := r.DB.QueryRowContext(ctx, query, strings.TrimSpace(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
