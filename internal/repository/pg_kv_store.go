package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxQuerier es el subconjunto de *pgxpool.Pool que usa el store.
type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PgKVStore struct {
	pool pgxQuerier
	now  func() time.Time
}

func NewPgKVStore(pool *pgxpool.Pool) *PgKVStore {
	return &PgKVStore{pool: pool, now: time.Now}
}

func (r *PgKVStore) Put(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}
	const query = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`
	now := time.Now
	if r.now != nil {
		now = r.now
	}
	_, err := r.pool.Exec(ctx, query, key, value, now().UTC())
	return err
}

func (r *PgKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	const query = `
		SELECT value
		FROM kv_entries
		WHERE key = $1
	`
	var value string
	err := r.pool.QueryRow(ctx, query, strings.TrimSpace(key)).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}
