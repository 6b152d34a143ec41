// Package sqlite implements port.KVStore on a local SQLite file for
// single-node deployments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"perf-bi/internal/core/port"
)

// KVStore stores entries in the kv_entries table.
type KVStore struct {
	db *sql.DB
}

var _ port.KVStore = (*KVStore)(nil)

// NewKVStore wraps an open, migrated database handle.
func NewKVStore(db *sql.DB) *KVStore {
	return &KVStore{db: db}
}

// Get implements port.KVStore.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return v, true, nil
}

// Put implements port.KVStore.
func (s *KVStore) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

// Delete implements port.KVStore.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_entries WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// List implements port.KVStore. SQLite's LIKE is case-insensitive, so the
// prefix is compared with substr instead.
func (s *KVStore) List(ctx context.Context, prefix string) (map[string]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, value FROM kv_entries
		WHERE substr(key, 1, length(?1)) = ?1
		ORDER BY key
	`, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %q: %w", prefix, err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("scan kv entry: %w", err)
		}
		out[k] = v
	}
	return out, rows.Err()
}
