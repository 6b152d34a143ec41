package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"perf-bi/internal/core/port"
)

// KVRepository implements port.KVStore on the kv_entries table using
// pgxpool.
type KVRepository struct {
	pool *pgxpool.Pool
}

var _ port.KVStore = (*KVRepository)(nil)

// NewKVRepository returns a new repository instance.
func NewKVRepository(pool *pgxpool.Pool) *KVRepository {
	return &KVRepository{pool: pool}
}

// Get returns the value stored under key.
func (r *KVRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := r.pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1`, key).Scan(&v)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Put upserts key.
func (r *KVRepository) Put(ctx context.Context, key, value string) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO kv_entries (key, value, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value)
	return err
}

// Delete removes key; a missing key is not an error.
func (r *KVRepository) Delete(ctx context.Context, key string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key)
	return err
}

// List returns all entries whose key starts with prefix.
func (r *KVRepository) List(ctx context.Context, prefix string) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT key, value FROM kv_entries WHERE key LIKE $1 ESCAPE '\' ORDER BY key`, likePrefix(prefix))
	if err != nil {
		return nil, err
	}
	type entry struct {
		Key   string
		Value string
	}
	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entry])
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Key] = e.Value
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePrefix escapes LIKE wildcards in prefix and appends "%".
func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
