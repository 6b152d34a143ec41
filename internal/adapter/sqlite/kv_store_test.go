package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perf-bi/internal/config/configs"
	"perf-bi/internal/db"
)

func openTestStore(t *testing.T) *KVStore {
	t.Helper()
	conn, err := db.OpenSQLite(configs.SQLite{Path: filepath.Join(t.TempDir(), "kv.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewKVStore(conn)
}

func TestKVStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, ok, err := s.Get(ctx, "note:offers:A-X")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "note:offers:A-X", "first"))
	require.NoError(t, s.Put(ctx, "note:offers:A-X", "second"))

	v, ok, err := s.Get(ctx, "note:offers:A-X")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", v)

	require.NoError(t, s.Delete(ctx, "note:offers:A-X"))
	require.NoError(t, s.Delete(ctx, "note:offers:A-X"))
	_, ok, err = s.Get(ctx, "note:offers:A-X")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKVStoreListIsCaseSensitivePrefix(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Put(ctx, "flag:invoices:1", "1"))
	require.NoError(t, s.Put(ctx, "flag:invoices:2", "1"))
	require.NoError(t, s.Put(ctx, "FLAG:invoices:3", "1"))
	require.NoError(t, s.Put(ctx, "flag:payroll:1", "1"))

	got, err := s.List(ctx, "flag:invoices:")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"flag:invoices:1": "1", "flag:invoices:2": "1"}, got)
}

func TestOpenSQLiteIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	for i := 0; i < 2; i++ {
		conn, err := db.OpenSQLite(configs.SQLite{Path: path})
		require.NoError(t, err)
		require.NoError(t, conn.Close())
	}
}
