package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKVStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	_, ok, err := s.Get(ctx, "note:offers:a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Put(ctx, "note:offers:a", "hello"))
	require.NoError(t, s.Put(ctx, "flag:offers:b", "1"))

	v, ok, err := s.Get(ctx, "note:offers:a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello", v)

	notes, err := s.List(ctx, "note:")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"note:offers:a": "hello"}, notes)

	require.NoError(t, s.Delete(ctx, "note:offers:a"))
	require.NoError(t, s.Delete(ctx, "missing"))
	_, ok, _ = s.Get(ctx, "note:offers:a")
	assert.False(t, ok)
}

func TestKVStoreConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Put(ctx, fmt.Sprintf("flag:x:%d", i), "1")
		}(i)
	}
	wg.Wait()

	all, err := s.List(ctx, "flag:x:")
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
