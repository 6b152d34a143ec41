package demo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perf-bi/internal/core/domain"
)

func TestSourceIsDeterministic(t *testing.T) {
	anchor := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	a := New(7, anchor, 30)
	b := New(7, anchor, 30)

	for _, ds := range []string{domain.DatasetPerformance, domain.DatasetInvoices, domain.DatasetPayroll, domain.DatasetResources, domain.DatasetTerms} {
		ra, err := a.Fetch(context.Background(), ds)
		require.NoError(t, err)
		rb, err := b.Fetch(context.Background(), ds)
		require.NoError(t, err)
		assert.Equal(t, ra, rb, ds)
		assert.NotEmpty(t, ra, ds)
	}
}

func TestSourceRowsDecodeCleanly(t *testing.T) {
	s := New(1, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 20)
	rows, err := s.Fetch(context.Background(), domain.DatasetPerformance)
	require.NoError(t, err)

	recs, rep := domain.NewDecoder(time.UTC).Performance(rows)
	assert.Len(t, recs, len(rows))
	assert.Empty(t, rep.Defaulted)
	for _, r := range recs {
		assert.False(t, r.Date.IsZero())
		assert.Greater(t, r.AdSpend, 0.0)
	}
}

func TestSourceReturnsCopies(t *testing.T) {
	s := New(1, time.Now(), 10)
	rows, err := s.Fetch(context.Background(), domain.DatasetResources)
	require.NoError(t, err)
	rows[0]["Balance"] = "tampered"

	again, err := s.Fetch(context.Background(), domain.DatasetResources)
	require.NoError(t, err)
	assert.NotEqual(t, "tampered", again[0]["Balance"])
}

func TestSourceUnknownDataset(t *testing.T) {
	rows, err := New(1, time.Now(), 10).Fetch(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSourceHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(1, time.Now(), 10).Fetch(ctx, domain.DatasetPayroll)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRollingSourceFollowsClock(t *testing.T) {
	now := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	s := NewRolling(3, func() time.Time { return now }, 10)
	dec := domain.NewDecoder(time.UTC)

	latest := func() time.Time {
		rows, err := s.Fetch(context.Background(), domain.DatasetPerformance)
		require.NoError(t, err)
		recs, _ := dec.Performance(rows)
		var last time.Time
		for _, r := range recs {
			if r.Date.After(last) {
				last = r.Date
			}
		}
		return last
	}

	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), latest())
	now = now.Add(3 * time.Hour)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), latest())
	now = now.AddDate(0, 0, 3)
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), latest())
}
