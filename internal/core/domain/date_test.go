package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "1/2/2024", want: "2024-01-02", ok: true},
		{raw: "12/31/2023", want: "2023-12-31", ok: true},
		{raw: "2024-03-05", want: "2024-03-05", ok: true},
		{raw: "2024-3-5", want: "2024-03-05", ok: true},
		{raw: "2024-03-05T23:30:00Z", want: "2024-03-05", ok: true},
		{raw: "Jan 2, 2024", want: "2024-01-02", ok: true},
		{raw: "January 15, 2024", want: "2024-01-15", ok: true},
		{raw: " 7/4/2024 ", want: "2024-07-04", ok: true},
		{raw: "2/30/2024", ok: false},
		{raw: "13/1/2024", ok: false},
		{raw: "yesterday", ok: false},
		{raw: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseDate(tt.raw, la)
			require.Equal(t, tt.ok, ok)
			if !tt.ok {
				assert.True(t, got.IsZero())
				return
			}
			assert.Equal(t, tt.want, got.Format(DayLayout))
			assert.Equal(t, la, got.Location())
			assert.Zero(t, got.Hour())
		})
	}
}

func TestSameDay(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	// 06:00 UTC on Jan 2 is still Jan 1 in Los Angeles.
	a := time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC)
	b := time.Date(2024, 1, 1, 9, 0, 0, 0, la)
	assert.True(t, SameDay(a, b, la))
	assert.False(t, SameDay(a, b, time.UTC))
	assert.False(t, SameDay(time.Time{}, b, la))
	assert.False(t, SameDay(time.Time{}, time.Time{}, la))
}

func TestAddDaysAcrossDST(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	start := time.Date(2024, 3, 9, 0, 0, 0, 0, la)
	next := AddDays(start, 1)
	assert.Equal(t, "2024-03-10", next.Format(DayLayout))
	assert.Zero(t, next.Hour())
	assert.Equal(t, "2024-03-11", AddDays(start, 2).Format(DayLayout))
}

func TestKeys(t *testing.T) {
	d := time.Date(2024, 2, 29, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-02-29", DayKey(d, time.UTC))
	assert.Equal(t, "2024-02", MonthKey(d, time.UTC))
	assert.Equal(t, "", DayKey(time.Time{}, time.UTC))
	assert.Equal(t, "", MonthKey(time.Time{}, time.UTC))
}

func TestSerialDate(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	got, ok := SerialDate(45292, la)
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", got.Format(DayLayout))
	assert.Equal(t, la, got.Location())

	got, ok = SerialDate(60.5, time.UTC)
	require.True(t, ok)
	assert.Equal(t, "1900-02-28", got.Format(DayLayout))

	for _, bad := range []float64{0, -1, 3e6} {
		_, ok := SerialDate(bad, time.UTC)
		assert.False(t, ok, bad)
	}
}
