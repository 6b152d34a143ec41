package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"perf-bi/internal/core/domain"
)

func TestROIAndMarginPct(t *testing.T) {
	assert.InDelta(t, 50, ROI(50, 100), 1e-9)
	assert.Zero(t, ROI(50, 0))
	assert.Zero(t, ROI(50, -10))
	assert.InDelta(t, 25, MarginPct(25, 100), 1e-9)
	assert.Zero(t, MarginPct(25, 0))
}

func TestConsistency(t *testing.T) {
	assert.Equal(t, 100.0, Consistency(nil))
	assert.Equal(t, 100.0, Consistency([]float64{7, 7, 7}))
	assert.Equal(t, 0.0, Consistency([]float64{-5, 5}))
	// mean 20, population sd 10 -> CV 50%.
	assert.InDelta(t, 50, Consistency([]float64{10, 30}), 1e-9)

	for _, s := range [][]float64{{1, 100, -50}, {0, 0, 1}, {-3, -4, -5}, {1e9, -1e9, 3}} {
		c := Consistency(s)
		assert.GreaterOrEqual(t, c, 0.0)
		assert.LessOrEqual(t, c, 100.0)
	}
}

func TestTrend(t *testing.T) {
	assert.Zero(t, Trend(nil))
	assert.Zero(t, Trend([]float64{5}))
	assert.Zero(t, Trend([]float64{4, 4, 4, 4}))
	assert.InDelta(t, 100, Trend([]float64{10, 10, 20, 20}), 1e-9)
	// Odd length: first half is [10], second [20, 30].
	assert.InDelta(t, 150, Trend([]float64{10, 20, 30}), 1e-9)
	assert.InDelta(t, -50, Trend([]float64{-10, -15}), 1e-9)
	assert.Zero(t, Trend([]float64{0, 10}))
}

func TestPerformanceScore(t *testing.T) {
	// roi 50 -> 10, consistency 80 -> 16, trends 0 -> 0, 50/day -> 1.
	assert.Equal(t, 27.0, PerformanceScore(50, 80, 0, 0, 500, 10))
	// Every term saturates.
	assert.Equal(t, 100.0, PerformanceScore(1000, 100, 100, 100, 1e6, 1))
	// Negative ROI pulls the score down, trend and volume floor at 0.
	assert.Equal(t, -20.0, PerformanceScore(-100, 0, -50, -50, -100, 5))
	assert.Equal(t, 0.0, PerformanceScore(0, 0, 0, 0, 0, 0))
}

func TestCompute(t *testing.T) {
	g := domain.AggregateGroup{
		TotalSpend:   100,
		TotalRevenue: 150,
		TotalMargin:  50,
		DaysActive:   2,
		Periods: []domain.PeriodTotal{
			{Period: "2024-01-01", Spend: 50, Revenue: 70, Margin: 20},
			{Period: "2024-01-02", Spend: 50, Revenue: 80, Margin: 30},
		},
	}
	m := Compute(g)
	assert.InDelta(t, 50, m.ROI, 1e-9)
	assert.InDelta(t, 50, m.MarginTrend, 1e-9)
	assert.Zero(t, m.VolumeTrend)
	assert.InDelta(t, 80, m.Consistency, 1e-9)
	assert.InDelta(t, 25, m.AvgDailyMargin, 1e-9)
	assert.Equal(t, 2, m.DaysActive)
}
