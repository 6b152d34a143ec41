package analytics

import (
	"math"

	"perf-bi/internal/core/domain"
)

// ROI returns margin as a percentage of spend, or 0 without spend.
func ROI(margin, spend float64) float64 {
	if spend > 0 {
		return margin / spend * 100
	}
	return 0
}

// MarginPct returns margin as a percentage of revenue, or 0 without revenue.
func MarginPct(margin, revenue float64) float64 {
	if revenue != 0 {
		return margin / revenue * 100
	}
	return 0
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var s float64
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}

// stdDev is the population standard deviation.
func stdDev(xs []float64, m float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var s float64
	for _, x := range xs {
		s += (x - m) * (x - m)
	}
	return math.Sqrt(s / float64(len(xs)))
}

// Consistency scores the stability of a series on 0..100 as 100 minus its
// coefficient of variation in percent. A flat (or empty) series scores
// 100; a series averaging zero with any variation scores 0.
func Consistency(series []float64) float64 {
	m := mean(series)
	sd := stdDev(series, m)
	if sd == 0 {
		return 100
	}
	if m == 0 {
		return 0
	}
	return clamp(100-(sd/math.Abs(m))*100, 0, 100)
}

// Trend compares the average of the second half of series with the first
// half, as a percentage of the first. The split is at floor(n/2); a zero
// first-half average yields 0.
func Trend(series []float64) float64 {
	mid := len(series) / 2
	first := mean(series[:mid])
	second := mean(series[mid:])
	if first == 0 {
		return 0
	}
	return (second - first) / math.Abs(first) * 100
}

// PerformanceScore blends ROI, consistency, trend and daily volume into a
// roughly 0..100 score. Each term is clamped on its own; the sum is not.
func PerformanceScore(roi, consistency, volumeTrend, marginTrend, totalMargin float64, daysActive int) float64 {
	avgDaily := 0.0
	if daysActive > 0 {
		avgDaily = totalMargin / float64(daysActive)
	}
	roiTerm := math.Min(40, roi/5)
	consistencyTerm := consistency * 0.2
	trendTerm := clamp((volumeTrend+marginTrend)/2*0.5, 0, 20)
	volumeTerm := math.Min(20, math.Max(0, avgDaily/50))
	return math.Round(roiTerm + consistencyTerm + trendTerm + volumeTerm)
}

// Compute derives PerformanceMetrics from a group.
func Compute(g domain.AggregateGroup) domain.PerformanceMetrics {
	margins := g.MarginSeries()
	m := domain.PerformanceMetrics{
		ROI:          ROI(g.TotalMargin, g.TotalSpend),
		Consistency:  Consistency(margins),
		MarginTrend:  Trend(margins),
		VolumeTrend:  Trend(g.SpendSeries()),
		DaysActive:   g.DaysActive,
		TotalRevenue: g.TotalRevenue,
		TotalSpend:   g.TotalSpend,
		TotalMargin:  g.TotalMargin,
	}
	if g.DaysActive > 0 {
		m.AvgDailyMargin = g.TotalMargin / float64(g.DaysActive)
	}
	m.PerformanceScore = PerformanceScore(m.ROI, m.Consistency, m.VolumeTrend, m.MarginTrend, m.TotalMargin, m.DaysActive)
	return m
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
