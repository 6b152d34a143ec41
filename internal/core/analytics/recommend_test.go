package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"perf-bi/internal/core/domain"
)

func TestRecommendDecisionList(t *testing.T) {
	tests := []struct {
		name string
		m    domain.PerformanceMetrics
		want domain.Recommendation
	}{
		{
			name: "too few days wins over everything",
			m:    domain.PerformanceMetrics{DaysActive: 2, ROI: 300, TotalMargin: 100},
			want: domain.InsufficientData,
		},
		{
			name: "suspicious roi on low volume",
			m:    domain.PerformanceMetrics{DaysActive: 3, ROI: 250, TotalMargin: 200},
			want: domain.DataReview,
		},
		{
			name: "high roi with volume is still learning",
			m:    domain.PerformanceMetrics{DaysActive: 5, ROI: 250, TotalMargin: 5000},
			want: domain.Learning,
		},
		{
			name: "learning",
			m:    domain.PerformanceMetrics{DaysActive: 6, ROI: 60, Consistency: 90, TotalMargin: 1000},
			want: domain.Learning,
		},
		{
			name: "low volume",
			m:    domain.PerformanceMetrics{DaysActive: 10, ROI: 50, Consistency: 80, MarginTrend: 5, TotalMargin: 50},
			want: domain.LowVolume,
		},
		{
			name: "scale back on weak roi",
			m:    domain.PerformanceMetrics{DaysActive: 10, ROI: 9.9, Consistency: 90, TotalMargin: 600},
			want: domain.ScaleBack,
		},
		{
			name: "scale aggressive",
			m:    domain.PerformanceMetrics{DaysActive: 10, ROI: 50, Consistency: 80, MarginTrend: 5, TotalMargin: 600},
			want: domain.ScaleAggressive,
		},
		{
			name: "declining margin falls to cautious",
			m:    domain.PerformanceMetrics{DaysActive: 10, ROI: 50, Consistency: 80, MarginTrend: -1, TotalMargin: 600},
			want: domain.ScaleCautious,
		},
		{
			name: "cautious on trend alone",
			m:    domain.PerformanceMetrics{DaysActive: 10, ROI: 30, Consistency: 20, MarginTrend: 10, TotalMargin: 600},
			want: domain.ScaleCautious,
		},
		{
			name: "maintain band",
			m:    domain.PerformanceMetrics{DaysActive: 10, ROI: 20, Consistency: 10, MarginTrend: -50, TotalMargin: 600},
			want: domain.Maintain,
		},
		{
			name: "erratic margins need review",
			m:    domain.PerformanceMetrics{DaysActive: 10, ROI: 12, Consistency: 30, TotalMargin: 600},
			want: domain.DataReview,
		},
		{
			name: "steep decline needs review",
			m:    domain.PerformanceMetrics{DaysActive: 10, ROI: 30, Consistency: 45, MarginTrend: -25, TotalMargin: 600},
			want: domain.DataReview,
		},
		{
			name: "fallback maintain",
			m:    domain.PerformanceMetrics{DaysActive: 10, ROI: 12, Consistency: 60, TotalMargin: 600},
			want: domain.Maintain,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recommend(tt.m))
		})
	}
}

func TestRecommendNeverMonitor(t *testing.T) {
	for days := 0; days < 15; days++ {
		for _, roi := range []float64{-50, 0, 10, 25, 50, 250} {
			got := Recommend(domain.PerformanceMetrics{DaysActive: days, ROI: roi, TotalMargin: 600, Consistency: 50})
			assert.NotEqual(t, domain.Monitor, got)
		}
	}
}

func TestAnalyzeAndRank(t *testing.T) {
	mk := func(key string, days int, spend, revenue float64) domain.AggregateGroup {
		g := domain.AggregateGroup{Key: key, DaysActive: days, TotalSpend: spend, TotalRevenue: revenue, TotalMargin: revenue - spend}
		for i := 0; i < days; i++ {
			g.Periods = append(g.Periods, domain.PeriodTotal{
				Period: day(i + 1).Format(domain.DayLayout),
				Spend:  spend / float64(days),
				Margin: (revenue - spend) / float64(days),
			})
		}
		return g
	}
	as := Analyze([]domain.AggregateGroup{
		mk("weak", 10, 10000, 10500),
		mk("strong", 10, 1000, 1600),
		mk("organic", 4, 0, 200),
		mk("same-b", 10, 10000, 10500),
	})
	RankOffers(as)

	keys := make([]string, len(as))
	for i, a := range as {
		keys[i] = a.Group.Key
	}
	// Equal score and ROI fall back to key order.
	assert.Equal(t, []string{"strong", "same-b", "weak", "organic"}, keys)
	assert.Equal(t, domain.ScaleAggressive, as[0].Recommendation.Code)
	assert.Equal(t, "Scale Aggressively", as[0].Recommendation.Label)

	counts := CountByRecommendation(as)
	assert.Equal(t, 1, counts[domain.Monitor])
	assert.Equal(t, 1, counts[domain.ScaleAggressive])
	assert.Equal(t, 2, counts[domain.ScaleBack])
}
