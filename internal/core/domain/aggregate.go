package domain

// PeriodTotal holds the sums of one period (usually a calendar day) inside
// an AggregateGroup.
type PeriodTotal struct {
	Period  string  `json:"period"`
	Revenue float64 `json:"revenue"`
	Spend   float64 `json:"spend"`
	Margin  float64 `json:"margin"`
}

// AggregateGroup is the reduction of all records sharing a grouping key.
// Periods is ordered ascending by Period and is the input of the trend
// and consistency calculations. Groups are rebuilt on every computation
// pass and never stored.
type AggregateGroup struct {
	Key          string        `json:"key"`
	Label        string        `json:"label"`
	Network      string        `json:"network,omitempty"`
	Offer        string        `json:"offer,omitempty"`
	TotalRevenue float64       `json:"total_revenue"`
	TotalSpend   float64       `json:"total_spend"`
	TotalMargin  float64       `json:"total_margin"`
	DaysActive   int           `json:"days_active"`
	Records      int           `json:"records"`
	Periods      []PeriodTotal `json:"periods,omitempty"`
}

// MarginSeries returns per-period margins in period order.
func (g AggregateGroup) MarginSeries() []float64 {
	out := make([]float64, len(g.Periods))
	for i, p := range g.Periods {
		out[i] = p.Margin
	}
	return out
}

// SpendSeries returns per-period spend in period order.
func (g AggregateGroup) SpendSeries() []float64 {
	out := make([]float64, len(g.Periods))
	for i, p := range g.Periods {
		out[i] = p.Spend
	}
	return out
}

// PerformanceMetrics is derived from exactly one AggregateGroup.
type PerformanceMetrics struct {
	ROI              float64 `json:"roi"`
	Consistency      float64 `json:"consistency"`
	MarginTrend      float64 `json:"margin_trend"`
	VolumeTrend      float64 `json:"volume_trend"`
	PerformanceScore float64 `json:"performance_score"`
	DaysActive       int     `json:"days_active"`
	TotalRevenue     float64 `json:"total_revenue"`
	TotalSpend       float64 `json:"total_spend"`
	TotalMargin      float64 `json:"total_margin"`
	AvgDailyMargin   float64 `json:"avg_daily_margin"`
}
