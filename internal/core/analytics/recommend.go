package analytics

import (
	"sort"

	"perf-bi/internal/core/domain"
)

// Thresholds of the scaling decision list. These are business heuristics
// and must only change with product sign-off.
const (
	minDaysForSignal     = 3
	learningDays         = 7
	minMarginForVolume   = 500.0
	suspiciousROI        = 200.0
	scaleBackROI         = 10.0
	aggressiveROI        = 50.0
	aggressiveConsist    = 70.0
	cautiousROI          = 25.0
	cautiousConsist      = 50.0
	cautiousTrend        = 10.0
	maintainROI          = 15.0
	reviewConsistency    = 40.0
	reviewDecliningTrend = -20.0
)

// Recommend classifies metrics with an ordered decision list. The first
// matching rule wins, so rule order is part of the contract.
func Recommend(m domain.PerformanceMetrics) domain.Recommendation {
	switch {
	case m.DaysActive < minDaysForSignal:
		return domain.InsufficientData
	case m.ROI > suspiciousROI && m.TotalMargin < minMarginForVolume:
		return domain.DataReview
	case m.DaysActive < learningDays:
		return domain.Learning
	case m.TotalMargin < minMarginForVolume:
		return domain.LowVolume
	case m.ROI < scaleBackROI || m.TotalMargin < 0:
		return domain.ScaleBack
	case m.ROI >= aggressiveROI && m.Consistency >= aggressiveConsist && m.MarginTrend >= 0:
		return domain.ScaleAggressive
	case m.ROI >= cautiousROI && (m.Consistency >= cautiousConsist || m.MarginTrend >= cautiousTrend):
		return domain.ScaleCautious
	case m.ROI >= maintainROI && m.ROI < cautiousROI:
		return domain.Maintain
	case m.Consistency < reviewConsistency || m.MarginTrend < reviewDecliningTrend:
		return domain.DataReview
	default:
		return domain.Maintain
	}
}

// OfferAnalysis bundles a group with its metrics and recommendation.
type OfferAnalysis struct {
	Group          domain.AggregateGroup     `json:"group"`
	Metrics        domain.PerformanceMetrics `json:"metrics"`
	Recommendation domain.RecommendationInfo `json:"recommendation"`
}

// Analyze computes metrics and a recommendation for every group. Groups
// with revenue but no spend are flagged Monitor instead of being run
// through the decision list.
func Analyze(groups []domain.AggregateGroup) []OfferAnalysis {
	out := make([]OfferAnalysis, 0, len(groups))
	for _, g := range groups {
		m := Compute(g)
		rec := Recommend(m)
		if g.TotalSpend == 0 && g.TotalRevenue > 0 && m.DaysActive >= minDaysForSignal {
			rec = domain.Monitor
		}
		out = append(out, OfferAnalysis{Group: g, Metrics: m, Recommendation: rec.Info()})
	}
	return out
}

// RankOffers orders analyses by performance score, then ROI, then key, all
// descending except the key.
func RankOffers(as []OfferAnalysis) {
	sort.SliceStable(as, func(i, j int) bool {
		a, b := as[i].Metrics, as[j].Metrics
		if a.PerformanceScore != b.PerformanceScore {
			return a.PerformanceScore > b.PerformanceScore
		}
		if a.ROI != b.ROI {
			return a.ROI > b.ROI
		}
		return as[i].Group.Key < as[j].Group.Key
	})
}

// CountByRecommendation tallies analyses per category.
func CountByRecommendation(as []OfferAnalysis) map[domain.Recommendation]int {
	out := make(map[domain.Recommendation]int)
	for _, a := range as {
		out[a.Recommendation.Code]++
	}
	return out
}
