// Package analytics holds the aggregation, metric, recommendation and
// projection engine. Every function here is pure: it operates on records
// already in memory, never fails and never retains its inputs.
package analytics

import (
	"sort"
	"time"

	"perf-bi/internal/core/domain"
)

// Groups is an insertion-ordered multimap produced by GroupBy.
type Groups[T any] struct {
	keys  []string
	items map[string][]T
}

// GroupBy partitions records by key. Keys() returns keys in the order they
// were first seen.
func GroupBy[T any](records []T, key func(T) string) *Groups[T] {
	g := &Groups[T]{items: make(map[string][]T)}
	for _, r := range records {
		k := key(r)
		if _, ok := g.items[k]; !ok {
			g.keys = append(g.keys, k)
		}
		g.items[k] = append(g.items[k], r)
	}
	return g
}

// Keys returns group keys in first-seen order.
func (g *Groups[T]) Keys() []string { return append([]string(nil), g.keys...) }

// Get returns the records of key.
func (g *Groups[T]) Get(key string) []T { return g.items[key] }

// Len returns the number of groups.
func (g *Groups[T]) Len() int { return len(g.keys) }

// Each calls fn for every group in key order.
func (g *Groups[T]) Each(fn func(key string, items []T)) {
	for _, k := range g.keys {
		fn(k, g.items[k])
	}
}

// Grouper builds grouping keys for performance records. Offers are
// normalised through Aliases before any key is built so variant labels of
// the same offer fall into one group.
type Grouper struct {
	Aliases  *AliasTable
	Location *time.Location
}

// NewGrouper returns a Grouper. A nil alias table leaves offers untouched.
func NewGrouper(aliases *AliasTable, loc *time.Location) *Grouper {
	if loc == nil {
		loc = time.UTC
	}
	return &Grouper{Aliases: aliases, Location: loc}
}

// Normalize applies the record normalisation rules and returns a copy.
func (g *Grouper) Normalize(r domain.PerformanceRecord) domain.PerformanceRecord {
	r.Offer = g.Aliases.Canonical(r.Offer)
	return r
}

// NormalizeAll normalises every record.
func (g *Grouper) NormalizeAll(rs []domain.PerformanceRecord) []domain.PerformanceRecord {
	out := make([]domain.PerformanceRecord, len(rs))
	for i, r := range rs {
		out[i] = g.Normalize(r)
	}
	return out
}

// ByNetworkOffer keys records as "{network}-{offer}".
func (g *Grouper) ByNetworkOffer(r domain.PerformanceRecord) string {
	return r.Network + "-" + g.Aliases.Canonical(r.Offer)
}

// ByNetwork keys records by network.
func (g *Grouper) ByNetwork(r domain.PerformanceRecord) string { return r.Network }

// ByBuyer keys records by media buyer.
func (g *Grouper) ByBuyer(r domain.PerformanceRecord) string { return r.MediaBuyer }

// ByDay keys records by calendar day (YYYY-MM-DD).
func (g *Grouper) ByDay(r domain.PerformanceRecord) string {
	return domain.DayKey(r.Date, g.Location)
}

// ByMonth keys records by calendar month (YYYY-MM).
func (g *Grouper) ByMonth(r domain.PerformanceRecord) string {
	return domain.MonthKey(r.Date, g.Location)
}

// Reduce sums the records of one group. Per-period sub-totals are keyed
// by period (ByDay when nil) and sorted ascending; records without a
// period contribute to the totals only. DaysActive counts distinct
// calendar days with at least one record.
func (g *Grouper) Reduce(key string, rows []domain.PerformanceRecord, period func(domain.PerformanceRecord) string) domain.AggregateGroup {
	if period == nil {
		period = g.ByDay
	}
	agg := domain.AggregateGroup{Key: key, Label: key, Records: len(rows)}
	if len(rows) > 0 {
		agg.Network = rows[0].Network
		agg.Offer = g.Aliases.Canonical(rows[0].Offer)
	}

	days := make(map[string]struct{})
	byPeriod := make(map[string]*domain.PeriodTotal)
	for _, r := range rows {
		agg.TotalRevenue += r.TotalRevenue
		agg.TotalSpend += r.AdSpend
		if d := g.ByDay(r); d != "" {
			days[d] = struct{}{}
		}
		p := period(r)
		if p == "" {
			continue
		}
		pt, ok := byPeriod[p]
		if !ok {
			pt = &domain.PeriodTotal{Period: p}
			byPeriod[p] = pt
		}
		pt.Revenue += r.TotalRevenue
		pt.Spend += r.AdSpend
		pt.Margin += r.Margin()
	}
	agg.TotalMargin = agg.TotalRevenue - agg.TotalSpend
	agg.DaysActive = len(days)

	agg.Periods = make([]domain.PeriodTotal, 0, len(byPeriod))
	for _, pt := range byPeriod {
		agg.Periods = append(agg.Periods, *pt)
	}
	sort.Slice(agg.Periods, func(i, j int) bool { return agg.Periods[i].Period < agg.Periods[j].Period })
	return agg
}

// Aggregate groups rows with key and reduces every group, preserving
// first-seen key order.
func (g *Grouper) Aggregate(rows []domain.PerformanceRecord, key func(domain.PerformanceRecord) string) []domain.AggregateGroup {
	groups := GroupBy(rows, key)
	out := make([]domain.AggregateGroup, 0, groups.Len())
	groups.Each(func(k string, items []domain.PerformanceRecord) {
		out = append(out, g.Reduce(k, items, nil))
	})
	return out
}

// Filter returns the records whose date lies in [from, to] (inclusive, day
// granularity) and whose network matches when network is non-empty. Zero
// bounds are open.
func (g *Grouper) Filter(rows []domain.PerformanceRecord, from, to time.Time, network string) []domain.PerformanceRecord {
	if !from.IsZero() {
		from = domain.Truncate(from, g.Location)
	}
	if !to.IsZero() {
		to = domain.Truncate(to, g.Location)
	}
	out := make([]domain.PerformanceRecord, 0, len(rows))
	for _, r := range rows {
		if network != "" && !equalFold(r.Network, network) {
			continue
		}
		if !from.IsZero() || !to.IsZero() {
			if r.Date.IsZero() {
				continue
			}
			d := domain.Truncate(r.Date, g.Location)
			if !from.IsZero() && d.Before(from) {
				continue
			}
			if !to.IsZero() && d.After(to) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
