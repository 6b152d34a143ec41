package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perf-bi/internal/core/domain"
)

func day(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

func rec(d int, network, offer string, spend, revenue float64) domain.PerformanceRecord {
	return domain.PerformanceRecord{Date: day(d), Network: network, Offer: offer, AdSpend: spend, TotalRevenue: revenue}
}

func TestGroupByKeepsInsertionOrder(t *testing.T) {
	g := GroupBy([]string{"b1", "a1", "b2", "c1", "a2"}, func(s string) string { return s[:1] })
	assert.Equal(t, []string{"b", "a", "c"}, g.Keys())
	assert.Equal(t, []string{"a1", "a2"}, g.Get("a"))
	assert.Equal(t, 3, g.Len())
	assert.Nil(t, g.Get("z"))
}

func TestAggregateConservesTotals(t *testing.T) {
	rows := []domain.PerformanceRecord{
		rec(1, "A", "X", 10, 15),
		rec(1, "A", "X", 5, 5),
		rec(2, "A", "X", 20, 40),
		rec(1, "B", "X", 7, 3),
		rec(3, "A", "Y", 1, 0),
		{Network: "A", Offer: "X", AdSpend: 2, TotalRevenue: 4},
	}
	g := NewGrouper(nil, time.UTC)
	groups := g.Aggregate(rows, g.ByNetworkOffer)
	require.Len(t, groups, 3)
	assert.Equal(t, "A-X", groups[0].Key)
	assert.Equal(t, "B-X", groups[1].Key)
	assert.Equal(t, "A-Y", groups[2].Key)

	var spend, revenue float64
	for _, gr := range groups {
		spend += gr.TotalSpend
		revenue += gr.TotalRevenue
		assert.InDelta(t, gr.TotalRevenue-gr.TotalSpend, gr.TotalMargin, 1e-9)
	}
	assert.InDelta(t, 45, spend, 1e-9)
	assert.InDelta(t, 67, revenue, 1e-9)

	ax := groups[0]
	assert.Equal(t, 4, ax.Records)
	assert.Equal(t, 2, ax.DaysActive)
	require.Len(t, ax.Periods, 2)
	assert.Equal(t, "2024-01-01", ax.Periods[0].Period)
	assert.InDelta(t, 5, ax.Periods[0].Margin, 1e-9)
	assert.InDelta(t, 20, ax.Periods[1].Margin, 1e-9)
	assert.InDelta(t, 27, ax.TotalMargin, 1e-9)
}

func TestGrouperAppliesAliases(t *testing.T) {
	aliases := NewAliasTable(map[string]string{"SB": "Solar Banner"}, []string{" Edge"}, 0)
	g := NewGrouper(aliases, time.UTC)
	rows := []domain.PerformanceRecord{
		rec(1, "A", "Solar Banner", 1, 2),
		rec(2, "A", "Solar Banner Edge", 1, 2),
		rec(3, "A", "sb", 1, 2),
	}
	groups := g.Aggregate(rows, g.ByNetworkOffer)
	require.Len(t, groups, 1)
	assert.Equal(t, "A-Solar Banner", groups[0].Key)
	assert.Equal(t, "Solar Banner", groups[0].Offer)
	assert.Equal(t, 3, groups[0].DaysActive)
	assert.Equal(t, "Solar Banner", g.NormalizeAll(rows)[1].Offer)
}

func TestDaysActiveUsesReportingTimezone(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	g := NewGrouper(nil, la)
	// Both instants fall on Jan 1 in Los Angeles.
	rows := []domain.PerformanceRecord{
		{Date: time.Date(2024, 1, 1, 20, 0, 0, 0, time.UTC), Network: "A", Offer: "X"},
		{Date: time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC), Network: "A", Offer: "X"},
	}
	assert.Equal(t, 1, g.Reduce("A-X", rows, nil).DaysActive)
}

func TestFilter(t *testing.T) {
	g := NewGrouper(nil, time.UTC)
	rows := []domain.PerformanceRecord{
		rec(1, "A", "X", 1, 1),
		rec(2, "B", "X", 1, 1),
		rec(3, "A", "X", 1, 1),
		{Network: "A", Offer: "X"},
	}
	assert.Len(t, g.Filter(rows, time.Time{}, time.Time{}, ""), 4)
	assert.Len(t, g.Filter(rows, time.Time{}, time.Time{}, "a"), 3)
	assert.Len(t, g.Filter(rows, day(2), day(3), ""), 2)
	assert.Len(t, g.Filter(rows, day(2), time.Time{}, "A"), 1)
	assert.Empty(t, g.Filter(rows, day(5), time.Time{}, ""))
}

func TestAliasTable(t *testing.T) {
	tbl := NewAliasTable(map[string]string{"Auto Q": "Auto Quotes"}, []string{" Edge", " v2"}, 2).
		Known("Debt Relief", "Home Warranty")

	assert.Equal(t, "Auto Quotes", tbl.Canonical("auto q"))
	assert.Equal(t, "X Banner", tbl.Canonical("X Banner Edge"))
	assert.Equal(t, "Auto Quotes", tbl.Canonical("Auto Q v2"))
	assert.Equal(t, "Debt Relief", tbl.Canonical("Debt Releif"))
	assert.Equal(t, "Home Warranty", tbl.Canonical("home warranty"))
	assert.Equal(t, "Something Else", tbl.Canonical(" Something Else "))
	assert.Equal(t, "Edge", tbl.Canonical("Edge"))
	assert.Equal(t, 1, tbl.Len())

	folded := NewAliasTable(nil, []string{"ⱥⱥⱥ", " \u212A"}, 0)
	assert.Equal(t, "x", folded.Canonical("xȺȺȺ"))
	assert.Equal(t, "ȺȺȺ", folded.Canonical("ȺȺȺ"))
	assert.Equal(t, "Solar", folded.Canonical("Solar k"))
	assert.Equal(t, "Solar", folded.Canonical("Solar \u212A"))

	var nilTable *AliasTable
	assert.Equal(t, "X Banner Edge", nilTable.Canonical(" X Banner Edge "))
	assert.Equal(t, 0, nilTable.Len())
}
