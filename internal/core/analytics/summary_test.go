package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perf-bi/internal/core/domain"
)

func TestBuyerTotals(t *testing.T) {
	g := NewGrouper(NewAliasTable(nil, []string{" Edge"}, 0), time.UTC)
	rows := []domain.PerformanceRecord{
		{Date: day(1), Network: "A", Offer: "X", MediaBuyer: "Sam", AdSpend: 10, TotalRevenue: 20},
		{Date: day(2), Network: "A", Offer: "X Edge", MediaBuyer: "Sam", AdSpend: 10, TotalRevenue: 20},
		{Date: day(1), Network: "B", Offer: "Y", MediaBuyer: "Alex", AdSpend: 10, TotalRevenue: 100},
		{Date: day(1), Network: "B", Offer: "Y", MediaBuyer: " ", AdSpend: 10, TotalRevenue: 5},
	}
	out := g.BuyerTotals(rows)
	require.Len(t, out, 3)
	assert.Equal(t, "Alex", out[0].Key)
	assert.InDelta(t, 900, out[0].ROI, 1e-9)
	assert.Equal(t, "Sam", out[1].Key)
	assert.Equal(t, 1, out[1].Offers)
	assert.Equal(t, 2, out[1].DaysActive)
	assert.InDelta(t, 50, out[1].MarginPct, 1e-9)
	assert.Equal(t, "Unassigned", out[2].Key)
}

func TestPeriodTotals(t *testing.T) {
	g := NewGrouper(nil, time.UTC)
	rows := []domain.PerformanceRecord{
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), AdSpend: 1, TotalRevenue: 2},
		{Date: day(3), AdSpend: 1, TotalRevenue: 3},
		{Date: day(1), AdSpend: 1, TotalRevenue: 4},
		{Date: day(3), AdSpend: 1, TotalRevenue: 5},
		{AdSpend: 100},
	}
	daily := g.DailyTotals(rows)
	require.Len(t, daily, 3)
	assert.Equal(t, []string{"2024-01-01", "2024-01-03", "2024-02-01"}, []string{daily[0].Key, daily[1].Key, daily[2].Key})
	assert.InDelta(t, 6, daily[1].Margin, 1e-9)

	monthly := g.MonthlyTotals(rows)
	require.Len(t, monthly, 2)
	assert.Equal(t, "2024-01", monthly[0].Key)
	assert.InDelta(t, 9, monthly[0].Margin, 1e-9)
	assert.Equal(t, 2, monthly[0].DaysActive)
}

func TestCredit(t *testing.T) {
	o := Credit([]domain.FinancialResource{
		{Name: "Op", Type: domain.ResourceCash, Balance: 1000},
		{Name: "Res", Type: domain.ResourceCash, Balance: 500},
		{Name: "Card", Type: domain.ResourceCredit, Balance: 2000, CreditLimit: 8000},
	})
	assert.InDelta(t, 1500, o.CashTotal, 1e-9)
	assert.InDelta(t, 8000, o.CreditLimit, 1e-9)
	assert.InDelta(t, 2000, o.CreditUsed, 1e-9)
	assert.InDelta(t, 6000, o.CreditAvailable, 1e-9)
	assert.InDelta(t, 25, o.Utilization, 1e-9)
	assert.InDelta(t, 7500, o.TotalLiquidity, 1e-9)
	assert.InDelta(t, 1500, CashBalance(o.Resources), 1e-9)

	empty := Credit(nil)
	assert.NotNil(t, empty.Resources)
	assert.Zero(t, empty.Utilization)
}

func TestExposure(t *testing.T) {
	invoices := []domain.InvoiceRecord{
		{Network: "A", Amount: 100, DueDate: day(1)},
		{Network: "A", Amount: 300, DueDate: day(10)},
		{Network: "A", Amount: 200, DueDate: day(8)},
		{Network: "B", Amount: 400, Status: "paid", DueDate: day(9)},
		{Network: "C", Amount: 400},
	}
	terms := []domain.NetworkTerm{{Network: "a", NetTerms: 15, PayPeriod: "Weekly", InvoiceLagDays: 2}}
	out := Exposure(invoices, terms, day(5), time.UTC)
	require.Len(t, out, 2)

	a := out[0]
	assert.Equal(t, "A", a.Network)
	assert.Equal(t, 3, a.Invoices)
	assert.InDelta(t, 600, a.Outstanding, 1e-9)
	assert.InDelta(t, 100, a.Overdue, 1e-9)
	assert.Equal(t, day(8), a.NextDue)
	assert.Equal(t, 15, a.NetTerms)
	assert.Equal(t, "Weekly", a.PayPeriod)
	assert.InDelta(t, 60, a.SharePercent, 1e-9)

	c := out[1]
	assert.Equal(t, "C", c.Network)
	assert.True(t, c.NextDue.IsZero())
	assert.InDelta(t, 40, c.SharePercent, 1e-9)
}
