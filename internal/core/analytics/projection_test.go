package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perf-bi/internal/core/domain"
)

func item(ref string, amount float64, due time.Time) domain.LineItem {
	return domain.LineItem{Ref: ref, Amount: amount, DueDate: due}
}

func TestProjectLengthAndRecurrence(t *testing.T) {
	anchor := day(5).Add(13 * time.Hour)
	inflows := []domain.LineItem{
		item("in-1", 500, day(6)),
		item("in-2", 250, day(6).Add(20*time.Hour)),
		item("past", 999, day(1)),
		item("late", 999, day(30)),
		item("undated", 999, time.Time{}),
	}
	outflows := []domain.LineItem{item("rent", 800, day(8))}

	days := Project(100, inflows, outflows, 7, anchor, time.UTC)
	require.Len(t, days, 7)
	assert.Equal(t, day(5), days[0].Date)
	assert.Equal(t, day(11), days[6].Date)

	prev := 100.0
	for _, d := range days {
		assert.InDelta(t, prev+d.In-d.Out, d.Balance, 1e-9)
		assert.NotNil(t, d.Inflows)
		assert.NotNil(t, d.Outflows)
		prev = d.Balance
	}
	assert.Len(t, days[1].Inflows, 2)
	assert.InDelta(t, 750, days[1].In, 1e-9)
	assert.InDelta(t, 850, days[1].Balance, 1e-9)
	assert.InDelta(t, 50, days[3].Balance, 1e-9)
	assert.InDelta(t, 50, days[6].Balance, 1e-9)
	assert.InDelta(t, -800, days[3].Net(), 1e-9)
}

func TestProjectEmptyHorizon(t *testing.T) {
	assert.Empty(t, Project(10, nil, nil, 0, day(1), time.UTC))
	assert.NotNil(t, Project(10, nil, nil, -3, day(1), time.UTC))
}

func TestProjectTimezoneDayMatching(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	anchor := time.Date(2024, 1, 5, 0, 0, 0, 0, la)
	// 03:00 UTC on Jan 6 is the evening of Jan 5 in Los Angeles.
	in := []domain.LineItem{item("a", 10, time.Date(2024, 1, 6, 3, 0, 0, 0, time.UTC))}
	days := Project(0, in, nil, 2, anchor, la)
	assert.InDelta(t, 10, days[0].In, 1e-9)
	assert.Zero(t, days[1].In)
}

func TestPartitionOverdue(t *testing.T) {
	// Invoice due 2024-01-01 with anchor 2024-01-05 is overdue.
	items := []domain.LineItem{
		item("old", 100, day(1)),
		item("today", 200, day(5).Add(23*time.Hour)),
		item("soon", 300, day(9)),
		item("none", 400, time.Time{}),
	}
	upcoming, overdue, undated := PartitionOverdue(items, day(5), time.UTC)
	require.Len(t, overdue, 1)
	assert.Equal(t, "old", overdue[0].Ref)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "today", upcoming[0].Ref)
	require.Len(t, undated, 1)
	assert.InDelta(t, 100, SumItems(overdue), 1e-9)

	days := Project(0, upcoming, nil, 10, day(5), time.UTC)
	var projected float64
	for _, d := range days {
		projected += d.In
	}
	assert.InDelta(t, 500, projected, 1e-9)

	u, o, n := PartitionOverdue(nil, day(5), time.UTC)
	assert.NotNil(t, u)
	assert.NotNil(t, o)
	assert.NotNil(t, n)
}

func TestWeeklyBucketsAndSummary(t *testing.T) {
	days := Project(100, []domain.LineItem{item("in", 50, day(3))}, []domain.LineItem{item("out", 300, day(9))}, 10, day(1), time.UTC)
	weeks := WeeklyBuckets(days)
	require.Len(t, weeks, 2)
	assert.Equal(t, day(1), weeks[0].Start)
	assert.Equal(t, day(7), weeks[0].End)
	assert.InDelta(t, 50, weeks[0].In, 1e-9)
	assert.InDelta(t, 150, weeks[0].Closing, 1e-9)
	assert.Equal(t, day(10), weeks[1].End)
	assert.InDelta(t, -300, weeks[1].Net, 1e-9)
	assert.InDelta(t, -150, weeks[1].Closing, 1e-9)

	s := Summarize(100, days)
	assert.InDelta(t, 100, s.StartingBalance, 1e-9)
	assert.InDelta(t, -150, s.EndingBalance, 1e-9)
	assert.InDelta(t, -150, s.LowestBalance, 1e-9)
	assert.Equal(t, day(9), s.LowestBalanceOn)
	require.NotNil(t, s.FirstNegativeDay)
	assert.Equal(t, day(9), *s.FirstNegativeDay)
	assert.InDelta(t, 50, s.TotalIn, 1e-9)
	assert.InDelta(t, 300, s.TotalOut, 1e-9)

	assert.Empty(t, WeeklyBuckets(nil))
	empty := Summarize(42, nil)
	assert.InDelta(t, 42, empty.EndingBalance, 1e-9)
	assert.Nil(t, empty.FirstNegativeDay)
}

func TestItems(t *testing.T) {
	inv := InvoiceItems([]domain.InvoiceRecord{
		{InvoiceNumber: "1", Network: "A", Amount: 100, Status: "open"},
		{InvoiceNumber: "2", Network: "A", Amount: 200, Status: " Paid "},
	})
	require.Len(t, inv, 1)
	assert.Equal(t, domain.DatasetInvoices, inv[0].Kind)
	assert.Equal(t, "A", inv[0].Party)

	pay := PayrollItems([]domain.PayrollRecord{
		{Type: "Salary", Amount: -1200},
		{Type: "Tools", Description: "CRM", Amount: 99},
	})
	require.Len(t, pay, 2)
	assert.InDelta(t, 1200, pay[0].Amount, 1e-9)
	assert.Equal(t, "Salary", pay[0].Ref)
	assert.Equal(t, "CRM", pay[1].Ref)
}
