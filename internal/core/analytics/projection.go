package analytics

import (
	"time"

	"perf-bi/internal/core/domain"
)

// Project walks horizonDays days starting at anchor and attaches every
// inflow and outflow due on each day. The result always has exactly
// horizonDays entries; days without activity carry the previous balance
// forward. Items are matched by calendar day in loc, so anything due before
// anchor or after the horizon is ignored here (see PartitionOverdue).
func Project(startingBalance float64, inflows, outflows []domain.LineItem, horizonDays int, anchor time.Time, loc *time.Location) []domain.ProjectionDay {
	if horizonDays <= 0 {
		return []domain.ProjectionDay{}
	}
	if loc == nil {
		loc = time.UTC
	}
	start := domain.Truncate(anchor, loc)

	inByDay := bucketByDay(inflows, loc)
	outByDay := bucketByDay(outflows, loc)

	days := make([]domain.ProjectionDay, horizonDays)
	balance := startingBalance
	for i := 0; i < horizonDays; i++ {
		date := domain.AddDays(start, i)
		key := date.Format(domain.DayLayout)
		day := domain.ProjectionDay{
			Date:     date,
			Inflows:  nonNil(inByDay[key]),
			Outflows: nonNil(outByDay[key]),
		}
		day.In = sumItems(day.Inflows)
		day.Out = sumItems(day.Outflows)
		balance = balance + day.In - day.Out
		day.Balance = balance
		days[i] = day
	}
	return days
}

func bucketByDay(items []domain.LineItem, loc *time.Location) map[string][]domain.LineItem {
	out := make(map[string][]domain.LineItem)
	for _, it := range items {
		if it.DueDate.IsZero() {
			continue
		}
		k := domain.DayKey(it.DueDate, loc)
		out[k] = append(out[k], it)
	}
	return out
}

func nonNil(items []domain.LineItem) []domain.LineItem {
	if items == nil {
		return []domain.LineItem{}
	}
	return items
}

func sumItems(items []domain.LineItem) float64 {
	var s float64
	for _, it := range items {
		s += it.Amount
	}
	return s
}

// PartitionOverdue splits items into those due on or after anchor and
// those due strictly before it. Items without a due date are returned
// separately as undated.
func PartitionOverdue(items []domain.LineItem, anchor time.Time, loc *time.Location) (upcoming, overdue, undated []domain.LineItem) {
	start := domain.Truncate(anchor, loc)
	upcoming, overdue, undated = []domain.LineItem{}, []domain.LineItem{}, []domain.LineItem{}
	for _, it := range items {
		switch {
		case it.DueDate.IsZero():
			undated = append(undated, it)
		case domain.Truncate(it.DueDate, loc).Before(start):
			overdue = append(overdue, it)
		default:
			upcoming = append(upcoming, it)
		}
	}
	return upcoming, overdue, undated
}

// SumItems returns the total amount of items.
func SumItems(items []domain.LineItem) float64 { return sumItems(items) }

// WeeklyBuckets collapses days into consecutive 7-day buckets starting at
// the first day. The last bucket may be shorter.
func WeeklyBuckets(days []domain.ProjectionDay) []domain.ProjectionWeek {
	out := make([]domain.ProjectionWeek, 0, (len(days)+6)/7)
	for i := 0; i < len(days); i += 7 {
		end := i + 7
		if end > len(days) {
			end = len(days)
		}
		w := domain.ProjectionWeek{Start: days[i].Date, End: days[end-1].Date}
		for _, d := range days[i:end] {
			w.In += d.In
			w.Out += d.Out
		}
		w.Net = w.In - w.Out
		w.Closing = days[end-1].Balance
		out = append(out, w)
	}
	return out
}

// Summarize computes headline figures of a projection.
func Summarize(startingBalance float64, days []domain.ProjectionDay) domain.ProjectionSummary {
	s := domain.ProjectionSummary{
		StartingBalance: startingBalance,
		EndingBalance:   startingBalance,
		LowestBalance:   startingBalance,
	}
	if len(days) > 0 {
		s.LowestBalanceOn = days[0].Date
	}
	for _, d := range days {
		s.TotalIn += d.In
		s.TotalOut += d.Out
		if d.Balance < s.LowestBalance {
			s.LowestBalance = d.Balance
			s.LowestBalanceOn = d.Date
		}
		if d.Balance < 0 && s.FirstNegativeDay == nil {
			date := d.Date
			s.FirstNegativeDay = &date
		}
	}
	if len(days) > 0 {
		s.EndingBalance = days[len(days)-1].Balance
	}
	return s
}
