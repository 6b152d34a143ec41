package analytics

import (
	"sort"
	"strings"
	"time"

	"perf-bi/internal/core/domain"
)

// Totals is a flat revenue/spend/margin line used by the buyer, daily and
// monthly summaries.
type Totals struct {
	Key        string  `json:"key"`
	Revenue    float64 `json:"revenue"`
	Spend      float64 `json:"spend"`
	Margin     float64 `json:"margin"`
	ROI        float64 `json:"roi"`
	MarginPct  float64 `json:"margin_pct"`
	DaysActive int     `json:"days_active"`
	Offers     int     `json:"offers,omitempty"`
}

// TotalsOf flattens a group into a Totals line.
func TotalsOf(g domain.AggregateGroup) Totals {
	return Totals{
		Key:        g.Key,
		Revenue:    g.TotalRevenue,
		Spend:      g.TotalSpend,
		Margin:     g.TotalMargin,
		ROI:        ROI(g.TotalMargin, g.TotalSpend),
		MarginPct:  MarginPct(g.TotalMargin, g.TotalRevenue),
		DaysActive: g.DaysActive,
	}
}

// BuyerTotals sums records per media buyer, ordered by margin descending.
// Rows without a buyer are reported under "Unassigned".
func (g *Grouper) BuyerTotals(rows []domain.PerformanceRecord) []Totals {
	groups := GroupBy(rows, func(r domain.PerformanceRecord) string {
		if b := strings.TrimSpace(r.MediaBuyer); b != "" {
			return b
		}
		return "Unassigned"
	})
	out := make([]Totals, 0, groups.Len())
	groups.Each(func(k string, items []domain.PerformanceRecord) {
		t := TotalsOf(g.Reduce(k, items, nil))
		offers := map[string]struct{}{}
		for _, r := range items {
			offers[g.ByNetworkOffer(r)] = struct{}{}
		}
		t.Offers = len(offers)
		out = append(out, t)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].Margin > out[j].Margin })
	return out
}

// DailyTotals sums records per calendar day, oldest first. Undated rows
// are skipped.
func (g *Grouper) DailyTotals(rows []domain.PerformanceRecord) []Totals {
	return g.periodTotals(rows, g.ByDay)
}

// MonthlyTotals sums records per calendar month, oldest first.
func (g *Grouper) MonthlyTotals(rows []domain.PerformanceRecord) []Totals {
	return g.periodTotals(rows, g.ByMonth)
}

func (g *Grouper) periodTotals(rows []domain.PerformanceRecord, key func(domain.PerformanceRecord) string) []Totals {
	groups := GroupBy(rows, key)
	out := make([]Totals, 0, groups.Len())
	groups.Each(func(k string, items []domain.PerformanceRecord) {
		if k == "" {
			return
		}
		out = append(out, TotalsOf(g.Reduce(k, items, nil)))
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// CreditOverview aggregates cash accounts and credit lines.
type CreditOverview struct {
	Resources       []domain.FinancialResource `json:"resources"`
	CashTotal       float64                    `json:"cash_total"`
	CreditLimit     float64                    `json:"credit_limit"`
	CreditUsed      float64                    `json:"credit_used"`
	CreditAvailable float64                    `json:"credit_available"`
	Utilization     float64                    `json:"utilization_pct"`
	TotalLiquidity  float64                    `json:"total_liquidity"`
}

// Credit summarises financial resources.
func Credit(rs []domain.FinancialResource) CreditOverview {
	o := CreditOverview{Resources: rs}
	if o.Resources == nil {
		o.Resources = []domain.FinancialResource{}
	}
	for _, r := range rs {
		if r.Type == domain.ResourceCredit {
			o.CreditLimit += r.CreditLimit
			o.CreditUsed += r.Balance
			o.CreditAvailable += r.Available()
			continue
		}
		o.CashTotal += r.Balance
	}
	if o.CreditLimit > 0 {
		o.Utilization = o.CreditUsed / o.CreditLimit * 100
	}
	o.TotalLiquidity = o.CashTotal + o.CreditAvailable
	return o
}

// CashBalance sums the balances of cash accounts.
func CashBalance(rs []domain.FinancialResource) float64 {
	return Credit(rs).CashTotal
}

// NetworkExposure is the outstanding receivable of one network.
type NetworkExposure struct {
	Network      string    `json:"network"`
	Outstanding  float64   `json:"outstanding"`
	Overdue      float64   `json:"overdue"`
	Invoices     int       `json:"invoices"`
	NextDue      time.Time `json:"next_due,omitempty"`
	NetTerms     int       `json:"net_terms"`
	PayPeriod    string    `json:"pay_period,omitempty"`
	InvoiceLag   int       `json:"invoice_lag_days"`
	SharePercent float64   `json:"share_pct"`
}

// Exposure totals unpaid invoices per network relative to anchor and joins
// the network's payment terms. Ordered by outstanding amount descending.
func Exposure(invoices []domain.InvoiceRecord, terms []domain.NetworkTerm, anchor time.Time, loc *time.Location) []NetworkExposure {
	start := domain.Truncate(anchor, loc)
	byNet := GroupBy(invoices, func(r domain.InvoiceRecord) string { return strings.TrimSpace(r.Network) })
	termsByNet := make(map[string]domain.NetworkTerm, len(terms))
	for _, t := range terms {
		termsByNet[strings.ToLower(strings.TrimSpace(t.Network))] = t
	}

	var grand float64
	out := make([]NetworkExposure, 0, byNet.Len())
	byNet.Each(func(net string, items []domain.InvoiceRecord) {
		e := NetworkExposure{Network: net}
		for _, inv := range items {
			if inv.Paid() {
				continue
			}
			e.Invoices++
			e.Outstanding += inv.Amount
			if inv.DueDate.IsZero() {
				continue
			}
			due := domain.Truncate(inv.DueDate, loc)
			if due.Before(start) {
				e.Overdue += inv.Amount
			} else if e.NextDue.IsZero() || due.Before(e.NextDue) {
				e.NextDue = due
			}
		}
		if e.Invoices == 0 {
			return
		}
		if t, ok := termsByNet[strings.ToLower(net)]; ok {
			e.NetTerms = t.NetTerms
			e.PayPeriod = t.PayPeriod
			e.InvoiceLag = t.InvoiceLagDays
		}
		grand += e.Outstanding
		out = append(out, e)
	})
	for i := range out {
		if grand != 0 {
			out[i].SharePercent = out[i].Outstanding / grand * 100
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Outstanding > out[j].Outstanding })
	return out
}
