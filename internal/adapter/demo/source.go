// Package demo provides a generated data source so the dashboard can run
// without access to the real workbooks.
package demo

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"perf-bi/internal/core/domain"
	"perf-bi/internal/core/port"
)

// Source serves generated datasets. Output depends only on the seed and
// the anchor day, so repeated fetches on the same day return identical
// rows.
type Source struct {
	seed  int64
	days  int
	clock func() time.Time

	mu   sync.Mutex
	day  string
	data map[string][]domain.Row
}

var _ port.DataSource = (*Source)(nil)

// New returns a Source generating days of history ending the day before
// anchor, and invoices/payroll spread around anchor.
func New(seed int64, anchor time.Time, days int) *Source {
	return NewRolling(seed, func() time.Time { return anchor }, days)
}

// NewRolling is like New but reads the anchor from clock on every fetch,
// so a long running process keeps its history ending yesterday. Data is
// regenerated when the anchor day changes.
func NewRolling(seed int64, clock func() time.Time, days int) *Source {
	if days < 2 {
		days = 45
	}
	return &Source{seed: seed, days: days, clock: clock}
}

// Fetch implements port.DataSource. Unknown datasets are empty.
func (s *Source) Fetch(ctx context.Context, dataset string) ([]domain.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows := s.rows(dataset)
	out := make([]domain.Row, len(rows))
	for i, r := range rows {
		cp := make(domain.Row, len(r))
		for k, v := range r {
			cp[k] = v
		}
		out[i] = cp
	}
	return out, nil
}

var (
	networks = []string{"MaxBounty", "ClickBank", "CJ", "Impact"}
	offers   = []string{"Solar Banner", "Solar Banner Edge", "Auto Quotes", "Debt Relief", "Home Warranty"}
	buyers   = []string{"Alex", "Sam", "Jordan", ""}
)

func (s *Source) rows(dataset string) []domain.Row {
	now := s.clock()
	anchor := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	s.mu.Lock()
	defer s.mu.Unlock()
	if key := anchor.Format(domain.DayLayout); key != s.day {
		s.data = s.generate(anchor)
		s.day = key
	}
	return s.data[dataset]
}

func (s *Source) generate(anchor time.Time) map[string][]domain.Row {
	r := rand.New(rand.NewSource(s.seed))
	data := map[string][]domain.Row{}

	// performance: each network/offer pair runs for a random stretch of the
	// history window with its own base margin.
	for _, n := range networks {
		for _, o := range offers {
			if r.Intn(3) == 0 {
				continue
			}
			run := 2 + r.Intn(s.days-1)
			base := 100 + r.Float64()*900
			roi := -0.2 + r.Float64()*0.9
			buyer := buyers[r.Intn(len(buyers))]
			for d := run; d >= 1; d-- {
				day := anchor.AddDate(0, 0, -d)
				spend := base * (0.7 + r.Float64()*0.6)
				revenue := spend * (1 + roi + (r.Float64()-0.5)*0.3)
				data[domain.DatasetPerformance] = append(data[domain.DatasetPerformance], domain.Row{
					"Date":          mixedDate(r, day),
					"Network":       n,
					"Offer":         o,
					"Media Buyer":   buyer,
					"Ad Spend":      domain.FormatAmount(spend),
					"Total Revenue": fmt.Sprintf("%.2f", revenue),
				})
			}
		}
	}

	// invoices: two per network, one possibly already overdue.
	for _, n := range networks {
		for i := 0; i < 2; i++ {
			due := anchor.AddDate(0, 0, -5+r.Intn(35))
			start := due.AddDate(0, 0, -30)
			data[domain.DatasetInvoices] = append(data[domain.DatasetInvoices], domain.Row{
				"InvoiceNumber": "INV-" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s:%d:%d", n, s.seed, i))).String()[:8],
				"Network":       n,
				"Amount":        domain.FormatAmount(2000 + r.Float64()*18000),
				"DueDate":       due.Format("01/02/2006"),
				"PeriodStart":   start.Format(domain.DayLayout),
				"PeriodEnd":     due.AddDate(0, 0, -15).Format(domain.DayLayout),
				"Status":        "open",
			})
		}
	}

	// payroll: bi-weekly salaries plus monthly tools.
	for d := 0; d < 35; d += 14 {
		data[domain.DatasetPayroll] = append(data[domain.DatasetPayroll], domain.Row{
			"Type":        "Salary",
			"Description": "Payroll run",
			"Amount":      domain.FormatAmount(12000 + r.Float64()*2000),
			"DueDate":     anchor.AddDate(0, 0, d+3).Format(domain.DayLayout),
		})
	}
	data[domain.DatasetPayroll] = append(data[domain.DatasetPayroll], domain.Row{
		"Type":        "Tools",
		"Description": "Tracking platform",
		"Amount":      "$1,499.00",
		"DueDate":     anchor.AddDate(0, 0, 10).Format("Jan 2, 2006"),
	})

	data[domain.DatasetResources] = []domain.Row{
		{"Name": "Operating", "Type": "Cash", "Balance": domain.FormatAmount(40000 + r.Float64()*20000)},
		{"Name": "Reserve", "Type": "Cash", "Balance": "$15,000.00"},
		{"Name": "Amex Business", "Type": "Credit Card", "Balance": domain.FormatAmount(r.Float64() * 20000), "Credit Limit": "$50,000"},
		{"Name": "Bank LOC", "Type": "Line of Credit", "Balance": "$0", "Credit Limit": "$100,000"},
	}

	data[domain.DatasetTerms] = []domain.Row{
		{"Network": "MaxBounty", "Pay Period": "Weekly", "Net Terms": "Net 7", "Invoice Lag": 2},
		{"Network": "ClickBank", "Pay Period": "Weekly", "Net Terms": "Net 15", "Invoice Lag": 1},
		{"Network": "CJ", "Pay Period": "Monthly", "Net Terms": "Net 30", "Invoice Lag": 5},
		{"Network": "Impact", "Pay Period": "Monthly", "Net Terms": "Net 20", "Invoice Lag": 3},
	}
	return data
}

var sheetsEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// mixedDate renders day in one of the formats seen in the source sheets.
func mixedDate(r *rand.Rand, day time.Time) any {
	switch r.Intn(4) {
	case 0:
		return day.Format("1/2/2006")
	case 1:
		return day.Format(domain.DayLayout)
	case 2:
		return day.Format("Jan 2, 2006")
	default:
		// unformatted Sheets cell: serial day number
		return day.Sub(sheetsEpoch).Hours() / 24
	}
}
