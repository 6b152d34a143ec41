package port

import (
	"context"
	"time"

	"perf-bi/internal/core/analytics"
	"perf-bi/internal/core/domain"
)

// DashboardUseCase defines the read operations behind the dashboard tabs
// and the small amount of user state they keep. It is the primary port
// into the application; the HTTP adapter depends only on this interface.
type DashboardUseCase interface {
	// OfferPerformance groups performance rows by network and offer and
	// returns each group's metrics and scaling recommendation, best first.
	OfferPerformance(ctx context.Context, q OfferQuery) (*OfferReport, error)

	// BuyerSummary returns revenue, spend and margin per media buyer.
	BuyerSummary(ctx context.Context, q RangeQuery) ([]analytics.Totals, error)

	// DailySummary returns totals per calendar day, oldest first.
	DailySummary(ctx context.Context, q RangeQuery) ([]analytics.Totals, error)

	// MonthlySummary returns totals per calendar month, oldest first.
	MonthlySummary(ctx context.Context, q RangeQuery) ([]analytics.Totals, error)

	// CashProjection projects the cash balance day by day over a horizon
	// using unpaid invoices as inflows and payroll as outflows. Invoices due
	// before the anchor are reported as overdue rather than projected.
	CashProjection(ctx context.Context, q ProjectionQuery) (*ProjectionReport, error)

	// CreditOverview summarises cash accounts and credit lines.
	CreditOverview(ctx context.Context) (*analytics.CreditOverview, error)

	// NetworkExposure returns outstanding receivables per network.
	NetworkExposure(ctx context.Context, anchor time.Time) ([]analytics.NetworkExposure, error)

	// GetNote returns the note stored for scope/id or ErrNotFound.
	GetNote(ctx context.Context, scope, id string) (string, error)
	// SaveNote stores a note; an empty text deletes it.
	SaveNote(ctx context.Context, scope, id, text string) error
	// SetFlag sets or clears a checkbox flag.
	SetFlag(ctx context.Context, scope, id string, on bool) error
	// ListFlags returns the ids of all set flags in scope.
	ListFlags(ctx context.Context, scope string) ([]string, error)
}

// RangeQuery restricts performance rows to an inclusive day range. Zero
// bounds are open.
type RangeQuery struct {
	From time.Time
	To   time.Time
}

// OfferQuery is a RangeQuery optionally limited to one network.
type OfferQuery struct {
	RangeQuery
	Network string
}

// OfferReport is the result of OfferPerformance.
type OfferReport struct {
	Offers  []analytics.OfferAnalysis     `json:"offers"`
	Counts  map[domain.Recommendation]int `json:"counts"`
	Totals  analytics.Totals              `json:"totals"`
	Quality []domain.DecodeReport         `json:"quality"`
}

// ProjectionQuery parameterises CashProjection. A zero Anchor means today
// in the reporting timezone; a non-positive Horizon uses the configured
// default.
type ProjectionQuery struct {
	Anchor  time.Time
	Horizon int
}

// ProjectionReport is the result of CashProjection.
type ProjectionReport struct {
	Anchor       time.Time                `json:"anchor"`
	Horizon      int                      `json:"horizon"`
	Days         []domain.ProjectionDay   `json:"days"`
	Weeks        []domain.ProjectionWeek  `json:"weeks"`
	Summary      domain.ProjectionSummary `json:"summary"`
	Overdue      []domain.LineItem        `json:"overdue"`
	OverdueTotal float64                  `json:"overdue_total"`
	Undated      []domain.LineItem        `json:"undated"`
}
