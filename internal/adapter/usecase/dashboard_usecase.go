package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"perf-bi/internal/core/analytics"
	"perf-bi/internal/core/domain"
	"perf-bi/internal/core/port"
	"perf-bi/internal/metrics"
)

// Options configures a DashboardUseCase. Zero values fall back to UTC, a
// 30 day horizon, no aliasing, the default logger and no metrics.
type Options struct {
	Location *time.Location
	Horizon  int
	Aliases  *analytics.AliasTable
	// Strict logs each malformed cell as a warning.
	Strict bool
	// Cache memoises decoded datasets by content hash.
	Cache   bool
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	// Now is the clock used for the default anchor.
	Now func() time.Time
}

// DashboardUseCase implements port.DashboardUseCase on top of a data
// source for the spreadsheet datasets and a key/value store for notes and
// flags. Every call re-reads its datasets; the computation itself is pure.
type DashboardUseCase struct {
	source port.DataSource
	store  port.KVStore

	loc     *time.Location
	horizon int
	grouper *analytics.Grouper
	decoder *domain.Decoder
	cache   *decodeCache
	strict  bool
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

var _ port.DashboardUseCase = (*DashboardUseCase)(nil)

// NewDashboardUseCase wires the use case.
func NewDashboardUseCase(source port.DataSource, store port.KVStore, opts Options) *DashboardUseCase {
	u := &DashboardUseCase{
		source:  source,
		store:   store,
		loc:     opts.Location,
		horizon: opts.Horizon,
		strict:  opts.Strict,
		logger:  opts.Logger,
		metrics: opts.Metrics,
		now:     opts.Now,
	}
	if u.loc == nil {
		u.loc = time.UTC
	}
	if u.horizon <= 0 {
		u.horizon = 30
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	if u.now == nil {
		u.now = time.Now
	}
	if opts.Cache {
		u.cache = newDecodeCache()
	}
	u.grouper = analytics.NewGrouper(opts.Aliases, u.loc)
	u.decoder = domain.NewDecoder(u.loc)
	u.decoder.OnDegrade = u.onDegrade
	return u
}

func (u *DashboardUseCase) onDegrade(d domain.Degradation) {
	if u.metrics != nil {
		u.metrics.Degraded.WithLabelValues(d.Dataset, d.Field).Inc()
	}
	if u.strict {
		u.logger.Warn("malformed cell replaced by zero",
			slog.String("dataset", d.Dataset),
			slog.String("field", d.Field),
			slog.Int("row", d.Row),
			slog.Any("raw", d.Raw),
		)
	}
}

func (u *DashboardUseCase) observeCache(result string) {
	if u.metrics != nil {
		u.metrics.CacheHits.WithLabelValues(result).Inc()
	}
}

// fetch loads datasets concurrently. The first failure cancels the rest.
func (u *DashboardUseCase) fetch(ctx context.Context, datasets ...string) (map[string][]domain.Row, error) {
	var mu sync.Mutex
	out := make(map[string][]domain.Row, len(datasets))
	g, gctx := errgroup.WithContext(ctx)
	for _, ds := range datasets {
		ds := ds
		g.Go(func() error {
			rows, err := u.source.Fetch(gctx, ds)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", ds, err)
			}
			mu.Lock()
			out[ds] = rows
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *DashboardUseCase) performance(ctx context.Context) ([]domain.PerformanceRecord, domain.DecodeReport, error) {
	data, err := u.fetch(ctx, domain.DatasetPerformance)
	if err != nil {
		return nil, domain.DecodeReport{}, err
	}
	recs, rep := decodeWith(u, domain.DatasetPerformance, data[domain.DatasetPerformance], u.decoder.Performance)
	return recs, rep, nil
}

// OfferPerformance implements port.DashboardUseCase.
func (u *DashboardUseCase) OfferPerformance(ctx context.Context, q port.OfferQuery) (*port.OfferReport, error) {
	if err := validRange(q.RangeQuery); err != nil {
		return nil, err
	}
	recs, rep, err := u.performance(ctx)
	if err != nil {
		return nil, err
	}
	rows := u.grouper.Filter(recs, q.From, q.To, strings.TrimSpace(q.Network))
	groups := u.grouper.Aggregate(rows, u.grouper.ByNetworkOffer)
	offers := analytics.Analyze(groups)
	analytics.RankOffers(offers)

	totals := analytics.TotalsOf(u.grouper.Reduce("all", rows, nil))
	totals.Offers = len(groups)
	return &port.OfferReport{
		Offers:  offers,
		Counts:  analytics.CountByRecommendation(offers),
		Totals:  totals,
		Quality: []domain.DecodeReport{rep},
	}, nil
}

// BuyerSummary implements port.DashboardUseCase.
func (u *DashboardUseCase) BuyerSummary(ctx context.Context, q port.RangeQuery) ([]analytics.Totals, error) {
	return u.summary(ctx, q, u.grouper.BuyerTotals)
}

// DailySummary implements port.DashboardUseCase.
func (u *DashboardUseCase) DailySummary(ctx context.Context, q port.RangeQuery) ([]analytics.Totals, error) {
	return u.summary(ctx, q, u.grouper.DailyTotals)
}

// MonthlySummary implements port.DashboardUseCase.
func (u *DashboardUseCase) MonthlySummary(ctx context.Context, q port.RangeQuery) ([]analytics.Totals, error) {
	return u.summary(ctx, q, u.grouper.MonthlyTotals)
}

func (u *DashboardUseCase) summary(ctx context.Context, q port.RangeQuery, fn func([]domain.PerformanceRecord) []analytics.Totals) ([]analytics.Totals, error) {
	if err := validRange(q); err != nil {
		return nil, err
	}
	recs, _, err := u.performance(ctx)
	if err != nil {
		return nil, err
	}
	return fn(u.grouper.Filter(recs, q.From, q.To, "")), nil
}

// CashProjection implements port.DashboardUseCase.
func (u *DashboardUseCase) CashProjection(ctx context.Context, q port.ProjectionQuery) (*port.ProjectionReport, error) {
	anchor := u.anchor(q.Anchor)
	horizon := q.Horizon
	if horizon <= 0 {
		horizon = u.horizon
	}

	data, err := u.fetch(ctx, domain.DatasetInvoices, domain.DatasetPayroll, domain.DatasetResources)
	if err != nil {
		return nil, err
	}
	invoices, _ := decodeWith(u, domain.DatasetInvoices, data[domain.DatasetInvoices], u.decoder.Invoices)
	payroll, _ := decodeWith(u, domain.DatasetPayroll, data[domain.DatasetPayroll], u.decoder.Payroll)
	resources, _ := decodeWith(u, domain.DatasetResources, data[domain.DatasetResources], u.decoder.Resources)

	start := analytics.CashBalance(resources)
	upcoming, overdue, undated := analytics.PartitionOverdue(analytics.InvoiceItems(invoices), anchor, u.loc)
	days := analytics.Project(start, upcoming, analytics.PayrollItems(payroll), horizon, anchor, u.loc)

	return &port.ProjectionReport{
		Anchor:       anchor,
		Horizon:      horizon,
		Days:         days,
		Weeks:        analytics.WeeklyBuckets(days),
		Summary:      analytics.Summarize(start, days),
		Overdue:      overdue,
		OverdueTotal: analytics.SumItems(overdue),
		Undated:      undated,
	}, nil
}

// CreditOverview implements port.DashboardUseCase.
func (u *DashboardUseCase) CreditOverview(ctx context.Context) (*analytics.CreditOverview, error) {
	data, err := u.fetch(ctx, domain.DatasetResources)
	if err != nil {
		return nil, err
	}
	resources, _ := decodeWith(u, domain.DatasetResources, data[domain.DatasetResources], u.decoder.Resources)
	o := analytics.Credit(resources)
	return &o, nil
}

// NetworkExposure implements port.DashboardUseCase.
func (u *DashboardUseCase) NetworkExposure(ctx context.Context, anchor time.Time) ([]analytics.NetworkExposure, error) {
	data, err := u.fetch(ctx, domain.DatasetInvoices, domain.DatasetTerms)
	if err != nil {
		return nil, err
	}
	invoices, _ := decodeWith(u, domain.DatasetInvoices, data[domain.DatasetInvoices], u.decoder.Invoices)
	terms, _ := decodeWith(u, domain.DatasetTerms, data[domain.DatasetTerms], u.decoder.Terms)
	return analytics.Exposure(invoices, terms, u.anchor(anchor), u.loc), nil
}

// anchor defaults a zero time to today and truncates to the start of the
// day in the reporting timezone.
func (u *DashboardUseCase) anchor(t time.Time) time.Time {
	if t.IsZero() {
		t = u.now()
	}
	return domain.Truncate(t, u.loc)
}

func validRange(q port.RangeQuery) error {
	if !q.From.IsZero() && !q.To.IsZero() && q.To.Before(q.From) {
		return fmt.Errorf("%w: range end before start", port.ErrInvalidArgument)
	}
	return nil
}

const (
	notePrefix = "note:"
	flagPrefix = "flag:"
)

func entryKey(prefix, scope, id string) (string, error) {
	scope, id = strings.TrimSpace(scope), strings.TrimSpace(id)
	if scope == "" || id == "" || strings.Contains(scope, ":") {
		return "", fmt.Errorf("%w: scope %q id %q", port.ErrInvalidArgument, scope, id)
	}
	return prefix + scope + ":" + id, nil
}

// GetNote implements port.DashboardUseCase.
func (u *DashboardUseCase) GetNote(ctx context.Context, scope, id string) (string, error) {
	key, err := entryKey(notePrefix, scope, id)
	if err != nil {
		return "", err
	}
	v, ok, err := u.store.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", port.ErrNotFound
	}
	return v, nil
}

// SaveNote implements port.DashboardUseCase.
func (u *DashboardUseCase) SaveNote(ctx context.Context, scope, id, text string) error {
	key, err := entryKey(notePrefix, scope, id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return u.store.Delete(ctx, key)
	}
	return u.store.Put(ctx, key, text)
}

// SetFlag implements port.DashboardUseCase.
func (u *DashboardUseCase) SetFlag(ctx context.Context, scope, id string, on bool) error {
	key, err := entryKey(flagPrefix, scope, id)
	if err != nil {
		return err
	}
	if !on {
		return u.store.Delete(ctx, key)
	}
	return u.store.Put(ctx, key, "1")
}

// ListFlags implements port.DashboardUseCase.
func (u *DashboardUseCase) ListFlags(ctx context.Context, scope string) ([]string, error) {
	prefix, err := entryKey(flagPrefix, scope, "_")
	if err != nil {
		return nil, err
	}
	prefix = strings.TrimSuffix(prefix, "_")
	entries, err := u.store.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(entries))
	for k := range entries {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	sort.Strings(ids)
	return ids, nil
}
