package httpadapter

import (
	"context"
	"net/http"

	"perf-bi/internal/core/analytics"
	"perf-bi/internal/core/port"
)

type summaryFunc func(ctx context.Context, q port.RangeQuery) ([]analytics.Totals, error)

func (h *Handler) handleBuyers(w http.ResponseWriter, r *http.Request) {
	h.serveSummary(w, r, "buyers", h.svc.BuyerSummary)
}

func (h *Handler) handleDaily(w http.ResponseWriter, r *http.Request) {
	h.serveSummary(w, r, "daily", h.svc.DailySummary)
}

func (h *Handler) handleMonthly(w http.ResponseWriter, r *http.Request) {
	h.serveSummary(w, r, "monthly", h.svc.MonthlySummary)
}

// serveSummary answers the range based totals endpoints.
func (h *Handler) serveSummary(w http.ResponseWriter, r *http.Request, op string, fn summaryFunc) {
	rq, err := h.parseRange(r.URL.Query())
	if err != nil {
		h.fail(w, r, op, err)
		return
	}
	totals, err := fn(r.Context(), rq)
	if err != nil {
		h.fail(w, r, op, err)
		return
	}
	if totals == nil {
		totals = []analytics.Totals{}
	}
	h.writeJSON(w, totals)
}
