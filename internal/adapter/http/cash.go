package httpadapter

import (
	"net/http"

	"perf-bi/internal/core/analytics"
	"perf-bi/internal/core/port"
)

// handleProjection returns the day by day cash projection. Query
// parameters: anchor (day, defaults to today) and horizon (days).
func (h *Handler) handleProjection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	anchor, err := h.parseDay(q, "anchor")
	if err != nil {
		h.fail(w, r, "projection", err)
		return
	}
	horizon, err := parseHorizon(q)
	if err != nil {
		h.fail(w, r, "projection", err)
		return
	}
	rep, err := h.svc.CashProjection(r.Context(), port.ProjectionQuery{Anchor: anchor, Horizon: horizon})
	if err != nil {
		h.fail(w, r, "projection", err)
		return
	}
	h.writeJSON(w, rep)
}

func (h *Handler) handleCredit(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.CreditOverview(r.Context())
	if err != nil {
		h.fail(w, r, "credit", err)
		return
	}
	h.writeJSON(w, o)
}

func (h *Handler) handleExposure(w http.ResponseWriter, r *http.Request) {
	anchor, err := h.parseDay(r.URL.Query(), "anchor")
	if err != nil {
		h.fail(w, r, "exposure", err)
		return
	}
	exp, err := h.svc.NetworkExposure(r.Context(), anchor)
	if err != nil {
		h.fail(w, r, "exposure", err)
		return
	}
	if exp == nil {
		exp = []analytics.NetworkExposure{}
	}
	h.writeJSON(w, exp)
}
