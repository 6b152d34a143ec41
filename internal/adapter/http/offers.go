package httpadapter

import (
	"net/http"
	"strings"

	"perf-bi/internal/core/port"
)

// handleOffers returns every network/offer group with its metrics and
// scaling recommendation, best first. Optional query parameters: from, to
// (inclusive days) and network.
func (h *Handler) handleOffers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rq, err := h.parseRange(q)
	if err != nil {
		h.fail(w, r, "offers", err)
		return
	}
	rep, err := h.svc.OfferPerformance(r.Context(), port.OfferQuery{
		RangeQuery: rq,
		Network:    strings.TrimSpace(q.Get("network")),
	})
	if err != nil {
		h.fail(w, r, "offers", err)
		return
	}
	h.writeJSON(w, rep)
}
