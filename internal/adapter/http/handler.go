package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"perf-bi/internal/core/port"
	"perf-bi/internal/metrics"
)

// Options configures optional Handler dependencies.
type Options struct {
	// Metrics enables request instrumentation and the /metrics route.
	Metrics *metrics.Metrics
	// Location resolves date query parameters. Defaults to UTC.
	Location *time.Location
	// Ready backs /readyz. A nil func always reports ready.
	Ready func(ctx context.Context) error
}

// Handler is the inbound HTTP adapter. It exposes the dashboard use case
// as a read-only JSON API plus the note and flag endpoints.
type Handler struct {
	svc     port.DashboardUseCase
	logger  *slog.Logger
	metrics *metrics.Metrics
	loc     *time.Location
	ready   func(ctx context.Context) error
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger, opts Options) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, logger: logger, metrics: opts.Metrics, loc: opts.Location, ready: opts.Ready}
	if h.loc == nil {
		h.loc = time.UTC
	}

	r := chi.NewRouter()
	r.Use(requestID, middleware.Recoverer, h.accessLog)
	if h.metrics != nil {
		r.Use(h.instrument)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}
	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/offers", h.handleOffers)
		r.Get("/buyers", h.handleBuyers)
		r.Get("/summary/daily", h.handleDaily)
		r.Get("/summary/monthly", h.handleMonthly)
		r.Get("/cash/projection", h.handleProjection)
		r.Get("/cash/credit", h.handleCredit)
		r.Get("/networks/exposure", h.handleExposure)
		r.Get("/notes/{scope}/{id}", h.handleGetNote)
		r.Put("/notes/{scope}/{id}", h.handlePutNote)
		r.Get("/flags/{scope}", h.handleListFlags)
		r.Put("/flags/{scope}/{id}", h.handlePutFlag)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil {
		if err := h.ready(r.Context()); err != nil {
			h.logger.Warn("readiness check failed", slog.Any("error", err))
			http.Error(w, "not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ready"))
}

// writeJSON encodes v with status 200.
func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// fail maps use case errors to status codes. Data source failures are
// reported generically; details stay in the log.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	attrs := []any{slog.String("op", op), slog.String("rid", RequestIDFrom(r.Context())), slog.Any("error", err)}
	switch {
	case errors.Is(err, port.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, port.ErrDataSource):
		h.logger.Warn("data source error", attrs...)
		http.Error(w, "data source unavailable", http.StatusBadGateway)
	case errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("request timed out", attrs...)
		http.Error(w, "timeout", http.StatusGatewayTimeout)
	default:
		h.logger.Error("internal error", attrs...)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
