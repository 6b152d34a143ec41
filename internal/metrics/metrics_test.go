package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistersOnFreshRegistry(t *testing.T) {
	a, b := New(), New()
	a.Fetches.WithLabelValues("performanceData", "ok").Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Fetches.WithLabelValues("performanceData", "ok")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Fetches.WithLabelValues("performanceData", "ok")))
}

func TestHandlerExposesCollectors(t *testing.T) {
	m := New()
	m.Degraded.WithLabelValues("invoicesData", "Amount").Add(2)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `perfbi_decode_degraded_cells_total{dataset="invoicesData",field="Amount"} 2`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
