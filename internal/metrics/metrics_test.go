package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_DonationCounters(t *testing.T) {
	m := New()

	m.DonationCreated(decimal.RequireFromString("150.00"))
	m.DonationCreated(decimal.RequireFromString("20.50"))
	m.DonationDeleted()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.donationsCreated))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.donationsDeleted))
	assert.Equal(t, 1, testutil.CollectAndCount(m.donationAmount))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := New()

	m.ObserveRequest(http.MethodGet, "GET /api/donations/{id}", http.StatusOK, 5*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "GET /api/donations/{id}", http.StatusNotFound, 2*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "GET /api/donations/{id}", http.StatusOK, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "GET /api/donations/{id}", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "GET /api/donations/{id}", "404")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.DonationCreated(decimal.RequireFromString("10"))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "donations_created_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
