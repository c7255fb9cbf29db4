// Package metrics exposes Prometheus instruments for the donation API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

// Metrics holds the service's collectors and the registry they are registered on.
type Metrics struct {
	registry         *prometheus.Registry
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	donationsCreated prometheus.Counter
	donationsDeleted prometheus.Counter
	donationAmount   prometheus.Histogram
}

// New registers and returns the service metrics on a fresh registry, along with
// the Go runtime and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "donations_http_requests_total",
			Help: "Counts HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "donations_http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		donationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "donations_created_total",
			Help: "Donations persisted.",
		}),
		donationsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "donations_deleted_total",
			Help: "Donations deleted.",
		}),
		donationAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "donations_amount",
			Help:    "Donation amount distribution.",
			Buckets: []float64{1, 10, 50, 100, 500, 1000, 10000},
		}),
	}
	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.donationsCreated,
		m.donationsDeleted,
		m.donationAmount,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// DonationCreated records a persisted donation and its amount.
func (m *Metrics) DonationCreated(amount decimal.Decimal) {
	m.donationsCreated.Inc()
	m.donationAmount.Observe(amount.InexactFloat64())
}

func (m *Metrics) DonationDeleted() {
	m.donationsDeleted.Inc()
}

// ObserveRequest records one finished HTTP request. route is the matched mux
// pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
