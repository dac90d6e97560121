package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	UnknownVersions    prometheus.Counter
	RateLimited        prometheus.Counter
	RateLimiterClients prometheus.GaugeFunc
}

// New registers all instruments with the given Prometheus registerer and
// returns the populated Metrics struct.
// trackedClients backs the limiter gauge; nil reports zero.
func New(reg prometheus.Registerer, trackedClients func() int) *Metrics {
	if trackedClients == nil {
		trackedClients = func() int { return 0 }
	}

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ocpi_http_requests_total",
			Help: "Total number of HTTP requests by route pattern, method and status.",
		}, []string{"route", "method", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ocpi_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),

		UnknownVersions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ocpi_unknown_version_requests_total",
			Help: "Version detail lookups answered with status 2003.",
		}),

		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "ocpi_rate_limited_requests_total",
			Help: "Requests rejected by the per-client rate limiter.",
		}),

		RateLimiterClients: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "ocpi_rate_limiter_clients",
			Help: "Number of client buckets currently tracked by the rate limiter.",
		}, func() float64 { return float64(trackedClients()) }),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.UnknownVersions,
		m.RateLimited,
		m.RateLimiterClients,
	)

	return m
}

// ObserveRequest records one completed HTTP request.
// An empty route (no chi match) is reported as "unmatched".
func (m *Metrics) ObserveRequest(route, method string, status int, latency time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(route).Observe(latency.Seconds())
}
