package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/waskito/ocpi-versions/internal/metrics"
)

func TestMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg, nil)

	m.ObserveRequest("/versions/{version_id}", "GET", 404, 3*time.Millisecond)
	m.ObserveRequest("/versions/{version_id}", "GET", 404, time.Millisecond)
	m.ObserveRequest("", "GET", 404, time.Millisecond)

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/versions/{version_id}", "GET", "404")); got != 2 {
		t.Fatalf("expected 2 requests, got %v", got)
	}
	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues("unmatched", "GET", "404")); got != 1 {
		t.Fatalf("expected 1 unmatched request, got %v", got)
	}
	if n := testutil.CollectAndCount(m.RequestDuration); n != 2 {
		t.Fatalf("expected 2 histogram series, got %d", n)
	}
}

func TestMetrics_RateLimiterClientsGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	clients := 4
	m := metrics.New(reg, func() int { return clients })

	if got := testutil.ToFloat64(m.RateLimiterClients); got != 4 {
		t.Fatalf("expected gauge=4, got %v", got)
	}
	clients = 1
	if got := testutil.ToFloat64(m.RateLimiterClients); got != 1 {
		t.Fatalf("expected gauge=1, got %v", got)
	}
}

func TestMetrics_RegisterTwicePanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg, nil)

	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate registration to panic")
		}
	}()
	metrics.New(reg, nil)
}
