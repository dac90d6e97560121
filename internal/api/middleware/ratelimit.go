package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/waskito/ocpi-versions/internal/domain"
	"github.com/waskito/ocpi-versions/internal/metrics"
	"github.com/waskito/ocpi-versions/internal/ratelimiter"
)

// clientKey extracts the client IP from RemoteAddr, falling back to the
// raw value when it carries no port (as after TrustedRealIP).
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit rejects requests from clients that exhausted their bucket with
// 429 and an OCPI 2000 envelope stamped by now.
func RateLimit(limiters *ratelimiter.ClientLimiters, m *metrics.Metrics, now func() time.Time) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiters.Allow(clientKey(r)) {
				next.ServeHTTP(w, r)
				return
			}

			if m != nil {
				m.RateLimited.Inc()
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			_ = enc.Encode(domain.Failure(domain.StatusClientError, now()))
		})
	}
}
