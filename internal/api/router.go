package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/waskito/ocpi-versions/internal/api/handler"
	apimw "github.com/waskito/ocpi-versions/internal/api/middleware"
	"github.com/waskito/ocpi-versions/internal/metrics"
	"github.com/waskito/ocpi-versions/internal/ratelimiter"
	"github.com/waskito/ocpi-versions/internal/service"
)

// Options carries the router's collaborators. Nil Limiters disables rate
// limiting, nil Docs hides the docs route, empty CORSOrigins skips CORS.
// Forwarding headers are honoured only from TrustedProxies.
type Options struct {
	Service        *service.VersionService
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	Limiters       *ratelimiter.ClientLimiters
	TrustedProxies []string
	Docs           []byte
	CORSOrigins    []string
	Clock          handler.Clock
	Logger         *zap.Logger
}

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(opts Options) http.Handler {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)
	r.Use(apimw.TrustedRealIP(opts.TrustedProxies))
	r.Use(apimw.Tracing)
	r.Use(apimw.RequestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(apimw.RequestMetrics(opts.Metrics))
	}
	if len(opts.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: opts.CORSOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{
				"Content-Type", "Authorization",
				apimw.HeaderRequestID, apimw.HeaderCorrelationID,
			},
			ExposedHeaders: []string{apimw.HeaderRequestID, apimw.HeaderCorrelationID},
		}).Handler)
	}
	// --- handler instances ---
	vh := handler.NewVersionHandler(opts.Service, opts.Metrics, opts.Clock, opts.Logger)
	hh := handler.NewHealthHandler(opts.Clock)

	// --- routes ---
	r.Get("/health", hh.Health)

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	// Only the Versions module is rate limited; /health and /metrics always answer.
	r.Group(func(r chi.Router) {
		if opts.Limiters != nil {
			r.Use(apimw.RateLimit(opts.Limiters, opts.Metrics, opts.Clock))
		}
		r.Get("/versions", vh.List)
		// "/versions/" is an explicit empty version_id, answered like any other
		// unknown version instead of chi's plain 404.
		r.Get("/versions/", vh.Detail)
		r.Get("/versions/{version_id}", vh.Detail)
	})

	if opts.Docs != nil {
		r.Get("/docs/openapi.json", handler.NewDocsHandler(opts.Docs).OpenAPI)
	}

	return r
}
