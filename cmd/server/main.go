package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/waskito/ocpi-versions/internal/api"
	"github.com/waskito/ocpi-versions/internal/config"
	"github.com/waskito/ocpi-versions/internal/docs"
	"github.com/waskito/ocpi-versions/internal/metrics"
	"github.com/waskito/ocpi-versions/internal/ratelimiter"
	"github.com/waskito/ocpi-versions/internal/service"
)

const (
	limiterSweepInterval = time.Minute
	limiterIdleTimeout   = 10 * time.Minute
)

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		bootLogger, _ := zap.NewProduction()
		bootLogger.Fatal("failed to load config", zap.Error(err))
	}

	logger, err := newLogger(cfg.DevMode)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	// ---- core dependencies ----
	var limiters *ratelimiter.ClientLimiters
	trackedClients := func() int { return 0 }
	if cfg.RateLimit > 0 {
		limiters = ratelimiter.New(cfg.RateLimit, cfg.RateBurst)
		trackedClients = limiters.Len
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg, trackedClients)
	svc := service.NewVersionService(cfg.BaseURL)

	var apiDocs []byte
	if cfg.DevMode {
		apiDocs, err = docs.JSON(ctx, cfg.BaseURL)
		if err != nil {
			logger.Fatal("failed to load API docs", zap.Error(err))
		}
		logger.Info("API docs enabled", zap.String("path", "/docs/openapi.json"))
	}

	// Context for background goroutines; cancelled on shutdown signal.
	bgCtx, cancelBg := context.WithCancel(ctx)
	defer cancelBg()
	if limiters != nil {
		go limiters.Run(bgCtx, limiterSweepInterval, limiterIdleTimeout)
	}

	// ---- HTTP server ----
	router := api.NewRouter(api.Options{
		Service:        svc,
		Metrics:        m,
		Gatherer:       reg,
		Limiters:       limiters,
		TrustedProxies: cfg.TrustedProxies,
		Docs:           apiDocs,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		Logger:         logger,
	})
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("base_url", cfg.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}
	cancelBg()

	logger.Info("server stopped cleanly")
}
