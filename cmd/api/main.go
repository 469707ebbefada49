package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"erp-lookup/config"
	_ "erp-lookup/docs" // Swagger docs
	"erp-lookup/internal/httpserver"
	"erp-lookup/internal/lookup"
	"erp-lookup/internal/lookup/repository/upstream"
	"erp-lookup/internal/lookup/usecase"
	"erp-lookup/internal/middleware"
	"erp-lookup/internal/model"
	"erp-lookup/pkg/log"
	"erp-lookup/pkg/metrics"
)

// @title       ERP Lookup API
// @description Paginated reference-data cache in front of the ERP lookup endpoints.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting ERP Lookup...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "ERP base URL: %s", cfg.Upstream.BaseURL)

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(cfg.Metrics.Namespace, registry)

	// 4. ERP upstream
	client := upstream.NewClient(ctx, upstream.Config{
		BaseURL:         cfg.Upstream.BaseURL,
		Timeout:         cfg.Upstream.Timeout,
		TokenURL:        cfg.Upstream.TokenURL,
		ClientID:        cfg.Upstream.ClientID,
		ClientSecret:    cfg.Upstream.ClientSecret,
		Scopes:          cfg.Upstream.Scopes,
		RateLimitPerMin: cfg.Upstream.RateLimitPerMin,
		CacheSize:       cfg.Upstream.CacheSize,
		CacheTTL:        cfg.Upstream.CacheTTL,
		Breaker: upstream.BreakerConfig{
			MaxRequests:  cfg.Breaker.MaxRequests,
			Interval:     cfg.Breaker.Interval,
			Timeout:      cfg.Breaker.Timeout,
			FailureRatio: cfg.Breaker.FailureRatio,
			MinRequests:  cfg.Breaker.MinRequests,
		},
		OnBreakerStateChange: func(collection string, from, to upstream.BreakerState) {
			logger.Warnf(ctx, "ERP breaker %s: %s -> %s", collection, from, to)
			m.ObserveBreakerState(collection, string(to))
		},
	}, logger)
	repo := upstream.New[model.LookupItem](client, logger)

	// 5. Lookup domain
	uc, err := usecase.New(usecase.Config{
		Entities:     entities(cfg.Lookup.Entities),
		DefaultLimit: cfg.Lookup.DefaultLimit,
		MaxLimit:     cfg.Lookup.MaxLimit,
		MaxItems:     cfg.Lookup.MaxItems,
		Options: usecase.Options{
			RetryAttempts: cfg.Lookup.RetryAttempts,
			RetryDelay:    cfg.Lookup.RetryDelay,
			Recorder:      m,
		},
	}, repo, logger)
	if err != nil {
		logger.Error(ctx, "Failed to initialize lookup registry: ", err)
		return
	}

	// 6. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		BoundarySize: cfg.Boundary.CacheSize,
		BoundaryTTL:  cfg.Boundary.TTL,
	}, m)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		LookupUseCase:   uc,
		Middleware:      mw,
		Breakers:        client,
		Gatherer:        registry,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// entities maps configured entities, falling back to the built-in catalog.
func entities(cfgs []config.EntityConfig) []lookup.EntityConfig {
	if len(cfgs) == 0 {
		return lookup.DefaultEntities()
	}
	out := make([]lookup.EntityConfig, 0, len(cfgs))
	for _, e := range cfgs {
		out = append(out, lookup.EntityConfig{
			Name:         e.Name,
			Collection:   e.Collection,
			DefaultLimit: e.DefaultLimit,
			MaxLimit:     e.MaxLimit,
			MaxItems:     e.MaxItems,
			Permission:   e.Permission,
			Filters:      e.Filters,
		})
	}
	return out
}
