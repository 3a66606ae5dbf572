// Package main provides the entry point for the social data API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opensocial/social-data-service/internal/config"
	"github.com/opensocial/social-data-service/internal/observability"
	httpserver "github.com/opensocial/social-data-service/internal/server/http"
	"github.com/opensocial/social-data-service/internal/service"
	"github.com/opensocial/social-data-service/internal/storage/factory"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Set up structured logging.
	logger := observability.NewLogger(observability.LoggingConfig{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Output:    cfg.Logging.Output,
		AddSource: cfg.Logging.AddSource,
	})
	logger = logger.With().Str("component", "server").Logger()
	logger.Info().Msg("social-data-service server starting")

	// Set up context with graceful shutdown via OS signals.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to the configured document store.
	stores, backend, err := factory.NewStores(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to storage: %w", err)
	}
	defer func() {
		if closeErr := backend.Close(context.Background()); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close storage backend")
		}
	}()
	logger.Info().Str("backend", cfg.Database.Backend).Msg("storage backend ready")

	// Create metrics when enabled.
	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	// Create entity resolvers and the reference resolver.
	svcs := httpserver.Services{
		Users:     service.NewUserService(stores.Users, logger),
		Posts:     service.NewPostService(stores.Posts, stores.Users, logger),
		Comments:  service.NewCommentService(stores.Comments, logger),
		Tags:      service.NewTagService(stores.Tags, logger),
		Locations: service.NewLocationService(stores.Locations, logger),
		Resolver:  service.NewReferenceResolver(stores, logger),
	}

	httpCfg := httpserver.Config{
		Address:          cfg.Server.HTTPAddress(),
		ReadTimeout:      cfg.Server.ReadTimeout,
		WriteTimeout:     cfg.Server.WriteTimeout,
		IdleTimeout:      cfg.Server.IdleTimeout,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimitRPS:     cfg.RateLimit.RequestsPerSecond,
		RateLimitBurst:   cfg.RateLimit.Burst,
	}

	httpSrv := httpserver.NewServer(httpCfg, svcs, backend, metrics, logger)

	// Set up Prometheus metrics handler on a separate port if configured.
	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", promhttp.Handler())
		metricsServer = &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Metrics.Port),
			Handler:      metricsMux,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		}
	}

	// Channel to collect server errors.
	errCh := make(chan error, 2)

	// Start HTTP REST API server in background.
	go func() {
		if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Start metrics server if configured.
	if metricsServer != nil {
		go func() {
			logger.Info().
				Str("address", metricsServer.Addr).
				Msg("metrics server starting")
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	readyLog := logger.Info().Str("http_address", httpCfg.Address)
	if metricsServer != nil {
		readyLog = readyLog.Str("metrics_address", metricsServer.Addr)
	}
	readyLog.Msg("social-data-service is ready")

	// Wait for shutdown signal or server error.
	select {
	case <-ctx.Done():
		logger.Info().Msg("received shutdown signal")
	case err := <-errCh:
		logger.Error().Err(err).Msg("server error")
		return err
	}

	// Graceful shutdown.
	logger.Info().Msg("shutting down social-data-service")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("HTTP server shutdown error")
	}

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("metrics server shutdown error")
		}
	}

	logger.Info().Msg("social-data-service shutdown complete")
	return nil
}
