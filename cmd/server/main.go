// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/tripwise/docs" // Import generated swagger docs
	"github.com/tomtom215/tripwise/internal/api"
	"github.com/tomtom215/tripwise/internal/classifier"
	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/providers"
	"github.com/tomtom215/tripwise/internal/supervisor"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   "tripwise",
	})

	logging.Info().
		Str("db_path", cfg.Database.Path).
		Str("environment", cfg.Server.Environment).
		Bool("events_enabled", cfg.Events.Enabled).
		Bool("nats_enabled", cfg.Events.NATS.Enabled).
		Msg("Starting Tripwise with supervisor tree")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Tripwise stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

// run wires every component, serves until SIGINT or SIGTERM and releases
// resources on the way out. Startup failures are returned before anything
// is served.
//
//nolint:gocyclo // Sequential setup steps
func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := &components{}
	defer c.Close()

	var err error
	c.db, err = initDatabase(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	logging.Info().Msg("Database initialized successfully")

	// A service that cannot classify travelers is useless, so a bad
	// artifact stops startup.
	c.classifier, err = classifier.Load(cfg.Classifier.ArtifactPath, logging.WithComponent("classifier"))
	if err != nil {
		return err
	}

	c.cache, c.cacheGC, err = initCache(&cfg.Cache)
	if err != nil {
		return err
	}
	c.providers = providers.New(&cfg.Providers, &cfg.Cache, c.cache)

	c.bus, c.publisher, err = initEvents(ctx, &cfg.Events, cfg.Providers.Breaker)
	if err != nil {
		return err
	}

	c.engine, err = newEngine(&cfg.Recommend, c.db, c.classifier, c.providers, c.publisher)
	if err != nil {
		return err
	}

	c.handler, err = newHandler(c)
	if err != nil {
		return err
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.IsProduction() && len(cfg.Security.CORSOrigins) == 1 && cfg.Security.CORSOrigins[0] == "*" {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS to the web client origin")
	}

	router := api.NewRouter(c.handler, api.ChiMiddlewareConfigFrom(&cfg.Security))
	server := newHTTPServer(&cfg.Server, router.Setup())

	// Bridge zerolog to slog for sutureslog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})
	if err != nil {
		return err
	}
	addServices(tree, cfg, c, server)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case treeErr = <-errCh:
		if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
			logging.Error().Err(treeErr).Msg("Supervisor tree error")
		}
		cancel()
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		return treeErr
	}
	return nil
}
