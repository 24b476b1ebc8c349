// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/tripwise/internal/api"
	"github.com/tomtom215/tripwise/internal/cache"
	"github.com/tomtom215/tripwise/internal/classifier"
	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/database"
	"github.com/tomtom215/tripwise/internal/events"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/providers"
	"github.com/tomtom215/tripwise/internal/recommend"
	"github.com/tomtom215/tripwise/internal/supervisor"
	"github.com/tomtom215/tripwise/internal/supervisor/services"
)

// components holds everything main wires together. Fields that belong to a
// disabled feature stay nil.
type components struct {
	db         *database.DB
	classifier *classifier.Classifier
	cache      cache.Store
	cacheGC    *cache.GarbageCollector
	providers  *providers.Set
	bus        *events.Bus
	publisher  *events.Publisher
	engine     *recommend.Engine
	handler    *api.Handler
}

// Close releases the bus, publisher, cache and database in reverse
// construction order.
func (c *components) Close() {
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event publisher")
		}
	}
	if c.bus != nil {
		if err := c.bus.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing event bus")
		}
	}
	if c.cache != nil {
		if err := c.cache.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing provider cache")
		}
	}
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}
}

// initDatabase opens DuckDB and inserts the built-in starting locations
// when seeding is enabled.
func initDatabase(ctx context.Context, cfg *config.DatabaseConfig) (*database.DB, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	if cfg.SeedLocations {
		added, err := db.SeedStartingLocations(ctx)
		if err != nil {
			_ = db.Close() // startup already failed
			return nil, fmt.Errorf("seed starting locations: %w", err)
		}
		logging.Info().Int("added", added).Msg("Starting locations seeded")
	}
	return db, nil
}

// initCache opens the provider cache. A disabled cache yields cache.Disabled
// and no garbage collector.
func initCache(cfg *config.CacheConfig) (cache.Store, *cache.GarbageCollector, error) {
	if !cfg.Enabled {
		logging.Info().Msg("Provider cache disabled (CACHE_ENABLED=false)")
		return cache.Disabled{}, nil, nil
	}
	store, err := cache.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, cache.NewGarbageCollector(store, cfg.GCInterval), nil
}

// initEvents creates the event bus and its publisher. Both are nil when
// events are disabled.
func initEvents(ctx context.Context, cfg *config.EventsConfig, breakerCfg config.BreakerConfig) (*events.Bus, *events.Publisher, error) {
	if !cfg.Enabled {
		logging.Info().Msg("Event bus disabled (EVENTS_ENABLED=false)")
		return nil, nil, nil
	}
	wmLogger := logging.NewWatermillLoggerWithLogger(logging.WithComponent("events"))
	bus, err := events.NewBus(ctx, cfg, wmLogger)
	if err != nil {
		return nil, nil, fmt.Errorf("create event bus: %w", err)
	}
	logging.Info().Str("backend", bus.Backend()).Msg("Event bus ready")
	return bus, events.NewPublisher(bus.Publisher(), breakerCfg), nil
}

// eventRouterFactory builds a fresh consumer router on every supervisor
// restart.
func eventRouterFactory(cfg *config.EventsConfig, bus *events.Bus, recorder events.Recorder) services.RouterFactory {
	wmLogger := logging.NewWatermillLoggerWithLogger(logging.WithComponent("event-router"))
	return func() (services.EventRouter, error) {
		return events.NewRouter(events.RouterConfigFrom(cfg), bus.Subscriber(), recorder, wmLogger)
	}
}

// newEngine builds the recommendation engine. A nil publisher leaves
// recommendation events off.
func newEngine(cfg *config.RecommendConfig, db *database.DB, clf recommend.Classifier, set *providers.Set, pub *events.Publisher) (*recommend.Engine, error) {
	deps := recommend.Deps{
		Catalog:        db,
		Questionnaires: db,
		Classifier:     clf,
		Distances:      set.Distance,
		Weather:        set.Weather,
		Hotels:         set.Hotels,
		Transit:        set.Transit,
	}
	if pub != nil {
		deps.Events = pub
	}
	return recommend.NewEngine(recommend.ConfigFrom(cfg), deps, logging.WithComponent("recommend"))
}

// newHandler builds the HTTP handler on top of the wired components.
func newHandler(c *components) (*api.Handler, error) {
	deps := api.HandlerDeps{
		Store:       c.db,
		Recommender: c.engine,
		Weather:     c.providers.Weather,
		Hotels:      c.providers.Hotels,
		ModelReady:  func() bool { return c.classifier != nil },
	}
	if c.publisher != nil {
		deps.Events = c.publisher
	}
	return api.NewHandler(deps)
}

// newHTTPServer wraps handler in an http.Server built from cfg.
func newHTTPServer(cfg *config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}

// addServices registers the long-running services with the tree.
func addServices(tree *supervisor.SupervisorTree, cfg *config.Config, c *components, server *http.Server) {
	if c.cacheGC != nil {
		tree.AddMaintenanceService(services.NewCacheGCService(c.cacheGC))
		logging.Info().Dur("interval", cfg.Cache.GCInterval).Msg("Cache GC service added")
	}
	tree.AddMaintenanceService(services.NewCheckpointService(c.db, cfg.Database.CheckpointInterval, logging.WithComponent("checkpoint")))

	if c.bus != nil {
		tree.AddMessagingService(services.NewEventRouterService(eventRouterFactory(&cfg.Events, c.bus, c.db)))
		logging.Info().Str("backend", c.bus.Backend()).Msg("Event router service added")
	}

	shutdown := cfg.Server.ShutdownTimeout
	if shutdown <= 0 {
		shutdown = 10 * time.Second
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdown))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")
}
