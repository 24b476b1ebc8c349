// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/tomtom215/tripwise/internal/cache"
	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/events"
	"github.com/tomtom215/tripwise/internal/models"
)

type nopRecorder struct{}

func (nopRecorder) RecordRecommendationServed(context.Context, *models.RecommendationServed) error {
	return nil
}

func TestInitCache(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		store, gc, err := initCache(&config.CacheConfig{Enabled: false})
		if err != nil {
			t.Fatalf("initCache() error = %v", err)
		}
		if _, ok := store.(cache.Disabled); !ok {
			t.Errorf("store = %T, want cache.Disabled", store)
		}
		if gc != nil {
			t.Error("garbage collector should be nil for a disabled cache")
		}
	})

	t.Run("in memory", func(t *testing.T) {
		store, gc, err := initCache(&config.CacheConfig{Enabled: true, InMemory: true, GCInterval: time.Minute})
		if err != nil {
			t.Fatalf("initCache() error = %v", err)
		}
		defer store.Close()

		if _, ok := store.(*cache.BadgerStore); !ok {
			t.Errorf("store = %T, want *cache.BadgerStore", store)
		}
		if gc == nil {
			t.Error("garbage collector should be created for an enabled cache")
		}
	})
}

func TestInitEvents(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		bus, pub, err := initEvents(context.Background(), &config.EventsConfig{Enabled: false}, config.BreakerConfig{})
		if err != nil || bus != nil || pub != nil {
			t.Errorf("initEvents() = (%v, %v, %v), want all nil", bus, pub, err)
		}
	})

	t.Run("in process", func(t *testing.T) {
		cfg := &config.EventsConfig{Enabled: true, RouterCloseTimeout: time.Second}
		bus, pub, err := initEvents(context.Background(), cfg, config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      time.Second,
			FailureRatio: 0.5,
			MinRequests:  3,
		})
		if err != nil {
			t.Fatalf("initEvents() error = %v", err)
		}
		defer bus.Close()

		if bus.Backend() != events.BackendInProcess {
			t.Errorf("Backend() = %q, want %q", bus.Backend(), events.BackendInProcess)
		}
		if pub == nil {
			t.Fatal("publisher should not be nil")
		}

		router, err := eventRouterFactory(cfg, bus, nopRecorder{})()
		if err != nil {
			t.Fatalf("router factory error = %v", err)
		}
		if err := router.Close(); err != nil {
			t.Errorf("router Close() error = %v", err)
		}
	})
}

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	srv := newHTTPServer(&config.ServerConfig{Host: "127.0.0.1", Port: 3857, Timeout: 30 * time.Second}, http.NotFoundHandler())
	if srv.Addr != "127.0.0.1:3857" {
		t.Errorf("Addr = %q", srv.Addr)
	}
	if srv.ReadTimeout != 30*time.Second || srv.WriteTimeout != 30*time.Second {
		t.Errorf("timeouts = %v/%v", srv.ReadTimeout, srv.WriteTimeout)
	}
	if srv.ReadHeaderTimeout == 0 {
		t.Error("ReadHeaderTimeout should be set")
	}
}

func TestComponentsClose_Empty(t *testing.T) {
	t.Parallel()

	// Partially wired components are closed on startup failure.
	c := &components{}
	c.Close()
}
