// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

//go:build integration

package events

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/testinfra"
)

func TestNATSBus_RecommendationRoundTrip(t *testing.T) {
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	natsC, err := testinfra.NewNATSContainer(ctx)
	if err != nil {
		t.Fatalf("NewNATSContainer() error = %v", err)
	}
	defer testinfra.CleanupContainer(t, ctx, natsC)

	cfg := &config.EventsConfig{
		Enabled:            true,
		RouterCloseTimeout: 5 * time.Second,
		NATS: config.NATSConfig{
			Enabled:       true,
			URL:           natsC.URL,
			DurableName:   "tripwise-it",
			QueueGroup:    "tripwise-it",
			MaxReconnects: 5,
			ReconnectWait: time.Second,
			StreamName:    "TRIPWISE",
			StreamMaxAge:  time.Hour,
		},
	}

	bus, err := NewBus(ctx, cfg, logging.NewWatermillLogger())
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}
	defer bus.Close()

	if bus.Backend() != BackendNATS {
		t.Fatalf("Backend() = %q, want %q", bus.Backend(), BackendNATS)
	}

	rec := newFakeRecorder()
	router := startRouter(t, bus, rec)

	pub := NewPublisher(bus.Publisher(), testBreakerConfig())
	if err := pub.PublishRecommendationServed(ctx, servedEvent("nats-1")); err != nil {
		t.Fatalf("PublishRecommendationServed() error = %v", err)
	}

	got := waitRecorded(t, rec)
	if got.EventID != "nats-1" || got.Destinations[0].Name != "Ella" {
		t.Errorf("recorded = %+v", got)
	}
	waitFor(t, func() bool { return router.Stats().Persisted == 1 })
}
