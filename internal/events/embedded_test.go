// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package events

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"

	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/logging"
)

func TestListenAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url      string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"nats://127.0.0.1:4223", "127.0.0.1", 4223, false},
		{"nats://localhost", "localhost", defaultNATSPort, false},
		{"nats://127.0.0.1:0", "127.0.0.1", server.RANDOM_PORT, false},
		{"nats://:4222", "", 0, true},
	}
	for _, tt := range tests {
		host, port, err := listenAddr(tt.url)
		if (err != nil) != tt.wantErr {
			t.Errorf("listenAddr(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			continue
		}
		if host != tt.wantHost || port != tt.wantPort {
			t.Errorf("listenAddr(%q) = %s:%d, want %s:%d", tt.url, host, port, tt.wantHost, tt.wantPort)
		}
	}
}

func TestEmbeddedBus_RecommendationRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("starts a NATS server")
	}

	cfg := &config.EventsConfig{
		Enabled:            true,
		RouterCloseTimeout: 5 * time.Second,
		NATS: config.NATSConfig{
			Enabled:       true,
			Embedded:      true,
			URL:           "nats://127.0.0.1:0",
			StoreDir:      t.TempDir(),
			DurableName:   "tripwise-test",
			QueueGroup:    "tripwise-test",
			MaxReconnects: 2,
			ReconnectWait: 100 * time.Millisecond,
			StreamName:    "TRIPWISE",
			StreamMaxAge:  time.Hour,
		},
	}

	bus, err := NewBus(context.Background(), cfg, logging.NewWatermillLogger())
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}
	t.Cleanup(func() {
		if err := bus.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	if bus.Backend() != BackendNATS {
		t.Fatalf("Backend() = %q, want %q", bus.Backend(), BackendNATS)
	}

	rec := newFakeRecorder()
	router := startRouter(t, bus, rec)

	pub := NewPublisher(bus.Publisher(), testBreakerConfig())
	if err := pub.PublishRecommendationServed(context.Background(), servedEvent("embedded-1")); err != nil {
		t.Fatalf("PublishRecommendationServed() error = %v", err)
	}

	if got := waitRecorded(t, rec); got.EventID != "embedded-1" {
		t.Errorf("recorded event = %q", got.EventID)
	}
	waitFor(t, func() bool { return router.Stats().Persisted == 1 })
}
