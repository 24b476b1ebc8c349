// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package testinfra starts Docker containers for integration tests.
//
// Everything here is behind the integration build tag:
//
//	go test -tags integration ./...
//
// # NATS
//
// NewNATSContainer runs a JetStream-enabled NATS server so the event bus can
// be exercised against a real broker:
//
//	func TestBus(t *testing.T) {
//	    testinfra.SkipIfNoDocker(t)
//	    ctx := context.Background()
//
//	    natsC, err := testinfra.NewNATSContainer(ctx)
//	    if err != nil {
//	        t.Fatal(err)
//	    }
//	    defer testinfra.CleanupContainer(t, ctx, natsC)
//
//	    cfg.NATS.URL = natsC.URL
//	    bus, err := events.NewBus(ctx, cfg, logger)
//	    // ...
//	}
//
// Tests call SkipIfNoDocker first so that machines without a Docker daemon
// skip instead of failing.
package testinfra
