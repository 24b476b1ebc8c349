// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/tripwise/internal/logging"
)

// Collectable is the part of a store the garbage collector drives.
type Collectable interface {
	RunGC() error
}

// GarbageCollector periodically reclaims value-log space.
type GarbageCollector struct {
	store    Collectable
	interval time.Duration
}

// NewGarbageCollector returns a collector that runs every interval.
// A non-positive interval defaults to ten minutes.
func NewGarbageCollector(store Collectable, interval time.Duration) *GarbageCollector {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &GarbageCollector{store: store, interval: interval}
}

// RunWithContext blocks until ctx is canceled, running GC on every tick.
// GC failures are logged and do not stop the loop. A closed store ends it.
func (g *GarbageCollector) RunWithContext(ctx context.Context) error {
	logger := logging.WithComponent("cache-gc")
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			err := g.store.RunGC()
			if errors.Is(err, ErrClosed) {
				return err
			}
			if err != nil {
				logger.Warn().Err(err).Msg("Cache GC failed")
				continue
			}
			logger.Debug().Dur("duration", time.Since(start)).Msg("Cache GC completed")
		}
	}
}
