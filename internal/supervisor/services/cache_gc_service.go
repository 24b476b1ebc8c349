// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/tripwise/internal/cache"
)

// GarbageCollector is a blocking GC loop. Satisfied by *cache.GarbageCollector.
type GarbageCollector interface {
	RunWithContext(ctx context.Context) error
}

// CacheGCService runs the provider cache garbage collector.
type CacheGCService struct {
	gc   GarbageCollector
	name string
}

// NewCacheGCService wraps gc.
func NewCacheGCService(gc GarbageCollector) *CacheGCService {
	return &CacheGCService{gc: gc, name: "cache-gc"}
}

// Serve implements suture.Service. A closed store ends the service for good.
func (s *CacheGCService) Serve(ctx context.Context) error {
	err := s.gc.RunWithContext(ctx)
	if errors.Is(err, cache.ErrClosed) {
		return fmt.Errorf("%w: %w", suture.ErrDoNotRestart, err)
	}
	return err
}

func (s *CacheGCService) String() string {
	return s.name
}
