// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package cache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Cache namespaces, one per provider.
const (
	NamespaceDistance = "distance"
	NamespaceWeather  = "weather"
	NamespaceHotels   = "hotels"
	NamespaceTransit  = "transit"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("cache closed")

// Store is a namespaced key-value cache with per-entry expiry.
//
// Get decodes a hit into dst and reports whether the key was present. A miss
// is not an error. Set with a non-positive ttl is a no-op.
type Store interface {
	Get(ctx context.Context, namespace, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, namespace, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, namespace, key string) error
	Close() error
}

// Stats is a snapshot of lookup counters.
type Stats struct {
	Hits   int64
	Misses int64
	Writes int64
}

// HitRate returns hits as a percentage of lookups, or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// Key derives a fixed-length key from lookup parameters. Parameters are
// JSON-encoded, so struct field order and float formatting are stable.
//
//	cache.Key("Kandy")                        // weather by city
//	cache.Key(origin, []models.Coordinates{}) // batched distances
func Key(parts ...interface{}) string {
	data, err := json.Marshal(parts)
	if err != nil {
		return fmt.Sprintf("%v", parts)
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:16])
}

func storageKey(namespace, key string) []byte {
	return []byte(namespace + ":" + key)
}

// Disabled is a Store that never hits. It is used when caching is turned off.
type Disabled struct{}

// Get always reports a miss.
func (Disabled) Get(context.Context, string, string, interface{}) (bool, error) {
	return false, nil
}

// Set discards the value.
func (Disabled) Set(context.Context, string, string, interface{}, time.Duration) error {
	return nil
}

// Delete is a no-op.
func (Disabled) Delete(context.Context, string, string) error {
	return nil
}

// Close is a no-op.
func (Disabled) Close() error {
	return nil
}

var (
	_ Store = Disabled{}
	_ Store = (*BadgerStore)(nil)
)
