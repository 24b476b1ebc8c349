// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package cache stores upstream provider responses with a per-namespace TTL.

Distance, weather, hotel, and transit lookups are slow, metered, and change
far less often than they are requested. Each provider client checks the cache
before calling out and writes the decoded response back on success.

# Backends

  - BadgerStore: BadgerDB with native entry TTLs. Opened on disk by default so
    the cache survives restarts, or fully in memory when cache.in_memory is set
    (tests and ephemeral deployments).
  - Disabled: a no-op Store used when cache.enabled is false. Every lookup is
    a miss and every write is dropped.

# Keys

Keys are namespaced ("distance", "weather", "hotels", "transit") so that
entries of different shapes never collide. Key hashes the lookup parameters:

	key := cache.Key(origin, dest)
	var leg models.TripLeg
	hit, err := store.Get(ctx, cache.NamespaceDistance, key, &leg)

Values are JSON-encoded with goccy/go-json.

# Garbage Collection

Expired entries disappear from reads immediately but their bytes stay in the
value log until BadgerDB's value-log GC rewrites it. GarbageCollector runs that
GC on an interval and is supervised alongside the other background services.

# Metrics

Every lookup increments tripwise_cache_hits_total or tripwise_cache_misses_total
labeled by namespace.
*/
package cache
