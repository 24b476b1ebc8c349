// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package services adapts Tripwise components to suture.Service.

Every wrapper implements Serve(ctx) error and String() string:

  - HTTPServerService: ListenAndServe plus Shutdown with a timeout.
  - EventRouterService: builds a Watermill router from a factory on every
    start, since a closed router cannot be run again.
  - CacheGCService: the Badger value-log GC loop. A closed store stops it
    with suture.ErrDoNotRestart.
  - CheckpointService: periodic DuckDB CHECKPOINT plus one on shutdown.

Wrappers return ctx.Err() on a clean stop and a wrapped error otherwise, so
the supervisor can tell a shutdown from a crash.

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddMessagingService(services.NewEventRouterService(func() (services.EventRouter, error) {
	    return newRouter()
	}))
*/
package services
