// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package supervisor runs the long-lived Tripwise services under suture v4.

# Tree

	tripwise
	├── maintenance-layer
	│   ├── cache-gc        (if CACHE_ENABLED)
	│   └── db-checkpoint
	├── messaging-layer
	│   └── event-router
	└── api-layer
	    └── api-server

Each layer is its own supervisor with the same restart policy. A service that
returns an error is restarted with backoff; after FailureThreshold failures
within the decay window its supervisor pauses for FailureBackoff. Failures
never cross layers.

# Logging

Supervisor events (start, stop, panic, backoff) go through sutureslog into the
slog adapter in the logging package, so they land in the same zerolog stream
as the rest of the server.

# Shutdown

Canceling the context passed to Serve stops every service. Services that do
not return within ShutdownTimeout are listed by UnstoppedServiceReport.

See the services subpackage for the Serve wrappers.
*/
package supervisor
