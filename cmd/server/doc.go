// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package main is the entry point for the Tripwise server.

Tripwise classifies a traveler from a short questionnaire, ranks catalog
destinations against the predicted traveler types and the travel season, and
estimates the transport budget of the trip from road distances.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("tripwise")
	├── DataSupervisor ("data-layer")
	│   ├── Cache GC (Badger value-log compaction, when the cache is enabled)
	│   └── Checkpoint (periodic DuckDB CHECKPOINT)
	├── MessagingSupervisor ("messaging-layer")
	│   └── Event Router (Watermill consumers, when events are enabled)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file and environment
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB schema and built-in starting locations
 4. Classifier: traveler-type forest artifact (fatal when missing or invalid)
 5. Cache: BadgerDB provider response cache
 6. Providers: distance, transit, weather and hotels clients (resty, gobreaker)
 7. Events: Watermill bus over a Go channel or NATS JetStream (external or embedded)
 8. Recommendation engine and HTTP handler
 9. Supervisor tree

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=3857
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Storage
	DUCKDB_PATH=/data/tripwise.duckdb
	CLASSIFIER_PATH=assets/classifier/forest.json

	# Providers
	GOOGLE_MAPS_API_KEY=<key>
	OPENWEATHER_API_KEY=<key>
	HOTELS_API_URL=https://hotels.example/api
	HOTELS_API_KEY=<key>

	# Events (optional NATS backend)
	EVENTS_ENABLED=true
	NATS_ENABLED=false
	NATS_URL=nats://localhost:4222
	NATS_EMBEDDED=false           # run JetStream in-process on NATS_URL's port
	NATS_STORE_DIR=/data/nats

	# Rate limits (per minute by default)
	RATE_LIMIT_REQUESTS=100       # per client IP
	USER_RATE_LIMIT_REQUESTS=30   # per traveler on /users/{userID}

A provider without an API key is disabled; its lookups fall back and the
affected responses are flagged partial.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (SHUTDOWN_TIMEOUT)
 3. Stops the event router, letting handlers finish
 4. Closes the event bus, the provider cache and the database
 5. Reports any services that failed to stop

# API Documentation

Swagger documentation is available at /swagger/index.html when the server
is running. Prometheus metrics are exported at /metrics.

# See Also

  - internal/config: Configuration management
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
  - internal/recommend: Recommendation and budget pipeline
  - cmd/tripctl: Operator CLI
*/
package main
