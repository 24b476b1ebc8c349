// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package config provides centralized configuration management for Tripwise.

Configuration is loaded with Koanf v2 in layers: built-in defaults, an optional
YAML file, then environment variables. Later layers override earlier ones.

# Configuration Sources

  - Defaults from defaultConfig()
  - config.yaml / config.yml in the working directory or /etc/tripwise/,
    or the file named by CONFIG_PATH
  - Environment variables, mapped explicitly through envTransformFunc

Unknown environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 3857)
  - ENVIRONMENT: development or production (default: production)

Database:
  - DUCKDB_PATH: Database file path (default: /data/tripwise.duckdb)
  - DUCKDB_MAX_MEMORY: Memory limit (default: 512MB)
  - SEED_LOCATIONS: Insert the built-in starting locations (default: true)
  - DUCKDB_CHECKPOINT_INTERVAL: Periodic CHECKPOINT interval (default: 15m)

Classifier:
  - CLASSIFIER_PATH: Model artifact (default: assets/classifier/forest.json)

Providers:
  - GOOGLE_MAPS_API_KEY: Distance matrix key
  - TRANSIT_API_KEY: Directions key for transit fares
  - OPENWEATHER_API_KEY: Weather key
  - HOTELS_API_URL, HOTELS_API_KEY: Hotel listing API
  - PROVIDER_TIMEOUT: Per-request timeout (default: 10s)

Cache:
  - CACHE_ENABLED: Cache provider responses in Badger (default: true)
  - CACHE_PATH: Badger directory (default: /data/cache)
  - CACHE_IN_MEMORY: Keep the cache in memory only (default: false)

Events:
  - EVENTS_ENABLED: Publish domain events (default: true)
  - NATS_ENABLED: Use NATS JetStream instead of the in-process bus (default: false)
  - NATS_URL: NATS server URL (default: nats://127.0.0.1:4222)
  - NATS_STREAM_NAME: JetStream stream holding tripwise.> subjects (default: TRIPWISE)
  - NATS_EMBEDDED: Run a JetStream server in-process on NATS_URL's address (default: false)
  - NATS_STORE_DIR: JetStream storage for the embedded server (default: /data/nats)

Recommendations:
  - RECOMMEND_LABEL_WEIGHT, RECOMMEND_SEASON_WEIGHT: Score blend (default: 0.6/0.4)
  - RECOMMEND_TOP_N: Result count (default: 10)
  - RECOMMEND_VERY_GOOD, RECOMMEND_GOOD: Rating thresholds (default: 0.8/0.6)

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW: Per-IP limit (default: 100/1m)
  - USER_RATE_LIMIT_REQUESTS: Per-traveler limit on /users/{userID} routes, 0 disables (default: 30)
  - DISABLE_RATE_LIMIT: Turn off rate limiting (default: false)
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: Include file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}

# Thread Safety

The Config returned by Load is read-only after construction and safe to share
across goroutines.
*/
package config
