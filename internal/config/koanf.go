// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/tripwise/config.yaml",
	"/etc/tripwise/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultClassifierPath is where the bundled traveler-type model lives.
const DefaultClassifierPath = "assets/classifier/forest.json"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3857,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
			Environment:     "production",
		},
		Database: DatabaseConfig{
			Path:                   "/data/tripwise.duckdb",
			MaxMemory:              "512MB",
			Threads:                0,
			PreserveInsertionOrder: true,
			SeedLocations:          true,
			CheckpointInterval:     15 * time.Minute,
		},
		Cache: CacheConfig{
			Enabled:     true,
			Path:        "/data/cache",
			InMemory:    false,
			DistanceTTL: 7 * 24 * time.Hour, // road distances rarely change
			WeatherTTL:  30 * time.Minute,
			HotelsTTL:   6 * time.Hour,
			TransitTTL:  24 * time.Hour,
			GCInterval:  10 * time.Minute,
		},
		Classifier: ClassifierConfig{
			ArtifactPath: DefaultClassifierPath,
		},
		Providers: ProvidersConfig{
			Timeout:    10 * time.Second,
			RetryCount: 2,
			Distance: ProviderConfig{
				Enabled:   true,
				BaseURL:   "https://maps.googleapis.com",
				RateLimit: 10,
				Burst:     10,
			},
			Transit: ProviderConfig{
				Enabled:   true,
				BaseURL:   "https://maps.googleapis.com",
				RateLimit: 10,
				Burst:     10,
			},
			Weather: ProviderConfig{
				Enabled:   true,
				BaseURL:   "https://api.openweathermap.org",
				RateLimit: 1, // free tier allows 60 calls/minute
				Burst:     5,
			},
			Hotels: ProviderConfig{
				Enabled:   false, // no public default listing API
				RateLimit: 5,
				Burst:     5,
			},
			Breaker: BreakerConfig{
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      2 * time.Minute,
				FailureRatio: 0.6,
				MinRequests:  5,
			},
		},
		Events: EventsConfig{
			Enabled: true,
			NATS: NATSConfig{
				Enabled:       false,
				URL:           "nats://127.0.0.1:4222",
				DurableName:   "tripwise-analytics",
				QueueGroup:    "tripwise-processors",
				MaxReconnects: -1, // unlimited
				ReconnectWait: 2 * time.Second,
				StreamName:    "TRIPWISE",
				StreamMaxAge:  7 * 24 * time.Hour,
				Embedded:      false,
				StoreDir:      "/data/nats",
			},
			RouterCloseTimeout:         30 * time.Second,
			RouterRetryCount:           3,
			RouterRetryInitialInterval: 100 * time.Millisecond,
		},
		Recommend: RecommendConfig{
			Scoring: ScoringConfig{
				LabelWeight:       0.6,
				SeasonWeight:      0.4,
				TopN:              10,
				VeryGoodThreshold: 0.8,
				GoodThreshold:     0.6,
			},
			RequestTimeout: 20 * time.Second,
			LookupTimeout:  8 * time.Second,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			UserRateLimitReqs: 30,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
			TrustedProxies:    []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources.
//
// Configuration Priority (highest to lowest):
//  1. Environment variables
//  2. Config file (config.yaml, or the path in CONFIG_PATH)
//  3. Built-in defaults
//
// Benefits:
//   - Type-safe configuration unmarshaling
//   - Clear precedence: ENV > File > Defaults
//   - Support for nested configuration via koanf struct tags
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := findConfigFile()
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// OPENWEATHER_API_KEY -> providers.weather.api_key
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Post-process slice fields from comma-separated strings
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
	"security.trusted_proxies",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML or defaults)
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps environment variable names (lowercased) to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Database
	"duckdb_path":                     "database.path",
	"duckdb_max_memory":               "database.max_memory",
	"duckdb_threads":                  "database.threads",
	"duckdb_preserve_insertion_order": "database.preserve_insertion_order",
	"seed_locations":                  "database.seed_locations",
	"duckdb_checkpoint_interval":      "database.checkpoint_interval",

	// Cache
	"cache_enabled":      "cache.enabled",
	"cache_path":         "cache.path",
	"cache_in_memory":    "cache.in_memory",
	"cache_distance_ttl": "cache.distance_ttl",
	"cache_weather_ttl":  "cache.weather_ttl",
	"cache_hotels_ttl":   "cache.hotels_ttl",
	"cache_transit_ttl":  "cache.transit_ttl",
	"cache_gc_interval":  "cache.gc_interval",

	// Classifier
	"classifier_path": "classifier.artifact_path",

	// Providers
	"provider_timeout":      "providers.timeout",
	"provider_retry_count":  "providers.retry_count",
	"google_maps_api_key":   "providers.distance.api_key",
	"google_maps_url":       "providers.distance.base_url",
	"distance_enabled":      "providers.distance.enabled",
	"distance_rate_limit":   "providers.distance.rate_limit",
	"transit_api_key":       "providers.transit.api_key",
	"transit_enabled":       "providers.transit.enabled",
	"transit_rate_limit":    "providers.transit.rate_limit",
	"openweather_api_key":   "providers.weather.api_key",
	"openweather_url":       "providers.weather.base_url",
	"weather_enabled":       "providers.weather.enabled",
	"weather_rate_limit":    "providers.weather.rate_limit",
	"hotels_api_url":        "providers.hotels.base_url",
	"hotels_api_key":        "providers.hotels.api_key",
	"hotels_enabled":        "providers.hotels.enabled",
	"hotels_rate_limit":     "providers.hotels.rate_limit",
	"breaker_max_requests":  "providers.breaker.max_requests",
	"breaker_interval":      "providers.breaker.interval",
	"breaker_timeout":       "providers.breaker.timeout",
	"breaker_failure_ratio": "providers.breaker.failure_ratio",
	"breaker_min_requests":  "providers.breaker.min_requests",

	// Events
	"events_enabled":             "events.enabled",
	"nats_enabled":               "events.nats.enabled",
	"nats_url":                   "events.nats.url",
	"nats_durable_name":          "events.nats.durable_name",
	"nats_queue_group":           "events.nats.queue_group",
	"nats_max_reconnects":        "events.nats.max_reconnects",
	"nats_reconnect_wait":        "events.nats.reconnect_wait",
	"nats_stream_name":           "events.nats.stream_name",
	"nats_stream_max_age":        "events.nats.stream_max_age",
	"nats_embedded":              "events.nats.embedded",
	"nats_store_dir":             "events.nats.store_dir",
	"event_router_close_timeout": "events.router_close_timeout",
	"event_router_retry_count":   "events.router_retry_count",

	// Recommend
	"recommend_label_weight":    "recommend.scoring.label_weight",
	"recommend_season_weight":   "recommend.scoring.season_weight",
	"recommend_top_n":           "recommend.scoring.top_n",
	"recommend_very_good":       "recommend.scoring.very_good_threshold",
	"recommend_good":            "recommend.scoring.good_threshold",
	"recommend_request_timeout": "recommend.request_timeout",
	"recommend_lookup_timeout":  "recommend.lookup_timeout",

	// Security
	"rate_limit_requests":      "security.rate_limit_reqs",
	"user_rate_limit_requests": "security.user_rate_limit_reqs",
	"rate_limit_window":        "security.rate_limit_window",
	"disable_rate_limit":       "security.rate_limit_disabled",
	"cors_origins":             "security.cors_origins",
	"trusted_proxies":          "security.trusted_proxies",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - DUCKDB_PATH -> database.path
//   - OPENWEATHER_API_KEY -> providers.weather.api_key
//   - NATS_URL -> events.nats.url
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so random environment variables
	// cannot pollute the config.
	return ""
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// The caller is responsible for mutex protection when swapping configuration.
func WatchConfigFile(path string, callback func()) error {
	provider := file.Provider(path)

	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			return
		}
		callback()
	})
}
