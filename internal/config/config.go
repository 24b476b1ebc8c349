// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package config

import (
	"time"
)

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all optional settings
//  2. Config File: Optional YAML config file (config.yaml) for persistent settings
//  3. Environment Variables: Override any setting via environment variables
//
// Configuration Categories:
//
//  1. Infrastructure:
//     - Server: HTTP listener
//     - Database: DuckDB catalog and questionnaire store
//     - Cache: Badger-backed provider response cache
//     - Events: Watermill event bus (in-process or NATS JetStream)
//
//  2. Domain:
//     - Classifier: Traveler-type model artifact
//     - Providers: Distance, transit, weather and hotel APIs
//     - Recommend: Scoring weights, rating thresholds, lookup timeouts
//
//  3. API & Observability:
//     - Security: CORS and rate limiting
//     - Logging: Log levels and output formats
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Cache      CacheConfig      `koanf:"cache"`
	Classifier ClassifierConfig `koanf:"classifier"`
	Providers  ProvidersConfig  `koanf:"providers"`
	Events     EventsConfig     `koanf:"events"`
	Recommend  RecommendConfig  `koanf:"recommend"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development or production
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// DatabaseConfig holds DuckDB settings.
//
// Environment Variables:
//   - DUCKDB_PATH: Database file path (default: /data/tripwise.duckdb)
//   - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 512MB)
//   - SEED_LOCATIONS: Insert the built-in starting locations at startup (default: true)
type DatabaseConfig struct {
	Path                   string `koanf:"path"`
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"` // 0 = use NumCPU
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`
	SeedLocations          bool   `koanf:"seed_locations"`

	CheckpointInterval time.Duration `koanf:"checkpoint_interval"`
}

// CacheConfig holds the provider response cache settings.
// The cache is a Badger key-value store. InMemory is meant for tests and
// ephemeral deployments where nothing should touch disk.
type CacheConfig struct {
	Enabled     bool          `koanf:"enabled"`
	Path        string        `koanf:"path"`
	InMemory    bool          `koanf:"in_memory"`
	DistanceTTL time.Duration `koanf:"distance_ttl"`
	WeatherTTL  time.Duration `koanf:"weather_ttl"`
	HotelsTTL   time.Duration `koanf:"hotels_ttl"`
	TransitTTL  time.Duration `koanf:"transit_ttl"`
	GCInterval  time.Duration `koanf:"gc_interval"`
}

// ClassifierConfig locates the traveler-type model artifact.
// A missing or invalid artifact is fatal at startup.
type ClassifierConfig struct {
	ArtifactPath string `koanf:"artifact_path"`
}

// ProviderConfig holds connection settings for one external API.
type ProviderConfig struct {
	Enabled   bool    `koanf:"enabled"`
	BaseURL   string  `koanf:"base_url"`
	APIKey    string  `koanf:"api_key"`
	RateLimit float64 `koanf:"rate_limit"` // requests per second, 0 = unlimited
	Burst     int     `koanf:"burst"`
}

// BreakerConfig holds circuit breaker thresholds shared by all providers.
type BreakerConfig struct {
	MaxRequests  uint32        `koanf:"max_requests"` // allowed in half-open state
	Interval     time.Duration `koanf:"interval"`     // closed-state counter reset period
	Timeout      time.Duration `koanf:"timeout"`      // open-state duration
	FailureRatio float64       `koanf:"failure_ratio"`
	MinRequests  uint32        `koanf:"min_requests"`
}

// ProvidersConfig holds the external data providers.
//
// Environment Variables:
//   - GOOGLE_MAPS_API_KEY: Key for the distance matrix and directions APIs
//   - OPENWEATHER_API_KEY: Key for the OpenWeather API
//   - HOTELS_API_URL / HOTELS_API_KEY: Hotel listing API
//   - PROVIDER_TIMEOUT: Per-request timeout (default: 10s)
type ProvidersConfig struct {
	Timeout    time.Duration  `koanf:"timeout"`
	RetryCount int            `koanf:"retry_count"`
	Distance   ProviderConfig `koanf:"distance"`
	Transit    ProviderConfig `koanf:"transit"`
	Weather    ProviderConfig `koanf:"weather"`
	Hotels     ProviderConfig `koanf:"hotels"`
	Breaker    BreakerConfig  `koanf:"breaker"`
}

// NATSConfig holds the optional NATS JetStream connection for the event bus.
type NATSConfig struct {
	Enabled       bool          `koanf:"enabled"`
	URL           string        `koanf:"url"`
	DurableName   string        `koanf:"durable_name"`
	QueueGroup    string        `koanf:"queue_group"`
	MaxReconnects int           `koanf:"max_reconnects"`
	ReconnectWait time.Duration `koanf:"reconnect_wait"`
	StreamName    string        `koanf:"stream_name"`
	StreamMaxAge  time.Duration `koanf:"stream_max_age"`

	// Embedded runs a single-node JetStream server inside the process,
	// listening on the host and port of URL.
	Embedded bool   `koanf:"embedded"`
	StoreDir string `koanf:"store_dir"`
}

// EventsConfig holds the event bus settings. Without NATS the bus is an
// in-process Go channel.
type EventsConfig struct {
	Enabled                    bool          `koanf:"enabled"`
	NATS                       NATSConfig    `koanf:"nats"`
	RouterCloseTimeout         time.Duration `koanf:"router_close_timeout"`
	RouterRetryCount           int           `koanf:"router_retry_count"`
	RouterRetryInitialInterval time.Duration `koanf:"router_retry_initial_interval"`
}

// ScoringConfig holds the destination scoring blend and rating thresholds.
type ScoringConfig struct {
	LabelWeight       float64 `koanf:"label_weight"`
	SeasonWeight      float64 `koanf:"season_weight"`
	TopN              int     `koanf:"top_n"`
	VeryGoodThreshold float64 `koanf:"very_good_threshold"`
	GoodThreshold     float64 `koanf:"good_threshold"`
}

// RecommendConfig holds recommendation pipeline settings.
type RecommendConfig struct {
	Scoring        ScoringConfig `koanf:"scoring"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
	LookupTimeout  time.Duration `koanf:"lookup_timeout"` // per enrichment lookup
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	UserRateLimitReqs int           `koanf:"user_rate_limit_reqs"` // per traveler, same window
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
	TrustedProxies    []string      `koanf:"trusted_proxies"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Load reads configuration from:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
