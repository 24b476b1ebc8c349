// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tomtom215/tripwise/internal/logging"
)

// weightTolerance is how far label_weight + season_weight may drift from 1.
const weightTolerance = 0.001

// maxTopN is the largest recommendation list the API returns.
const maxTopN = 10

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateClassifier(); err != nil {
		return err
	}

	if err := c.validateProviders(); err != nil {
		return err
	}

	if err := c.validateEvents(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	switch c.Server.Environment {
	case "development", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development or production, got %q", c.Server.Environment)
	}
	return nil
}

// validateDatabase validates DuckDB configuration
func (c *Config) validateDatabase() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("DUCKDB_PATH is required")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must be >= 0 (0 uses all CPUs)")
	}
	if c.Database.CheckpointInterval < 0 {
		return fmt.Errorf("DUCKDB_CHECKPOINT_INTERVAL must be >= 0")
	}
	return nil
}

// validateCache validates the provider cache configuration (only if enabled)
func (c *Config) validateCache() error {
	if !c.Cache.Enabled {
		return nil
	}
	if !c.Cache.InMemory && strings.TrimSpace(c.Cache.Path) == "" {
		return fmt.Errorf("CACHE_PATH is required unless CACHE_IN_MEMORY=true")
	}
	ttls := map[string]time.Duration{
		"CACHE_DISTANCE_TTL": c.Cache.DistanceTTL,
		"CACHE_WEATHER_TTL":  c.Cache.WeatherTTL,
		"CACHE_HOTELS_TTL":   c.Cache.HotelsTTL,
		"CACHE_TRANSIT_TTL":  c.Cache.TransitTTL,
	}
	for name, ttl := range ttls {
		if ttl <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}

// validateClassifier validates the model artifact location.
// The file itself is checked when the model is loaded.
func (c *Config) validateClassifier() error {
	if strings.TrimSpace(c.Classifier.ArtifactPath) == "" {
		return fmt.Errorf("CLASSIFIER_PATH is required")
	}
	return nil
}

// validateProviders validates the external provider configuration
func (c *Config) validateProviders() error {
	if c.Providers.Timeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}
	if c.Providers.RetryCount < 0 || c.Providers.RetryCount > 10 {
		return fmt.Errorf("PROVIDER_RETRY_COUNT must be between 0 and 10")
	}

	providers := []struct {
		name string
		cfg  ProviderConfig
	}{
		{"distance", c.Providers.Distance},
		{"transit", c.Providers.Transit},
		{"weather", c.Providers.Weather},
		{"hotels", c.Providers.Hotels},
	}
	for _, p := range providers {
		if err := validateProvider(p.name, p.cfg); err != nil {
			return err
		}
	}

	b := c.Providers.Breaker
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("BREAKER_TIMEOUT must be positive")
	}
	return nil
}

// validateProvider validates one provider (only if enabled)
func validateProvider(name string, p ProviderConfig) error {
	if !p.Enabled {
		return nil
	}
	if p.BaseURL == "" {
		return fmt.Errorf("providers.%s.base_url is required when the provider is enabled", name)
	}
	validate := validateHTTPURL
	if name == "hotels" {
		validate = validateEndpointURL
	}
	if err := validate(p.BaseURL, "providers."+name+".base_url"); err != nil {
		return err
	}
	if p.RateLimit < 0 {
		return fmt.Errorf("providers.%s.rate_limit must be >= 0", name)
	}
	if p.RateLimit > 0 && p.Burst < 1 {
		return fmt.Errorf("providers.%s.burst must be >= 1 when rate_limit is set", name)
	}
	return nil
}

// validateEvents validates event bus configuration
func (c *Config) validateEvents() error {
	if !c.Events.Enabled || !c.Events.NATS.Enabled {
		return nil
	}
	if c.Events.NATS.URL == "" {
		return fmt.Errorf("NATS_URL is required when NATS_ENABLED=true")
	}
	if err := validateNATSURL(c.Events.NATS.URL); err != nil {
		return fmt.Errorf("NATS_URL is invalid: %w", err)
	}
	if c.Events.NATS.DurableName == "" {
		return fmt.Errorf("NATS_DURABLE_NAME is required when NATS_ENABLED=true")
	}
	if c.Events.NATS.StreamName == "" || strings.ContainsAny(c.Events.NATS.StreamName, ".*> ") {
		return fmt.Errorf("NATS_STREAM_NAME must be set and cannot contain '.', '*', '>' or spaces")
	}
	if c.Events.NATS.Embedded && c.Events.NATS.StoreDir == "" {
		return fmt.Errorf("NATS_STORE_DIR is required when NATS_EMBEDDED=true")
	}
	return nil
}

// validateRecommend validates scoring weights, thresholds and timeouts
func (c *Config) validateRecommend() error {
	s := c.Recommend.Scoring
	if s.LabelWeight < 0 || s.SeasonWeight < 0 {
		return fmt.Errorf("scoring weights must be >= 0")
	}
	if sum := s.LabelWeight + s.SeasonWeight; math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("RECOMMEND_LABEL_WEIGHT + RECOMMEND_SEASON_WEIGHT must equal 1, got %.4f", sum)
	}
	if s.TopN < 1 || s.TopN > maxTopN {
		return fmt.Errorf("RECOMMEND_TOP_N must be between 1 and %d", maxTopN)
	}
	if s.GoodThreshold > s.VeryGoodThreshold {
		return fmt.Errorf("RECOMMEND_GOOD (%.2f) must not exceed RECOMMEND_VERY_GOOD (%.2f)",
			s.GoodThreshold, s.VeryGoodThreshold)
	}
	if c.Recommend.RequestTimeout <= 0 || c.Recommend.LookupTimeout <= 0 {
		return fmt.Errorf("recommend timeouts must be positive")
	}
	if c.Recommend.LookupTimeout > c.Recommend.RequestTimeout {
		return fmt.Errorf("RECOMMEND_LOOKUP_TIMEOUT must not exceed RECOMMEND_REQUEST_TIMEOUT")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects wildcard origins in production.
func (c *Config) validateCORS() error {
	if !c.IsProduction() {
		return nil
	}
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" && len(c.Security.CORSOrigins) > 1 {
			return fmt.Errorf("CORS_ORIGINS must not mix '*' with explicit origins")
		}
	}
	return nil
}

// validateRateLimits validates rate limiting bounds
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000")
	}
	if c.Security.UserRateLimitReqs < 0 || c.Security.UserRateLimitReqs > c.Security.RateLimitReqs {
		return fmt.Errorf("USER_RATE_LIMIT_REQUESTS must be between 0 and RATE_LIMIT_REQUESTS")
	}
	if c.Security.RateLimitWindow < time.Second || c.Security.RateLimitWindow > time.Hour {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between 1s and 1h")
	}
	return nil
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
