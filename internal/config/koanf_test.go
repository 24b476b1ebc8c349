// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv unsets every mapped environment variable and CONFIG_PATH for the
// duration of the test, restoring the previous values afterwards.
func isolateEnv(t *testing.T) {
	t.Helper()
	keys := []string{ConfigPathEnvVar}
	for k := range envMappings {
		keys = append(keys, strings.ToUpper(k))
	}
	for _, k := range keys {
		if prev, ok := os.LookupEnv(k); ok {
			key := k
			t.Cleanup(func() { os.Setenv(key, prev) })
		}
		os.Unsetenv(k)
	}
}

// chdirTemp moves the test into an empty directory so no stray config.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change to temp directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Errorf("Failed to restore working directory: %v", err)
		}
	})
	return dir
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 3857 {
		t.Errorf("Server.Port = %d, want 3857", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Database.Path != "/data/tripwise.duckdb" {
		t.Errorf("Database.Path = %q, want /data/tripwise.duckdb", cfg.Database.Path)
	}
	if !cfg.Database.SeedLocations {
		t.Error("Database.SeedLocations should be true by default")
	}
	if cfg.Classifier.ArtifactPath != DefaultClassifierPath {
		t.Errorf("Classifier.ArtifactPath = %q, want %q", cfg.Classifier.ArtifactPath, DefaultClassifierPath)
	}

	// Scoring defaults
	s := cfg.Recommend.Scoring
	if s.LabelWeight != 0.6 || s.SeasonWeight != 0.4 {
		t.Errorf("scoring weights = %v/%v, want 0.6/0.4", s.LabelWeight, s.SeasonWeight)
	}
	if s.TopN != 10 {
		t.Errorf("Scoring.TopN = %d, want 10", s.TopN)
	}
	if s.VeryGoodThreshold != 0.8 || s.GoodThreshold != 0.6 {
		t.Errorf("thresholds = %v/%v, want 0.8/0.6", s.VeryGoodThreshold, s.GoodThreshold)
	}

	// Events default to the in-process bus
	if !cfg.Events.Enabled {
		t.Error("Events.Enabled should be true by default")
	}
	if cfg.Events.NATS.Enabled {
		t.Error("Events.NATS.Enabled should be false by default")
	}

	if cfg.Cache.WeatherTTL != 30*time.Minute {
		t.Errorf("Cache.WeatherTTL = %v, want 30m", cfg.Cache.WeatherTTL)
	}
	if cfg.Providers.Hotels.Enabled {
		t.Error("Providers.Hotels.Enabled should be false by default")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %q/%q, want info/json", cfg.Logging.Level, cfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable to config path mapping
func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"DUCKDB_PATH", "database.path"},
		{"CLASSIFIER_PATH", "classifier.artifact_path"},
		{"GOOGLE_MAPS_API_KEY", "providers.distance.api_key"},
		{"OPENWEATHER_API_KEY", "providers.weather.api_key"},
		{"HOTELS_API_URL", "providers.hotels.base_url"},
		{"NATS_URL", "events.nats.url"},
		{"RECOMMEND_TOP_N", "recommend.scoring.top_n"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
		{"RANDOM_VAR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	isolateEnv(t)
	tmpDir := chdirTemp(t)

	t.Run("no config file exists", func(t *testing.T) {
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("test: true"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("test: true"), 0o644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}
		defer os.Remove(customPath)

		t.Setenv(ConfigPathEnvVar, customPath)
		if result := findConfigFile(); result != customPath {
			t.Errorf("findConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadWithKoanfEnvVars tests loading configuration from environment variables
func TestLoadWithKoanfEnvVars(t *testing.T) {
	isolateEnv(t)
	chdirTemp(t)

	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("OPENWEATHER_API_KEY", "weather-key")
	t.Setenv("RECOMMEND_TOP_N", "5")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("CACHE_WEATHER_TTL", "5m")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Providers.Weather.APIKey != "weather-key" {
		t.Errorf("Providers.Weather.APIKey = %q, want weather-key", cfg.Providers.Weather.APIKey)
	}
	if cfg.Recommend.Scoring.TopN != 5 {
		t.Errorf("Scoring.TopN = %d, want 5", cfg.Recommend.Scoring.TopN)
	}
	if cfg.Cache.WeatherTTL != 5*time.Minute {
		t.Errorf("Cache.WeatherTTL = %v, want 5m", cfg.Cache.WeatherTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != len(want) {
		t.Fatalf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	for i := range want {
		if cfg.Security.CORSOrigins[i] != want[i] {
			t.Errorf("CORSOrigins[%d] = %q, want %q", i, cfg.Security.CORSOrigins[i], want[i])
		}
	}

	// Defaults survive for unset values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
	if cfg.Recommend.Scoring.LabelWeight != 0.6 {
		t.Errorf("LabelWeight = %v, want 0.6 (default)", cfg.Recommend.Scoring.LabelWeight)
	}
}

// TestLoadWithKoanfEnvOverridesFile tests that env vars override the config file
func TestLoadWithKoanfEnvOverridesFile(t *testing.T) {
	isolateEnv(t)
	tmpDir := chdirTemp(t)

	configContent := `
server:
  port: 8888
  host: "127.0.0.1"

recommend:
  scoring:
    label_weight: 0.7
    season_weight: 0.3

logging:
  level: "warn"
`
	configPath := filepath.Join(tmpDir, "tripwise.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DUCKDB_PATH", "/custom/db.duckdb")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	// From file
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888 (from file)", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1 (from file)", cfg.Server.Host)
	}
	if cfg.Recommend.Scoring.LabelWeight != 0.7 {
		t.Errorf("LabelWeight = %v, want 0.7 (from file)", cfg.Recommend.Scoring.LabelWeight)
	}

	// Env overrides file and defaults
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env override)", cfg.Logging.Level)
	}
	if cfg.Database.Path != "/custom/db.duckdb" {
		t.Errorf("Database.Path = %q, want /custom/db.duckdb (env override)", cfg.Database.Path)
	}
}

// TestLoadWithKoanfValidation tests that invalid settings are rejected at load time
func TestLoadWithKoanfValidation(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		errMsg  string
	}{
		{
			name:    "port out of range",
			envVars: map[string]string{"HTTP_PORT": "70000"},
			errMsg:  "HTTP_PORT",
		},
		{
			name:    "weights do not sum to one",
			envVars: map[string]string{"RECOMMEND_LABEL_WEIGHT": "0.5"},
			errMsg:  "must equal 1",
		},
		{
			name:    "good threshold above very good",
			envVars: map[string]string{"RECOMMEND_GOOD": "0.9"},
			errMsg:  "RECOMMEND_GOOD",
		},
		{
			name:    "empty classifier path",
			envVars: map[string]string{"CLASSIFIER_PATH": " "},
			errMsg:  "CLASSIFIER_PATH",
		},
		{
			name:    "invalid NATS URL",
			envVars: map[string]string{"NATS_ENABLED": "true", "NATS_URL": "http://nats:4222"},
			errMsg:  "NATS_URL",
		},
		{
			name:    "invalid log level",
			envVars: map[string]string{"LOG_LEVEL": "verbose"},
			errMsg:  "LOG_LEVEL",
		},
		{
			name:    "hotels enabled without URL",
			envVars: map[string]string{"HOTELS_ENABLED": "true"},
			errMsg:  "providers.hotels.base_url",
		},
		{
			name:    "provider URL with path",
			envVars: map[string]string{"OPENWEATHER_URL": "https://api.openweathermap.org/data/2.5"},
			errMsg:  "remove path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateEnv(t)
			chdirTemp(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			_, err := LoadWithKoanf()
			if err == nil {
				t.Fatal("LoadWithKoanf() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestProcessSliceFieldsKeepsYAMLList(t *testing.T) {
	isolateEnv(t)
	tmpDir := chdirTemp(t)

	configContent := `
security:
  cors_origins:
    - "https://one.example"
    - "https://two.example"
`
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://two.example" {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}
