// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/recommend/scoring"
)

// Config contains the engine settings.
type Config struct {
	// Scoring holds the blend weights, rating thresholds and result size.
	Scoring scoring.Config `json:"scoring"`

	// RequestTimeout bounds a whole Recommend or DestinationDetail call.
	RequestTimeout time.Duration `json:"request_timeout"`

	// LookupTimeout bounds each enrichment lookup.
	LookupTimeout time.Duration `json:"lookup_timeout"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Scoring:        scoring.DefaultConfig(),
		RequestTimeout: 20 * time.Second,
		LookupTimeout:  8 * time.Second,
	}
}

// ConfigFrom converts the application config section.
func ConfigFrom(cfg *config.RecommendConfig) Config {
	return Config{
		Scoring: scoring.Config{
			LabelWeight:       cfg.Scoring.LabelWeight,
			SeasonWeight:      cfg.Scoring.SeasonWeight,
			TopN:              cfg.Scoring.TopN,
			VeryGoodThreshold: cfg.Scoring.VeryGoodThreshold,
			GoodThreshold:     cfg.Scoring.GoodThreshold,
		},
		RequestTimeout: cfg.RequestTimeout,
		LookupTimeout:  cfg.LookupTimeout,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Scoring.Validate(); err != nil {
		return err
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %v", c.RequestTimeout)
	}
	if c.LookupTimeout <= 0 {
		return fmt.Errorf("lookup_timeout must be positive, got %v", c.LookupTimeout)
	}
	if c.LookupTimeout > c.RequestTimeout {
		return fmt.Errorf("lookup_timeout (%v) must not exceed request_timeout (%v)", c.LookupTimeout, c.RequestTimeout)
	}
	return nil
}
