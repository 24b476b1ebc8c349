// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package recommend

import (
	"math"
	"testing"
	"time"

	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/models"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Config)
		wantError bool
	}{
		{"valid default config", func(c *Config) {}, false},
		{"weights within tolerance", func(c *Config) { c.Scoring.LabelWeight = 0.6005 }, false},
		{"weights off by more than tolerance", func(c *Config) { c.Scoring.LabelWeight = 0.7 }, true},
		{"zero top n", func(c *Config) { c.Scoring.TopN = 0 }, true},
		{"zero request timeout", func(c *Config) { c.RequestTimeout = 0 }, true},
		{"zero lookup timeout", func(c *Config) { c.LookupTimeout = 0 }, true},
		{"lookup longer than request", func(c *Config) { c.LookupTimeout = time.Minute }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfigFrom(t *testing.T) {
	t.Parallel()

	got := ConfigFrom(&config.RecommendConfig{
		Scoring: config.ScoringConfig{
			LabelWeight:       0.5,
			SeasonWeight:      0.5,
			TopN:              5,
			VeryGoodThreshold: 0.9,
			GoodThreshold:     0.7,
		},
		RequestTimeout: 10 * time.Second,
		LookupTimeout:  2 * time.Second,
	})

	if got.Scoring.TopN != 5 || got.Scoring.LabelWeight != 0.5 || got.Scoring.GoodThreshold != 0.7 {
		t.Errorf("Scoring = %+v", got.Scoring)
	}
	if got.RequestTimeout != 10*time.Second || got.LookupTimeout != 2*time.Second {
		t.Errorf("timeouts = %v / %v", got.RequestTimeout, got.LookupTimeout)
	}
	if err := got.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestGreatCircleKM(t *testing.T) {
	t.Parallel()

	if d := GreatCircleKM(colombo, colombo); d != 0 {
		t.Errorf("same point = %v, want 0", d)
	}

	// Colombo to Kandy is about 94 km as the crow flies.
	d := GreatCircleKM(colombo, kandy)
	if d < 90 || d > 98 {
		t.Errorf("Colombo-Kandy = %v km, want ~94", d)
	}
	if back := GreatCircleKM(kandy, colombo); math.Abs(back-d) > 1e-9 {
		t.Errorf("distance not symmetric: %v vs %v", d, back)
	}

	antipode := GreatCircleKM(models.Coordinates{}, models.Coordinates{Longitude: 180})
	if math.Abs(antipode-math.Pi*earthRadiusKM) > 1e-6 {
		t.Errorf("antipode = %v, want half circumference", antipode)
	}
}

func TestEstimatedLeg(t *testing.T) {
	t.Parallel()

	leg := estimatedLeg(colombo, kandy)
	if leg.Source != models.DistanceSourceEstimate {
		t.Errorf("Source = %q", leg.Source)
	}
	if leg.DistanceKM != math.Round(leg.DistanceKM*10)/10 {
		t.Errorf("DistanceKM = %v, want one decimal", leg.DistanceKM)
	}
	if leg.DistanceText == "" || leg.Duration != "" {
		t.Errorf("leg = %+v", leg)
	}
}
