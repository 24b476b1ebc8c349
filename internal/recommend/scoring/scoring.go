// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package scoring ranks catalog destinations for a set of traveler-type labels.
//
// Each destination gets two partial scores:
//
//   - label overlap: matching affinity flags / total affinity flags (0 if none)
//   - seasonal fit: the destination's affinity for the requested season
//
// The final score is LabelWeight*overlap + SeasonWeight*seasonal. Seasonal
// affinities are unnormalized, so scores may exceed 1. Ranking is a stable
// descending sort, so destinations with equal scores keep catalog order.
package scoring

import (
	"fmt"
	"math"
	"sort"

	"github.com/tomtom215/tripwise/internal/models"
)

// Rating labels.
const (
	RatingVeryGood = "Very Good"
	RatingGood     = "Good"
	RatingAverage  = "Average"
)

// Config holds the scoring weights, rating thresholds and result size.
type Config struct {
	LabelWeight       float64 `koanf:"label_weight" json:"label_weight"`
	SeasonWeight      float64 `koanf:"season_weight" json:"season_weight"`
	TopN              int     `koanf:"top_n" json:"top_n"`
	VeryGoodThreshold float64 `koanf:"very_good_threshold" json:"very_good_threshold"`
	GoodThreshold     float64 `koanf:"good_threshold" json:"good_threshold"`
}

// DefaultConfig returns the production weights: 0.6 labels, 0.4 season, top 10.
func DefaultConfig() Config {
	return Config{
		LabelWeight:       0.6,
		SeasonWeight:      0.4,
		TopN:              10,
		VeryGoodThreshold: 0.8,
		GoodThreshold:     0.6,
	}
}

// MaxTopN caps every ranking. TopN may lower it, never raise it.
const MaxTopN = 10

// weightTolerance bounds the rounding slack allowed when weights are read from config.
const weightTolerance = 0.001

// Validate checks that the weights form a convex blend and thresholds are ordered.
func (c Config) Validate() error {
	if c.LabelWeight < 0 || c.SeasonWeight < 0 {
		return fmt.Errorf("scoring weights must be non-negative, got label=%v season=%v", c.LabelWeight, c.SeasonWeight)
	}
	if sum := c.LabelWeight + c.SeasonWeight; math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("scoring weights must sum to 1, got %v", sum)
	}
	if c.TopN < 1 || c.TopN > MaxTopN {
		return fmt.Errorf("scoring top_n must be between 1 and %d, got %d", MaxTopN, c.TopN)
	}
	if c.GoodThreshold > c.VeryGoodThreshold {
		return fmt.Errorf("good_threshold (%v) must not exceed very_good_threshold (%v)", c.GoodThreshold, c.VeryGoodThreshold)
	}
	return nil
}

// ScoredDestination pairs a destination with its final score.
type ScoredDestination struct {
	Destination models.Destination
	Score       float64
}

// Scorer ranks destinations. It is immutable and safe for concurrent use.
type Scorer struct {
	cfg Config
}

// New returns a Scorer for cfg, or an error if cfg is invalid.
func New(cfg Config) (*Scorer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scoring config: %w", err)
	}
	return &Scorer{cfg: cfg}, nil
}

// Config returns the scorer's configuration.
func (s *Scorer) Config() Config {
	return s.cfg
}

// LabelOverlap returns the fraction of the destination's affinity flags that
// are present in labels, or 0 when the destination has no flags.
func LabelOverlap(labels models.TravelerTypeSet, d *models.Destination) float64 {
	total := d.Affinities.Len()
	if total == 0 {
		return 0
	}
	return float64(d.Affinities.Intersect(labels).Len()) / float64(total)
}

// Score returns the blended score of one destination.
func (s *Scorer) Score(labels models.TravelerTypeSet, season models.Season, d *models.Destination) float64 {
	return s.cfg.LabelWeight*LabelOverlap(labels, d) + s.cfg.SeasonWeight*d.SeasonalAffinity(season)
}

// Rank scores every candidate and returns at most TopN (never more than
// MaxTopN), best first. Equal scores keep the candidates' input order.
func (s *Scorer) Rank(labels models.TravelerTypeSet, season models.Season, candidates []models.Destination) []ScoredDestination {
	scored := make([]ScoredDestination, len(candidates))
	for i := range candidates {
		scored[i] = ScoredDestination{
			Destination: candidates[i],
			Score:       s.Score(labels, season, &candidates[i]),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if n := min(s.cfg.TopN, MaxTopN); len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

// Rate maps a score to its rating label.
func (s *Scorer) Rate(score float64) string {
	switch {
	case score >= s.cfg.VeryGoodThreshold:
		return RatingVeryGood
	case score >= s.cfg.GoodThreshold:
		return RatingGood
	default:
		return RatingAverage
	}
}

var defaultScorer = &Scorer{cfg: DefaultConfig()}

// Rank ranks candidates with the default configuration.
func Rank(labels models.TravelerTypeSet, season models.Season, candidates []models.Destination) []ScoredDestination {
	return defaultScorer.Rank(labels, season, candidates)
}

// Rate rates a score with the default thresholds.
func Rate(score float64) string {
	return defaultScorer.Rate(score)
}

// RoundScore rounds a score to two decimals for display.
func RoundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
