// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package classifier

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/models"
)

// Classifier adapts a Model to traveler profiles.
type Classifier struct {
	model  Model
	logger zerolog.Logger
}

// New wraps model.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(model Model, logger zerolog.Logger) *Classifier {
	return &Classifier{
		model:  model,
		logger: logger.With().Str("component", "classifier").Logger(),
	}
}

// Load reads the artifact at path and returns a ready Classifier.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(path string, logger zerolog.Logger) (*Classifier, error) {
	forest, err := LoadForest(path)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Str("path", path).
		Str("version", forest.Version()).
		Int("labels", len(forest.estimators)).
		Msg("classifier artifact loaded")
	return New(forest, logger), nil
}

// Predict returns the traveler types active for p. The empty set is a valid result.
func (c *Classifier) Predict(p models.TravelerProfile) (models.TravelerTypeSet, error) {
	labels, err := c.predict(p)
	if err != nil {
		metrics.RecordClassifierPrediction(nil, err)
		return 0, err
	}
	metrics.RecordClassifierPrediction(labels.Names(), nil)
	c.logger.Debug().
		Int("age", p.Age).
		Stringer("season", p.Season).
		Strs("labels", labels.Names()).
		Msg("traveler types predicted")
	return labels, nil
}

func (c *Classifier) predict(p models.TravelerProfile) (models.TravelerTypeSet, error) {
	vec, err := Vector(p)
	if err != nil {
		return 0, err
	}
	active, err := c.model.Predict(vec)
	if err != nil {
		return 0, fmt.Errorf("classifier predict: %w", err)
	}
	if len(active) != models.TravelerTypeCount {
		return 0, fmt.Errorf("%w: model returned %d labels, want %d", ErrSchemaMismatch, len(active), models.TravelerTypeCount)
	}

	var set models.TravelerTypeSet
	for i, on := range active {
		if on {
			set = set.Add(models.TravelerType(i))
		}
	}
	return set, nil
}
