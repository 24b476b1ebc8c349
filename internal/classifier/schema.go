// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package classifier

import (
	"errors"
	"fmt"

	"github.com/tomtom215/tripwise/internal/models"
)

// ErrSchemaMismatch is returned when a feature vector or artifact does not
// match FeatureSchema.
var ErrSchemaMismatch = errors.New("feature schema mismatch")

// Feature names that are not interest flags.
const (
	FeatureAge    = "age"
	FeatureSeason = "season"
)

// FeatureSchema is the ordered list of model inputs.
var FeatureSchema = []string{
	FeatureAge,
	FeatureSeason,
	models.InterestNature,
	models.InterestAdventure,
	models.InterestLuxury,
	models.InterestCulture,
	models.InterestRelaxation,
	models.InterestWellness,
	models.InterestLocalLife,
	models.InterestWildlife,
	models.InterestFood,
	models.InterestSpirituality,
	models.InterestEcoTourism,
}

// Vector assembles the model input for p in FeatureSchema order.
// Booleans encode as 0/1.
func Vector(p models.TravelerProfile) ([]float64, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}

	vec := make([]float64, len(FeatureSchema))
	for i, name := range FeatureSchema {
		switch name {
		case FeatureAge:
			vec[i] = float64(p.Age)
		case FeatureSeason:
			vec[i] = float64(p.Season)
		default:
			flag, err := p.Interests.Flag(name)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
			}
			if flag {
				vec[i] = 1
			}
		}
	}
	return vec, nil
}

// LabelSchema returns the expected label names in enum order.
func LabelSchema() []string {
	types := models.AllTravelerTypes()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
