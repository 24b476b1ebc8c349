// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package budget

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidDistance is returned for negative, NaN or infinite distances.
	ErrInvalidDistance = errors.New("distance must be a finite value >= 0")

	// ErrInvalidPartySize is returned when the party has fewer than one traveler.
	ErrInvalidPartySize = errors.New("party size must be >= 1")

	// ErrNoSuitableMode is returned when every mode weight is zero.
	ErrNoSuitableMode = errors.New("no suitable transport mode")
)

// Probabilities is a distribution over the four transport modes.
type Probabilities struct {
	Bicycle    float64 `json:"bicycle"`
	Car        float64 `json:"car"`
	PrivateBus float64 `json:"private_bus"`
	Transit    float64 `json:"transit"`
}

// Of returns the probability of mode m.
func (p Probabilities) Of(m Mode) float64 {
	switch m {
	case Bicycle:
		return p.Bicycle
	case Car:
		return p.Car
	case PrivateBus:
		return p.PrivateBus
	case Transit:
		return p.Transit
	default:
		return 0
	}
}

// Map returns the distribution keyed by mode name.
func (p Probabilities) Map() map[string]float64 {
	out := make(map[string]float64, modeCount)
	for _, m := range Modes {
		out[m.String()] = p.Of(m)
	}
	return out
}

// Sum returns the total probability mass.
func (p Probabilities) Sum() float64 {
	return p.Bicycle + p.Car + p.PrivateBus + p.Transit
}

func validate(distanceKM float64, partySize int) error {
	if math.IsNaN(distanceKM) || math.IsInf(distanceKM, 0) || distanceKM < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDistance, distanceKM)
	}
	if partySize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPartySize, partySize)
	}
	return nil
}

func cauchy(x, center, width float64) float64 {
	z := (x - center) / width
	return 1 / (1 + z*z)
}

func distanceTerm(m Mode, d float64) float64 {
	if m == Transit {
		if d == 0 {
			return 0
		}
		z := transitHalfDistance / d
		return 1 / (1 + z*z)
	}
	return cauchy(d, params[m].distanceCenter, distanceWidth)
}

func partyTerm(m Mode, n int) float64 {
	return cauchy(float64(n), params[m].partyOptimum, params[m].partyWidth)
}

// Suitability returns how well each transport mode suits a trip of the given
// distance and party size, normalized to sum to 1.
func Suitability(distanceKM float64, partySize int) (Probabilities, error) {
	if err := validate(distanceKM, partySize); err != nil {
		return Probabilities{}, err
	}

	var weights [modeCount]float64
	var total float64
	for _, m := range Modes {
		weights[m] = distanceTerm(m, distanceKM) * partyTerm(m, partySize)
		total += weights[m]
	}
	if total == 0 {
		return Probabilities{}, ErrNoSuitableMode
	}

	return Probabilities{
		Bicycle:    weights[Bicycle] / total,
		Car:        weights[Car] / total,
		PrivateBus: weights[PrivateBus] / total,
		Transit:    weights[Transit] / total,
	}, nil
}
