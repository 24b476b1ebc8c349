// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package budget

import (
	"fmt"
	"math"
)

// Costs is the unrounded transport cost of each mode for one trip.
type Costs struct {
	Bicycle    float64 `json:"bicycle"`
	Car        float64 `json:"car"`
	PrivateBus float64 `json:"private_bus"`
	Transit    float64 `json:"transit"`
}

// Of returns the cost of mode m.
func (c Costs) Of(m Mode) float64 {
	switch m {
	case Bicycle:
		return c.Bicycle
	case Car:
		return c.Car
	case PrivateBus:
		return c.PrivateBus
	case Transit:
		return c.Transit
	default:
		return 0
	}
}

// Rounded returns the costs rounded half to even for display.
func (c Costs) Rounded() Costs {
	return Costs{
		Bicycle:    math.RoundToEven(c.Bicycle),
		Car:        math.RoundToEven(c.Car),
		PrivateBus: math.RoundToEven(c.PrivateBus),
		Transit:    math.RoundToEven(c.Transit),
	}
}

func modeCost(m Mode, distanceKM float64, partySize int) float64 {
	vehicles := float64(partySize) / params[m].capacity
	return vehicles * params[m].ratePerKM * distanceKM
}

func costFor(m Mode, distanceKM float64, partySize int) (float64, error) {
	if err := validate(distanceKM, partySize); err != nil {
		return 0, err
	}
	return modeCost(m, distanceKM, partySize), nil
}

// CostForBicycle returns the rental cost of bicycles for the whole party.
func CostForBicycle(distanceKM float64, partySize int) (float64, error) {
	return costFor(Bicycle, distanceKM, partySize)
}

// CostForCar returns the hire cost of cars for the whole party.
func CostForCar(distanceKM float64, partySize int) (float64, error) {
	return costFor(Car, distanceKM, partySize)
}

// CostForPrivateBus returns the charter cost of private buses for the whole party.
func CostForPrivateBus(distanceKM float64, partySize int) (float64, error) {
	return costFor(PrivateBus, distanceKM, partySize)
}

// CostForTransit returns the public-transit cost for the whole party.
func CostForTransit(distanceKM float64, partySize int) (float64, error) {
	return costFor(Transit, distanceKM, partySize)
}

// ModeCosts returns the cost of every mode for one trip.
func ModeCosts(distanceKM float64, partySize int) (Costs, error) {
	if err := validate(distanceKM, partySize); err != nil {
		return Costs{}, err
	}
	return Costs{
		Bicycle:    modeCost(Bicycle, distanceKM, partySize),
		Car:        modeCost(Car, distanceKM, partySize),
		PrivateBus: modeCost(PrivateBus, distanceKM, partySize),
		Transit:    modeCost(Transit, distanceKM, partySize),
	}, nil
}

// ExpectedTransportCost is the suitability-weighted mean of the mode costs.
func ExpectedTransportCost(distanceKM float64, partySize int) (float64, error) {
	probs, err := Suitability(distanceKM, partySize)
	if err != nil {
		return 0, err
	}
	costs, err := ModeCosts(distanceKM, partySize)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, m := range Modes {
		total += probs.Of(m) * costs.Of(m)
	}
	return total, nil
}

// Estimate returns the total trip budget in LKR: the expected transport cost
// plus avgOnSiteCost for each traveler, rounded half to even.
func Estimate(avgOnSiteCost, distanceKM float64, partySize int) (int, error) {
	if math.IsNaN(avgOnSiteCost) || math.IsInf(avgOnSiteCost, 0) || avgOnSiteCost < 0 {
		return 0, fmt.Errorf("avg on-site cost must be a finite value >= 0, got %v", avgOnSiteCost)
	}
	transport, err := ExpectedTransportCost(distanceKM, partySize)
	if err != nil {
		return 0, err
	}
	return int(math.RoundToEven(transport + float64(partySize)*avgOnSiteCost)), nil
}
