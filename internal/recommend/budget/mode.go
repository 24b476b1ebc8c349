// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package budget

import "fmt"

// Mode is a transport mode.
type Mode int

const (
	Bicycle Mode = iota
	Car
	PrivateBus
	Transit

	modeCount
)

// Modes lists every transport mode in table order.
var Modes = [modeCount]Mode{Bicycle, Car, PrivateBus, Transit}

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case Bicycle:
		return "bicycle"
	case Car:
		return "car"
	case PrivateBus:
		return "private_bus"
	case Transit:
		return "transit"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// modeParams holds the fixed model constants for one mode.
type modeParams struct {
	distanceCenter float64 // unused for Transit
	partyOptimum   float64
	partyWidth     float64
	capacity       float64 // travelers per vehicle
	ratePerKM      float64 // LKR per vehicle-km
}

const distanceWidth = 100.0

// transitHalfDistance is the distance at which the transit term reaches 0.5.
const transitHalfDistance = 50.0

var params = [modeCount]modeParams{
	Bicycle:    {distanceCenter: 0, partyOptimum: 6, partyWidth: 3, capacity: 2, ratePerKM: 7.5},
	Car:        {distanceCenter: 50, partyOptimum: 7, partyWidth: 3, capacity: 5, ratePerKM: 20},
	PrivateBus: {distanceCenter: 150, partyOptimum: 35, partyWidth: 10, capacity: 30, ratePerKM: 72},
	Transit:    {partyOptimum: 10, partyWidth: 5, capacity: 50, ratePerKM: 2},
}

// Capacity returns the number of travelers one vehicle of mode m carries.
func Capacity(m Mode) float64 {
	return params[m].capacity
}

// RatePerKM returns the per-vehicle cost per kilometer for mode m.
func RatePerKM(m Mode) float64 {
	return params[m].ratePerKM
}
