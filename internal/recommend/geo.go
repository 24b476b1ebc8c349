// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package recommend

import (
	"fmt"
	"math"

	"github.com/tomtom215/tripwise/internal/models"
)

const earthRadiusKM = 6371.0

// GreatCircleKM returns the haversine distance between a and b in kilometres.
func GreatCircleKM(a, b models.Coordinates) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := lat2 - lat1
	dLng := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKM * math.Asin(math.Min(1, math.Sqrt(h)))
}

// estimatedLeg is the fallback leg used when no road distance is available.
func estimatedLeg(origin, dest models.Coordinates) models.TripLeg {
	km := math.Round(GreatCircleKM(origin, dest)*10) / 10
	return models.TripLeg{
		DistanceKM:   km,
		DistanceText: fmt.Sprintf("%.0f km", km),
		Source:       models.DistanceSourceEstimate,
	}
}
