// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package models

import (
	"fmt"
	"strings"
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// String formats the pair as "lat,lng", the form map providers expect.
func (c Coordinates) String() string {
	return fmt.Sprintf("%g,%g", c.Latitude, c.Longitude)
}

// Regions flags the broad geographic zones a destination belongs to.
type Regions struct {
	HillCountry bool `json:"hill_country"`
	Coastal     bool `json:"coastal"`
	DryZone     bool `json:"dry_zone"`
	Urban       bool `json:"urban"`
}

// Destination is a catalog entry. It is read-only during scoring.
type Destination struct {
	ID          int64                `json:"destination_id"`
	Name        string               `json:"name"`
	Location    Coordinates          `json:"location"`
	Seasonal    [SeasonCount]float64 `json:"seasonal_affinity"`
	Affinities  TravelerTypeSet      `json:"traveler_types"`
	AvgCost     float64              `json:"avg_cost"`
	Description string               `json:"description,omitempty"`
	ThingsToDo  string               `json:"-"`
	Regions     Regions              `json:"regions"`
}

// SeasonalAffinity returns the affinity for s, or 0 when s is out of range.
func (d *Destination) SeasonalAffinity(s Season) float64 {
	if !s.Valid() {
		return 0
	}
	return d.Seasonal[s]
}

// Activities splits the '/'-separated things-to-do list.
func (d *Destination) Activities() []string {
	if strings.TrimSpace(d.ThingsToDo) == "" {
		return []string{}
	}
	parts := strings.Split(d.ThingsToDo, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Guide is a local guide attached to one or more destinations.
type Guide struct {
	ID        int64  `json:"guide_id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	ContactNo string `json:"contact_no"`
}

// StartingLocation is a named trip origin the questionnaire can refer to.
type StartingLocation struct {
	ID   int64       `json:"location_id"`
	Name string      `json:"name"`
	At   Coordinates `json:"coordinates"`
}
