// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package models

import (
	"time"
)

// APIResponse is the envelope every HTTP endpoint returns.
//
// Status is "success" with Data populated, or "error" with Error populated.
//
//	{
//	  "status": "success",
//	  "data": {"recommendations": [...]},
//	  "metadata": {"timestamp": "2026-03-01T12:00:00Z", "query_time_ms": 45}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata carries response timing and cache information.
// Partial is set when one or more upstream providers failed and
// the affected fields were filled with fallbacks or left empty.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	Partial     bool      `json:"partial,omitempty"`
	Warnings    []string  `json:"warnings,omitempty"`
}

// APIError is the structured error body.
//
// Common codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - NOT_FOUND: resource does not exist
//   - NO_QUESTIONNAIRE: the user has not submitted preferences yet
//   - MODEL_ERROR: the classifier rejected its input
//   - DATABASE_ERROR: catalog or store failure
//   - UPSTREAM_ERROR: a required provider failed
//   - RATE_LIMIT_EXCEEDED: too many requests
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ScoredDestination is one entry of a ranked recommendation list.
type ScoredDestination struct {
	DestinationID int64   `json:"destination_id"`
	Name          string  `json:"name"`
	MatchScore    float64 `json:"match_score"`
	Rating        string  `json:"rating"`
}

// TransportCosts is the per-mode cost breakdown for one trip, in LKR.
type TransportCosts struct {
	Bicycle    float64 `json:"bicycle"`
	Car        float64 `json:"car"`
	PrivateBus float64 `json:"private_bus"`
	Transit    float64 `json:"transit"`
}

// Recommendation is the enriched view of one recommended destination.
type Recommendation struct {
	ScoredDestination
	EstimatedBudget int64   `json:"estimated_budget"`
	DistanceKM      float64 `json:"distance_km"`
	DistanceText    string  `json:"distance_text"`
	DistanceSource  string  `json:"distance_source"`
	TravelTime      string  `json:"travel_time,omitempty"`
	ThumbnailURL    string  `json:"thumbnail_img"`
}

// RecommendationResponse is the payload of the recommendations endpoint.
type RecommendationResponse struct {
	UserID          string           `json:"user_id"`
	RequestID       string           `json:"request_id,omitempty"`
	Labels          []string         `json:"labels"`
	Season          string           `json:"season"`
	PartySize       int              `json:"no_of_people"`
	LatencyMS       int64            `json:"latency_ms"`
	Timestamp       time.Time        `json:"timestamp"`
	Recommendations []Recommendation `json:"recommendations"`
	Warnings        []string         `json:"warnings,omitempty"`
}

// TripLeg is a single origin-to-destination distance result.
type TripLeg struct {
	DistanceKM   float64 `json:"distance_km"`
	DistanceText string  `json:"distance_text"`
	Duration     string  `json:"travel_time,omitempty"`
	Source       string  `json:"source"`
}

// Distance sources.
const (
	DistanceSourceProvider = "provider"
	DistanceSourceEstimate = "estimate"
)

// CurrentWeather is the current weather in a city.
type CurrentWeather struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	TempC       float64 `json:"temperature"`
	Description string  `json:"description"`
}

// DailyForecast is one midday forecast point.
type DailyForecast struct {
	Date        string  `json:"date"`
	TempC       float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	Visibility  int     `json:"visibility"`
	IconURL     string  `json:"icon_url"`
}

// Hotel is a nearby lodging result.
type Hotel struct {
	ID           string  `json:"id"`
	Name         string  `json:"hotel_name"`
	City         string  `json:"city"`
	Price        float64 `json:"price"`
	Availability string  `json:"availability,omitempty"`
	Rating       float64 `json:"rating"`
	ImageURL     string  `json:"image_url,omitempty"`
}

// Fare is a public-transit fare in LKR.
type Fare struct {
	Currency string  `json:"currency"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

// GuideView is a guide with a resolvable photo URL.
type GuideView struct {
	Guide
	PhotoURL string `json:"photo_url"`
}

// DestinationDetail is the enriched single-destination view.
// Fields backed by a failed lookup are null and listed in Unavailable.
type DestinationDetail struct {
	Destination
	Activities  []string        `json:"things_to_do"`
	Guides      []GuideView     `json:"guides"`
	ImageURL    string          `json:"image_url"`
	Distance    *TripLeg        `json:"distance"`
	Forecast    []DailyForecast `json:"weather_forecast"`
	Hotels      []Hotel         `json:"hotels"`
	TransitFare *Fare           `json:"transit_fare"`
	ModeCosts   *TransportCosts `json:"transport_costs"`
	Unavailable []string        `json:"unavailable"`
}

// TransportEstimate answers an ad-hoc transport query.
type TransportEstimate struct {
	DistanceKM      float64            `json:"distance_km"`
	PartySize       int                `json:"no_of_people"`
	AvgCost         float64            `json:"avg_cost"`
	Suitability     map[string]float64 `json:"suitability"`
	Costs           TransportCosts     `json:"costs"`
	EstimatedBudget int64              `json:"estimated_budget"`
}

// PopularDestination is one row of the recommendation analytics.
type PopularDestination struct {
	DestinationID int64   `json:"destination_id"`
	Name          string  `json:"name"`
	TimesServed   int64   `json:"times_served"`
	AvgScore      float64 `json:"avg_score"`
}
