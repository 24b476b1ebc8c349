// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"github.com/tomtom215/tripwise/internal/models"
)

// QuestionnaireRequest is the body of PUT /users/{userID}/questionnaire.
// The eleven interest flags sit at the top level next to the trip fields.
type QuestionnaireRequest struct {
	models.Interests
	TravelMonth   string `json:"travel_month" validate:"required,month_name" example:"March"`
	PartySize     int    `json:"no_of_people" validate:"min=1,max=50" example:"4"`
	StartLocation string `json:"start_location" validate:"required,max=100" example:"Colombo"`
	DateOfBirth   string `json:"date_of_birth" validate:"required,datetime=2006-01-02" example:"1990-06-01"`
}

// QuestionnaireView is the stored questionnaire as returned by GET.
type QuestionnaireView struct {
	models.Questionnaire
	TravelMonth string `json:"travel_month"`
	Season      string `json:"season"`
}

// StartingLocationRequest is the body of POST /starting-locations.
type StartingLocationRequest struct {
	Name      string  `json:"name" validate:"required,max=100" example:"Negombo"`
	Latitude  float64 `json:"latitude" validate:"latitude" example:"7.2008"`
	Longitude float64 `json:"longitude" validate:"longitude" example:"79.8737"`
}

// UserRequest validates the userID path parameter.
type UserRequest struct {
	UserID string `json:"user_id" validate:"required,max=128,printascii"`
}

// ResourceIDRequest validates a numeric {id} path parameter.
type ResourceIDRequest struct {
	ID int64 `json:"id" validate:"min=1"`
}

// CityRequest is the query of the weather and hotels endpoints.
type CityRequest struct {
	City string `json:"city" validate:"required,max=100"`
}

// TransportEstimateRequest is the query of GET /transport/estimate.
type TransportEstimateRequest struct {
	DistanceKM float64 `json:"distance_km" validate:"gte=0,lte=20000"`
	PartySize  int     `json:"party_size" validate:"min=1,max=50"`
	AvgCost    float64 `json:"avg_cost" validate:"gte=0"`
}

// PopularDestinationsRequest is the query of GET /analytics/popular-destinations.
type PopularDestinationsRequest struct {
	Limit int    `json:"limit" validate:"min=1,max=100"`
	Since string `json:"since" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// LocationList is the payload of GET /starting-locations.
type LocationList struct {
	Locations []string `json:"locations"`
}

// HealthStatus is the payload of the readiness check.
type HealthStatus struct {
	Status        string  `json:"status"`
	Database      bool    `json:"database"`
	Classifier    bool    `json:"classifier"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
