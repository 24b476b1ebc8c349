// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package models

import "time"

// ServedDestination is one ranked entry inside a RecommendationServed event.
type ServedDestination struct {
	DestinationID   int64   `json:"destination_id"`
	Name            string  `json:"name"`
	Rank            int     `json:"rank"`
	MatchScore      float64 `json:"match_score"`
	EstimatedBudget int64   `json:"estimated_budget"`
}

// RecommendationServed is published after a recommendation list is returned.
type RecommendationServed struct {
	EventID      string              `json:"event_id"`
	UserID       string              `json:"user_id"`
	RequestID    string              `json:"request_id,omitempty"`
	Labels       []string            `json:"labels"`
	Season       int                 `json:"season"`
	PartySize    int                 `json:"no_of_people"`
	ServedAt     time.Time           `json:"served_at"`
	Destinations []ServedDestination `json:"destinations"`
}

// QuestionnaireSubmitted is published after a questionnaire upsert.
type QuestionnaireSubmitted struct {
	EventID     string    `json:"event_id"`
	UserID      string    `json:"user_id"`
	Month       int       `json:"month"`
	PartySize   int       `json:"no_of_people"`
	StartName   string    `json:"start_location"`
	SubmittedAt time.Time `json:"submitted_at"`
}
