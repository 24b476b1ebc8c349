// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package events

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/tripwise/internal/models"
)

// Topics.
const (
	TopicRecommendationServed   = "tripwise.recommendation.served"
	TopicQuestionnaireSubmitted = "tripwise.questionnaire.submitted"

	// SubjectWildcard matches every Tripwise topic.
	SubjectWildcard = "tripwise.>"
)

// Message metadata keys.
const (
	MetadataEventType = "event_type"
	MetadataUserID    = "user_id"
)

var (
	// ErrInvalidEvent is returned for events missing required fields.
	ErrInvalidEvent = errors.New("invalid event")

	// ErrPublisherClosed is returned by Publish after Close.
	ErrPublisherClosed = errors.New("publisher is closed")
)

func validateServed(ev *models.RecommendationServed) error {
	switch {
	case ev == nil:
		return fmt.Errorf("%w: nil recommendation event", ErrInvalidEvent)
	case ev.EventID == "":
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	case ev.UserID == "":
		return fmt.Errorf("%w: user_id is required", ErrInvalidEvent)
	case ev.ServedAt.IsZero():
		return fmt.Errorf("%w: served_at is required", ErrInvalidEvent)
	}
	return nil
}

func validateSubmitted(ev *models.QuestionnaireSubmitted) error {
	switch {
	case ev == nil:
		return fmt.Errorf("%w: nil questionnaire event", ErrInvalidEvent)
	case ev.EventID == "":
		return fmt.Errorf("%w: event_id is required", ErrInvalidEvent)
	case ev.UserID == "":
		return fmt.Errorf("%w: user_id is required", ErrInvalidEvent)
	}
	return nil
}

// DecodeRecommendationServed parses and validates a served-recommendation payload.
func DecodeRecommendationServed(payload []byte) (*models.RecommendationServed, error) {
	var ev models.RecommendationServed
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := validateServed(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// DecodeQuestionnaireSubmitted parses and validates a questionnaire payload.
func DecodeQuestionnaireSubmitted(payload []byte) (*models.QuestionnaireSubmitted, error) {
	var ev models.QuestionnaireSubmitted
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}
	if err := validateSubmitted(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}
