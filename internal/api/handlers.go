// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/tripwise/internal/models"
)

// Store is the persistence the handlers read and write directly.
// *database.DB satisfies it.
type Store interface {
	Ping(ctx context.Context) error

	ListStartingLocations(ctx context.Context) ([]models.StartingLocation, error)
	StartingLocationByName(ctx context.Context, name string) (models.StartingLocation, error)
	AddStartingLocation(ctx context.Context, name string, at models.Coordinates) (models.StartingLocation, error)

	UpsertQuestionnaire(ctx context.Context, q *models.Questionnaire) error
	LatestQuestionnaire(ctx context.Context, userID string) (*models.Questionnaire, error)

	DestinationImage(ctx context.Context, destinationID int64) ([]byte, error)
	GuidePhoto(ctx context.Context, guideID int64) ([]byte, error)

	PopularDestinations(ctx context.Context, limit int, since *time.Time) ([]models.PopularDestination, error)
}

// Recommender is the recommendation engine. *recommend.Engine satisfies it.
type Recommender interface {
	Recommend(ctx context.Context, userID string) (*models.RecommendationResponse, error)
	DestinationDetail(ctx context.Context, userID string, destinationID int64) (*models.DestinationDetail, error)
	TransportEstimate(distanceKM float64, partySize int, avgCost float64) (*models.TransportEstimate, error)
}

// WeatherService answers the weather endpoints.
type WeatherService interface {
	Current(ctx context.Context, city string) (*models.CurrentWeather, error)
	Forecast(ctx context.Context, city string) ([]models.DailyForecast, error)
}

// HotelService answers the hotels endpoint.
type HotelService interface {
	Hotels(ctx context.Context, city string) ([]models.Hotel, error)
}

// QuestionnairePublisher announces questionnaire submissions.
type QuestionnairePublisher interface {
	PublishQuestionnaireSubmitted(ctx context.Context, ev *models.QuestionnaireSubmitted) error
}

// HandlerDeps are the collaborators of Handler. Store and Recommender are
// required. A nil Weather or Hotels makes those endpoints answer 503; a nil
// Events skips publishing.
type HandlerDeps struct {
	Store       Store
	Recommender Recommender
	Weather     WeatherService
	Hotels      HotelService
	Events      QuestionnairePublisher

	// ModelReady reports whether the classifier artifact is loaded.
	ModelReady func() bool

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Handler holds the HTTP handlers of the Tripwise API.
type Handler struct {
	store       Store
	recommender Recommender
	weather     WeatherService
	hotels      HotelService
	events      QuestionnairePublisher
	modelReady  func() bool
	clock       func() time.Time
	startTime   time.Time
}

// NewHandler validates deps and returns a Handler.
func NewHandler(deps HandlerDeps) (*Handler, error) {
	switch {
	case deps.Store == nil:
		return nil, errors.New("api: store is required")
	case deps.Recommender == nil:
		return nil, errors.New("api: recommender is required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	modelReady := deps.ModelReady
	if modelReady == nil {
		modelReady = func() bool { return true }
	}
	return &Handler{
		store:       deps.Store,
		recommender: deps.Recommender,
		weather:     deps.Weather,
		hotels:      deps.Hotels,
		events:      deps.Events,
		modelReady:  modelReady,
		clock:       clock,
		startTime:   clock(),
	}, nil
}
