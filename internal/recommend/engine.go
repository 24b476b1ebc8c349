// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tripwise/internal/database"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/models"
	"github.com/tomtom215/tripwise/internal/providers"
	"github.com/tomtom215/tripwise/internal/recommend/budget"
	"github.com/tomtom215/tripwise/internal/recommend/scoring"
)

var (
	// ErrNoQuestionnaire is returned when the user has not submitted preferences.
	ErrNoQuestionnaire = errors.New("no questionnaire on file")

	// ErrDestinationNotFound is returned for an unknown destination id.
	ErrDestinationNotFound = errors.New("destination not found")

	// ErrClassifier wraps classifier failures.
	ErrClassifier = errors.New("classifier failed")
)

// Lookup names reported in warnings, Unavailable and fallback metrics.
const (
	LookupDistance = "distance"
	LookupWeather  = "weather"
	LookupHotels   = "hotels"
	LookupTransit  = "transit_fare"
)

// Catalog reads destinations and guides.
type Catalog interface {
	ListDestinations(ctx context.Context) ([]models.Destination, error)
	GetDestination(ctx context.Context, id int64) (models.Destination, error)
	GuidesForDestination(ctx context.Context, destinationID int64) ([]models.Guide, error)
}

// QuestionnaireStore reads the latest questionnaire of a user.
type QuestionnaireStore interface {
	LatestQuestionnaire(ctx context.Context, userID string) (*models.Questionnaire, error)
}

// Classifier predicts traveler types for a profile.
type Classifier interface {
	Predict(p models.TravelerProfile) (models.TravelerTypeSet, error)
}

// DistanceProvider resolves road distances. Distances returns one entry per
// destination, nil where no route exists.
type DistanceProvider interface {
	Distances(ctx context.Context, origin models.Coordinates, dests []models.Coordinates) ([]*models.TripLeg, error)
	Distance(ctx context.Context, origin, dest models.Coordinates) (models.TripLeg, error)
}

// WeatherProvider returns a city forecast.
type WeatherProvider interface {
	Forecast(ctx context.Context, city string) ([]models.DailyForecast, error)
}

// HotelProvider lists hotels in a city.
type HotelProvider interface {
	Hotels(ctx context.Context, city string) ([]models.Hotel, error)
}

// TransitProvider returns the public-transit fare between two points.
type TransitProvider interface {
	TransitFare(ctx context.Context, origin, dest models.Coordinates) (*models.Fare, error)
}

// EventPublisher publishes recommendation-served events.
type EventPublisher interface {
	PublishRecommendationServed(ctx context.Context, ev *models.RecommendationServed) error
}

// Deps are the engine collaborators. Catalog, Questionnaires and Classifier
// are required; a nil provider or publisher disables that lookup.
type Deps struct {
	Catalog        Catalog
	Questionnaires QuestionnaireStore
	Classifier     Classifier
	Distances      DistanceProvider
	Weather        WeatherProvider
	Hotels         HotelProvider
	Transit        TransitProvider
	Events         EventPublisher

	// Clock defaults to time.Now.
	Clock func() time.Time
}

// Engine serves recommendations. It is safe for concurrent use.
type Engine struct {
	cfg    Config
	deps   Deps
	scorer *scoring.Scorer
	logger zerolog.Logger
}

// NewEngine validates cfg and deps and returns a ready engine.
func NewEngine(cfg Config, deps Deps, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	switch {
	case deps.Catalog == nil:
		return nil, errors.New("recommend: catalog is required")
	case deps.Questionnaires == nil:
		return nil, errors.New("recommend: questionnaire store is required")
	case deps.Classifier == nil:
		return nil, errors.New("recommend: classifier is required")
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}

	scorer, err := scoring.New(cfg.Scoring)
	if err != nil {
		return nil, err
	}

	return &Engine{
		cfg:    cfg,
		deps:   deps,
		scorer: scorer,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Labels predicts the traveler types for a profile.
func (e *Engine) Labels(p models.TravelerProfile) (models.TravelerTypeSet, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrClassifier, err)
	}
	labels, err := e.deps.Classifier.Predict(p)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrClassifier, err)
	}
	return labels, nil
}

// Shortlist classifies p and ranks the whole catalog against the result.
func (e *Engine) Shortlist(ctx context.Context, p models.TravelerProfile) (models.TravelerTypeSet, []scoring.ScoredDestination, error) {
	labels, err := e.Labels(p)
	if err != nil {
		return 0, nil, err
	}
	catalog, err := e.deps.Catalog.ListDestinations(ctx)
	if err != nil {
		return 0, nil, fmt.Errorf("list destinations: %w", err)
	}
	return labels, e.scorer.Rank(labels, p.Season, catalog), nil
}

// Recommend returns the ranked, budgeted recommendations for userID.
func (e *Engine) Recommend(ctx context.Context, userID string) (resp *models.RecommendationResponse, err error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, e.cfg.RequestTimeout)
	defer cancel()

	requestID := logging.RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = logging.GenerateRequestID()
	}
	reqLogger := e.logger.With().
		Str("request_id", requestID).
		Str("user_id", logging.RedactUserID(userID)).
		Logger()

	defer func() {
		partial := resp != nil && len(resp.Warnings) > 0
		metrics.RecordRecommendation(time.Since(start), partial, err)
	}()

	q, err := e.questionnaire(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := e.deps.Clock()
	profile, err := q.Profile(now)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClassifier, err)
	}

	labels, ranked, err := e.Shortlist(ctx, profile)
	if err != nil {
		return nil, err
	}

	legs, degraded := e.distances(ctx, q.Start, ranked)

	recs := make([]models.Recommendation, len(ranked))
	for i := range ranked {
		d := &ranked[i].Destination
		estimate, err := budget.Estimate(d.AvgCost, legs[i].DistanceKM, q.PartySize)
		if err != nil {
			return nil, fmt.Errorf("estimate budget for %s: %w", d.Name, err)
		}
		score := scoring.RoundScore(ranked[i].Score)
		recs[i] = models.Recommendation{
			ScoredDestination: models.ScoredDestination{
				DestinationID: d.ID,
				Name:          d.Name,
				MatchScore:    score,
				Rating:        e.scorer.Rate(ranked[i].Score),
			},
			EstimatedBudget: int64(estimate),
			DistanceKM:      legs[i].DistanceKM,
			DistanceText:    legs[i].DistanceText,
			DistanceSource:  legs[i].Source,
			TravelTime:      legs[i].Duration,
			ThumbnailURL:    DestinationImageURL(d.ID),
		}
	}

	resp = &models.RecommendationResponse{
		UserID:          userID,
		RequestID:       requestID,
		Labels:          labels.Names(),
		Season:          profile.Season.String(),
		PartySize:       q.PartySize,
		LatencyMS:       time.Since(start).Milliseconds(),
		Timestamp:       now.UTC(),
		Recommendations: recs,
	}
	if degraded {
		resp.Warnings = []string{LookupDistance}
	}

	e.publishServed(ctx, reqLogger, resp, profile.Season)

	reqLogger.Info().
		Int("results", len(recs)).
		Strs("labels", resp.Labels).
		Bool("distance_fallback", degraded).
		Int64("latency_ms", resp.LatencyMS).
		Msg("recommendations served")
	return resp, nil
}

func (e *Engine) questionnaire(ctx context.Context, userID string) (*models.Questionnaire, error) {
	q, err := e.deps.Questionnaires.LatestQuestionnaire(ctx, userID)
	if errors.Is(err, database.ErrNotFound) {
		return nil, fmt.Errorf("%w for user %s", ErrNoQuestionnaire, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("load questionnaire: %w", err)
	}
	return q, nil
}

// distances resolves one leg per ranked destination. Entries the provider
// cannot serve fall back to the great-circle estimate; degraded reports
// whether any fallback happened.
func (e *Engine) distances(ctx context.Context, origin models.Coordinates, ranked []scoring.ScoredDestination) (legs []models.TripLeg, degraded bool) {
	legs = make([]models.TripLeg, len(ranked))
	if len(ranked) == 0 {
		return legs, false
	}

	var provided []*models.TripLeg
	if e.deps.Distances != nil {
		dests := make([]models.Coordinates, len(ranked))
		for i := range ranked {
			dests[i] = ranked[i].Destination.Location
		}
		lookupCtx, cancel := context.WithTimeout(ctx, e.cfg.LookupTimeout)
		var err error
		provided, err = e.deps.Distances.Distances(lookupCtx, origin, dests)
		cancel()
		if err != nil {
			if !errors.Is(err, providers.ErrDisabled) {
				logging.CtxWarn(ctx).Err(err).Msg("distance lookup failed, using great-circle estimates")
			}
			provided = nil
		}
	}

	for i := range ranked {
		if i < len(provided) && provided[i] != nil && providers.ValidKM(provided[i].DistanceKM) {
			legs[i] = *provided[i]
			continue
		}
		legs[i] = estimatedLeg(origin, ranked[i].Destination.Location)
		degraded = true
	}
	if degraded {
		metrics.RecordFallback(LookupDistance)
	}
	return legs, degraded
}

func (e *Engine) publishServed(ctx context.Context, logger zerolog.Logger, resp *models.RecommendationResponse, season models.Season) {
	if e.deps.Events == nil {
		return
	}
	served := make([]models.ServedDestination, len(resp.Recommendations))
	for i := range resp.Recommendations {
		r := &resp.Recommendations[i]
		served[i] = models.ServedDestination{
			DestinationID:   r.DestinationID,
			Name:            r.Name,
			Rank:            i + 1,
			MatchScore:      r.MatchScore,
			EstimatedBudget: r.EstimatedBudget,
		}
	}
	ev := &models.RecommendationServed{
		UserID:       resp.UserID,
		RequestID:    resp.RequestID,
		Labels:       resp.Labels,
		Season:       int(season),
		PartySize:    resp.PartySize,
		ServedAt:     resp.Timestamp,
		Destinations: served,
	}
	if err := e.deps.Events.PublishRecommendationServed(context.WithoutCancel(ctx), ev); err != nil {
		logger.Warn().Err(err).Msg("publish recommendation served event")
	}
}

// TransportEstimate returns mode suitability, per-mode costs and the blended
// trip budget for an ad-hoc query.
func (e *Engine) TransportEstimate(distanceKM float64, partySize int, avgCost float64) (*models.TransportEstimate, error) {
	return EstimateTransport(distanceKM, partySize, avgCost)
}

// EstimateTransport is TransportEstimate without an engine.
func EstimateTransport(distanceKM float64, partySize int, avgCost float64) (*models.TransportEstimate, error) {
	probs, err := budget.Suitability(distanceKM, partySize)
	if err != nil {
		return nil, err
	}
	costs, err := budget.ModeCosts(distanceKM, partySize)
	if err != nil {
		return nil, err
	}
	total, err := budget.Estimate(avgCost, distanceKM, partySize)
	if err != nil {
		return nil, err
	}
	return &models.TransportEstimate{
		DistanceKM:      distanceKM,
		PartySize:       partySize,
		AvgCost:         avgCost,
		Suitability:     probs.Map(),
		Costs:           transportCosts(costs.Rounded()),
		EstimatedBudget: int64(total),
	}, nil
}

func transportCosts(c budget.Costs) models.TransportCosts {
	return models.TransportCosts{
		Bicycle:    c.Bicycle,
		Car:        c.Car,
		PrivateBus: c.PrivateBus,
		Transit:    c.Transit,
	}
}

// DestinationImageURL is the API path serving a destination's image.
func DestinationImageURL(id int64) string {
	return fmt.Sprintf("/api/v1/destinations/%d/image", id)
}

// GuidePhotoURL is the API path serving a guide's photo.
func GuidePhotoURL(id int64) string {
	return fmt.Sprintf("/api/v1/guides/%d/photo", id)
}
