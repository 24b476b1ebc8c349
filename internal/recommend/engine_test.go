// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package recommend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/tripwise/internal/database"
	"github.com/tomtom215/tripwise/internal/models"
	"github.com/tomtom215/tripwise/internal/providers"
	"github.com/tomtom215/tripwise/internal/recommend/budget"
	"github.com/tomtom215/tripwise/internal/recommend/scoring"
)

var fixedNow = time.Date(2026, time.March, 15, 9, 30, 0, 0, time.UTC)

var (
	colombo = models.Coordinates{Latitude: 6.9271, Longitude: 79.8612}
	ella    = models.Coordinates{Latitude: 6.8667, Longitude: 81.0466}
	galle   = models.Coordinates{Latitude: 6.0535, Longitude: 80.2210}
	kandy   = models.Coordinates{Latitude: 7.2906, Longitude: 80.6337}
)

// testCatalog returns Galle, Ella, Kandy in that order; with labels
// {Nature Lover, Adventurer} in Jan-Mar they rank Ella, Kandy, Galle.
func testCatalog() []models.Destination {
	return []models.Destination{
		{
			ID: 2, Name: "Galle", Location: galle, AvgCost: 100,
			Seasonal:   [models.SeasonCount]float64{0.5, 0.3, 0.3, 0.8},
			Affinities: models.NewTravelerTypeSet(models.CultureSeeker),
		},
		{
			ID: 1, Name: "Ella", Location: ella, AvgCost: 50,
			Seasonal:   [models.SeasonCount]float64{1.0, 0.6, 0.6, 0.4},
			Affinities: models.NewTravelerTypeSet(models.NatureLover, models.Adventurer),
			ThingsToDo: "Hiking / Nine Arch Bridge",
		},
		{
			ID: 3, Name: "Kandy", Location: kandy, AvgCost: 80,
			Seasonal:   [models.SeasonCount]float64{0.5, 0.5, 0.7, 0.5},
			Affinities: models.NewTravelerTypeSet(models.NatureLover, models.CultureSeeker),
		},
	}
}

type fakeCatalog struct {
	destinations []models.Destination
	guides       map[int64][]models.Guide
	err          error
}

func (f *fakeCatalog) ListDestinations(context.Context) ([]models.Destination, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.destinations, nil
}

func (f *fakeCatalog) GetDestination(_ context.Context, id int64) (models.Destination, error) {
	for _, d := range f.destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return models.Destination{}, fmt.Errorf("destination %d: %w", id, database.ErrNotFound)
}

func (f *fakeCatalog) GuidesForDestination(_ context.Context, id int64) ([]models.Guide, error) {
	return f.guides[id], nil
}

type fakeQuestionnaires struct {
	byUser map[string]*models.Questionnaire
}

func (f *fakeQuestionnaires) LatestQuestionnaire(_ context.Context, userID string) (*models.Questionnaire, error) {
	q, ok := f.byUser[userID]
	if !ok {
		return nil, fmt.Errorf("questionnaire for %s: %w", userID, database.ErrNotFound)
	}
	return q, nil
}

type fakeClassifier struct {
	labels models.TravelerTypeSet
	err    error

	mu   sync.Mutex
	seen []models.TravelerProfile
}

func (f *fakeClassifier) Predict(p models.TravelerProfile) (models.TravelerTypeSet, error) {
	f.mu.Lock()
	f.seen = append(f.seen, p)
	f.mu.Unlock()
	return f.labels, f.err
}

type fakeDistances struct {
	byDest map[models.Coordinates]models.TripLeg
	err    error
	calls  int
}

func (f *fakeDistances) Distances(_ context.Context, _ models.Coordinates, dests []models.Coordinates) ([]*models.TripLeg, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.TripLeg, len(dests))
	for i, d := range dests {
		if leg, ok := f.byDest[d]; ok {
			out[i] = &leg
		}
	}
	return out, nil
}

func (f *fakeDistances) Distance(_ context.Context, _, dest models.Coordinates) (models.TripLeg, error) {
	if f.err != nil {
		return models.TripLeg{}, f.err
	}
	leg, ok := f.byDest[dest]
	if !ok {
		return models.TripLeg{}, providers.ErrNoRoute
	}
	return leg, nil
}

type fakeWeather struct {
	forecast []models.DailyForecast
	err      error
}

func (f *fakeWeather) Forecast(context.Context, string) ([]models.DailyForecast, error) {
	return f.forecast, f.err
}

type fakeHotels struct {
	hotels []models.Hotel
	err    error
}

func (f *fakeHotels) Hotels(context.Context, string) ([]models.Hotel, error) {
	return f.hotels, f.err
}

type fakeTransit struct {
	fare *models.Fare
	err  error
}

func (f *fakeTransit) TransitFare(context.Context, models.Coordinates, models.Coordinates) (*models.Fare, error) {
	return f.fare, f.err
}

type fakeEvents struct {
	err    error
	served []*models.RecommendationServed
}

func (f *fakeEvents) PublishRecommendationServed(_ context.Context, ev *models.RecommendationServed) error {
	f.served = append(f.served, ev)
	return f.err
}

func testQuestionnaire() *models.Questionnaire {
	return &models.Questionnaire{
		UserID:      "user-1",
		Interests:   models.Interests{Nature: true, Adventure: true},
		Month:       time.March,
		PartySize:   4,
		Start:       colombo,
		StartName:   "Colombo",
		DateOfBirth: time.Date(1990, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
}

type testRig struct {
	catalog    *fakeCatalog
	classifier *fakeClassifier
	distances  *fakeDistances
	weather    *fakeWeather
	hotels     *fakeHotels
	transit    *fakeTransit
	events     *fakeEvents
}

func newTestRig() *testRig {
	return &testRig{
		catalog: &fakeCatalog{
			destinations: testCatalog(),
			guides: map[int64][]models.Guide{
				1: {{ID: 7, Name: "Nimal", Gender: "male", ContactNo: "0771234567"}},
			},
		},
		classifier: &fakeClassifier{labels: models.NewTravelerTypeSet(models.NatureLover, models.Adventurer)},
		distances: &fakeDistances{byDest: map[models.Coordinates]models.TripLeg{
			ella:  {DistanceKM: 100, DistanceText: "100 km", Duration: "3 hours", Source: models.DistanceSourceProvider},
			kandy: {DistanceKM: 115, DistanceText: "115 km", Duration: "3 hours 10 mins", Source: models.DistanceSourceProvider},
			galle: {DistanceKM: 126, DistanceText: "126 km", Duration: "2 hours", Source: models.DistanceSourceProvider},
		}},
		weather: &fakeWeather{forecast: []models.DailyForecast{{Date: "2026-03-16", TempC: 21.5, Description: "light rain"}}},
		hotels:  &fakeHotels{hotels: []models.Hotel{{ID: "h1", Name: "Ella Flower Garden", City: "Ella", Price: 8500, Rating: 4.5}}},
		transit: &fakeTransit{fare: &models.Fare{Currency: "LKR", Value: 480, Text: "LKR 480.00"}},
		events:  &fakeEvents{},
	}
}

func (r *testRig) engine(t *testing.T, cfg Config) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, Deps{
		Catalog:        r.catalog,
		Questionnaires: &fakeQuestionnaires{byUser: map[string]*models.Questionnaire{"user-1": testQuestionnaire()}},
		Classifier:     r.classifier,
		Distances:      r.distances,
		Weather:        r.weather,
		Hotels:         r.hotels,
		Transit:        r.transit,
		Events:         r.events,
		Clock:          func() time.Time { return fixedNow },
	}, zerolog.New(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	full := Deps{
		Catalog:        &fakeCatalog{},
		Questionnaires: &fakeQuestionnaires{},
		Classifier:     &fakeClassifier{},
	}
	badScoring := DefaultConfig()
	badScoring.Scoring.LabelWeight = 0.9

	tests := []struct {
		name    string
		cfg     Config
		deps    func() Deps
		wantErr bool
	}{
		{"valid with only required deps", DefaultConfig(), func() Deps { return full }, false},
		{"invalid scoring weights", badScoring, func() Deps { return full }, true},
		{"missing catalog", DefaultConfig(), func() Deps { d := full; d.Catalog = nil; return d }, true},
		{"missing questionnaires", DefaultConfig(), func() Deps { d := full; d.Questionnaires = nil; return d }, true},
		{"missing classifier", DefaultConfig(), func() Deps { d := full; d.Classifier = nil; return d }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewEngine(tt.cfg, tt.deps(), zerolog.New(io.Discard))
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecommend_RanksAndBudgets(t *testing.T) {
	t.Parallel()

	rig := newTestRig()
	e := rig.engine(t, DefaultConfig())

	resp, err := e.Recommend(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	var names []string
	for _, r := range resp.Recommendations {
		names = append(names, r.Name)
	}
	if want := []string{"Ella", "Kandy", "Galle"}; !reflect.DeepEqual(names, want) {
		t.Fatalf("order = %v, want %v", names, want)
	}

	top := resp.Recommendations[0]
	if top.MatchScore != 1.0 || top.Rating != scoring.RatingVeryGood {
		t.Errorf("top score = %v (%s), want 1 (Very Good)", top.MatchScore, top.Rating)
	}
	if top.EstimatedBudget != 1276 {
		t.Errorf("Ella budget = %d, want 1276", top.EstimatedBudget)
	}
	if top.DistanceSource != models.DistanceSourceProvider || top.TravelTime != "3 hours" {
		t.Errorf("Ella leg = %+v", top)
	}
	if top.ThumbnailURL != "/api/v1/destinations/1/image" {
		t.Errorf("ThumbnailURL = %q", top.ThumbnailURL)
	}
	if kandy := resp.Recommendations[1]; kandy.MatchScore != 0.5 || kandy.Rating != scoring.RatingAverage {
		t.Errorf("Kandy = %v (%s), want 0.5 (Average)", kandy.MatchScore, kandy.Rating)
	}

	if resp.Season != "Jan-Mar" || resp.PartySize != 4 || resp.UserID != "user-1" {
		t.Errorf("response header = %+v", resp)
	}
	if want := []string{"Nature Lover", "Adventurer"}; !reflect.DeepEqual(resp.Labels, want) {
		t.Errorf("Labels = %v, want %v", resp.Labels, want)
	}
	if !resp.Timestamp.Equal(fixedNow) {
		t.Errorf("Timestamp = %v, want %v", resp.Timestamp, fixedNow)
	}
	if resp.RequestID == "" {
		t.Error("RequestID is empty")
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", resp.Warnings)
	}
	if rig.distances.calls != 1 {
		t.Errorf("distance calls = %d, want one batch", rig.distances.calls)
	}

	seen := rig.classifier.seen[0]
	if seen.Age != 35 || seen.Season != models.SeasonJanMar || !seen.Interests.Adventure {
		t.Errorf("classifier profile = %+v", seen)
	}
}

func TestRecommend_PublishesServedEvent(t *testing.T) {
	t.Parallel()

	rig := newTestRig()
	e := rig.engine(t, DefaultConfig())

	resp, err := e.Recommend(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(rig.events.served) != 1 {
		t.Fatalf("published %d events, want 1", len(rig.events.served))
	}
	ev := rig.events.served[0]
	if ev.UserID != "user-1" || ev.RequestID != resp.RequestID || ev.PartySize != 4 || ev.Season != 0 {
		t.Errorf("event header = %+v", ev)
	}
	for i, d := range ev.Destinations {
		if d.Rank != i+1 {
			t.Errorf("destination %d rank = %d", i, d.Rank)
		}
		if d.DestinationID != resp.Recommendations[i].DestinationID {
			t.Errorf("destination %d id = %d", i, d.DestinationID)
		}
	}
	if ev.Destinations[0].EstimatedBudget != 1276 {
		t.Errorf("event budget = %d, want 1276", ev.Destinations[0].EstimatedBudget)
	}
}

func TestRecommend_PublishFailureIsIgnored(t *testing.T) {
	t.Parallel()

	rig := newTestRig()
	rig.events.err = errors.New("broker down")
	e := rig.engine(t, DefaultConfig())

	if _, err := e.Recommend(context.Background(), "user-1"); err != nil {
		t.Fatalf("Recommend() error = %v, want publish failure ignored", err)
	}
}

func TestRecommend_DistanceFallback(t *testing.T) {
	t.Parallel()

	t.Run("missing route falls back per destination", func(t *testing.T) {
		t.Parallel()
		rig := newTestRig()
		delete(rig.distances.byDest, galle)
		e := rig.engine(t, DefaultConfig())

		resp, err := e.Recommend(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		last := resp.Recommendations[2]
		if last.Name != "Galle" || last.DistanceSource != models.DistanceSourceEstimate {
			t.Fatalf("Galle = %+v, want great-circle estimate", last)
		}
		want := math.Round(GreatCircleKM(colombo, galle)*10) / 10
		if last.DistanceKM != want {
			t.Errorf("Galle distance = %v, want %v", last.DistanceKM, want)
		}
		if resp.Recommendations[0].DistanceSource != models.DistanceSourceProvider {
			t.Error("Ella should keep the provider distance")
		}
		if !reflect.DeepEqual(resp.Warnings, []string{LookupDistance}) {
			t.Errorf("Warnings = %v", resp.Warnings)
		}
	})

	t.Run("unusable provider distance falls back", func(t *testing.T) {
		t.Parallel()
		rig := newTestRig()
		leg := rig.distances.byDest[galle]
		leg.DistanceKM = math.NaN()
		rig.distances.byDest[galle] = leg
		e := rig.engine(t, DefaultConfig())

		resp, err := e.Recommend(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		for _, r := range resp.Recommendations {
			if r.Name != "Galle" {
				continue
			}
			if r.DistanceSource != models.DistanceSourceEstimate || math.IsNaN(r.DistanceKM) || r.DistanceKM <= 0 {
				t.Errorf("Galle = %+v, want great-circle estimate", r)
			}
			if r.EstimatedBudget <= 0 {
				t.Errorf("Galle budget = %v, want a positive estimate", r.EstimatedBudget)
			}
		}
	})

	t.Run("provider error falls back everywhere", func(t *testing.T) {
		t.Parallel()
		rig := newTestRig()
		rig.distances.err = &providers.StatusError{Provider: "distance", StatusCode: 502}
		e := rig.engine(t, DefaultConfig())

		resp, err := e.Recommend(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		for _, r := range resp.Recommendations {
			if r.DistanceSource != models.DistanceSourceEstimate || r.DistanceKM <= 0 {
				t.Errorf("%s = %+v, want positive estimate", r.Name, r)
			}
		}
	})

	t.Run("no provider configured", func(t *testing.T) {
		t.Parallel()
		rig := newTestRig()
		e, err := NewEngine(DefaultConfig(), Deps{
			Catalog:        rig.catalog,
			Questionnaires: &fakeQuestionnaires{byUser: map[string]*models.Questionnaire{"user-1": testQuestionnaire()}},
			Classifier:     rig.classifier,
			Clock:          func() time.Time { return fixedNow },
		}, zerolog.New(io.Discard))
		if err != nil {
			t.Fatalf("NewEngine() error = %v", err)
		}
		resp, err := e.Recommend(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if len(resp.Recommendations) != 3 || resp.Recommendations[0].DistanceSource != models.DistanceSourceEstimate {
			t.Errorf("Recommendations = %+v", resp.Recommendations)
		}
	})
}

func TestRecommend_Errors(t *testing.T) {
	t.Parallel()

	t.Run("no questionnaire", func(t *testing.T) {
		t.Parallel()
		e := newTestRig().engine(t, DefaultConfig())
		_, err := e.Recommend(context.Background(), "stranger")
		if !errors.Is(err, ErrNoQuestionnaire) {
			t.Errorf("error = %v, want ErrNoQuestionnaire", err)
		}
	})

	t.Run("classifier failure", func(t *testing.T) {
		t.Parallel()
		rig := newTestRig()
		rig.classifier.err = errors.New("schema mismatch")
		e := rig.engine(t, DefaultConfig())
		_, err := e.Recommend(context.Background(), "user-1")
		if !errors.Is(err, ErrClassifier) {
			t.Errorf("error = %v, want ErrClassifier", err)
		}
		if len(rig.events.served) != 0 {
			t.Error("failed request must not publish an event")
		}
	})

	t.Run("catalog failure", func(t *testing.T) {
		t.Parallel()
		rig := newTestRig()
		rig.catalog.err = errors.New("database is locked")
		e := rig.engine(t, DefaultConfig())
		if _, err := e.Recommend(context.Background(), "user-1"); err == nil {
			t.Error("Recommend() error = nil, want catalog error")
		}
	})
}

func TestRecommend_EmptyLabelsStillRank(t *testing.T) {
	t.Parallel()

	rig := newTestRig()
	rig.classifier.labels = 0
	e := rig.engine(t, DefaultConfig())

	resp, err := e.Recommend(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Labels) != 0 {
		t.Errorf("Labels = %v, want empty", resp.Labels)
	}
	// Season only: Ella 0.4, then Galle and Kandy tie at 0.2 in catalog order.
	var names []string
	for _, r := range resp.Recommendations {
		names = append(names, r.Name)
	}
	if want := []string{"Ella", "Galle", "Kandy"}; !reflect.DeepEqual(names, want) {
		t.Errorf("order = %v, want %v", names, want)
	}
}

func TestRecommend_TopN(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Scoring.TopN = 2
	rig := newTestRig()
	e := rig.engine(t, cfg)

	resp, err := e.Recommend(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2", len(resp.Recommendations))
	}
}

func TestDestinationDetail(t *testing.T) {
	t.Parallel()

	rig := newTestRig()
	e := rig.engine(t, DefaultConfig())

	detail, err := e.DestinationDetail(context.Background(), "user-1", 1)
	if err != nil {
		t.Fatalf("DestinationDetail() error = %v", err)
	}
	if detail.Name != "Ella" || detail.ImageURL != "/api/v1/destinations/1/image" {
		t.Errorf("detail = %+v", detail.Destination)
	}
	if want := []string{"Hiking", "Nine Arch Bridge"}; !reflect.DeepEqual(detail.Activities, want) {
		t.Errorf("Activities = %v, want %v", detail.Activities, want)
	}
	if len(detail.Guides) != 1 || detail.Guides[0].PhotoURL != "/api/v1/guides/7/photo" {
		t.Errorf("Guides = %+v", detail.Guides)
	}
	if detail.Distance == nil || detail.Distance.DistanceKM != 100 {
		t.Errorf("Distance = %+v", detail.Distance)
	}
	if len(detail.Forecast) != 1 || len(detail.Hotels) != 1 || detail.TransitFare == nil {
		t.Errorf("enrichment missing: %+v", detail)
	}
	if len(detail.Unavailable) != 0 {
		t.Errorf("Unavailable = %v, want none", detail.Unavailable)
	}

	costs, err := budget.ModeCosts(100, 4)
	if err != nil {
		t.Fatal(err)
	}
	if want := transportCosts(costs.Rounded()); detail.ModeCosts == nil || *detail.ModeCosts != want {
		t.Errorf("ModeCosts = %+v, want %+v", detail.ModeCosts, want)
	}
}

func TestDestinationDetail_PartialFailures(t *testing.T) {
	t.Parallel()

	rig := newTestRig()
	rig.weather.err = providers.ErrCityNotFound
	rig.hotels.err = &providers.StatusError{Provider: "hotels", StatusCode: 500}
	delete(rig.distances.byDest, ella)
	e := rig.engine(t, DefaultConfig())

	detail, err := e.DestinationDetail(context.Background(), "user-1", 1)
	if err != nil {
		t.Fatalf("DestinationDetail() error = %v", err)
	}
	want := []string{LookupDistance, LookupWeather, LookupHotels}
	if !reflect.DeepEqual(detail.Unavailable, want) {
		t.Errorf("Unavailable = %v, want %v", detail.Unavailable, want)
	}
	if detail.Distance != nil || detail.Forecast != nil || detail.Hotels != nil {
		t.Errorf("failed lookups must be null: %+v", detail)
	}
	if detail.TransitFare == nil {
		t.Error("TransitFare should survive other failures")
	}
	if detail.ModeCosts == nil || detail.ModeCosts.Car <= 0 {
		t.Errorf("ModeCosts = %+v, want estimate-based costs", detail.ModeCosts)
	}
}

func TestDestinationDetail_Errors(t *testing.T) {
	t.Parallel()

	e := newTestRig().engine(t, DefaultConfig())

	if _, err := e.DestinationDetail(context.Background(), "user-1", 99); !errors.Is(err, ErrDestinationNotFound) {
		t.Errorf("unknown destination error = %v, want ErrDestinationNotFound", err)
	}
	if _, err := e.DestinationDetail(context.Background(), "stranger", 1); !errors.Is(err, ErrNoQuestionnaire) {
		t.Errorf("unknown user error = %v, want ErrNoQuestionnaire", err)
	}
}

func TestEstimateTransport(t *testing.T) {
	t.Parallel()

	est, err := EstimateTransport(100, 4, 50)
	if err != nil {
		t.Fatalf("EstimateTransport() error = %v", err)
	}
	if est.EstimatedBudget != 1276 {
		t.Errorf("EstimatedBudget = %d, want 1276", est.EstimatedBudget)
	}
	var sum float64
	for _, p := range est.Suitability {
		sum += p
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("suitability sums to %v, want 1", sum)
	}
	if len(est.Suitability) != len(budget.Modes) {
		t.Errorf("suitability has %d modes", len(est.Suitability))
	}

	for _, tc := range []struct {
		name  string
		km    float64
		party int
		avg   float64
	}{
		{"zero party", 100, 0, 50},
		{"negative distance", -1, 2, 50},
		{"negative avg cost", 100, 2, -5},
	} {
		if _, err := EstimateTransport(tc.km, tc.party, tc.avg); err == nil {
			t.Errorf("%s: error = nil, want validation error", tc.name)
		}
	}
}

func TestLabels_RejectsInvalidProfile(t *testing.T) {
	t.Parallel()

	e := newTestRig().engine(t, DefaultConfig())
	_, err := e.Labels(models.TravelerProfile{Age: 30, Season: 7})
	if !errors.Is(err, ErrClassifier) {
		t.Errorf("error = %v, want ErrClassifier", err)
	}
}
