// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/models"
)

// testDBSemaphore allows one DuckDB-backed test at a time. DuckDB CGO calls
// can hang when several in-memory databases do concurrent work under CI
// resource pressure, so the slot is held for the whole test.
var testDBSemaphore = make(chan struct{}, 1)

var testDBMutex sync.Mutex

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	cfg := &config.DatabaseConfig{
		Path:                   ":memory:",
		MaxMemory:              "256MB",
		PreserveInsertionOrder: true,
	}

	type result struct {
		db  *DB
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		testDBMutex.Lock()
		db, err := New(cfg)
		testDBMutex.Unlock()
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s")
		return nil
	}
}

func sampleDestination(name string, types ...models.TravelerType) *models.Destination {
	return &models.Destination{
		Name:        name,
		Location:    models.Coordinates{Latitude: 6.8667, Longitude: 81.0667},
		Seasonal:    [models.SeasonCount]float64{0.9, 0.4, 0.7, 1.2},
		Affinities:  models.NewTravelerTypeSet(types...),
		AvgCost:     3500,
		Description: "Hill country town",
		ThingsToDo:  "Nine Arch Bridge/Little Adam's Peak/ Ravana Falls ",
		Regions:     models.Regions{HillCountry: true},
	}
}

func TestNewCreatesSchemaIdempotently(t *testing.T) {
	db := setupTestDB(t)

	if err := db.createTables(); err != nil {
		t.Fatalf("second createTables() error = %v", err)
	}
	if err := db.createIndexes(); err != nil {
		t.Fatalf("second createIndexes() error = %v", err)
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if db.Path() != ":memory:" {
		t.Errorf("Path() = %q", db.Path())
	}
}

func TestUpsertAndGetDestination(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	ella := sampleDestination("Ella", models.NatureLover, models.Adventurer, models.Backpacker)
	id, err := db.UpsertDestination(ctx, ella)
	if err != nil {
		t.Fatalf("UpsertDestination() error = %v", err)
	}
	if id != 1 || ella.ID != 1 {
		t.Errorf("first allocated id = %d (struct %d), want 1", id, ella.ID)
	}

	got, err := db.GetDestination(ctx, id)
	if err != nil {
		t.Fatalf("GetDestination() error = %v", err)
	}
	if got.Name != "Ella" || got.AvgCost != 3500 {
		t.Errorf("got %+v", got)
	}
	if got.Affinities != ella.Affinities {
		t.Errorf("Affinities = %v, want %v", got.Affinities.Names(), ella.Affinities.Names())
	}
	if got.Seasonal != ella.Seasonal {
		t.Errorf("Seasonal = %v, want %v", got.Seasonal, ella.Seasonal)
	}
	if !got.Regions.HillCountry || got.Regions.Coastal {
		t.Errorf("Regions = %+v", got.Regions)
	}
	if acts := got.Activities(); len(acts) != 3 || acts[2] != "Ravana Falls" {
		t.Errorf("Activities() = %q", acts)
	}

	// Update in place keeps the id
	got.AvgCost = 4000
	got.Affinities = models.NewTravelerTypeSet(models.LuxuryTraveler)
	if _, err := db.UpsertDestination(ctx, &got); err != nil {
		t.Fatalf("update error = %v", err)
	}
	updated, err := db.GetDestination(ctx, id)
	if err != nil {
		t.Fatalf("GetDestination() error = %v", err)
	}
	if updated.AvgCost != 4000 || !updated.Affinities.Has(models.LuxuryTraveler) || updated.Affinities.Len() != 1 {
		t.Errorf("update not applied: %+v", updated)
	}

	// Explicit id, then auto id continues after the max
	explicit := sampleDestination("Galle", models.CultureSeeker)
	explicit.ID = 40
	if _, err := db.UpsertDestination(ctx, explicit); err != nil {
		t.Fatalf("explicit id error = %v", err)
	}
	next, err := db.UpsertDestination(ctx, sampleDestination("Kandy"))
	if err != nil {
		t.Fatalf("auto id error = %v", err)
	}
	if next != 41 {
		t.Errorf("next id = %d, want 41", next)
	}

	n, err := db.CountDestinations(ctx)
	if err != nil || n != 3 {
		t.Errorf("CountDestinations() = %d, %v; want 3", n, err)
	}
}

func TestUpsertDestinationRequiresName(t *testing.T) {
	db := setupTestDB(t)
	if _, err := db.UpsertDestination(context.Background(), &models.Destination{Name: "  "}); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestGetDestinationNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.GetDestination(context.Background(), 999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestFindDestinations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	mirissa := sampleDestination("Mirissa", models.RelaxationSeeker, models.LuxuryTraveler)
	mirissa.Regions = models.Regions{Coastal: true}
	mirissa.AvgCost = 8000
	yala := sampleDestination("Yala", models.NatureLover, models.EcoConsciousTraveler)
	yala.Regions = models.Regions{DryZone: true}
	yala.AvgCost = 6000
	colombo := sampleDestination("Colombo", models.FoodExplorer)
	colombo.Regions = models.Regions{Coastal: true, Urban: true}
	colombo.AvgCost = 5000

	for _, d := range []*models.Destination{mirissa, yala, colombo} {
		if _, err := db.UpsertDestination(ctx, d); err != nil {
			t.Fatalf("UpsertDestination(%s) error = %v", d.Name, err)
		}
	}

	maxCost := 6000.0
	tests := []struct {
		name   string
		filter DestinationFilter
		want   []string
	}{
		{"all in id order", DestinationFilter{}, []string{"Mirissa", "Yala", "Colombo"}},
		{"any traveler type", DestinationFilter{TravelerTypes: []models.TravelerType{models.NatureLover, models.FoodExplorer}}, []string{"Yala", "Colombo"}},
		{"all regions", DestinationFilter{Regions: []string{RegionCoastal, RegionUrban}}, []string{"Colombo"}},
		{"max cost", DestinationFilter{MaxAvgCost: &maxCost}, []string{"Yala", "Colombo"}},
		{"name contains", DestinationFilter{NameContains: "RISS"}, []string{"Mirissa"}},
		{"no match", DestinationFilter{Regions: []string{RegionHillCountry}}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.FindDestinations(ctx, tt.filter)
			if err != nil {
				t.Fatalf("FindDestinations() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d destinations, want %d", len(got), len(tt.want))
			}
			for i, name := range tt.want {
				if got[i].Name != name {
					t.Errorf("got[%d] = %q, want %q", i, got[i].Name, name)
				}
			}
		})
	}

	if _, err := db.FindDestinations(ctx, DestinationFilter{Regions: []string{"desert; DROP TABLE destinations"}}); err == nil {
		t.Error("expected error for unknown region")
	}
	if _, err := db.FindDestinations(ctx, DestinationFilter{TravelerTypes: []models.TravelerType{42}}); err == nil {
		t.Error("expected error for invalid traveler type")
	}
}

func TestDestinationImage(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.DestinationImage(ctx, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	first := []byte{0xFF, 0xD8, 0xFF, 0x01}
	second := []byte{0xFF, 0xD8, 0xFF, 0x02}
	if _, err := db.AddDestinationImage(ctx, 1, first); err != nil {
		t.Fatalf("AddDestinationImage() error = %v", err)
	}
	if _, err := db.AddDestinationImage(ctx, 1, second); err != nil {
		t.Fatalf("AddDestinationImage() error = %v", err)
	}
	if _, err := db.AddDestinationImage(ctx, 1, nil); err == nil {
		t.Error("expected error for empty image")
	}

	img, err := db.DestinationImage(ctx, 1)
	if err != nil {
		t.Fatalf("DestinationImage() error = %v", err)
	}
	if string(img) != string(first) {
		t.Errorf("DestinationImage() = %x, want first image %x", img, first)
	}
}

func TestGuides(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	photo := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	nimal := &models.Guide{Name: "Nimal", Gender: "male", ContactNo: "0771234567"}
	id, err := db.UpsertGuide(ctx, nimal, photo, []int64{1, 2})
	if err != nil {
		t.Fatalf("UpsertGuide() error = %v", err)
	}
	kumari := &models.Guide{Name: "Kumari", Gender: "female", ContactNo: "0719876543"}
	if _, err := db.UpsertGuide(ctx, kumari, nil, []int64{2}); err != nil {
		t.Fatalf("UpsertGuide() error = %v", err)
	}

	guides, err := db.GuidesForDestination(ctx, 2)
	if err != nil {
		t.Fatalf("GuidesForDestination() error = %v", err)
	}
	if len(guides) != 2 || guides[0].Name != "Nimal" || guides[1].Name != "Kumari" {
		t.Errorf("guides for 2 = %+v", guides)
	}

	got, err := db.GuidePhoto(ctx, id)
	if err != nil || string(got) != string(photo) {
		t.Errorf("GuidePhoto() = %x, %v", got, err)
	}
	if _, err := db.GuidePhoto(ctx, kumari.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("photo-less guide error = %v, want ErrNotFound", err)
	}
	if _, err := db.GuidePhoto(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing guide error = %v, want ErrNotFound", err)
	}

	// Relinking with a nil photo keeps the stored photo
	nimal.ContactNo = "0770000000"
	if _, err := db.UpsertGuide(ctx, nimal, nil, []int64{3}); err != nil {
		t.Fatalf("UpsertGuide() update error = %v", err)
	}
	if got, _ := db.GuidePhoto(ctx, id); string(got) != string(photo) {
		t.Error("photo was dropped on update")
	}
	if guides, _ := db.GuidesForDestination(ctx, 1); len(guides) != 0 {
		t.Errorf("stale link to destination 1: %+v", guides)
	}
	if guides, _ := db.GuidesForDestination(ctx, 3); len(guides) != 1 || guides[0].ContactNo != "0770000000" {
		t.Errorf("guides for 3 = %+v", guides)
	}
}

func TestStartingLocations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	added, err := db.SeedStartingLocations(ctx)
	if err != nil {
		t.Fatalf("SeedStartingLocations() error = %v", err)
	}
	if added != len(SeedLocations) {
		t.Errorf("added = %d, want %d", added, len(SeedLocations))
	}
	again, err := db.SeedStartingLocations(ctx)
	if err != nil || again != 0 {
		t.Errorf("second seed = %d, %v; want 0, nil", again, err)
	}

	locs, err := db.ListStartingLocations(ctx)
	if err != nil {
		t.Fatalf("ListStartingLocations() error = %v", err)
	}
	if len(locs) != 20 {
		t.Fatalf("len = %d, want 20", len(locs))
	}
	if locs[0].Name != "Ampara" || locs[19].Name != "Vavniya" {
		t.Errorf("not sorted: first %q last %q", locs[0].Name, locs[19].Name)
	}

	kandy, err := db.StartingLocationByName(ctx, " kandy ")
	if err != nil {
		t.Fatalf("StartingLocationByName() error = %v", err)
	}
	if kandy.Name != "Kandy" || kandy.At.Latitude != 7.2906 || kandy.At.Longitude != 80.6337 {
		t.Errorf("kandy = %+v", kandy)
	}
	if _, err := db.StartingLocationByName(ctx, "Atlantis"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}

	if _, err := db.AddStartingLocation(ctx, "COLOMBO", models.Coordinates{}); !errors.Is(err, ErrConflict) {
		t.Errorf("duplicate error = %v, want ErrConflict", err)
	}
	sigiriya, err := db.AddStartingLocation(ctx, "Sigiriya", models.Coordinates{Latitude: 7.957, Longitude: 80.7603})
	if err != nil {
		t.Fatalf("AddStartingLocation() error = %v", err)
	}
	if sigiriya.ID == 0 {
		t.Error("expected allocated location id")
	}
	if _, err := db.AddStartingLocation(ctx, "", models.Coordinates{}); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestQuestionnaireRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.LatestQuestionnaire(ctx, "u-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}

	q := &models.Questionnaire{
		UserID:      "u-1",
		Interests:   models.Interests{Nature: true, Wildlife: true, EcoTourism: true},
		Month:       time.August,
		PartySize:   4,
		StartName:   "Colombo",
		Start:       models.Coordinates{Latitude: 6.9271, Longitude: 79.8612},
		DateOfBirth: time.Date(1995, 3, 14, 0, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC),
	}
	if err := db.UpsertQuestionnaire(ctx, q); err != nil {
		t.Fatalf("UpsertQuestionnaire() error = %v", err)
	}

	got, err := db.LatestQuestionnaire(ctx, "u-1")
	if err != nil {
		t.Fatalf("LatestQuestionnaire() error = %v", err)
	}
	if got.Interests != q.Interests || got.Month != time.August || got.PartySize != 4 || got.StartName != "Colombo" {
		t.Errorf("got %+v", got)
	}
	if got.Start != q.Start {
		t.Errorf("Start = %+v, want %+v", got.Start, q.Start)
	}
	if !got.DateOfBirth.Equal(q.DateOfBirth) {
		t.Errorf("DateOfBirth = %v, want %v", got.DateOfBirth, q.DateOfBirth)
	}
	if !got.UpdatedAt.Equal(q.UpdatedAt) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, q.UpdatedAt)
	}

	// A new submission replaces the old one
	q.Interests = models.Interests{Luxury: true}
	q.Month = time.December
	q.PartySize = 2
	if err := db.UpsertQuestionnaire(ctx, q); err != nil {
		t.Fatalf("second UpsertQuestionnaire() error = %v", err)
	}
	got, err = db.LatestQuestionnaire(ctx, "u-1")
	if err != nil {
		t.Fatalf("LatestQuestionnaire() error = %v", err)
	}
	if !got.Interests.Luxury || got.Interests.Nature || got.Month != time.December || got.PartySize != 2 {
		t.Errorf("replacement not applied: %+v", got)
	}

	if err := db.UpsertQuestionnaire(ctx, &models.Questionnaire{}); err == nil {
		t.Error("expected error for missing user id")
	}
}

func TestPopularDestinations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	day1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	day2 := day1.Add(24 * time.Hour)

	events := []*models.RecommendationServed{
		{
			EventID: "e1", UserID: "u-1", ServedAt: day1,
			Destinations: []models.ServedDestination{
				{DestinationID: 1, Name: "Ella", Rank: 1, MatchScore: 0.9},
				{DestinationID: 2, Name: "Yala", Rank: 2, MatchScore: 0.7},
			},
		},
		{
			EventID: "e2", UserID: "u-2", ServedAt: day2,
			Destinations: []models.ServedDestination{
				{DestinationID: 2, Name: "Yala", Rank: 1, MatchScore: 0.8},
				{DestinationID: 3, Name: "Galle", Rank: 2, MatchScore: 0.95},
			},
		},
	}
	for _, ev := range events {
		if err := db.RecordRecommendationServed(ctx, ev); err != nil {
			t.Fatalf("RecordRecommendationServed(%s) error = %v", ev.EventID, err)
		}
	}
	// Redelivery is ignored
	if err := db.RecordRecommendationServed(ctx, events[0]); err != nil {
		t.Fatalf("redelivery error = %v", err)
	}

	popular, err := db.PopularDestinations(ctx, 0, nil)
	if err != nil {
		t.Fatalf("PopularDestinations() error = %v", err)
	}
	if len(popular) != 3 {
		t.Fatalf("len = %d, want 3", len(popular))
	}
	if popular[0].DestinationID != 2 || popular[0].TimesServed != 2 {
		t.Errorf("top = %+v, want Yala served twice", popular[0])
	}
	if popular[0].AvgScore < 0.7499 || popular[0].AvgScore > 0.7501 {
		t.Errorf("Yala avg score = %v, want 0.75", popular[0].AvgScore)
	}
	// Galle and Ella tie on count; Galle has the higher score
	if popular[1].Name != "Galle" || popular[2].Name != "Ella" {
		t.Errorf("tie order = %q, %q", popular[1].Name, popular[2].Name)
	}

	limited, err := db.PopularDestinations(ctx, 1, nil)
	if err != nil || len(limited) != 1 {
		t.Errorf("limit 1 = %v, %v", limited, err)
	}

	since, err := db.PopularDestinations(ctx, 10, &day2)
	if err != nil {
		t.Fatalf("PopularDestinations(since) error = %v", err)
	}
	if len(since) != 2 {
		t.Errorf("since day2 = %+v, want 2 rows", since)
	}

	if err := db.RecordRecommendationServed(ctx, &models.RecommendationServed{}); err == nil {
		t.Error("expected error for missing event id")
	}
	if err := db.RecordRecommendationServed(ctx, &models.RecommendationServed{EventID: "empty"}); err != nil {
		t.Errorf("empty destination list should be a no-op, got %v", err)
	}
}
