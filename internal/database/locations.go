// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/models"
)

// SeedLocations are the built-in Sri Lankan starting locations.
var SeedLocations = []models.StartingLocation{
	{Name: "Colombo", At: models.Coordinates{Latitude: 6.9271, Longitude: 79.8612}},
	{Name: "Kandy", At: models.Coordinates{Latitude: 7.2906, Longitude: 80.6337}},
	{Name: "Galle", At: models.Coordinates{Latitude: 6.0535, Longitude: 80.2210}},
	{Name: "Jaffna", At: models.Coordinates{Latitude: 9.6615, Longitude: 80.0255}},
	{Name: "Trincomalee", At: models.Coordinates{Latitude: 8.5874, Longitude: 81.2152}},
	{Name: "Anuradhapura", At: models.Coordinates{Latitude: 8.3114, Longitude: 80.4037}},
	{Name: "Pollonaruwa", At: models.Coordinates{Latitude: 7.9403, Longitude: 81.0188}},
	{Name: "Nuwara Eliya", At: models.Coordinates{Latitude: 6.9497, Longitude: 80.7891}},
	{Name: "Ella", At: models.Coordinates{Latitude: 6.8667, Longitude: 81.0667}},
	{Name: "Matara", At: models.Coordinates{Latitude: 5.9485, Longitude: 80.5353}},
	{Name: "Negombo", At: models.Coordinates{Latitude: 7.2084, Longitude: 79.8380}},
	{Name: "Batticaloa", At: models.Coordinates{Latitude: 7.7102, Longitude: 81.6924}},
	{Name: "Badulla", At: models.Coordinates{Latitude: 6.9934, Longitude: 81.0550}},
	{Name: "Kurunegala", At: models.Coordinates{Latitude: 7.4818, Longitude: 80.3609}},
	{Name: "Ratnapura", At: models.Coordinates{Latitude: 6.6828, Longitude: 80.4037}},
	{Name: "Hambantota", At: models.Coordinates{Latitude: 6.1241, Longitude: 81.1185}},
	{Name: "Puttalam", At: models.Coordinates{Latitude: 8.0362, Longitude: 79.8283}},
	{Name: "Vavniya", At: models.Coordinates{Latitude: 8.7514, Longitude: 80.4971}},
	{Name: "Kalutara", At: models.Coordinates{Latitude: 6.5854, Longitude: 79.9607}},
	{Name: "Ampara", At: models.Coordinates{Latitude: 7.2981, Longitude: 81.6821}},
}

// ListStartingLocations returns all starting locations sorted by name.
func (db *DB) ListStartingLocations(ctx context.Context) (out []models.StartingLocation, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "location_coordinates", time.Since(start), err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT location_id, location_name, latitude, longitude
		FROM location_coordinates
		ORDER BY location_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query starting locations: %w", err)
	}
	defer closeWithLog(rows, "rows")

	out = []models.StartingLocation{}
	for rows.Next() {
		var l models.StartingLocation
		if err = rows.Scan(&l.ID, &l.Name, &l.At.Latitude, &l.At.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan starting location: %w", err)
		}
		out = append(out, l)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating starting locations: %w", err)
	}
	return out, nil
}

// StartingLocationByName resolves a name case-insensitively, or returns ErrNotFound.
func (db *DB) StartingLocationByName(ctx context.Context, name string) (l models.StartingLocation, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "location_coordinates", time.Since(start), err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	err = db.conn.QueryRowContext(ctx, `
		SELECT location_id, location_name, latitude, longitude
		FROM location_coordinates
		WHERE lower(location_name) = lower(?)`, strings.TrimSpace(name)).
		Scan(&l.ID, &l.Name, &l.At.Latitude, &l.At.Longitude)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StartingLocation{}, fmt.Errorf("starting location %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return models.StartingLocation{}, fmt.Errorf("failed to get starting location: %w", err)
	}
	return l, nil
}

// AddStartingLocation inserts a new location. A name that already exists,
// compared case-insensitively, returns ErrConflict.
func (db *DB) AddStartingLocation(ctx context.Context, name string, at models.Coordinates) (l models.StartingLocation, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "location_coordinates", time.Since(start), err) }()

	name = strings.TrimSpace(name)
	if name == "" {
		return models.StartingLocation{}, fmt.Errorf("location name is required")
	}

	if _, lookupErr := db.StartingLocationByName(ctx, name); lookupErr == nil {
		return models.StartingLocation{}, fmt.Errorf("starting location %q: %w", name, ErrConflict)
	} else if !errors.Is(lookupErr, ErrNotFound) {
		return models.StartingLocation{}, lookupErr
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var id int64
	err = db.conn.QueryRowContext(ctx, `
		INSERT INTO location_coordinates (location_name, latitude, longitude)
		VALUES (?, ?, ?)
		RETURNING location_id`, name, at.Latitude, at.Longitude).Scan(&id)
	if isConstraintViolation(err) {
		return models.StartingLocation{}, fmt.Errorf("starting location %q: %w", name, ErrConflict)
	}
	if err != nil {
		return models.StartingLocation{}, fmt.Errorf("failed to add starting location: %w", err)
	}
	return models.StartingLocation{ID: id, Name: name, At: at}, nil
}

// SeedStartingLocations inserts any SeedLocations that are missing and
// returns how many were added. Existing names are skipped.
func (db *DB) SeedStartingLocations(ctx context.Context) (int, error) {
	added := 0
	for _, loc := range SeedLocations {
		_, err := db.AddStartingLocation(ctx, loc.Name, loc.At)
		if errors.Is(err, ErrConflict) {
			continue
		}
		if err != nil {
			return added, fmt.Errorf("failed to seed %q: %w", loc.Name, err)
		}
		added++
	}
	if added > 0 {
		logging.Info().Int("added", added).Msg("Seeded starting locations")
	}
	return added, nil
}
