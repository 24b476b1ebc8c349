// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
database_schema.go - Schema Definitions

Tables are created idempotently with CREATE TABLE IF NOT EXISTS at startup.
There is no versioned migration step.

Tables:
  - destinations: catalog with seasonal affinities, traveler-type flags and regions
  - destination_images: JPEG images per destination
  - guides / guide_destination: local guides and their destinations
  - location_coordinates: named starting locations
  - latest_questionnaires: one preference submission per user
  - recommendation_events: served recommendations, one row per destination
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the database tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// getTableCreationQueries returns the table creation SQL statements
func getTableCreationQueries() []string {
	return []string{
		// Destination and guide ids come from the catalog, so only images
		// and starting locations draw from sequences.
		`CREATE SEQUENCE IF NOT EXISTS image_id_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS location_id_seq START 1`,

		`CREATE TABLE IF NOT EXISTS destinations (
			destination_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			latitude DOUBLE NOT NULL,
			longitude DOUBLE NOT NULL,
			season_0 DOUBLE NOT NULL DEFAULT 0,
			season_1 DOUBLE NOT NULL DEFAULT 0,
			season_2 DOUBLE NOT NULL DEFAULT 0,
			season_3 DOUBLE NOT NULL DEFAULT 0,
			nature_lover BOOLEAN NOT NULL DEFAULT false,
			luxury_traveler BOOLEAN NOT NULL DEFAULT false,
			relaxation_seeker BOOLEAN NOT NULL DEFAULT false,
			culture_seeker BOOLEAN NOT NULL DEFAULT false,
			adventurer BOOLEAN NOT NULL DEFAULT false,
			backpacker BOOLEAN NOT NULL DEFAULT false,
			food_explorer BOOLEAN NOT NULL DEFAULT false,
			spiritual_traveler BOOLEAN NOT NULL DEFAULT false,
			eco_conscious_traveler BOOLEAN NOT NULL DEFAULT false,
			description TEXT NOT NULL DEFAULT '',
			things_to_do TEXT NOT NULL DEFAULT '',
			avg_cost DOUBLE NOT NULL DEFAULT 0,
			hill_country BOOLEAN NOT NULL DEFAULT false,
			coastal BOOLEAN NOT NULL DEFAULT false,
			dry_zone BOOLEAN NOT NULL DEFAULT false,
			urban BOOLEAN NOT NULL DEFAULT false
		)`,

		`CREATE TABLE IF NOT EXISTS destination_images (
			image_id INTEGER PRIMARY KEY DEFAULT nextval('image_id_seq'),
			destination_id INTEGER NOT NULL,
			image BLOB NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS guides (
			guide_id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			gender TEXT NOT NULL DEFAULT '',
			contact_no TEXT NOT NULL DEFAULT '',
			photo BLOB
		)`,

		`CREATE TABLE IF NOT EXISTS guide_destination (
			guide_id INTEGER NOT NULL,
			destination_id INTEGER NOT NULL,
			PRIMARY KEY (guide_id, destination_id)
		)`,

		`CREATE TABLE IF NOT EXISTS location_coordinates (
			location_id INTEGER PRIMARY KEY DEFAULT nextval('location_id_seq'),
			location_name TEXT NOT NULL UNIQUE,
			latitude DOUBLE NOT NULL,
			longitude DOUBLE NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS latest_questionnaires (
			user_id TEXT PRIMARY KEY,
			nature BOOLEAN NOT NULL DEFAULT false,
			adventure BOOLEAN NOT NULL DEFAULT false,
			luxury BOOLEAN NOT NULL DEFAULT false,
			culture BOOLEAN NOT NULL DEFAULT false,
			relaxation BOOLEAN NOT NULL DEFAULT false,
			wellness BOOLEAN NOT NULL DEFAULT false,
			local_life BOOLEAN NOT NULL DEFAULT false,
			wildlife BOOLEAN NOT NULL DEFAULT false,
			food BOOLEAN NOT NULL DEFAULT false,
			spirituality BOOLEAN NOT NULL DEFAULT false,
			eco_tourism BOOLEAN NOT NULL DEFAULT false,
			month INTEGER NOT NULL,
			no_of_people INTEGER NOT NULL,
			start_location TEXT NOT NULL DEFAULT '',
			start_latitude DOUBLE NOT NULL,
			start_longitude DOUBLE NOT NULL,
			date_of_birth DATE NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS recommendation_events (
			event_id TEXT NOT NULL,
			destination_id INTEGER NOT NULL,
			destination_name TEXT NOT NULL,
			user_id TEXT NOT NULL,
			served_rank INTEGER NOT NULL,
			match_score DOUBLE NOT NULL,
			estimated_budget BIGINT NOT NULL DEFAULT 0,
			served_at TIMESTAMP NOT NULL,
			PRIMARY KEY (event_id, destination_id)
		)`,
	}
}

// createIndexes creates secondary indexes
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getIndexQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", query, err)
		}
	}
	return nil
}

// getIndexQueries returns the index creation SQL statements
func getIndexQueries() []string {
	return []string{
		`CREATE INDEX IF NOT EXISTS idx_images_destination ON destination_images(destination_id)`,
		`CREATE INDEX IF NOT EXISTS idx_guide_destination_dest ON guide_destination(destination_id)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendation_events_served ON recommendation_events(served_at)`,
		`CREATE INDEX IF NOT EXISTS idx_recommendation_events_dest ON recommendation_events(destination_id)`,
	}
}
