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

	"github.com/tomtom215/tripwise/internal/database/query"
	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/models"
)

// Region column names.
const (
	RegionHillCountry = "hill_country"
	RegionCoastal     = "coastal"
	RegionDryZone     = "dry_zone"
	RegionUrban       = "urban"
)

var regionColumns = map[string]bool{
	RegionHillCountry: true,
	RegionCoastal:     true,
	RegionDryZone:     true,
	RegionUrban:       true,
}

// destinationColumns is the fixed SELECT list read by scanDestination.
var destinationColumns = buildDestinationColumns()

func buildDestinationColumns() string {
	cols := []string{"destination_id", "name", "latitude", "longitude",
		"season_0", "season_1", "season_2", "season_3"}
	for _, t := range models.AllTravelerTypes() {
		cols = append(cols, t.Slug())
	}
	cols = append(cols, "description", "things_to_do", "avg_cost",
		RegionHillCountry, RegionCoastal, RegionDryZone, RegionUrban)
	return strings.Join(cols, ", ")
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanDestination reads one row in destinationColumns order.
// The nine traveler-type columns map onto the shared enum by position.
func scanDestination(row rowScanner) (models.Destination, error) {
	var d models.Destination
	var flags [models.TravelerTypeCount]bool

	dest := []interface{}{
		&d.ID, &d.Name, &d.Location.Latitude, &d.Location.Longitude,
		&d.Seasonal[0], &d.Seasonal[1], &d.Seasonal[2], &d.Seasonal[3],
	}
	for i := range flags {
		dest = append(dest, &flags[i])
	}
	dest = append(dest, &d.Description, &d.ThingsToDo, &d.AvgCost,
		&d.Regions.HillCountry, &d.Regions.Coastal, &d.Regions.DryZone, &d.Regions.Urban)

	if err := row.Scan(dest...); err != nil {
		return models.Destination{}, err
	}
	for i, set := range flags {
		if set {
			d.Affinities = d.Affinities.Add(models.TravelerType(i))
		}
	}
	return d, nil
}

// DestinationFilter narrows a catalog listing. The zero value matches everything.
type DestinationFilter struct {
	// TravelerTypes matches destinations with at least one of these affinities.
	TravelerTypes []models.TravelerType
	// Regions matches destinations flagged with every listed region.
	Regions      []string
	MaxAvgCost   *float64
	NameContains string
}

// ListDestinations returns the full catalog ordered by destination_id.
// The order is stable so scoring ties resolve the same way on every call.
func (db *DB) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	return db.FindDestinations(ctx, DestinationFilter{})
}

// FindDestinations returns the destinations matching filter, ordered by destination_id.
func (db *DB) FindDestinations(ctx context.Context, filter DestinationFilter) (out []models.Destination, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "destinations", time.Since(start), err) }()

	wb := query.NewWhereBuilder()
	slugs := make([]string, 0, len(filter.TravelerTypes))
	for _, t := range filter.TravelerTypes {
		if !t.Valid() {
			return nil, fmt.Errorf("invalid traveler type %d", uint8(t))
		}
		slugs = append(slugs, t.Slug())
	}
	for _, r := range filter.Regions {
		if !regionColumns[r] {
			return nil, fmt.Errorf("unknown region %q", r)
		}
	}
	wb.AddAnyFlag(slugs).
		AddAllFlags(filter.Regions).
		AddMaxValue("avg_cost", filter.MaxAvgCost).
		AddNameContains("name", filter.NameContains)
	where, args := wb.BuildWithPrefix()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	q := fmt.Sprintf("SELECT %s FROM destinations %s ORDER BY destination_id", destinationColumns, where)
	rows, err := db.conn.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query destinations: %w", err)
	}
	defer closeWithLog(rows, "rows")

	out = []models.Destination{}
	for rows.Next() {
		d, scanErr := scanDestination(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", scanErr)
		}
		out = append(out, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating destinations: %w", err)
	}
	return out, nil
}

// GetDestination returns one destination or ErrNotFound.
func (db *DB) GetDestination(ctx context.Context, id int64) (d models.Destination, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "destinations", time.Since(start), err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	q := fmt.Sprintf("SELECT %s FROM destinations WHERE destination_id = ?", destinationColumns)
	d, err = scanDestination(db.conn.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Destination{}, fmt.Errorf("destination %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return models.Destination{}, fmt.Errorf("failed to get destination %d: %w", id, err)
	}
	return d, nil
}

// UpsertDestination inserts or replaces a destination and returns its id.
// A zero ID allocates the next free id.
func (db *DB) UpsertDestination(ctx context.Context, d *models.Destination) (id int64, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("upsert", "destinations", time.Since(start), err) }()

	if strings.TrimSpace(d.Name) == "" {
		return 0, fmt.Errorf("destination name is required")
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	cols := strings.Split(destinationColumns, ", ")
	placeholders := make([]string, len(cols))
	updates := make([]string, 0, len(cols)-1)
	for i, c := range cols {
		placeholders[i] = "?"
		if i > 0 {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
		}
	}
	if d.ID == 0 {
		placeholders[0] = "(SELECT COALESCE(MAX(destination_id), 0) + 1 FROM destinations)"
	}

	args := make([]interface{}, 0, len(cols))
	if d.ID != 0 {
		args = append(args, d.ID)
	}
	args = append(args, d.Name, d.Location.Latitude, d.Location.Longitude,
		d.Seasonal[0], d.Seasonal[1], d.Seasonal[2], d.Seasonal[3])
	for _, t := range models.AllTravelerTypes() {
		args = append(args, d.Affinities.Has(t))
	}
	args = append(args, d.Description, d.ThingsToDo, d.AvgCost,
		d.Regions.HillCountry, d.Regions.Coastal, d.Regions.DryZone, d.Regions.Urban)

	q := fmt.Sprintf(`INSERT INTO destinations (%s) VALUES (%s)
		ON CONFLICT (destination_id) DO UPDATE SET %s
		RETURNING destination_id`,
		destinationColumns, strings.Join(placeholders, ", "), strings.Join(updates, ", "))

	if err = db.conn.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert destination %q: %w", d.Name, err)
	}
	d.ID = id
	return id, nil
}

// CountDestinations returns the catalog size.
func (db *DB) CountDestinations(ctx context.Context) (int, error) {
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var n int
	if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM destinations").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count destinations: %w", err)
	}
	return n, nil
}

// DestinationImage returns the first stored image of a destination, or ErrNotFound.
func (db *DB) DestinationImage(ctx context.Context, destinationID int64) (img []byte, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "destination_images", time.Since(start), err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	err = db.conn.QueryRowContext(ctx,
		`SELECT image FROM destination_images WHERE destination_id = ? ORDER BY image_id LIMIT 1`,
		destinationID).Scan(&img)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("image for destination %d: %w", destinationID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get destination image: %w", err)
	}
	return img, nil
}

// AddDestinationImage stores an image for a destination and returns the image id.
func (db *DB) AddDestinationImage(ctx context.Context, destinationID int64, img []byte) (int64, error) {
	if len(img) == 0 {
		return 0, fmt.Errorf("image is empty")
	}
	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var id int64
	err := db.conn.QueryRowContext(ctx,
		`INSERT INTO destination_images (destination_id, image) VALUES (?, ?) RETURNING image_id`,
		destinationID, img).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add image for destination %d: %w", destinationID, err)
	}
	return id, nil
}
