// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/models"
)

// Upserter writes destinations. Satisfied by *database.DB.
type Upserter interface {
	UpsertDestination(ctx context.Context, d *models.Destination) (int64, error)
}

// RowError describes a row that was not imported.
type RowError struct {
	Row  int
	Name string
	Err  error
}

func (e RowError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d (%s): %v", e.Row, e.Name, e.Err)
}

// ImportStats holds statistics about an import run.
type ImportStats struct {
	// Total is the number of input rows.
	Total int

	// Imported is the number of destinations upserted (or that would have
	// been, on a dry run).
	Imported int

	// Skipped is the number of rows rejected by parsing or validation.
	Skipped int

	// Failed is the number of rows the store refused.
	Failed int

	// Errors lists every skipped or failed row.
	Errors []RowError

	StartTime time.Time
	EndTime   time.Time
	DryRun    bool
}

// Duration returns how long the import took.
func (s *ImportStats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Importer upserts catalog rows into the destination store.
type Importer struct {
	store  Upserter
	dryRun bool
}

// NewImporter returns an importer writing to store. With dryRun set rows
// are validated but nothing is written.
func NewImporter(store Upserter, dryRun bool) *Importer {
	return &Importer{store: store, dryRun: dryRun}
}

// Import validates and upserts rows in order. Bad rows are recorded in the
// stats and do not stop the run; a canceled context does.
func (i *Importer) Import(ctx context.Context, rows []Row) (*ImportStats, error) {
	stats := &ImportStats{
		Total:     len(rows),
		StartTime: time.Now(),
		DryRun:    i.dryRun,
	}
	defer func() { stats.EndTime = time.Now() }()

	logger := logging.WithComponent("catalog-import")

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rec := row.Record
		if row.Err == nil {
			row.Err = rec.Validate()
		}
		if row.Err != nil {
			stats.Skipped++
			stats.Errors = append(stats.Errors, RowError{Row: row.Number, Name: rec.Name, Err: row.Err})
			logger.Warn().Int("row", row.Number).Err(row.Err).Msg("Catalog row skipped")
			continue
		}

		if i.dryRun {
			stats.Imported++
			continue
		}

		d := rec.Destination()
		if _, err := i.store.UpsertDestination(ctx, &d); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return stats, err
			}
			stats.Failed++
			stats.Errors = append(stats.Errors, RowError{Row: row.Number, Name: rec.Name, Err: err})
			logger.Error().Int("row", row.Number).Str("name", rec.Name).Err(err).Msg("Catalog row failed")
			continue
		}
		stats.Imported++
	}

	logger.Info().
		Int("total", stats.Total).
		Int("imported", stats.Imported).
		Int("skipped", stats.Skipped).
		Int("failed", stats.Failed).
		Bool("dry_run", stats.DryRun).
		Msg("Catalog import finished")
	return stats, nil
}
