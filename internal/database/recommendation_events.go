// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/tripwise/internal/database/query"
	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/models"
)

// Popular destination result bounds.
const (
	DefaultPopularLimit = 10
	MaxPopularLimit     = 100
)

// RecordRecommendationServed persists one row per served destination.
// Re-delivered events are ignored, so consumers may retry freely.
func (db *DB) RecordRecommendationServed(ctx context.Context, ev *models.RecommendationServed) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "recommendation_events", time.Since(start), err) }()

	if ev.EventID == "" {
		return fmt.Errorf("event id is required")
	}
	if len(ev.Destinations) == 0 {
		return nil
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // error already being returned
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO recommendation_events
			(event_id, destination_id, destination_name, user_id, served_rank, match_score, estimated_budget, served_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer closeWithLog(stmt, "prepared statement")

	for _, d := range ev.Destinations {
		if _, err = stmt.ExecContext(ctx, ev.EventID, d.DestinationID, d.Name, ev.UserID,
			d.Rank, d.MatchScore, d.EstimatedBudget, ev.ServedAt); err != nil {
			if isTransactionConflict(err) {
				return fmt.Errorf("record event %s: %w: %w", ev.EventID, ErrTxConflict, err)
			}
			return fmt.Errorf("failed to record served destination %d: %w", d.DestinationID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit served recommendation: %w", err)
	}
	return nil
}

// PopularDestinations aggregates served recommendations, most served first.
// Ties are broken by average score, then destination id. A non-positive limit
// uses DefaultPopularLimit; limits above MaxPopularLimit are clamped.
func (db *DB) PopularDestinations(ctx context.Context, limit int, since *time.Time) (out []models.PopularDestination, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "recommendation_events", time.Since(start), err) }()

	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	if limit > MaxPopularLimit {
		limit = MaxPopularLimit
	}

	where, args := query.NewWhereBuilder().AddTimeRange("served_at", since, nil).BuildWithPrefix()
	args = append(args, limit)

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, fmt.Sprintf(`
		SELECT destination_id, MAX(destination_name), COUNT(*), AVG(match_score)
		FROM recommendation_events
		%s
		GROUP BY destination_id
		ORDER BY COUNT(*) DESC, AVG(match_score) DESC, destination_id
		LIMIT ?`, where), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query popular destinations: %w", err)
	}
	defer closeWithLog(rows, "rows")

	out = []models.PopularDestination{}
	for rows.Next() {
		var p models.PopularDestination
		if err = rows.Scan(&p.DestinationID, &p.Name, &p.TimesServed, &p.AvgScore); err != nil {
			return nil, fmt.Errorf("failed to scan popular destination: %w", err)
		}
		out = append(out, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating popular destinations: %w", err)
	}
	return out, nil
}
