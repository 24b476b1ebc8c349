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

	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/models"
)

// GuidesForDestination returns the guides linked to a destination, ordered by guide_id.
func (db *DB) GuidesForDestination(ctx context.Context, destinationID int64) (out []models.Guide, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "guides", time.Since(start), err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT g.guide_id, g.name, g.gender, g.contact_no
		FROM guides g
		JOIN guide_destination gd ON gd.guide_id = g.guide_id
		WHERE gd.destination_id = ?
		ORDER BY g.guide_id`, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query guides: %w", err)
	}
	defer closeWithLog(rows, "rows")

	out = []models.Guide{}
	for rows.Next() {
		var g models.Guide
		if err = rows.Scan(&g.ID, &g.Name, &g.Gender, &g.ContactNo); err != nil {
			return nil, fmt.Errorf("failed to scan guide: %w", err)
		}
		out = append(out, g)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating guides: %w", err)
	}
	return out, nil
}

// UpsertGuide inserts or replaces a guide and its destination links in one
// transaction. A nil photo keeps the stored photo. A zero ID allocates the
// next free id.
func (db *DB) UpsertGuide(ctx context.Context, g *models.Guide, photo []byte, destinationIDs []int64) (id int64, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("upsert", "guides", time.Since(start), err) }()

	if strings.TrimSpace(g.Name) == "" {
		return 0, fmt.Errorf("guide name is required")
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback() // error already being returned
		}
	}()

	idExpr := "?"
	args := []interface{}{g.ID}
	if g.ID == 0 {
		idExpr = "(SELECT COALESCE(MAX(guide_id), 0) + 1 FROM guides)"
		args = args[:0]
	}
	args = append(args, g.Name, g.Gender, g.ContactNo, photo)

	q := fmt.Sprintf(`INSERT INTO guides (guide_id, name, gender, contact_no, photo)
		VALUES (%s, ?, ?, ?, ?)
		ON CONFLICT (guide_id) DO UPDATE SET
			name = EXCLUDED.name,
			gender = EXCLUDED.gender,
			contact_no = EXCLUDED.contact_no,
			photo = COALESCE(EXCLUDED.photo, guides.photo)
		RETURNING guide_id`, idExpr)
	if err = tx.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to upsert guide %q: %w", g.Name, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM guide_destination WHERE guide_id = ?`, id); err != nil {
		return 0, fmt.Errorf("failed to clear guide links: %w", err)
	}
	for _, destID := range destinationIDs {
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO guide_destination (guide_id, destination_id) VALUES (?, ?) ON CONFLICT DO NOTHING`,
			id, destID); err != nil {
			return 0, fmt.Errorf("failed to link guide %d to destination %d: %w", id, destID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit guide: %w", err)
	}
	g.ID = id
	return id, nil
}

// GuidePhoto returns a guide's photo, or ErrNotFound when the guide or photo is missing.
func (db *DB) GuidePhoto(ctx context.Context, guideID int64) (photo []byte, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "guides", time.Since(start), err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	err = db.conn.QueryRowContext(ctx, `SELECT photo FROM guides WHERE guide_id = ?`, guideID).Scan(&photo)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("guide %d: %w", guideID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get guide photo: %w", err)
	}
	if len(photo) == 0 {
		return nil, fmt.Errorf("photo for guide %d: %w", guideID, ErrNotFound)
	}
	return photo, nil
}
