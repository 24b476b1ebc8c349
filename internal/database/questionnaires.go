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

const questionnaireColumns = `user_id, nature, adventure, luxury, culture, relaxation, wellness,
	local_life, wildlife, food, spirituality, eco_tourism, month, no_of_people,
	start_location, start_latitude, start_longitude, date_of_birth, updated_at`

// UpsertQuestionnaire stores q as the user's latest questionnaire, replacing any
// earlier one. UpdatedAt is set to now when zero.
func (db *DB) UpsertQuestionnaire(ctx context.Context, q *models.Questionnaire) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("upsert", "latest_questionnaires", time.Since(start), err) }()

	if strings.TrimSpace(q.UserID) == "" {
		return fmt.Errorf("user id is required")
	}
	if q.UpdatedAt.IsZero() {
		q.UpdatedAt = time.Now().UTC()
	}

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	i := q.Interests
	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO latest_questionnaires (`+questionnaireColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			nature = EXCLUDED.nature,
			adventure = EXCLUDED.adventure,
			luxury = EXCLUDED.luxury,
			culture = EXCLUDED.culture,
			relaxation = EXCLUDED.relaxation,
			wellness = EXCLUDED.wellness,
			local_life = EXCLUDED.local_life,
			wildlife = EXCLUDED.wildlife,
			food = EXCLUDED.food,
			spirituality = EXCLUDED.spirituality,
			eco_tourism = EXCLUDED.eco_tourism,
			month = EXCLUDED.month,
			no_of_people = EXCLUDED.no_of_people,
			start_location = EXCLUDED.start_location,
			start_latitude = EXCLUDED.start_latitude,
			start_longitude = EXCLUDED.start_longitude,
			date_of_birth = EXCLUDED.date_of_birth,
			updated_at = EXCLUDED.updated_at`,
		q.UserID, i.Nature, i.Adventure, i.Luxury, i.Culture, i.Relaxation, i.Wellness,
		i.LocalLife, i.Wildlife, i.Food, i.Spirituality, i.EcoTourism,
		int(q.Month), q.PartySize, q.StartName, q.Start.Latitude, q.Start.Longitude,
		q.DateOfBirth, q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save questionnaire for %s: %w", q.UserID, err)
	}
	return nil
}

// LatestQuestionnaire returns the user's latest questionnaire, or ErrNotFound.
func (db *DB) LatestQuestionnaire(ctx context.Context, userID string) (q *models.Questionnaire, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "latest_questionnaires", time.Since(start), err) }()

	ctx, cancel := ensureContext(ctx)
	defer cancel()

	var out models.Questionnaire
	var month int
	i := &out.Interests
	err = db.conn.QueryRowContext(ctx,
		`SELECT `+questionnaireColumns+` FROM latest_questionnaires WHERE user_id = ?`, userID).
		Scan(&out.UserID, &i.Nature, &i.Adventure, &i.Luxury, &i.Culture, &i.Relaxation, &i.Wellness,
			&i.LocalLife, &i.Wildlife, &i.Food, &i.Spirituality, &i.EcoTourism,
			&month, &out.PartySize, &out.StartName, &out.Start.Latitude, &out.Start.Longitude,
			&out.DateOfBirth, &out.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("questionnaire for %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get questionnaire for %s: %w", userID, err)
	}
	out.Month = time.Month(month)
	return &out, nil
}
