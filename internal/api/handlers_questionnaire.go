// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/tripwise/internal/database"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/models"
)

// PutQuestionnaire stores the user's latest travel preferences.
//
// @Summary Submit questionnaire
// @Description Upserts the user's questionnaire. start_location must name a known starting location.
// @Tags Questionnaire
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param body body QuestionnaireRequest true "Questionnaire"
// @Success 200 {object} models.APIResponse{data=QuestionnaireView} "Stored"
// @Failure 400 {object} models.APIResponse "Invalid body"
// @Failure 404 {object} models.APIResponse "Unknown start location"
// @Router /users/{userID}/questionnaire [put]
func (h *Handler) PutQuestionnaire(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := pathUserID(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	var req QuestionnaireRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	month, err := models.MonthFromName(req.TravelMonth)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	dob, err := time.Parse(time.DateOnly, req.DateOfBirth)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "date_of_birth must be YYYY-MM-DD", nil)
		return
	}
	now := h.clock()
	if dob.After(now) {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "date_of_birth must not be in the future", nil)
		return
	}

	loc, err := h.store.StartingLocationByName(r.Context(), strings.TrimSpace(req.StartLocation))
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Start location not found", nil)
		return
	}
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	q := &models.Questionnaire{
		UserID:      userID,
		Interests:   req.Interests,
		Month:       month,
		PartySize:   req.PartySize,
		Start:       loc.At,
		StartName:   loc.Name,
		DateOfBirth: dob,
		UpdatedAt:   now.UTC(),
	}
	if err := h.store.UpsertQuestionnaire(r.Context(), q); err != nil {
		writeStoreError(w, r, err)
		return
	}

	h.publishSubmitted(r.Context(), q)

	respondSuccess(w, http.StatusOK, questionnaireView(q), start)
}

// GetQuestionnaire returns the user's latest questionnaire.
//
// @Summary Get questionnaire
// @Tags Questionnaire
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.APIResponse{data=QuestionnaireView} "Latest questionnaire"
// @Failure 404 {object} models.APIResponse "No questionnaire"
// @Router /users/{userID}/questionnaire [get]
func (h *Handler) GetQuestionnaire(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := pathUserID(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	q, err := h.store.LatestQuestionnaire(r.Context(), userID)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, ErrCodeNoQuestionnaire, "No questionnaire found for the current user", nil)
		return
	}
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, questionnaireView(q), start)
}

func questionnaireView(q *models.Questionnaire) QuestionnaireView {
	v := QuestionnaireView{Questionnaire: *q, TravelMonth: q.Month.String()}
	if s, err := models.SeasonForMonth(q.Month); err == nil {
		v.Season = s.String()
	}
	return v
}

// publishSubmitted announces q. Failures are logged; the questionnaire is
// already stored.
func (h *Handler) publishSubmitted(ctx context.Context, q *models.Questionnaire) {
	if h.events == nil {
		return
	}
	ev := &models.QuestionnaireSubmitted{
		EventID:     uuid.New().String(),
		UserID:      q.UserID,
		Month:       int(q.Month),
		PartySize:   q.PartySize,
		StartName:   q.StartName,
		SubmittedAt: q.UpdatedAt,
	}
	if err := h.events.PublishQuestionnaireSubmitted(context.WithoutCancel(ctx), ev); err != nil {
		logging.CtxWarn(ctx).Err(err).
			Str("user_id", logging.RedactUserID(q.UserID)).
			Msg("Failed to publish questionnaire event")
	}
}
