// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"net/http"
	"time"
)

// Recommendations returns the ranked, budgeted destination list for a user.
//
// @Summary Get recommendations
// @Description Classifies the user's questionnaire, ranks destinations by match score and attaches distance and budget. Distances fall back to great-circle estimates when the provider fails; metadata.partial is then set.
// @Tags Recommendations
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} models.APIResponse{data=models.RecommendationResponse} "Recommendations"
// @Failure 404 {object} models.APIResponse "No questionnaire"
// @Failure 500 {object} models.APIResponse "Model or database error"
// @Router /users/{userID}/recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, apiErr := pathUserID(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	resp, err := h.recommender.Recommend(r.Context(), userID)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	respondPartial(w, resp, start, resp.Warnings)
}

// TransportEstimate answers an ad-hoc transport question.
//
// @Summary Transport estimate
// @Description Mode suitability probabilities, per-mode costs and the blended per-person budget.
// @Tags Transport
// @Produce json
// @Param distance_km query number true "One-way distance in km"
// @Param party_size query int true "Travelers"
// @Param avg_cost query number false "Average on-site cost per person (LKR)"
// @Success 200 {object} models.APIResponse{data=models.TransportEstimate} "Estimate"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /transport/estimate [get]
func (h *Handler) TransportEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	distance, err := getFloatParam(r, "distance_km")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	var avgCost float64
	if r.URL.Query().Get("avg_cost") != "" {
		if avgCost, err = getFloatParam(r, "avg_cost"); err != nil {
			respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
			return
		}
	}

	req := TransportEstimateRequest{
		DistanceKM: distance,
		PartySize:  getIntParam(r, "party_size", 0),
		AvgCost:    avgCost,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	est, err := h.recommender.TransportEstimate(req.DistanceKM, req.PartySize, req.AvgCost)
	if err != nil {
		writeDomainError(w, r, err, http.StatusInternalServerError, ErrCodeInternal)
		return
	}

	respondSuccess(w, http.StatusOK, est, start)
}
