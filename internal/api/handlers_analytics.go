// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/tripwise/internal/database"
)

// PopularDestinations ranks destinations by how often they were recommended.
//
// @Summary Popular destinations
// @Description Aggregates persisted recommendation.served events.
// @Tags Analytics
// @Produce json
// @Param limit query int false "Rows to return (1-100)" default(10)
// @Param since query string false "Only count events at or after this RFC3339 time"
// @Success 200 {object} models.APIResponse{data=[]models.PopularDestination} "Ranking"
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /analytics/popular-destinations [get]
func (h *Handler) PopularDestinations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	req := PopularDestinationsRequest{
		Limit: getIntParam(r, "limit", database.DefaultPopularLimit),
		Since: r.URL.Query().Get("since"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	var since *time.Time
	if req.Since != "" {
		t, err := time.Parse(time.RFC3339, req.Since)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, ErrCodeValidation, "since must be RFC3339", nil)
			return
		}
		since = &t
	}

	rows, err := h.store.PopularDestinations(r.Context(), req.Limit, since)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, rows, start)
}
