// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/tripwise/internal/database"
	"github.com/tomtom215/tripwise/internal/models"
)

// ListStartingLocations returns the names of all starting locations, sorted.
//
// @Summary List starting locations
// @Tags Locations
// @Produce json
// @Success 200 {object} models.APIResponse{data=LocationList} "Sorted location names"
// @Router /starting-locations [get]
func (h *Handler) ListStartingLocations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	locs, err := h.store.ListStartingLocations(r.Context())
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	names := make([]string, len(locs))
	for i, l := range locs {
		names[i] = l.Name
	}
	respondSuccess(w, http.StatusOK, LocationList{Locations: names}, start)
}

// AddStartingLocation registers a new named trip origin.
//
// @Summary Add starting location
// @Tags Locations
// @Accept json
// @Produce json
// @Param body body StartingLocationRequest true "Location"
// @Success 201 {object} models.APIResponse{data=models.StartingLocation} "Created"
// @Failure 400 {object} models.APIResponse "Invalid body"
// @Failure 409 {object} models.APIResponse "Name already exists"
// @Router /starting-locations [post]
func (h *Handler) AddStartingLocation(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req StartingLocationRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeValidation, err.Error(), nil)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	loc, err := h.store.AddStartingLocation(r.Context(), req.Name, models.Coordinates{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if errors.Is(err, database.ErrConflict) {
		respondError(w, r, http.StatusConflict, ErrCodeConflict, "Starting location already exists", nil)
		return
	}
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusCreated, loc, start)
}
