// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/tripwise/internal/database"
)

// DestinationDetail returns the enriched view of one destination for a user.
// Lookups that failed are null and named in data.unavailable and
// metadata.warnings.
//
// @Summary Destination detail
// @Description Guides, activities, distance from the user's start, forecast, hotels, transit fare and transport costs.
// @Tags Destinations
// @Produce json
// @Param id path int true "Destination ID"
// @Param user_id query string true "User whose questionnaire supplies origin and party size"
// @Success 200 {object} models.APIResponse{data=models.DestinationDetail} "Destination detail"
// @Failure 404 {object} models.APIResponse "Unknown destination or no questionnaire"
// @Router /destinations/{id} [get]
func (h *Handler) DestinationDetail(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userReq := UserRequest{UserID: r.URL.Query().Get("user_id")}
	if apiErr := validateRequest(&userReq); apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	id, apiErr := pathID(r, "id")
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	detail, err := h.recommender.DestinationDetail(r.Context(), userReq.UserID, id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}

	respondPartial(w, detail, start, detail.Unavailable)
}

// DestinationImage serves the stored JPEG of a destination.
//
// @Summary Destination image
// @Tags Destinations
// @Produce image/jpeg
// @Param id path int true "Destination ID"
// @Success 200 {file} binary "JPEG image"
// @Failure 404 {object} models.APIResponse "No image"
// @Router /destinations/{id}/image [get]
func (h *Handler) DestinationImage(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r, "id")
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	img, err := h.store.DestinationImage(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Image not found", nil)
		return
	}
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	respondImage(w, img)
}

// GuidePhoto serves the stored JPEG of a guide.
//
// @Summary Guide photo
// @Tags Destinations
// @Produce image/jpeg
// @Param id path int true "Guide ID"
// @Success 200 {file} binary "JPEG image"
// @Failure 404 {object} models.APIResponse "No photo"
// @Router /guides/{id}/photo [get]
func (h *Handler) GuidePhoto(w http.ResponseWriter, r *http.Request) {
	id, apiErr := pathID(r, "id")
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	photo, err := h.store.GuidePhoto(r.Context(), id)
	if errors.Is(err, database.ErrNotFound) {
		respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "Photo not found", nil)
		return
	}
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	respondImage(w, photo)
}
