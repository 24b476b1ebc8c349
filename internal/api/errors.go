// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/tripwise/internal/breaker"
	"github.com/tomtom215/tripwise/internal/classifier"
	"github.com/tomtom215/tripwise/internal/database"
	"github.com/tomtom215/tripwise/internal/providers"
	"github.com/tomtom215/tripwise/internal/recommend"
	"github.com/tomtom215/tripwise/internal/recommend/budget"
)

// errorMapping is one row of the sentinel to HTTP table.
type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// domainErrors is checked in order with errors.Is; the first match wins.
var domainErrors = []errorMapping{
	{recommend.ErrNoQuestionnaire, http.StatusNotFound, ErrCodeNoQuestionnaire, "No questionnaire found for the current user"},
	{recommend.ErrDestinationNotFound, http.StatusNotFound, ErrCodeNotFound, "Destination not found"},
	{providers.ErrCityNotFound, http.StatusNotFound, ErrCodeNotFound, "City not found"},
	{database.ErrNotFound, http.StatusNotFound, ErrCodeNotFound, "Resource not found"},
	{database.ErrConflict, http.StatusConflict, ErrCodeConflict, "Resource already exists"},
	{budget.ErrInvalidDistance, http.StatusBadRequest, ErrCodeValidation, "distance_km must be a finite value >= 0"},
	{budget.ErrInvalidPartySize, http.StatusBadRequest, ErrCodeValidation, "party_size must be >= 1"},
	{budget.ErrNoSuitableMode, http.StatusUnprocessableEntity, ErrCodeValidation, "No transport mode suits this trip"},
	{classifier.ErrSchemaMismatch, http.StatusInternalServerError, ErrCodeModel, "The traveler model rejected its input"},
	{recommend.ErrClassifier, http.StatusInternalServerError, ErrCodeModel, "The traveler model rejected its input"},
	{providers.ErrDisabled, http.StatusServiceUnavailable, ErrCodeUnavailable, "This provider is not configured"},
	{breaker.ErrOpen, http.StatusBadGateway, ErrCodeUpstream, "Upstream service temporarily unavailable"},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, ErrCodeUpstream, "Upstream service timed out"},
}

// writeDomainError maps err to a status and error code and writes the envelope.
// Anything unrecognized becomes fallbackStatus with fallbackCode.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, fallbackStatus int, fallbackCode string) {
	for _, m := range domainErrors {
		if errors.Is(err, m.target) {
			respondError(w, r, m.status, m.code, m.message, err)
			return
		}
	}

	var statusErr *providers.StatusError
	if errors.As(err, &statusErr) {
		respondError(w, r, http.StatusBadGateway, ErrCodeUpstream, "Upstream service returned an error", err)
		return
	}

	message := "A database error occurred"
	switch fallbackCode {
	case ErrCodeUpstream:
		message = "Upstream service unavailable"
	case ErrCodeInternal:
		message = "Internal server error"
	}
	respondError(w, r, fallbackStatus, fallbackCode, message, err)
}

// writeStoreError is writeDomainError for catalog and store failures.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	writeDomainError(w, r, err, http.StatusInternalServerError, ErrCodeDatabase)
}

// writeUpstreamError is writeDomainError for provider failures.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	writeDomainError(w, r, err, http.StatusBadGateway, ErrCodeUpstream)
}
