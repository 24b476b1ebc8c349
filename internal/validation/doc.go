// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared; it caches struct
// metadata and is safe for concurrent use. Field names in errors are the json
// names, so messages read "no_of_people must be at least 1".
//
// # Custom Tags
//
//   - month_name: a full English month name, case-insensitive ("March")
//   - season: an integer bucket 0-3 or a label such as "Apr-Jun"
//
// # Usage
//
//	type QuestionnaireRequest struct {
//	    TravelMonth string `json:"travel_month" validate:"required,month_name"`
//	    PartySize   int    `json:"no_of_people" validate:"min=1,max=50"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// ToAPIError always produces the VALIDATION_ERROR code. A single failure puts
// field, tag and value in Details; several failures are listed under "fields".
package validation
