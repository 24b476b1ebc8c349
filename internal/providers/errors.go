// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrCityNotFound means the weather provider does not know the city.
	ErrCityNotFound = errors.New("city not found")

	// ErrNoRoute means no transit route exists between the two points.
	ErrNoRoute = errors.New("no route found")

	// ErrDisabled means the provider is switched off or has no credentials.
	ErrDisabled = errors.New("provider disabled")
)

// StatusError is a non-2xx answer from an upstream API.
type StatusError struct {
	Provider   string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("%s: upstream returned %d (%s)", e.Provider, e.StatusCode, e.Status)
	}
	return fmt.Sprintf("%s: upstream returned %d", e.Provider, e.StatusCode)
}
