// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package providers

import (
	"context"
	"fmt"

	"github.com/tomtom215/tripwise/internal/cache"
	"github.com/tomtom215/tripwise/internal/models"
)

const (
	directionsPath = "/maps/api/directions/json"

	// FareCurrency is the only currency transit fares are reported in.
	FareCurrency = "LKR"
)

// TransitClient queries the Google Directions API in transit mode.
type TransitClient struct {
	c *client
}

type directionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Routes       []struct {
		Fare *struct {
			Currency string  `json:"currency"`
			Value    float64 `json:"value"`
			Text     string  `json:"text"`
		} `json:"fare"`
	} `json:"routes"`
}

// TransitFare returns the public-transit fare between two points.
//
// A nil fare with a nil error means a route exists but no LKR fare was
// quoted. ErrNoRoute is returned when there is no transit route at all.
func (t *TransitClient) TransitFare(ctx context.Context, origin, dest models.Coordinates) (*models.Fare, error) {
	return cached(ctx, t.c, cache.NamespaceTransit, cache.Key(origin, dest), func(ctx context.Context) (*models.Fare, error) {
		return t.fetch(ctx, origin, dest)
	})
}

func (t *TransitClient) fetch(ctx context.Context, origin, dest models.Coordinates) (*models.Fare, error) {
	body, err := t.c.get(ctx, directionsPath, map[string]string{
		"origin":      origin.String(),
		"destination": dest.String(),
		"mode":        "transit",
		"key":         t.c.cfg.APIKey,
	}, t.c.statusError)
	if err != nil {
		return nil, err
	}

	var resp directionsResponse
	if err := decode(t.c.name, body, &resp); err != nil {
		return nil, err
	}

	switch resp.Status {
	case "OK":
	case "ZERO_RESULTS", "NOT_FOUND":
		return nil, fmt.Errorf("%s: %w", t.c.name, ErrNoRoute)
	default:
		return nil, fmt.Errorf("%s: %s %s", t.c.name, resp.Status, resp.ErrorMessage)
	}
	if len(resp.Routes) == 0 {
		return nil, fmt.Errorf("%s: %w", t.c.name, ErrNoRoute)
	}

	fare := resp.Routes[0].Fare
	if fare == nil || fare.Currency != FareCurrency {
		return nil, nil
	}
	return &models.Fare{Currency: fare.Currency, Value: fare.Value, Text: fare.Text}, nil
}
