// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package providers

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/tripwise/internal/cache"
	"github.com/tomtom215/tripwise/internal/models"
)

const (
	distanceMatrixPath = "/maps/api/distancematrix/json"

	// maxMatrixDestinations is the Distance Matrix per-request element limit
	// for a single origin.
	maxMatrixDestinations = 25
)

// DistanceClient queries the Google Distance Matrix API.
type DistanceClient struct {
	c *client
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []matrixElement `json:"elements"`
	} `json:"rows"`
}

type matrixElement struct {
	Status   string    `json:"status"`
	Distance textValue `json:"distance"`
	Duration textValue `json:"duration"`
}

type textValue struct {
	Text  string  `json:"text"`
	Value float64 `json:"value"`
}

// Distances returns one leg per destination, in order. A destination the
// provider could not route is a nil entry; the batch only fails as a whole
// when the request itself fails.
func (d *DistanceClient) Distances(ctx context.Context, origin models.Coordinates, dests []models.Coordinates) ([]*models.TripLeg, error) {
	legs := make([]*models.TripLeg, 0, len(dests))
	for start := 0; start < len(dests); start += maxMatrixDestinations {
		end := start + maxMatrixDestinations
		if end > len(dests) {
			end = len(dests)
		}
		chunk := dests[start:end]

		key := cache.Key(origin, chunk)
		part, err := cached(ctx, d.c, cache.NamespaceDistance, key, func(ctx context.Context) ([]*models.TripLeg, error) {
			return d.fetch(ctx, origin, chunk)
		})
		if err != nil {
			return nil, err
		}
		legs = append(legs, part...)
	}
	return legs, nil
}

// Distance returns the driving leg between two points. ErrNoRoute is returned
// when the provider has no route.
func (d *DistanceClient) Distance(ctx context.Context, origin, dest models.Coordinates) (models.TripLeg, error) {
	legs, err := d.Distances(ctx, origin, []models.Coordinates{dest})
	if err != nil {
		return models.TripLeg{}, err
	}
	if len(legs) != 1 || legs[0] == nil {
		return models.TripLeg{}, fmt.Errorf("%s: %w", d.c.name, ErrNoRoute)
	}
	return *legs[0], nil
}

func (d *DistanceClient) fetch(ctx context.Context, origin models.Coordinates, dests []models.Coordinates) ([]*models.TripLeg, error) {
	targets := make([]string, len(dests))
	for i, dest := range dests {
		targets[i] = dest.String()
	}

	body, err := d.c.get(ctx, distanceMatrixPath, map[string]string{
		"origins":      origin.String(),
		"destinations": strings.Join(targets, "|"),
		"mode":         "driving",
		"key":          d.c.cfg.APIKey,
	}, d.c.statusError)
	if err != nil {
		return nil, err
	}

	var resp matrixResponse
	if err := decode(d.c.name, body, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("%s: %s %s", d.c.name, resp.Status, resp.ErrorMessage)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) != len(dests) {
		return nil, fmt.Errorf("%s: expected %d elements in response", d.c.name, len(dests))
	}

	legs := make([]*models.TripLeg, len(dests))
	for i, el := range resp.Rows[0].Elements {
		if el.Status != "OK" {
			continue
		}
		km, err := ParseDistanceText(el.Distance.Text)
		if err != nil {
			km = el.Distance.Value / 1000
		}
		if !ValidKM(km) {
			// Left nil: the caller estimates this leg.
			continue
		}
		legs[i] = &models.TripLeg{
			DistanceKM:   km,
			DistanceText: el.Distance.Text,
			Duration:     el.Duration.Text,
			Source:       models.DistanceSourceProvider,
		}
	}
	return legs, nil
}

// ValidKM reports whether km is a usable road distance: finite and not
// negative.
func ValidKM(km float64) bool {
	return km >= 0 && !math.IsInf(km, 1)
}

// ParseDistanceText converts a display distance such as "1,234 km",
// "12.5 km", or "850 m" to kilometres. Negative and non-finite numbers
// are rejected.
func ParseDistanceText(text string) (float64, error) {
	fields := strings.Fields(strings.ReplaceAll(text, ",", ""))
	if len(fields) != 2 {
		return 0, fmt.Errorf("unrecognized distance %q", text)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("unrecognized distance %q: %w", text, err)
	}
	if !ValidKM(v) {
		return 0, fmt.Errorf("distance out of range %q", text)
	}
	switch strings.ToLower(fields[1]) {
	case "km":
		return v, nil
	case "m":
		return v / 1000, nil
	case "mi":
		return v * 1.609344, nil
	case "ft":
		return v * 0.0003048, nil
	default:
		return 0, fmt.Errorf("unrecognized distance unit in %q", text)
	}
}

