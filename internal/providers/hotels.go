// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package providers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/tomtom215/tripwise/internal/cache"
	"github.com/tomtom215/tripwise/internal/models"
)

// errNoHotels marks a 404 from the listing API, which means "no matches".
var errNoHotels = errors.New("no hotels listed")

// HotelsClient queries a hotel listing API by city.
//
// The API answers GET {base_url}?city=NAME with a JSON array of hotels.
// When an API key is configured it is sent as a bearer token.
type HotelsClient struct {
	c *client
}

// Hotels returns the hotels listed for city. An unknown city yields an
// empty list.
func (h *HotelsClient) Hotels(ctx context.Context, city string) ([]models.Hotel, error) {
	city = strings.TrimSpace(city)
	return cached(ctx, h.c, cache.NamespaceHotels, cache.Key(strings.ToLower(city)), func(ctx context.Context) ([]models.Hotel, error) {
		body, err := h.c.get(ctx, "", map[string]string{"city": city}, h.classify)
		if errors.Is(err, errNoHotels) {
			return []models.Hotel{}, nil
		}
		if err != nil {
			return nil, err
		}
		var hotels []models.Hotel
		if err := decode(h.c.name, body, &hotels); err != nil {
			return nil, err
		}
		if hotels == nil {
			hotels = []models.Hotel{}
		}
		return hotels, nil
	})
}

func (h *HotelsClient) classify(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusNotFound {
		return errNoHotels
	}
	return h.c.statusError(resp)
}
