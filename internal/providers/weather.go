// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/tomtom215/tripwise/internal/cache"
	"github.com/tomtom215/tripwise/internal/models"
)

const (
	currentWeatherPath = "/data/2.5/weather"
	forecastPath       = "/data/2.5/forecast"

	// forecastSlot is the one three-hour slot kept per forecast day.
	forecastSlot = "12:00:00"

	iconURLFormat = "http://openweathermap.org/img/wn/%s@2x.png"
)

// WeatherClient queries the OpenWeather API. Temperatures are requested in
// metric units.
type WeatherClient struct {
	c *client
}

type weatherCondition struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []weatherCondition `json:"weather"`
}

type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather    []weatherCondition `json:"weather"`
		Visibility int                `json:"visibility"`
	} `json:"list"`
}

// Current returns the current weather in city.
func (w *WeatherClient) Current(ctx context.Context, city string) (*models.CurrentWeather, error) {
	city = strings.TrimSpace(city)
	return cached(ctx, w.c, cache.NamespaceWeather, cache.Key("current", strings.ToLower(city)), func(ctx context.Context) (*models.CurrentWeather, error) {
		body, err := w.c.get(ctx, currentWeatherPath, w.params(city), w.classify)
		if err != nil {
			return nil, err
		}
		var resp currentResponse
		if err := decode(w.c.name, body, &resp); err != nil {
			return nil, err
		}
		out := &models.CurrentWeather{
			City:    resp.Name,
			Country: resp.Sys.Country,
			TempC:   resp.Main.Temp,
		}
		if len(resp.Weather) > 0 {
			out.Description = resp.Weather[0].Description
		}
		return out, nil
	})
}

// Forecast returns one midday forecast per day for the next five days.
func (w *WeatherClient) Forecast(ctx context.Context, city string) ([]models.DailyForecast, error) {
	city = strings.TrimSpace(city)
	return cached(ctx, w.c, cache.NamespaceWeather, cache.Key("forecast", strings.ToLower(city)), func(ctx context.Context) ([]models.DailyForecast, error) {
		body, err := w.c.get(ctx, forecastPath, w.params(city), w.classify)
		if err != nil {
			return nil, err
		}
		var resp forecastResponse
		if err := decode(w.c.name, body, &resp); err != nil {
			return nil, err
		}
		return middayForecasts(resp), nil
	})
}

func (w *WeatherClient) params(city string) map[string]string {
	return map[string]string{
		"q":     city,
		"appid": w.c.cfg.APIKey,
		"units": "metric",
	}
}

func (w *WeatherClient) classify(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusNotFound {
		return ErrCityNotFound
	}
	return w.c.statusError(resp)
}

// middayForecasts keeps the first 12:00 slot of each date.
func middayForecasts(resp forecastResponse) []models.DailyForecast {
	out := make([]models.DailyForecast, 0, 5)
	seen := make(map[string]bool)
	for _, entry := range resp.List {
		date, clock, ok := strings.Cut(entry.DtTxt, " ")
		if !ok || clock != forecastSlot || seen[date] {
			continue
		}
		seen[date] = true

		f := models.DailyForecast{
			Date:       date,
			TempC:      entry.Main.Temp,
			Humidity:   entry.Main.Humidity,
			Visibility: entry.Visibility,
		}
		if len(entry.Weather) > 0 {
			f.Description = entry.Weather[0].Description
			f.IconURL = fmt.Sprintf(iconURLFormat, entry.Weather[0].Icon)
		}
		out = append(out, f)
	}
	return out
}
