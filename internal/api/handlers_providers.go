// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/tripwise/internal/models"
)

// cityParam reads and validates ?city=.
func cityParam(r *http.Request) (string, *models.APIError) {
	req := CityRequest{City: strings.TrimSpace(r.URL.Query().Get("city"))}
	if apiErr := validateRequest(&req); apiErr != nil {
		return "", apiErr
	}
	return req.City, nil
}

// CurrentWeather returns the current weather in a city.
//
// @Summary Current weather
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} models.APIResponse{data=models.CurrentWeather} "Current weather"
// @Failure 404 {object} models.APIResponse "City not found"
// @Failure 502 {object} models.APIResponse "Weather provider failed"
// @Router /weather [get]
func (h *Handler) CurrentWeather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	city, apiErr := cityParam(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	if h.weather == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeUnavailable, "Weather provider is not configured", nil)
		return
	}

	current, err := h.weather.Current(r.Context(), city)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, current, start)
}

// WeatherForecast returns the midday forecast points for a city.
//
// @Summary Weather forecast
// @Tags Weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} models.APIResponse{data=[]models.DailyForecast} "Forecast"
// @Failure 404 {object} models.APIResponse "City not found"
// @Failure 502 {object} models.APIResponse "Weather provider failed"
// @Router /weather/forecast [get]
func (h *Handler) WeatherForecast(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	city, apiErr := cityParam(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	if h.weather == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeUnavailable, "Weather provider is not configured", nil)
		return
	}

	forecast, err := h.weather.Forecast(r.Context(), city)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	respondSuccess(w, http.StatusOK, forecast, start)
}

// Hotels lists hotels in a city. A city the provider does not know yields
// an empty list.
//
// @Summary Hotels
// @Tags Hotels
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} models.APIResponse{data=[]models.Hotel} "Hotels"
// @Failure 502 {object} models.APIResponse "Hotel provider failed"
// @Router /hotels [get]
func (h *Handler) Hotels(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	city, apiErr := cityParam(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	if h.hotels == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeUnavailable, "Hotel provider is not configured", nil)
		return
	}

	hotels, err := h.hotels.Hotels(r.Context(), city)
	if err != nil {
		writeUpstreamError(w, r, err)
		return
	}
	if hotels == nil {
		hotels = []models.Hotel{}
	}
	respondSuccess(w, http.StatusOK, hotels, start)
}
