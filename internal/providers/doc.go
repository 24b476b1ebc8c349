// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package providers implements the upstream data clients used to enrich
recommendations: road distance, public-transit fares, weather, and hotels.

# Clients

  - DistanceClient: Google Distance Matrix, driving mode. Batches up to 25
    destinations per request and parses "1,234 km" / "850 m" into kilometres.
  - TransitClient: Google Directions, transit mode. Returns the route fare
    only when it is quoted in LKR.
  - WeatherClient: OpenWeather current conditions and the 5-day forecast,
    reduced to the 12:00 slot of each day.
  - HotelsClient: a hotel listing API queried by city.

# Resilience

Every call goes through the same pipeline:

	cache lookup -> rate limiter -> circuit breaker -> resty (retries) -> cache write

A cache hit never touches the limiter or the breaker. Answers that are a
legitimate "no" from the upstream (ErrCityNotFound, ErrNoRoute) do not count
as breaker failures. All clients are best-effort from the caller's point of
view; the recommendation engine degrades a response instead of failing it.

# Disabled Providers

A provider with enabled=false, or without an API key where one is required,
returns ErrDisabled immediately. Callers treat it like any other failure.
*/
package providers
