// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package api provides the HTTP layer of Tripwise: a chi router, handlers and
the JSON response envelope.

# Routes

	GET  /api/v1/health/live
	GET  /api/v1/health/ready
	GET  /api/v1/users/{userID}/questionnaire
	PUT  /api/v1/users/{userID}/questionnaire
	GET  /api/v1/users/{userID}/recommendations
	GET  /api/v1/starting-locations
	POST /api/v1/starting-locations
	GET  /api/v1/destinations/{id}?user_id=
	GET  /api/v1/destinations/{id}/image
	GET  /api/v1/guides/{id}/photo
	GET  /api/v1/weather?city=
	GET  /api/v1/weather/forecast?city=
	GET  /api/v1/hotels?city=
	GET  /api/v1/transport/estimate?distance_km=&party_size=&avg_cost=
	GET  /api/v1/analytics/popular-destinations?limit=&since=
	GET  /metrics
	GET  /swagger/*

# Middleware

Request ids, real IP, panic recovery, CORS, Prometheus metrics and an access
log apply to every route. Health and data routes have separate httprate
limiters; health allows ten times the data rate. The /users/{userID} routes
add a per-traveler limiter and tag their log lines with the redacted user id.

# Responses

Every JSON answer is a models.APIResponse. Success carries data and metadata;
metadata.partial and metadata.warnings are set when a provider lookup fell
back. Errors carry a code:

	VALIDATION_ERROR     400  bad query, path or body
	NOT_FOUND            404  destination, location, image or city unknown
	NO_QUESTIONNAIRE     404  user has not submitted preferences
	CONFLICT             409  starting location name taken
	RATE_LIMIT_EXCEEDED  429
	MODEL_ERROR          500  classifier rejected its input
	DATABASE_ERROR       500
	UPSTREAM_ERROR       502  provider failed or breaker open
	SERVICE_UNAVAILABLE  503  provider not configured

Sentinel errors are mapped with errors.Is in errors.go.

# Thread Safety

Handler and Router hold no mutable state after construction and are safe for
concurrent use.
*/
package api
