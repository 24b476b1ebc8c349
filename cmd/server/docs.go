// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package main provides the Tripwise HTTP server
//
// Tripwise recommends travel destinations from a short questionnaire and
// estimates what the trip will cost.
//
// @title Tripwise API
// @version 1.0
// @description Travel destination recommendations and trip budget estimation
// @description
// @description ## Features
// @description
// @description - **Traveler classification**: a bundled forest model labels each traveler from age, season and interests
// @description - **Ranked destinations**: label overlap blended with seasonal affinity, rated Very Good, Good or Average
// @description - **Trip budgets**: per-mode transport cost ranges from road distance and party size
// @description - **Destination detail**: guides, forecast, hotels and transit fare, degraded gracefully when a provider is down
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address.
// @description The `/users/{userID}` routes are also limited per traveler (default 30 per minute).
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Partial Responses
// @description
// @description When a provider lookup fails the request still succeeds.
// @description `metadata.partial` is true and `metadata.warnings` names the lookups that fell back.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "ERROR_CODE",
// @description     "message": "Human-readable error message",
// @description     "details": {}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-03-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/tripwise/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3857
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Health
// @tag.description Liveness and readiness checks
//
// @tag.name Questionnaire
// @tag.description Traveler preferences, one questionnaire per user
//
// @tag.name Recommendations
// @tag.description Ranked destinations for a user
//
// @tag.name Destinations
// @tag.description Destination detail, images and guide photos
//
// @tag.name Locations
// @tag.description Starting locations trips are planned from
//
// @tag.name Transport
// @tag.description Trip cost estimates per transport mode
//
// @tag.name Weather
// @tag.description Current weather and forecasts by city
//
// @tag.name Hotels
// @tag.description Hotel listings by city
//
// @tag.name Analytics
// @tag.description Aggregates over served recommendations
package main
