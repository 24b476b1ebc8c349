// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package middleware holds the net/http middleware shared by the API router.

  - RequestID: request and correlation ids in headers and logging context
  - Metrics: Prometheus request count, latency and in-flight gauge
  - AccessLog: one zerolog line per request

All three are func(http.Handler) http.Handler and plug into chi's r.Use.
Metrics and AccessLog label requests by chi route pattern, so they must run
inside the chi router rather than in front of it.
*/
package middleware
