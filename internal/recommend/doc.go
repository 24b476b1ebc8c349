// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package recommend orchestrates a recommendation request end to end.
//
// # Pipeline
//
// Recommend runs the following steps for one user:
//
//  1. Load the user's latest questionnaire (ErrNoQuestionnaire if none).
//  2. Derive the traveler profile (age as of today, season of the trip month).
//  3. Predict traveler-type labels with the classifier.
//  4. Rank the catalog with the scoring package and keep the top N.
//  5. Fetch road distances from the trip origin in one batch.
//  6. Estimate a trip budget per destination with the budget package.
//  7. Publish a recommendation-served event, best effort.
//
// # Degradation
//
// Distance lookups never fail a request. When the distance provider is
// missing, errors, or has no route for a destination, the great-circle
// distance is used instead and the entry is marked with source "estimate".
// The response carries a warning and the fallback is counted in
// tripwise_recommendation_fallbacks_total.
//
// DestinationDetail runs its four enrichment lookups (distance, weather,
// hotels, transit fare) concurrently under LookupTimeout. A failed lookup
// leaves its field null and adds its name to Unavailable.
//
// # Determinism
//
// Given the same questionnaire, catalog, classifier and clock, Recommend
// returns the same ordered list. Equal scores keep catalog order.
//
// # Thread Safety
//
// Engine holds no per-request state and is safe for concurrent use.
package recommend
