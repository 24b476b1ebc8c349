// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package models defines the shared domain types used across Tripwise.
//
// The traveler-type enumeration is the single vocabulary shared by the
// classifier output and the destination catalog. Destinations carry their
// affinities as a TravelerTypeSet and the classifier emits one, so scoring is a
// set intersection with no name normalization in between.
//
// Key types:
//   - TravelerType, TravelerTypeSet: the nine traveler-type labels
//   - Season: the four three-month season buckets (Jan-Mar = 0 ... Oct-Dec = 3)
//   - Interests, TravelerProfile: classifier input
//   - Destination, Guide, StartingLocation: catalog entities
//   - Questionnaire: a user's latest preference submission
//   - APIResponse, Metadata, APIError: the HTTP response envelope
package models
