// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package classifier predicts traveler types from a traveler profile.
//
// The model is a multi-output decision forest: one estimator per traveler
// type, each an ensemble of binary trees. It is trained offline and shipped
// as a JSON artifact that is loaded once at startup:
//
//	{
//	  "version": "2025-06-01",
//	  "features": ["age", "season", "nature", ...],
//	  "labels": ["Nature Lover", "Luxury Traveler", ...],
//	  "estimators": [
//	    {"label": "Nature Lover", "trees": [
//	      {"nodes": [
//	        {"feature": 2, "threshold": 0.5, "left": 1, "right": 2},
//	        {"left": -1, "right": -1, "value": 0.1},
//	        {"left": -1, "right": -1, "value": 0.9}
//	      ]}
//	    ]}
//	  ]
//	}
//
// A node with left == -1 is a leaf whose value is P(label = 1). Inputs with
// x[feature] <= threshold follow the left child. A label is active when the
// mean leaf probability across its trees exceeds 0.5.
//
// The artifact's feature and label lists must match FeatureSchema and the
// models.TravelerType enumeration exactly, in order. Mismatches are load
// errors, so a stale artifact fails at startup instead of silently scoring
// against the wrong columns.
//
// Classifier values are immutable after load and safe for concurrent use.
package classifier
