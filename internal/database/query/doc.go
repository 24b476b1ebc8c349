// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package query provides SQL query building utilities for the database package.
//
// The WhereBuilder offers a fluent interface for parameterized WHERE clauses
// used by the catalog filters and the analytics queries:
//
//	wb := query.NewWhereBuilder()
//	wb.AddAnyFlag([]string{"nature_lover", "eco_conscious_traveler"})
//	wb.AddAllFlags([]string{"coastal"})
//	wb.AddMaxValue("avg_cost", &maxCost)
//	where, args := wb.BuildWithPrefix()
//	// "WHERE (nature_lover OR eco_conscious_traveler) AND coastal AND avg_cost <= ?"
//	// args: [maxCost]
//
// With no conditions BuildWithPrefix returns "" and the query runs unfiltered.
//
// # Security
//
// Only values are bound as arguments. Column names must come from the fixed
// schema lists in the database package, never from request input.
//
// # Thread Safety
//
// A WhereBuilder is not safe for concurrent use. Create one per query.
package query
