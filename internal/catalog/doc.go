// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package catalog imports and exports the destination catalog.

A catalog is a list of Records in a flat column layout: name, coordinates,
season_0..season_3 affinities, one boolean per traveler-type slug
(nature_lover, luxury_traveler, ...), description, things_to_do, avg_cost
and the region flags. The same layout is read from a JSON array or from the
first sheet of an XLSX workbook, whose header row names the columns.

	rows, err := catalog.ReadFile("destinations.xlsx")
	if err != nil {
		return err
	}
	stats, err := catalog.NewImporter(db, false).Import(ctx, rows)

Rows that fail to parse or validate are skipped and reported in
ImportStats.Errors; the rest are upserted. A record without destination_id
gets the next free id.
*/
package catalog
