// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Command tripctl is the Tripwise operator CLI.
//
// It imports and exports the destination catalog, manages starting
// locations, and runs the recommendation and budget pipelines offline
// against the local DuckDB file.
//
//	tripctl catalog import destinations.xlsx
//	tripctl catalog export backup.xlsx
//	tripctl locations seed
//	tripctl recommend --nature --culture --month March --age 29
//	tripctl budget --distance 120 --party 4 --avg-cost 45
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
