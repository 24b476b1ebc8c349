// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package main

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// renderTable prints rows under headers. Numeric columns read better
// right-aligned, so alignRight lists their indexes.
func renderTable(w io.Writer, headers []string, rows [][]string, alignRight ...int) error {
	table := tablewriter.NewWriter(w)
	table.Header(headers)

	if len(alignRight) > 0 {
		perColumn := make([]tw.Align, len(headers))
		for i := range perColumn {
			perColumn[i] = tw.AlignLeft
		}
		for _, idx := range alignRight {
			if idx >= 0 && idx < len(perColumn) {
				perColumn[idx] = tw.AlignRight
			}
		}
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.PerColumn = perColumn
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
