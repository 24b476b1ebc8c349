// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tripwise/internal/recommend/budget"
)

type budgetOptions struct {
	distanceKM float64
	partySize  int
	avgCost    float64
}

func newBudgetCmd() *cobra.Command {
	opts := &budgetOptions{}

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Estimate a trip budget per transport mode",
		Long: `Prints the suitability and cost of every transport mode for a trip,
followed by the blended budget: the suitability-weighted transport cost plus
the on-site cost for each traveler. Amounts are in LKR.`,
		Example: "  tripctl budget --distance 100 --party 4 --avg-cost 50",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBudget(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().Float64Var(&opts.distanceKM, "distance", 0, "road distance in km (required)")
	cmd.Flags().IntVar(&opts.partySize, "party", 1, "number of travelers")
	cmd.Flags().Float64Var(&opts.avgCost, "avg-cost", 0, "on-site cost per traveler")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}

func runBudget(w io.Writer, opts *budgetOptions) error {
	probs, err := budget.Suitability(opts.distanceKM, opts.partySize)
	if err != nil {
		return err
	}
	costs, err := budget.ModeCosts(opts.distanceKM, opts.partySize)
	if err != nil {
		return err
	}
	total, err := budget.Estimate(opts.avgCost, opts.distanceKM, opts.partySize)
	if err != nil {
		return err
	}

	rounded := costs.Rounded()
	rows := make([][]string, 0, len(budget.Modes))
	for _, m := range budget.Modes {
		rows = append(rows, []string{
			m.String(),
			fmt.Sprintf("%.1f%%", probs.Of(m)*100),
			strconv.FormatFloat(rounded.Of(m), 'f', 0, 64),
		})
	}
	if err := renderTable(w, []string{"Mode", "Suitability", "Cost (LKR)"}, rows, 1, 2); err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "Distance: %g km, travelers: %d, on-site cost: %g\nEstimated budget: LKR %d\n",
		opts.distanceKM, opts.partySize, opts.avgCost, total)
	return err
}
