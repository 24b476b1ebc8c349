// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tripwise/internal/models"
)

// locationStore is the part of the database the locations commands use.
type locationStore interface {
	ListStartingLocations(ctx context.Context) ([]models.StartingLocation, error)
	AddStartingLocation(ctx context.Context, name string, at models.Coordinates) (models.StartingLocation, error)
	SeedStartingLocations(ctx context.Context) (int, error)
}

func newLocationsCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Manage starting locations",
	}

	// withStore opens the database around fn.
	withStore := func(fn func(cmd *cobra.Command, args []string, store locationStore) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			db, err := root.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)
			return fn(cmd, args, db)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List starting locations",
			Args:  cobra.NoArgs,
			RunE: withStore(func(cmd *cobra.Command, _ []string, store locationStore) error {
				return listLocations(cmd.Context(), cmd.OutOrStdout(), store)
			}),
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the built-in starting locations that are missing",
			Args:  cobra.NoArgs,
			RunE: withStore(func(cmd *cobra.Command, _ []string, store locationStore) error {
				added, err := store.SeedStartingLocations(cmd.Context())
				if err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Added %d starting locations\n", added)
				return err
			}),
		},
		&cobra.Command{
			Use:     "add <name> <latitude> <longitude>",
			Short:   "Add a starting location",
			Example: "  tripctl locations add Trincomalee 8.5874 81.2152",
			Args:    cobra.ExactArgs(3),
			RunE: withStore(func(cmd *cobra.Command, args []string, store locationStore) error {
				return addLocation(cmd.Context(), cmd.OutOrStdout(), store, args)
			}),
		},
	)
	return cmd
}

func listLocations(ctx context.Context, w io.Writer, store locationStore) error {
	locs, err := store.ListStartingLocations(ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, len(locs))
	for i, l := range locs {
		rows[i] = []string{
			strconv.FormatInt(l.ID, 10),
			l.Name,
			strconv.FormatFloat(l.At.Latitude, 'f', 4, 64),
			strconv.FormatFloat(l.At.Longitude, 'f', 4, 64),
		}
	}
	return renderTable(w, []string{"ID", "Name", "Latitude", "Longitude"}, rows, 0, 2, 3)
}

func addLocation(ctx context.Context, w io.Writer, store locationStore, args []string) error {
	name := strings.TrimSpace(args[0])
	if name == "" {
		return fmt.Errorf("name must not be empty")
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be a number between -90 and 90, got %q", args[1])
	}
	lng, err := strconv.ParseFloat(args[2], 64)
	if err != nil || lng < -180 || lng > 180 {
		return fmt.Errorf("longitude must be a number between -180 and 180, got %q", args[2])
	}

	loc, err := store.AddStartingLocation(ctx, name, models.Coordinates{Latitude: lat, Longitude: lng})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Added %s (id %d)\n", loc.Name, loc.ID)
	return err
}
