// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/tripwise/internal/catalog"
	"github.com/tomtom215/tripwise/internal/models"
)

func newCatalogCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import or export the destination catalog",
	}
	cmd.AddCommand(newCatalogImportCmd(root), newCatalogExportCmd(root))
	return cmd
}

func newCatalogImportCmd(root *rootOptions) *cobra.Command {
	var (
		dryRun bool
		sheet  string
	)

	cmd := &cobra.Command{
		Use:   "import <file.json|file.xlsx>",
		Short: "Upsert destinations from a JSON or XLSX file",
		Long: `Reads destinations in the flat catalog layout (see "catalog export")
and upserts them. Rows without destination_id get the next free id. Invalid
rows are reported and skipped; the command fails when any row was not
imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readCatalog(args[0], sheet)
			if err != nil {
				return err
			}

			var store catalog.Upserter = nopUpserter{}
			if !dryRun {
				db, err := root.openDB()
				if err != nil {
					return err
				}
				defer closeDB(db)
				store = db
			}

			stats, err := catalog.NewImporter(store, dryRun).Import(cmd.Context(), rows)
			if err != nil {
				return err
			}
			return reportImport(cmd.OutOrStdout(), stats)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate only, do not write")
	cmd.Flags().StringVar(&sheet, "sheet", "", "XLSX sheet to read (default: first sheet)")
	return cmd
}

func readCatalog(path, sheet string) ([]catalog.Row, error) {
	if sheet == "" || !strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return catalog.ReadFile(path)
	}
	f, err := os.Open(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return catalog.ReadXLSX(f, sheet)
}

// reportImport prints the counters and a table of rejected rows.
func reportImport(w io.Writer, stats *catalog.ImportStats) error {
	mode := "imported"
	if stats.DryRun {
		mode = "valid (dry run)"
	}
	if _, err := fmt.Fprintf(w, "%d rows: %d %s, %d skipped, %d failed in %s\n",
		stats.Total, stats.Imported, mode, stats.Skipped, stats.Failed, stats.Duration().Round(time.Millisecond)); err != nil {
		return err
	}
	if len(stats.Errors) == 0 {
		return nil
	}

	rows := make([][]string, len(stats.Errors))
	for i, e := range stats.Errors {
		rows[i] = []string{strconv.Itoa(e.Row), e.Name, e.Err.Error()}
	}
	if err := renderTable(w, []string{"Row", "Name", "Error"}, rows, 0); err != nil {
		return err
	}
	return fmt.Errorf("%d of %d rows were not imported", len(stats.Errors), stats.Total)
}

func newCatalogExportCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file.json|file.xlsx>",
		Short: "Write the destination catalog to a JSON or XLSX file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := root.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			dests, err := db.ListDestinations(cmd.Context())
			if err != nil {
				return err
			}
			if err := writeCatalog(args[0], dests); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d destinations to %s\n", len(dests), args[0])
			return err
		},
	}
}

func writeCatalog(path string, dests []models.Destination) (err error) {
	records := make([]catalog.Record, len(dests))
	for i := range dests {
		records[i] = catalog.FromDestination(&dests[i])
	}

	f, err := os.Create(path) //nolint:gosec // path comes from the operator
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return catalog.WriteXLSX(f, records)
	case ".json":
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	default:
		return fmt.Errorf("%w: %s", catalog.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// nopUpserter backs dry runs, which never reach the store.
type nopUpserter struct{}

func (nopUpserter) UpsertDestination(context.Context, *models.Destination) (int64, error) {
	return 0, nil
}
