// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/database"
	"github.com/tomtom215/tripwise/internal/logging"
)

// Set by the release build.
var (
	version = "dev"
	commit  = "none"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	dbPath   string
	logLevel string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "tripctl",
		Short:         "Operate a Tripwise installation",
		Long:          `tripctl manages the Tripwise destination catalog and starting locations, and runs recommendations and budget estimates offline.`,
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.Init(logging.Config{
				Level:     opts.logLevel,
				Format:    logging.FormatConsole,
				Timestamp: true,
				Service:   "tripctl",
				Output:    os.Stderr,
			})
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "DuckDB file (default: DUCKDB_PATH or the server default)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "trace, debug, info, warn or error")

	root.AddCommand(
		newCatalogCmd(opts),
		newLocationsCmd(opts),
		newRecommendCmd(opts),
		newBudgetCmd(),
	)
	return root
}

// config loads the server configuration once. Commands that work offline
// without a database never call it.
func (o *rootOptions) config() (*config.Config, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if o.dbPath != "" {
		cfg.Database.Path = o.dbPath
	}
	o.cfg = cfg
	return cfg, nil
}

// openDB opens the configured database. The caller closes it.
func (o *rootOptions) openDB() (*database.DB, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", cfg.Database.Path, err)
	}
	return db, nil
}

func closeDB(db *database.DB) {
	if err := db.Close(); err != nil {
		logging.Error().Err(err).Msg("Error closing database")
	}
}
