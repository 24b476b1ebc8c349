// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package database provides the DuckDB-backed store for Tripwise.

It holds the destination catalog, guides and images, the named starting
locations, each user's latest questionnaire, and the served-recommendation
log that backs the popularity analytics.

# Connection

New opens DuckDB with tuned settings and creates the schema:

	db, err := database.New(&cfg.Database)
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to open database")
	}
	defer db.Close()

The pool uses NumCPU open connections, 2 idle connections, a 1h lifetime and
a 5m idle timeout. Close runs a CHECKPOINT so the WAL is flushed to the main
file before exit.

# Catalog Mapping

The destinations table stores nine boolean traveler-type columns named after
models.TravelerType slugs. scanDestination folds them into a
models.TravelerTypeSet in enum order, so the scorer and the classifier share
one vocabulary.

# Errors

Lookups of missing rows return errors wrapping ErrNotFound. Duplicate starting
locations return ErrConflict. Callers test with errors.Is.

# Thread Safety

DB is safe for concurrent use. All methods take a context; calls without a
deadline get a 30 second timeout.
*/
package database
