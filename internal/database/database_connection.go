// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package database

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"time"

	"github.com/tomtom215/tripwise/internal/config"
)

const memoryPath = ":memory:"

// dsn renders the DuckDB connection string. Extension autoloading is off:
// the schema needs none and the server may run without network access.
func dsn(cfg *config.DatabaseConfig) string {
	opts := url.Values{}
	opts.Set("access_mode", "read_write")
	opts.Set("threads", strconv.Itoa(threads(cfg)))
	if cfg.MaxMemory != "" {
		opts.Set("max_memory", cfg.MaxMemory)
	}
	opts.Set("preserve_insertion_order", strconv.FormatBool(cfg.PreserveInsertionOrder))
	opts.Set("autoinstall_known_extensions", "false")
	opts.Set("autoload_known_extensions", "false")
	return cfg.Path + "?" + opts.Encode()
}

func threads(cfg *config.DatabaseConfig) int {
	if cfg.Threads > 0 {
		return cfg.Threads
	}
	return runtime.NumCPU()
}

// ensureDir creates the parent directory of a file-backed database.
func ensureDir(path string) error {
	if path == memoryPath {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create database directory %s: %w", dir, err)
	}
	return nil
}

// configureConnectionPool sizes the pool to the DuckDB thread count. The
// catalog is read far more than written, so two idle connections suffice.
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(threads(db.cfg))
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}
