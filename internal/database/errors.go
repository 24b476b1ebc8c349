// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package database

import (
	"errors"
	"io"
	"strings"

	"github.com/tomtom215/tripwise/internal/logging"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert collides with an existing row.
	ErrConflict = errors.New("already exists")

	// ErrTxConflict wraps DuckDB optimistic-concurrency aborts. The write
	// can be retried as is.
	ErrTxConflict = errors.New("transaction conflict")
)

// duckErrorKind buckets DuckDB driver errors. The driver reports them as
// plain text prefixed with the error class.
type duckErrorKind int

const (
	duckOther duckErrorKind = iota
	duckConstraint
	duckTxConflict
)

var duckErrorMarkers = []struct {
	marker string
	kind   duckErrorKind
}{
	{"Duplicate key", duckConstraint},
	{"violates primary key constraint", duckConstraint},
	{"violates unique constraint", duckConstraint},
	{"Transaction conflict", duckTxConflict},
	{"Conflict on update", duckTxConflict},
}

func classify(err error) duckErrorKind {
	if err == nil {
		return duckOther
	}
	msg := err.Error()
	for _, m := range duckErrorMarkers {
		if strings.Contains(msg, m.marker) {
			return m.kind
		}
	}
	return duckOther
}

func isConstraintViolation(err error) bool { return classify(err) == duckConstraint }

func isTransactionConflict(err error) bool { return classify(err) == duckTxConflict }

// closeWithLog closes rows or statements after use. A failed close is
// logged, never returned.
func closeWithLog(c io.Closer, what string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logging.Warn().Str("resource", what).Err(err).Msg("Close failed")
	}
}
