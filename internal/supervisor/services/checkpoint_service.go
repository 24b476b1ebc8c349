// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Checkpointer flushes the database write-ahead log into the main file.
// Satisfied by *database.DB.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService checkpoints the database on a fixed interval and once
// more on shutdown, so a crash loses at most one interval of WAL replay.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
	timeout  time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCheckpointService returns a service checkpointing every interval.
// A non-positive interval defaults to 15 minutes.
//
//nolint:gocritic // zerolog.Logger is passed by value throughout
func NewCheckpointService(db Checkpointer, interval time.Duration, logger zerolog.Logger) *CheckpointService {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &CheckpointService{
		db:       db,
		interval: interval,
		timeout:  time.Minute,
		logger:   logger.With().Str("service", "db-checkpoint").Logger(),
		name:     "db-checkpoint",
	}
}

// Serve implements suture.Service. Checkpoint failures are logged and retried
// on the next tick; they never restart the service.
func (s *CheckpointService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("checkpoint service starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Final flush with a fresh context; ctx is already canceled.
			flushCtx, cancel := context.WithTimeout(context.Background(), s.timeout)
			s.checkpoint(flushCtx)
			cancel()
			return ctx.Err()

		case <-ticker.C:
			tickCtx, cancel := context.WithTimeout(ctx, s.timeout)
			s.checkpoint(tickCtx)
			cancel()
		}
	}
}

func (s *CheckpointService) checkpoint(ctx context.Context) {
	start := time.Now()
	if err := s.db.Checkpoint(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("database checkpoint failed")
		return
	}
	s.logger.Debug().Dur("duration", time.Since(start)).Msg("database checkpoint complete")
}

func (s *CheckpointService) String() string {
	return s.name
}
