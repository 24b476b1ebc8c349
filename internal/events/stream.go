// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// JetStreamContext is the subset of jetstream.JetStream used for stream setup.
type JetStreamContext interface {
	Stream(ctx context.Context, name string) (jetstream.Stream, error)
	CreateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
	UpdateStream(ctx context.Context, cfg jetstream.StreamConfig) (jetstream.Stream, error)
}

// StreamConfig describes the stream that stores Tripwise events.
type StreamConfig struct {
	Name            string
	Subjects        []string
	MaxAge          time.Duration
	DuplicateWindow time.Duration
}

// StreamInitializer creates the stream if missing and updates it otherwise.
type StreamInitializer struct {
	js  JetStreamContext
	cfg StreamConfig
}

// NewStreamInitializer creates an initializer. A zero DuplicateWindow uses
// two minutes, the JetStream default.
func NewStreamInitializer(js JetStreamContext, cfg StreamConfig) *StreamInitializer {
	if cfg.DuplicateWindow <= 0 {
		cfg.DuplicateWindow = 2 * time.Minute
	}
	return &StreamInitializer{js: js, cfg: cfg}
}

// EnsureStream creates or updates the configured stream.
func (s *StreamInitializer) EnsureStream(ctx context.Context) error {
	if s.cfg.Name == "" || len(s.cfg.Subjects) == 0 {
		return fmt.Errorf("stream name and subjects are required")
	}

	streamCfg := jetstream.StreamConfig{
		Name:       s.cfg.Name,
		Subjects:   s.cfg.Subjects,
		Retention:  jetstream.LimitsPolicy,
		MaxAge:     s.cfg.MaxAge,
		Duplicates: s.cfg.DuplicateWindow,
		Storage:    jetstream.FileStorage,
		Discard:    jetstream.DiscardOld,
	}

	_, err := s.js.Stream(ctx, s.cfg.Name)
	switch {
	case err == nil:
		if _, err := s.js.UpdateStream(ctx, streamCfg); err != nil {
			return fmt.Errorf("update stream %s: %w", s.cfg.Name, err)
		}
		return nil
	case errors.Is(err, jetstream.ErrStreamNotFound):
		if _, err := s.js.CreateStream(ctx, streamCfg); err != nil {
			return fmt.Errorf("create stream %s: %w", s.cfg.Name, err)
		}
		return nil
	default:
		return fmt.Errorf("check stream %s: %w", s.cfg.Name, err)
	}
}
