// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

// Package logging is the zerolog-based structured logging layer for Tripwise.
//
// Every package logs through the global logger configured here. Production
// deployments emit one JSON object per line; development uses the console
// writer.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("addr", addr).Msg("HTTP server listening")
//	logging.Error().Err(err).Int64("destination_id", id).Msg("Forecast lookup failed")
//
// # Request Context
//
// The HTTP middleware stores a request ID in the request context. Handlers and
// the recommendation engine log through Ctx so the ID follows every line:
//
//	ctx = logging.ContextWithRequestID(ctx, logging.GenerateRequestID())
//	logging.Ctx(ctx).Info().Str("user_id", logging.RedactUserID(uid)).Msg("Recommendations served")
//
// # Adapters
//
// Two third-party logging interfaces are bridged onto zerolog:
//
//   - NewSlogLogger returns a *slog.Logger for sutureslog, so supervisor
//     restarts and backoff land in the same stream.
//   - NewWatermillLogger returns a watermill.LoggerAdapter for the event
//     publisher, subscriber, and router.
//
// # Redaction
//
// Provider requests carry API keys in their query strings. RedactURL masks
// them before a URL is logged, and RedactUserID shortens user identifiers.
//
// # Configuration
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
//
// Always terminate an event chain with Msg or Send; an unterminated event is
// never written.
package logging
