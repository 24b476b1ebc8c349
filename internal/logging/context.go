// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type scopeKey struct{}

// scope is the per-request logging state. It is copied on every change so
// a derived context never mutates its parent's fields.
type scope struct {
	correlationID string
	requestID     string
	userID        string
	logger        *zerolog.Logger
}

func scopeOf(ctx context.Context) scope {
	if s, ok := ctx.Value(scopeKey{}).(scope); ok {
		return s
	}
	return scope{}
}

func withScope(ctx context.Context, edit func(*scope)) context.Context {
	s := scopeOf(ctx)
	edit(&s)
	return context.WithValue(ctx, scopeKey{}, s)
}

// GenerateCorrelationID returns a short ID tying a background job
// (catalog seeding, event handling) to its log lines.
func GenerateCorrelationID() string {
	return uuid.NewString()[:8]
}

// GenerateRequestID returns a UUID for an inbound HTTP request.
func GenerateRequestID() string {
	return uuid.NewString()
}

// ContextWithCorrelationID returns a copy of ctx carrying id.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return withScope(ctx, func(s *scope) { s.correlationID = id })
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return scopeOf(ctx).correlationID
}

// ContextWithRequestID returns a copy of ctx carrying id.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return withScope(ctx, func(s *scope) { s.requestID = id })
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return scopeOf(ctx).requestID
}

// ContextWithUserID records the traveler a request acts for. Log lines
// carry it redacted.
func ContextWithUserID(ctx context.Context, id string) context.Context {
	return withScope(ctx, func(s *scope) { s.userID = id })
}

// UserIDFromContext returns the unredacted user ID, or "".
func UserIDFromContext(ctx context.Context) string {
	return scopeOf(ctx).userID
}

// ContextWithLogger makes Ctx build on logger instead of the global one.
//
//nolint:gocritic // zerolog.Logger is passed by value
func ContextWithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return withScope(ctx, func(s *scope) { s.logger = &logger })
}

// LoggerFromContext returns the logger stored in ctx, or the global logger.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	if l := scopeOf(ctx).logger; l != nil {
		return *l
	}
	return Logger()
}

// CtxWith starts a child logger carrying the IDs found in ctx.
//
//	l := logging.CtxWith(ctx).Int64("destination_id", id).Logger()
func CtxWith(ctx context.Context) zerolog.Context {
	s := scopeOf(ctx)
	base := Logger()
	if s.logger != nil {
		base = *s.logger
	}

	lc := base.With()
	if s.correlationID != "" {
		lc = lc.Str("correlation_id", s.correlationID)
	}
	if s.requestID != "" {
		lc = lc.Str("request_id", s.requestID)
	}
	if s.userID != "" {
		lc = lc.Str("user_id", RedactUserID(s.userID))
	}
	return lc
}

// Ctx returns a logger carrying the IDs found in ctx.
//
//	logging.Ctx(ctx).Info().Int("served", n).Msg("Recommendations served")
func Ctx(ctx context.Context) *zerolog.Logger {
	l := CtxWith(ctx).Logger()
	return &l
}

// CtxDebug is Ctx(ctx).Debug().
func CtxDebug(ctx context.Context) *zerolog.Event { return Ctx(ctx).Debug() }

// CtxWarn is Ctx(ctx).Warn().
func CtxWarn(ctx context.Context) *zerolog.Event { return Ctx(ctx).Warn() }

// CtxError is Ctx(ctx).Error().
func CtxError(ctx context.Context) *zerolog.Event { return Ctx(ctx).Error() }

// WithComponent returns a child of the global logger tagged with a
// component name such as "providers" or "events".
func WithComponent(component string) zerolog.Logger {
	return With().Str("component", component).Logger()
}
