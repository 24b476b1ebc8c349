// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/tomtom215/tripwise/internal/logging"
)

// Header names for request tracing.
const (
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
)

// maxInboundIDLength caps ids accepted from clients and proxies.
const maxInboundIDLength = 64

// RequestID assigns every request an id and a correlation id.
//
// An X-Request-ID or X-Correlation-ID sent by an upstream proxy is kept when
// it is short and printable; otherwise a UUID is generated. Both ids are echoed
// in the response headers and stored in the logging context, so every log
// line and every published event of the request carries them.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := inboundID(r.Header.Get(HeaderRequestID))
		correlationID := requestID
		if h := r.Header.Get(HeaderCorrelationID); h != "" {
			correlationID = inboundID(h)
		}

		w.Header().Set(HeaderRequestID, requestID)
		w.Header().Set(HeaderCorrelationID, correlationID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		ctx = logging.ContextWithCorrelationID(ctx, correlationID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request id stored by RequestID.
func GetRequestID(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}

func inboundID(id string) string {
	if id == "" || len(id) > maxInboundIDLength {
		return uuid.New().String()
	}
	for _, c := range id {
		if c < 0x21 || c > 0x7e {
			return uuid.New().String()
		}
	}
	return id
}
