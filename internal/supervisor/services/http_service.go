// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/tripwise/internal/logging"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer is the lifecycle subset of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService serves the Tripwise API under supervision. Canceling
// the Serve context drains in-flight questionnaire and budget requests for
// at most the shutdown timeout.
//
//	server := &http.Server{Addr: ":8000", Handler: router}
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
type HTTPServerService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
}

// NewHTTPServerService wraps server. A non-positive timeout means 10s.
func NewHTTPServerService(server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &HTTPServerService{server: server, shutdownTimeout: shutdownTimeout}
}

// Serve implements suture.Service. It returns ctx.Err() after a clean drain
// and the listen or shutdown error otherwise.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	logger := logging.WithComponent(h.String())

	served := make(chan error, 1)
	go func() {
		if addr := h.addr(); addr != "" {
			logger.Info().Str("addr", addr).Msg("API server listening")
		}
		served <- h.server.ListenAndServe()
	}()

	var err error
	select {
	case err = <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("api server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Dur("timeout", h.shutdownTimeout).Msg("Draining API server")

	// ctx is already done; the drain gets a fresh deadline.
	drainCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()
	if err = h.server.Shutdown(drainCtx); err != nil {
		return fmt.Errorf("api server shutdown: %w", err)
	}
	<-served
	return ctx.Err()
}

func (h *HTTPServerService) addr() string {
	if s, ok := h.server.(*http.Server); ok {
		return s.Addr
	}
	return ""
}

func (h *HTTPServerService) String() string {
	return "api-server"
}
