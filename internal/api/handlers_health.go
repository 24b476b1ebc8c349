// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"context"
	"net/http"
	"time"
)

// readinessTimeout bounds the database ping of the readiness check.
const readinessTimeout = 2 * time.Second

// HealthLive handles liveness check requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
//
// @Summary Liveness check
// @Description Returns 200 OK while the process is alive, regardless of external dependencies.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse "Process is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]string{"status": "alive"}, time.Time{})
}

// HealthReady handles readiness check requests.
// Ready means the database answers a ping and the classifier is loaded.
//
// @Summary Readiness check
// @Description Returns 200 when the database answers and the traveler model is loaded, 503 otherwise.
// @Tags Health
// @Produce json
// @Success 200 {object} models.APIResponse{data=HealthStatus} "Ready"
// @Failure 503 {object} models.APIResponse{data=HealthStatus} "Not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := HealthStatus{
		Database:      h.store.Ping(ctx) == nil,
		Classifier:    h.modelReady(),
		UptimeSeconds: h.clock().Sub(h.startTime).Seconds(),
	}

	code := http.StatusOK
	status.Status = "ready"
	if !status.Database || !status.Classifier {
		code = http.StatusServiceUnavailable
		status.Status = "not_ready"
	}

	respondSuccess(w, code, status, time.Time{})
}
