// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/tripwise/internal/middleware"
)

// Router owns the HTTP route table.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router for handler. A nil config uses
// DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, cfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(cfg),
	}
}

// Setup builds the chi handler with every route and middleware.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight
	r.Use(middleware.Metrics)
	r.Use(middleware.AccessLog)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusNotFound, ErrCodeNotFound, "Route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Core API Endpoints
	// ========================
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Route("/users/{userID}", func(r chi.Router) {
			r.Use(UserScope)
			r.Use(router.chiMiddleware.RateLimitUser())
			r.Get("/questionnaire", router.handler.GetQuestionnaire)
			r.Put("/questionnaire", router.handler.PutQuestionnaire)
			r.Get("/recommendations", router.handler.Recommendations)
		})

		r.Get("/starting-locations", router.handler.ListStartingLocations)
		r.Post("/starting-locations", router.handler.AddStartingLocation)

		r.Get("/destinations/{id}", router.handler.DestinationDetail)
		r.Get("/destinations/{id}/image", router.handler.DestinationImage)
		r.Get("/guides/{id}/photo", router.handler.GuidePhoto)

		r.Get("/weather", router.handler.CurrentWeather)
		r.Get("/weather/forecast", router.handler.WeatherForecast)
		r.Get("/hotels", router.handler.Hotels)

		r.Get("/transport/estimate", router.handler.TransportEstimate)

		r.Get("/analytics/popular-destinations", router.handler.PopularDestinations)
	})

	// ========================
	// Observability
	// ========================
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
