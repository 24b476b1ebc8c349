// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/tripwise/internal/config"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/metrics"
	"github.com/tomtom215/tripwise/internal/middleware"
)

// ChiMiddlewareConfig configures CORS and rate limiting for the router.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // seconds

	// RateLimitRequests per RateLimitWindow, per client.
	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
	RateLimitKeyFunc  httprate.KeyFunc

	// UserRateLimitRequests per RateLimitWindow, per traveler, on the
	// /users/{userID} routes. Recommendations run the classifier and fan
	// out to the providers, so they get a tighter budget. 0 disables.
	UserRateLimitRequests int
}

// DefaultChiMiddlewareConfig returns the defaults. No CORS origin is
// allowed until one is configured.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	ids := []string{middleware.HeaderRequestID, middleware.HeaderCorrelationID}
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins: []string{},
		CORSAllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		CORSAllowedHeaders: append([]string{"Content-Type"}, ids...),
		CORSExposedHeaders: ids,
		CORSMaxAge:         int((24 * time.Hour).Seconds()),

		RateLimitRequests:     100,
		RateLimitWindow:       time.Minute,
		UserRateLimitRequests: 30,
	}
}

// ChiMiddlewareConfigFrom maps the security section of the server config.
// Behind trusted proxies clients are keyed by their forwarded address.
func ChiMiddlewareConfigFrom(sec *config.SecurityConfig) *ChiMiddlewareConfig {
	c := DefaultChiMiddlewareConfig()
	if sec == nil {
		return c
	}
	c.CORSAllowedOrigins = append([]string(nil), sec.CORSOrigins...)
	if sec.RateLimitReqs > 0 {
		c.RateLimitRequests = sec.RateLimitReqs
	}
	if sec.RateLimitWindow > 0 {
		c.RateLimitWindow = sec.RateLimitWindow
	}
	c.UserRateLimitRequests = sec.UserRateLimitReqs
	c.RateLimitDisabled = sec.RateLimitDisabled
	if len(sec.TrustedProxies) > 0 {
		c.RateLimitKeyFunc = httprate.KeyByRealIP
	}
	return c
}

// ChiMiddleware builds the router's CORS and rate limit middleware.
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware builds the middleware set; nil means defaults.
func NewChiMiddleware(cfg *ChiMiddlewareConfig) *ChiMiddleware {
	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
	}
	return &ChiMiddleware{
		config: cfg,
		cors: cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   cfg.CORSAllowedMethods,
			AllowedHeaders:   cfg.CORSAllowedHeaders,
			ExposedHeaders:   cfg.CORSExposedHeaders,
			AllowCredentials: cfg.CORSAllowCredentials,
			MaxAge:           cfg.CORSMaxAge,
		}),
	}
}

// CORS answers preflights and decorates responses for allowed origins.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// RateLimit limits each client on the data endpoints.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.limit(m.config.RateLimitRequests, m.clientKey())
}

// RateLimitHealth allows health checks ten times the data endpoint rate.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.limit(m.config.RateLimitRequests*10, m.clientKey())
}

// RateLimitUser limits each traveler across clients. It must be mounted
// under a route with a {userID} parameter.
func (m *ChiMiddleware) RateLimitUser() func(http.Handler) http.Handler {
	if m.config.UserRateLimitRequests <= 0 {
		return passthrough
	}
	return m.limit(m.config.UserRateLimitRequests, func(r *http.Request) (string, error) {
		return "user:" + chi.URLParam(r, "userID"), nil
	})
}

func (m *ChiMiddleware) clientKey() httprate.KeyFunc {
	if m.config.RateLimitKeyFunc != nil {
		return m.config.RateLimitKeyFunc
	}
	return httprate.KeyByIP
}

func (m *ChiMiddleware) limit(requests int, key httprate.KeyFunc) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return passthrough
	}
	return httprate.Limit(requests, m.config.RateLimitWindow,
		httprate.WithKeyFuncs(key),
		httprate.WithLimitHandler(rateLimitExceeded),
	)
}

func passthrough(next http.Handler) http.Handler { return next }

// rateLimitExceeded writes the 429 envelope and counts the rejection.
func rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	metrics.APIRateLimitHits.WithLabelValues(middleware.RoutePattern(r)).Inc()
	respondError(w, r, http.StatusTooManyRequests, ErrCodeRateLimited, "Too many requests, retry later", nil)
}

// UserScope adds the {userID} path parameter to the request's log scope.
func UserScope(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := chi.URLParam(r, "userID"); id != "" {
			r = r.WithContext(logging.ContextWithUserID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// APISecurityHeaders sets the JSON API's security headers. HSTS is sent
// only for requests that arrived over TLS, directly or via a proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}
