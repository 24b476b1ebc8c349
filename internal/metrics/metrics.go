// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - DuckDB catalog queries
// - API endpoint latency and throughput
// - Recommendation pipeline and classifier
// - External providers, their circuit breakers and response cache
// - Event bus publish/consume

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripwise_db_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_db_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripwise_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tripwise_api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_recommendations_served_total",
			Help: "Total number of recommendation responses",
		},
		[]string{"result"}, // "ok", "partial", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tripwise_recommendation_duration_seconds",
			Help:    "End-to-end recommendation latency in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	RecommendationFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_recommendation_fallbacks_total",
			Help: "Lookups that degraded to a fallback or were left empty",
		},
		[]string{"lookup"}, // "distance", "weather", "hotels", "transit_fare"
	)

	// Classifier Metrics
	ClassifierPredictions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_classifier_predictions_total",
			Help: "Total number of classifier predictions",
		},
		[]string{"result"}, // "ok", "error"
	)

	ClassifierLabelsActive = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_classifier_labels_active_total",
			Help: "Number of times each traveler type was predicted",
		},
		[]string{"label"},
	)

	// Provider Metrics
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_provider_requests_total",
			Help: "Total number of outbound provider requests",
		},
		[]string{"provider", "result"}, // result: "success", "error"
	)

	ProviderDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tripwise_provider_request_duration_seconds",
			Help:    "Outbound provider request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	ProviderRateLimitWaits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_provider_rate_limit_waits_total",
			Help: "Requests delayed by the outbound rate limiter",
		},
		[]string{"provider"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_cache_hits_total",
			Help: "Total number of provider cache hits",
		},
		[]string{"namespace"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_cache_misses_total",
			Help: "Total number of provider cache misses",
		},
		[]string{"namespace"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Event Bus Metrics
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_events_published_total",
			Help: "Total number of events published",
		},
		[]string{"topic", "result"},
	)

	EventsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tripwise_events_consumed_total",
			Help: "Total number of events consumed",
		},
		[]string{"topic", "result"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records one recommendation response.
func RecordRecommendation(duration time.Duration, partial bool, err error) {
	result := "ok"
	switch {
	case err != nil:
		result = "error"
	case partial:
		result = "partial"
	}
	RecommendationsServed.WithLabelValues(result).Inc()
	if err == nil {
		RecommendationDuration.Observe(duration.Seconds())
	}
}

// RecordFallback records a degraded enrichment lookup.
func RecordFallback(lookup string) {
	RecommendationFallbacks.WithLabelValues(lookup).Inc()
}

// RecordClassifierPrediction records a prediction and its active labels.
func RecordClassifierPrediction(labels []string, err error) {
	if err != nil {
		ClassifierPredictions.WithLabelValues("error").Inc()
		return
	}
	ClassifierPredictions.WithLabelValues("ok").Inc()
	for _, l := range labels {
		ClassifierLabelsActive.WithLabelValues(l).Inc()
	}
}

// RecordProviderRequest records an outbound provider call.
func RecordProviderRequest(provider string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	ProviderRequests.WithLabelValues(provider, result).Inc()
	ProviderDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordCacheLookup records a provider cache hit or miss.
func RecordCacheLookup(namespace string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(namespace).Inc()
	} else {
		CacheMisses.WithLabelValues(namespace).Inc()
	}
}

// RecordEventPublished records a publish attempt.
func RecordEventPublished(topic string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsPublished.WithLabelValues(topic, result).Inc()
}

// RecordEventConsumed records a consumed event.
func RecordEventConsumed(topic string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	EventsConsumed.WithLabelValues(topic, result).Inc()
}
