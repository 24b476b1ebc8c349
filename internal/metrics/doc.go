// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API:
  - tripwise_api_requests_total{method, endpoint, status_code}
  - tripwise_api_request_duration_seconds{method, endpoint}
  - tripwise_api_active_requests
  - tripwise_api_rate_limit_hits_total{endpoint}

Recommendations:
  - tripwise_recommendations_served_total{result}
  - tripwise_recommendation_duration_seconds
  - tripwise_recommendation_fallbacks_total{lookup}
  - tripwise_classifier_predictions_total{result}
  - tripwise_classifier_labels_active_total{label}

Providers:
  - tripwise_provider_requests_total{provider, result}
  - tripwise_provider_request_duration_seconds{provider}
  - tripwise_provider_rate_limit_waits_total{provider}
  - tripwise_cache_hits_total{namespace}, tripwise_cache_misses_total{namespace}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name, result}
  - circuit_breaker_consecutive_failures{name}
  - circuit_breaker_state_transitions_total{name, from_state, to_state}

Storage and events:
  - tripwise_db_query_duration_seconds{operation, table}
  - tripwise_db_query_errors_total{operation, table}
  - tripwise_events_published_total{topic, result}
  - tripwise_events_consumed_total{topic, result}

# Usage

	start := time.Now()
	err := doQuery()
	metrics.RecordDBQuery("SELECT", "destinations", time.Since(start), err)

All recording functions are safe for concurrent use.
*/
package metrics
