// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry with promauto and are
exposed at GET /metrics by promhttp.

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Database Metrics:
  - db_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - db_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type

Registration Metrics:
  - registration_operations_total: Register/unregister/kick outcomes (counter)
    Labels: operation, outcome
  - registration_tx_retries_total: Attempts restarted after a transaction conflict (counter)
    Labels: operation

Recommendation and ML Service Metrics:
  - recommendation_duration_seconds: End-to-end ranking latency (histogram)
    Labels: outcome
  - llm_requests_total / llm_request_duration_seconds: Outbound ML calls
    Labels: endpoint, outcome
  - circuit_breaker_state, circuit_breaker_requests_total,
    circuit_breaker_state_transitions_total: gobreaker observability

Membership Stream Metrics:
  - membership_events_published_total: Publish attempts (counter)
    Labels: type, outcome
  - membership_events_audited_total: Events persisted by the audit handler
    Labels: type

# Outcome Labels

Outcome labels are "success" or the models.Kind name of the failure
("capacity_exceeded", "not_found", ...), keeping label cardinality bounded.

# Usage

	start := time.Now()
	err := store.CreateEvent(ctx, details)
	metrics.RecordDBQuery("insert", "events", time.Since(start), err)
*/
package metrics
