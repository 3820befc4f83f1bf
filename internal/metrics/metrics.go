// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/connect4good/internal/models"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of database query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Registration Metrics
	RegistrationOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_operations_total",
			Help: "Total number of registration operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	RegistrationTxRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registration_tx_retries_total",
			Help: "Total number of registration attempts restarted after a transaction conflict",
		},
		[]string{"operation"},
	)

	// Recommendation Metrics
	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of event recommendation requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)

	// ML Service Metrics
	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "llm_requests_total",
			Help: "Total number of requests to the ML service",
		},
		[]string{"endpoint", "outcome"},
	)

	LLMRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "llm_request_duration_seconds",
			Help:    "Duration of ML service requests in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
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

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Membership Stream Metrics
	MembershipEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "membership_events_published_total",
			Help: "Total number of membership events published",
		},
		[]string{"type", "outcome"},
	)

	MembershipEventsAudited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "membership_events_audited_total",
			Help: "Total number of membership events written to the audit table",
		},
		[]string{"type"},
	)

	MembershipAuditFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "membership_audit_failures_total",
			Help: "Total number of membership events the audit handler failed to persist",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// Outcome returns "success" for a nil error and the models.Kind name
// otherwise. Errors outside the taxonomy are "internal".
func Outcome(err error) string {
	if err == nil {
		return "success"
	}
	var merr *models.Error
	if errors.As(err, &merr) {
		return merr.Kind.String()
	}
	return models.KindInternal.String()
}

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table, Outcome(err)).Inc()
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

// RecordRegistration records the outcome of a registration operation.
func RecordRegistration(operation string, err error) {
	RegistrationOperations.WithLabelValues(operation, Outcome(err)).Inc()
}

// RecordRegistrationRetry records an attempt restarted after a conflict.
func RecordRegistrationRetry(operation string) {
	RegistrationTxRetries.WithLabelValues(operation).Inc()
}

// RecordRecommendation records a ranking request.
func RecordRecommendation(duration time.Duration, err error) {
	RecommendationDuration.WithLabelValues(Outcome(err)).Observe(duration.Seconds())
}

// RecordLLMRequest records an outbound ML service call.
func RecordLLMRequest(endpoint string, duration time.Duration, err error) {
	LLMRequestsTotal.WithLabelValues(endpoint, Outcome(err)).Inc()
	LLMRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordCircuitBreakerTransition records a breaker state change. state is
// the numeric value of the new state (0=closed, 1=half-open, 2=open).
func RecordCircuitBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordCircuitBreakerRequest records a request outcome through a breaker.
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordMembershipPublish records a membership event publish attempt.
func RecordMembershipPublish(action models.MembershipAction, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	MembershipEventsPublished.WithLabelValues(string(action), outcome).Inc()
}

// RecordMembershipAudited records a membership event persisted by the audit handler.
func RecordMembershipAudited(action models.MembershipAction) {
	MembershipEventsAudited.WithLabelValues(string(action)).Inc()
}

// RecordMembershipAuditFailure records a failed audit write.
func RecordMembershipAuditFailure() {
	MembershipAuditFailures.Inc()
}
