// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	loginOutcomeSuccess      = "success"
	loginOutcomeUnknownEmail = "unknown_email"
	loginOutcomeBadPassword  = "bad_password"
	loginOutcomeError        = "error"
)

var (
	// LoginAttempts counts credential checks.
	// Labels:
	//   - outcome: "success", "unknown_email", "bad_password", "error"
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	// LoginDuration measures credential check latency, dominated by bcrypt.
	LoginDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "auth_login_duration_seconds",
			Help:    "Duration of login credential checks in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
	)
)

func recordLogin(outcome string, start time.Time) {
	LoginAttempts.WithLabelValues(outcome).Inc()
	LoginDuration.Observe(time.Since(start).Seconds())
}
