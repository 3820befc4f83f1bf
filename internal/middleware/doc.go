// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
Package middleware provides HTTP middleware for the API router.

All middleware has the chi signature func(http.Handler) http.Handler.

  - RequestID: accepts or generates an X-Request-ID and stores it in the
    request context through the logging package
  - RequestLogger: one structured zerolog line per request, with a
    warning for requests slower than a threshold
  - PrometheusMetrics: request count, latency and in-flight gauge,
    labelled by the chi route pattern

Typical order:

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(time.Second))
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
