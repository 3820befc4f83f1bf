// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package main is the entry point for the Connect4Good server.
//
// Connect4Good is a volunteer coordination backend: volunteers sign up with a
// profile, browse and register for capacity-limited events, and admins manage
// events and users. Event recommendations and personalized task suggestions
// come from an OpenAI-compatible embedding and chat API.
//
// # Startup order
//
//  1. Configuration (koanf: defaults, then config.yaml, then environment)
//  2. Logging
//  3. Database (DuckDB by default, Postgres with DB_DRIVER=postgres)
//  4. Authorization guard and credential hasher
//  5. Membership event stream (gochannel, or NATS JetStream with EVENTS_NATS_URL)
//  6. Domain services, ML client, recommendation and task engines
//  7. HTTP server and audit router under the supervisor tree
//
// # Example
//
//	export OPENAI_API_KEY=sk-...
//	export DUCKDB_PATH=/data/connect4good.duckdb
//	./connect4good
//
// SIGINT and SIGTERM cancel the root context; the supervisor stops the HTTP
// server gracefully and then the audit router.
//
// @title Connect4Good API
// @version 1.0
// @description Volunteer coordination backend: accounts, events, capacity-limited registration and ML-backed recommendations.
// @description
// @description Every error body has the form {"detail": "message"}.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/connect4good/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /
// @schemes http https
//
// @tag.name Users
// @tag.description Sign-up, login and profile management
//
// @tag.name Events
// @tag.description Event catalog and registration
//
// @tag.name Admin
// @tag.description Operations that require the admin flag
//
// @tag.name ML
// @tag.description Recommendations and task generation through the ML service
//
// @tag.name Core
// @tag.description Health
package main
