// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
Package config provides centralized configuration management for Connect4Good.

Configuration is loaded with Koanf v2 from three layers, highest priority last:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, ./config.yaml, /etc/connect4good/config.yaml)
 3. Environment variables, mapped explicitly by envTransformFunc

Unknown environment variables are ignored so that the process environment
cannot leak arbitrary keys into the configuration tree.

# Environment Variables

Server:
  - HTTP_HOST, HTTP_PORT: bind address (default 0.0.0.0:8000)
  - HTTP_TIMEOUT: read/write timeout (default 30s)
  - ALLOW_RESET_DB: expose POST /reset_db (default false)
  - CORS_ORIGINS: comma-separated allowed origins (default *)

Database:
  - DB_DRIVER: duckdb or postgres (default duckdb)
  - DUCKDB_PATH: DuckDB file path, ":memory:" for an ephemeral store
  - DATABASE_URL: Postgres DSN when DB_DRIVER=postgres

Registration:
  - REGISTRATION_MAX_ATTEMPTS: attempts on transaction conflict (default 5)
  - REGISTRATION_RETRY_BACKOFF: base backoff between attempts (default 10ms)

Recommendation and language model:
  - RECOMMEND_TOP_K: number of events returned (default 5)
  - RECOMMEND_MAX_CONCURRENCY: parallel embedding calls (default 4)
  - OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_EMBEDDING_MODEL, OPENAI_CHAT_MODEL
  - LLM_TIMEOUT: per-request deadline for model calls (default 30s)

Membership events:
  - EVENTS_ENABLED, EVENTS_NATS_URL, EVENTS_TOPIC

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
