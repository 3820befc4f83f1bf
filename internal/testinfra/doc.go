// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package testinfra provides shared test infrastructure: serialized
// in-memory DuckDB configuration for unit tests and a Postgres container for
// integration tests.
//
// # DuckDB
//
// DuckDB CGO calls can hang when many connections from parallel tests run
// at once under CI resource pressure. AcquireDuckDB holds a process-wide
// semaphore for the whole test, so at most one test per binary has an
// active DuckDB database:
//
//	func newTestDB(t *testing.T) *database.DB {
//	    t.Helper()
//	    testinfra.AcquireDuckDB(t)
//	    db, err := database.New(testinfra.MemoryDatabaseConfig())
//	    if err != nil {
//	        t.Fatalf("database.New() error = %v", err)
//	    }
//	    t.Cleanup(func() { _ = db.Close() })
//	    return db
//	}
//
// # Postgres Container
//
// Built with the integration tag, NewPostgres starts postgres:16-alpine
// through testcontainers-go and returns its DSN. Tests are skipped
// gracefully if Docker is unavailable:
//
//	go test -tags integration ./internal/database/...
package testinfra
