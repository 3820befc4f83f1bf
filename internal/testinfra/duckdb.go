// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package testinfra

import (
	"testing"

	"github.com/tomtom215/connect4good/internal/config"
)

// duckDBSemaphore limits each test binary to one live DuckDB database.
var duckDBSemaphore = make(chan struct{}, 1)

// AcquireDuckDB blocks until no other test in the binary holds a DuckDB
// database and releases the slot when t completes.
func AcquireDuckDB(t testing.TB) {
	t.Helper()

	duckDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-duckDBSemaphore
	})
}

// MemoryDatabaseConfig returns a config for a private in-memory DuckDB database.
func MemoryDatabaseConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:       config.DriverDuckDB,
		Path:         ":memory:",
		MaxMemory:    "1GB",
		Threads:      2,
		MaxOpenConns: 8,
	}
}
