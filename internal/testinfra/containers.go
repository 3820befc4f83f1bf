// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

//go:build integration

package testinfra

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/tomtom215/connect4good/internal/config"
)

// DefaultPostgresImage is the image used by NewPostgres
const DefaultPostgresImage = "postgres:16-alpine"

// SkipIfNoDocker skips the test if Docker is not available.
// This allows tests to run gracefully in environments without Docker.
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if !IsDockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}
}

// IsDockerAvailable checks if Docker daemon is running and accessible.
func IsDockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "docker", "info")
	return cmd.Run() == nil
}

// NewPostgres starts a Postgres container for the duration of the test and
// returns its connection string.
func NewPostgres(t *testing.T) string {
	t.Helper()
	SkipIfNoDocker(t)

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, DefaultPostgresImage,
		tcpostgres.WithDatabase("connect4good"),
		tcpostgres.WithUsername("connect4good"),
		tcpostgres.WithPassword("connect4good"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get postgres connection string: %v", err)
	}
	return dsn
}

// PostgresDatabaseConfig returns a config pointing at dsn.
func PostgresDatabaseConfig(dsn string) *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:       config.DriverPostgres,
		DSN:          dsn,
		MaxOpenConns: 16,
	}
}
