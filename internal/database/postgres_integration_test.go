// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

//go:build integration

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/connect4good/internal/config"
	"github.com/tomtom215/connect4good/internal/models"
	"github.com/tomtom215/connect4good/internal/testinfra"
)

func TestPostgresBackend(t *testing.T) {
	dsn := testinfra.NewPostgres(t)

	db, err := New(testinfra.PostgresDatabaseConfig(dsn))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if db.Driver() != config.DriverPostgres {
		t.Fatalf("Driver() = %q", db.Driver())
	}

	ctx := context.Background()
	event := mustCreateEvent(t, db, "Beach Cleanup", 1)
	first := mustCreateUser(t, db, "first@example.com")
	second := mustCreateUser(t, db, "second@example.com")

	if err := db.CreateUser(ctx, testUser("first@example.com")); !errors.Is(err, models.Conflict(models.DetailEmailTaken)) {
		t.Errorf("duplicate CreateUser() error = %v", err)
	}

	if err := register(ctx, db, event.ID, first.ID); err != nil {
		t.Fatalf("register() error = %v", err)
	}
	if err := register(ctx, db, event.ID, second.ID); !errors.Is(err, models.ErrCapacityExceeded) {
		t.Errorf("register() on full event error = %v, want CapacityExceeded", err)
	}

	cascaded, err := db.DeleteEvent(ctx, "Beach Cleanup")
	if err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}
	if len(cascaded) != 1 {
		t.Errorf("DeleteEvent() cascaded %d, want 1", len(cascaded))
	}

	if err := db.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
}
