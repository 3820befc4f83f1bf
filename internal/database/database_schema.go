// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
database_schema.go - Database Schema Management

Tables:
  - users: Accounts and volunteer profiles, unique by email
  - events: Volunteer events, unique by title, with registrant_count
  - registrations: The membership relation, primary key (event_id, user_id)
  - membership_audit: Append-only trail written by the membership-audit handler

Ordering:
Sequences provide creation order for events and insertion order for
registrations. Timestamps are bound as parameters rather than defaulted so
both backends store the same UTC values.

No foreign keys are declared. Cascades are explicit in DeleteUser and
DeleteEvent so they can report the registrations they removed.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/connect4good/internal/logging"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the sequences, tables and indexes if they do not exist
func (db *DB) createTables(ctx context.Context) error {
	for _, query := range tableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

func tableCreationQueries() []string {
	return []string{
		`CREATE SEQUENCE IF NOT EXISTS event_seq START 1`,
		`CREATE SEQUENCE IF NOT EXISTS registration_seq START 1`,

		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			full_name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT FALSE,
			age INTEGER NOT NULL,
			gender TEXT NOT NULL,
			phone_number TEXT NOT NULL DEFAULT '',
			work_status TEXT NOT NULL,
			immigration_status TEXT NOT NULL,
			skills TEXT NOT NULL DEFAULT '',
			interests TEXT NOT NULL DEFAULT '',
			past_volunteer_experience TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL UNIQUE,
			event_date TEXT NOT NULL DEFAULT '',
			event_time TEXT NOT NULL DEFAULT '',
			requirements TEXT NOT NULL DEFAULT '',
			capacity INTEGER NOT NULL,
			registrant_count INTEGER NOT NULL DEFAULT 0,
			deadline TEXT NOT NULL DEFAULT '',
			location TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			tasks TEXT NOT NULL DEFAULT '',
			created_seq BIGINT NOT NULL DEFAULT nextval('event_seq'),
			created_at TIMESTAMP NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS registrations (
			event_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			seq BIGINT NOT NULL DEFAULT nextval('registration_seq'),
			registered_at TIMESTAMP NOT NULL,
			PRIMARY KEY (event_id, user_id)
		)`,

		`CREATE TABLE IF NOT EXISTS membership_audit (
			id TEXT PRIMARY KEY,
			action TEXT NOT NULL,
			event_id TEXT NOT NULL,
			event_title TEXT NOT NULL,
			user_id TEXT NOT NULL,
			user_email TEXT NOT NULL,
			actor_email TEXT NOT NULL DEFAULT '',
			occurred_at TIMESTAMP NOT NULL,
			recorded_at TIMESTAMP NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_registrations_user ON registrations(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_membership_audit_event ON membership_audit(event_id)`,
	}
}

// dropQueries removes every table before its sequences.
func dropQueries() []string {
	return []string{
		`DROP TABLE IF EXISTS registrations`,
		`DROP TABLE IF EXISTS membership_audit`,
		`DROP TABLE IF EXISTS events`,
		`DROP TABLE IF EXISTS users`,
		`DROP SEQUENCE IF EXISTS registration_seq`,
		`DROP SEQUENCE IF EXISTS event_seq`,
	}
}

// Reset drops and recreates all tables. Every user, event, registration
// and audit record is lost.
func (db *DB) Reset(ctx context.Context) error {
	for _, query := range dropQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}
	if err := db.createTables(ctx); err != nil {
		return err
	}

	logging.Warn().Str("driver", db.driver).Msg("Database reset")
	return nil
}
