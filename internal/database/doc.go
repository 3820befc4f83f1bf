// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package database provides the relational store for Connect4Good: users,
// events, the registration relation between them, and the membership
// audit trail.
//
// # Overview
//
// The package is the single source of truth for the service. It runs on
// DuckDB (the default, file-backed or ":memory:") or on Postgres through
// the pgx stdlib driver. Both backends execute the same SQL: $n
// placeholders, sequences for insertion order, and ON CONFLICT clauses.
//
// # Architecture
//
// Core Database Operations:
//   - database.go: Connection lifecycle (open, ping, close)
//   - database_connection.go: Pool configuration and driver error classification
//   - database_schema.go: Table creation and Reset
//   - errors.go: Close helpers and the transaction conflict sentinel
//
// Data Access:
//   - crud_users.go: User CRUD, admin flag, cascading delete
//   - crud_events.go: Event CRUD, creation-ordered listing, cascading delete
//   - tx.go: InTx and the transaction handle used by the registration engine
//   - audit.go: Membership audit writes and reads
//
// # Registration Relation
//
// Membership lives in a single registrations table keyed by
// (event_id, user_id) plus a sequence column that preserves insertion
// order. Each event row carries registrant_count, which is only changed in
// the same transaction as the relation rows:
//
//	err := db.InTx(ctx, func(tx *database.Tx) error {
//	    if err := tx.ClaimSeat(ctx, event.ID); err != nil {
//	        return err // models.ErrCapacityExceeded when full
//	    }
//	    return tx.InsertRegistration(ctx, event.ID, user.ID)
//	})
//
// ClaimSeat is a conditional UPDATE guarded by registrant_count < capacity.
// Under DuckDB's optimistic concurrency control two writers on the same
// event row cannot both commit; the loser receives ErrTxConflict and the
// caller retries the whole closure.
//
// # Error Handling
//
// Missing rows are returned as models.NotFound, unique violations as
// models.Conflict with the user-facing detail, and serialization failures
// as ErrTxConflict. Everything else is wrapped with fmt.Errorf and %w.
//
// # Thread Safety
//
// DB is safe for concurrent use. A Tx is bound to the goroutine that runs
// the InTx closure and must not escape it.
package database
