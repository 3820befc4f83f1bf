// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package registration maintains the capacity-bounded membership relation
// between users and events.
//
// Every mutating call (Register, Unregister, Kick) runs as one database
// transaction that re-reads the user, the event, its registrant count and
// the existing membership before changing anything. The seat itself is
// claimed with a conditional UPDATE guarded by registrant_count < capacity,
// so two transactions can never both take the last seat.
//
// # Optimistic Retry
//
// DuckDB aborts one of two transactions that write the same event row. The
// engine treats database.ErrTxConflict as a signal to rerun the whole
// closure from the beginning, up to Config.MaxAttempts times with a short
// jittered backoff:
//
//	engine := registration.NewEngine(db, guard, registration.Config{
//	    MaxAttempts:  5,
//	    RetryBackoff: 10 * time.Millisecond,
//	}, registration.WithNotifier(publisher))
//
//	if err := engine.Register(ctx, "ana@example.com", "Beach Cleanup"); err != nil {
//	    // models.ErrCapacityExceeded, models.ErrAlreadyRegistered, models.ErrNotFound, ...
//	}
//
// When the attempts are exhausted the call fails with a Conflict whose
// detail asks the client to retry.
//
// # Membership Events
//
// After a mutation commits, the engine hands a models.MembershipEvent to the
// configured Notifier. Notification never fails the call.
package registration
