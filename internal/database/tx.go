// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/metrics"
	"github.com/tomtom215/connect4good/internal/models"
)

// querier is the subset of *sql.DB and *sql.Tx used by the read helpers.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Tx is a transaction handle passed to InTx closures.
type Tx struct {
	tx *sql.Tx
}

// InTx runs fn inside a single transaction. The transaction commits when fn
// returns nil and rolls back otherwise. Serialization failures from any
// statement or from the commit are returned wrapped in ErrTxConflict.
func (db *DB) InTx(ctx context.Context, fn func(tx *Tx) error) (err error) {
	sqlTx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return classifyTxError(fmt.Errorf("failed to begin transaction: %w", err))
	}

	defer func() {
		if err != nil {
			if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logging.Error().
					Err(rbErr).
					AnErr("original_error", err).
					Msg("Transaction rollback failed")
			}
		}
	}()

	if err = fn(&Tx{tx: sqlTx}); err != nil {
		return classifyTxError(err)
	}

	if err = sqlTx.Commit(); err != nil {
		// A constraint raced by a concurrent writer surfaces at commit; the
		// retried closure re-reads and reports it properly.
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", ErrTxConflict, err)
		}
		return classifyTxError(fmt.Errorf("failed to commit transaction: %w", err))
	}
	return nil
}

// conflictAttempts bounds the reruns of the store's own multi-statement
// writes. The registration engine runs its own longer retry.
const conflictAttempts = 3

// inTxRetry runs InTx and reruns it while it fails with ErrTxConflict, up to
// conflictAttempts times. The last conflict is returned as is.
func (db *DB) inTxRetry(ctx context.Context, operation string, fn func(tx *Tx) error) error {
	for attempt := 1; ; attempt++ {
		err := db.InTx(ctx, fn)
		if !errors.Is(err, ErrTxConflict) || attempt >= conflictAttempts {
			return err
		}

		logging.Debug().
			Err(err).
			Str("operation", operation).
			Int("attempt", attempt).
			Msg("Retrying transaction after conflict")
		timer := time.NewTimer(time.Duration(attempt) * 5 * time.Millisecond)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// classifyTxError wraps retryable backend errors in ErrTxConflict.
func classifyTxError(err error) error {
	if errors.Is(err, ErrTxConflict) {
		return err
	}
	if isTransactionConflict(err) {
		return fmt.Errorf("%w: %w", ErrTxConflict, err)
	}
	if isConnectionError(err) {
		logging.Error().Err(err).Msg("Database connection error during transaction")
	}
	return err
}

// UserByEmail reads a user inside the transaction.
func (t *Tx) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	return selectUser(ctx, t.tx, "email", email)
}

// UserByID reads a user inside the transaction.
func (t *Tx) UserByID(ctx context.Context, id string) (*models.User, error) {
	return selectUser(ctx, t.tx, "id", id)
}

// EventByTitle reads an event inside the transaction.
func (t *Tx) EventByTitle(ctx context.Context, title string) (*models.Event, error) {
	return selectEvent(ctx, t.tx, "title", title)
}

// EventByID reads an event inside the transaction.
func (t *Tx) EventByID(ctx context.Context, id string) (*models.Event, error) {
	return selectEvent(ctx, t.tx, "id", id)
}

// LockUser takes a write lock on the user row. Concurrent transactions that
// delete or lock the same user conflict with this one instead of committing
// alongside it. It returns NotFound when the row is gone.
func (t *Tx) LockUser(ctx context.Context, userID string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("lock", "users", time.Since(start), err) }()

	res, err := t.tx.ExecContext(ctx, `UPDATE users SET is_admin = is_admin WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to lock user: %w", err)
	}
	return expectRow(res, models.DetailUserNotFound)
}

// LockEvent takes a write lock on the event row.
func (t *Tx) LockEvent(ctx context.Context, eventID string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("lock", "events", time.Since(start), err) }()

	res, err := t.tx.ExecContext(ctx,
		`UPDATE events SET registrant_count = registrant_count WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("failed to lock event: %w", err)
	}
	return expectRow(res, models.DetailEventNotFound)
}

// ClaimSeat increments registrant_count if the event still has room.
// It returns models.CapacityExceeded when the guard matches no row.
func (t *Tx) ClaimSeat(ctx context.Context, eventID string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("claim_seat", "events", time.Since(start), err) }()

	res, err := t.tx.ExecContext(ctx,
		`UPDATE events SET registrant_count = registrant_count + 1
		 WHERE id = $1 AND registrant_count < capacity`, eventID)
	if err != nil {
		return fmt.Errorf("failed to claim seat: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.CapacityExceeded()
	}
	return nil
}

// ReleaseSeat decrements registrant_count, never below zero.
func (t *Tx) ReleaseSeat(ctx context.Context, eventID string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("release_seat", "events", time.Since(start), err) }()

	if _, err = t.tx.ExecContext(ctx,
		`UPDATE events SET registrant_count = registrant_count - 1
		 WHERE id = $1 AND registrant_count > 0`, eventID); err != nil {
		return fmt.Errorf("failed to release seat: %w", err)
	}
	return nil
}

// InsertRegistration adds the (event, user) pair. A duplicate pair is
// returned as models.ErrAlreadyRegistered.
func (t *Tx) InsertRegistration(ctx context.Context, eventID, userID string) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "registrations", time.Since(start), err) }()

	if _, err = t.tx.ExecContext(ctx,
		`INSERT INTO registrations (event_id, user_id, registered_at) VALUES ($1, $2, $3)`,
		eventID, userID, time.Now().UTC()); err != nil {
		if isUniqueViolation(err) {
			return conflictFrom(err, models.DetailAlreadyRegistered)
		}
		return fmt.Errorf("failed to insert registration: %w", err)
	}
	return nil
}

// DeleteRegistration removes every row for the pair and reports whether any
// existed.
func (t *Tx) DeleteRegistration(ctx context.Context, eventID, userID string) (removed bool, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("delete", "registrations", time.Since(start), err) }()

	res, err := t.tx.ExecContext(ctx,
		`DELETE FROM registrations WHERE event_id = $1 AND user_id = $2`, eventID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete registration: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

// IsRegistered reports whether the pair exists.
func (t *Tx) IsRegistered(ctx context.Context, eventID, userID string) (bool, error) {
	var count int
	if err := t.tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1 AND user_id = $2`,
		eventID, userID).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}
	return count > 0, nil
}

// RegistrantIDs returns the user ids registered for an event in
// registration order.
func (t *Tx) RegistrantIDs(ctx context.Context, eventID string) ([]string, error) {
	return selectIDs(ctx, t.tx,
		`SELECT user_id FROM registrations WHERE event_id = $1 ORDER BY seq`, eventID)
}

// UserEventIDs returns the event ids a user registered for in
// registration order.
func (t *Tx) UserEventIDs(ctx context.Context, userID string) ([]string, error) {
	return selectIDs(ctx, t.tx,
		`SELECT event_id FROM registrations WHERE user_id = $1 ORDER BY seq`, userID)
}

func selectIDs(ctx context.Context, q querier, query string, arg any) (ids []string, err error) {
	rows, err := q.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer closeWithLog(rows, "registration rows")

	ids = []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}
	return ids, nil
}
