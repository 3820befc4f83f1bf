// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package database

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tomtom215/connect4good/internal/models"
)

// mockCloser implements io.Closer for testing
type mockCloser struct {
	closed bool
	err    error
}

func (m *mockCloser) Close() error {
	m.closed = true
	return m.err
}

func TestCloseHelpers(t *testing.T) {
	t.Run("nil closer does not panic", func(t *testing.T) {
		closeWithLog(nil, "test")
		closeQuietly(nil)
	})

	t.Run("closeWithLog closes", func(t *testing.T) {
		closer := &mockCloser{err: errors.New("close failed: connection reset")}
		closeWithLog(closer, "database connection")
		if !closer.closed {
			t.Error("Expected closer to be closed")
		}
	})

	t.Run("closeQuietly closes even with error", func(t *testing.T) {
		closer := &mockCloser{err: errors.New("close failed")}
		closeQuietly(closer)
		if !closer.closed {
			t.Error("Expected closer to be closed even with error")
		}
	})

	t.Run("works with NopCloser", func(t *testing.T) {
		closeQuietly(io.NopCloser(strings.NewReader("test data")))
	})
}

func TestIsTransactionConflict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"duckdb transaction conflict", errors.New("TransactionContext Error: Transaction conflict: cannot update a table that has been altered"), true},
		{"duckdb conflict on update", errors.New("Conflict on update!"), true},
		{"duckdb write-write", fmt.Errorf("failed to claim seat: %w", errors.New("Catalog write-write conflict on alter")), true},
		{"pg serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"pg deadlock", fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "40P01"}), true},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"domain conflict", models.Conflict(models.DetailAlreadyRegistered), false},
		{"plain error", errors.New("syntax error"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isTransactionConflict(tt.err); got != tt.want {
				t.Errorf("isTransactionConflict(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"duckdb duplicate key", errors.New(`Constraint Error: Duplicate key "email: a@b.c" violates unique constraint.`), true},
		{"duckdb primary key", errors.New(`Constraint Error: PRIMARY KEY or UNIQUE constraint violated: duplicate key "e1, u1"`), true},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"pg other", &pgconn.PgError{Code: "23502"}, false},
		{"plain error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	t.Parallel()

	if !isConnectionError(errors.New("sql: database is closed")) {
		t.Error("expected database is closed to be a connection error")
	}
	if isConnectionError(errors.New("Constraint Error")) {
		t.Error("constraint error is not a connection error")
	}
	if isConnectionError(nil) {
		t.Error("nil is not a connection error")
	}
}

func TestClassifyTxError(t *testing.T) {
	t.Parallel()

	conflict := classifyTxError(&pgconn.PgError{Code: "40001"})
	if !errors.Is(conflict, ErrTxConflict) {
		t.Errorf("classifyTxError() = %v, want ErrTxConflict", conflict)
	}
	if !errors.Is(conflict, models.ErrConflict) {
		t.Errorf("ErrTxConflict should match the Conflict kind")
	}

	already := classifyTxError(ErrTxConflict)
	if already != ErrTxConflict {
		t.Errorf("classifyTxError(ErrTxConflict) rewrapped the sentinel: %v", already)
	}

	notFound := models.NotFound(models.DetailEventNotFound)
	if got := classifyTxError(notFound); got != error(notFound) {
		t.Errorf("classifyTxError() changed a domain error: %v", got)
	}
}
