// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package database

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/connect4good/internal/models"
)

func TestTx_SeatAndMembership(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	event := mustCreateEvent(t, db, "Beach Cleanup", 2)
	users := []*models.User{
		mustCreateUser(t, db, "u1@example.com"),
		mustCreateUser(t, db, "u2@example.com"),
		mustCreateUser(t, db, "u3@example.com"),
	}

	for _, u := range users[:2] {
		if err := register(ctx, db, event.ID, u.ID); err != nil {
			t.Fatalf("register(%s) error = %v", u.Email, err)
		}
	}

	if err := register(ctx, db, event.ID, users[2].ID); !errors.Is(err, models.ErrCapacityExceeded) {
		t.Errorf("register() on full event error = %v, want CapacityExceeded", err)
	}
	assertCount(t, db, "Beach Cleanup", 2)
	assertRegistrants(t, db, event.ID, []string{users[0].ID, users[1].ID})

	t.Run("duplicate pair rolls back the claimed seat", func(t *testing.T) {
		err := db.InTx(ctx, func(tx *Tx) error {
			if err := tx.ReleaseSeat(ctx, event.ID); err != nil {
				return err
			}
			if err := tx.ClaimSeat(ctx, event.ID); err != nil {
				return err
			}
			return tx.InsertRegistration(ctx, event.ID, users[0].ID)
		})
		if !errors.Is(err, models.ErrAlreadyRegistered) {
			t.Errorf("InsertRegistration() duplicate error = %v, want ErrAlreadyRegistered", err)
		}
		assertCount(t, db, "Beach Cleanup", 2)
	})

	t.Run("delete and release", func(t *testing.T) {
		err := db.InTx(ctx, func(tx *Tx) error {
			removed, err := tx.DeleteRegistration(ctx, event.ID, users[0].ID)
			if err != nil {
				return err
			}
			if !removed {
				t.Error("DeleteRegistration() removed nothing")
			}
			if err := tx.ReleaseSeat(ctx, event.ID); err != nil {
				return err
			}

			again, err := tx.DeleteRegistration(ctx, event.ID, users[0].ID)
			if err != nil {
				return err
			}
			if again {
				t.Error("second DeleteRegistration() reported a removal")
			}

			registered, err := tx.IsRegistered(ctx, event.ID, users[1].ID)
			if err != nil {
				return err
			}
			if !registered {
				t.Error("IsRegistered() = false for a remaining registrant")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("InTx() error = %v", err)
		}
		assertCount(t, db, "Beach Cleanup", 1)
		assertRegistrants(t, db, event.ID, []string{users[1].ID})
	})

	t.Run("release never goes below zero", func(t *testing.T) {
		empty := mustCreateEvent(t, db, "Empty", 1)
		err := db.InTx(ctx, func(tx *Tx) error {
			return tx.ReleaseSeat(ctx, empty.ID)
		})
		if err != nil {
			t.Fatalf("ReleaseSeat() error = %v", err)
		}
		assertCount(t, db, "Empty", 0)
	})
}

func TestInTx_RollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	event := mustCreateEvent(t, db, "Rollback", 5)
	user := mustCreateUser(t, db, "rb@example.com")
	boom := errors.New("boom")

	err := db.InTx(ctx, func(tx *Tx) error {
		if err := tx.ClaimSeat(ctx, event.ID); err != nil {
			return err
		}
		if err := tx.InsertRegistration(ctx, event.ID, user.ID); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("InTx() error = %v, want boom", err)
	}

	assertCount(t, db, "Rollback", 0)
	assertRegistrants(t, db, event.ID, []string{})
}

// TestConcurrentRegistration_NeverOverbooks registers more users than seats
// from parallel goroutines, retrying each attempt on transaction conflicts.
func TestConcurrentRegistration_NeverOverbooks(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	const (
		capacity    = 3
		numUsers    = 10
		maxAttempts = 200
	)

	event := mustCreateEvent(t, db, "Popular", capacity)
	users := make([]*models.User, numUsers)
	for i := range users {
		users[i] = mustCreateUser(t, db, "racer"+string(rune('a'+i))+"@example.com")
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		full      int
		failures  []error
	)

	for _, user := range users {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()

			var err error
			for attempt := 0; attempt < maxAttempts; attempt++ {
				err = register(ctx, db, event.ID, userID)
				if !errors.Is(err, ErrTxConflict) {
					break
				}
				time.Sleep(time.Duration(1+rand.IntN(5)) * time.Millisecond)
			}

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, models.ErrCapacityExceeded):
				full++
			default:
				failures = append(failures, err)
			}
		}(user.ID)
	}
	wg.Wait()

	for _, err := range failures {
		t.Errorf("unexpected registration error: %v", err)
	}
	if successes != capacity {
		t.Errorf("successes = %d, want %d", successes, capacity)
	}
	if len(failures) == 0 && full != numUsers-capacity {
		t.Errorf("capacity rejections = %d, want %d", full, numUsers-capacity)
	}

	assertCount(t, db, "Popular", capacity)

	var rows int
	if err := db.Conn().QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, event.ID).Scan(&rows); err != nil {
		t.Fatalf("count registrations: %v", err)
	}
	if rows != capacity {
		t.Errorf("registration rows = %d, want %d", rows, capacity)
	}
}

// TestLockUser_DeleteUserConflicts runs DeleteUser on another connection
// while a transaction that already read the user has not written yet. The
// later LockUser must abort instead of committing a registration for a user
// that no longer exists.
func TestLockUser_DeleteUserConflicts(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	event := mustCreateEvent(t, db, "Food Drive", 1)
	user := mustCreateUser(t, db, "gone@example.com")

	err := db.InTx(ctx, func(tx *Tx) error {
		if _, err := tx.UserByEmail(ctx, user.Email); err != nil {
			return err
		}
		if _, err := db.DeleteUser(ctx, user.Email); err != nil {
			return fmt.Errorf("DeleteUser: %w", err)
		}
		if err := tx.LockUser(ctx, user.ID); err != nil {
			return err
		}
		if err := tx.ClaimSeat(ctx, event.ID); err != nil {
			return err
		}
		return tx.InsertRegistration(ctx, event.ID, user.ID)
	})
	if !errors.Is(err, ErrTxConflict) && !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("InTx() error = %v, want ErrTxConflict or NotFound", err)
	}

	assertCount(t, db, "Food Drive", 0)
	assertRegistrants(t, db, event.ID, []string{})
}

func TestLockUser_MissingRow(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	err := db.InTx(ctx, func(tx *Tx) error {
		return tx.LockUser(ctx, "no-such-id")
	})
	if !errors.Is(err, models.NotFound(models.DetailUserNotFound)) {
		t.Errorf("LockUser() error = %v, want User not found", err)
	}

	err = db.InTx(ctx, func(tx *Tx) error {
		return tx.LockEvent(ctx, "no-such-id")
	})
	if !errors.Is(err, models.NotFound(models.DetailEventNotFound)) {
		t.Errorf("LockEvent() error = %v, want Event not found", err)
	}
}

// TestUpdateEvent_ConflictIsClientError holds an uncommitted seat claim
// while UpdateEvent writes the same row. After its retries UpdateEvent
// reports a Conflict rather than an unclassified error.
func TestUpdateEvent_ConflictIsClientError(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	event := mustCreateEvent(t, db, "Park Cleanup", 5)
	rollback := errors.New("rollback")

	var updateErr error
	err := db.InTx(ctx, func(tx *Tx) error {
		if err := tx.ClaimSeat(ctx, event.ID); err != nil {
			return err
		}
		details := testEvent("Park Cleanup", 10).EventDetails
		updateErr = db.UpdateEvent(ctx, &details)
		return rollback
	})
	if !errors.Is(err, rollback) {
		t.Fatalf("InTx() error = %v, want rollback", err)
	}

	if !errors.Is(updateErr, ErrTxConflict) {
		t.Fatalf("UpdateEvent() error = %v, want ErrTxConflict", updateErr)
	}
	var merr *models.Error
	if !errors.As(updateErr, &merr) || merr.Kind != models.KindConflict {
		t.Errorf("UpdateEvent() error = %v, want KindConflict", updateErr)
	}

	// Once the competing transaction is gone the update goes through.
	details := testEvent("Park Cleanup", 10).EventDetails
	if err := db.UpdateEvent(ctx, &details); err != nil {
		t.Fatalf("UpdateEvent() after rollback error = %v", err)
	}
	assertCount(t, db, "Park Cleanup", 0)
}
