// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package registration

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tomtom215/connect4good/internal/authz"
	"github.com/tomtom215/connect4good/internal/database"
	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/metrics"
	"github.com/tomtom215/connect4good/internal/models"
)

// Store is the transaction boundary the engine runs against.
type Store interface {
	InTx(ctx context.Context, fn func(tx *database.Tx) error) error
}

// Authorizer resolves and checks the acting user of admin-gated calls.
type Authorizer interface {
	Authorize(ctx context.Context, email string, perm authz.Permission) (*models.User, error)
}

// Notifier receives membership changes after they commit.
type Notifier interface {
	PublishMembership(ctx context.Context, ev *models.MembershipEvent)
}

type nopNotifier struct{}

func (nopNotifier) PublishMembership(context.Context, *models.MembershipEvent) {}

// Config controls the conflict retry.
type Config struct {
	MaxAttempts  int
	RetryBackoff time.Duration
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier sets the receiver of committed membership changes.
func WithNotifier(n Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

// Engine implements register, unregister and kick against a Store.
type Engine struct {
	store    Store
	guard    Authorizer
	notifier Notifier
	cfg      Config
}

// NewEngine creates an Engine. A MaxAttempts below 1 is treated as 1.
func NewEngine(store Store, guard Authorizer, cfg Config, opts ...Option) *Engine {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	e := &Engine{
		store:    store,
		guard:    guard,
		notifier: nopNotifier{},
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Register adds the user to the event. Checks run in order: user exists,
// event exists, event has room, user not already registered.
func (e *Engine) Register(ctx context.Context, email, title string) error {
	var committed models.MembershipEvent

	err := e.inTx(ctx, "register", func(tx *database.Tx) error {
		user, err := tx.UserByEmail(ctx, email)
		if err != nil {
			return err
		}
		event, err := tx.EventByTitle(ctx, title)
		if err != nil {
			return err
		}
		if event.IsFull() {
			return models.CapacityExceeded()
		}

		registered, err := tx.IsRegistered(ctx, event.ID, user.ID)
		if err != nil {
			return err
		}
		if registered {
			return models.Conflict(models.DetailAlreadyRegistered)
		}

		// Locking the user makes a concurrent DeleteUser conflict with
		// this transaction rather than leave a registration behind.
		if err := tx.LockUser(ctx, user.ID); err != nil {
			return err
		}
		if err := tx.ClaimSeat(ctx, event.ID); err != nil {
			return err
		}
		if err := tx.InsertRegistration(ctx, event.ID, user.ID); err != nil {
			return err
		}

		committed = models.NewMembershipEvent(models.MembershipRegistered, user, event)
		return nil
	})
	metrics.RecordRegistration("register", err)
	if err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("event_id", committed.EventID).
		Str("user_id", committed.UserID).
		Msg("User registered for event")
	e.notifier.PublishMembership(ctx, &committed)
	return nil
}

// Unregister removes the user from the event.
func (e *Engine) Unregister(ctx context.Context, email, title string) error {
	committed, err := e.remove(ctx, "unregister", email, title, removal{
		action:        models.MembershipUnregistered,
		notRegistered: models.DetailNotRegistered,
	})
	if err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("event_id", committed.EventID).
		Str("user_id", committed.UserID).
		Msg("User unregistered from event")
	e.notifier.PublishMembership(ctx, committed)
	return nil
}

// Kick removes the target user from the event on behalf of an admin.
func (e *Engine) Kick(ctx context.Context, adminEmail, targetEmail, title string) error {
	admin, err := e.guard.Authorize(ctx, adminEmail, authz.UserKick)
	if err != nil {
		metrics.RecordRegistration("kick", err)
		return err
	}

	committed, err := e.remove(ctx, "kick", targetEmail, title, removal{
		action:        models.MembershipKicked,
		userMissing:   models.DetailTargetNotFound,
		notRegistered: models.DetailTargetNotRegistered,
	})
	if err != nil {
		return err
	}
	committed.ActorEmail = admin.Email

	logging.Ctx(ctx).Info().
		Str("event_id", committed.EventID).
		Str("user_id", committed.UserID).
		Str("admin_id", admin.ID).
		Msg("User kicked from event")
	e.notifier.PublishMembership(ctx, committed)
	return nil
}

// removal describes the wording of an unregister-style call.
type removal struct {
	action        models.MembershipAction
	userMissing   string // empty keeps "User not found"
	notRegistered string
}

func (e *Engine) remove(ctx context.Context, operation, email, title string, r removal) (*models.MembershipEvent, error) {
	var committed models.MembershipEvent

	err := e.inTx(ctx, operation, func(tx *database.Tx) error {
		user, err := tx.UserByEmail(ctx, email)
		if err != nil {
			if r.userMissing != "" && errors.Is(err, models.ErrNotFound) {
				return models.NotFound(r.userMissing)
			}
			return err
		}
		event, err := tx.EventByTitle(ctx, title)
		if err != nil {
			return err
		}

		removed, err := tx.DeleteRegistration(ctx, event.ID, user.ID)
		if err != nil {
			return err
		}
		if !removed {
			return models.NotRegistered(r.notRegistered)
		}
		if err := tx.ReleaseSeat(ctx, event.ID); err != nil {
			return err
		}

		committed = models.NewMembershipEvent(r.action, user, event)
		return nil
	})
	metrics.RecordRegistration(operation, err)
	if err != nil {
		return nil, err
	}
	return &committed, nil
}

// inTx runs fn in a transaction and reruns it from the start on
// serialization conflicts.
func (e *Engine) inTx(ctx context.Context, operation string, fn func(tx *database.Tx) error) error {
	for attempt := 1; ; attempt++ {
		err := e.store.InTx(ctx, fn)
		if !errors.Is(err, database.ErrTxConflict) {
			return err
		}

		if attempt >= e.cfg.MaxAttempts {
			logging.Ctx(ctx).Warn().
				Err(err).
				Str("operation", operation).
				Int("attempts", attempt).
				Msg("Registration retries exhausted")
			return &models.Error{Kind: models.KindConflict, Detail: models.DetailRegistrationBusy, Err: err}
		}

		metrics.RecordRegistrationRetry(operation)
		if err := sleepCtx(ctx, e.backoff(attempt)); err != nil {
			return fmt.Errorf("%s retry: %w", operation, err)
		}
	}
}

// backoff grows linearly with the attempt number plus up to 50% jitter.
func (e *Engine) backoff(attempt int) time.Duration {
	base := e.cfg.RetryBackoff * time.Duration(attempt)
	if base <= 0 {
		return 0
	}
	return base + rand.N(base/2+1)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
