// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package registration

import (
	"context"
	"errors"

	"github.com/tomtom215/connect4good/internal/authz"
	"github.com/tomtom215/connect4good/internal/database"
	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/models"
)

// IsRegistered reports whether the user is registered for the event.
func (e *Engine) IsRegistered(ctx context.Context, email, title string) (bool, error) {
	var registered bool
	err := e.store.InTx(ctx, func(tx *database.Tx) error {
		user, err := tx.UserByEmail(ctx, email)
		if err != nil {
			return err
		}
		event, err := tx.EventByTitle(ctx, title)
		if err != nil {
			return err
		}
		registered, err = tx.IsRegistered(ctx, event.ID, user.ID)
		return err
	})
	return registered, err
}

// ListRegistrants returns the event's registrants in registration order.
// Registrations whose user no longer exists are skipped and logged.
func (e *Engine) ListRegistrants(ctx context.Context, title string) ([]models.User, error) {
	var users []models.User
	err := e.store.InTx(ctx, func(tx *database.Tx) error {
		users = nil

		event, err := tx.EventByTitle(ctx, title)
		if err != nil {
			return err
		}
		ids, err := tx.RegistrantIDs(ctx, event.ID)
		if err != nil {
			return err
		}

		users = make([]models.User, 0, len(ids))
		for _, id := range ids {
			user, err := tx.UserByID(ctx, id)
			if errors.Is(err, models.ErrNotFound) {
				logging.Ctx(ctx).Warn().
					Str("event_id", event.ID).
					Str("user_id", id).
					Msg("Data integrity: registration references missing user")
				continue
			}
			if err != nil {
				return err
			}
			users = append(users, *user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListRegistrantsAs is ListRegistrants gated on the acting user being an admin.
func (e *Engine) ListRegistrantsAs(ctx context.Context, actorEmail, title string) ([]models.User, error) {
	if _, err := e.guard.Authorize(ctx, actorEmail, authz.EventRegistrants); err != nil {
		return nil, err
	}
	return e.ListRegistrants(ctx, title)
}

// ListUserEvents returns the events the user registered for, in
// registration order. Registrations whose event no longer exists are
// skipped and logged.
func (e *Engine) ListUserEvents(ctx context.Context, email string) ([]models.Event, error) {
	var events []models.Event
	err := e.store.InTx(ctx, func(tx *database.Tx) error {
		events = nil

		user, err := tx.UserByEmail(ctx, email)
		if err != nil {
			return err
		}
		ids, err := tx.UserEventIDs(ctx, user.ID)
		if err != nil {
			return err
		}

		events = make([]models.Event, 0, len(ids))
		for _, id := range ids {
			event, err := tx.EventByID(ctx, id)
			if errors.Is(err, models.ErrNotFound) {
				logging.Ctx(ctx).Warn().
					Str("user_id", user.ID).
					Str("event_id", id).
					Msg("Data integrity: registration references missing event")
				continue
			}
			if err != nil {
				return err
			}
			events = append(events, *event)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}
