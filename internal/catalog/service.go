// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/connect4good/internal/authz"
	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/models"
)

// Store is the event subset of the database.
type Store interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	GetEventByTitle(ctx context.Context, title string) (*models.Event, error)
	ListEvents(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, details *models.EventDetails) error
	DeleteEvent(ctx context.Context, title string) ([]models.MembershipEvent, error)
}

// Authorizer checks that the acting user may perform an admin operation.
type Authorizer interface {
	Authorize(ctx context.Context, email string, perm authz.Permission) (*models.User, error)
}

// Notifier receives cascaded membership changes after a delete commits.
type Notifier interface {
	PublishMembership(ctx context.Context, ev *models.MembershipEvent)
}

type nopNotifier struct{}

func (nopNotifier) PublishMembership(context.Context, *models.MembershipEvent) {}

// Service implements event catalog operations.
type Service struct {
	store    Store
	guard    Authorizer
	notifier Notifier
}

// NewService creates a Service. A nil notifier discards membership events.
func NewService(store Store, guard Authorizer, notifier Notifier) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{store: store, guard: guard, notifier: notifier}
}

// Create adds an event on behalf of an admin. Checks run in order: acting
// admin, title not taken, capacity positive.
func (s *Service) Create(ctx context.Context, adminEmail string, details *models.EventDetails) (*models.Event, error) {
	admin, err := s.guard.Authorize(ctx, adminEmail, authz.EventCreate)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.GetEventByTitle(ctx, details.Title); err == nil {
		return nil, models.Conflict(models.DetailTitleTaken)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("lookup event: %w", err)
	}
	if err := details.Validate(); err != nil {
		return nil, err
	}

	event := &models.Event{EventDetails: *details}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().
		Str("admin_id", admin.ID).
		Str("event_id", event.ID).
		Int("capacity", event.Capacity).
		Msg("Event created")
	return event, nil
}

// Update replaces every field of the event named by details.Title. Checks
// run in order: acting admin, event exists, capacity positive, capacity not
// below the current registrant count.
func (s *Service) Update(ctx context.Context, adminEmail string, details *models.EventDetails) error {
	admin, err := s.guard.Authorize(ctx, adminEmail, authz.EventUpdate)
	if err != nil {
		return err
	}

	event, err := s.store.GetEventByTitle(ctx, details.Title)
	if err != nil {
		return err
	}
	if err := details.Validate(); err != nil {
		return err
	}
	if err := s.store.UpdateEvent(ctx, details); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("admin_id", admin.ID).
		Str("event_id", event.ID).
		Msg("Event updated")
	return nil
}

// Delete removes the event and its registrations.
func (s *Service) Delete(ctx context.Context, adminEmail, title string) error {
	admin, err := s.guard.Authorize(ctx, adminEmail, authz.EventDelete)
	if err != nil {
		return err
	}

	cascaded, err := s.store.DeleteEvent(ctx, title)
	if err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("admin_id", admin.ID).
		Int("registrations_removed", len(cascaded)).
		Msg("Event deleted")
	for i := range cascaded {
		s.notifier.PublishMembership(ctx, &cascaded[i])
	}
	return nil
}

// Get returns the event with the given title.
func (s *Service) Get(ctx context.Context, title string) (*models.Event, error) {
	return s.store.GetEventByTitle(ctx, title)
}

// ListTitles returns every event title in creation order.
func (s *Service) ListTitles(ctx context.Context) ([]string, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(events))
	for i := range events {
		titles[i] = events[i].Title
	}
	return titles, nil
}
