// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package accounts

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/connect4good/internal/auth"
	"github.com/tomtom215/connect4good/internal/authz"
	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/models"
)

// Store is the subset of the database used by the service.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, email string) ([]models.MembershipEvent, error)
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
}

// EventLister returns a user's events in registration order.
type EventLister interface {
	ListUserEvents(ctx context.Context, email string) ([]models.Event, error)
}

// Guard checks admin permissions.
type Guard interface {
	Authorize(ctx context.Context, email string, perm authz.Permission) (*models.User, error)
	Check(ctx context.Context, user *models.User, perm authz.Permission) error
}

// Notifier receives cascaded membership changes after a delete commits.
type Notifier interface {
	PublishMembership(ctx context.Context, ev *models.MembershipEvent)
}

type nopNotifier struct{}

func (nopNotifier) PublishMembership(context.Context, *models.MembershipEvent) {}

// ProfileView is a user profile with the titles of registered events.
type ProfileView struct {
	models.User
	EventsRegistered []string `json:"events_registered"`
}

// Service implements account operations.
type Service struct {
	store    Store
	events   EventLister
	guard    Guard
	hasher   auth.Hasher
	notifier Notifier
}

// NewService creates a Service. A nil notifier discards membership events.
func NewService(store Store, events EventLister, guard Guard, hasher auth.Hasher, notifier Notifier) *Service {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Service{
		store:    store,
		events:   events,
		guard:    guard,
		hasher:   hasher,
		notifier: notifier,
	}
}

// SignUp creates a user from the input. A taken email is reported before
// any profile validation.
func (s *Service) SignUp(ctx context.Context, in *models.UserInput) (*models.User, error) {
	if _, err := s.store.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, models.Conflict(models.DetailEmailTaken)
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user, err := s.buildUser(in)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().Str("user_id", user.ID).Msg("User signed up")
	return user, nil
}

// UpdateProfile replaces every profile field and the password of an
// existing user. The email identifies the user and is not changed.
func (s *Service) UpdateProfile(ctx context.Context, in *models.UserInput) error {
	existing, err := s.store.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return err
	}

	user, err := s.buildUser(in)
	if err != nil {
		return err
	}
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().Str("user_id", existing.ID).Msg("User profile updated")
	return nil
}

func (s *Service) buildUser(in *models.UserInput) (*models.User, error) {
	profile, err := in.Profile()
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &models.User{
		Email:        in.Email,
		PasswordHash: hash,
		Profile:      profile,
	}, nil
}

// DeleteUser removes the user and every registration the user holds.
func (s *Service) DeleteUser(ctx context.Context, email string) error {
	cascaded, err := s.store.DeleteUser(ctx, email)
	if err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Int("registrations_removed", len(cascaded)).
		Msg("User deleted")
	for i := range cascaded {
		s.notifier.PublishMembership(ctx, &cascaded[i])
	}
	return nil
}

// IsAdmin reports the admin flag of the user.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

// Promote grants the admin flag to the new user on behalf of the current user.
func (s *Service) Promote(ctx context.Context, currentEmail, newEmail string) error {
	return s.setAdmin(ctx, currentEmail, newEmail, authz.UserPromote, true)
}

// Demote clears the admin flag of the new user on behalf of the current user.
func (s *Service) Demote(ctx context.Context, currentEmail, newEmail string) error {
	return s.setAdmin(ctx, currentEmail, newEmail, authz.UserDemote, false)
}

// setAdmin checks, in order: current user exists, new user exists, current
// user holds perm.
func (s *Service) setAdmin(ctx context.Context, currentEmail, newEmail string, perm authz.Permission, isAdmin bool) error {
	current, err := s.store.GetUserByEmail(ctx, currentEmail)
	if err != nil {
		return notFoundAs(err, models.DetailAdminNotFound)
	}
	target, err := s.store.GetUserByEmail(ctx, newEmail)
	if err != nil {
		return notFoundAs(err, models.DetailTargetNotFound)
	}
	if err := s.guard.Check(ctx, current, perm); err != nil {
		return err
	}

	if err := s.store.SetAdmin(ctx, target.Email, isAdmin); err != nil {
		return notFoundAs(err, models.DetailTargetNotFound)
	}

	logging.Ctx(ctx).Info().
		Str("admin_id", current.ID).
		Str("user_id", target.ID).
		Bool("is_admin", isAdmin).
		Msg("Admin flag changed")
	return nil
}

// Profile returns the user's own profile view.
func (s *Service) Profile(ctx context.Context, email string) (*ProfileView, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, user)
}

// AdminProfile returns the profile of the new user to an admin. Checks run
// in order: current user exists, current user holds user:view, new user
// exists.
func (s *Service) AdminProfile(ctx context.Context, currentEmail, newEmail string) (*ProfileView, error) {
	if _, err := s.guard.Authorize(ctx, currentEmail, authz.UserView); err != nil {
		return nil, err
	}
	user, err := s.store.GetUserByEmail(ctx, newEmail)
	if err != nil {
		return nil, notFoundAs(err, models.DetailTargetNotFound)
	}
	return s.view(ctx, user)
}

func (s *Service) view(ctx context.Context, user *models.User) (*ProfileView, error) {
	events, err := s.events.ListUserEvents(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	titles := make([]string, len(events))
	for i := range events {
		titles[i] = events[i].Title
	}
	return &ProfileView{User: *user, EventsRegistered: titles}, nil
}

// notFoundAs rewords a NotFound error and passes other errors through.
func notFoundAs(err error, detail string) error {
	if errors.Is(err, models.ErrNotFound) {
		return models.NotFound(detail)
	}
	return err
}
