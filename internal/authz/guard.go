// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package authz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/models"
)

// wording is the pair of detail messages reported by a guarded operation.
type wording struct {
	missing string
	denied  string
}

var (
	actingUser  = wording{missing: models.DetailUserNotFound, denied: models.DetailNotAdmin}
	currentUser = wording{missing: models.DetailAdminNotFound, denied: models.DetailCurrentNotAdmin}
)

// Permission is an object/action pair checked against the policy.
type Permission struct {
	Object string
	Action string
	words  wording
}

// String returns "object:action".
func (p Permission) String() string {
	return p.Object + ":" + p.Action
}

// MissingDetail is the NotFound detail reported when the acting user is absent.
func (p Permission) MissingDetail() string {
	return p.words.missing
}

// Admin-gated permissions.
var (
	EventCreate      = Permission{Object: "event", Action: "create", words: actingUser}
	EventUpdate      = Permission{Object: "event", Action: "update", words: actingUser}
	EventDelete      = Permission{Object: "event", Action: "delete", words: actingUser}
	EventRegistrants = Permission{Object: "event", Action: "registrants", words: actingUser}
	UserPromote      = Permission{Object: "user", Action: "promote", words: currentUser}
	UserDemote       = Permission{Object: "user", Action: "demote", words: currentUser}
	UserView         = Permission{Object: "user", Action: "view", words: currentUser}
	UserKick         = Permission{Object: "user", Action: "kick", words: currentUser}
)

// UserLookup finds a user by email. A missing user is reported with an
// error matching models.ErrNotFound.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Guard enforces admin-gated operations.
type Guard struct {
	enforcer *Enforcer
	users    UserLookup
}

// NewGuard creates a Guard.
func NewGuard(enforcer *Enforcer, users UserLookup) *Guard {
	return &Guard{enforcer: enforcer, users: users}
}

// Authorize loads the acting user and checks perm. A missing user is
// NotFound and a user without the permission is NotAuthorized, both with
// the permission's wording.
func (g *Guard) Authorize(ctx context.Context, email string, perm Permission) (*models.User, error) {
	user, err := g.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.NotFound(perm.MissingDetail())
		}
		return nil, fmt.Errorf("lookup acting user: %w", err)
	}
	if err := g.Check(ctx, user, perm); err != nil {
		return nil, err
	}
	return user, nil
}

// Check tests perm for an already-loaded user.
func (g *Guard) Check(ctx context.Context, user *models.User, perm Permission) error {
	start := time.Now()
	role := user.Role()

	allowed, err := g.enforcer.Enforce(role, perm.Object, perm.Action)
	RecordAuthzDecision(role, perm.String(), allowed && err == nil, time.Since(start))
	if err != nil {
		return fmt.Errorf("authorize %s: %w", perm, err)
	}
	if !allowed {
		logging.Ctx(ctx).Info().
			Str("user_id", user.ID).
			Str("role", role).
			Str("permission", perm.String()).
			Msg("Admin operation denied")
		return models.NotAuthorized(perm.words.denied)
	}
	return nil
}
