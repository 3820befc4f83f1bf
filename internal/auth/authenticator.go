// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/models"
)

// UserLookup finds a user by email. A missing user is reported with an
// error matching models.ErrNotFound.
type UserLookup interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Authenticator performs the email/password credential check.
type Authenticator struct {
	users  UserLookup
	hasher Hasher
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(users UserLookup, hasher Hasher) *Authenticator {
	return &Authenticator{users: users, hasher: hasher}
}

// Login returns the user when password verifies against the stored digest.
// An unknown email fails with "Incorrect Email" and a wrong password with
// "Incorrect Password", both of kind InvalidCredentials.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*models.User, error) {
	start := time.Now()

	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			recordLogin(loginOutcomeUnknownEmail, start)
			return nil, models.InvalidCredentials(models.DetailIncorrectEmail)
		}
		recordLogin(loginOutcomeError, start)
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		recordLogin(loginOutcomeBadPassword, start)
		logging.Ctx(ctx).Debug().Str("user_id", user.ID).Msg("Login rejected: password mismatch")
		return nil, models.InvalidCredentials(models.DetailIncorrectPassword)
	}

	recordLogin(loginOutcomeSuccess, start)
	return user, nil
}
