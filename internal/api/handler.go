// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package api

import (
	"context"
	"time"

	"github.com/tomtom215/connect4good/internal/accounts"
	"github.com/tomtom215/connect4good/internal/models"
)

// Accounts is the account management surface.
type Accounts interface {
	SignUp(ctx context.Context, in *models.UserInput) (*models.User, error)
	UpdateProfile(ctx context.Context, in *models.UserInput) error
	DeleteUser(ctx context.Context, email string) error
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, currentEmail, newEmail string) error
	Demote(ctx context.Context, currentEmail, newEmail string) error
	Profile(ctx context.Context, email string) (*accounts.ProfileView, error)
	AdminProfile(ctx context.Context, currentEmail, newEmail string) (*accounts.ProfileView, error)
}

// Catalog is the event catalog surface.
type Catalog interface {
	Create(ctx context.Context, adminEmail string, details *models.EventDetails) (*models.Event, error)
	Update(ctx context.Context, adminEmail string, details *models.EventDetails) error
	Delete(ctx context.Context, adminEmail, title string) error
	Get(ctx context.Context, title string) (*models.Event, error)
	ListTitles(ctx context.Context) ([]string, error)
}

// Registrations is the membership surface.
type Registrations interface {
	Register(ctx context.Context, email, title string) error
	Unregister(ctx context.Context, email, title string) error
	Kick(ctx context.Context, adminEmail, targetEmail, title string) error
	IsRegistered(ctx context.Context, email, title string) (bool, error)
	ListRegistrantsAs(ctx context.Context, actorEmail, title string) ([]models.User, error)
	ListUserEvents(ctx context.Context, email string) ([]models.Event, error)
}

// Authenticator checks plain credentials.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// Recommender returns the titles of the events closest to a user profile.
type Recommender interface {
	Recommend(ctx context.Context, email string) ([]string, error)
}

// TaskGenerator suggests personalized tasks for a user at an event.
type TaskGenerator interface {
	Generate(ctx context.Context, userEmail, eventTitle string) (string, error)
}

// Store is the slice of the database the handlers use directly.
type Store interface {
	Ping(ctx context.Context) error
	Reset(ctx context.Context) error
}

// Deps bundles the services behind the handlers.
type Deps struct {
	Accounts      Accounts
	Catalog       Catalog
	Registrations Registrations
	Auth          Authenticator
	Recommender   Recommender
	Tasks         TaskGenerator
	Store         Store
}

// HandlerConfig holds the HTTP-level settings of the handlers.
type HandlerConfig struct {
	// AllowReset mounts POST /reset_db.
	AllowReset bool

	// MLTimeout bounds requests that call the ML service. Zero disables
	// the extra deadline.
	MLTimeout time.Duration
}

// Handler contains dependencies for API handlers.
type Handler struct {
	Deps
	config    HandlerConfig
	startTime time.Time
}

// NewHandler creates the handler set.
func NewHandler(deps Deps, cfg HandlerConfig) *Handler {
	return &Handler{
		Deps:      deps,
		config:    cfg,
		startTime: time.Now(),
	}
}

// mlContext applies the ML timeout to ctx.
func (h *Handler) mlContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.config.MLTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.config.MLTimeout)
}
