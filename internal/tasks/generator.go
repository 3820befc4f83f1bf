// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package tasks

import (
	"context"
	"errors"

	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/models"
)

// Completer generates text for a prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Store looks up the event and the user.
type Store interface {
	GetEventByTitle(ctx context.Context, title string) (*models.Event, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// Generator produces personalized task suggestions.
type Generator struct {
	store     Store
	completer Completer
}

// NewGenerator creates a Generator.
func NewGenerator(store Store, completer Completer) *Generator {
	return &Generator{store: store, completer: completer}
}

// Generate returns suggested tasks for the user at the event. The event is
// looked up before the user.
func (g *Generator) Generate(ctx context.Context, userEmail, eventTitle string) (string, error) {
	event, err := g.store.GetEventByTitle(ctx, eventTitle)
	if err != nil {
		return "", err
	}
	user, err := g.store.GetUserByEmail(ctx, userEmail)
	if err != nil {
		return "", err
	}

	text, err := g.completer.Complete(ctx, BuildPrompt(event, user))
	if err != nil {
		if errors.Is(err, models.ErrExternalService) {
			return "", err
		}
		return "", models.ExternalService("Task generation service unavailable", err)
	}

	logging.Ctx(ctx).Debug().
		Str("event_id", event.ID).
		Str("user_id", user.ID).
		Int("response_len", len(text)).
		Msg("Tasks generated")
	return text, nil
}
