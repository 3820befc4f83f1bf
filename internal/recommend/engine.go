// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/connect4good/internal/metrics"
	"github.com/tomtom215/connect4good/internal/models"
)

// Embedder turns text into an embedding vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// UserSource looks a user up by email.
type UserSource interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// EventSource lists the catalog in store order.
type EventSource interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
}

// Scored is an event with its similarity to the user.
type Scored struct {
	Event models.Event
	Score float64
}

// Engine ranks events for a user. It holds no state between calls and is
// safe for concurrent use.
type Engine struct {
	users    UserSource
	events   EventSource
	embedder Embedder
	config   Config
	logger   zerolog.Logger
}

// NewEngine creates a ranking engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(users UserSource, events EventSource, embedder Embedder, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		users:    users,
		events:   events,
		embedder: embedder,
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Recommend returns the titles of the TopK events most similar to the
// user's profile. A missing user is NotFound.
func (e *Engine) Recommend(ctx context.Context, email string) (titles []string, err error) {
	start := time.Now()
	defer func() { metrics.RecordRecommendation(time.Since(start), err) }()

	user, err := e.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	events, err := e.events.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	ranked, err := e.Rank(ctx, user, events)
	if err != nil {
		return nil, err
	}

	titles = make([]string, len(ranked))
	for i := range ranked {
		titles[i] = ranked[i].Event.Title
	}

	e.logger.Debug().
		Str("user_id", user.ID).
		Int("candidates", len(events)).
		Int("returned", len(titles)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")
	return titles, nil
}

// Rank scores events against the user and returns at most TopK of them,
// highest score first.
func (e *Engine) Rank(ctx context.Context, user *models.User, events []models.Event) ([]Scored, error) {
	if len(events) == 0 {
		return []Scored{}, nil
	}

	userVec, err := e.embed(ctx, user.ProfileText())
	if err != nil {
		return nil, err
	}
	eventVecs, err := e.embedAll(ctx, events)
	if err != nil {
		return nil, err
	}

	scored := make([]Scored, len(events))
	for i := range events {
		scored[i] = Scored{Event: events[i], Score: CosineSimilarity(userVec, eventVecs[i])}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > e.config.TopK {
		scored = scored[:e.config.TopK]
	}
	return scored, nil
}

// embedAll embeds every event description. Results keep input order.
func (e *Engine) embedAll(ctx context.Context, events []models.Event) ([][]float64, error) {
	vecs := make([][]float64, len(events))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.MaxConcurrency)
	for i := range events {
		g.Go(func() error {
			vec, err := e.embed(gctx, events[i].Description)
			if err != nil {
				return err
			}
			vecs[i] = vec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vecs, nil
}

func (e *Engine) embed(ctx context.Context, text string) ([]float64, error) {
	vec, err := e.embedder.Embed(ctx, text)
	if err == nil {
		return vec, nil
	}
	if errors.Is(err, models.ErrExternalService) {
		return nil, err
	}
	return nil, models.ExternalService("Embedding service unavailable", err)
}
