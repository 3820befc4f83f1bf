// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package eventprocessor

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/metrics"
	"github.com/tomtom215/connect4good/internal/models"
)

// AuditHandlerName is the name of the audit consumer.
const AuditHandlerName = "membership-audit"

// AuditStore persists membership events.
type AuditStore interface {
	InsertMembershipAudit(ctx context.Context, ev *models.MembershipEvent) error
}

// Router wraps the Watermill router running the audit handler.
type Router struct {
	router  *message.Router
	logger  watermill.LoggerAdapter
	running atomic.Bool
}

// NewRouter creates a router with the membership-audit handler subscribed
// to cfg.Topic.
//
// Middleware, outer to inner:
//  1. dropExhausted - acknowledge messages that failed every retry
//  2. Recoverer - convert handler panics to errors
//  3. Retry - exponential backoff
func NewRouter(cfg *Config, subscriber message.Subscriber, store AuditStore, logger watermill.LoggerAdapter) (*Router, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	wmRouter, err := message.NewRouter(message.RouterConfig{
		CloseTimeout: cfg.CloseTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("create watermill router: %w", err)
	}

	retry := middleware.Retry{
		MaxRetries:      cfg.RetryMaxRetries,
		InitialInterval: cfg.RetryInitialInterval,
		MaxInterval:     cfg.RetryMaxInterval,
		Multiplier:      cfg.RetryMultiplier,
		Logger:          logger,
	}
	wmRouter.AddMiddleware(dropExhausted, middleware.Recoverer, retry.Middleware)

	wmRouter.AddConsumerHandler(AuditHandlerName, cfg.Topic, subscriber, auditHandler(store))

	return &Router{router: wmRouter, logger: logger}, nil
}

func auditHandler(store AuditStore) message.NoPublishHandlerFunc {
	return func(msg *message.Message) error {
		ev, err := DecodeMessage(msg)
		if err != nil {
			return err
		}
		if err := store.InsertMembershipAudit(msg.Context(), ev); err != nil {
			return fmt.Errorf("insert membership audit: %w", err)
		}
		metrics.RecordMembershipAudited(ev.Action)
		return nil
	}
}

// dropExhausted logs and acknowledges a message whose handler still fails
// after the retry middleware gave up.
func dropExhausted(h message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		out, err := h(msg)
		if err != nil {
			metrics.RecordMembershipAuditFailure()
			logging.Error().Err(err).
				Str("message_uuid", msg.UUID).
				Str("type", msg.Metadata.Get(metadataType)).
				Msg("Dropping membership event after retries")
			return nil, nil
		}
		return out, nil
	}
}

// Run starts the router and blocks until ctx is cancelled or Close is
// called.
func (r *Router) Run(ctx context.Context) error {
	r.running.Store(true)
	defer r.running.Store(false)
	return r.router.Run(ctx)
}

// Running returns a channel that closes once handlers are subscribed.
func (r *Router) Running() <-chan struct{} {
	return r.router.Running()
}

// IsRunning reports whether the router is processing messages.
func (r *Router) IsRunning() bool {
	return r.running.Load()
}

// Close stops the router, waiting up to CloseTimeout for in-flight
// messages.
func (r *Router) Close() error {
	return r.router.Close()
}
