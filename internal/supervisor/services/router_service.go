// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/connect4good/internal/logging"
)

// MessageRouter is a Watermill router that runs until its context ends.
type MessageRouter interface {
	Run(ctx context.Context) error
}

// RouterService runs the membership audit router.
type RouterService struct {
	router MessageRouter
	name   string
}

// NewRouterService wraps router.
func NewRouterService(router MessageRouter) *RouterService {
	return &RouterService{router: router, name: "membership-router"}
}

// Serve implements suture.Service. A Watermill router cannot be run twice
// and closes its subscriber when it stops, so a failure is not restarted.
func (r *RouterService) Serve(ctx context.Context) error {
	err := r.router.Run(ctx)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		logging.Error().Err(err).Str("service", r.name).Msg("Message router stopped")
		return fmt.Errorf("%w: %w", suture.ErrDoNotRestart, err)
	}
	logging.Warn().Str("service", r.name).Msg("Message router exited without error")
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer for suture logging.
func (r *RouterService) String() string {
	return r.name
}
