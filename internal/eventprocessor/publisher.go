// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package eventprocessor

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/metrics"
	"github.com/tomtom215/connect4good/internal/models"
)

// MembershipPublisher publishes membership events on one topic. It
// satisfies the Notifier interfaces of the registration, accounts and
// catalog services.
type MembershipPublisher struct {
	publisher message.Publisher
	topic     string

	mu     sync.RWMutex
	closed bool
}

// NewMembershipPublisher creates a publisher for topic.
func NewMembershipPublisher(publisher message.Publisher, topic string) *MembershipPublisher {
	return &MembershipPublisher{publisher: publisher, topic: topic}
}

// PublishMembership publishes ev. Failures are logged and counted only.
func (p *MembershipPublisher) PublishMembership(ctx context.Context, ev *models.MembershipEvent) {
	err := p.publish(ctx, ev)
	metrics.RecordMembershipPublish(ev.Action, err)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).
			Str("type", string(ev.Action)).
			Str("event_id", ev.EventID).
			Str("user_id", ev.UserID).
			Msg("Failed to publish membership event")
	}
}

func (p *MembershipPublisher) publish(ctx context.Context, ev *models.MembershipEvent) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPublisherClosed
	}

	msg, err := NewMessage(ev)
	if err != nil {
		return err
	}
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		msg.Metadata.Set("request_id", requestID)
	}
	return p.publisher.Publish(p.topic, msg)
}

// Close stops further publishing. The underlying transport is closed by
// its owner.
func (p *MembershipPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}
