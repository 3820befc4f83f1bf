// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package models

import (
	"time"

	"github.com/google/uuid"
)

// MembershipAction names a committed change to the registration relation.
type MembershipAction string

const (
	// MembershipRegistered is a user taking a seat.
	MembershipRegistered MembershipAction = "registered"

	// MembershipUnregistered is a user giving a seat back.
	MembershipUnregistered MembershipAction = "unregistered"

	// MembershipKicked is an admin removing a user from an event.
	MembershipKicked MembershipAction = "kicked"

	// MembershipCascaded is a registration removed because its user or
	// event was deleted.
	MembershipCascaded MembershipAction = "cascaded"
)

// MembershipEvent records one committed membership change. It is published
// on the membership stream after the transaction commits and persisted by
// the audit handler.
//
// Key Features:
//   - Immutable once created (append-only audit log)
//   - ID doubles as the message UUID for deduplication
//   - ActorEmail is set only when an admin acted on another user
type MembershipEvent struct {
	ID         string           `json:"id"`
	Action     MembershipAction `json:"type"`
	EventID    string           `json:"event_id"`
	EventTitle string           `json:"event_title"`
	UserID     string           `json:"user_id"`
	UserEmail  string           `json:"user_email"`
	ActorEmail string           `json:"actor_email,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// NewMembershipEvent builds an event for the given user and event.
func NewMembershipEvent(action MembershipAction, user *User, event *Event) MembershipEvent {
	return MembershipEvent{
		ID:         uuid.NewString(),
		Action:     action,
		EventID:    event.ID,
		EventTitle: event.Title,
		UserID:     user.ID,
		UserEmail:  user.Email,
		OccurredAt: time.Now().UTC(),
	}
}
