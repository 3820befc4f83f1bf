// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package eventprocessor

import (
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/connect4good/internal/models"
)

const (
	metadataType    = "type"
	metadataEventID = "event_id"
)

// NewMessage encodes ev as a Watermill message keyed by the event id.
func NewMessage(ev *models.MembershipEvent) (*message.Message, error) {
	if ev.ID == "" {
		return nil, errors.New("membership event has no id")
	}
	data, err := json.Marshal(ev)
	if err != nil {
		return nil, fmt.Errorf("marshal membership event: %w", err)
	}

	msg := message.NewMessage(ev.ID, data)
	msg.Metadata.Set(metadataType, string(ev.Action))
	msg.Metadata.Set(metadataEventID, ev.EventID)
	return msg, nil
}

// DecodeMessage decodes a message produced by NewMessage.
func DecodeMessage(msg *message.Message) (*models.MembershipEvent, error) {
	var ev models.MembershipEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return nil, fmt.Errorf("unmarshal membership event: %w", err)
	}
	if ev.ID == "" {
		ev.ID = msg.UUID
	}
	return &ev, nil
}
