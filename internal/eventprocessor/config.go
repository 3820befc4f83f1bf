// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package eventprocessor

import "time"

// Config holds stream and router settings.
type Config struct {
	// Topic is the subject membership events are published on.
	Topic string

	// NATSURL selects NATS JetStream when set. Empty uses gochannel.
	NATSURL string

	// QueueGroup is the NATS queue group of the audit subscriber.
	QueueGroup string

	// CloseTimeout is how long to wait for handlers to finish when closing.
	CloseTimeout time.Duration

	// Retry configuration for the audit handler.
	RetryMaxRetries      int
	RetryInitialInterval time.Duration
	RetryMaxInterval     time.Duration
	RetryMultiplier      float64

	// NATS connection tuning.
	MaxReconnects int
	ReconnectWait time.Duration
	AckWait       time.Duration
}

// DefaultConfig returns production defaults for the given topic.
func DefaultConfig(topic string) Config {
	return Config{
		Topic:                topic,
		QueueGroup:           "connect4good-audit",
		CloseTimeout:         10 * time.Second,
		RetryMaxRetries:      3,
		RetryInitialInterval: 100 * time.Millisecond,
		RetryMaxInterval:     2 * time.Second,
		RetryMultiplier:      2.0,
		MaxReconnects:        -1,
		ReconnectWait:        2 * time.Second,
		AckWait:              30 * time.Second,
	}
}
