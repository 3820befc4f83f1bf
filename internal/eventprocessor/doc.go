// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
Package eventprocessor carries membership changes from the registration and
catalog services to an audit consumer over Watermill.

# Transport

With no NATS URL configured the stream is an in-process gochannel pub/sub.
When Config.NATSURL is set, messages go through NATS JetStream via
watermill-nats, with the stream provisioned on first use:

	transport, err := eventprocessor.NewTransport(cfg, logger)
	publisher := eventprocessor.NewMembershipPublisher(transport.Publisher, cfg.Topic)
	engine := registration.NewEngine(db, guard, regCfg, registration.WithNotifier(publisher))

# Audit Router

NewRouter registers one handler, "membership-audit", that writes every
event to the membership_audit table. Handler failures are retried with
exponential backoff; a message that still fails is logged, counted and
acknowledged so it cannot block the stream.

Publishing happens after the database change has committed, so a publish
failure is logged and counted but never returned to the caller.
*/
package eventprocessor
