// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/connect4good/internal/metrics"
	"github.com/tomtom215/connect4good/internal/models"
)

// AuditEntry is a membership event as persisted by the audit handler.
type AuditEntry struct {
	models.MembershipEvent
	RecordedAt time.Time
}

// InsertMembershipAudit records a membership event. Redelivered events with
// an id that is already stored are ignored.
func (db *DB) InsertMembershipAudit(ctx context.Context, ev *models.MembershipEvent) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "membership_audit", time.Since(start), err) }()

	if _, err = db.conn.ExecContext(ctx, `INSERT INTO membership_audit
			(id, action, event_id, event_title, user_id, user_email, actor_email, occurred_at, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT DO NOTHING`,
		ev.ID, string(ev.Action), ev.EventID, ev.EventTitle, ev.UserID, ev.UserEmail, ev.ActorEmail,
		ev.OccurredAt.UTC(), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert membership audit: %w", err)
	}
	return nil
}

// ListMembershipAudit returns the audit trail of one event, oldest first.
func (db *DB) ListMembershipAudit(ctx context.Context, eventID string) (entries []AuditEntry, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "membership_audit", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `SELECT
			id, action, event_id, event_title, user_id, user_email, actor_email, occurred_at, recorded_at
		FROM membership_audit WHERE event_id = $1 ORDER BY occurred_at, recorded_at`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query membership audit: %w", err)
	}
	defer closeWithLog(rows, "audit rows")

	entries = []AuditEntry{}
	for rows.Next() {
		var (
			entry  AuditEntry
			action string
		)
		if err := rows.Scan(&entry.ID, &action, &entry.EventID, &entry.EventTitle, &entry.UserID,
			&entry.UserEmail, &entry.ActorEmail, &entry.OccurredAt, &entry.RecordedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership audit: %w", err)
		}
		entry.Action = models.MembershipAction(action)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership audit: %w", err)
	}
	return entries, nil
}
