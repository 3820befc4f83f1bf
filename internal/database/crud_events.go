// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/metrics"
	"github.com/tomtom215/connect4good/internal/models"
)

const eventColumns = `id, title, event_date, event_time, requirements, capacity, registrant_count,
	deadline, location, description, tasks, created_at`

func scanEvent(row rowScanner) (*models.Event, error) {
	var e models.Event
	if err := row.Scan(
		&e.ID, &e.Title, &e.Date, &e.Time, &e.Requirements, &e.Capacity, &e.RegistrantCount,
		&e.Deadline, &e.Location, &e.Description, &e.Tasks, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

// selectEvent reads one event by a key column. column is always a constant.
func selectEvent(ctx context.Context, q querier, column string, value string) (event *models.Event, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "events", time.Since(start), err) }()

	row := q.QueryRowContext(ctx, "SELECT "+eventColumns+" FROM events WHERE "+column+" = $1", value)
	event, err = scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound(models.DetailEventNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}
	return event, nil
}

// CreateEvent inserts a new event with no registrants. ID and CreatedAt are
// assigned when empty. A taken title is returned as a Conflict.
func (db *DB) CreateEvent(ctx context.Context, event *models.Event) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "events", time.Since(start), err) }()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	event.RegistrantCount = 0

	_, err = db.conn.ExecContext(ctx, `INSERT INTO events (`+eventColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		event.ID, event.Title, event.Date, event.Time, event.Requirements, event.Capacity, 0,
		event.Deadline, event.Location, event.Description, event.Tasks, event.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return conflictFrom(err, models.DetailTitleTaken)
		}
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// GetEventByTitle returns the event with the given title.
func (db *DB) GetEventByTitle(ctx context.Context, title string) (*models.Event, error) {
	return selectEvent(ctx, db.conn, "title", title)
}

// GetEventByID returns the event with the given id.
func (db *DB) GetEventByID(ctx context.Context, id string) (*models.Event, error) {
	return selectEvent(ctx, db.conn, "id", id)
}

// ListEvents returns every event in creation order.
func (db *DB) ListEvents(ctx context.Context) (events []models.Event, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "events", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, "SELECT "+eventColumns+" FROM events ORDER BY created_seq")
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer closeWithLog(rows, "event rows")

	events = []models.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

// UpdateEvent replaces every field of the event identified by
// details.Title. The title itself is the key and is not changed. A capacity
// below the current registrant count is a Validation error.
func (db *DB) UpdateEvent(ctx context.Context, details *models.EventDetails) error {
	return db.inTxRetry(ctx, "update_event", func(tx *Tx) (err error) {
		start := time.Now()
		defer func() { metrics.RecordDBQuery("update", "events", time.Since(start), err) }()

		res, err := tx.tx.ExecContext(ctx, `UPDATE events SET
				event_date = $2, event_time = $3, requirements = $4, capacity = $5,
				deadline = $6, location = $7, description = $8, tasks = $9
			WHERE title = $1 AND registrant_count <= $10`,
			details.Title, details.Date, details.Time, details.Requirements, details.Capacity,
			details.Deadline, details.Location, details.Description, details.Tasks, details.Capacity)
		if err != nil {
			return fmt.Errorf("failed to update event: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to read affected rows: %w", err)
		}
		if n > 0 {
			return nil
		}

		if _, err := tx.EventByTitle(ctx, details.Title); err != nil {
			return err
		}
		return models.Validation(models.DetailCapacityBelowCount)
	})
}

// DeleteEvent removes the event and all of its registrations in one
// transaction. It returns one cascaded membership event per registrant.
func (db *DB) DeleteEvent(ctx context.Context, title string) ([]models.MembershipEvent, error) {
	var cascaded []models.MembershipEvent

	err := db.inTxRetry(ctx, "delete_event", func(tx *Tx) error {
		cascaded = nil

		event, err := tx.EventByTitle(ctx, title)
		if err != nil {
			return err
		}
		if err := tx.LockEvent(ctx, event.ID); err != nil {
			return err
		}

		userIDs, err := tx.RegistrantIDs(ctx, event.ID)
		if err != nil {
			return err
		}

		for _, userID := range userIDs {
			user, err := tx.UserByID(ctx, userID)
			if errors.Is(err, models.ErrNotFound) {
				logging.Warn().
					Str("event_id", event.ID).
					Str("user_id", userID).
					Msg("Dangling registration removed with event")
				continue
			}
			if err != nil {
				return err
			}
			cascaded = append(cascaded, models.NewMembershipEvent(models.MembershipCascaded, user, event))
		}

		if _, err := tx.tx.ExecContext(ctx, `DELETE FROM registrations WHERE event_id = $1`, event.ID); err != nil {
			return fmt.Errorf("failed to delete event registrations: %w", err)
		}
		if _, err := tx.tx.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, event.ID); err != nil {
			return fmt.Errorf("failed to delete event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cascaded, nil
}
