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

const userColumns = `id, email, full_name, password_hash, is_admin, age, gender, phone_number,
	work_status, immigration_status, skills, interests, past_volunteer_experience, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u                         models.User
		gender, work, immigration string
	)
	if err := row.Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.IsAdmin, &u.Age, &gender, &u.PhoneNumber,
		&work, &immigration, &u.Skills, &u.Interests, &u.PastVolunteerExperience, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	u.Gender = models.Gender(gender)
	u.WorkStatus = models.WorkStatus(work)
	u.ImmigrationStatus = models.ImmigrationStatus(immigration)
	return &u, nil
}

// selectUser reads one user by a key column. column is always a constant.
func selectUser(ctx context.Context, q querier, column string, value string) (user *models.User, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "users", time.Since(start), err) }()

	row := q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE "+column+" = $1", value)
	user, err = scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NotFound(models.DetailUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return user, nil
}

// CreateUser inserts a new user. ID and CreatedAt are assigned when empty.
// A taken email is returned as a Conflict.
func (db *DB) CreateUser(ctx context.Context, user *models.User) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("insert", "users", time.Since(start), err) }()

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	_, err = db.conn.ExecContext(ctx, `INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		user.ID, user.Email, user.FullName, user.PasswordHash, user.IsAdmin, user.Age,
		string(user.Gender), user.PhoneNumber, string(user.WorkStatus), string(user.ImmigrationStatus),
		user.Skills, user.Interests, user.PastVolunteerExperience, user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return conflictFrom(err, models.DetailEmailTaken)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByEmail returns the user with the given email.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return selectUser(ctx, db.conn, "email", email)
}

// GetUserByID returns the user with the given id.
func (db *DB) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return selectUser(ctx, db.conn, "id", id)
}

// UpdateUser replaces every profile field and the password hash of the user
// identified by user.Email. The email, id and admin flag are not changed.
func (db *DB) UpdateUser(ctx context.Context, user *models.User) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("update", "users", time.Since(start), err) }()

	res, err := db.conn.ExecContext(ctx, `UPDATE users SET
			full_name = $2, password_hash = $3, age = $4, gender = $5, phone_number = $6,
			work_status = $7, immigration_status = $8, skills = $9, interests = $10,
			past_volunteer_experience = $11
		WHERE email = $1`,
		user.Email, user.FullName, user.PasswordHash, user.Age, string(user.Gender), user.PhoneNumber,
		string(user.WorkStatus), string(user.ImmigrationStatus), user.Skills, user.Interests,
		user.PastVolunteerExperience)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return expectRow(res, models.DetailUserNotFound)
}

// SetAdmin sets the admin flag of the user with the given email.
func (db *DB) SetAdmin(ctx context.Context, email string, isAdmin bool) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("update", "users", time.Since(start), err) }()

	res, err := db.conn.ExecContext(ctx, `UPDATE users SET is_admin = $2 WHERE email = $1`, email, isAdmin)
	if err != nil {
		return fmt.Errorf("failed to update admin flag: %w", err)
	}
	return expectRow(res, models.DetailUserNotFound)
}

// DeleteUser removes the user and all of the user's registrations,
// decrementing registrant_count on every affected event, in one
// transaction. It returns one cascaded membership event per event the user
// was registered for.
func (db *DB) DeleteUser(ctx context.Context, email string) ([]models.MembershipEvent, error) {
	var cascaded []models.MembershipEvent

	err := db.inTxRetry(ctx, "delete_user", func(tx *Tx) error {
		cascaded = nil

		user, err := tx.UserByEmail(ctx, email)
		if err != nil {
			return err
		}
		if err := tx.LockUser(ctx, user.ID); err != nil {
			return err
		}

		eventIDs, err := tx.UserEventIDs(ctx, user.ID)
		if err != nil {
			return err
		}

		for _, eventID := range eventIDs {
			event, err := tx.EventByID(ctx, eventID)
			if errors.Is(err, models.ErrNotFound) {
				logging.Warn().
					Str("user_id", user.ID).
					Str("event_id", eventID).
					Msg("Dangling registration removed with user")
				continue
			}
			if err != nil {
				return err
			}
			if err := tx.ReleaseSeat(ctx, eventID); err != nil {
				return err
			}
			cascaded = append(cascaded, models.NewMembershipEvent(models.MembershipCascaded, user, event))
		}

		if _, err := tx.tx.ExecContext(ctx, `DELETE FROM registrations WHERE user_id = $1`, user.ID); err != nil {
			return fmt.Errorf("failed to delete user registrations: %w", err)
		}
		if _, err := tx.tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, user.ID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cascaded, nil
}

// expectRow returns NotFound with detail when the statement matched no row.
func expectRow(res sql.Result, detail string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.NotFound(detail)
	}
	return nil
}
