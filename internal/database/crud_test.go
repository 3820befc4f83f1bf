// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package database

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/connect4good/internal/models"
)

func TestUsers_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	created := mustCreateUser(t, db, "alice@example.com")
	if created.ID == "" {
		t.Fatal("CreateUser() did not assign an id")
	}

	byEmail, err := db.GetUserByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if byEmail.ID != created.ID {
		t.Errorf("ID = %q, want %q", byEmail.ID, created.ID)
	}
	if byEmail.Gender != models.GenderFemale || byEmail.WorkStatus != models.WorkStatusEmployed {
		t.Errorf("enums not round-tripped: %q %q", byEmail.Gender, byEmail.WorkStatus)
	}
	if byEmail.PhoneNumber != "555-0100" || byEmail.PastVolunteerExperience != "soup kitchen" {
		t.Errorf("profile fields not round-tripped: %+v", byEmail.Profile)
	}
	if byEmail.IsAdmin {
		t.Error("new users must not be admins")
	}

	byID, err := db.GetUserByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetUserByID() error = %v", err)
	}
	if byID.Email != "alice@example.com" {
		t.Errorf("Email = %q", byID.Email)
	}
}

func TestUsers_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	mustCreateUser(t, db, "dup@example.com")
	err := db.CreateUser(context.Background(), testUser("dup@example.com"))

	var merr *models.Error
	if !errors.As(err, &merr) {
		t.Fatalf("CreateUser() duplicate error = %v, want *models.Error", err)
	}
	if merr.Kind != models.KindConflict || merr.Detail != models.DetailEmailTaken {
		t.Errorf("got %s %q, want conflict %q", merr.Kind, merr.Detail, models.DetailEmailTaken)
	}
}

func TestUsers_NotFound(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if _, err := db.GetUserByEmail(ctx, "ghost@example.com"); !errors.Is(err, models.NotFound(models.DetailUserNotFound)) {
		t.Errorf("GetUserByEmail() error = %v, want User not found", err)
	}
	if err := db.UpdateUser(ctx, testUser("ghost@example.com")); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("UpdateUser() error = %v, want NotFound", err)
	}
	if err := db.SetAdmin(ctx, "ghost@example.com", true); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("SetAdmin() error = %v, want NotFound", err)
	}
	if _, err := db.DeleteUser(ctx, "ghost@example.com"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("DeleteUser() error = %v, want NotFound", err)
	}
}

func TestUsers_UpdateReplacesProfile(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	original := mustCreateUser(t, db, "bob@example.com")
	if err := db.SetAdmin(ctx, "bob@example.com", true); err != nil {
		t.Fatalf("SetAdmin() error = %v", err)
	}

	replacement := testUser("bob@example.com")
	replacement.FullName = "Robert"
	replacement.PasswordHash = "new-hash"
	replacement.Age = 41
	replacement.Gender = models.GenderMale
	replacement.ImmigrationStatus = models.ImmigrationStudentVisa
	replacement.Skills = ""
	if err := db.UpdateUser(ctx, replacement); err != nil {
		t.Fatalf("UpdateUser() error = %v", err)
	}

	got, err := db.GetUserByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if got.ID != original.ID {
		t.Errorf("UpdateUser() changed the id")
	}
	if got.FullName != "Robert" || got.Age != 41 || got.PasswordHash != "new-hash" || got.Skills != "" {
		t.Errorf("profile not replaced: %+v", got)
	}
	if got.ImmigrationStatus != models.ImmigrationStudentVisa {
		t.Errorf("ImmigrationStatus = %q", got.ImmigrationStatus)
	}
	if !got.IsAdmin {
		t.Error("UpdateUser() must not reset the admin flag")
	}
}

func TestEvents_CreateListOrder(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	titles := []string{"Zoo Cleanup", "Beach Cleanup", "Museum Guide"}
	for _, title := range titles {
		mustCreateEvent(t, db, title, 3)
	}

	events, err := db.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents() error = %v", err)
	}
	if len(events) != len(titles) {
		t.Fatalf("ListEvents() returned %d events, want %d", len(events), len(titles))
	}
	for i, title := range titles {
		if events[i].Title != title {
			t.Errorf("events[%d] = %q, want %q (creation order)", i, events[i].Title, title)
		}
		if events[i].RegistrantCount != 0 {
			t.Errorf("events[%d].RegistrantCount = %d, want 0", i, events[i].RegistrantCount)
		}
	}

	byTitle, err := db.GetEventByTitle(ctx, "Beach Cleanup")
	if err != nil {
		t.Fatalf("GetEventByTitle() error = %v", err)
	}
	if byTitle.Location != "Harbor Beach" || byTitle.Capacity != 3 {
		t.Errorf("event fields not round-tripped: %+v", byTitle.EventDetails)
	}
	if _, err := db.GetEventByID(ctx, byTitle.ID); err != nil {
		t.Errorf("GetEventByID() error = %v", err)
	}
}

func TestEvents_DuplicateTitle(t *testing.T) {
	db := setupTestDB(t)

	mustCreateEvent(t, db, "Food Drive", 5)
	err := db.CreateEvent(context.Background(), testEvent("Food Drive", 5))
	if !errors.Is(err, models.Conflict(models.DetailTitleTaken)) {
		t.Errorf("CreateEvent() duplicate error = %v, want %q", err, models.DetailTitleTaken)
	}
}

func TestEvents_Update(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	event := mustCreateEvent(t, db, "Tree Planting", 3)
	for _, email := range []string{"a@example.com", "b@example.com"} {
		user := mustCreateUser(t, db, email)
		if err := register(ctx, db, event.ID, user.ID); err != nil {
			t.Fatalf("register(%s) error = %v", email, err)
		}
	}

	t.Run("full replace keeps registrants", func(t *testing.T) {
		details := testEvent("Tree Planting", 2).EventDetails
		details.Location = "North Park"
		details.Tasks = ""
		if err := db.UpdateEvent(ctx, &details); err != nil {
			t.Fatalf("UpdateEvent() error = %v", err)
		}
		got, err := db.GetEventByTitle(ctx, "Tree Planting")
		if err != nil {
			t.Fatalf("GetEventByTitle() error = %v", err)
		}
		if got.Location != "North Park" || got.Tasks != "" || got.Capacity != 2 {
			t.Errorf("event not replaced: %+v", got.EventDetails)
		}
		if got.RegistrantCount != 2 {
			t.Errorf("RegistrantCount = %d, want 2", got.RegistrantCount)
		}
	})

	t.Run("capacity below registrant count", func(t *testing.T) {
		details := testEvent("Tree Planting", 1).EventDetails
		err := db.UpdateEvent(ctx, &details)
		if !errors.Is(err, models.Validation(models.DetailCapacityBelowCount)) {
			t.Errorf("UpdateEvent() error = %v, want %q", err, models.DetailCapacityBelowCount)
		}
	})

	t.Run("missing event", func(t *testing.T) {
		details := testEvent("Nowhere", 10).EventDetails
		err := db.UpdateEvent(ctx, &details)
		if !errors.Is(err, models.NotFound(models.DetailEventNotFound)) {
			t.Errorf("UpdateEvent() error = %v, want Event not found", err)
		}
	})
}

func TestDeleteUser_Cascades(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	leaving := mustCreateUser(t, db, "leaving@example.com")
	staying := mustCreateUser(t, db, "staying@example.com")
	first := mustCreateEvent(t, db, "First", 5)
	second := mustCreateEvent(t, db, "Second", 5)

	for _, pair := range []struct{ event, user string }{
		{first.ID, leaving.ID}, {second.ID, leaving.ID}, {first.ID, staying.ID},
	} {
		if err := register(ctx, db, pair.event, pair.user); err != nil {
			t.Fatalf("register() error = %v", err)
		}
	}

	cascaded, err := db.DeleteUser(ctx, "leaving@example.com")
	if err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if len(cascaded) != 2 {
		t.Fatalf("DeleteUser() cascaded %d registrations, want 2", len(cascaded))
	}
	if cascaded[0].EventTitle != "First" || cascaded[1].EventTitle != "Second" {
		t.Errorf("cascade order = %q, %q; want registration order", cascaded[0].EventTitle, cascaded[1].EventTitle)
	}
	for _, ev := range cascaded {
		if ev.Action != models.MembershipCascaded || ev.UserEmail != "leaving@example.com" {
			t.Errorf("unexpected cascaded event %+v", ev)
		}
	}

	assertRegistrants(t, db, first.ID, []string{staying.ID})
	assertRegistrants(t, db, second.ID, []string{})
	assertCount(t, db, "First", 1)
	assertCount(t, db, "Second", 0)

	if _, err := db.GetUserByEmail(ctx, "leaving@example.com"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("deleted user still readable: %v", err)
	}
}

func TestDeleteEvent_Cascades(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	user := mustCreateUser(t, db, "carol@example.com")
	doomed := mustCreateEvent(t, db, "Doomed", 2)
	kept := mustCreateEvent(t, db, "Kept", 2)
	for _, eventID := range []string{doomed.ID, kept.ID} {
		if err := register(ctx, db, eventID, user.ID); err != nil {
			t.Fatalf("register() error = %v", err)
		}
	}

	cascaded, err := db.DeleteEvent(ctx, "Doomed")
	if err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}
	if len(cascaded) != 1 || cascaded[0].UserID != user.ID || cascaded[0].EventID != doomed.ID {
		t.Fatalf("DeleteEvent() cascaded = %+v", cascaded)
	}

	err = db.InTx(ctx, func(tx *Tx) error {
		ids, err := tx.UserEventIDs(ctx, user.ID)
		if err != nil {
			return err
		}
		if len(ids) != 1 || ids[0] != kept.ID {
			t.Errorf("UserEventIDs() = %v, want [%s]", ids, kept.ID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("InTx() error = %v", err)
	}

	if _, err := db.DeleteEvent(ctx, "Doomed"); !errors.Is(err, models.NotFound(models.DetailEventNotFound)) {
		t.Errorf("second DeleteEvent() error = %v, want Event not found", err)
	}
}

func assertRegistrants(t *testing.T, db *DB, eventID string, want []string) {
	t.Helper()
	ctx := context.Background()
	err := db.InTx(ctx, func(tx *Tx) error {
		got, err := tx.RegistrantIDs(ctx, eventID)
		if err != nil {
			return err
		}
		if len(got) != len(want) {
			t.Errorf("RegistrantIDs() = %v, want %v", got, want)
			return nil
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("RegistrantIDs()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("InTx() error = %v", err)
	}
}

func assertCount(t *testing.T, db *DB, title string, want int) {
	t.Helper()
	event, err := db.GetEventByTitle(context.Background(), title)
	if err != nil {
		t.Fatalf("GetEventByTitle(%q) error = %v", title, err)
	}
	if event.RegistrantCount != want {
		t.Errorf("%s RegistrantCount = %d, want %d", title, event.RegistrantCount, want)
	}
}
