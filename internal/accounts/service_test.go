// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package accounts

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/connect4good/internal/auth"
	"github.com/tomtom215/connect4good/internal/authz"
	"github.com/tomtom215/connect4good/internal/database"
	"github.com/tomtom215/connect4good/internal/models"
	"github.com/tomtom215/connect4good/internal/registration"
	"github.com/tomtom215/connect4good/internal/testinfra"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []models.MembershipEvent
}

func (r *recordingNotifier) PublishMembership(_ context.Context, ev *models.MembershipEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *ev)
}

type fixture struct {
	db       *database.DB
	svc      *Service
	engine   *registration.Engine
	hasher   *auth.BcryptHasher
	notifier *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	testinfra.AcquireDuckDB(t)
	db, err := database.New(testinfra.MemoryDatabaseConfig())
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	enforcer, err := authz.NewEnforcer(nil)
	if err != nil {
		t.Fatalf("authz.NewEnforcer() error = %v", err)
	}
	guard := authz.NewGuard(enforcer, db)

	hasher, err := auth.NewBcryptHasher(bcrypt.MinCost)
	if err != nil {
		t.Fatalf("NewBcryptHasher() error = %v", err)
	}

	engine := registration.NewEngine(db, guard, registration.Config{MaxAttempts: 5})
	notifier := &recordingNotifier{}

	return &fixture{
		db:       db,
		svc:      NewService(db, engine, guard, hasher, notifier),
		engine:   engine,
		hasher:   hasher,
		notifier: notifier,
	}
}

func validInput(email string) *models.UserInput {
	return &models.UserInput{
		Email:                   email,
		FullName:                "Dana Volunteer",
		Password:                "s3cret-pass",
		Age:                     28,
		Gender:                  "F",
		PhoneNumber:             "555-0199",
		WorkStatus:              "Employed",
		ImmigrationStatus:       "Student Visa",
		Skills:                  "cooking",
		Interests:               "community",
		PastVolunteerExperience: "none",
	}
}

func (f *fixture) signUp(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := f.svc.SignUp(context.Background(), validInput(email))
	if err != nil {
		t.Fatalf("SignUp(%s) error = %v", email, err)
	}
	return user
}

func assertDetail(t *testing.T, err error, kind models.Kind, detail string) {
	t.Helper()
	var merr *models.Error
	if !errors.As(err, &merr) {
		t.Fatalf("error = %v, want *models.Error %s %q", err, kind, detail)
	}
	if merr.Kind != kind || merr.Detail != detail {
		t.Errorf("error = %s %q, want %s %q", merr.Kind, merr.Detail, kind, detail)
	}
}

func TestSignUp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.signUp(t, "dana@example.com")

	stored, err := f.db.GetUserByEmail(ctx, "dana@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if stored.ID != user.ID {
		t.Errorf("stored id = %q, want %q", stored.ID, user.ID)
	}
	if stored.PasswordHash == "s3cret-pass" || !f.hasher.Verify("s3cret-pass", stored.PasswordHash) {
		t.Error("password must be stored as a verifiable hash")
	}
	if stored.Gender != models.GenderFemale || stored.WorkStatus != models.WorkStatusEmployed ||
		stored.ImmigrationStatus != models.ImmigrationStudentVisa {
		t.Errorf("enums not normalized: %q %q %q", stored.Gender, stored.WorkStatus, stored.ImmigrationStatus)
	}
	if stored.IsAdmin {
		t.Error("new users must not be admins")
	}
}

func TestSignUp_Errors(t *testing.T) {
	f := newFixture(t)
	f.signUp(t, "taken@example.com")

	tests := []struct {
		name   string
		mutate func(*models.UserInput)
		detail string
		kind   models.Kind
	}{
		{"taken email wins over invalid profile", func(in *models.UserInput) {
			in.Email = "taken@example.com"
			in.Age = 0
		}, models.DetailEmailTaken, models.KindConflict},
		{"age zero", func(in *models.UserInput) { in.Age = 0 }, models.DetailInvalidAge, models.KindValidation},
		{"negative age", func(in *models.UserInput) { in.Age = -4 }, models.DetailInvalidAge, models.KindValidation},
		{"gender", func(in *models.UserInput) { in.Gender = "x" }, models.DetailInvalidGender, models.KindValidation},
		{"work status", func(in *models.UserInput) { in.WorkStatus = "retired" }, models.DetailInvalidWorkStatus, models.KindValidation},
		{"immigration", func(in *models.UserInput) { in.ImmigrationStatus = "tourist" }, models.DetailInvalidImmigration, models.KindValidation},
		{"password too long", func(in *models.UserInput) { in.Password = strings.Repeat("p", 73) }, models.DetailPasswordTooLong, models.KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput("new@example.com")
			tt.mutate(in)
			_, err := f.svc.SignUp(context.Background(), in)
			assertDetail(t, err, tt.kind, tt.detail)
		})
	}

	if _, err := f.db.GetUserByEmail(context.Background(), "new@example.com"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("rejected sign-ups must not create users: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	original := f.signUp(t, "dana@example.com")

	in := validInput("dana@example.com")
	in.FullName = "Dana Updated"
	in.Password = "another-pass"
	in.Skills = "carpentry"
	if err := f.svc.UpdateProfile(ctx, in); err != nil {
		t.Fatalf("UpdateProfile() error = %v", err)
	}

	stored, err := f.db.GetUserByEmail(ctx, "dana@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail() error = %v", err)
	}
	if stored.ID != original.ID || stored.FullName != "Dana Updated" || stored.Skills != "carpentry" {
		t.Errorf("profile not replaced: %+v", stored)
	}
	if !f.hasher.Verify("another-pass", stored.PasswordHash) {
		t.Error("password was not re-hashed")
	}

	assertDetail(t, f.svc.UpdateProfile(ctx, validInput("ghost@example.com")), models.KindNotFound, models.DetailUserNotFound)

	bad := validInput("dana@example.com")
	bad.Gender = "unknown"
	assertDetail(t, f.svc.UpdateProfile(ctx, bad), models.KindValidation, models.DetailInvalidGender)
}

func TestDeleteUser_CascadesAndNotifies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.signUp(t, "dana@example.com")

	for _, title := range []string{"Soup Kitchen", "Tech Setup"} {
		if err := f.db.CreateEvent(ctx, &models.Event{EventDetails: models.EventDetails{Title: title, Capacity: 2}}); err != nil {
			t.Fatalf("CreateEvent() error = %v", err)
		}
		if err := f.engine.Register(ctx, "dana@example.com", title); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}

	if err := f.svc.DeleteUser(ctx, "dana@example.com"); err != nil {
		t.Fatalf("DeleteUser() error = %v", err)
	}
	if len(f.notifier.events) != 2 {
		t.Fatalf("notified %d cascaded events, want 2", len(f.notifier.events))
	}
	for _, ev := range f.notifier.events {
		if ev.Action != models.MembershipCascaded {
			t.Errorf("action = %s, want cascaded", ev.Action)
		}
	}

	event, err := f.db.GetEventByTitle(ctx, "Soup Kitchen")
	if err != nil {
		t.Fatalf("GetEventByTitle() error = %v", err)
	}
	if event.RegistrantCount != 0 {
		t.Errorf("RegistrantCount = %d after cascade, want 0", event.RegistrantCount)
	}

	assertDetail(t, f.svc.DeleteUser(ctx, "dana@example.com"), models.KindNotFound, models.DetailUserNotFound)
}

func TestPromoteDemote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.signUp(t, "root@example.com")
	f.signUp(t, "vol@example.com")
	if err := f.db.SetAdmin(ctx, "root@example.com", true); err != nil {
		t.Fatalf("SetAdmin() error = %v", err)
	}

	tests := []struct {
		name    string
		current string
		target  string
		kind    models.Kind
		detail  string
	}{
		{"missing current user is checked first", "ghost@example.com", "nobody@example.com", models.KindNotFound, models.DetailAdminNotFound},
		{"missing target before admin check", "vol@example.com", "nobody@example.com", models.KindNotFound, models.DetailTargetNotFound},
		{"current user not admin", "vol@example.com", "root@example.com", models.KindNotAuthorized, models.DetailCurrentNotAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertDetail(t, f.svc.Promote(ctx, tt.current, tt.target), tt.kind, tt.detail)
			assertDetail(t, f.svc.Demote(ctx, tt.current, tt.target), tt.kind, tt.detail)
		})
	}

	if err := f.svc.Promote(ctx, "root@example.com", "vol@example.com"); err != nil {
		t.Fatalf("Promote() error = %v", err)
	}
	if ok, err := f.svc.IsAdmin(ctx, "vol@example.com"); err != nil || !ok {
		t.Errorf("IsAdmin() after promote = %v, %v", ok, err)
	}

	if err := f.svc.Demote(ctx, "vol@example.com", "vol@example.com"); err != nil {
		t.Fatalf("Demote() self error = %v", err)
	}
	if ok, err := f.svc.IsAdmin(ctx, "vol@example.com"); err != nil || ok {
		t.Errorf("IsAdmin() after demote = %v, %v", ok, err)
	}

	if _, err := f.svc.IsAdmin(ctx, "ghost@example.com"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("IsAdmin() missing user error = %v", err)
	}
}

func TestProfileViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.signUp(t, "root@example.com")
	f.signUp(t, "vol@example.com")
	if err := f.db.SetAdmin(ctx, "root@example.com", true); err != nil {
		t.Fatalf("SetAdmin() error = %v", err)
	}
	if err := f.db.CreateEvent(ctx, &models.Event{EventDetails: models.EventDetails{Title: "Beach Cleanup", Capacity: 1}}); err != nil {
		t.Fatalf("CreateEvent() error = %v", err)
	}
	if err := f.engine.Register(ctx, "vol@example.com", "Beach Cleanup"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	view, err := f.svc.Profile(ctx, "vol@example.com")
	if err != nil {
		t.Fatalf("Profile() error = %v", err)
	}
	if len(view.EventsRegistered) != 1 || view.EventsRegistered[0] != "Beach Cleanup" {
		t.Errorf("EventsRegistered = %v", view.EventsRegistered)
	}

	body, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	for _, key := range []string{`"email":"vol@example.com"`, `"events_registered":["Beach Cleanup"]`, `"gender":"f"`, `"is_admin":false`} {
		if !strings.Contains(string(body), key) {
			t.Errorf("profile JSON %s missing %s", body, key)
		}
	}
	if strings.Contains(string(body), "password") || strings.Contains(string(body), view.PasswordHash) {
		t.Errorf("profile JSON leaks the password hash: %s", body)
	}

	if _, err := f.svc.Profile(ctx, "ghost@example.com"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Profile() missing user error = %v", err)
	}

	t.Run("admin view check order", func(t *testing.T) {
		_, err := f.svc.AdminProfile(ctx, "ghost@example.com", "vol@example.com")
		assertDetail(t, err, models.KindNotFound, models.DetailAdminNotFound)

		_, err = f.svc.AdminProfile(ctx, "vol@example.com", "ghost@example.com")
		assertDetail(t, err, models.KindNotAuthorized, models.DetailCurrentNotAdmin)

		_, err = f.svc.AdminProfile(ctx, "root@example.com", "ghost@example.com")
		assertDetail(t, err, models.KindNotFound, models.DetailTargetNotFound)

		adminView, err := f.svc.AdminProfile(ctx, "root@example.com", "vol@example.com")
		if err != nil {
			t.Fatalf("AdminProfile() error = %v", err)
		}
		if adminView.Email != "vol@example.com" || len(adminView.EventsRegistered) != 1 {
			t.Errorf("AdminProfile() = %+v", adminView)
		}
	})
}
