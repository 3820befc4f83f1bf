// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package catalog

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

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
	notifier := &recordingNotifier{}

	f := &fixture{
		db:       db,
		svc:      NewService(db, guard, notifier),
		engine:   registration.NewEngine(db, guard, registration.Config{MaxAttempts: 5}),
		notifier: notifier,
	}
	f.user(t, "admin@example.com", true)
	f.user(t, "vol@example.com", false)
	return f
}

func (f *fixture) user(t *testing.T, email string, admin bool) {
	t.Helper()
	u := &models.User{
		Email:        email,
		PasswordHash: "hash",
		IsAdmin:      admin,
		Profile:      models.Profile{FullName: email, Age: 30, Gender: models.GenderMale},
	}
	if err := f.db.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser(%s) error = %v", email, err)
	}
}

func details(title string, capacity int) *models.EventDetails {
	return &models.EventDetails{
		Title:       title,
		Date:        "2026-06-01",
		Time:        "09:00",
		Capacity:    capacity,
		Location:    "Ocean Beach",
		Description: "Pick up litter along the shore",
		Tasks:       "Collect trash, sort recyclables",
	}
}

func errDetail(err error) string {
	var merr *models.Error
	if errors.As(err, &merr) {
		return merr.Detail
	}
	return ""
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	event, err := f.svc.Create(ctx, "admin@example.com", details("Beach Cleanup", 2))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if event.ID == "" || event.RegistrantCount != 0 {
		t.Errorf("Create() = %+v", event)
	}

	stored, err := f.svc.Get(ctx, "Beach Cleanup")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.EventDetails != *details("Beach Cleanup", 2) {
		t.Errorf("stored details = %+v", stored.EventDetails)
	}

	tests := []struct {
		name    string
		admin   string
		details *models.EventDetails
		kind    *models.Error
		detail  string
	}{
		{"missing admin", "ghost@example.com", details("New", 1), models.ErrNotFound, models.DetailUserNotFound},
		{"not admin", "vol@example.com", details("New", 1), models.ErrNotAuthorized, models.DetailNotAdmin},
		{"taken title before capacity", "admin@example.com", details("Beach Cleanup", 0), models.ErrConflict, models.DetailTitleTaken},
		{"zero capacity", "admin@example.com", details("New", 0), models.ErrValidation, models.DetailInvalidCapacity},
		{"negative capacity", "admin@example.com", details("New", -1), models.ErrValidation, models.DetailInvalidCapacity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, tt.admin, tt.details)
			if !errors.Is(err, tt.kind) || errDetail(err) != tt.detail {
				t.Errorf("Create() error = %v, want %s %q", err, tt.kind.Kind, tt.detail)
			}
		})
	}

	if _, err := f.svc.Get(ctx, "New"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("rejected create must not insert: %v", err)
	}
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, "admin@example.com", details("Soup Kitchen", 3)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	for _, email := range []string{"admin@example.com", "vol@example.com"} {
		if err := f.engine.Register(ctx, email, "Soup Kitchen"); err != nil {
			t.Fatalf("Register(%s) error = %v", email, err)
		}
	}

	changed := details("Soup Kitchen", 2)
	changed.Location = "Community Hall"
	if err := f.svc.Update(ctx, "admin@example.com", changed); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	stored, err := f.svc.Get(ctx, "Soup Kitchen")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.Location != "Community Hall" || stored.Capacity != 2 || stored.RegistrantCount != 2 {
		t.Errorf("after update = %+v", stored)
	}

	tests := []struct {
		name    string
		admin   string
		details *models.EventDetails
		kind    *models.Error
		detail  string
	}{
		{"not admin", "vol@example.com", details("Soup Kitchen", 5), models.ErrNotAuthorized, models.DetailNotAdmin},
		{"missing event before capacity", "admin@example.com", details("Nope", 0), models.ErrNotFound, models.DetailEventNotFound},
		{"zero capacity", "admin@example.com", details("Soup Kitchen", 0), models.ErrValidation, models.DetailInvalidCapacity},
		{"below registrant count", "admin@example.com", details("Soup Kitchen", 1), models.ErrValidation, models.DetailCapacityBelowCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.svc.Update(ctx, tt.admin, tt.details)
			if !errors.Is(err, tt.kind) || errDetail(err) != tt.detail {
				t.Errorf("Update() error = %v, want %s %q", err, tt.kind.Kind, tt.detail)
			}
		})
	}
}

func TestDelete_CascadesRegistrations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, "admin@example.com", details("Tree Planting", 5)); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := f.engine.Register(ctx, "vol@example.com", "Tree Planting"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := f.svc.Delete(ctx, "vol@example.com", "Tree Planting"); !errors.Is(err, models.ErrNotAuthorized) {
		t.Errorf("Delete() by volunteer error = %v", err)
	}
	if err := f.svc.Delete(ctx, "admin@example.com", "Tree Planting"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if len(f.notifier.events) != 1 || f.notifier.events[0].UserEmail != "vol@example.com" ||
		f.notifier.events[0].Action != models.MembershipCascaded {
		t.Errorf("cascaded events = %+v", f.notifier.events)
	}

	events, err := f.engine.ListUserEvents(ctx, "vol@example.com")
	if err != nil {
		t.Fatalf("ListUserEvents() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("user still registered for %d events", len(events))
	}

	err = f.svc.Delete(ctx, "admin@example.com", "Tree Planting")
	if !errors.Is(err, models.ErrNotFound) || errDetail(err) != models.DetailEventNotFound {
		t.Errorf("second Delete() error = %v", err)
	}
}

func TestListTitles_CreationOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	titles, err := f.svc.ListTitles(ctx)
	if err != nil {
		t.Fatalf("ListTitles() error = %v", err)
	}
	if len(titles) != 0 {
		t.Errorf("ListTitles() on empty catalog = %v", titles)
	}

	want := []string{"Zoo Day", "Art Fair", "Marathon"}
	for _, title := range want {
		if _, err := f.svc.Create(ctx, "admin@example.com", details(title, 1)); err != nil {
			t.Fatalf("Create(%s) error = %v", title, err)
		}
	}

	titles, err = f.svc.ListTitles(ctx)
	if err != nil {
		t.Fatalf("ListTitles() error = %v", err)
	}
	if !reflect.DeepEqual(titles, want) {
		t.Errorf("ListTitles() = %v, want %v", titles, want)
	}
}
