// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package eventprocessor

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/connect4good/internal/database"
	"github.com/tomtom215/connect4good/internal/metrics"
	"github.com/tomtom215/connect4good/internal/models"
	"github.com/tomtom215/connect4good/internal/testinfra"
)

// =====================================================
// Test Helpers
// =====================================================

type recordingStore struct {
	mu       sync.Mutex
	events   []models.MembershipEvent
	failFor  map[string]int
	attempts map[string]int
	got      chan struct{}
}

func newRecordingStore() *recordingStore {
	return &recordingStore{
		failFor:  map[string]int{},
		attempts: map[string]int{},
		got:      make(chan struct{}, 64),
	}
}

func (s *recordingStore) InsertMembershipAudit(_ context.Context, ev *models.MembershipEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts[ev.ID]++
	if s.attempts[ev.ID] <= s.failFor[ev.ID] {
		return errors.New("audit table unavailable")
	}
	s.events = append(s.events, *ev)
	s.got <- struct{}{}
	return nil
}

func (s *recordingStore) snapshot() []models.MembershipEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.MembershipEvent(nil), s.events...)
}

func testConfig() Config {
	cfg := DefaultConfig("test.membership")
	cfg.CloseTimeout = 2 * time.Second
	cfg.RetryMaxRetries = 2
	cfg.RetryInitialInterval = time.Millisecond
	cfg.RetryMaxInterval = 5 * time.Millisecond
	return cfg
}

// startStream wires a gochannel transport to a running audit router.
func startStream(t *testing.T, store AuditStore) *MembershipPublisher {
	t.Helper()
	cfg := testConfig()

	transport, err := NewTransport(&cfg, nil)
	if err != nil {
		t.Fatalf("NewTransport() error = %v", err)
	}
	if transport.Kind != "gochannel" {
		t.Fatalf("transport kind = %q, want gochannel", transport.Kind)
	}

	router, err := NewRouter(&cfg, transport.Subscriber, store, nil)
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- router.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Error("router did not stop")
		}
		_ = transport.Close()
	})

	select {
	case <-router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("router did not start")
	}
	if !router.IsRunning() {
		t.Error("IsRunning() = false after start")
	}

	return NewMembershipPublisher(transport.Publisher, cfg.Topic)
}

func membershipEvent(action models.MembershipAction, email string) models.MembershipEvent {
	return models.NewMembershipEvent(action,
		&models.User{ID: "u-" + email, Email: email},
		&models.Event{ID: "e-1", EventDetails: models.EventDetails{Title: "Beach Cleanup"}})
}

func waitFor(t *testing.T, ch <-chan struct{}, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-ch:
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for audit write %d of %d", i+1, n)
		}
	}
}

// eventually polls cond until it holds or the deadline passes.
func eventually(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// =====================================================
// Tests
// =====================================================

func TestSerializer(t *testing.T) {
	t.Parallel()

	ev := membershipEvent(models.MembershipKicked, "ana@example.com")
	ev.ActorEmail = "admin@example.com"

	msg, err := NewMessage(&ev)
	if err != nil {
		t.Fatalf("NewMessage() error = %v", err)
	}
	if msg.UUID != ev.ID || msg.Metadata.Get("type") != "kicked" || msg.Metadata.Get("event_id") != "e-1" {
		t.Errorf("message = uuid %s metadata %v", msg.UUID, msg.Metadata)
	}

	decoded, err := DecodeMessage(msg)
	if err != nil {
		t.Fatalf("DecodeMessage() error = %v", err)
	}
	if decoded.ActorEmail != ev.ActorEmail || decoded.Action != ev.Action || !decoded.OccurredAt.Equal(ev.OccurredAt) {
		t.Errorf("DecodeMessage() = %+v, want %+v", decoded, ev)
	}

	if _, err := NewMessage(&models.MembershipEvent{}); err == nil {
		t.Error("NewMessage() without id should fail")
	}
	if _, err := DecodeMessage(message.NewMessage("x", []byte("{"))); err == nil {
		t.Error("DecodeMessage() of malformed payload should fail")
	}
}

func TestStream_AuditsPublishedEvents(t *testing.T) {
	store := newRecordingStore()
	publisher := startStream(t, store)

	before := testutil.ToFloat64(metrics.MembershipEventsAudited.WithLabelValues("registered"))

	events := []models.MembershipEvent{
		membershipEvent(models.MembershipRegistered, "a@example.com"),
		membershipEvent(models.MembershipRegistered, "b@example.com"),
		membershipEvent(models.MembershipUnregistered, "a@example.com"),
	}
	for i := range events {
		publisher.PublishMembership(context.Background(), &events[i])
	}
	waitFor(t, store.got, len(events))

	got := store.snapshot()
	if len(got) != len(events) {
		t.Fatalf("audited %d events, want %d", len(got), len(events))
	}
	seen := map[string]bool{}
	for _, ev := range got {
		seen[ev.ID] = true
	}
	for _, ev := range events {
		if !seen[ev.ID] {
			t.Errorf("event %s not audited", ev.ID)
		}
	}

	if delta := testutil.ToFloat64(metrics.MembershipEventsAudited.WithLabelValues("registered")) - before; delta < 2 {
		t.Errorf("audited counter delta = %v, want >= 2", delta)
	}
}

func TestStream_RetriesThenSucceeds(t *testing.T) {
	store := newRecordingStore()
	publisher := startStream(t, store)

	ev := membershipEvent(models.MembershipCascaded, "c@example.com")
	store.mu.Lock()
	store.failFor[ev.ID] = 2
	store.mu.Unlock()

	publisher.PublishMembership(context.Background(), &ev)
	waitFor(t, store.got, 1)

	store.mu.Lock()
	attempts := store.attempts[ev.ID]
	store.mu.Unlock()
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestStream_DropsAfterRetriesExhausted(t *testing.T) {
	store := newRecordingStore()
	publisher := startStream(t, store)

	before := testutil.ToFloat64(metrics.MembershipAuditFailures)

	poison := membershipEvent(models.MembershipKicked, "p@example.com")
	store.mu.Lock()
	store.failFor[poison.ID] = 1000
	store.mu.Unlock()
	publisher.PublishMembership(context.Background(), &poison)

	next := membershipEvent(models.MembershipRegistered, "n@example.com")
	publisher.PublishMembership(context.Background(), &next)
	waitFor(t, store.got, 1)

	// The poison message may still be in retry backoff once the healthy
	// one is stored.
	poisonAttempts := func() int {
		store.mu.Lock()
		defer store.mu.Unlock()
		return store.attempts[poison.ID]
	}
	eventually(t, "poison message to be dropped", func() bool {
		return poisonAttempts() >= 3 && testutil.ToFloat64(metrics.MembershipAuditFailures)-before >= 1
	})

	got := store.snapshot()
	if len(got) != 1 || got[0].ID != next.ID {
		t.Errorf("audited = %+v, want only the healthy event", got)
	}
	if attempts := poisonAttempts(); attempts != 3 {
		t.Errorf("poison attempts = %d, want 3 (1 + 2 retries)", attempts)
	}
}

func TestPublisher_ClosedCountsFailure(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	transport, err := NewTransport(&cfg, nil)
	if err != nil {
		t.Fatalf("NewTransport() error = %v", err)
	}
	t.Cleanup(func() { _ = transport.Close() })

	publisher := NewMembershipPublisher(transport.Publisher, cfg.Topic)
	publisher.Close()

	before := testutil.ToFloat64(metrics.MembershipEventsPublished.WithLabelValues("unregistered", "failure"))
	ev := membershipEvent(models.MembershipUnregistered, "z@example.com")
	publisher.PublishMembership(context.Background(), &ev)

	if delta := testutil.ToFloat64(metrics.MembershipEventsPublished.WithLabelValues("unregistered", "failure")) - before; delta < 1 {
		t.Errorf("failure counter delta = %v, want >= 1", delta)
	}
}

func TestStream_WritesAuditTable(t *testing.T) {
	testinfra.AcquireDuckDB(t)
	db, err := database.New(testinfra.MemoryDatabaseConfig())
	if err != nil {
		t.Fatalf("database.New() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	notify := make(chan struct{}, 8)
	publisher := startStream(t, notifyingStore{AuditStore: db, done: notify})

	ev := membershipEvent(models.MembershipRegistered, "db@example.com")
	publisher.PublishMembership(context.Background(), &ev)
	publisher.PublishMembership(context.Background(), &ev)
	waitFor(t, notify, 2)

	entries, err := db.ListMembershipAudit(context.Background(), "e-1")
	if err != nil {
		t.Fatalf("ListMembershipAudit() error = %v", err)
	}
	if len(entries) != 1 || entries[0].UserEmail != "db@example.com" {
		t.Errorf("audit entries = %+v, want one deduplicated entry", entries)
	}
}

type notifyingStore struct {
	AuditStore
	done chan struct{}
}

func (n notifyingStore) InsertMembershipAudit(ctx context.Context, ev *models.MembershipEvent) error {
	err := n.AuditStore.InsertMembershipAudit(ctx, ev)
	if err == nil {
		n.done <- struct{}{}
	}
	return err
}
