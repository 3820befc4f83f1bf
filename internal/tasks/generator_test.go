// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/tomtom215/connect4good/internal/models"
)

type stubStore struct {
	events map[string]*models.Event
	users  map[string]*models.User
	calls  []string
}

func (s *stubStore) GetEventByTitle(_ context.Context, title string) (*models.Event, error) {
	s.calls = append(s.calls, "event")
	if e, ok := s.events[title]; ok {
		return e, nil
	}
	return nil, models.NotFound(models.DetailEventNotFound)
}

func (s *stubStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.calls = append(s.calls, "user")
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, models.NotFound(models.DetailUserNotFound)
}

type stubCompleter struct {
	prompt string
	reply  string
	err    error
}

func (c *stubCompleter) Complete(_ context.Context, prompt string) (string, error) {
	c.prompt = prompt
	return c.reply, c.err
}

var (
	soupKitchen = &models.Event{ID: "e-1", EventDetails: models.EventDetails{
		Title:       "Soup Kitchen",
		Description: "Serve meals",
		Tasks:       "Cook, serve",
	}}
	chef = &models.User{ID: "u-1", Email: "chef@example.com", Profile: models.Profile{
		Skills:                  "cooking",
		Interests:               "community",
		PastVolunteerExperience: "none",
	}}
)

func newStore() *stubStore {
	return &stubStore{
		events: map[string]*models.Event{soupKitchen.Title: soupKitchen},
		users:  map[string]*models.User{chef.Email: chef},
	}
}

func TestBuildPrompt_Template(t *testing.T) {
	t.Parallel()

	want := "Here is a description and list of tasks of the volunteering event: \n" +
		"Event Description: \nServe meals\n\nEvent Tasks: \nCook, serve" +
		"\n\n" +
		"Here is the user's list of skills, description of his interests and past volunteer experiences : " +
		"User Skills: \ncooking\n\nUser Interests: \ncommunity\n\nUser Past Volunteer Experience: \nnone" +
		"\n\n" +
		"\n\n" +
		"Can you generate 3 to 5 personalized tasks for the user that are tailored to the event? " +
		"Try not to repeat tasks that are already in the event description. " +
		"Do not use any lists, keep the response in a single paragraph."

	if got := BuildPrompt(soupKitchen, chef); got != want {
		t.Errorf("BuildPrompt() =\n%q\nwant\n%q", got, want)
	}
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	completer := &stubCompleter{reply: "Help plate meals and greet guests."}
	got, err := NewGenerator(newStore(), completer).Generate(context.Background(), chef.Email, soupKitchen.Title)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != completer.reply {
		t.Errorf("Generate() = %q, want raw completion", got)
	}
	if completer.prompt != BuildPrompt(soupKitchen, chef) {
		t.Error("completer did not receive the built prompt")
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		email     string
		title     string
		completer *stubCompleter
		want      error
		detail    string
		calls     int
	}{
		{"event checked before user", "ghost@example.com", "Nope", &stubCompleter{}, models.ErrNotFound, models.DetailEventNotFound, 1},
		{"missing user", "ghost@example.com", soupKitchen.Title, &stubCompleter{}, models.ErrNotFound, models.DetailUserNotFound, 2},
		{"completion failure", chef.Email, soupKitchen.Title, &stubCompleter{err: errors.New("timeout")}, models.ErrExternalService, "Task generation service unavailable", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newStore()
			_, err := NewGenerator(store, tt.completer).Generate(context.Background(), tt.email, tt.title)

			var merr *models.Error
			if !errors.Is(err, tt.want) || !errors.As(err, &merr) || merr.Detail != tt.detail {
				t.Errorf("Generate() error = %v, want %v %q", err, tt.want.Error(), tt.detail)
			}
			if len(store.calls) != tt.calls {
				t.Errorf("store calls = %v, want %d", store.calls, tt.calls)
			}
		})
	}
}
