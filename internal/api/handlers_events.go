// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package api

import (
	"net/http"
)

// Success messages of the event endpoints.
const (
	MsgEventCreated      = "Event created successfully"
	MsgEventUpdated      = "Event updated successfully"
	MsgEventDeleted      = "Event deleted successfully"
	MsgEventRegistered   = "User registered for event successfully"
	MsgEventUnregistered = "User unregistered from event successfully"
	MsgUserKicked        = "User kicked from event successfully"
)

// EventTitlesResponse is the body of GET /event/get_events.
type EventTitlesResponse struct {
	EventTitles []string `json:"event_titles"`
}

// UsersRegisteredResponse lists registrant emails in registration order.
type UsersRegisteredResponse struct {
	UsersRegistered []string `json:"users_registered"`
}

// CreateEvent adds an event on behalf of an admin.
//
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param request body ChangeEventRequest true "Acting admin and event"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Please enter a valid value for Capacity"
// @Failure 403 {object} ErrorResponse "User is not an admin"
// @Failure 409 {object} ErrorResponse "Event already exists"
// @Router /event/create_event [post]
func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req ChangeEventRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if _, err := h.Catalog.Create(r.Context(), req.Email, &req.EventDetails); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgEventCreated)
}

// UpdateEvent replaces every field of an event. The title is the key.
//
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param request body ChangeEventRequest true "Acting admin and event"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /event/update_event [post]
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req ChangeEventRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Catalog.Update(r.Context(), req.Email, &req.EventDetails); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgEventUpdated)
}

// DeleteEvent removes an event and its registrations.
//
// @Summary Delete an event
// @Tags Events
// @Accept json
// @Produce json
// @Param request body AdminEventRequest true "Acting admin and title"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /event/delete_event [post]
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	var req AdminEventRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Catalog.Delete(r.Context(), req.Email, req.Title); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgEventDeleted)
}

// GetEvent returns the public fields of an event.
//
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param title query string true "Event title"
// @Success 200 {object} models.EventDetails
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /event/get_event [get]
func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	var req TitleRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	event, err := h.Catalog.Get(r.Context(), req.Title)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, event.EventDetails)
}

// GetEvents lists every event title in creation order.
//
// @Summary List events
// @Tags Events
// @Produce json
// @Success 200 {object} EventTitlesResponse
// @Router /event/get_events [get]
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	titles, err := h.Catalog.ListTitles(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, EventTitlesResponse{EventTitles: titles})
}

// RegisterEvent registers a user for an event.
//
// @Summary Register for an event
// @Tags Events
// @Accept json
// @Produce json
// @Param email query string false "User email"
// @Param title query string false "Event title"
// @Param request body AdminEventRequest false "User and event"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Event is full already or User already registered for event"
// @Router /event/register_event [post]
func (h *Handler) RegisterEvent(w http.ResponseWriter, r *http.Request) {
	var req AdminEventRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Registrations.Register(r.Context(), req.Email, req.Title); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgEventRegistered)
}

// UnregisterEvent removes a user from an event.
//
// @Summary Unregister from an event
// @Tags Events
// @Accept json
// @Produce json
// @Param email query string false "User email"
// @Param title query string false "Event title"
// @Param request body AdminEventRequest false "User and event"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User not registered for event"
// @Router /event/unregister_event [post]
func (h *Handler) UnregisterEvent(w http.ResponseWriter, r *http.Request) {
	var req AdminEventRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Registrations.Unregister(r.Context(), req.Email, req.Title); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgEventUnregistered)
}

// GetUsersRegistered lists registrant emails for an admin.
//
// @Summary List registrants
// @Tags Events
// @Accept json
// @Produce json
// @Param request body AdminEventRequest true "Acting admin and title"
// @Success 200 {object} UsersRegisteredResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /event/get_users_registered [post]
func (h *Handler) GetUsersRegistered(w http.ResponseWriter, r *http.Request) {
	var req AdminEventRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	users, err := h.Registrations.ListRegistrantsAs(r.Context(), req.Email, req.Title)
	if err != nil {
		respondError(w, r, err)
		return
	}
	emails := make([]string, len(users))
	for i := range users {
		emails[i] = users[i].Email
	}
	respondJSON(w, http.StatusOK, UsersRegisteredResponse{UsersRegistered: emails})
}
