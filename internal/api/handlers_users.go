// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package api

import (
	"net/http"

	"github.com/tomtom215/connect4good/internal/models"
)

// Success messages of the user endpoints.
const (
	MsgUserRegistered = "User and Profile registered successfully"
	MsgLoginOK        = "Login successful"
	MsgDatabaseReset  = "Database reset successfully"
	MsgUserUpdated    = "User and Profile updated successfully"
	MsgUserDeleted    = "User and Profile deleted successfully"
	MsgUserPromoted   = "User promoted to admin successfully"
	MsgUserDemoted    = "User demoted from admin successfully"
)

// IsAdminResponse is the body of GET /user/is_admin.
type IsAdminResponse struct {
	IsAdmin bool `json:"is_admin"`
}

// EventsRegisteredResponse lists event titles in registration order.
type EventsRegisteredResponse struct {
	EventsRegistered []string `json:"events_registered"`
}

// IsRegisteredResponse is the body of POST /user/is_registered.
type IsRegisteredResponse struct {
	IsRegistered bool `json:"is_registered"`
}

// Register creates a user account and profile.
//
// @Summary Sign up
// @Description Creates a user. A taken email is reported before profile validation.
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.UserInput true "Account and profile"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.UserInput
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if _, err := h.Accounts.SignUp(r.Context(), &req); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgUserRegistered)
}

// Login checks an email and password pair.
//
// @Summary Check credentials
// @Tags Users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} MessageResponse
// @Failure 401 {object} ErrorResponse "Incorrect Email or Incorrect Password"
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if _, err := h.Auth.Login(r.Context(), req.Email, req.Password); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgLoginOK)
}

// ResetDB drops and recreates every table. Mounted only when
// server.allow_reset is set.
//
// @Summary Reset the database
// @Tags Admin
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /reset_db [post]
func (h *Handler) ResetDB(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgDatabaseReset)
}

// GetUser returns a profile with registered event titles. The password
// hash is never included.
//
// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} accounts.ProfileView
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /user/get_user [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	view, err := h.Accounts.Profile(r.Context(), req.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// UpdateUser replaces every profile field of an existing user.
//
// @Summary Update a user profile
// @Tags Users
// @Accept json
// @Produce json
// @Param request body models.UserInput true "Full profile"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /user/update_user [post]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UserInput
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Accounts.UpdateProfile(r.Context(), &req); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgUserUpdated)
}

// DeleteUser removes a user and all of the user's registrations.
//
// @Summary Delete a user
// @Tags Users
// @Accept json
// @Produce json
// @Param email query string false "User email"
// @Param request body EmailRequest false "User email"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /user/delete_user [post]
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Accounts.DeleteUser(r.Context(), req.Email); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgUserDeleted)
}

// IsAdmin reports the admin flag of a user.
//
// @Summary Check the admin flag
// @Tags Users
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} IsAdminResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /user/is_admin [get]
func (h *Handler) IsAdmin(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	isAdmin, err := h.Accounts.IsAdmin(r.Context(), req.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, IsAdminResponse{IsAdmin: isAdmin})
}

// PromoteAdmin grants the admin flag.
//
// @Summary Promote a user to admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body ChangeAdminRequest true "Acting admin and target"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse "Current User is not an admin"
// @Failure 404 {object} ErrorResponse "Admin User not found or New User not found"
// @Router /user/promote_admin [post]
func (h *Handler) PromoteAdmin(w http.ResponseWriter, r *http.Request) {
	var req ChangeAdminRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Accounts.Promote(r.Context(), req.CurrUserEmail, req.NewUserEmail); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgUserPromoted)
}

// DemoteAdmin clears the admin flag.
//
// @Summary Demote a user from admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body ChangeAdminRequest true "Acting admin and target"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/demote_admin [post]
func (h *Handler) DemoteAdmin(w http.ResponseWriter, r *http.Request) {
	var req ChangeAdminRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Accounts.Demote(r.Context(), req.CurrUserEmail, req.NewUserEmail); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgUserDemoted)
}

// GetUserEvents lists the titles of the events a user registered for.
//
// @Summary List a user's events
// @Tags Users
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} EventsRegisteredResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /user/get_user_events [get]
func (h *Handler) GetUserEvents(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	events, err := h.Registrations.ListUserEvents(r.Context(), req.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}
	titles := make([]string, len(events))
	for i := range events {
		titles[i] = events[i].Title
	}
	respondJSON(w, http.StatusOK, EventsRegisteredResponse{EventsRegistered: titles})
}

// IsRegistered reports whether a user is registered for an event.
//
// @Summary Check a registration
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UserEventRequest true "User and event"
// @Success 200 {object} IsRegisteredResponse
// @Failure 404 {object} ErrorResponse
// @Router /user/is_registered [post]
func (h *Handler) IsRegistered(w http.ResponseWriter, r *http.Request) {
	var req UserEventRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	registered, err := h.Registrations.IsRegistered(r.Context(), req.UserEmail, req.EventTitle)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, IsRegisteredResponse{IsRegistered: registered})
}
