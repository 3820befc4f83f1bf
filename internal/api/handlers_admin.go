// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package api

import "net/http"

// AdminGetUser returns another user's profile to an admin.
//
// @Summary Get a user profile as admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body ChangeAdminRequest true "Acting admin and target"
// @Success 200 {object} accounts.ProfileView
// @Failure 403 {object} ErrorResponse "Current User is not an admin"
// @Failure 404 {object} ErrorResponse "Admin User not found or New User not found"
// @Router /admin/get_user [post]
func (h *Handler) AdminGetUser(w http.ResponseWriter, r *http.Request) {
	var req ChangeAdminRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	view, err := h.Accounts.AdminProfile(r.Context(), req.CurrUserEmail, req.NewUserEmail)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

// KickUser removes another user from an event.
//
// @Summary Kick a user from an event
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body KickUserRequest true "Acting admin, target and title"
// @Success 200 {object} MessageResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "New User not registered for event"
// @Router /admin/kick_user [post]
func (h *Handler) KickUser(w http.ResponseWriter, r *http.Request) {
	var req KickUserRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.Registrations.Kick(r.Context(), req.CurrUserEmail, req.NewUserEmail, req.Title); err != nil {
		respondError(w, r, err)
		return
	}
	respondMessage(w, MsgUserKicked)
}
