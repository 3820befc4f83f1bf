// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package api

import "net/http"

// TasksResponse carries the generated task paragraph.
type TasksResponse struct {
	Response string `json:"response"`
}

// SimilarEventsResponse lists up to five titles, most similar first.
type SimilarEventsResponse struct {
	Top5Events []string `json:"top_5_events"`
}

// GenerateTasks asks the language model for tasks tailored to the user.
//
// @Summary Generate personalized tasks
// @Tags ML
// @Accept json
// @Produce json
// @Param request body UserEventRequest true "User and event"
// @Success 200 {object} TasksResponse
// @Failure 404 {object} ErrorResponse
// @Failure 424 {object} ErrorResponse "Task generation service unavailable"
// @Router /user/generate_tasks [post]
func (h *Handler) GenerateTasks(w http.ResponseWriter, r *http.Request) {
	var req UserEventRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := h.mlContext(r.Context())
	defer cancel()

	text, err := h.Tasks.Generate(ctx, req.UserEmail, req.EventTitle)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, TasksResponse{Response: text})
}

// GetSimilarEvents ranks events by embedding similarity to the profile.
//
// @Summary Recommend events
// @Tags ML
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} SimilarEventsResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 424 {object} ErrorResponse "Embedding service unavailable"
// @Router /user/get_similar_events [get]
func (h *Handler) GetSimilarEvents(w http.ResponseWriter, r *http.Request) {
	var req EmailRequest
	if err := bind(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	ctx, cancel := h.mlContext(r.Context())
	defer cancel()

	titles, err := h.Recommender.Recommend(ctx, req.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}
	if titles == nil {
		titles = []string{}
	}
	respondJSON(w, http.StatusOK, SimilarEventsResponse{Top5Events: titles})
}
