// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/models"
)

// DetailInternal is the only detail a client sees for unclassified errors.
const DetailInternal = "Internal server error"

// MessageResponse is the body of every mutating endpoint.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// respondJSON writes v as JSON with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

func respondMessage(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// statusFor maps an error kind to its HTTP status.
func statusFor(kind models.Kind) int {
	switch kind {
	case models.KindNotFound:
		return http.StatusNotFound
	case models.KindConflict, models.KindCapacityExceeded, models.KindNotRegistered:
		return http.StatusConflict
	case models.KindValidation:
		return http.StatusBadRequest
	case models.KindNotAuthorized:
		return http.StatusForbidden
	case models.KindInvalidCredentials:
		return http.StatusUnauthorized
	case models.KindExternalService:
		return http.StatusFailedDependency
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"detail": ...}. Domain errors keep their
// detail; anything else is logged and reported as an internal error.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var merr *models.Error
	if !errors.As(err, &merr) || merr.Kind == models.KindInternal {
		logging.Ctx(r.Context()).Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Request failed")
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: DetailInternal})
		return
	}

	status := statusFor(merr.Kind)
	if merr.Kind == models.KindExternalService {
		logging.Ctx(r.Context()).Warn().Err(err).
			Str("kind", merr.Kind.String()).
			Str("path", r.URL.Path).
			Msg("Upstream dependency failed")
	}
	respondJSON(w, status, ErrorResponse{Detail: merr.Detail})
}
