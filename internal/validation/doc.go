// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package validation provides request struct validation using
// go-playground/validator v10.
//
// The package wraps the validator library in a thread-safe singleton with
// JSON field naming and messages suitable for the API's
// {"detail": "..."} error body.
//
// # Quick Start
//
//	type loginRequest struct {
//	    Email    string `json:"email" validate:"required,email"`
//	    Password string `json:"password" validate:"required"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    respondDetail(w, http.StatusBadRequest, verr.Detail())
//	    return
//	}
//
// # Field Names
//
// Errors report the json tag name of the failing field ("email",
// "curr_user_email") instead of the Go field name, so messages match the
// request payload the client sent.
//
// # Custom Tags
//
//   - notblank: string must contain at least one non-whitespace character
//
// # Scope
//
// Only request shape is checked here. Domain rules (age, capacity, the
// profile enumerations) are enforced by the models package, which owns
// the user-facing wording of those messages.
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
package validation
