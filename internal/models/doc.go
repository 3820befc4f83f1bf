// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
Package models defines the domain types shared by every Connect4Good layer.

Key Components:

  - User: a volunteer account with its profile
  - Event: a volunteer event with a capacity and a registrant counter
  - Gender, WorkStatus, ImmigrationStatus: closed profile enumerations
  - MembershipEvent: a record of a committed change to the registration relation
  - Error: the typed error taxonomy mapped to HTTP statuses by the API layer

Input Boundary:

Requests are decoded into UserInput and EventInput. Their Validate methods
enforce the domain rules and return Validation errors whose Detail strings
are shown to clients verbatim:

	profile, err := input.Profile()
	if err != nil {
	    return err // *models.Error with Kind == KindValidation
	}

Enumerations parse case-insensitively and are stored in canonical
lowercase form ("M" and "m" both become GenderMale, stored as "m").

Error Handling:

	if errors.Is(err, models.ErrNotFound) { ... }

	var merr *models.Error
	if errors.As(err, &merr) {
	    status := statusFor(merr.Kind)
	}
*/
package models
