// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package tasks asks a text-generation service for volunteer tasks tailored
// to one user and one event.
//
// The prompt combines the event description and task list with the user's
// skills, interests and past experience. The generated text is returned as
// is. Failures of the generation service are reported as
// models.ErrExternalService and are never retried.
package tasks
