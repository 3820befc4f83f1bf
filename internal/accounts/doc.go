// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package accounts implements user lifecycle operations: sign-up, profile
// replacement, deletion, admin promotion and demotion, and the profile views
// returned to the user and to admins.
//
// Passwords are hashed with the configured auth.Hasher before they reach
// the store; the hash never leaves this package in a view.
package accounts
