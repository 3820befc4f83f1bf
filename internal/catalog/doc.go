// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package catalog manages the volunteer event catalog.
//
// Creating, updating and deleting events requires an admin acting user;
// reads are open. Deleting an event also removes every registration for it
// and reports one cascaded membership event per removed registrant.
package catalog
