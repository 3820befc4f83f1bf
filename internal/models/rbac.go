// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
rbac.go - Role Models

Roles are derived from the user's admin flag rather than stored separately:

  - volunteer: every account; may manage its own profile and registrations
  - admin: may manage events and other users

The role names match the subjects in internal/authz/policy.csv.
*/

package models

// Role constants define the standard roles in the system.
const (
	// RoleVolunteer is the default role of every account.
	RoleVolunteer = "volunteer"

	// RoleAdmin is granted to accounts with the admin flag.
	RoleAdmin = "admin"
)

// ValidRoles contains all valid role names for validation.
var ValidRoles = []string{RoleVolunteer, RoleAdmin}

// IsValidRole checks if a role name is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
