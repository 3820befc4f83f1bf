// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package authz provides the admin guard using Casbin.
//
// Every account maps to one role: "admin" when the admin flag is set,
// otherwise "volunteer". Admin-gated operations name a Permission
// (object + action) and the Guard asks the Casbin enforcer whether the
// acting user's role holds it.
//
// # RBAC Model
//
//	[request_definition]
//	r = sub, obj, act
//
//	[policy_definition]
//	p = sub, obj, act
//
//	[role_definition]
//	g = _, _
//
//	[policy_effect]
//	e = some(where (p.eft == allow))
//
//	[matchers]
//	m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
//
// # Policy
//
// The embedded policy.csv grants admin:
//
//	event: create, update, delete, registrants
//	user:  promote, demote, view, kick
//
// A file path in SecurityConfig.Casbin overrides either embedded file.
//
// # Error Wording
//
// The original API used two phrasings for the same failure. Event
// operations report "User not found" / "User is not an admin"; operations
// on another user report "Admin User not found" / "Current User is not an
// admin". Each Permission carries its wording so callers never pick it by
// hand.
//
// # Usage
//
//	enforcer, err := authz.NewEnforcer(&authz.EnforcerConfig{})
//	guard := authz.NewGuard(enforcer, store)
//
//	admin, err := guard.Authorize(ctx, email, authz.EventCreate)
//	if err != nil {
//	    return err // NotFound or NotAuthorized
//	}
package authz
