// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
Package api exposes the volunteer coordination operations over HTTP.

Routes keep the paths of the original service (/register, /user/...,
/event/..., /admin/...). Every body is JSON. Endpoints that historically
took query parameters accept both the query string and a JSON body; when
both carry a field the body wins.

Errors are always written as

	{"detail": "Event is full already"}

with a status derived from the models.Kind of the error:

	not_found            404
	conflict             409
	validation           400
	not_authorized       403
	capacity_exceeded    409
	not_registered       409
	invalid_credentials  401
	external_service     424
	anything else        500 "Internal server error"

Handlers depend on small interfaces (Accounts, Catalog, Registrations,
Authenticator, Recommender, TaskGenerator, Store) so tests can run them
against real services on an in-memory DuckDB or against stubs.
*/
package api
