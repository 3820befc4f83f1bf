// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
Package supervisor runs the long-lived services under a thejerf/suture
supervisor tree.

	root (connect4good)
	├── messaging-layer   membership audit router
	└── api-layer         HTTP server

Each layer restarts its own services with backoff when they fail. Events of
the tree are logged through sutureslog on the zerolog slog bridge:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddMessagingService(services.NewRouterService(router))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	errCh := tree.ServeBackground(ctx)
*/
package supervisor
