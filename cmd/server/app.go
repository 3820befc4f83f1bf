// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ThreeDotsLabs/watermill"

	"github.com/tomtom215/connect4good/internal/accounts"
	"github.com/tomtom215/connect4good/internal/api"
	"github.com/tomtom215/connect4good/internal/auth"
	"github.com/tomtom215/connect4good/internal/authz"
	"github.com/tomtom215/connect4good/internal/catalog"
	"github.com/tomtom215/connect4good/internal/config"
	"github.com/tomtom215/connect4good/internal/database"
	"github.com/tomtom215/connect4good/internal/eventprocessor"
	"github.com/tomtom215/connect4good/internal/llm"
	"github.com/tomtom215/connect4good/internal/logging"
	"github.com/tomtom215/connect4good/internal/recommend"
	"github.com/tomtom215/connect4good/internal/registration"
	"github.com/tomtom215/connect4good/internal/supervisor"
	"github.com/tomtom215/connect4good/internal/supervisor/services"
	"github.com/tomtom215/connect4good/internal/tasks"
)

// app owns every long-lived component built from the configuration.
type app struct {
	cfg *config.Config
	db  *database.DB

	transport *eventprocessor.Transport
	publisher *eventprocessor.MembershipPublisher
	router    *eventprocessor.Router

	server *http.Server
}

func newApp(cfg *config.Config) (_ *app, err error) {
	a := &app{cfg: cfg}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.db, err = database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	logging.Info().Str("driver", a.db.Driver()).Msg("Database initialized successfully")

	enforcer, err := authz.NewEnforcer(&authz.EnforcerConfig{
		ModelPath:  cfg.Security.Casbin.ModelPath,
		PolicyPath: cfg.Security.Casbin.PolicyPath,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize authorization: %w", err)
	}
	logging.Info().
		Int("rules", len(enforcer.GetPolicy())).
		Msg("Admin policy loaded")
	guard := authz.NewGuard(enforcer, a.db)

	hasher, err := auth.NewBcryptHasher(cfg.Security.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("initialize credential hasher: %w", err)
	}

	var notifier *eventprocessor.MembershipPublisher
	if cfg.Events.Enabled {
		if err := a.initEvents(); err != nil {
			return nil, err
		}
		notifier = a.publisher
	} else {
		logging.Info().Msg("Membership event stream disabled (EVENTS_ENABLED=false)")
	}

	engine := registration.NewEngine(a.db, guard, registration.Config{
		MaxAttempts:  cfg.Registration.MaxAttempts,
		RetryBackoff: cfg.Registration.RetryBackoff,
	}, registration.WithNotifier(optionalNotifier(notifier)))

	mlClient, err := llm.NewClient(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("initialize ML client: %w", err)
	}
	recommender, err := recommend.NewEngine(a.db, a.db, mlClient, recommend.Config{
		TopK:           cfg.Recommend.TopK,
		MaxConcurrency: cfg.Recommend.MaxConcurrency,
	}, logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("initialize recommendation engine: %w", err)
	}

	handler := api.NewHandler(api.Deps{
		Accounts:      accounts.NewService(a.db, engine, guard, hasher, optionalNotifier(notifier)),
		Catalog:       catalog.NewService(a.db, guard, optionalNotifier(notifier)),
		Registrations: engine,
		Auth:          auth.NewAuthenticator(a.db, hasher),
		Recommender:   recommender,
		Tasks:         tasks.NewGenerator(a.db, mlClient),
		Store:         a.db,
	}, api.HandlerConfig{
		AllowReset: cfg.Server.AllowReset,
		MLTimeout:  cfg.LLM.Timeout,
	})

	routes := api.NewRouter(handler, api.RouterConfig{
		CORS:                 api.CORSConfig{AllowedOrigins: cfg.Server.CORSOrigins},
		SlowRequestThreshold: time.Second,
		EnableSwagger:        true,
	})

	a.server = &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           routes.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// ML-backed handlers may take up to the LLM timeout.
		WriteTimeout: cfg.Server.Timeout + cfg.LLM.Timeout,
		IdleTimeout:  120 * time.Second,
	}
	return a, nil
}

// initEvents builds the transport, the publisher and the audit router.
func (a *app) initEvents() error {
	streamCfg := eventprocessor.DefaultConfig(a.cfg.Events.Topic)
	streamCfg.NATSURL = a.cfg.Events.NATSURL
	logger := watermill.NewSlogLogger(logging.NewSlogLogger())

	transport, err := eventprocessor.NewTransport(&streamCfg, logger)
	if err != nil {
		return fmt.Errorf("initialize event transport: %w", err)
	}
	a.transport = transport

	router, err := eventprocessor.NewRouter(&streamCfg, transport.Subscriber, a.db, logger)
	if err != nil {
		return fmt.Errorf("initialize audit router: %w", err)
	}
	a.router = router
	a.publisher = eventprocessor.NewMembershipPublisher(transport.Publisher, streamCfg.Topic)

	logging.Info().
		Str("transport", transport.Kind).
		Str("topic", streamCfg.Topic).
		Msg("Membership event stream initialized")
	return nil
}

// register adds the services to the supervisor tree.
func (a *app) register(tree *supervisor.SupervisorTree) {
	if a.router != nil {
		tree.AddMessagingService(services.NewRouterService(a.router))
	}
	tree.AddAPIService(services.NewHTTPServerService(a.server, a.cfg.Server.Timeout))
	logging.Info().Str("addr", a.server.Addr).Msg("HTTP server registered")
}

// Close releases the stream and the database. Safe on a partially built app.
func (a *app) Close() {
	if a.publisher != nil {
		a.publisher.Close()
	}
	var errs []error
	if a.router != nil {
		errs = append(errs, a.router.Close())
	}
	if a.transport != nil {
		errs = append(errs, a.transport.Close())
	}
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if err := errors.Join(errs...); err != nil {
		logging.Error().Err(err).Msg("Error during shutdown")
	}
}

// optionalNotifier turns a nil publisher into a nil interface so the
// services fall back to their no-op notifier.
func optionalNotifier(p *eventprocessor.MembershipPublisher) registration.Notifier {
	if p == nil {
		return nil
	}
	return p
}
