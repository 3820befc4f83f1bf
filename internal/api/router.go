// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/connect4good/internal/middleware"
)

// RouterConfig holds router-level settings.
type RouterConfig struct {
	CORS CORSConfig

	// SlowRequestThreshold marks slow requests in the access log.
	SlowRequestThreshold time.Duration

	// EnableSwagger mounts the Swagger UI at /swagger/.
	EnableSwagger bool
}

// Router wires the handlers into a chi mux.
type Router struct {
	handler *Handler
	config  RouterConfig
}

// NewRouter creates a router for handler.
func NewRouter(handler *Handler, cfg RouterConfig) *Router {
	return &Router{handler: handler, config: cfg}
}

// Setup builds the HTTP handler with the full middleware stack.
func (router *Router) Setup() http.Handler {
	h := router.handler
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(router.config.SlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(router.config.CORS)) // must be global to answer OPTIONS preflight
	r.Use(middleware.PrometheusMetrics)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusNotFound, ErrorResponse{Detail: "Not Found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Detail: "Method Not Allowed"})
	})

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	if router.config.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
			httpSwagger.DomID("swagger-ui"),
		))
	}

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	if h.config.AllowReset {
		r.Post("/reset_db", h.ResetDB)
	}

	r.Route("/user", func(r chi.Router) {
		r.Get("/get_user", h.GetUser)
		r.Post("/update_user", h.UpdateUser)
		r.Post("/delete_user", h.DeleteUser)
		r.Get("/is_admin", h.IsAdmin)
		r.Post("/promote_admin", h.PromoteAdmin)
		r.Post("/demote_admin", h.DemoteAdmin)
		r.Get("/get_user_events", h.GetUserEvents)
		r.Post("/is_registered", h.IsRegistered)
		r.Post("/generate_tasks", h.GenerateTasks)
		r.Get("/get_similar_events", h.GetSimilarEvents)
	})

	r.Route("/event", func(r chi.Router) {
		r.Post("/create_event", h.CreateEvent)
		r.Post("/update_event", h.UpdateEvent)
		r.Post("/delete_event", h.DeleteEvent)
		r.Get("/get_event", h.GetEvent)
		r.Get("/get_events", h.GetEvents)
		r.Post("/register_event", h.RegisterEvent)
		r.Post("/unregister_event", h.UnregisterEvent)
		r.Post("/get_users_registered", h.GetUsersRegistered)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/get_user", h.AdminGetUser)
		r.Post("/kick_user", h.KickUser)
	})

	return r
}
