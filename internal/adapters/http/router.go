// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/handlers"
)

// Handlers groups the route handlers. Commands is nil when the host command
// registry is remote; its routes are then not registered, and neither is the
// menu tree view unless Menus can read it.
type Handlers struct {
	Contributions *handlers.ContributionHandler
	Commands      *handlers.CommandHandler
	Menus         *handlers.MenuHandler
	Registrations *handlers.RegistrationHandler
	Health        *handlers.HealthHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(h Handlers, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/plugins/{pluginId}/menus", h.Contributions.ContributeMenus)
		r.Get("/locations", h.Menus.ListLocations)
		r.Get("/registrations/stats", h.Registrations.Stats)

		// In-process host only.
		if h.Commands != nil {
			r.Get("/commands", h.Commands.ListCommands)
			r.Post("/commands", h.Commands.RegisterCommand)
		}
		if h.Menus.CanReadMenus() {
			r.Get("/menus", h.Menus.GetMenu)
		}
	})

	return r
}
