package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/dto"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
	tracker  ports.RegistrationTracker
}

// NewHealthHandler returns a HealthHandler. tracker may be nil; when set,
// readiness also reports how many registrations are still pending.
func NewHealthHandler(registry ports.HealthRegistry, tracker ports.RegistrationTracker) *HealthHandler {
	return &HealthHandler{registry: registry, tracker: tracker}
}

// Liveness handles GET /health/live.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready: 200 when every check passes, 503
// otherwise. Pending registrations do not make the service unready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	resp := dto.HealthResponse{Status: statusReady, Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(r.Context()) {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Status, code = statusNotReady, http.StatusServiceUnavailable
	}

	if h.tracker != nil {
		pending := h.tracker.Stats().Pending
		resp.PendingRegistrations = &pending
	}

	writeJSON(w, code, resp)
}
