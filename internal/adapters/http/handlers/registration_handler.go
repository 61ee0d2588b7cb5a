package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/dto"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// RegistrationHandler reports deferred registration progress.
type RegistrationHandler struct {
	tracker ports.RegistrationTracker
}

// NewRegistrationHandler creates a new RegistrationHandler.
func NewRegistrationHandler(tracker ports.RegistrationTracker) *RegistrationHandler {
	return &RegistrationHandler{tracker: tracker}
}

// Stats handles GET /api/v1/registrations/stats.
func (h *RegistrationHandler) Stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToRegistrationStatsResponse(h.tracker.Stats()))
}
