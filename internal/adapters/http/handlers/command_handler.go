package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/dto"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// CommandHandler exposes the in-process host command registry.
type CommandHandler struct {
	registry ports.CommandRegistry
}

// NewCommandHandler creates a new CommandHandler.
func NewCommandHandler(registry ports.CommandRegistry) *CommandHandler {
	return &CommandHandler{registry: registry}
}

// ListCommands handles GET /api/v1/commands.
func (h *CommandHandler) ListCommands(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToCommandListResponse(h.registry.Commands(r.Context())))
}

// RegisterCommand handles POST /api/v1/commands.
func (h *CommandHandler) RegisterCommand(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterCommandRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.registry.RegisterCommand(r.Context(), req.ID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.CommandResponse{ID: req.ID})
}
