package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/dto"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// ContributionHandler accepts plugin menu contributions.
type ContributionHandler struct {
	service ports.ContributionService
}

// NewContributionHandler creates a new ContributionHandler.
func NewContributionHandler(service ports.ContributionService) *ContributionHandler {
	return &ContributionHandler{service: service}
}

// ContributeMenus handles POST /api/v1/plugins/{pluginId}/menus. The set is
// handed to the service and 202 Accepted is returned straight away;
// registrations complete in the background.
func (h *ContributionHandler) ContributeMenus(w http.ResponseWriter, r *http.Request) {
	pluginID, err := pathParam(r, "pluginId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.ContributionRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	set := req.ToContributions()
	h.service.HandleMenus(r.Context(), pluginID, set)

	writeJSON(w, http.StatusAccepted, dto.ContributionAcceptedResponse{
		Plugin:    pluginID,
		Locations: len(set),
		Items:     set.ItemCount(),
	})
}
