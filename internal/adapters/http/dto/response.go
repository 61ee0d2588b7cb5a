// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// ContributionAcceptedResponse acknowledges a contribution set. Counts
// describe the input, not how many registrations succeed later.
type ContributionAcceptedResponse struct {
	Plugin    string `json:"plugin"`
	Locations int    `json:"locations"`
	Items     int    `json:"items"`
}

// CommandResponse represents a single registered command.
type CommandResponse struct {
	ID string `json:"id"`
}

// CommandListResponse lists registered commands.
type CommandListResponse struct {
	Commands []string `json:"commands"`
	Count    int      `json:"count"`
}

// LocationResponse maps a location token to its menu path.
type LocationResponse struct {
	Token string   `json:"token"`
	Path  []string `json:"path"`
}

// LocationListResponse lists known locations sorted by token.
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Count     int                `json:"count"`
}

// ActionResponse is a registered menu action.
type ActionResponse struct {
	CommandID string  `json:"command_id"`
	Order     *string `json:"order,omitempty"`
}

// MenuResponse describes one node of the host menu tree.
type MenuResponse struct {
	Path    []string         `json:"path"`
	Actions []ActionResponse `json:"actions"`
	Groups  []string         `json:"groups"`
}

// RegistrationStatsResponse reports registrar counters.
type RegistrationStatsResponse struct {
	Pending    int64 `json:"pending"`
	Registered int64 `json:"registered"`
	Failed     int64 `json:"failed"`
}

// HealthResponse is the liveness and readiness body. Checks maps each
// checker to "ok" or its error; PendingRegistrations is informational and
// never affects readiness.
type HealthResponse struct {
	Status               string            `json:"status"`
	Checks               map[string]string `json:"checks,omitempty"`
	PendingRegistrations *int64            `json:"pending_registrations,omitempty"`
}

// ToCommandListResponse converts command ids to a list response.
func ToCommandListResponse(ids []string) CommandListResponse {
	if ids == nil {
		ids = []string{}
	}
	return CommandListResponse{Commands: ids, Count: len(ids)}
}

// ToLocationListResponse resolves every token through resolver.
func ToLocationListResponse(resolver ports.LocationResolver) LocationListResponse {
	tokens := resolver.Tokens()
	items := make([]LocationResponse, 0, len(tokens))
	for _, token := range tokens {
		path, ok := resolver.Resolve(token)
		if !ok {
			continue
		}
		items = append(items, LocationResponse{Token: token, Path: path})
	}
	return LocationListResponse{Locations: items, Count: len(items)}
}

// ToMenuResponse builds the response for a menu node.
func ToMenuResponse(path menu.Path, actions []menu.Action, groups []string) MenuResponse {
	resp := MenuResponse{
		Path:    append([]string{}, path...),
		Actions: make([]ActionResponse, len(actions)),
		Groups:  groups,
	}
	if resp.Groups == nil {
		resp.Groups = []string{}
	}
	for i, a := range actions {
		resp.Actions[i] = ActionResponse{CommandID: a.CommandID, Order: a.Order}
	}
	return resp
}

// ToRegistrationStatsResponse converts registrar stats.
func ToRegistrationStatsResponse(s ports.RegistrationStats) RegistrationStatsResponse {
	return RegistrationStatsResponse{
		Pending:    s.Pending,
		Registered: s.Registered,
		Failed:     s.Failed,
	}
}
