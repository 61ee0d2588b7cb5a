package dto

import (
	"strings"

	"github.com/jsamuelsen11/plugin-menus/internal/domain"
	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
)

const msgRequired = "is required"

// MenuItemRequest is one contributed menu item.
type MenuItemRequest struct {
	Command string  `json:"command"`
	Group   *string `json:"group,omitempty"`
}

// ContributionRequest is the JSON body of a plugin's menu contributions,
// keyed by location token:
//
//	{"editor/context": [{"command": "file.open", "group": "navigation@1"}]}
//
// Items are not validated here. A blank command fails only its own
// registration, after the rest of the set has been scheduled.
type ContributionRequest map[string][]MenuItemRequest

// ToContributions converts the request into the domain contribution set.
func (r *ContributionRequest) ToContributions() menu.Contributions {
	set := make(menu.Contributions, len(*r))
	for location, items := range *r {
		out := make([]menu.Item, len(items))
		for i, it := range items {
			out[i] = menu.Item{Command: it.Command, Group: it.Group}
		}
		set[location] = out
	}
	return set
}

// RegisterCommandRequest is the JSON body for registering a host command.
type RegisterCommandRequest struct {
	ID string `json:"id"`
}

// Validate checks that the command id is present.
func (r *RegisterCommandRequest) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return &domain.ValidationError{Fields: map[string]string{"id": msgRequired}}
	}
	return nil
}
