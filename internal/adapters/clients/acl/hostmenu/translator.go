package hostmenu

import (
	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
)

// ToActionRequest converts a menu path and action to the remote host's
// request body. The path is copied; an empty path is sent as an empty list
// rather than null.
func ToActionRequest(path menu.Path, action menu.Action) ActionRequestDTO {
	segments := make([]string, len(path))
	copy(segments, path)

	return ActionRequestDTO{
		Path:      segments,
		CommandID: action.CommandID,
		Order:     action.Order,
	}
}
