package ports

import (
	"context"

	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
)

// ContributionService resolves plugin menu contributions into host menu
// registrations. Implemented by the application layer; called by inbound
// adapters.
type ContributionService interface {
	// HandleMenus processes one plugin's contribution set. It returns once
	// every valid item has been scheduled; registrations complete later.
	// Unknown locations are logged and skipped. No error is returned.
	HandleMenus(ctx context.Context, pluginID string, set menu.Contributions)
}

// ActionScheduler defers registration of a single menu action.
type ActionScheduler interface {
	// Schedule submits {path ++ [group], commandID, order} to the host menu
	// registry later. It returns immediately and cannot be cancelled.
	Schedule(ctx context.Context, path menu.Path, group, commandID string, order *string)
}

// LocationResolver maps plugin location tokens to host menu paths.
type LocationResolver interface {
	// Resolve returns the path for token, or false when the token is unknown.
	Resolve(token string) (menu.Path, bool)

	// Tokens returns every known token, sorted.
	Tokens() []string
}

// RegistrationStats counts scheduled registrations by state.
type RegistrationStats struct {
	Pending    int64
	Registered int64
	Failed     int64
}

// RegistrationTracker reports registrar progress.
type RegistrationTracker interface {
	Stats() RegistrationStats
}
