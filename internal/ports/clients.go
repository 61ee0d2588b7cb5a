package ports

import (
	"context"

	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
)

// MenuRegistry is the host menu registry. Implemented by the in-memory menu
// model and by the remote host ACL client; called by the registrar.
type MenuRegistry interface {
	// RegisterMenuAction appends an action at path. Calls are independent and
	// may be repeated. Returns domain.ErrCommandNotRegistered when the host
	// does not know action.CommandID yet.
	RegisterMenuAction(ctx context.Context, path menu.Path, action menu.Action) error
}

// MenuReader exposes a read-only view of the host menu tree.
type MenuReader interface {
	// Actions returns the actions registered exactly at path, in host order.
	Actions(ctx context.Context, path menu.Path) []menu.Action

	// Groups returns the child segments registered below path, sorted.
	Groups(ctx context.Context, path menu.Path) []string
}

// CommandRegistry is the host command registry.
type CommandRegistry interface {
	// RegisterCommand makes a command known to the host. Idempotent.
	// Returns domain.ErrValidation for an empty id.
	RegisterCommand(ctx context.Context, id string) error

	// HasCommand reports whether id is registered.
	HasCommand(ctx context.Context, id string) bool

	// Commands returns all registered ids, sorted.
	Commands(ctx context.Context) []string
}

// CommandWaiter exposes command registration completion as a readiness
// signal the registrar can wait on.
type CommandWaiter interface {
	// WaitForCommand blocks until id is registered or ctx is done.
	WaitForCommand(ctx context.Context, id string) error
}
