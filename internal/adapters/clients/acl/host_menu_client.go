package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/clients/acl/hostmenu"
	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/httpclient"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// registerActionPath is the remote host's menu action collection.
const registerActionPath = "/api/v1/menus/actions"

// Compile-time interface checks.
var (
	_ ports.MenuRegistry  = (*HostMenuClient)(nil)
	_ ports.HealthChecker = (*HostMenuClient)(nil)
)

// HostMenuClient is the outbound adapter for a host menu registry running in
// another process. It implements [ports.MenuRegistry] by posting each action
// to the host, translating the request via [hostmenu] and the host's
// problem responses via [TranslateHTTPError].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff and OpenTelemetry tracing.
type HostMenuClient struct {
	client *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewHostMenuClient creates a HostMenuClient that sends requests through the
// given [httpclient.Client]. The client's BaseURL should point to the host
// root (e.g. "https://host.example.com").
func NewHostMenuClient(client *httpclient.Client, logger *slog.Logger) *HostMenuClient {
	return &HostMenuClient{
		client: client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// RegisterMenuAction sends POST /api/v1/menus/actions and expects 201.
// Returns [domain.ErrCommandNotRegistered] when the host does not know the
// command yet.
func (c *HostMenuClient) RegisterMenuAction(ctx context.Context, path menu.Path, action menu.Action) error {
	body := hostmenu.ToActionRequest(path, action)

	if err := c.req.Post(ctx, registerActionPath, http.StatusCreated, body, nil); err != nil {
		return fmt.Errorf("registering %s at %q on host: %w", action.CommandID, path.String(), err)
	}
	return nil
}
