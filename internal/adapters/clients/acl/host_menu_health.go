package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. It matches the service name of the underlying
// [httpclient.Client], "host-menus" in the composition root.
func (c *HostMenuClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the remote host's availability from the circuit breaker
// state; no network call is made. A failing host does not make this service
// unready, it only degrades the health report.
func (c *HostMenuClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
