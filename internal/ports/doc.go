// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by handlers.
// Host ports describe the hosting application's menu and command registries,
// implemented either in-process (platform packages) or by outbound adapters.
package ports
