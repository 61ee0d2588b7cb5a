// Package commands provides the in-process host command registry. Besides
// answering whether a command exists, it publishes registration completion
// as a readiness signal: callers can block on WaitForCommand until a plugin
// finishes registering the command they depend on.
package commands

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/jsamuelsen11/plugin-menus/internal/domain"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CommandRegistry = (*Registry)(nil)
	_ ports.CommandWaiter   = (*Registry)(nil)
)

// Registry is a thread-safe command registry. An id that is waited on before
// it is registered gets a pending entry whose channel is closed when the
// command is registered. The entry is removed on registration or when its
// last waiter gives up.
type Registry struct {
	mu      sync.Mutex
	pending map[string]*pendingCommand
	present map[string]bool
}

type pendingCommand struct {
	ready   chan struct{}
	waiters int
}

// New creates an empty command registry.
func New() *Registry {
	return &Registry{
		pending: make(map[string]*pendingCommand),
		present: make(map[string]bool),
	}
}

// RegisterCommand marks id as registered and releases every waiter.
// Registering the same id again is a no-op.
func (r *Registry) RegisterCommand(_ context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domain.Required("id")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.present[id] {
		return nil
	}
	r.present[id] = true
	if p, ok := r.pending[id]; ok {
		close(p.ready)
		delete(r.pending, id)
	}
	return nil
}

// HasCommand reports whether id is registered.
func (r *Registry) HasCommand(_ context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.present[id]
}

// Commands returns all registered command ids in sorted order.
func (r *Registry) Commands(_ context.Context) []string {
	r.mu.Lock()
	ids := make([]string, 0, len(r.present))
	for id := range r.present {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	sort.Strings(ids)
	return ids
}

// WaitForCommand blocks until id is registered or ctx is done. It returns
// immediately when the command already exists.
func (r *Registry) WaitForCommand(ctx context.Context, id string) error {
	r.mu.Lock()
	if r.present[id] {
		r.mu.Unlock()
		return nil
	}
	p, ok := r.pending[id]
	if !ok {
		p = &pendingCommand{ready: make(chan struct{})}
		r.pending[id] = p
	}
	p.waiters++
	r.mu.Unlock()

	select {
	case <-p.ready:
		return nil
	case <-ctx.Done():
		r.release(id, p)
		return ctx.Err()
	}
}

// release drops one waiter from p and forgets the entry once nobody is left
// waiting for a command that never arrived.
func (r *Registry) release(id string, p *pendingCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.waiters--
	if p.waiters == 0 && r.pending[id] == p {
		delete(r.pending, id)
	}
}
