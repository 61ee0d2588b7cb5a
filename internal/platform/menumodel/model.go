// Package menumodel provides the in-process host menu registry: a tree of
// menu nodes addressed by menu paths, where each node holds the actions
// registered at it. Actions are append-only.
package menumodel

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jsamuelsen11/plugin-menus/internal/domain"
	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MenuRegistry = (*Model)(nil)
	_ ports.MenuReader   = (*Model)(nil)
)

// CommandLookup reports whether a command is known to the host.
type CommandLookup interface {
	HasCommand(ctx context.Context, id string) bool
}

type node struct {
	children map[string]*node
	actions  []menu.Action
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

// Model is a thread-safe menu tree.
type Model struct {
	mu       sync.RWMutex
	root     *node
	commands CommandLookup
}

// New creates an empty menu model that validates command ids against commands.
func New(commands CommandLookup) *Model {
	return &Model{root: newNode(), commands: commands}
}

// RegisterMenuAction appends action at path, creating intermediate nodes.
// Returns domain.ErrCommandNotRegistered when the command is unknown.
func (m *Model) RegisterMenuAction(ctx context.Context, path menu.Path, action menu.Action) error {
	if strings.TrimSpace(action.CommandID) == "" {
		return domain.Required("command_id")
	}
	if !m.commands.HasCommand(ctx, action.CommandID) {
		return fmt.Errorf("registering %q at %s: %w", action.CommandID, path, domain.ErrCommandNotRegistered)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	n := m.root
	for _, seg := range path {
		child, ok := n.children[seg]
		if !ok {
			child = newNode()
			n.children[seg] = child
		}
		n = child
	}
	n.actions = append(n.actions, action)
	return nil
}

// Actions returns a copy of the actions registered exactly at path, sorted by
// their sort key and then by command id.
func (m *Model) Actions(_ context.Context, path menu.Path) []menu.Action {
	m.mu.RLock()
	n := m.lookupLocked(path)
	var out []menu.Action
	if n != nil {
		out = make([]menu.Action, len(n.actions))
		copy(out, n.actions)
	}
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		ki, kj := out[i].SortKey(), out[j].SortKey()
		if ki == kj {
			return out[i].CommandID < out[j].CommandID
		}
		return ki < kj
	})
	return out
}

// Groups returns the child segments registered below path, sorted.
func (m *Model) Groups(_ context.Context, path menu.Path) []string {
	m.mu.RLock()
	n := m.lookupLocked(path)
	var out []string
	if n != nil {
		out = make([]string, 0, len(n.children))
		for seg := range n.children {
			out = append(out, seg)
		}
	}
	m.mu.RUnlock()

	sort.Strings(out)
	return out
}

func (m *Model) lookupLocked(path menu.Path) *node {
	n := m.root
	for _, seg := range path {
		child, ok := n.children[seg]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}
