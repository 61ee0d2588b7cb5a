package menumodel_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/plugin-menus/internal/domain"
	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/commands"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/menumodel"
)

func strPtr(s string) *string { return &s }

func newModel(t *testing.T, ids ...string) *menumodel.Model {
	t.Helper()

	cmds := commands.New()
	for _, id := range ids {
		require.NoError(t, cmds.RegisterCommand(context.Background(), id))
	}
	return menumodel.New(cmds)
}

func TestRegisterMenuAction_UnknownCommand(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	err := m.RegisterMenuAction(context.Background(), menu.Path{"editor_context_menu", "nav"}, menu.Action{CommandID: "missing"})
	if !errors.Is(err, domain.ErrCommandNotRegistered) {
		t.Errorf("RegisterMenuAction() error = %v, want ErrCommandNotRegistered", err)
	}
}

func TestRegisterMenuAction_EmptyCommand(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	err := m.RegisterMenuAction(context.Background(), menu.Path{"a"}, menu.Action{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("RegisterMenuAction() error = %v, want ErrValidation", err)
	}
}

func TestActions_SortedByOrderThenCommand(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newModel(t, "b", "a", "c", "d")
	path := menu.Path{"editor_context_menu", "nav"}

	require.NoError(t, m.RegisterMenuAction(ctx, path, menu.Action{CommandID: "c", Order: strPtr("2")}))
	require.NoError(t, m.RegisterMenuAction(ctx, path, menu.Action{CommandID: "a", Order: strPtr("1")}))
	require.NoError(t, m.RegisterMenuAction(ctx, path, menu.Action{CommandID: "b", Order: strPtr("1")}))
	require.NoError(t, m.RegisterMenuAction(ctx, path, menu.Action{CommandID: "d"}))

	got := m.Actions(ctx, path)
	ids := make([]string, 0, len(got))
	for _, a := range got {
		ids = append(ids, a.CommandID)
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestActions_ExactPathOnly(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newModel(t, "x")

	require.NoError(t, m.RegisterMenuAction(ctx, menu.Path{"root", "group"}, menu.Action{CommandID: "x"}))

	require.Empty(t, m.Actions(ctx, menu.Path{"root"}))
	require.Len(t, m.Actions(ctx, menu.Path{"root", "group"}), 1)
	require.Empty(t, m.Actions(ctx, menu.Path{"other"}))
}

func TestRegisterMenuAction_RepeatedIsAppended(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newModel(t, "x")
	path := menu.Path{"root", ""}

	require.NoError(t, m.RegisterMenuAction(ctx, path, menu.Action{CommandID: "x"}))
	require.NoError(t, m.RegisterMenuAction(ctx, path, menu.Action{CommandID: "x"}))

	require.Len(t, m.Actions(ctx, path), 2)
}

func TestGroups(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newModel(t, "x")

	for _, g := range []string{"z", "a", "navigation"} {
		require.NoError(t, m.RegisterMenuAction(ctx, menu.Path{"root", g}, menu.Action{CommandID: "x"}))
	}

	require.Equal(t, []string{"a", "navigation", "z"}, m.Groups(ctx, menu.Path{"root"}))
	require.Nil(t, m.Groups(ctx, menu.Path{"missing"}))
}

func TestRegisterMenuAction_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	m := newModel(t, "x")
	path := menu.Path{"root", "g"}

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			if err := m.RegisterMenuAction(ctx, path, menu.Action{CommandID: "x"}); err != nil {
				t.Errorf("RegisterMenuAction() error = %v", err)
			}
		}()
	}
	wg.Wait()

	require.Len(t, m.Actions(ctx, path), n)
}
