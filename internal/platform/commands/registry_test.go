package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/plugin-menus/internal/domain"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/commands"
)

func TestRegisterCommand(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := commands.New()

	require.False(t, r.HasCommand(ctx, "git.commit"))
	require.NoError(t, r.RegisterCommand(ctx, "git.commit"))
	require.True(t, r.HasCommand(ctx, "git.commit"))

	// Idempotent.
	require.NoError(t, r.RegisterCommand(ctx, "git.commit"))
	require.Equal(t, []string{"git.commit"}, r.Commands(ctx))
}

func TestRegisterCommand_EmptyID(t *testing.T) {
	t.Parallel()

	err := commands.New().RegisterCommand(context.Background(), " ")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("RegisterCommand(blank) error = %v, want ErrValidation", err)
	}
}

func TestCommands_Sorted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := commands.New()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, r.RegisterCommand(ctx, id))
	}

	require.Equal(t, []string{"a", "b", "c"}, r.Commands(ctx))
}

func TestWaitForCommand_AlreadyRegistered(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := commands.New()
	require.NoError(t, r.RegisterCommand(ctx, "x"))

	require.NoError(t, r.WaitForCommand(ctx, "x"))
}

func TestWaitForCommand_ReleasedByRegistration(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := commands.New()

	const waiters = 10
	errs := make(chan error, waiters)
	var started sync.WaitGroup
	started.Add(waiters)
	for range waiters {
		go func() {
			started.Done()
			errs <- r.WaitForCommand(ctx, "late.command")
		}()
	}
	started.Wait()

	select {
	case err := <-errs:
		t.Fatalf("WaitForCommand returned %v before registration", err)
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, r.RegisterCommand(ctx, "late.command"))

	for range waiters {
		select {
		case err := <-errs:
			require.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("waiter not released after registration")
		}
	}
}

func TestWaitForCommand_ContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := commands.New().WaitForCommand(ctx, "never")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("WaitForCommand() error = %v, want DeadlineExceeded", err)
	}
}
