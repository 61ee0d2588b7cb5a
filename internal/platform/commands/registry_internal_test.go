package commands

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func pendingCount(r *Registry) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

func TestWaitForCommand_ForgetsAbandonedIDs(t *testing.T) {
	t.Parallel()

	r := New()
	for _, id := range []string{"ghost.one", "ghost.two", "ghost.three"} {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
		require.ErrorIs(t, r.WaitForCommand(ctx, id), context.DeadlineExceeded)
		cancel()
	}

	require.Zero(t, pendingCount(r))
}

func TestWaitForCommand_KeepsEntryWhileOthersWait(t *testing.T) {
	t.Parallel()

	r := New()
	ctx := context.Background()

	longCtx, cancelLong := context.WithCancel(ctx)
	defer cancelLong()

	var wg sync.WaitGroup
	var longErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		longErr = r.WaitForCommand(longCtx, "late.cmd")
	}()
	require.Eventually(t, func() bool { return pendingCount(r) == 1 }, time.Second, time.Millisecond)

	shortCtx, cancelShort := context.WithTimeout(ctx, 5*time.Millisecond)
	defer cancelShort()
	require.ErrorIs(t, r.WaitForCommand(shortCtx, "late.cmd"), context.DeadlineExceeded)
	require.Equal(t, 1, pendingCount(r))

	require.NoError(t, r.RegisterCommand(ctx, "late.cmd"))
	wg.Wait()
	require.NoError(t, longErr)
	require.Zero(t, pendingCount(r))
}
