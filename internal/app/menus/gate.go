package menus

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// ErrCommandNotReady is returned by ReadinessGate when the command was not
// registered before the timeout. The registration is still attempted.
var ErrCommandNotReady = errors.New("command not ready")

// Gate decides when a scheduled registration may be submitted to the host.
type Gate interface {
	// Wait blocks until the registration for commandID may proceed.
	Wait(ctx context.Context, commandID string) error
}

// DelayGate releases every registration after a fixed delay.
type DelayGate struct {
	delay time.Duration
}

// NewDelayGate creates a gate that waits d before each registration.
func NewDelayGate(d time.Duration) *DelayGate {
	return &DelayGate{delay: d}
}

// Wait sleeps for the configured delay or until ctx is done.
func (g *DelayGate) Wait(ctx context.Context, _ string) error {
	if g.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ReadinessGate releases a registration as soon as the host reports the
// target command registered, or after timeout, whichever comes first.
type ReadinessGate struct {
	waiter  ports.CommandWaiter
	timeout time.Duration
}

// NewReadinessGate creates a gate backed by the host command registry.
func NewReadinessGate(waiter ports.CommandWaiter, timeout time.Duration) *ReadinessGate {
	return &ReadinessGate{waiter: waiter, timeout: timeout}
}

// Wait returns nil once commandID is registered. When the timeout elapses
// first it returns an error wrapping ErrCommandNotReady.
func (g *ReadinessGate) Wait(ctx context.Context, commandID string) error {
	waitCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	err := g.waiter.WaitForCommand(waitCtx, commandID)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return fmt.Errorf("waiting %s for %q: %w", g.timeout, commandID, ErrCommandNotReady)
	}
	return err
}
