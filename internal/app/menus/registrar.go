package menus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/telemetry"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ActionScheduler     = (*Registrar)(nil)
	_ ports.RegistrationTracker = (*Registrar)(nil)
)

const (
	resultRegistered = "registered"
	resultFailed     = "failed"
)

// Registrar submits menu actions to the host registry in the background.
// Each Schedule call owns one task: it waits on the gate, calls the host once
// and records the outcome. Tasks are never retried or cancelled.
type Registrar struct {
	host    ports.MenuRegistry
	gate    Gate
	logger  *slog.Logger
	metrics *telemetry.Metrics

	mu      sync.Mutex
	stats   ports.RegistrationStats
	waiters []chan struct{}
}

// NewRegistrar creates a Registrar. A nil logger discards output and nil
// metrics disables instrumentation.
func NewRegistrar(host ports.MenuRegistry, gate Gate, logger *slog.Logger, metrics *telemetry.Metrics) *Registrar {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Registrar{
		host:    host,
		gate:    gate,
		logger:  logger,
		metrics: metrics,
	}
}

// Schedule starts a background task that registers {path ++ [group],
// commandID, order} with the host and returns immediately. The task outlives
// ctx.
func (r *Registrar) Schedule(ctx context.Context, path menu.Path, group, commandID string, order *string) {
	reg := menu.Registration{
		Path:   path.Child(group),
		Action: menu.Action{CommandID: commandID, Order: order},
	}

	r.mu.Lock()
	r.stats.Pending++
	r.mu.Unlock()

	if r.metrics != nil {
		r.metrics.ActionsScheduled.Add(ctx, 1)
	}

	go r.run(context.WithoutCancel(ctx), reg, time.Now())
}

// Stats returns a snapshot of the registration counters.
func (r *Registrar) Stats() ports.RegistrationStats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// Drain blocks until every scheduled task has finished or ctx is done.
// It does not cancel outstanding tasks.
func (r *Registrar) Drain(ctx context.Context) error {
	r.mu.Lock()
	if r.stats.Pending == 0 {
		r.mu.Unlock()
		return nil
	}
	done := make(chan struct{})
	r.waiters = append(r.waiters, done)
	r.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("draining registrar: %w", ctx.Err())
	}
}

func (r *Registrar) run(ctx context.Context, reg menu.Registration, scheduledAt time.Time) {
	err := r.submit(ctx, reg, scheduledAt)

	result := resultRegistered
	if err != nil {
		result = resultFailed
		r.logger.ErrorContext(ctx, "failed to register menu action",
			slog.String("operation", "RegisterMenuAction"),
			slog.String("path", reg.Path.String()),
			slog.String("command_id", reg.Action.CommandID),
			slog.Any("error", err),
		)
	} else {
		r.logger.DebugContext(ctx, "registered menu action",
			slog.String("path", reg.Path.String()),
			slog.String("command_id", reg.Action.CommandID),
		)
	}

	if r.metrics != nil {
		r.metrics.ActionsCompleted.Add(ctx, 1,
			metric.WithAttributes(telemetry.AttrResult.String(result)))
	}

	r.finish(result)
}

// submit waits on the gate and calls the host exactly once. A gate failure
// is logged and the call goes ahead so the host can report the missing
// command itself.
func (r *Registrar) submit(ctx context.Context, reg menu.Registration, scheduledAt time.Time) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("host menu registry panicked: %v", rec)
		}
	}()

	if werr := r.gate.Wait(ctx, reg.Action.CommandID); werr != nil {
		r.logger.WarnContext(ctx, "registering menu action before command is ready",
			slog.String("command_id", reg.Action.CommandID),
			slog.Any("error", werr),
		)
	}

	if r.metrics != nil {
		r.metrics.RegistrationWait.Record(ctx, time.Since(scheduledAt).Seconds())
	}

	return r.host.RegisterMenuAction(ctx, reg.Path, reg.Action)
}

func (r *Registrar) finish(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stats.Pending--
	if result == resultRegistered {
		r.stats.Registered++
	} else {
		r.stats.Failed++
	}

	if r.stats.Pending == 0 {
		for _, w := range r.waiters {
			close(w)
		}
		r.waiters = nil
	}
}
