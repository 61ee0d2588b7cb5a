// Package main is the entry point for the plugin menu service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM: HTTP drain, then pending menu
// registrations, then telemetry flush.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/plugin-menus/internal/adapters/http"
	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/plugin-menus/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/plugin-menus/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/plugin-menus/internal/app/menus"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/commands"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/config"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/health"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/httpclient"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/logging"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/menumodel"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/telemetry"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	var opts []config.Option
	if dir := os.Getenv("APP_CONFIG_DIR"); dir != "" {
		opts = append(opts, config.WithConfigDir(dir))
	}
	cfg, err := config.Load(profile, opts...)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(flushCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	registerDependencies(injector, cfg, logger)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if cfg.Host.Mode == config.HostModeRemote {
		registry := do.MustInvoke[ports.HealthRegistry](injector)
		registry.Register(do.MustInvoke[*acl.HostMenuClient](injector))
	}

	registrar := do.MustInvoke[*menus.Registrar](injector)
	server.OnShutdown(registrar.Drain)

	logger.Info("menu service configured",
		slog.String("profile", profile),
		slog.String("host_mode", cfg.Host.Mode),
		slog.String("gate", cfg.Contributions.Gate),
		slog.Int("locations", len(cfg.Menus.Locations)),
	)

	if err := serve(ctx, server, logger); err != nil {
		return err
	}

	final := registrar.Stats()
	logger.Info("shutdown complete",
		slog.Int64("registered", final.Registered),
		slog.Int64("failed", final.Failed),
		slog.Int64("abandoned", final.Pending),
	)
	return nil
}

// serve runs server until ctx is canceled by a signal, then drains it. The
// server's shutdown hooks (pending registrations) run inside the same
// deadline.
func serve(ctx context.Context, server *adapthttp.Server, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	return <-serverErr
}

// otelProviders holds the metrics instruments and the provider shutdown
// funcs. A zero value means telemetry is disabled: nil metrics and nothing
// to flush.
type otelProviders struct {
	metrics   *telemetry.Metrics
	shutdowns []func(context.Context) error
}

// Shutdown flushes providers in reverse start order.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(o.shutdowns) - 1; i >= 0; i-- {
		errs = append(errs, o.shutdowns[i](ctx))
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	o := &otelProviders{}
	if !cfg.Telemetry.Enabled {
		return o, nil
	}
	t := cfg.Telemetry

	tp, err := telemetry.InitTracer(ctx, t.ServiceName, t.Exporter, t.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}
	o.shutdowns = append(o.shutdowns, tp.Shutdown)

	mp, err := telemetry.InitMeter(ctx, t.ServiceName, t.Exporter, t.Endpoint)
	if err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}
	o.shutdowns = append(o.shutdowns, mp.Shutdown)

	if o.metrics, err = telemetry.NewMetrics(mp, t.ServiceName); err != nil {
		_ = o.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}
	return o, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerHost(injector, cfg, logger)

	do.Provide(injector, func(_ do.Injector) (*menus.Resolver, error) {
		return menus.NewResolver(menus.TableFromConfig(cfg.Menus.Locations)), nil
	})

	do.Provide(injector, func(i do.Injector) (*menus.Registrar, error) {
		host := do.MustInvoke[ports.MenuRegistry](i)
		gate := do.MustInvoke[menus.Gate](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return menus.NewRegistrar(host, gate, logger, metrics), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ContributionService, error) {
		resolver := do.MustInvoke[*menus.Resolver](i)
		registrar := do.MustInvoke[*menus.Registrar](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return menus.NewContributionHandler(resolver, registrar, logger, metrics), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		return buildHandlers(i, cfg), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, middleware.Stack(logger, metrics, cfg.Server.WriteTimeout)...), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHost provides the host menu registry and the registrar's gate.
// In memory mode the command registry and menu model live in this process;
// in remote mode actions are posted to the host and only the delay gate
// applies.
func registerHost(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if cfg.Host.Mode == config.HostModeRemote {
		do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
			metrics := do.MustInvoke[*telemetry.Metrics](i)
			return httpclient.New(&cfg.Host.Client, "host-menus", metrics, logger), nil
		})

		do.Provide(injector, func(i do.Injector) (*acl.HostMenuClient, error) {
			client := do.MustInvoke[*httpclient.Client](i)
			return acl.NewHostMenuClient(client, logger), nil
		})

		do.Provide(injector, func(i do.Injector) (ports.MenuRegistry, error) {
			return do.MustInvoke[*acl.HostMenuClient](i), nil
		})

		do.Provide(injector, func(_ do.Injector) (menus.Gate, error) {
			return menus.NewDelayGate(cfg.Contributions.Delay), nil
		})
		return
	}

	do.Provide(injector, func(_ do.Injector) (*commands.Registry, error) {
		return commands.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*menumodel.Model, error) {
		return menumodel.New(do.MustInvoke[*commands.Registry](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.MenuRegistry, error) {
		return do.MustInvoke[*menumodel.Model](i), nil
	})

	do.Provide(injector, func(i do.Injector) (menus.Gate, error) {
		if cfg.Contributions.Gate == config.GateDelay {
			return menus.NewDelayGate(cfg.Contributions.Delay), nil
		}
		waiter := do.MustInvoke[*commands.Registry](i)
		return menus.NewReadinessGate(waiter, cfg.Contributions.ReadinessTimeout), nil
	})
}

// buildHandlers assembles the route handlers. The command and menu tree
// endpoints exist only when the host lives in this process.
func buildHandlers(i do.Injector, cfg *config.Config) adapthttp.Handlers {
	resolver := do.MustInvoke[*menus.Resolver](i)
	registrar := do.MustInvoke[*menus.Registrar](i)

	h := adapthttp.Handlers{
		Contributions: handlers.NewContributionHandler(do.MustInvoke[ports.ContributionService](i)),
		Registrations: handlers.NewRegistrationHandler(registrar),
		Health:        handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), registrar),
	}

	var reader ports.MenuReader
	if cfg.Host.Mode == config.HostModeMemory {
		h.Commands = handlers.NewCommandHandler(do.MustInvoke[*commands.Registry](i))
		reader = do.MustInvoke[*menumodel.Model](i)
	}
	h.Menus = handlers.NewMenuHandler(resolver, reader)

	return h
}
