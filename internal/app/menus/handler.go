package menus

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/plugin-menus/internal/domain/menu"
	"github.com/jsamuelsen11/plugin-menus/internal/platform/telemetry"
	"github.com/jsamuelsen11/plugin-menus/internal/ports"
)

// Compile-time check that ContributionHandler implements ports.ContributionService.
var _ ports.ContributionService = (*ContributionHandler)(nil)

const tracerName = "github.com/jsamuelsen11/plugin-menus/internal/app/menus"

// ContributionHandler resolves a plugin's contribution set and schedules one
// registration per item.
type ContributionHandler struct {
	resolver  ports.LocationResolver
	scheduler ports.ActionScheduler
	logger    *slog.Logger
	metrics   *telemetry.Metrics
	tracer    trace.Tracer
}

// NewContributionHandler creates a ContributionHandler. A nil logger discards
// output and nil metrics disables instrumentation.
func NewContributionHandler(
	resolver ports.LocationResolver,
	scheduler ports.ActionScheduler,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
) *ContributionHandler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ContributionHandler{
		resolver:  resolver,
		scheduler: scheduler,
		logger:    logger,
		metrics:   metrics,
		tracer:    otel.Tracer(tracerName),
	}
}

// HandleMenus walks the set in sorted location order. Unknown locations are
// logged at warn level and skipped; every item under a known location is
// scheduled in list order. It returns before any registration happens.
func (h *ContributionHandler) HandleMenus(ctx context.Context, pluginID string, set menu.Contributions) {
	if len(set) == 0 {
		return
	}

	ctx, span := h.tracer.Start(ctx, "menus.HandleMenus",
		trace.WithAttributes(
			telemetry.AttrPlugin.String(pluginID),
			attribute.Int("menu.items", set.ItemCount()),
		),
	)
	defer span.End()

	scheduled := 0
	for _, location := range set.Locations() {
		path, ok := h.resolver.Resolve(location)
		if !ok {
			h.logger.WarnContext(ctx, "plugin contributes items to a menu with invalid identifier",
				slog.String("location", location),
				slog.String("plugin", pluginID),
			)
			if h.metrics != nil {
				h.metrics.UnknownLocations.Add(ctx, 1, metric.WithAttributes(
					telemetry.AttrLocation.String(location),
					telemetry.AttrPlugin.String(pluginID),
				))
			}
			continue
		}

		for _, item := range set[location] {
			group, order := menu.ParseGroup(item.Group)
			h.scheduler.Schedule(ctx, path, group, item.Command, order)
			scheduled++
		}
	}

	span.SetAttributes(attribute.Int("menu.scheduled", scheduled))
	h.logger.InfoContext(ctx, "scheduled menu contributions",
		slog.String("plugin", pluginID),
		slog.Int("scheduled", scheduled),
	)
}
