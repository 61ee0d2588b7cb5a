// Package telemetry sets up the global OpenTelemetry tracer and meter
// providers (stdout for development, OTLP/HTTP otherwise) and registers the
// instruments the HTTP layer, the host client and the menu registrar record
// into. Callers own the returned providers and must shut them down.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// meterScope is the instrumentation scope for all instruments.
const meterScope = "github.com/jsamuelsen11/plugin-menus"

var errEmptyEndpoint = errors.New("otlp exporter requires an endpoint")

// Attribute keys shared by spans and metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrLocation    = attribute.Key("menu.location")
	AttrPlugin      = attribute.Key("plugin.id")
)

// Metrics holds the service's instruments. Menu instruments are labelled
// with AttrPlugin, AttrLocation and AttrResult.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	ActionsScheduled metric.Int64Counter
	ActionsCompleted metric.Int64Counter
	UnknownLocations metric.Int64Counter
	RegistrationWait metric.Float64Histogram
}

// InitTracer installs a batching TracerProvider exporting to exporter
// ("stdout" or "otlp" with an http(s) endpoint) and the W3C trace context
// and baggage propagators.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter installs a MeterProvider with a periodic reader; exporter
// selection follows InitTracer.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics registers every instrument on mp, reporting all failures
// together.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(meterScope,
		metric.WithInstrumentationAttributes(attribute.String("service.name", serviceName)),
	)

	var (
		m    Metrics
		errs []error
	)

	m.ServerRequestDuration, errs = histogram(meter, errs, "http.server.request.duration",
		"Duration of incoming HTTP requests", "s")
	m.ServerRequestTotal, errs = counter(meter, errs, "http.server.request.total",
		"Total number of incoming HTTP requests", "{request}")
	m.ClientRequestDuration, errs = histogram(meter, errs, "http.client.request.duration",
		"Duration of outgoing HTTP requests", "s")
	m.ClientRequestTotal, errs = counter(meter, errs, "http.client.request.total",
		"Total number of outgoing HTTP requests", "{request}")

	m.ActionsScheduled, errs = counter(meter, errs, "menu.actions.scheduled",
		"Menu actions scheduled for deferred registration", "{action}")
	m.ActionsCompleted, errs = counter(meter, errs, "menu.actions.completed",
		"Menu action registrations that reached a final state", "{action}")
	m.UnknownLocations, errs = counter(meter, errs, "menu.locations.unknown",
		"Contributed locations with no known menu path", "{location}")
	m.RegistrationWait, errs = histogram(meter, errs, "menu.registration.wait",
		"Time a scheduled registration waited before submission", "s")

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

func counter(meter metric.Meter, errs []error, name, desc, unit string) (metric.Int64Counter, []error) {
	c, err := meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return c, errs
}

func histogram(meter metric.Meter, errs []error, name, desc, unit string) (metric.Float64Histogram, []error) {
	h, err := meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit(unit))
	if err != nil {
		errs = append(errs, fmt.Errorf("creating %s: %w", name, err))
	}
	return h, errs
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// otlpEndpoint validates an OTLP/HTTP collector URL such as
// "http://otel-collector:4318"; the exporters take TLS from its scheme.
func otlpEndpoint(endpoint string) (string, error) {
	if endpoint == "" {
		return "", errEmptyEndpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parsing otlp endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("otlp endpoint must be an http(s) URL, got %q", endpoint)
	}
	return endpoint, nil
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		target, err := otlpEndpoint(endpoint)
		if err != nil {
			return nil, err
		}
		return otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(target))
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		target, err := otlpEndpoint(endpoint)
		if err != nil {
			return nil, err
		}
		return otlpmetrichttp.New(ctx, otlpmetrichttp.WithEndpointURL(target))
	case ExporterStdout:
		return stdoutmetric.New()
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}
