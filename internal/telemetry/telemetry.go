// Package telemetry sets up OpenTelemetry tracing for countrydeck.
package telemetry

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// InstrumentationName is the tracer name used for countrydeck spans.
const InstrumentationName = "countrydeck"

// Provider owns the tracer provider for the life of the process.
type Provider struct {
	provider *sdktrace.TracerProvider // nil when export is disabled
	tracer   oteltrace.Tracer
}

// New creates a Provider exporting to endpoint over OTLP/HTTP.
// An empty endpoint yields a no-op tracer.
func New(ctx context.Context, endpoint, serviceName string) (*Provider, error) {
	if endpoint == "" {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(InstrumentationName)}, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if strings.Contains(endpoint, "://") {
		opts = []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}
	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	if serviceName == "" {
		serviceName = InstrumentationName
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	return &Provider{
		provider: provider,
		tracer:   provider.Tracer(InstrumentationName),
	}, nil
}

// Tracer returns the countrydeck tracer.
func (p *Provider) Tracer() oteltrace.Tracer {
	return p.tracer
}

// Enabled reports whether spans are exported.
func (p *Provider) Enabled() bool {
	return p != nil && p.provider != nil
}

// Shutdown flushes and closes the exporter.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || p.provider == nil {
		return nil
	}
	return p.provider.Shutdown(ctx)
}
