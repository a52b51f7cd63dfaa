package observability

import (
	"context"
	"fmt"

	"hotel-booking/internal/pkg/config"

	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Tracing owns the process tracer provider. Shutdown flushes pending spans.
type Tracing struct {
	Provider trace.TracerProvider
	shutdown func(context.Context) error
}

func (t *Tracing) Shutdown(ctx context.Context) error {
	if t.shutdown == nil {
		return nil
	}
	return t.shutdown(ctx)
}

// Enabled reports whether spans leave the process.
func (t *Tracing) Enabled() bool {
	return t.shutdown != nil
}

// NewTracing returns a no-op provider when no OTLP endpoint is configured.
func NewTracing(ctx context.Context, cfg config.TracingConfig, env string) (*Tracing, error) {
	if cfg.Endpoint == "" {
		return &Tracing{Provider: noop.NewTracerProvider()}, nil
	}

	exp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithEndpoint(cfg.Endpoint),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(cfg.ServiceName),
			semconv.DeploymentEnvironmentKey.String(env),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build trace resource: %w", err)
	}

	tp := newSDKProvider(cfg, res, sdktrace.WithBatcher(exp))
	return &Tracing{Provider: tp, shutdown: tp.Shutdown}, nil
}

func newSDKProvider(cfg config.TracingConfig, res *resource.Resource, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	ratio := cfg.SampleRatio
	if ratio <= 0 || ratio > 1 {
		ratio = 1
	}
	opts = append(opts,
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio))),
	)
	return sdktrace.NewTracerProvider(opts...)
}
