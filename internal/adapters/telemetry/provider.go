package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/vitetags/internal/core/ports"
)

// NewProvider builds an SDK provider that reports ended spans to logger.
func NewProvider(logger ports.Logger, opts ...sdktrace.TracerProviderOption) *sdktrace.TracerProvider {
	opts = append([]sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(NewLogProcessor(logger)),
	}, opts...)
	return sdktrace.NewTracerProvider(opts...)
}

// Install registers a logging provider as the global OTel provider.
// Tracers created earlier by NewOTelTracer start recording immediately.
// The returned function shuts the provider down.
func Install(logger ports.Logger) func(context.Context) error {
	tp := NewProvider(logger)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
