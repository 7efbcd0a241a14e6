// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/stratusline/ledger-service/internal/logging"
)

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName, opts...)
}

func newExporter(c *Config) (sdktrace.SpanExporter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch {
	case c.OtelGRPCEndpoint != "":
		return otlptrace.New(ctx, otlptracegrpc.NewClient(
			otlptracegrpc.WithEndpoint(c.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		))
	case c.OtelHTTPEndpoint != "":
		return otlptrace.New(ctx, otlptracehttp.NewClient(
			otlptracehttp.WithEndpoint(c.OtelHTTPEndpoint),
			otlptracehttp.WithInsecure(),
		))
	default:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
}

func NewTracer(c *Config) *Tracer {
	t := new(Tracer)
	t.logger = c.Logger

	if !c.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer("ledger-service")
		return t
	}

	exporter, err := newExporter(c)
	if err != nil {
		c.Logger.Errorf("failed to create otel exporter, tracing disabled: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer("ledger-service")
		return t
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName("ledger-service"),
		)),
	)
	otel.SetTracerProvider(provider)

	t.tracer = provider.Tracer("ledger-service")
	return t
}
