// Package telemetry provides an OpenTelemetry-backed tracer whose spans can be
// printed as a human-readable trace of the staleness cascade.
package telemetry

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/intersense/internal/core/ports"
)

// OTelTracer is a concrete implementation of ports.Tracer using OpenTelemetry.
// It owns its TracerProvider; ended spans are forwarded to a Bridge.
type OTelTracer struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
	bridge   *Bridge
}

// NewOTelTracer creates a tracer whose bridge prints ended spans to w once
// verbose mode is enabled.
func NewOTelTracer(name string, w io.Writer) *OTelTracer {
	bridge := NewBridge(NewPrinter(w))
	provider := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)

	return &OTelTracer{
		provider: provider,
		tracer:   provider.Tracer(name),
		bridge:   bridge,
	}
}

// SetVerbose turns printing of ended spans on or off.
func (t *OTelTracer) SetVerbose(enable bool) {
	t.bridge.SetEnabled(enable)
}

// Shutdown flushes and stops the underlying provider.
func (t *OTelTracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// Start creates a new span carrying the attributes given through opts.
func (t *OTelTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	cfg := &ports.SpanConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, span := t.tracer.Start(ctx, name)
	s := &OTelSpan{span: span}
	for _, k := range slices.Sorted(maps.Keys(cfg.Attributes)) {
		s.SetAttribute(k, cfg.Attributes[k])
	}

	return ctx, s
}

// OTelSpan is a concrete implementation of ports.Span using OpenTelemetry.
type OTelSpan struct {
	span trace.Span
}

// End completes the span.
func (s *OTelSpan) End() {
	s.span.End()
}

// RecordError records an error for the span.
func (s *OTelSpan) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

// SetAttribute adds a key-value pair to the span.
func (s *OTelSpan) SetAttribute(key string, value any) {
	s.span.SetAttributes(toAttribute(key, value))
}

func toAttribute(key string, value any) attribute.KeyValue {
	switch v := value.(type) {
	case string:
		return attribute.String(key, v)
	case int:
		return attribute.Int(key, v)
	case int64:
		return attribute.Int64(key, v)
	case float64:
		return attribute.Float64(key, v)
	case bool:
		return attribute.Bool(key, v)
	case []string:
		return attribute.StringSlice(key, v)
	case fmt.Stringer:
		return attribute.String(key, v.String())
	default:
		return attribute.String(key, fmt.Sprintf("%v", v))
	}
}
