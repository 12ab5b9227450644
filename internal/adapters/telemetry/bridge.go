package telemetry

import (
	"context"
	"sync/atomic"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Bridge implements sdktrace.SpanProcessor and hands ended spans to a Printer
// while enabled. Spans are still recorded when disabled.
type Bridge struct {
	printer *Printer
	enabled atomic.Bool
}

// NewBridge returns a new, disabled Bridge.
func NewBridge(printer *Printer) *Bridge {
	return &Bridge{
		printer: printer,
	}
}

// SetEnabled turns forwarding on or off.
func (b *Bridge) SetEnabled(enable bool) {
	b.enabled.Store(enable)
}

// OnStart is called when a span starts.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.printer == nil || !b.enabled.Load() {
		return
	}

	sc := s.SpanContext()
	if !sc.IsValid() {
		return
	}

	line := TraceLine{
		Name:   s.Name(),
		Nested: s.Parent().IsValid(),
	}
	for _, attr := range s.Attributes() {
		if attr.Key == VerdictKey {
			line.Verdict = attr.Value.Emit()
			continue
		}
		line.Attributes = append(line.Attributes, Field{Key: string(attr.Key), Value: attr.Value.Emit()})
	}
	if s.Status().Code == codes.Error {
		line.Err = s.Status().Description
		if line.Err == "" {
			line.Err = "failed"
		}
	}

	b.printer.Print(line)
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
