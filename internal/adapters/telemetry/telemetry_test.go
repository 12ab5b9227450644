package telemetry_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/intersense/internal/adapters/telemetry"
	"go.trai.ch/intersense/internal/core/domain"
	"go.trai.ch/intersense/internal/core/ports"
)

func TestPrinter_Print(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	p := telemetry.NewPrinter(buf)

	p.Print(telemetry.TraceLine{
		Name:    "staleness.tier.hash",
		Verdict: "stale",
		Attributes: []telemetry.Field{
			{Key: "stored", Value: "sha256:aa"},
			{Key: "current", Value: "sha256:bb"},
		},
		Nested: true,
	})
	p.Print(telemetry.TraceLine{
		Name:       "staleness.tier.git",
		Verdict:    "defer",
		Attributes: []telemetry.Field{{Key: "reason", Value: "shallow clone"}},
		Nested:     true,
	})
	p.Print(telemetry.TraceLine{
		Name:       "staleness.check",
		Verdict:    "fresh",
		Attributes: []telemetry.Field{{Key: "tier", Value: "mtime"}},
	})
	p.Print(telemetry.TraceLine{
		Name: "staleness.tier.git",
		Err:  "git timed out",
	})

	goldie.New(t).Assert(t, "trace_lines", buf.Bytes())
}

func TestOTelTracer_PrintsOnlyWhenVerbose(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	tracer := telemetry.NewOTelTracer("test", buf)
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "quiet")
	span.End()
	assert.Empty(t, buf.String())

	tracer.SetVerbose(true)

	ctx, root := tracer.Start(context.Background(), "staleness.check")
	_, tier := tracer.Start(ctx, "staleness.tier.hash", ports.WithAttribute("stored", "sha256:aa"))
	tier.SetAttribute("current", "sha256:aa")
	tier.SetAttribute(telemetry.VerdictKey, domain.VerdictFresh)
	tier.End()
	root.SetAttribute(telemetry.VerdictKey, domain.VerdictFresh)
	root.End()

	assert.Equal(t,
		"  ✓ staleness.tier.hash fresh stored=sha256:aa current=sha256:aa\n"+
			"✓ staleness.check fresh\n",
		buf.String())
}

func TestOTelTracer_RecordError(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	tracer := telemetry.NewOTelTracer("test", buf)
	tracer.SetVerbose(true)

	_, span := tracer.Start(context.Background(), "staleness.tier.git")
	span.RecordError(nil)
	span.RecordError(errors.New("git timed out"))
	span.End()

	assert.Equal(t, "✗ staleness.tier.git error=git timed out\n", buf.String())
}

func TestOTelTracer_StartAttributes(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	tracer := telemetry.NewOTelTracer("test", buf)
	tracer.SetVerbose(true)

	_, span := tracer.Start(context.Background(), "s",
		ports.WithAttribute("b", 2),
		ports.WithAttribute("a", "x"),
		ports.WithAttribute("c", []string{"go.mod"}),
		ports.WithAttribute("d", 0.5),
		ports.WithAttribute("e", true),
		ports.WithAttribute("f", int64(7)),
		ports.WithAttribute("g", struct{}{}),
	)
	_, ok := span.(*telemetry.OTelSpan)
	require.True(t, ok)
	span.End()

	assert.Equal(t, "● s a=x b=2 c=[\"go.mod\"] d=0.5 e=true f=7 g={}\n", buf.String())
}

func TestBridge_Disabled(t *testing.T) {
	buf := &bytes.Buffer{}
	bridge := telemetry.NewBridge(telemetry.NewPrinter(buf))

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	defer func() { _ = tp.Shutdown(context.Background()) }()

	_, span := tp.Tracer("test").Start(context.Background(), "span")
	span.End()

	assert.Empty(t, buf.String())
	require.NoError(t, bridge.ForceFlush(context.Background()))
	require.NoError(t, bridge.Shutdown(context.Background()))
}

func TestBridge_NilPrinter(_ *testing.T) {
	bridge := telemetry.NewBridge(nil)
	bridge.SetEnabled(true)

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	_, span := tp.Tracer("test").Start(context.Background(), "span")
	span.End()
}

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	ctx := context.Background()

	gotCtx, span := tracer.Start(ctx, "noop", ports.WithAttribute("k", "v"))
	assert.Equal(t, ctx, gotCtx)

	span.SetAttribute("k", "v")
	span.RecordError(errors.New("ignored"))
	span.End()
}
