package iconset

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRunRecordsRenderSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})

	if err := Run(context.Background(), Config{ResDir: newResDir(t)}, nil); err != nil {
		t.Fatalf("run: %v", err)
	}

	spans := recorder.Ended()
	if len(spans) != 10 {
		t.Fatalf("expected 10 render spans, got %d", len(spans))
	}
	first := spans[0]
	if first.Name() != "iconset.render" {
		t.Fatalf("unexpected span name %q", first.Name())
	}
	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range first.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	if got := attrs["icon.density"].AsString(); got != "mdpi" {
		t.Fatalf("expected mdpi density attribute, got %q", got)
	}
	if got := attrs["icon.size"].AsInt64(); got != 48 {
		t.Fatalf("expected size attribute 48, got %d", got)
	}
	if got := attrs["icon.variant"].AsString(); got != "launcher" {
		t.Fatalf("expected launcher variant attribute, got %q", got)
	}
}
