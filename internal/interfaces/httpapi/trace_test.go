package httpapi

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/trace"
)

func TestIsHandlerSpan(t *testing.T) {
	cases := map[string]bool{
		"httpapi.Handler.SearchPlayers": true,
		"httpapi.Handler.CreateMatch":   true,
		"httpapi.Handler.":              false,
		"httpapi.RateLimit":             false,
		"httpapi.RequestLogging":        false,
		"httpapi.writeError":            false,
		"usecase.ClubService.List":      false,
	}
	for name, want := range cases {
		if got := isHandlerSpan(name); got != want {
			t.Fatalf("isHandlerSpan(%q)=%v want=%v", name, got, want)
		}
	}
}

func TestStartSpan_WithoutParentKeepsContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), clientIPKey{}, "203.0.113.7")

	got, span := startSpan(ctx, "httpapi.Handler.GetDashboard")
	defer span.End()

	if got != ctx {
		t.Fatalf("expected the caller context back when no parent span exists")
	}
	if span.SpanContext().IsValid() || span.IsRecording() {
		t.Fatalf("expected a no-op span, got %+v", span.SpanContext())
	}
	if clientIPFromContext(got) != "203.0.113.7" {
		t.Fatalf("context values lost")
	}
}

func TestStartSpan_HelperUnderParentStaysNoop(t *testing.T) {
	parent := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    trace.TraceID{1},
		SpanID:     trace.SpanID{2},
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), parent)

	got, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	if got != ctx {
		t.Fatalf("helpers must not derive a new context")
	}
	if span.SpanContext().IsValid() {
		t.Fatalf("expected the shared no-op span for helpers")
	}
}
