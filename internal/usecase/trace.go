package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("club-manager/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

func usecaseSpanName(service, operation string) string {
	return "usecase." + service + "." + operation
}

// startUsecaseSpan only opens a child span; a request without a traced parent gets the noop span.
func startUsecaseSpan(ctx context.Context, service, operation string) (context.Context, trace.Span) {
	if service == "" || operation == "" {
		return ctx, usecaseNoopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, usecaseSpanName(service, operation),
		trace.WithAttributes(
			attribute.String("usecase.service", service),
			attribute.String("usecase.operation", operation),
		),
	)
}
