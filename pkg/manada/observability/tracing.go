package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracer uses the global OTel tracer provider.
var tracer = otel.Tracer("manada")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartBuildSpan starts a span for building a graph from a document.
	StartBuildSpan(ctx context.Context, lines int) (context.Context, trace.Span)

	// StartConvertSpan starts a span for a single conversion.
	StartConvertSpan(ctx context.Context, from, to string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddStepEvent records a traversed edge on the span in ctx.
	AddStepEvent(ctx context.Context, from, to, expression string)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartBuildSpan starts a span for building a graph.
func (m *otelSpanManager) StartBuildSpan(ctx context.Context, lines int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "manada.build",
		trace.WithAttributes(
			attribute.Int("document.lines", lines),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartConvertSpan starts a span for a conversion.
func (m *otelSpanManager) StartConvertSpan(ctx context.Context, from, to string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "manada.convert",
		trace.WithAttributes(
			attribute.String("unit.from", from),
			attribute.String("unit.to", to),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddStepEvent adds a manada.step event to the current span.
func (m *otelSpanManager) AddStepEvent(ctx context.Context, from, to, expression string) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent("manada.step", trace.WithAttributes(
		attribute.String("unit.from", from),
		attribute.String("unit.to", to),
		attribute.String("expr", expression),
	))
}
