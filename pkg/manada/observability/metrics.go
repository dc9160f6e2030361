package observability

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records manada metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordConversion records a conversion attempt. errKind is empty on
	// success and names the failure class otherwise.
	RecordConversion(ctx context.Context, from, to string, hops int, errKind string)

	// RecordBuild records a graph build with the number of edges it produced.
	RecordBuild(ctx context.Context, edges int, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	conversions      metric.Int64Counter
	conversionHops   metric.Int64Histogram
	conversionErrors metric.Int64Counter
	builds           metric.Int64Counter
	graphEdges       metric.Int64Histogram
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("manada")

	conversions, err := meter.Int64Counter("manada.conversions",
		metric.WithDescription("Number of conversions"),
	)
	if err != nil {
		return nil, err
	}

	conversionHops, err := meter.Int64Histogram("manada.conversion.hops",
		metric.WithDescription("Number of edges traversed per successful conversion"),
	)
	if err != nil {
		return nil, err
	}

	conversionErrors, err := meter.Int64Counter("manada.conversion.errors",
		metric.WithDescription("Number of failed conversions by kind"),
	)
	if err != nil {
		return nil, err
	}

	builds, err := meter.Int64Counter("manada.graph.builds",
		metric.WithDescription("Number of conversion graph builds"),
	)
	if err != nil {
		return nil, err
	}

	graphEdges, err := meter.Int64Histogram("manada.graph.edges",
		metric.WithDescription("Number of edges per built graph"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		conversions:      conversions,
		conversionHops:   conversionHops,
		conversionErrors: conversionErrors,
		builds:           builds,
		graphEdges:       graphEdges,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordConversion records a conversion.
func (m *otelMetrics) RecordConversion(ctx context.Context, from, to string, hops int, errKind string) {
	success := errKind == ""
	m.conversions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
		attribute.Bool("success", success),
	))

	if success {
		m.conversionHops.Record(ctx, int64(hops))
		return
	}
	m.conversionErrors.Add(ctx, 1, metric.WithAttributes(
		attribute.String("kind", errKind),
	))
}

// RecordBuild records a graph build.
func (m *otelMetrics) RecordBuild(ctx context.Context, edges int, err error) {
	m.builds.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("success", err == nil),
	))
	if err == nil {
		m.graphEdges.Record(ctx, int64(edges))
	}
}
