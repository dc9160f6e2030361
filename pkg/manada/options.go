package manada

import (
	"log/slog"

	"github.com/randalmurphal/manada/pkg/manada/observability"
)

// settings holds observability configuration for Build and Resolver.
type settings struct {
	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
}

// defaultSettings returns settings with every feature disabled.
func defaultSettings() settings {
	return settings{
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
}

func newSettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option configures Build and NewResolver.
type Option func(*settings)

// WithLogger enables structured logging.
// Default: no logging.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
//	g, err := manada.Build(doc, manada.WithLogger(logger))
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics through the global meter provider.
// Default: disabled.
func WithMetrics(enabled bool) Option {
	return func(s *settings) {
		if enabled {
			s.metrics = observability.NewMetricsRecorder()
		} else {
			s.metrics = observability.NoopMetrics{}
		}
	}
}

// WithTracing enables OpenTelemetry spans through the global tracer provider.
// Default: disabled.
func WithTracing(enabled bool) Option {
	return func(s *settings) {
		if enabled {
			s.spans = observability.NewSpanManager()
		} else {
			s.spans = observability.NoopSpanManager{}
		}
	}
}
