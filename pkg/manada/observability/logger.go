// Package observability provides logging, metrics and tracing for manada.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Every logging helper accepts a nil logger and does nothing in that case.
package observability

import (
	"log/slog"
	"time"
)

// LogBuildComplete logs a successfully built conversion graph.
func LogBuildComplete(logger *slog.Logger, units, edges int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("conversion graph built",
		slog.Int("units", units),
		slog.Int("edges", edges),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogBuildError logs a rejected definition document.
func LogBuildError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("definition rejected",
		slog.String("error", err.Error()),
	)
}

// LogEdge logs a single parsed edge.
func LogEdge(logger *slog.Logger, from, to, expression string, line int) {
	if logger == nil {
		return
	}
	logger.Debug("edge added",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("expr", expression),
		slog.Int("line", line),
	)
}

// LogParallelEdge warns about a second edge between the same pair of units.
// Only the first declared edge is traversed during conversion.
func LogParallelEdge(logger *slog.Logger, from, to string, line int) {
	if logger == nil {
		return
	}
	logger.Warn("parallel edge ignored by path search",
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("line", line),
	)
}

// LogConversion logs a successful conversion.
func LogConversion(logger *slog.Logger, from, to, input, output string, hops int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("conversion completed",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("input", input),
		slog.String("output", output),
		slog.Int("hops", hops),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogConversionError logs a failed conversion.
func LogConversionError(logger *slog.Logger, from, to string, err error) {
	if logger == nil {
		return
	}
	logger.Error("conversion failed",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("error", err.Error()),
	)
}

// LogStep logs one evaluated edge of a conversion path.
func LogStep(logger *slog.Logger, from, to, expression, input, output string) {
	if logger == nil {
		return
	}
	logger.Debug("conversion step",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("expr", expression),
		slog.String("input", input),
		slog.String("output", output),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
