package manada

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// testLogHandler captures log records as JSON lines.
type testLogHandler struct {
	buf   *bytes.Buffer
	level slog.Level
}

func newTestLogHandler() *testLogHandler {
	return &testLogHandler{
		buf:   &bytes.Buffer{},
		level: slog.LevelDebug,
	}
}

func (h *testLogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *testLogHandler) Handle(_ context.Context, r slog.Record) error {
	data := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	r.Attrs(func(a slog.Attr) bool {
		data[a.Key] = a.Value.Any()
		return true
	})
	return json.NewEncoder(h.buf).Encode(data)
}

func (h *testLogHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *testLogHandler) WithGroup(string) slog.Handler { return h }

func (h *testLogHandler) records(msg string) []map[string]any {
	var out []map[string]any
	for _, line := range bytes.Split(h.buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal(line, &m); err == nil && m["msg"] == msg {
			out = append(out, m)
		}
	}
	return out
}

func TestResolver_Resolve(t *testing.T) {
	g := mustBuild(t, "km -> m: x * 1000\nm -> dm: x * 10")
	r := NewResolver(g)
	assert.Same(t, g, r.Graph())

	res, err := r.Resolve(context.Background(), mustLookup(t, g, "km"), "dm", decimal.NewFromInt(1))
	require.NoError(t, err)
	assertDecimal(t, "10000", res.Value)

	require.Len(t, res.Steps, 2)
	assert.Equal(t, "km", res.Steps[0].From)
	assert.Equal(t, "m", res.Steps[0].To)
	assertDecimal(t, "1", res.Steps[0].Input)
	assertDecimal(t, "1000", res.Steps[0].Output)
	assert.Equal(t, "x * 10", res.Steps[1].Expr.String())
	assertDecimal(t, "10000", res.Steps[1].Output)
}

func TestResolver_SameUnit(t *testing.T) {
	g := mustBuild(t, "km -> m: x * 1000")

	res, err := NewResolver(g).ResolveUnits(context.Background(), "km", "km", decimal.NewFromInt(3))
	require.NoError(t, err)
	assertDecimal(t, "3", res.Value)
	assert.Empty(t, res.Steps)
}

func TestResolver_ResolveUnits_Errors(t *testing.T) {
	g := mustBuild(t, "km -> m: x * 1000\nm -> z: 1 / (x - 1000)")
	r := NewResolver(g)
	ctx := context.Background()

	_, err := r.ResolveUnits(ctx, "parsec", "m", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrUnitNotFound)

	_, err = r.ResolveUnits(ctx, "km", "parsec", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrUnitNotFound)

	_, err = r.ResolveUnits(ctx, "m", "km", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrNoPathFound)

	_, err = r.ResolveUnits(ctx, "km", "z", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrCalculationFailed)
}

func TestResolver_Logging(t *testing.T) {
	h := newTestLogHandler()
	g := mustBuild(t, "km -> m: x * 1000\nm -> dm: x * 10")
	r := NewResolver(g, WithLogger(slog.New(h)))

	_, err := r.ResolveUnits(context.Background(), "km", "dm", decimal.NewFromInt(2))
	require.NoError(t, err)

	done := h.records("conversion completed")
	require.Len(t, done, 1)
	assert.Equal(t, "km", done[0]["from"])
	assert.Equal(t, "dm", done[0]["to"])
	assert.Equal(t, "20000", done[0]["output"])
	assert.EqualValues(t, 2, done[0]["hops"])
	assert.Len(t, h.records("conversion step"), 2)

	_, err = r.ResolveUnits(context.Background(), "dm", "km", decimal.NewFromInt(2))
	require.Error(t, err)
	failed := h.records("conversion failed")
	require.Len(t, failed, 1)
	assert.Contains(t, failed[0]["error"], "no conversion path found")
}

func TestBuild_Logging(t *testing.T) {
	h := newTestLogHandler()

	_, err := Build("km -> m: x * 1000\nm -> dm: x * 10", WithLogger(slog.New(h)))
	require.NoError(t, err)
	assert.Len(t, h.records("edge added"), 2)
	built := h.records("conversion graph built")
	require.Len(t, built, 1)
	assert.EqualValues(t, 3, built[0]["units"])

	_, err = Build("km m", WithLogger(slog.New(h)))
	require.Error(t, err)
	assert.Len(t, h.records("definition rejected"), 1)
}

// TestResolver_Telemetry runs a build and a conversion against SDK providers.
// The global providers can be bound only once per process, so every OTel
// assertion for this package lives here.
func TestResolver_Telemetry(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	origTP, origMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	t.Cleanup(func() {
		otel.SetTracerProvider(origTP)
		otel.SetMeterProvider(origMP)
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
	})

	opts := []Option{WithTracing(true), WithMetrics(true)}
	g, err := Build("km -> m: x * 1000\nm -> dm: x * 10", opts...)
	require.NoError(t, err)

	r := NewResolver(g, opts...)
	_, err = r.ResolveUnits(context.Background(), "km", "dm", decimal.NewFromInt(1))
	require.NoError(t, err)

	spans := exporter.GetSpans()
	names := make([]string, 0, len(spans))
	for _, s := range spans {
		names = append(names, s.Name)
	}
	assert.Contains(t, names, "manada.build")
	assert.Contains(t, names, "manada.convert")

	for _, s := range spans {
		if s.Name != "manada.convert" {
			continue
		}
		require.Len(t, s.Events, 2)
		assert.Equal(t, "manada.step", s.Events[0].Name)
	}

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	found := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			found[m.Name] = true
		}
	}
	assert.True(t, found["manada.conversions"])
	assert.True(t, found["manada.conversion.hops"])
	assert.True(t, found["manada.graph.builds"])
	assert.True(t, found["manada.graph.edges"])
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&ConversionError{Err: ErrUnitNotFound}, "unit_not_found"},
		{&ConversionError{Err: ErrNoPathFound}, "no_path"},
		{&ConversionError{Err: &CalculationError{Err: assert.AnError}}, "calculation_failed"},
		{&ConversionError{Err: ErrInvalidNode}, "invalid_node"},
		{assert.AnError, "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorKind(tt.err))
	}
}
