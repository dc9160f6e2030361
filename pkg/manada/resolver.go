package manada

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/randalmurphal/manada/pkg/manada/observability"
)

// Resolver runs conversions on a Graph with logging, metrics and tracing.
// Create one with NewResolver. A Resolver is safe for concurrent use.
type Resolver struct {
	graph *Graph
	cfg   settings
}

// Result is the outcome of a successful conversion.
type Result struct {
	// Value is the converted value in the target unit.
	Value decimal.Decimal
	// Steps lists every evaluated edge in order. Empty when the start unit
	// is the target unit.
	Steps []Step
}

// NewResolver creates a Resolver for g.
//
// Example:
//
//	r := manada.NewResolver(g, manada.WithLogger(logger), manada.WithMetrics(true))
//	res, err := r.ResolveUnits(ctx, "km", "dm", decimal.NewFromInt(1))
func NewResolver(g *Graph, opts ...Option) *Resolver {
	return &Resolver{graph: g, cfg: newSettings(opts)}
}

// Graph returns the graph the resolver converts on.
func (r *Resolver) Graph() *Graph {
	return r.graph
}

// Resolve converts x from start into the unit named target.
// Errors are the same as for Graph.Convert.
func (r *Resolver) Resolve(ctx context.Context, start NodeID, target string, x decimal.Decimal) (res *Result, err error) {
	from := r.graph.Name(start)

	done := observability.TimedOperation()
	ctx, span := r.cfg.spans.StartConvertSpan(ctx, from, target)
	defer func() {
		r.cfg.spans.EndSpanWithError(span, err)
		if err != nil {
			observability.LogConversionError(r.cfg.logger, from, target, err)
			r.cfg.metrics.RecordConversion(ctx, from, target, 0, errorKind(err))
			return
		}
		r.cfg.metrics.RecordConversion(ctx, from, target, len(res.Steps), "")
		observability.LogConversion(r.cfg.logger, from, target,
			x.String(), res.Value.String(), len(res.Steps), done())
	}()

	path, err := r.graph.Path(start, target)
	if err != nil {
		return nil, err
	}
	steps, err := r.graph.evaluate(path, x)
	if err != nil {
		return nil, &ConversionError{From: from, To: target, Err: err}
	}

	res = &Result{Value: x, Steps: steps}
	for _, s := range steps {
		exprText := s.Expr.String()
		r.cfg.spans.AddStepEvent(ctx, s.From, s.To, exprText)
		observability.LogStep(r.cfg.logger, s.From, s.To, exprText, s.Input.String(), s.Output.String())
		res.Value = s.Output
	}
	return res, nil
}

// ResolveUnits is Resolve with the start unit given by name.
// An unknown start unit fails with ErrUnitNotFound.
func (r *Resolver) ResolveUnits(ctx context.Context, from, to string, x decimal.Decimal) (*Result, error) {
	start, ok := r.graph.Lookup(from)
	if !ok {
		err := &ConversionError{From: from, To: to, Err: ErrUnitNotFound}
		observability.LogConversionError(r.cfg.logger, from, to, err)
		r.cfg.metrics.RecordConversion(ctx, from, to, 0, errorKind(err))
		return nil, err
	}
	return r.Resolve(ctx, start, to, x)
}
