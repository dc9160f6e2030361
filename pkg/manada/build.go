package manada

import (
	"context"
	"strings"

	"github.com/randalmurphal/manada/pkg/manada/expr"
	"github.com/randalmurphal/manada/pkg/manada/observability"
)

// Separators of a definition line: "origin -> destination: expression".
const (
	arrowSeparator = " -> "
	colonSeparator = ": "
	commentMarker  = "#"
)

// Build parses a definition document into a Graph.
//
// Each non-blank line has the form
//
//	origin -> destination: expression
//
// where expression is a formula in x (see package expr). A '#' starts a
// comment that runs to the end of the line. The first invalid line aborts
// the build with a *ParseError; no partial graph is returned.
//
// Example:
//
//	g, err := manada.Build("km -> m: x * 1000\nm -> dm: x * 10")
func Build(document string, opts ...Option) (*Graph, error) {
	return BuildContext(context.Background(), document, opts...)
}

// BuildContext is Build with a context for tracing and metrics.
func BuildContext(ctx context.Context, document string, opts ...Option) (g *Graph, err error) {
	cfg := newSettings(opts)
	lines := strings.Split(document, "\n")

	done := observability.TimedOperation()
	ctx, span := cfg.spans.StartBuildSpan(ctx, len(lines))
	defer func() {
		cfg.spans.EndSpanWithError(span, err)
		if err != nil {
			observability.LogBuildError(cfg.logger, err)
			cfg.metrics.RecordBuild(ctx, 0, err)
			return
		}
		cfg.metrics.RecordBuild(ctx, g.EdgeCount(), nil)
		observability.LogBuildComplete(cfg.logger, g.NodeCount(), g.EdgeCount(), done())
	}()

	g = newGraph()
	for i, raw := range lines {
		def, err := parseLine(raw)
		if err != nil {
			return nil, &ParseError{Line: i, Text: raw, Expr: def.exprText, Err: err}
		}
		if def.origin == "" {
			continue
		}

		edge := Edge{
			From: g.node(def.origin),
			To:   g.node(def.destination),
			Expr: def.expr,
			Line: i,
		}
		if g.addEdge(edge) {
			observability.LogParallelEdge(cfg.logger, def.origin, def.destination, i)
		}
		observability.LogEdge(cfg.logger, def.origin, def.destination, def.expr.String(), i)
	}

	return g, nil
}

// definition is one parsed line. A zero origin means the line was blank.
type definition struct {
	origin      string
	destination string
	exprText    string
	expr        expr.Expr
}

// parseLine splits and parses a single definition line.
// On error the returned definition still carries whatever text was split off.
func parseLine(raw string) (definition, error) {
	var def definition

	line := raw
	if i := strings.Index(line, commentMarker); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}

	origin, rest, ok := strings.Cut(line, arrowSeparator)
	if !ok {
		return def, ErrMissingArrow
	}
	destination, exprText, ok := strings.Cut(rest, colonSeparator)
	if !ok {
		return def, ErrMissingColon
	}
	def.exprText = strings.TrimSpace(exprText)

	def.origin = strings.TrimSpace(origin)
	def.destination = strings.TrimSpace(destination)
	if def.origin == "" || def.destination == "" {
		return definition{exprText: def.exprText}, ErrEmptyUnit
	}

	e, err := expr.Parse(def.exprText)
	if err != nil {
		return definition{exprText: def.exprText}, err
	}
	def.expr = e
	return def, nil
}
