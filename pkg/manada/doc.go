/*
Package manada converts values between units using a graph of conversion formulas.

# Overview

Conversion factors are not listed for every pair of units. Instead a
definition document declares directed relations, each carrying a formula
in the free variable x:

	# length.manada
	km -> m: x * 1000
	m -> dm: x * 10
	m -> ft: x / 0.3048

Converting between two units that are not directly related finds the
shortest route through intermediate units and applies each formula in turn.
Relations are one-way: "km -> m" says nothing about "m -> km".

# Basic Usage

Build a graph once, then convert as often as needed:

	g, err := manada.Build(document)
	if err != nil {
	    var perr *manada.ParseError
	    if errors.As(err, &perr) {
	        log.Fatalf("line %d: %v", perr.Line+1, perr.Err)
	    }
	}

	start, ok := g.Lookup("km")
	if !ok {
	    log.Fatal("no km")
	}
	v, err := g.Convert(start, "dm", decimal.NewFromInt(1)) // 10000

# Definition Documents

One relation per line:

	<origin> -> <destination>: <expression>

The separators " -> " and ": " are literal. Whitespace around unit names
and the expression is ignored. Everything from '#' to the end of a line is
a comment. Blank lines are skipped. The same pair of units may appear more
than once; such parallel edges are kept, and path search uses the first one
declared.

The first malformed line rejects the whole document with a *ParseError
holding the 0-based line index and one of ErrMissingArrow, ErrMissingColon,
ErrEmptyUnit or an error from package expr.

# Conversion

Graph.Convert (or Resolve) finds a minimal-hop path with a breadth-first
search and folds the value through it. Failures are distinguished:

	_, err := g.Convert(start, "furlong", x)
	switch {
	case errors.Is(err, manada.ErrUnitNotFound):     // no such unit
	case errors.Is(err, manada.ErrNoPathFound):      // exists, unreachable
	case errors.Is(err, manada.ErrCalculationFailed): // e.g. division by zero
	}

Graph.Path exposes the route itself; a Resolver returns every intermediate
value as a Step.

# Observability

Build and NewResolver accept options for logging, metrics and tracing:

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	r := manada.NewResolver(g,
	    manada.WithLogger(logger),
	    manada.WithMetrics(true),
	    manada.WithTracing(true))
	res, err := r.ResolveUnits(ctx, "km", "dm", decimal.NewFromInt(1))

OpenTelemetry metrics: manada.conversions, manada.conversion.hops,
manada.conversion.errors, manada.graph.builds, manada.graph.edges.
OpenTelemetry tracing: manada.build and manada.convert spans, with a
manada.step event per traversed edge.

# Thread Safety

  - Graph is immutable after Build and safe for concurrent use
  - Resolver is safe for concurrent use

# Subpackages

  - expr: tokenizer, parser and evaluator for conversion formulas
  - diag: human-readable rendering of ParseError values
  - config: definition search path, settings and unit aliases
  - history: conversion history storage (memory, SQLite)
  - observability: logging, metrics and tracing helpers
*/
package manada
