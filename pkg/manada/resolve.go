package manada

import (
	"github.com/shopspring/decimal"

	"github.com/randalmurphal/manada/pkg/manada/expr"
)

// Step is one evaluated edge of a conversion.
type Step struct {
	From   string
	To     string
	Expr   expr.Expr
	Input  decimal.Decimal
	Output decimal.Decimal
}

// Resolve converts x from the start node's unit into the target unit.
// It is shorthand for g.Convert(start, target, x).
func Resolve(g *Graph, start NodeID, target string, x decimal.Decimal) (decimal.Decimal, error) {
	return g.Convert(start, target, x)
}

// Convert converts x from the start node's unit into the target unit by
// evaluating each edge of the shortest path in turn.
//
// Errors (all wrapped in *ConversionError):
//   - ErrUnitNotFound: no unit named target exists
//   - ErrNoPathFound: target exists but is unreachable from start
//   - ErrCalculationFailed: an edge's formula failed, see *CalculationError
//
// Converting a unit to itself returns x unchanged.
func (g *Graph) Convert(start NodeID, target string, x decimal.Decimal) (decimal.Decimal, error) {
	path, err := g.Path(start, target)
	if err != nil {
		return decimal.Zero, err
	}
	steps, err := g.evaluate(path, x)
	if err != nil {
		return decimal.Zero, &ConversionError{From: g.Name(start), To: target, Err: err}
	}
	if len(steps) == 0 {
		return x, nil
	}
	return steps[len(steps)-1].Output, nil
}

// Path returns the edges of a minimal-hop route from start to the unit
// named target, in traversal order. The route is empty when start is the
// target.
//
// The search is breadth-first and follows each node's outgoing edges in
// declaration order, so among parallel edges the first declared one is used
// and the result is deterministic.
func (g *Graph) Path(start NodeID, target string) ([]Edge, error) {
	if !g.valid(start) {
		return nil, &ConversionError{From: "", To: target, Err: ErrInvalidNode}
	}
	end, ok := g.Lookup(target)
	if !ok {
		return nil, &ConversionError{From: g.Name(start), To: target, Err: ErrUnitNotFound}
	}
	if start == end {
		return nil, nil
	}

	// via[n] is the index of the edge that first reached n, or -1.
	via := make([]int, len(g.names))
	for i := range via {
		via[i] = -1
	}
	visited := make([]bool, len(g.names))
	visited[start] = true

	queue := []NodeID{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, i := range g.out[current] {
			next := g.edges[i].To
			if visited[next] {
				continue
			}
			visited[next] = true
			via[next] = i
			if next == end {
				return g.trace(via, end), nil
			}
			queue = append(queue, next)
		}
	}

	return nil, &ConversionError{From: g.Name(start), To: target, Err: ErrNoPathFound}
}

// trace walks via back from end to the start node.
func (g *Graph) trace(via []int, end NodeID) []Edge {
	var path []Edge
	for n := end; via[n] >= 0; n = g.edges[via[n]].From {
		path = append(path, g.edges[via[n]])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// evaluate folds x through the edges of path. On failure no intermediate
// value is returned.
func (g *Graph) evaluate(path []Edge, x decimal.Decimal) ([]Step, error) {
	steps := make([]Step, 0, len(path))
	value := x
	for _, e := range path {
		next, err := e.Expr.Evaluate(value)
		if err != nil {
			return nil, &CalculationError{
				From:  g.Name(e.From),
				To:    g.Name(e.To),
				Expr:  e.Expr,
				Input: value,
				Err:   err,
			}
		}
		steps = append(steps, Step{
			From:   g.Name(e.From),
			To:     g.Name(e.To),
			Expr:   e.Expr,
			Input:  value,
			Output: next,
		})
		value = next
	}
	return steps, nil
}
