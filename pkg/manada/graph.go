package manada

import (
	"github.com/randalmurphal/manada/pkg/manada/expr"
)

// NodeID identifies a unit in a Graph. IDs are dense, starting at 0, in the
// order units are first mentioned in the definition document.
type NodeID int

// Edge is a directed conversion from one unit to another.
// Evaluating Expr with x bound to a value in From's units yields the value
// in To's units.
type Edge struct {
	From NodeID
	To   NodeID
	Expr expr.Expr
	// Line is the 0-based line of the definition document that declared the edge.
	Line int
}

// Graph is a directed multigraph of units and conversion edges.
// Use Build to create one from a definition document.
//
// Graph is immutable after Build returns and safe for concurrent use.
// Edges are never added implicitly: "km -> m" does not imply "m -> km".
// Parallel edges between the same pair of units are kept in declaration order.
type Graph struct {
	names []string
	index map[string]NodeID
	edges []Edge
	// out holds, per node, indices into edges in declaration order.
	out [][]int
}

func newGraph() *Graph {
	return &Graph{
		index: make(map[string]NodeID),
	}
}

// node returns the ID for name, inserting a new node on first sight.
func (g *Graph) node(name string) NodeID {
	if id, ok := g.index[name]; ok {
		return id
	}
	id := NodeID(len(g.names))
	g.names = append(g.names, name)
	g.out = append(g.out, nil)
	g.index[name] = id
	return id
}

// addEdge appends e and reports whether an edge between the same pair
// already existed.
func (g *Graph) addEdge(e Edge) (parallel bool) {
	for _, i := range g.out[e.From] {
		if g.edges[i].To == e.To {
			parallel = true
			break
		}
	}
	g.out[e.From] = append(g.out[e.From], len(g.edges))
	g.edges = append(g.edges, e)
	return parallel
}

// Lookup returns the node for a unit name.
func (g *Graph) Lookup(name string) (NodeID, bool) {
	id, ok := g.index[name]
	return id, ok
}

// HasUnit reports whether a unit name is part of the graph.
func (g *Graph) HasUnit(name string) bool {
	_, ok := g.index[name]
	return ok
}

// Name returns the unit name of a node, or "" for an unknown ID.
func (g *Graph) Name(id NodeID) string {
	if !g.valid(id) {
		return ""
	}
	return g.names[id]
}

// Units returns all unit names in order of first mention.
func (g *Graph) Units() []string {
	units := make([]string, len(g.names))
	copy(units, g.names)
	return units
}

// NodeCount returns the number of units.
func (g *Graph) NodeCount() int {
	return len(g.names)
}

// EdgeCount returns the number of edges, parallel edges included.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Edges returns all edges in declaration order.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// Outgoing returns the edges leaving a node in declaration order.
// Returns nil for unknown IDs.
func (g *Graph) Outgoing(id NodeID) []Edge {
	if !g.valid(id) {
		return nil
	}
	edges := make([]Edge, 0, len(g.out[id]))
	for _, i := range g.out[id] {
		edges = append(edges, g.edges[i])
	}
	return edges
}

func (g *Graph) valid(id NodeID) bool {
	return id >= 0 && int(id) < len(g.names)
}
