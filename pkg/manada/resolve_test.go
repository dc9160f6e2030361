package manada

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/manada/pkg/manada/expr"
)

func mustBuild(t *testing.T, doc string) *Graph {
	t.Helper()
	g, err := Build(doc)
	require.NoError(t, err)
	return g
}

func mustLookup(t *testing.T, g *Graph, name string) NodeID {
	t.Helper()
	id, ok := g.Lookup(name)
	require.True(t, ok, "unit %q not in graph", name)
	return id
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "got %s, want %s", got, want)
}

// TestConvert_Chain verifies composition over two edges.
func TestConvert_Chain(t *testing.T) {
	g := mustBuild(t, "km -> m: x * 1000\nm -> dm: x * 10")

	got, err := g.Convert(mustLookup(t, g, "km"), "dm", decimal.NewFromInt(1))
	require.NoError(t, err)
	assertDecimal(t, "10000", got)

	got, err = Resolve(g, mustLookup(t, g, "km"), "m", decimal.RequireFromString("2.5"))
	require.NoError(t, err)
	assertDecimal(t, "2500", got)
}

// TestConvert_UnitNotFound verifies a target that was never declared.
func TestConvert_UnitNotFound(t *testing.T) {
	g := mustBuild(t, "km -> m: x * 1000\nm -> dm: x * 10")

	_, err := g.Convert(mustLookup(t, g, "km"), "furlong", decimal.NewFromInt(1))
	require.ErrorIs(t, err, ErrUnitNotFound)

	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "km", convErr.From)
	assert.Equal(t, "furlong", convErr.To)
}

// TestConvert_NoPathFound verifies that relations are not reversible.
func TestConvert_NoPathFound(t *testing.T) {
	g := mustBuild(t, "km -> m: x * 1000\nm -> dm: x * 10")

	_, err := g.Convert(mustLookup(t, g, "dm"), "km", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrNoPathFound)
	assert.NotErrorIs(t, err, ErrUnitNotFound)
}

// TestConvert_CalculationFailed verifies division by zero along a path.
func TestConvert_CalculationFailed(t *testing.T) {
	g := mustBuild(t, "a -> b: x - 1\nb -> c: 10 / x\nc -> d: x * 2")

	_, err := g.Convert(mustLookup(t, g, "a"), "d", decimal.NewFromInt(1))
	require.ErrorIs(t, err, ErrCalculationFailed)
	assert.ErrorIs(t, err, expr.ErrDivisionByZero)

	var calcErr *CalculationError
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, "b", calcErr.From)
	assert.Equal(t, "c", calcErr.To)
	assertDecimal(t, "0", calcErr.Input)

	got, err := g.Convert(mustLookup(t, g, "a"), "d", decimal.NewFromInt(3))
	require.NoError(t, err)
	assertDecimal(t, "10", got)
}

// TestConvert_SameUnit verifies that converting to itself is the identity.
func TestConvert_SameUnit(t *testing.T) {
	g := mustBuild(t, "km -> m: x * 1000")

	got, err := g.Convert(mustLookup(t, g, "m"), "m", decimal.NewFromInt(7))
	require.NoError(t, err)
	assertDecimal(t, "7", got)
}

// TestConvert_InvalidNode verifies start IDs outside the graph.
func TestConvert_InvalidNode(t *testing.T) {
	g := mustBuild(t, "km -> m: x * 1000")

	_, err := g.Convert(NodeID(99), "m", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInvalidNode)

	_, err = g.Convert(NodeID(-1), "m", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInvalidNode)
}

// TestPath_MinimalHops verifies the shortest route is chosen over a longer one.
func TestPath_MinimalHops(t *testing.T) {
	g := mustBuild(t, `
a -> b: x + 1
b -> c: x + 1
c -> d: x + 1
a -> d: x * 100
`)

	path, err := g.Path(mustLookup(t, g, "a"), "d")
	require.NoError(t, err)
	require.Len(t, path, 1)
	assert.Equal(t, "x * 100", path[0].Expr.String())

	got, err := g.Convert(mustLookup(t, g, "a"), "d", decimal.NewFromInt(2))
	require.NoError(t, err)
	assertDecimal(t, "200", got)
}

// TestPath_Order verifies edges are returned from start to target.
func TestPath_Order(t *testing.T) {
	g := mustBuild(t, "c -> d: x\nb -> c: x\na -> b: x")

	path, err := g.Path(mustLookup(t, g, "a"), "d")
	require.NoError(t, err)
	require.Len(t, path, 3)

	var names []string
	for _, e := range path {
		names = append(names, g.Name(e.From)+">"+g.Name(e.To))
	}
	assert.Equal(t, []string{"a>b", "b>c", "c>d"}, names)
}

// TestPath_ParallelEdgesUseFirstDeclared verifies the deterministic tie-break.
func TestPath_ParallelEdgesUseFirstDeclared(t *testing.T) {
	g := mustBuild(t, "a -> b: x * 2\na -> b: x * 3\n")

	for i := 0; i < 10; i++ {
		got, err := g.Convert(mustLookup(t, g, "a"), "b", decimal.NewFromInt(5))
		require.NoError(t, err)
		assertDecimal(t, "10", got)
	}
}

// TestPath_Cycles verifies that cycles do not trap the search.
func TestPath_Cycles(t *testing.T) {
	g := mustBuild(t, "a -> b: x\nb -> a: x\nb -> b: x\nc -> a: x")

	_, err := g.Path(mustLookup(t, g, "a"), "c")
	assert.ErrorIs(t, err, ErrNoPathFound)

	path, err := g.Path(mustLookup(t, g, "c"), "b")
	require.NoError(t, err)
	assert.Len(t, path, 2)
}

// TestConvert_Temperature verifies affine formulas compose.
func TestConvert_Temperature(t *testing.T) {
	g := mustBuild(t, `
C -> F: x * 9 / 5 + 32
F -> C: (x - 32) * 5 / 9
C -> K: x + 273.15
`)

	got, err := g.Convert(mustLookup(t, g, "F"), "K", decimal.NewFromInt(212))
	require.NoError(t, err)
	assertDecimal(t, "373.15", got)

	got, err = g.Convert(mustLookup(t, g, "C"), "F", decimal.NewFromInt(-40))
	require.NoError(t, err)
	assertDecimal(t, "-40", got)
}
