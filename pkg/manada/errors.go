package manada

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/randalmurphal/manada/pkg/manada/expr"
)

// Sentinel errors for definition documents.
var (
	// ErrMissingArrow indicates a definition line without the " -> " separator.
	ErrMissingArrow = errors.New("missing \" -> \" between origin and destination")

	// ErrMissingColon indicates a definition line without the ": " separator.
	ErrMissingColon = errors.New("missing \": \" between destination and calculation")

	// ErrEmptyUnit indicates a definition line whose origin or destination is blank.
	ErrEmptyUnit = errors.New("unit name is empty")
)

// Sentinel errors for conversion.
var (
	// ErrUnitNotFound indicates the requested unit is not part of the graph.
	ErrUnitNotFound = errors.New("unit does not exist")

	// ErrNoPathFound indicates the target exists but cannot be reached from the start.
	ErrNoPathFound = errors.New("no conversion path found")

	// ErrCalculationFailed indicates an edge's formula could not be evaluated.
	ErrCalculationFailed = errors.New("calculation failed")

	// ErrInvalidNode indicates a NodeID that does not belong to the graph.
	ErrInvalidNode = errors.New("invalid node")
)

// ParseError reports the first invalid line of a definition document.
type ParseError struct {
	// Line is the 0-based index of the line in the document.
	Line int
	// Text is the line as it appears in the document.
	Text string
	// Expr is the calculation part of the line, or empty when the line
	// could not be split.
	Expr string
	// Err is one of ErrMissingArrow, ErrMissingColon, ErrEmptyUnit or an
	// error from package expr.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line+1, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConversionError wraps a failed conversion with the requested units.
type ConversionError struct {
	// From is the start unit.
	From string
	// To is the requested target unit.
	To string
	// Err is ErrUnitNotFound, ErrNoPathFound, ErrInvalidNode or a *CalculationError.
	Err error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %s to %s: %v", e.From, e.To, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// CalculationError identifies the edge whose formula failed.
// It matches both ErrCalculationFailed and the evaluation error with errors.Is.
type CalculationError struct {
	// From and To are the units of the failing edge.
	From string
	To   string
	// Expr is the failing formula.
	Expr expr.Expr
	// Input is the value the formula was evaluated with.
	Input decimal.Decimal
	// Err is the evaluation error, typically expr.ErrDivisionByZero.
	Err error
}

// Error implements the error interface.
func (e *CalculationError) Error() string {
	return fmt.Sprintf("%v: %s -> %s: %s with x = %s: %v",
		ErrCalculationFailed, e.From, e.To, e.Expr, e.Input, e.Err)
}

// Unwrap returns ErrCalculationFailed and the evaluation error.
func (e *CalculationError) Unwrap() []error {
	return []error{ErrCalculationFailed, e.Err}
}

// errorKind classifies an error for metrics.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnitNotFound):
		return "unit_not_found"
	case errors.Is(err, ErrNoPathFound):
		return "no_path"
	case errors.Is(err, ErrCalculationFailed):
		return "calculation_failed"
	case errors.Is(err, ErrInvalidNode):
		return "invalid_node"
	default:
		return "unknown"
	}
}
