package expr

import (
	"github.com/shopspring/decimal"
)

// Operator is one of the four arithmetic operators.
type Operator int

const (
	// Add is '+'.
	Add Operator = iota
	// Sub is '-'.
	Sub
	// Mul is '*'.
	Mul
	// Div is '/'.
	Div
)

// String returns the one-character rendering of the operator.
func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// operatorFor maps a source character to its operator.
func operatorFor(c rune) (Operator, bool) {
	switch c {
	case '+':
		return Add, true
	case '-':
		return Sub, true
	case '*':
		return Mul, true
	case '/':
		return Div, true
	}
	return 0, false
}

// additive reports whether op binds at expression level (+, -).
func (op Operator) additive() bool {
	return op == Add || op == Sub
}

// multiplicative reports whether op binds at term level (*, /).
func (op Operator) multiplicative() bool {
	return op == Mul || op == Div
}

// Apply combines two operands.
// Returns ErrDivisionByZero for Div with a zero right operand.
func (op Operator) Apply(left, right decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case Add:
		return left.Add(right), nil
	case Sub:
		return left.Sub(right), nil
	case Mul:
		return left.Mul(right), nil
	case Div:
		if right.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		return left.Div(right), nil
	default:
		return decimal.Zero, &UnknownOperatorError{Op: op}
	}
}
