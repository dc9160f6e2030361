package expr

import (
	"github.com/shopspring/decimal"
)

// Evaluate returns x.
func (Var) Evaluate(x decimal.Decimal) (decimal.Decimal, error) {
	return x, nil
}

// Evaluate returns the stored constant.
func (n Num) Evaluate(decimal.Decimal) (decimal.Decimal, error) {
	return n.Value, nil
}

// Evaluate computes the left operand, then the right, then combines them.
// A failure anywhere in the tree fails the whole evaluation.
func (b Binary) Evaluate(x decimal.Decimal) (decimal.Decimal, error) {
	left, err := b.Left.Evaluate(x)
	if err != nil {
		return decimal.Zero, err
	}
	right, err := b.Right.Evaluate(x)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Op.Apply(left, right)
}

// Eval parses an expression and evaluates it for x in one step.
func Eval(text string, x decimal.Decimal) (decimal.Decimal, error) {
	e, err := Parse(text)
	if err != nil {
		return decimal.Zero, err
	}
	return e.Evaluate(x)
}
