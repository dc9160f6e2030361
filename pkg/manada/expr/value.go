package expr

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Expr is a node of an expression tree: Var, Num or Binary.
type Expr interface {
	// Evaluate computes the expression with the free variable bound to x.
	Evaluate(x decimal.Decimal) (decimal.Decimal, error)

	// String re-serializes the expression in parseable form.
	String() string

	exprNode()
}

// Var is the free variable x.
type Var struct{}

// Num is a numeric constant.
type Num struct {
	Value decimal.Decimal
}

// Binary is an operation on two sub-expressions.
// Each Binary exclusively owns its operands.
type Binary struct {
	Left  Expr
	Op    Operator
	Right Expr
}

func (Var) exprNode()    {}
func (Num) exprNode()    {}
func (Binary) exprNode() {}

// String returns "x".
func (Var) String() string {
	return "x"
}

// String returns the normalized constant, without trailing zeros.
func (n Num) String() string {
	return n.Value.String()
}

// String renders both operands around the operator. An operand that is
// itself a Binary is always parenthesized, redundant or not.
func (b Binary) String() string {
	var sb strings.Builder
	writeOperand(&sb, b.Left)
	sb.WriteByte(' ')
	sb.WriteString(b.Op.String())
	sb.WriteByte(' ')
	writeOperand(&sb, b.Right)
	return sb.String()
}

func writeOperand(sb *strings.Builder, e Expr) {
	if _, ok := e.(Binary); ok {
		sb.WriteByte('(')
		sb.WriteString(e.String())
		sb.WriteByte(')')
		return
	}
	sb.WriteString(e.String())
}

// NewNum is shorthand for Num{Value: decimal.NewFromFloat(f)}.
func NewNum(f float64) Num {
	return Num{Value: decimal.NewFromFloat(f)}
}

// NewBinary is shorthand for a Binary literal.
func NewBinary(left Expr, op Operator, right Expr) Binary {
	return Binary{Left: left, Op: op, Right: right}
}
