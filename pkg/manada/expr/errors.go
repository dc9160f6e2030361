package expr

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing and evaluation.
var (
	// ErrUnexpectedEOL indicates the expression ended where another token was required.
	ErrUnexpectedEOL = errors.New("unexpected end of line in the calculation")

	// ErrDivisionByZero indicates a division whose right operand evaluated to zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// InvalidCharError reports a character the tokenizer does not recognize.
type InvalidCharError struct {
	// Source is the expression with all whitespace removed.
	Source string
	// Char is the offending character.
	Char rune
	// Position is the 0-based rune index of Char in Source.
	Position int
}

// Error implements the error interface.
func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q in calculation", e.Char)
}

// InvalidNumberError reports a numeric literal that is not a valid decimal,
// such as "1.2.3".
type InvalidNumberError struct {
	// Source is the expression with all whitespace removed.
	Source string
	// Literal is the malformed literal, including its sign.
	Literal string
	// Position is the 0-based rune index where Literal starts in Source.
	Position int
}

// Error implements the error interface.
func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("invalid number %q in calculation", e.Literal)
}

// UnexpectedTokenError reports a token that is not valid at its position.
type UnexpectedTokenError struct {
	Token Token
}

// Error implements the error interface.
func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s in the calculation", e.Token)
}

// UnknownOperatorError is returned when an Operator value outside the
// four defined operators is applied.
type UnknownOperatorError struct {
	Op Operator
}

// Error implements the error interface.
func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("unknown operator: %d", int(e.Op))
}
