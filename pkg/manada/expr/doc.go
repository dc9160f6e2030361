/*
Package expr provides the conversion-factor expression language used by manada.

# Overview

Every edge of a conversion graph carries a small arithmetic formula written
in terms of a single free variable x, the value being converted. expr
tokenizes such a formula, parses it into an expression tree and evaluates
the tree for a concrete x.

# Expression Syntax

	<expression> := <term> (('+' | '-') <term>)*
	<term>       := <factor> (('*' | '/') <factor>)*
	<factor>     := number | 'x' | '(' <expression> ')'

Grouping accepts any of (), {} and []. Bracket flavors are not matched
against each other, so "(x + 1]" is accepted.

Numbers are decimal literals such as 42, 0.5 or 1000. A '-' directly in front
of a digit is the sign of the literal when it is in prefix position (first
token, after an operator or after an opening bracket); anywhere else it is
subtraction. Whitespace is ignored everywhere, including inside literals.

# Operators

	+          Addition
	-          Subtraction
	*          Multiplication
	/          Division (fails with ErrDivisionByZero on a zero divisor)

Operators of the same precedence fold to the left: "10 - 4 - 3" is
"(10 - 4) - 3".

# Examples

Parse once, evaluate many times:

	e, err := expr.Parse("x * 1000")
	if err != nil {
	    return err
	}
	v, err := e.Evaluate(decimal.NewFromInt(5)) // 5000

Or in one step:

	v, err := expr.Eval("(x - 32) * 5 / 9", decimal.NewFromInt(212)) // 100

# Printing

String re-serializes a tree. Every nested binary operation is wrapped in
parentheses, so the printed form always parses back to the same tree:

	e, _ := expr.Parse("1 + 2 * 3")
	e.String() // "1 + (2 * 3)"

# Errors

Tokenizing reports *InvalidCharError and *InvalidNumberError with the
position in the whitespace-stripped source. Parsing reports ErrUnexpectedEOL
and *UnexpectedTokenError. Evaluation reports ErrDivisionByZero. All are
returned as values; nothing in this package panics on bad input.

# Thread Safety

Expressions are immutable after parsing and safe for concurrent evaluation.
*/
package expr
