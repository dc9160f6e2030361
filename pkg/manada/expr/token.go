package expr

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// TokenKind identifies the lexical class of a Token.
type TokenKind int

const (
	// TokenNumber is a numeric literal; Token.Num holds its value.
	TokenNumber TokenKind = iota
	// TokenOperator is one of + - * /; Token.Op holds it.
	TokenOperator
	// TokenVariable is the free variable x.
	TokenVariable
	// TokenLeftGroup is any of ( { [.
	TokenLeftGroup
	// TokenRightGroup is any of ) } ].
	TokenRightGroup
)

// Token is a single lexical unit of an expression.
type Token struct {
	Kind TokenKind
	Num  decimal.Decimal
	Op   Operator
}

// Tokens without a payload.
var (
	Variable   = Token{Kind: TokenVariable}
	LeftGroup  = Token{Kind: TokenLeftGroup}
	RightGroup = Token{Kind: TokenRightGroup}
)

// NumberToken returns a TokenNumber holding n.
func NumberToken(n decimal.Decimal) Token {
	return Token{Kind: TokenNumber, Num: n}
}

// OperatorToken returns a TokenOperator holding op.
func OperatorToken(op Operator) Token {
	return Token{Kind: TokenOperator, Op: op}
}

// String returns a debug rendering such as NUMBER(5.5) or OPERATOR(+).
func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return fmt.Sprintf("NUMBER(%s)", t.Num)
	case TokenOperator:
		return fmt.Sprintf("OPERATOR(%s)", t.Op)
	case TokenVariable:
		return "VARIABLE"
	case TokenLeftGroup:
		return "LEFT-GROUP"
	case TokenRightGroup:
		return "RIGHT-GROUP"
	default:
		return "UNKNOWN"
	}
}

// Tokenize splits an expression into tokens.
//
// All whitespace is removed before scanning. Positions in returned errors
// refer to that stripped form. Either the whole input is tokenized or an
// error is returned.
func Tokenize(text string) ([]Token, error) {
	stripped := StripSpace(text)
	chars := []rune(stripped)
	tokens := make([]Token, 0, len(chars))

	for i := 0; i < len(chars); {
		c := chars[i]

		if isDigit(c) || (c == '-' && i+1 < len(chars) && isDigit(chars[i+1]) && signAllowed(tokens)) {
			start := i
			i++
			for i < len(chars) && (isDigit(chars[i]) || chars[i] == '.') {
				i++
			}
			literal := string(chars[start:i])
			n, err := decimal.NewFromString(literal)
			if err != nil {
				return nil, &InvalidNumberError{Source: stripped, Literal: literal, Position: start}
			}
			tokens = append(tokens, NumberToken(n))
			continue
		}

		var next Token
		switch c {
		case 'x':
			next = Variable
		case '(', '{', '[':
			next = LeftGroup
		case ')', '}', ']':
			next = RightGroup
		default:
			op, ok := operatorFor(c)
			if !ok {
				return nil, &InvalidCharError{Source: stripped, Char: c, Position: i}
			}
			next = OperatorToken(op)
		}
		tokens = append(tokens, next)
		i++
	}

	return tokens, nil
}

// StripSpace removes every whitespace character from s.
func StripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// signAllowed reports whether a '-' at the current position is a sign,
// which is the case in prefix position only.
func signAllowed(tokens []Token) bool {
	if len(tokens) == 0 {
		return true
	}
	switch tokens[len(tokens)-1].Kind {
	case TokenOperator, TokenLeftGroup:
		return true
	}
	return false
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
