package expr

// Parser is a recursive-descent parser over a token sequence.
// Its cursor only moves forward.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser creates a parser positioned at the first token.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes and parses a complete expression.
// Tokens left over after a complete expression are an error.
func Parse(text string) (Expr, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return ParseTokens(tokens)
}

// ParseTokens parses a complete expression from tokens.
func ParseTokens(tokens []Token) (Expr, error) {
	p := NewParser(tokens)
	e, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.peek(); ok {
		return nil, &UnexpectedTokenError{Token: tok}
	}
	return e, nil
}

// Done reports whether every token has been consumed.
func (p *Parser) Done() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) peek() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

func (p *Parser) advance() (Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.pos++
	}
	return tok, ok
}

// ParseExpression parses expression := term (('+'|'-') term)*.
// It stops at the first token that cannot continue the expression and
// leaves it unconsumed.
func (p *Parser) ParseExpression() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != TokenOperator || !tok.Op.additive() {
			return left, nil
		}
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = Binary{Left: left, Op: tok.Op, Right: right}
	}
}

// parseTerm parses term := factor (('*'|'/') factor)*.
func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || tok.Kind != TokenOperator || !tok.Op.multiplicative() {
			return left, nil
		}
		p.advance()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = Binary{Left: left, Op: tok.Op, Right: right}
	}
}

// parseFactor parses factor := Number | Variable | '(' expression ')'.
func (p *Parser) parseFactor() (Expr, error) {
	tok, ok := p.advance()
	if !ok {
		return nil, ErrUnexpectedEOL
	}

	switch tok.Kind {
	case TokenNumber:
		return Num{Value: tok.Num}, nil
	case TokenVariable:
		return Var{}, nil
	case TokenLeftGroup:
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		closing, ok := p.advance()
		if !ok {
			return nil, ErrUnexpectedEOL
		}
		if closing.Kind != TokenRightGroup {
			return nil, &UnexpectedTokenError{Token: closing}
		}
		return inner, nil
	default:
		return nil, &UnexpectedTokenError{Token: tok}
	}
}
