package query

import "fmt"

// Parse parses a normalized query string into an expression AST.
//
// Grammar, loosest to tightest: "or" (keyword or '|'), implicit AND by
// adjacency, unary '-' negation, then leaves. A quoted span is a single
// phrase leaf. Parentheses group sub-expressions.
func Parse(input string) (Expr, error) {
	tokens, err := Lex(input)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens, pos: 0}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.match(TokEOF) {
		return nil, fmt.Errorf("unexpected token %v after expression", p.current().Kind)
	}
	return expr, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) parseExpr() (Expr, error) {
	return p.parseOr()
}

func (p *parser) parseOr() (Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.match(TokOr) {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = Or{Left: left, Right: right}
	}

	return left, nil
}

// parseAnd folds adjacent operands into a conjunction: two terms with
// no operator between them are implicitly ANDed. An explicit '&' is
// accepted too.
func (p *parser) parseAnd() (Expr, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}

	for p.match(TokAnd) || p.startsOperand() {
		if p.match(TokAnd) {
			p.advance()
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = And{Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) parseNot() (Expr, error) {
	if p.match(TokNot) {
		p.advance()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return Not{Inner: inner}, nil
	}

	return p.parsePrimary()
}

func (p *parser) parsePrimary() (Expr, error) {
	switch p.current().Kind {
	case TokLParen:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.match(TokRParen) {
			return nil, fmt.Errorf("expected ')', got %v", p.current().Kind)
		}
		p.advance()
		return expr, nil

	case TokTerm:
		value := p.current().Value
		p.advance()
		return Term{Text: value}, nil

	case TokPhrase:
		value := p.current().Value
		p.advance()
		return Phrase{Text: value}, nil

	case TokEOF:
		return nil, fmt.Errorf("unexpected end of query")

	default:
		return nil, fmt.Errorf("expected term, got %v", p.current().Kind)
	}
}

// startsOperand reports whether the current token can begin an operand,
// which is what makes adjacency an implicit AND.
func (p *parser) startsOperand() bool {
	switch p.current().Kind {
	case TokTerm, TokPhrase, TokNot, TokLParen:
		return true
	}
	return false
}

func (p *parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{Kind: TokEOF}
}

func (p *parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *parser) match(kind TokenKind) bool {
	return p.current().Kind == kind
}
