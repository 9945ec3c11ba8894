package query

import (
	"fmt"
	"strings"
	"unicode"
)

// Token represents a lexical token
type Token struct {
	Kind  TokenKind
	Value string
}

// TokenKind is the type of token
type TokenKind int

const (
	TokTerm TokenKind = iota
	TokPhrase
	TokAnd
	TokOr
	TokNot
	TokLParen
	TokRParen
	TokEOF
)

func (k TokenKind) String() string {
	switch k {
	case TokTerm:
		return "Term"
	case TokPhrase:
		return "Phrase"
	case TokAnd:
		return "And"
	case TokOr:
		return "Or"
	case TokNot:
		return "Not"
	case TokLParen:
		return "LParen"
	case TokRParen:
		return "RParen"
	case TokEOF:
		return "EOF"
	default:
		return "Unknown"
	}
}

// Lexer tokenizes a search query string
type Lexer struct {
	input []rune
	pos   int
}

// NewLexer creates a new lexer for the input string
func NewLexer(input string) *Lexer {
	return &Lexer{
		input: []rune(input),
		pos:   0,
	}
}

// Lex tokenizes the entire input
func Lex(input string) ([]Token, error) {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok, err := lexer.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}

	return tokens, nil
}

// Next returns the next token
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return Token{Kind: TokEOF}, nil
	}

	ch := l.input[l.pos]

	switch ch {
	case '(':
		l.pos++
		return Token{Kind: TokLParen}, nil
	case ')':
		l.pos++
		return Token{Kind: TokRParen}, nil
	case '&':
		l.pos++
		return Token{Kind: TokAnd}, nil
	case '|':
		l.pos++
		return Token{Kind: TokOr}, nil
	case '-', '!':
		// Internal hyphens are converted to spaces by Normalize, so any
		// hyphen seen here starts a token: the negation marker. '!' is
		// the rendered form and parses back the same way.
		l.pos++
		return Token{Kind: TokNot}, nil
	case '"':
		return l.scanPhrase()
	}

	if isTermRune(ch) {
		return l.scanTerm(), nil
	}

	return Token{}, fmt.Errorf("unexpected character: %c", ch)
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}

func (l *Lexer) scanPhrase() (Token, error) {
	l.pos++ // consume opening quote
	start := l.pos

	for l.pos < len(l.input) {
		if l.input[l.pos] == '"' {
			// Collapse internal whitespace runs; content stays one unit.
			text := strings.Join(strings.Fields(string(l.input[start:l.pos])), " ")
			l.pos++ // consume closing quote
			if text == "" {
				return Token{}, fmt.Errorf("empty phrase")
			}
			return Token{Kind: TokPhrase, Value: text}, nil
		}
		l.pos++
	}

	return Token{}, fmt.Errorf("unterminated phrase")
}

func (l *Lexer) scanTerm() Token {
	start := l.pos

	for l.pos < len(l.input) && isTermRune(l.input[l.pos]) {
		l.pos++
	}

	value := string(l.input[start:l.pos])
	if strings.EqualFold(value, "or") {
		return Token{Kind: TokOr}
	}

	return Token{Kind: TokTerm, Value: value}
}

func isTermRune(ch rune) bool {
	if unicode.IsSpace(ch) {
		return false
	}
	switch ch {
	case '"', '(', ')', '&', '|', '!':
		return false
	}
	// Terms keep everything else; emails pass through normalization
	// intact and carry '@' and '.'.
	return true
}
