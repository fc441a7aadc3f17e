package tdop

import (
	"fmt"
	"strconv"
)

// Token is a lexed unit of input that knows how to parse itself. The parser
// never inspects token text or concrete types; it drives the whole parse
// through this interface.
//
// The design is Pratt's top-down operator precedence technique: a token's Nud
// (null denotation) parses it at the start of an expression, its Led (left
// denotation) parses it after a left operand, and its Lbp (left binding
// power) decides whether the precedence climbing loop offers it that operand.
type Token interface {
	// Text returns the source text the token was lexed from.
	Text() string
	// Lbp returns the token's left binding power. A token with higher left
	// binding power binds more tightly to the expression on its left.
	Lbp() int
	// Nud parses the token with no left context, e.g. a literal or a prefix
	// operator. p is positioned just past the token.
	Nud(p *Parser) (any, error)
	// Led parses the token with the left context left, e.g. an infix or a
	// postfix operator. p is positioned just past the token.
	Led(left any, p *Parser) (any, error)
}

// Base is a Token implementation for embedding in token types. Its Nud and
// Led fail with a SyntaxError, so a type embedding Base overrides whichever
// of the two it can actually parse as, and its left binding power is the BP
// field, zero unless set.
type Base struct {
	// Lit is the source text the token was lexed from.
	Lit string
	// BP is the token's left binding power.
	BP int
}

func (b Base) Text() string { return b.Lit }

func (b Base) Lbp() int { return b.BP }

// Nud fails with a SyntaxError. By default a token cannot begin an
// expression.
func (b Base) Nud(p *Parser) (any, error) {
	return nil, &SyntaxError{At: p.pos, Token: strconv.Quote(b.Lit), Msg: "unexpected token at start of expression"}
}

// Led fails with a SyntaxError. By default a token cannot continue an
// expression.
func (b Base) Led(left any, p *Parser) (any, error) {
	return nil, &SyntaxError{At: p.pos, Token: strconv.Quote(b.Lit), Msg: "unexpected token in middle of expression"}
}

// End marks the end of a token stream. A Scan yields exactly one End after
// the last token of its input, and parsers constructed from hand-built
// streams should receive one as well.
type End struct {
	Base
}

// String returns a fixed display text, since an End has no source text to
// show in error messages.
func (t *End) String() string { return "<end>" }

// Nud fails with a SyntaxError. An End at the start of an expression means
// there is no expression.
func (t *End) Nud(p *Parser) (any, error) {
	return nil, &SyntaxError{At: p.pos, Msg: "no expression"}
}

// Led fails with a SyntaxError. An End in the middle of an expression means
// the expression is unfinished.
func (t *End) Led(left any, p *Parser) (any, error) {
	return nil, &SyntaxError{At: p.pos, Msg: "unexpected end of expression"}
}

// LeftParen groups a subexpression. NewLexer registers it by default. Its
// Nud parses one expression with minimal binding power, requires a
// RightParen after it, and yields the inner expression's value unchanged.
type LeftParen struct {
	Base
}

func (t *LeftParen) Nud(p *Parser) (any, error) {
	expr, err := p.Expression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(&RightParen{}); err != nil {
		return nil, err
	}
	return expr, nil
}

// RightParen closes a group opened by LeftParen. It has no parsing behavior
// of its own. Its left binding power of zero stops the climbing loop, and
// LeftParen.Nud consumes it.
type RightParen struct {
	Base
}

func newLeftParen(text string) Token  { return &LeftParen{Base{Lit: text}} }
func newRightParen(text string) Token { return &RightParen{Base{Lit: text}} }

// display formats a token for an error message.
func display(tok Token) string {
	if s, ok := tok.(fmt.Stringer); ok {
		return s.String()
	}
	return strconv.Quote(tok.Text())
}
