package tdop

import (
	"errors"
	"io"
	"reflect"
)

// Parser parses one token stream with Pratt's top-down operator precedence
// technique, driven by the Nud, Led, and Lbp of the tokens themselves. It
// keeps a single token of lookahead and pulls from the stream only on
// demand, so streams may be unbounded or produced incrementally.
type Parser struct {
	ts  Stream
	tok Token
	// pos is the number of tokens consumed so far.
	pos int
}

// NewParser creates a parser over a token stream and pulls the stream's
// first token as the lookahead. A stream that yields no tokens at all is
// reported as ErrNoTokens; any other error from the first pull is returned
// as is.
func NewParser(ts Stream) (*Parser, error) {
	tok, err := ts.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoTokens
		}
		return nil, err
	}
	return &Parser{ts: ts, tok: tok}, nil
}

// Current returns the lookahead token, which the next Consume will return.
func (p *Parser) Current() Token {
	return p.tok
}

// Pos returns the number of tokens consumed so far. Errors detected at the
// lookahead report this position.
func (p *Parser) Pos() int {
	return p.pos
}

// Consume returns the current token and advances to the next one. Advancing
// always pulls from the stream, so a stream that runs out before the grammar
// stops consuming is a SyntaxError; grammars control where consuming stops
// by ending their streams with a token that Expression will not step past,
// conventionally an End.
func (p *Parser) Consume() (Token, error) {
	next, err := p.ts.Next()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SyntaxError{At: p.pos, Msg: "unexpected end of token stream"}
		}
		return nil, err
	}
	tok := p.tok
	p.tok = next
	p.pos++
	return tok, nil
}

// Expect consumes and returns the current token after checking that its
// dynamic type is the same as want's. The check happens before consuming, so
// a mismatch is a SyntaxError at the current position and nothing is
// consumed. A nil want skips the check, making Expect equivalent to Consume.
func (p *Parser) Expect(want Token) (Token, error) {
	if want == nil {
		return p.Consume()
	}
	if reflect.TypeOf(p.tok) != reflect.TypeOf(want) {
		return nil, &SyntaxError{
			At:    p.pos,
			Token: display(p.tok),
			Want:  reflect.TypeOf(want).String(),
			Msg:   "unexpected token",
		}
	}
	return p.Consume()
}

// Expression parses one expression from the stream. rbp is the right
// binding power: the expression extends through successive Led tokens while
// their left binding power exceeds rbp and stops on the first token bound no
// more tightly, leaving it as Current. An infix operator's Led calls
// Expression with the operator's own binding power for left associativity,
// or with one less for right associativity. Callers parsing a complete
// subexpression pass 0.
func (p *Parser) Expression(rbp int) (any, error) {
	tok, err := p.Consume()
	if err != nil {
		return nil, err
	}
	left, err := tok.Nud(p)
	if err != nil {
		return nil, err
	}
	for rbp < p.tok.Lbp() {
		tok, err = p.Consume()
		if err != nil {
			return nil, err
		}
		left, err = tok.Led(left, p)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

// Parse parses one expression with minimal binding power. It does not
// require the stream to be exhausted afterward: parsers that must consume
// their whole input check that Current is an *End once Parse returns.
func (p *Parser) Parse() (any, error) {
	return p.Expression(0)
}
