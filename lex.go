package tdop

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Stream is a source of tokens for a parser. Next returns the next token of
// the stream, or io.EOF when the stream is exhausted.
type Stream interface {
	Next() (Token, error)
}

// Lexer turns text into token streams. Configure one by registering token
// constructors under patterns; Lex then scans any number of inputs against
// them. A lexer is read-only while scanning, so streams from one lexer are
// independent of each other.
type Lexer struct {
	// Tokens is the registry the lexer matches input against. It may be used
	// directly, e.g. to inspect candidates or to share a registry between
	// lexers.
	Tokens Registry

	blanks string
}

// NewLexer creates a lexer. By default it skips spaces and tabs between
// tokens and registers the built-in paren tokens; options change either.
func NewLexer(opts ...Option) *Lexer {
	c := lexconf{parens: true, blanks: " \t"}
	for _, opt := range opts {
		c = opt.lexOption(c)
	}
	l := &Lexer{blanks: c.blanks}
	if c.parens {
		l.Tokens.Register(newLeftParen, `\(`)
		l.Tokens.Register(newRightParen, `\)`)
	}
	return l
}

// RegisterToken adds a token constructor to the lexer's registry under a
// pattern. See Registry.Register for the pattern rules.
func (l *Lexer) RegisterToken(newToken Constructor, pattern string) {
	l.Tokens.Register(newToken, pattern)
}

// Lex scans text lazily. No input is examined before the first call to Next
// on the result.
func (l *Lexer) Lex(text string) *Scan {
	return &Scan{lx: l, rest: text}
}

// Parse lexes text and parses it as a single expression.
func (l *Lexer) Parse(text string) (any, error) {
	p, err := NewParser(l.Lex(text))
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Scan is a lazy, single-pass token stream over one input text. It
// implements Stream. Once the input is exhausted, Next yields one End token
// and then io.EOF. After a LexError the scan is over: Next yields io.EOF
// with no End.
type Scan struct {
	lx   *Lexer
	rest string
	// runes is the count of runes consumed so far.
	runes int
	done  bool
}

// Next returns the next token of the input. It skips blank runes, matches
// the remaining text against the registry, and builds the token with the
// winning constructor. A rune that neither any pattern nor the blank set
// accepts is a LexError carrying the rune and the unconsumed remainder.
func (s *Scan) Next() (Token, error) {
	if s.done {
		return nil, io.EOF
	}
	for s.rest != "" {
		if newTok, lit := s.lx.Tokens.Match(s.rest); newTok != nil {
			s.rest = s.rest[len(lit):]
			s.runes += utf8.RuneCountInString(lit)
			return newTok(lit), nil
		}
		r, sz := utf8.DecodeRuneInString(s.rest)
		if !strings.ContainsRune(s.lx.blanks, r) {
			s.done = true
			return nil, &LexError{Char: r, Rest: s.rest, Col: s.runes + 1}
		}
		s.rest = s.rest[sz:]
		s.runes++
	}
	s.done = true
	return &End{}, nil
}

// Tokens builds a Stream over a fixed token slice, for driving a parser
// without a lexer. The caller supplies any End sentinel it wants the parser
// to see.
func Tokens(toks ...Token) Stream {
	return &sliceStream{toks}
}

type sliceStream struct {
	toks []Token
}

func (s *sliceStream) Next() (Token, error) {
	if len(s.toks) == 0 {
		return nil, io.EOF
	}
	tok := s.toks[0]
	s.toks = s.toks[1:]
	return tok, nil
}
