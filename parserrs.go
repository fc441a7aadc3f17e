package tdop

import (
	"errors"
	"strconv"
)

// SyntaxError is an error indicating a token that cannot be parsed where it
// appears, including running out of tokens while an expression is incomplete.
// It implements InputError.
type SyntaxError struct {
	// At is the number of tokens the parser had consumed when the error was
	// detected.
	At int
	// Token is the display text of the offending token, if there is one.
	Token string
	// Want is the type the parser expected in place of Token, if the error
	// came from an expectation.
	Want string
	// Msg describes the failure.
	Msg string
}

func (err *SyntaxError) Error() string {
	s := err.Msg
	if err.Token != "" {
		s += ": got " + err.Token
	}
	if err.Want != "" {
		s += ", want " + err.Want
	}
	return errpos(err.At, s)
}

func (err *SyntaxError) Pos() int {
	return err.At
}

// LexError is an error indicating input text that no registered pattern
// matches. It implements InputError.
type LexError struct {
	// Char is the rune that could not be lexed.
	Char rune
	// Rest is the unconsumed input, beginning with Char.
	Rest string
	// Col is the total number of runes scanned up to and including Char.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char)+" in "+strconv.Quote(err.Rest))
}

func (err *LexError) Pos() int {
	return err.Col
}

// ErrNoTokens indicates that a parser was constructed from a stream that
// yielded no tokens at all. Test for it with errors.Is.
var ErrNoTokens = errors.New("tdop: no tokens provided")

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error. Lexing errors count runes from
	// the start of the text; parsing errors count tokens consumed from the
	// stream.
	Pos() int
}

var (
	_ InputError = (*SyntaxError)(nil)
	_ InputError = (*LexError)(nil)
)
