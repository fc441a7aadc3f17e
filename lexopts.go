package tdop

// Option is an option for constructing a lexer.
type Option interface {
	lexOption(lexconf) lexconf
}

type (
	parenopt bool
	blankopt string
)

// lexconf holds the configuration a lexer is built from.
type lexconf struct {
	// parens indicates whether to register the built-in paren tokens.
	parens bool
	// blanks is the set of runes skipped between tokens.
	blanks string
}

// Parens controls registration of the built-in LeftParen and RightParen
// tokens under the patterns \( and \). The default is to register them.
func Parens(use bool) Option {
	return parenopt(use)
}

func (o parenopt) lexOption(c lexconf) lexconf {
	c.parens = bool(o)
	return c
}

// Blanks replaces the set of runes the lexer skips between tokens. The
// default is space and tab. With an empty chars, the lexer skips nothing and
// every rune of the input must belong to some token.
func Blanks(chars string) Option {
	return blankopt(chars)
}

func (o blankopt) lexOption(c lexconf) lexconf {
	c.blanks = string(o)
	return c
}
