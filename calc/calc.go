// Package calc implements an arbitrary-precision calculator as a grammar for
// package tdop.
//
// The grammar's tokens do their arithmetic directly in their Nud and Led, so
// evaluating is parsing and every parse result is a *big.Float. Token
// constructors close over the calculator, which carries the precision and
// the variable definitions.
package calc

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
	"github.com/zephyrtronium/tdop"
)

// Binding powers of the grammar. Negation sits between multiplication and
// exponentiation, so -2^2 is -(2^2) and -2*4 is (-2)*4. Function application
// uses bpPow, binding as tightly as exponentiation.
const (
	bpAdd = 10
	bpMul = 20
	bpNeg = 25
	bpPow = 30
)

// Calculator evaluates arithmetic over big.Float values. It is not safe to
// use a Calculator concurrently.
type Calculator struct {
	lx   *tdop.Lexer
	vars map[string]*big.Float
	prec uint
}

// Option is an option used when creating a calculator.
type Option interface {
	calcOption()
}

type (
	varopt struct {
		name string
		val  *big.Float
	}
	varsopt map[string]*big.Float
	precopt uint
)

func (varopt) calcOption()  {}
func (varsopt) calcOption() {}
func (precopt) calcOption() {}

// SetVar sets the value of a variable in the calculator.
func SetVar(name string, val *big.Float) Option {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the calculator.
func SetVars(vars map[string]*big.Float) Option {
	return varsopt(vars)
}

// Prec sets the precision of calculations in bits.
func Prec(prec uint) Option {
	return precopt(prec)
}

// New creates a calculator. If no precision is given, the default is 64.
func New(opts ...Option) *Calculator {
	c := &Calculator{vars: make(map[string]*big.Float), prec: 64}
	// Find the precision first so that variable values copy at the right one.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			c.prec = uint(p)
			break
		}
	}
	for _, opt := range opts {
		switch opt := opt.(type) {
		case varopt:
			c.vars[opt.name] = new(big.Float).SetPrec(c.prec).Set(opt.val)
		case varsopt:
			for k, v := range opt {
				c.vars[k] = new(big.Float).SetPrec(c.prec).Set(v)
			}
		case precopt:
			// Already applied.
		default:
			panic("calc: unknown option type")
		}
	}
	c.lx = grammar(c)
	return c
}

// Eval evaluates src as one expression and returns its value. The whole
// input must parse: trailing input after the expression is a SyntaxError.
func (c *Calculator) Eval(src string) (*big.Float, error) {
	p, err := tdop.NewParser(c.lx.Lex(src))
	if err != nil {
		return nil, err
	}
	v, err := p.Parse()
	if err != nil {
		return nil, err
	}
	if _, ok := p.Current().(*tdop.End); !ok {
		return nil, &tdop.SyntaxError{
			At:    p.Pos(),
			Token: strconv.Quote(p.Current().Text()),
			Msg:   "unexpected input after expression",
		}
	}
	return v.(*big.Float), nil
}

// Set sets the value of a variable. Returns c for chaining.
func (c *Calculator) Set(name string, value *big.Float) *Calculator {
	c.vars[name] = new(big.Float).SetPrec(c.prec).Set(value)
	return c
}

// Lookup returns a copy of the value of a variable. If there is no such
// variable in the calculator, then the result is nil.
func (c *Calculator) Lookup(name string) *big.Float {
	v := c.vars[name]
	if v == nil {
		return nil
	}
	return new(big.Float).Copy(v)
}

// Prec returns the precision to which values are computed, in bits.
func (c *Calculator) Prec() uint {
	return c.prec
}

// Lexer returns the lexer for the calculator's grammar, e.g. to scan input
// into tokens without evaluating it.
func (c *Calculator) Lexer() *tdop.Lexer {
	return c.lx
}

// grammar builds the lexer for a calculator. Every constructor closes over
// the calculator so that tokens can reach its precision and variables.
func grammar(c *Calculator) *tdop.Lexer {
	l := tdop.NewLexer(tdop.Blanks(" \t\r\n"))
	l.RegisterToken(func(text string) tdop.Token {
		return &number{tdop.Base{Lit: text}, c}
	}, `(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?`)
	l.RegisterToken(func(text string) tdop.Token {
		return &ident{tdop.Base{Lit: text}, c}
	}, `[\p{L}_][\p{L}\p{N}_]*`)
	l.RegisterToken(func(text string) tdop.Token {
		return &add{tdop.Base{Lit: text, BP: bpAdd}}
	}, `\+`)
	l.RegisterToken(func(text string) tdop.Token {
		return &sub{tdop.Base{Lit: text, BP: bpAdd}}
	}, `-`)
	l.RegisterToken(func(text string) tdop.Token {
		return &mul{tdop.Base{Lit: text, BP: bpMul}}
	}, `[*×]`)
	l.RegisterToken(func(text string) tdop.Token {
		return &div{tdop.Base{Lit: text, BP: bpMul}}
	}, `[/÷]`)
	l.RegisterToken(func(text string) tdop.Token {
		return &pow{tdop.Base{Lit: text, BP: bpPow}}
	}, `\^`)
	return l
}

// number is a numeric literal. Its value carries the calculator's precision,
// and the arithmetic tokens work in place on their operands, so precision
// propagates through a whole evaluation from the literals.
type number struct {
	tdop.Base
	c *Calculator
}

func (t *number) Nud(p *tdop.Parser) (any, error) {
	v, _, err := new(big.Float).SetPrec(t.c.prec).Parse(t.Text(), 10)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		// The pattern admits no sign, so the saturation is always positive.
		v = new(big.Float).SetInf(false)
	default:
		// The pattern admits only valid numbers otherwise.
		panic("calc: invalid number: " + t.Text() + " (" + err.Error() + ")")
	}
	return v, nil
}

// ident is a function, constant, or variable name.
type ident struct {
	tdop.Base
	c *Calculator
}

func (t *ident) Nud(p *tdop.Parser) (any, error) {
	if f := functions[t.Text()]; f != nil {
		return f.call(t.c, p)
	}
	v := t.c.Lookup(t.Text())
	if v == nil {
		return nil, &NameError{Name: t.Text()}
	}
	return v, nil
}

type add struct {
	tdop.Base
}

func (t *add) Nud(p *tdop.Parser) (any, error) {
	return p.Expression(bpNeg)
}

func (t *add) Led(left any, p *tdop.Parser) (any, error) {
	right, err := p.Expression(t.Lbp())
	if err != nil {
		return nil, err
	}
	l, r := left.(*big.Float), right.(*big.Float)
	return l.Add(l, r), nil
}

type sub struct {
	tdop.Base
}

func (t *sub) Nud(p *tdop.Parser) (any, error) {
	v, err := p.Expression(bpNeg)
	if err != nil {
		return nil, err
	}
	x := v.(*big.Float)
	return x.Neg(x), nil
}

func (t *sub) Led(left any, p *tdop.Parser) (any, error) {
	right, err := p.Expression(t.Lbp())
	if err != nil {
		return nil, err
	}
	l, r := left.(*big.Float), right.(*big.Float)
	return l.Sub(l, r), nil
}

type mul struct {
	tdop.Base
}

func (t *mul) Led(left any, p *tdop.Parser) (any, error) {
	right, err := p.Expression(t.Lbp())
	if err != nil {
		return nil, err
	}
	l, r := left.(*big.Float), right.(*big.Float)
	return l.Mul(l, r), nil
}

type div struct {
	tdop.Base
}

func (t *div) Led(left any, p *tdop.Parser) (any, error) {
	right, err := p.Expression(t.Lbp())
	if err != nil {
		return nil, err
	}
	l, r := left.(*big.Float), right.(*big.Float)
	// Guard against invalid divisions, 0/0 or inf/inf.
	if l.Sign() == 0 && r.Sign() == 0 || l.IsInf() && r.IsInf() {
		return nil, &DomainError{X: r, Func: "/"}
	}
	return l.Quo(l, r), nil
}

type pow struct {
	tdop.Base
}

func (t *pow) Led(left any, p *tdop.Parser) (any, error) {
	// Exponentiation is right-associative, hence Lbp()-1.
	right, err := p.Expression(t.Lbp() - 1)
	if err != nil {
		return nil, err
	}
	l, r := left.(*big.Float), right.(*big.Float)
	// Guard against invalid exponentiations, i.e. negative base.
	if l.Signbit() {
		return nil, &DomainError{X: l, Func: "^"}
	}
	return bigfloat.Pow(l, l, r), nil
}

// NameError is an error from a lookup for a variable that is missing from
// the calculator.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
