package calc

import (
	"errors"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
	"github.com/zephyrtronium/tdop"
)

// function is a named function or constant of the calculator grammar.
type function struct {
	name string
	// monadic computes a function of one argument, or nil.
	monadic func(z, x *big.Float) *big.Float
	// niladic computes a constant, or nil.
	niladic func(z *big.Float) *big.Float
}

var functions = map[string]*function{
	"exp": {name: "exp", monadic: bigfloat.Exp},
	"ln":  {name: "ln", monadic: bigfloat.Log},
	"log": {name: "log", monadic: log10},

	"sqrt": {name: "sqrt", monadic: (*big.Float).Sqrt},

	// constants
	"pi": {name: "pi", niladic: bigfloat.Pi},
	"e":  {name: "e", niladic: euler},
}

// call evaluates the function at the parser's position. A constant consumes
// nothing. A monadic function parses its argument with the binding power of
// exponentiation, so "sqrt 9 + 1" is sqrt(9)+1 and anything looser needs
// parens, including parenthesized calls like "sqrt(9)".
func (f *function) call(c *Calculator, p *tdop.Parser) (any, error) {
	z := new(big.Float).SetPrec(c.prec)
	if f.niladic != nil {
		return f.niladic(z), nil
	}
	arg, err := p.Expression(bpPow)
	if err != nil {
		return nil, err
	}
	return f.apply(z, arg.(*big.Float))
}

// apply computes a monadic function, converting a big.ErrNaN panic on an
// argument outside the function's domain into a DomainError.
func (f *function) apply(z, x *big.Float) (r *big.Float, err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		e, ok := v.(error)
		if !ok || !errors.As(e, &big.ErrNaN{}) {
			panic(v)
		}
		r, err = nil, &DomainError{X: x, Func: f.name}
	}()
	return f.monadic(z, x), nil
}

// log10 computes the base 10 logarithm as a quotient of natural logarithms.
func log10(z, x *big.Float) *big.Float {
	bigfloat.Log(z, x)
	d := new(big.Float).SetPrec(z.Prec()).SetInt64(10)
	bigfloat.Log(d, d)
	return z.Quo(z, d)
}

// euler computes e as exp(1).
func euler(z *big.Float) *big.Float {
	one := new(big.Float).SetPrec(z.Prec()).SetInt64(1)
	return bigfloat.Exp(z, one)
}

// DomainError is an error returned when a function or operator is applied to
// an argument outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}
