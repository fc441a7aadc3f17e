package calc_test

import (
	"math/big"
	"testing"

	"github.com/zephyrtronium/tdop/calc"
)

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("sqrt(x + 1e3) - pi^2")
	f.Add("1×2")
	f.Add("0/0")
	f.Add("((((")
	f.Add("1e99999999999999999999")
	c := calc.New(calc.Prec(32), calc.SetVar("x", new(big.Float)))
	f.Fuzz(func(t *testing.T, src string) {
		v, err := c.Eval(src)
		if err == nil && v == nil {
			t.Errorf("evaluating %q: no result and no error", src)
		}
	})
}
