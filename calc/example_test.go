package calc_test

import (
	"fmt"
	"math/big"

	"github.com/zephyrtronium/tdop/calc"
)

func ExampleCalculator_Eval() {
	c := calc.New(calc.Prec(64), calc.SetVar("x", big.NewFloat(3)))
	for _, src := range []string{"2*x + 2", "2*(x+2)", "sqrt(x*12)"} {
		v, err := c.Eval(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf("%s = %g\n", src, v)
	}
	// Output:
	// 2*x + 2 = 8
	// 2*(x+2) = 10
	// sqrt(x*12) = 6
}

func ExampleCalculator_Set() {
	c := calc.New()
	c.Set("price", big.NewFloat(250)).Set("qty", big.NewFloat(4))
	total, _ := c.Eval("price * qty")
	fmt.Println(total)
	// Output:
	// 1000
}
