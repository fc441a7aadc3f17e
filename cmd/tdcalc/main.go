package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/tdop/calc"
)

var (
	prec     uint
	verb     string
	varsFile string
	given    []string
)

var rootCmd = &cobra.Command{
	Use:   "tdcalc",
	Short: "Arbitrary-precision calculator",
	Long: `tdcalc evaluates arithmetic with arbitrary-precision floating-point
numbers.

Expressions use the operators + - * / ^ (also × and ÷) and parens, the
functions sqrt, exp, ln, and log, the constants pi and e, and variables
defined with --given or a --vars TOML file.`,
	SilenceUsage: true,
}

var evalCmd = &cobra.Command{
	Use:   "eval [expression ...]",
	Short: "Evaluate expressions",
	Long: `Eval evaluates each argument as one expression and prints its value.
With no arguments, it evaluates each nonblank line of standard input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCalculator()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return evalLines(c, os.Stdin)
		}
		for _, arg := range args {
			r, err := c.Eval(arg)
			if err != nil {
				return err
			}
			fmt.Printf(verb+"\n", r)
		}
		return nil
	},
}

var lexCmd = &cobra.Command{
	Use:   "lex [expression ...]",
	Short: "Scan expressions into tokens",
	Long: `Lex scans each argument with the calculator grammar and prints one
token per line with its type and text, without evaluating anything.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCalculator()
		if err != nil {
			return err
		}
		for _, arg := range args {
			s := c.Lexer().Lex(arg)
			for {
				tok, err := s.Next()
				if err != nil {
					if errors.Is(err, io.EOF) {
						break
					}
					return err
				}
				fmt.Printf("%T\t%q\n", tok, tok.Text())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().UintVarP(&prec, "prec", "p", 64, "precision of calculations in bits")
	rootCmd.PersistentFlags().StringVar(&verb, "fmt", "%g", "result formatting verb")
	rootCmd.PersistentFlags().StringVar(&varsFile, "vars", "", "TOML file of variable definitions")
	rootCmd.PersistentFlags().StringArrayVar(&given, "given", nil, "name=value variable definition (any number of times)")
	rootCmd.AddCommand(evalCmd, lexCmd, replCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newCalculator builds a calculator from the persistent flags. Values in
// --given definitions are themselves expressions, evaluated with the
// variables defined so far.
func newCalculator() (*calc.Calculator, error) {
	opts := []calc.Option{calc.Prec(prec)}
	if varsFile != "" {
		vars, err := loadVars(varsFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, calc.SetVars(vars))
	}
	c := calc.New(opts...)
	for _, d := range given {
		name, val, ok := strings.Cut(d, "=")
		if !ok {
			return nil, fmt.Errorf(`variable definitions must be "name=value", not %q`, d)
		}
		name = strings.TrimSpace(name)
		r, err := c.Eval(val)
		if err != nil {
			return nil, fmt.Errorf("setting %s: %w", name, err)
		}
		c.Set(name, r)
	}
	return c, nil
}

// loadVars reads variable definitions from a TOML file. Integer and float
// values are used directly; string values are evaluated as expressions, for
// definitions that need full precision or refer to constants.
func loadVars(name string) (map[string]*big.Float, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(name, &raw); err != nil {
		return nil, err
	}
	c := calc.New(calc.Prec(prec))
	vars := make(map[string]*big.Float, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case int64:
			vars[k] = new(big.Float).SetPrec(prec).SetInt64(v)
		case float64:
			vars[k] = new(big.Float).SetPrec(prec).SetFloat64(v)
		case string:
			r, err := c.Eval(v)
			if err != nil {
				return nil, fmt.Errorf("%s: variable %s: %w", name, k, err)
			}
			vars[k] = r
		default:
			return nil, fmt.Errorf("%s: variable %s: cannot use %T as a number", name, k, v)
		}
	}
	return vars, nil
}

func evalLines(c *calc.Calculator, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := c.Eval(line)
		if err != nil {
			return err
		}
		fmt.Printf(verb+"\n", v)
	}
	return sc.Err()
}
