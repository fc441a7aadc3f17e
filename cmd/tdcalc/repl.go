package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/tdop/calc"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Evaluate expressions interactively",
	Long: `Repl reads expressions interactively and prints their values.

An input like "name = expression" defines a variable instead of printing.
History persists in ~/.tdcalc_history. Exit with ctrl-D.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newCalculator()
		if err != nil {
			return err
		}
		return repl(c)
	},
}

func repl(c *calc.Calculator) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyFile()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				_, _ = ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt("> ")
		switch err {
		case nil:
			// continue below
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Println()
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if name, val, ok := splitAssign(line); ok {
			r, err := c.Eval(val)
			if err != nil {
				fmt.Println(err)
				continue
			}
			c.Set(name, r)
			continue
		}
		r, err := c.Eval(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb+"\n", r)
	}
}

// splitAssign splits an input like "name = expression". The left side of the
// first = must be a plain identifier, otherwise the whole input is treated
// as an expression.
func splitAssign(line string) (name, val string, ok bool) {
	name, val, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	name = strings.TrimSpace(name)
	if !isIdent(name) {
		return "", "", false
	}
	return name, strings.TrimSpace(val), true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}

// historyFile returns the path for persistent REPL history, or the empty
// string when no home directory is available.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tdcalc_history")
}
