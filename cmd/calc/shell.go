package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/zephyrtronium/calc"
)

const banner = `Calculator - type 'help' for usage information
Type an expression to calculate or 'exit' to quit.

`

const helpText = `Calculator Help
===============
Enter a mathematical expression to calculate the result.

Supported operations:
  +    Addition
  -    Subtraction and negation
  *    Multiplication
  /    Division
  ^    Exponentiation (power)
  ()   Parentheses for grouping

Examples:
  2 + 3 * 4       = 14
  (2 + 3) * 4     = 20
  2^3 + 10        = 18
  5 / 2           = 2.5
  -5 + 3          = -2
  3.14 * 2        = 6.28

Commands:
  help        Display this help message
  exit/quit   Exit the calculator
`

// shell reads expressions line by line and prints their values.
type shell struct {
	calc *calc.Calculator
	out  io.Writer
	errc *color.Color
	log  *slog.Logger
	// prompt is printed before each line when interactive is set.
	prompt      string
	interactive bool
	// postfix prints the postfix form of each expression before its value.
	postfix bool
}

func newShell(s settings, out io.Writer, logger *slog.Logger, interactive bool) *shell {
	errc := color.New(color.FgRed)
	if s.Color {
		errc.EnableColor()
	} else {
		errc.DisableColor()
	}
	return &shell{
		calc:        calc.New(s.options()...),
		out:         out,
		errc:        errc,
		log:         logger,
		prompt:      s.Prompt,
		interactive: interactive,
		postfix:     s.Postfix,
	}
}

// run reads lines from in until EOF or an exit command.
func (sh *shell) run(in io.Reader) error {
	if sh.interactive {
		fmt.Fprint(sh.out, banner)
	}
	rd := bufio.NewReader(in)
	for {
		if sh.interactive {
			fmt.Fprint(sh.out, sh.prompt)
		}
		line, err := rd.ReadString('\n')
		if line != "" && !sh.line(strings.TrimRight(line, "\r\n")) {
			return nil
		}
		if err != nil {
			if sh.interactive {
				fmt.Fprintln(sh.out)
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// line handles one line of input. It returns false if the line is an exit
// command.
func (sh *shell) line(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		return true
	case "exit", "quit":
		return false
	case "help":
		fmt.Fprint(sh.out, helpText)
		return true
	}
	if err := sh.eval(line); err != nil {
		sh.errc.Fprintln(sh.out, "Error: "+err.Error())
	}
	return true
}

// eval calculates one expression and prints its value.
func (sh *shell) eval(expr string) error {
	r, err := sh.calc.Calculate(expr)
	if sh.postfix || sh.log.Enabled(context.Background(), slog.LevelDebug) {
		if p, perr := calc.ToPostfix(expr); perr == nil {
			sh.log.Debug("converted", "expr", expr, "postfix", p.String())
			if sh.postfix {
				fmt.Fprintf(sh.out, "postfix: %v\n", p)
			}
		}
	}
	if err != nil {
		sh.log.Debug("calculation failed", "expr", expr, "err", err)
		return err
	}
	sh.log.Debug("calculated", "expr", expr, "result", r.String())
	// String trims trailing zeros, so integral values print without a point.
	fmt.Fprintln(sh.out, r.String())
	return nil
}
