// Released under an MIT license. See LICENSE.

/*
Sublisp is a small evaluator for parenthesized expressions.

	> (define (square x) (* x x))
	(* x x)
	> (square 4)
	16
	> (if (> 3 2) 1 (undefined))
	1

Procedures have no environment. Calling one substitutes the text of each
operand for its parameter in the procedure's body and evaluates the result.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/michaelmacinnis/sublisp/internal/engine"
	"github.com/michaelmacinnis/sublisp/internal/system/options"
	"github.com/michaelmacinnis/sublisp/internal/ui"
)

func main() {
	if err := options.Parse(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	opts := []engine.Option{
		engine.MaxDepth(options.MaxDepth()),
		engine.MaxSize(options.MaxSize()),
	}
	if options.Debug() {
		opts = append(opts, engine.Trace(os.Stderr))
	}

	e := engine.New(opts...)

	if options.Interactive() {
		if err := ui.Run(e, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		return
	}

	text, err := input()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if !run(e, text, os.Stdout) {
		os.Exit(1)
	}
}

func input() (string, error) {
	if c := options.Command(); c != "" {
		return c, nil
	}

	r := io.Reader(os.Stdin)

	if path := options.Script(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()

		r = f
	}

	b, err := io.ReadAll(r)

	return string(b), err
}

func run(e ui.Evaluator, text string, w io.Writer) bool {
	return ui.Print(w, e.Evaluate(text))
}
