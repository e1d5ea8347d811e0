// Released under an MIT license. See LICENSE.

// Package options parses sublisp's command-line arguments.
package options

import (
	"fmt"
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/michaelmacinnis/sublisp/internal/engine"
)

// Version is reported by -v.
const Version = "sublisp 0.1.0"

//nolint:gochecknoglobals
var (
	command     string
	debug       bool
	interactive bool
	maxDepth    int
	maxSize     int
	script      string
	usage       = `sublisp

Usage:
  sublisp [-d] [--max-depth=N] [--max-size=BYTES] SCRIPT
  sublisp [-d] [--max-depth=N] [--max-size=BYTES] -c EXPRESSION
  sublisp [-d] [--max-depth=N] [--max-size=BYTES] [-i]
  sublisp -h
  sublisp -v

Arguments:
  SCRIPT  Path to a file of sublisp expressions.

Options:
  -c, --command=EXPRESSION  Evaluate EXPRESSION.
  -d, --debug               Trace each evaluation on stderr.
  -i, --interactive         Invert interactive mode.
  --max-depth=N             Limit on nested evaluations [default: 1000].
  --max-size=BYTES          Limit on the text of one expression [default: 1048576].
  -h, --help                Display this help.
  -v, --version             Print sublisp version.

If sublisp's stdin is a TTY, and sublisp was invoked without SCRIPT or
EXPRESSION, it prompts for expressions one line at a time. Otherwise it
reads all of its input and evaluates every expression in it.
`
)

// Command returns the expression passed with -c, if any.
func Command() string {
	return command
}

// Debug returns true if evaluation should be traced.
func Debug() bool {
	return debug
}

// Interactive returns true if sublisp should prompt for input.
func Interactive() bool {
	return interactive
}

// MaxDepth returns the limit on nested evaluations.
func MaxDepth() int {
	return maxDepth
}

// MaxSize returns the limit on the text of a single expression.
func MaxSize() int {
	return maxSize
}

// Parse parses os.Args. It exits after printing help or version text.
func Parse() error {
	return parse(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
}

// Script returns the path of the script to evaluate, if any.
func Script() string {
	return script
}

func parse(argv []string, terminal bool) error {
	opts, err := docopt.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	script, _ = opts.String("SCRIPT")

	maxDepth, err = opts.Int("--max-depth")
	if err != nil || maxDepth < 1 || maxDepth > engine.MaxDepthLimit {
		return fmt.Errorf(
			"--max-depth must be an integer from 1 to %d: %v",
			engine.MaxDepthLimit, opts["--max-depth"],
		)
	}

	maxSize, err = opts.Int("--max-size")
	if err != nil || maxSize < 1 {
		return fmt.Errorf("--max-size must be a positive integer: %v", opts["--max-size"])
	}

	interactive = script == "" && command == "" && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}
