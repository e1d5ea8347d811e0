// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for sublisp.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/michaelmacinnis/sublisp/internal/common"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/sublisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/sublisp/internal/system/history"
	"github.com/michaelmacinnis/sublisp/internal/system/process"
)

// Quit ends an interactive session.
const Quit = "quit"

// Evaluator is the interface for things that want to process input.
type Evaluator interface {
	Evaluate(text string) []cell.I
	Names() []string
}

// Print writes one line for each result to w. It returns false if any
// of the results is an error.
func Print(w io.Writer, results []cell.I) bool {
	ok := true

	for _, c := range results {
		if errsys.Is(c) {
			ok = false

			fmt.Fprintln(w, "error:", common.String(c))

			continue
		}

		fmt.Fprintln(w, literal.String(c))
	}

	return ok
}

// Run prompts for input one line at a time, sends it to the Evaluator,
// and prints the results to w. It returns when the user enters Quit or
// closes the input.
func Run(e Evaluator, w io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	if err := history.Load(cli.ReadHistory); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "error reading history:", err)
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(e))

	for {
		if err := process.AwaitForeground(); err != nil {
			return err
		}

		line, err := cli.Prompt("> ")

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)

			return save(cli)
		default:
			return err
		}

		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}

		cli.AppendHistory(line)

		if command == Quit {
			return save(cli)
		}

		Print(w, e.Evaluate(line))
	}
}

// Completer returns a liner.WordCompleter that completes the name being
// typed with the names known to e.
func Completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (head string, cs []string, tail string) {
		head = line[:pos]
		tail = line[pos:]

		start := strings.LastIndexAny(head, " \t\n()") + 1
		word := head[start:]
		head = head[:start]

		for _, name := range e.Names() {
			if strings.HasPrefix(name, word) {
				cs = append(cs, name)
			}
		}

		return head, cs, tail
	}
}

func save(cli *liner.State) error {
	if err := history.Save(cli.WriteHistory); err != nil {
		fmt.Fprintln(os.Stderr, "error writing history:", err)
	}

	return nil
}
