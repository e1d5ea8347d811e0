// Released under an MIT license. See LICENSE.

// Package commands provides sublisp's built-in procedures.
//
// Every built-in receives its operands unevaluated and decides for itself
// which of them to evaluate.
package commands

import (
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/procedure"
)

// Functions returns the built-in procedures keyed by operator name.
func Functions() map[string]procedure.T {
	return map[string]procedure.T{
		"*":   mul,
		"+":   add,
		"-":   sub,
		"/":   div,
		"<":   lt,
		"<=":  le,
		"=":   eq,
		">":   gt,
		">=":  ge,
		"and": and,
		"if":  conditional,
		"not": not,
		"or":  or,
	}
}

func evaluate(e procedure.Evaluator, args []string) ([]cell.I, error) {
	vs := make([]cell.I, 0, len(args))

	for _, arg := range args {
		v, err := e.Eval(arg)
		if err != nil {
			return nil, err
		}

		vs = append(vs, v)
	}

	return vs, nil
}
