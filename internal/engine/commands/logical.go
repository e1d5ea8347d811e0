// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/truth"
	"github.com/michaelmacinnis/sublisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/sublisp/internal/common/validate"
)

// and evaluates both operands, even when the first is false.
func and(e procedure.Evaluator, args []string) (cell.I, error) {
	return comparison(e, "and", args, func(a, b cell.I) (bool, error) {
		return truth.Value(a) && truth.Value(b), nil
	})
}

// not evaluates its only operand and negates its truth value.
func not(e procedure.Evaluator, args []string) (cell.I, error) {
	if err := validate.Fixed("not", args, 1, 1); err != nil {
		return nil, err
	}

	v, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}

	return boolean.Bool(!truth.Value(v)), nil
}

// or evaluates both operands, even when the first is true.
func or(e procedure.Evaluator, args []string) (cell.I, error) {
	return comparison(e, "or", args, func(a, b cell.I) (bool, error) {
		return truth.Value(a) || truth.Value(b), nil
	})
}
