// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/truth"
	"github.com/michaelmacinnis/sublisp/internal/common/validate"
)

// conditional evaluates the predicate and then only the selected branch.
func conditional(e procedure.Evaluator, args []string) (cell.I, error) {
	if err := validate.Fixed("if", args, 3, 3); err != nil {
		return nil, err
	}

	p, err := e.Eval(args[0])
	if err != nil {
		return nil, err
	}

	if truth.Value(p) {
		return e.Eval(args[1])
	}

	return e.Eval(args[2])
}
