// Released under an MIT license. See LICENSE.

// Package procedure defines the calling convention shared by built-in
// and user-defined procedures.
package procedure

import (
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
)

// Evaluator evaluates a single expression.
type Evaluator interface {
	Eval(expr string) (cell.I, error)
}

// T (procedure) is called with its operands unevaluated. It is up to
// each procedure to decide which operands to evaluate and in what order.
type T func(e Evaluator, args []string) (cell.I, error)
