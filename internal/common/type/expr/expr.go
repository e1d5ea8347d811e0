// Released under an MIT license. See LICENSE.

// Package expr provides a cell holding unevaluated sublisp source text.
package expr

import (
	"github.com/michaelmacinnis/sublisp/internal/common"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/truth"
)

const name = "expression"

// T (expr) wraps the text of an expression that has not been evaluated.
type T string

type expr = T

// New creates a new expr cell.
func New(text string) cell.I {
	e := expr(text)

	return &e
}

// Bool returns the boolean value of the expr e.
func (e *expr) Bool() bool {
	return *e != ""
}

// Equal returns true if c is an expr with identical text.
func (e *expr) Equal(c cell.I) bool {
	o, ok := c.(*expr)

	return ok && *e == *o
}

// Literal returns the literal representation of the expr e. This is its text.
func (e *expr) Literal() string {
	return string(*e)
}

// Name returns the name of the expr type.
func (e *expr) Name() string {
	return name
}

// String returns the text of the expr e.
func (e *expr) String() string {
	return string(*e)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t expr

	// The expr type is a cell.
	_ = cell.I(&t)

	// The expr type has a literal representation.
	_ = literal.I(&t)

	// The expr type is a stringer.
	_ = common.Stringer(&t)

	// The expr type has a truth value.
	_ = truth.I(&t)
}
