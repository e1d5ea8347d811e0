// Released under an MIT license. See LICENSE.

// Package boolean provides sublisp's true and false values.
package boolean

import (
	"github.com/michaelmacinnis/sublisp/internal/common"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/truth"
)

// T (boolean) wraps Go's bool type. There are only two values, False and
// True, so booleans can be compared by pointer.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	no  = boolean(false)
	yes = boolean(true)

	False = &no
	True  = &yes
)

// Bool returns True or False for b.
func Bool(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Parse returns the value spelled s, which must be "true" or "false".
func Parse(s string) (cell.I, bool) {
	switch s {
	case True.String():
		return True, true
	case False.String():
		return False, true
	}

	return nil, false
}

// Bool returns the Go value of b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is the same truth value as b.
func (b *boolean) Equal(c cell.I) bool {
	o, ok := c.(*boolean)

	return ok && *o == *b
}

// Literal returns "true" or "false".
func (b *boolean) Literal() string {
	return b.String()
}

// Name returns "boolean".
func (b *boolean) Name() string {
	return "boolean"
}

func (b *boolean) String() string {
	if *b {
		return "true"
	}

	return "false"
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
