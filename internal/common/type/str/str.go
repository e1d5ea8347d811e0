// Released under an MIT license. See LICENSE.

// Package str provides sublisp's string type.
package str

import (
	"strconv"

	"github.com/michaelmacinnis/sublisp/internal/common"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/truth"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Is returns true if c is a *T.
func Is(c cell.I) bool {
	_, ok := c.(*T)

	return ok
}

// Bool returns the boolean value of the str s. Only the empty string is false.
func (s *str) Bool() bool {
	return s.String() != ""
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	o, ok := c.(*str)

	return ok && s.String() == o.String()
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return strconv.Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)

	// The str type has a truth value.
	_ = truth.I(&t)
}
