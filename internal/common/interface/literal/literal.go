// Released under an MIT license. See LICENSE.

// Package literal defines the interface for sublisp types that can be expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/sublisp/internal/common"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
)

// I (literal) is any type that can be expressed as a literal.
type I interface {
	Literal() string
}

// String returns the literal string representation for a cell.
// Cells without a literal representation fall back to their text.
func String(c cell.I) string {
	l, ok := c.(I)
	if !ok {
		return common.String(c)
	}

	return l.Literal()
}
