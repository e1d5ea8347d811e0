// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// String returns the string value for a cell.
func String(c cell.I) string {
	s, ok := c.(Stringer)
	if !ok {
		return "<" + c.Name() + ">"
	}

	return s.String()
}
