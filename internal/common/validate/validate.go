// Released under an MIT license. See LICENSE.

// Package validate checks the number of operands passed to a procedure.
package validate

import (
	"fmt"

	"github.com/michaelmacinnis/sublisp/internal/common/fault"
)

// Count returns n followed by label, pluralized with p if n is not 1.
func Count(n int, label string, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

// Fixed returns an error unless between min and max operands were passed.
func Fixed(name string, actual []string, min, max int) error {
	n := len(actual)
	if n >= min && n <= max {
		return nil
	}

	var s string

	switch {
	case min == max:
		s = Count(min, "argument", "s")
	case n < min:
		s = "at least " + Count(min, "argument", "s")
	default:
		s = "at most " + Count(max, "argument", "s")
	}

	return fmt.Errorf("%w: %s expected %s, passed %d", fault.ErrArity, name, s, n)
}

// Variadic returns an error unless at least min operands were passed.
func Variadic(name string, actual []string, min int) error {
	if len(actual) < min {
		s := Count(min, "argument", "s")

		return fmt.Errorf("%w: %s expected at least %s, passed %d", fault.ErrArity, name, s, len(actual))
	}

	return nil
}
