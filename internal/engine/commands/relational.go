// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"strings"

	"github.com/michaelmacinnis/sublisp/internal/common/fault"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/sublisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/sublisp/internal/common/type/num"
	"github.com/michaelmacinnis/sublisp/internal/common/type/str"
	"github.com/michaelmacinnis/sublisp/internal/common/validate"
)

func eq(e procedure.Evaluator, args []string) (cell.I, error) {
	return comparison(e, "=", args, func(a, b cell.I) (bool, error) {
		if c, ok := compare(a, b); ok {
			return c == 0, nil
		}

		return a.Equal(b), nil
	})
}

func ge(e procedure.Evaluator, args []string) (cell.I, error) {
	return ordering(e, ">=", args, func(c int) bool { return c >= 0 })
}

func gt(e procedure.Evaluator, args []string) (cell.I, error) {
	return ordering(e, ">", args, func(c int) bool { return c > 0 })
}

func le(e procedure.Evaluator, args []string) (cell.I, error) {
	return ordering(e, "<=", args, func(c int) bool { return c <= 0 })
}

func lt(e procedure.Evaluator, args []string) (cell.I, error) {
	return ordering(e, "<", args, func(c int) bool { return c < 0 })
}

// comparison evaluates the first two operands and applies the predicate p.
// Any further operands are neither evaluated nor checked.
func comparison(
	e procedure.Evaluator, name string, args []string,
	p func(a, b cell.I) (bool, error),
) (cell.I, error) {
	if err := validate.Variadic(name, args, 2); err != nil {
		return nil, err
	}

	vs, err := evaluate(e, args[:2])
	if err != nil {
		return nil, err
	}

	ok, err := p(vs[0], vs[1])
	if err != nil {
		return nil, err
	}

	return boolean.Bool(ok), nil
}

// compare orders two numbers or two strings. Integers are compared
// exactly. Mixed integers and floats are compared as floats. It returns
// false if a and b are unordered.
func compare(a, b cell.I) (int, bool) {
	if x, ok := a.(*num.Integer); ok {
		if y, ok := b.(*num.Integer); ok {
			switch {
			case *x < *y:
				return -1, true
			case *x > *y:
				return 1, true
			}

			return 0, true
		}
	}

	x, xok := a.(num.I)
	y, yok := b.(num.I)

	if xok && yok {
		switch f, g := x.Float64(), y.Float64(); {
		case f < g:
			return -1, true
		case f > g:
			return 1, true
		case f == g:
			return 0, true
		}

		// NaN is unordered.
		return 0, false
	}

	if str.Is(a) && str.Is(b) {
		return strings.Compare(a.(*str.T).String(), b.(*str.T).String()), true
	}

	return 0, false
}

func ordering(e procedure.Evaluator, name string, args []string, p func(int) bool) (cell.I, error) {
	return comparison(e, name, args, func(a, b cell.I) (bool, error) {
		c, ok := compare(a, b)
		if !ok {
			return false, fmt.Errorf(
				"%w: %s cannot order %s %s and %s %s", fault.ErrType, name,
				a.Name(), literal.String(a), b.Name(), literal.String(b),
			)
		}

		return p(c), nil
	})
}
