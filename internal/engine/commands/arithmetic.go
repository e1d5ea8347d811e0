// Released under an MIT license. See LICENSE.

package commands

import (
	"fmt"
	"math"

	"github.com/michaelmacinnis/sublisp/internal/common/fault"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/sublisp/internal/common/type/num"
	"github.com/michaelmacinnis/sublisp/internal/common/validate"
)

type (
	integerOp func(a, b int64) (int64, error)
	realOp    func(a, b float64) (float64, error)
)

func add(e procedure.Evaluator, args []string) (cell.I, error) {
	return arithmetic(e, "+", args,
		func(a, b int64) (int64, error) {
			c := a + b
			if (c > a) != (b > 0) {
				return 0, overflow("+", a, b)
			}

			return c, nil
		},
		func(a, b float64) (float64, error) {
			return a + b, nil
		},
	)
}

// div always divides in the floating point domain. A single operand is
// returned as is.
func div(e procedure.Evaluator, args []string) (cell.I, error) {
	return arithmetic(e, "/", args, nil,
		func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, fmt.Errorf("%w: %v / %v", fault.ErrDivision, a, b)
			}

			return a / b, nil
		},
	)
}

func mul(e procedure.Evaluator, args []string) (cell.I, error) {
	return arithmetic(e, "*", args,
		func(a, b int64) (int64, error) {
			if a == 0 || b == 0 {
				return 0, nil
			}

			c := a * b
			if c/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
				return 0, overflow("*", a, b)
			}

			return c, nil
		},
		func(a, b float64) (float64, error) {
			return a * b, nil
		},
	)
}

func sub(e procedure.Evaluator, args []string) (cell.I, error) {
	return arithmetic(e, "-", args,
		func(a, b int64) (int64, error) {
			c := a - b
			if (c < a) != (b > 0) {
				return 0, overflow("-", a, b)
			}

			return c, nil
		},
		func(a, b float64) (float64, error) {
			return a - b, nil
		},
	)
}

// arithmetic evaluates every operand and then folds op over them from the
// left. If any operand is a floating point number all operands are
// promoted and the fold is done with r. Otherwise it is done with i. A nil
// i means the operation is only defined for floating point numbers.
func arithmetic(e procedure.Evaluator, name string, args []string, i integerOp, r realOp) (cell.I, error) {
	if err := validate.Variadic(name, args, 1); err != nil {
		return nil, err
	}

	vs, err := evaluate(e, args)
	if err != nil {
		return nil, err
	}

	ns := make([]num.I, 0, len(vs))
	float := i == nil && len(vs) > 1

	for _, v := range vs {
		n, ok := v.(num.I)
		if !ok {
			return nil, fmt.Errorf(
				"%w: %s expected a number, passed %s %s",
				fault.ErrType, name, v.Name(), literal.String(v),
			)
		}

		if num.IsFloat(n) {
			float = true
		}

		ns = append(ns, n)
	}

	if float {
		acc := ns[0].Float64()

		for _, n := range ns[1:] {
			acc, err = r(acc, n.Float64())
			if err != nil {
				return nil, err
			}
		}

		return num.Float(acc), nil
	}

	acc := integral(ns[0])

	for _, n := range ns[1:] {
		acc, err = i(acc, integral(n))
		if err != nil {
			return nil, err
		}
	}

	return num.Int(acc), nil
}

func integral(n num.I) int64 {
	if i, ok := n.(*num.Integer); ok {
		return i.Int64()
	}

	return int64(n.Float64())
}

func overflow(op string, a, b int64) error {
	return fmt.Errorf("%w: %d %s %d", fault.ErrRange, a, op, b)
}
