// Released under an MIT license. See LICENSE.

// Package substitute creates user-defined procedures.
//
// A procedure created here has no environment. Calling it rewrites its
// body, replacing each formal parameter with the text of the matching
// operand, and evaluates the result as a new expression. Names in the body
// that are not parameters are resolved when the rewritten body is
// evaluated, against whatever is defined at that time.
package substitute

import (
	"strings"

	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/sublisp/internal/common/struct/token"
	"github.com/michaelmacinnis/sublisp/internal/reader/lexer"
)

// New creates a procedure with the formal parameters formals and the body
// template body.
func New(formals []string, body string) procedure.T {
	formals = append([]string(nil), formals...)

	return func(e procedure.Evaluator, actuals []string) (cell.I, error) {
		return e.Eval(Rewrite(body, Bind(formals, actuals)))
	}
}

// Bind pairs each formal parameter with the actual operand in the same
// position. Formals without an operand, and operands without a formal, are
// left out. If a name is repeated, its first position wins.
func Bind(formals, actuals []string) map[string]string {
	n := len(formals)
	if len(actuals) < n {
		n = len(actuals)
	}

	bindings := make(map[string]string, n)

	for i := 0; i < n; i++ {
		if _, ok := bindings[formals[i]]; !ok {
			bindings[formals[i]] = actuals[i]
		}
	}

	return bindings
}

// Rewrite replaces every whole name in body that has a binding with the
// bound text. All bindings are applied in one pass so text that has been
// substituted in is never rewritten again. Names inside longer names and
// inside string literals are left alone.
func Rewrite(body string, bindings map[string]string) string {
	if len(bindings) == 0 {
		return body
	}

	var b strings.Builder

	b.Grow(len(body))

	l := lexer.New("body", body)
	for t := l.Token(); t != nil; t = l.Token() {
		v := t.Value()

		if t.Is(token.Atom, token.Float, token.Integer) {
			if s, ok := bindings[v]; ok {
				v = s
			}
		}

		b.WriteString(v)
	}

	return b.String()
}
