// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for sublisp expressions.
//
// The evaluator works directly on text. Each expression is classified and
// then dispatched. Compound forms are applied by looking up their operator
// and passing the procedure its operands unevaluated.
package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/michaelmacinnis/sublisp/internal/common"
	"github.com/michaelmacinnis/sublisp/internal/common/fault"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/sublisp/internal/common/type/errsys"
	"github.com/michaelmacinnis/sublisp/internal/common/type/expr"
	"github.com/michaelmacinnis/sublisp/internal/engine/boot"
	"github.com/michaelmacinnis/sublisp/internal/engine/commands"
	"github.com/michaelmacinnis/sublisp/internal/engine/scope"
	"github.com/michaelmacinnis/sublisp/internal/engine/substitute"
	"github.com/michaelmacinnis/sublisp/internal/reader"
)

// Limits on evaluation. MaxDepthLimit keeps the deepest permitted
// evaluation well inside Go's maximum stack size.
const (
	DefaultMaxDepth = 1000
	DefaultMaxSize  = 1 << 20
	MaxDepthLimit   = 100000
)

// T (engine) evaluates expressions against its own symbol and procedure
// tables. A T is not safe for concurrent use.
type T struct {
	boot  bool
	depth int
	limit int
	scope *scope.T
	size  int
	trace *log.Logger
}

type engine = T

// Option configures a new engine.
type Option func(*T)

// MaxDepth limits nested evaluations to n, which is capped at
// MaxDepthLimit. Going deeper is reported as fault.ErrRecursion instead of
// exhausting the stack.
func MaxDepth(n int) Option {
	return func(e *T) {
		if n > 0 {
			e.limit = min(n, MaxDepthLimit)
		}
	}
}

// MaxSize limits the text of any single expression to n bytes. Substituting
// operands into a body can grow the text on every call, and a larger
// expression is reported as fault.ErrExhausted.
func MaxSize(n int) Option {
	return func(e *T) {
		if n > 0 {
			e.size = n
		}
	}
}

// NoBoot skips evaluating the boot script.
func NoBoot() Option {
	return func(e *T) {
		e.boot = false
	}
}

// Trace logs every expression evaluated to w.
func Trace(w io.Writer) Option {
	return func(e *T) {
		e.trace = log.New(w, "eval: ", 0)
	}
}

// New creates a new engine with the built-in procedures registered.
func New(opts ...Option) *T {
	e := &engine{
		boot:  true,
		limit: DefaultMaxDepth,
		scope: scope.New(),
		size:  DefaultMaxSize,
	}

	for _, opt := range opts {
		opt(e)
	}

	for k, p := range commands.Functions() {
		e.scope.Register(k, p)
	}

	if e.boot {
		// The boot script is always evaluated with the default limits.
		limit, size := e.limit, e.size
		e.limit, e.size = DefaultMaxDepth, DefaultMaxSize

		for _, c := range e.Evaluate(boot.Script()) {
			if errsys.Is(c) {
				panic("boot: " + common.String(c))
			}
		}

		e.limit, e.size = limit, size
	}

	return e
}

// Apply applies a compound form. Its operands are passed to the procedure
// named by its operator unevaluated.
func (e *engine) Apply(text string) (cell.I, error) {
	tokens, err := reader.Split(reader.Descend(text))
	if err != nil {
		return nil, err
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: %s", fault.ErrNotEvaluable, text)
	}

	if p, ok := e.scope.Procedure(tokens[0]); ok {
		return p(e, tokens[1:])
	}

	if len(tokens) == 1 {
		return e.Eval(tokens[0])
	}

	return nil, fmt.Errorf(
		"%w: %s (no procedure named %s)", fault.ErrNotEvaluable, text, tokens[0],
	)
}

// Eval evaluates a single expression.
func (e *engine) Eval(text string) (cell.I, error) {
	text = strings.TrimSpace(text)

	if e.depth >= e.limit {
		return nil, fmt.Errorf("%w (%d)", fault.ErrRecursion, e.limit)
	}

	if len(text) > e.size {
		return nil, fmt.Errorf(
			"%w: expression of %d bytes exceeds %d", fault.ErrExhausted, len(text), e.size,
		)
	}

	e.depth++
	defer func() { e.depth-- }()

	if e.trace != nil {
		e.trace.Printf("%*s%s", e.depth-1, "", text)
	}

	k, err := e.Classify(text)
	if err != nil {
		return nil, err
	}

	switch k {
	case Definition:
		return e.define(text)

	case Variable:
		v, _ := e.scope.Lookup(text)
		return v, nil

	case Compound:
		return e.Apply(text)

	case Literal:
		v, _, err := reader.Literal(text)
		return v, err

	case Unknown:
	}

	return nil, fmt.Errorf("%w: %s", fault.ErrNotEvaluable, text)
}

// Evaluate evaluates each top-level expression in text from left to right.
// There is one result per expression. Errors are returned as errsys cells.
// If text cannot be split into expressions, nothing is evaluated and the
// only result is the error.
func (e *engine) Evaluate(text string) []cell.I {
	exprs, err := reader.Split(text)
	if err != nil {
		return []cell.I{errsys.New(err)}
	}

	results := make([]cell.I, 0, len(exprs))
	for _, x := range exprs {
		results = append(results, e.evaluate(x))
	}

	return results
}

// Names returns the names of every variable and procedure.
func (e *engine) Names() []string {
	return e.scope.Names()
}

// Register makes the procedure p available as the operator name.
func (e *engine) Register(name string, p procedure.T) {
	e.scope.Register(name, p)
}

// define handles (define name value) and (define (name params...) body).
// The result is the body, unevaluated.
func (e *engine) define(text string) (cell.I, error) {
	tokens, err := reader.Split(reader.Descend(text))
	if err != nil {
		return nil, err
	}

	if len(tokens) != 3 {
		return nil, fmt.Errorf(
			"%w: %s (expected (define name value) or (define (name params...) body))",
			fault.ErrMalformedDefine, text,
		)
	}

	target, body := tokens[1], tokens[2]

	if reader.Compound(target) {
		signature, err := reader.Split(reader.Descend(target))
		if err != nil {
			return nil, err
		}

		if len(signature) == 0 || reader.Compound(signature[0]) {
			return nil, fmt.Errorf(
				"%w: %s (procedure name must be a name)",
				fault.ErrMalformedDefine, text,
			)
		}

		e.scope.Register(signature[0], substitute.New(signature[1:], body))

		return expr.New(body), nil
	}

	v, err := e.Eval(body)
	if err != nil {
		return nil, err
	}

	e.scope.Define(target, v)

	return expr.New(body), nil
}

func (e *engine) evaluate(x string) (c cell.I) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			c = errsys.New(r)
		case string:
			c = errsys.New(errors.New(r))
		case common.Stringer:
			c = errsys.New(errors.New(r.String()))
		default:
			c = errsys.New(errors.New("unexpected error"))
		}
	}()

	v, err := e.Eval(x)
	if err != nil {
		return errsys.New(err)
	}

	return v
}
