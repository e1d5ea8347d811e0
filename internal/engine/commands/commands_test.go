package commands_test

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/sublisp/internal/common/fault"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/sublisp/internal/engine"
	"github.com/michaelmacinnis/sublisp/internal/engine/commands"
)

func TestFunctions(t *testing.T) {
	want := []string{
		"*", "+", "-", "/", "<", "<=", "=", ">", ">=", "and", "if", "not", "or",
	}

	fs := commands.Functions()
	if len(fs) != len(want) {
		t.Fatalf("expected %d built-ins, got %d", len(want), len(fs))
	}

	for _, name := range want {
		if fs[name] == nil {
			t.Fatalf("missing built-in %s", name)
		}
	}
}

func TestResults(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want string
	}{
		{"add", "(+ 1 2 3)", "6"},
		{"add float", "(+ 1 0.5)", "1.5"},
		{"add float whole", "(+ 1.5 1.5)", "3.0"},
		{"add single", "(+ 7)", "7"},
		{"sub", "(- 10 4 3)", "3"},
		{"sub negative", "(- 1 2.5)", "-1.5"},
		{"mul", "(* -2 3)", "-6"},
		{"mul zero", "(* 0 9223372036854775807 2)", "0"},
		{"div", "(/ 9 3)", "3.0"},
		{"div fraction", "(/ 1 4)", "0.25"},
		{"div fold", "(/ 100 5 2)", "10.0"},
		{"div single", "(/ 5)", "5"},
		{"exponent", "(* 1e3 2)", "2000.0"},
		{"nested", "(- (* 2 (+ 1 2)) (/ 8 4))", "4.0"},

		{"lt", "(< 1 2)", "true"},
		{"lt equal", "(< 2 2)", "false"},
		{"le", "(<= 2 2)", "true"},
		{"gt mixed", "(> 2.5 2)", "true"},
		{"ge", "(>= 1 2)", "false"},
		{"eq", "(= 3 3)", "true"},
		{"eq mixed", "(= 1 1.0)", "true"},
		{"eq strings", `(= "a" "b")`, "false"},
		{"eq booleans", "(= false (< 2 1))", "true"},
		{"eq types", "(= true 1)", "false"},
		{"string order", `(< "abc" "abd")`, "true"},
		{"large integers", "(< 9007199254740992 9007199254740993)", "true"},

		{"and", "(and true true)", "true"},
		{"and false", "(and true false)", "false"},
		{"and numbers", "(and 1 0)", "false"},
		{"or", "(or false true)", "true"},
		{"or false", "(or false false)", "false"},
		{"or strings", `(or "" "x")`, "true"},
		{"not", "(not false)", "true"},
		{"not string", `(not "")`, "true"},

		{"if", "(if true 1 2)", "1"},
		{"if false", "(if false 1 2)", "2"},
		{"if string", `(if "" "yes" "no")`, `"no"`},
		{"if nested", "(if (= 1 1) (if false 1 2) 3)", "2"},
	}

	e := engine.New(engine.NoBoot())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := e.Eval(tt.expr)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", tt.expr, err)
			}

			if got := literal.String(c); got != tt.want {
				t.Fatalf("%s: expected %s, got %s", tt.expr, tt.want, got)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want error
	}{
		{"add none", "(+)", fault.ErrArity},
		{"add string", `(+ 1 "2")`, fault.ErrType},
		{"add boolean", "(+ true 1)", fault.ErrType},
		{"add overflow", "(+ 9223372036854775807 1)", fault.ErrRange},
		{"sub overflow", "(- -9223372036854775807 2)", fault.ErrRange},
		{"mul overflow", "(* -1 -9223372036854775808)", fault.ErrRange},
		{"div zero", "(/ 1 0)", fault.ErrDivision},
		{"div zero float", "(/ 1.5 0.0)", fault.ErrDivision},
		{"div none", "(/)", fault.ErrArity},
		{"operand", "(+ 1 (BOOM 2))", fault.ErrNotEvaluable},

		{"lt one", "(< 1)", fault.ErrArity},
		{"lt types", `(< 1 "1")`, fault.ErrType},
		{"gt booleans", "(> true false)", fault.ErrType},
		{"eq operand", "(= 1 (BOOM 2))", fault.ErrNotEvaluable},

		{"and one", "(and true)", fault.ErrArity},
		{"and eager", "(and false (BOOM 2))", fault.ErrNotEvaluable},
		{"or eager", "(or true (BOOM 2))", fault.ErrNotEvaluable},
		{"not none", "(not)", fault.ErrArity},
		{"not two", "(not true false)", fault.ErrArity},

		{"if two", "(if true 1)", fault.ErrArity},
		{"if four", "(if true 1 2 3)", fault.ErrArity},
		{"if predicate", "(if (BOOM 2) 1 2)", fault.ErrNotEvaluable},
	}

	e := engine.New(engine.NoBoot())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := e.Eval(tt.expr)
			if !errors.Is(err, tt.want) {
				t.Fatalf("%s: expected %v, got %v (%v)", tt.expr, tt.want, err, c)
			}
		})
	}
}
