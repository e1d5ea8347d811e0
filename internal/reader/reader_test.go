package reader

import (
	"errors"
	"reflect"
	"testing"

	"github.com/michaelmacinnis/sublisp/internal/common"
	"github.com/michaelmacinnis/sublisp/internal/common/fault"
	"github.com/michaelmacinnis/sublisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/sublisp/internal/common/type/num"
	"github.com/michaelmacinnis/sublisp/internal/common/type/str"
)

func TestCompound(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"(+ 1 2)", true},
		{"((+ 1 2))", true},
		{"()", true},
		{"(a) (b)", false},
		{"(a", false},
		{"a", false},
		{"", false},
		{`(")")`, true},
	}

	for _, tt := range tests {
		if got := Compound(tt.text); got != tt.want {
			t.Errorf("Compound(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestDescend(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"(+ 1 2)", "+ 1 2"},
		{"((x))", "(x)"},
		{"(a) (b)", "(a) (b)"},
		{"x", "x"},
		{"(x", "(x"},
	}

	for _, tt := range tests {
		if got := Descend(tt.text); got != tt.want {
			t.Errorf("Descend(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantOk  bool
		wantErr error
	}{
		{name: "integer", text: "42", want: "42", wantOk: true},
		{name: "negative", text: "-3", want: "-3", wantOk: true},
		{name: "float", text: "1.5", want: "1.5", wantOk: true},
		{name: "whole float", text: "2.", want: "2.0", wantOk: true},
		{name: "exponent", text: "1e3", want: "1000.0", wantOk: true},
		{name: "string", text: `"a\tb"`, want: "a\tb", wantOk: true},
		{name: "true", text: "true", want: "true", wantOk: true},
		{name: "false", text: "false", want: "false", wantOk: true},
		{name: "symbol", text: "x", wantOk: false},
		{name: "compound", text: "(+ 1 2)", wantOk: false},
		{name: "two atoms", text: "1 2", wantOk: false},
		{name: "overflow", text: "99999999999999999999", wantErr: fault.ErrRange},
		{name: "bad escape", text: `"\q"`, wantErr: fault.ErrEscape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok, err := Literal(tt.text)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Literal(%q) error = %v, want %v", tt.text, err, tt.wantErr)
				}

				return
			}

			if err != nil {
				t.Fatalf("Literal(%q) unexpected error %v", tt.text, err)
			}

			if ok != tt.wantOk {
				t.Fatalf("Literal(%q) ok = %v, want %v", tt.text, ok, tt.wantOk)
			}

			if ok && common.String(c) != tt.want {
				t.Fatalf("Literal(%q) = %q, want %q", tt.text, common.String(c), tt.want)
			}
		})
	}
}

func TestLiteralTypes(t *testing.T) {
	c, _, _ := Literal("7")
	if _, ok := c.(*num.Integer); !ok {
		t.Fatalf("7 is a %s, want integer", c.Name())
	}

	c, _, _ = Literal("7.0")
	if !num.IsFloat(c) {
		t.Fatalf("7.0 is a %s, want float", c.Name())
	}

	c, _, _ = Literal(`"7"`)
	if !str.Is(c) {
		t.Fatalf(`"7" is a %s, want string`, c.Name())
	}

	c, _, _ = Literal("true")
	if c != boolean.True {
		t.Fatalf("true is %v, want boolean.True", c)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr error
	}{
		{name: "simple", text: "(+ 1 2)", want: "(+ 1 2)"},
		{name: "nested", text: "(a (b c) d) e", want: "(a (b c) d)"},
		{name: "leading text", text: "x (y) z", want: "(y)"},
		{name: "string", text: `(a ")" b)`, want: `(a ")" b)`},
		{name: "unclosed", text: "(+ 1 2", wantErr: fault.ErrBracket},
		{name: "unclosed nested", text: "(a (b)", wantErr: fault.ErrBracket},
		{name: "no bracket", text: "abc", wantErr: fault.ErrBracket},
		{name: "unclosed string", text: `(a "b)`, wantErr: fault.ErrQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Match(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}

			if got != tt.want {
				t.Fatalf("Match(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    []string
		wantErr error
	}{
		{name: "empty", text: "  ", want: nil},
		{name: "flat", text: "+ 1 2", want: []string{"+", "1", "2"}},
		{
			name: "nested",
			text: "define (f x)\n  (+ x   xx)",
			want: []string{"define", "(f x)", "(+ x   xx)"},
		},
		{
			name: "repeated text",
			text: "(+ 1 1) 1 (+ 1 1)",
			want: []string{"(+ 1 1)", "1", "(+ 1 1)"},
		},
		{name: "adjacent", text: "a(b)c", want: []string{"a", "(b)", "c"}},
		{name: "strings", text: `"a b" c`, want: []string{`"a b"`, "c"}},
		{name: "comment", text: "a ; b c\nd", want: []string{"a", "d"}},
		{name: "unclosed", text: "(+ 1 2", wantErr: fault.ErrBracket},
		{name: "stray close", text: "1 2)", wantErr: fault.ErrBracket},
		{name: "unclosed string", text: `a "b`, wantErr: fault.ErrQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.text)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Split(%q) error = %v, want %v", tt.text, err, tt.wantErr)
			}

			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Split(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
