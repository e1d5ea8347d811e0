package lexer

import (
	"strings"
	"testing"

	"github.com/michaelmacinnis/sublisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/sublisp/internal/common/struct/token"
)

func TestAtoms(t *testing.T) {
	h := setup(t, "Atoms")

	h.scan("define x-1 >= 1+ . - +",
		h.atom("define"),
		h.space(" "),
		h.atom("x-1"),
		h.space(" "),
		h.atom(">="),
		h.space(" "),
		h.atom("1+"),
		h.space(" "),
		h.atom("."),
		h.space(" "),
		h.atom("-"),
		h.space(" "),
		h.atom("+"),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("1 ; one (\n2",
		h.other(token.Integer, "1"),
		h.space(" ; one (\n"),
		h.other(token.Integer, "2"),
		nil,
	)
}

func TestCompound(t *testing.T) {
	h := setup(t, "Compound")

	h.scan("(+ 1\n  (f x))",
		h.delimiter("("),
		h.atom("+"),
		h.space(" "),
		h.other(token.Integer, "1"),
		h.space("\n  "),
		h.delimiter("("),
		h.atom("f"),
		h.space(" "),
		h.atom("x"),
		h.delimiter(")"),
		h.delimiter(")"),
		nil,
	)
}

func TestNumbers(t *testing.T) {
	for _, tc := range []struct {
		text  string
		class token.Class
	}{
		{"0", token.Integer},
		{"42", token.Integer},
		{"-7", token.Integer},
		{"+7", token.Integer},
		{"1.5", token.Float},
		{"1.", token.Float},
		{".5", token.Float},
		{"-0.25", token.Float},
		{"1e3", token.Float},
		{"2.5E-3", token.Float},
		{"1.2.3", token.Atom},
		{"1e", token.Atom},
		{"e5", token.Atom},
		{"12abc", token.Atom},
		{"-.", token.Atom},
	} {
		ts := New("Numbers", tc.text).All()
		if len(ts) != 1 {
			t.Fatalf("%q: expected 1 token, got %d", tc.text, len(ts))
		}

		if c := ts[0].Class(); c != tc.class {
			t.Fatalf("%q: expected %v, got %v", tc.text, tc.class, c)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"   ",
		"(define (f x) (+ x xx))",
		"((a)) \"b c\" ; d\n e",
		"(if (> 3 2)\n\t1\n\t(BOOM))",
	} {
		b := strings.Builder{}

		for _, tk := range New("RoundTrip", s).All() {
			b.WriteString(tk.Value())
		}

		if b.String() != s {
			t.Fatalf("Scanned (%q) and rejoined (%q) do not match", s, b.String())
		}
	}
}

func TestStrings(t *testing.T) {
	h := setup(t, "Strings")

	h.scan(`"a (b" x"\"c\""`,
		h.other(token.String, `"a (b"`),
		h.space(" "),
		h.atom("x"),
		h.other(token.String, `"\"c\""`),
		nil,
	)
}

func TestUnterminatedString(t *testing.T) {
	h := setup(t, "UnterminatedString")

	h.scan(`(a "b)`,
		h.delimiter("("),
		h.atom("a"),
		h.space(" "),
		h.other(token.Error, `"b)`),
		nil,
	)

	h = setup(t, "UnterminatedEscape")

	h.scan(`"b\`,
		h.other(token.Error, `"b\`),
		nil,
	)
}

type harness struct {
	lexer  *T
	source loc.T
	t      *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

func (h *harness) atom(s string) *token.T {
	return h.other(token.Atom, s)
}

func (h *harness) delimiter(s string) *token.T {
	return h.other(token.Class(s[0]), s)
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) other(class token.Class, s string) *token.T {
	t := token.New(class, s, h.source)

	for _, r := range s {
		if r == '\n' {
			h.source.Line++
			h.source.Char = 1
		} else {
			h.source.Char++
		}
	}

	h.source.Offset += len(s)

	return t
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer = New(h.source.Name, s)
	h.expect(tokens...)
}

func (h *harness) space(s string) *token.T {
	return h.other(token.Space, s)
}
