// Released under an MIT license. See LICENSE.

// Package reader finds the structure of sublisp expressions.
//
// Expressions stay text. The reader only locates matching brackets,
// splits a flat text into top-level expressions, and recognizes literals.
package reader

import (
	"fmt"
	"strconv"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/sublisp/internal/common/fault"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/struct/token"
	"github.com/michaelmacinnis/sublisp/internal/common/type/boolean"
	"github.com/michaelmacinnis/sublisp/internal/common/type/num"
	"github.com/michaelmacinnis/sublisp/internal/common/type/str"
	"github.com/michaelmacinnis/sublisp/internal/reader/lexer"
)

const label = "expression"

// Compound returns true if text is a single parenthesized form.
func Compound(text string) bool {
	if len(text) == 0 || text[0] != '(' || text[len(text)-1] != ')' {
		return false
	}

	m, err := Match(text)

	return err == nil && len(m) == len(text)
}

// Descend strips the outer delimiters from text if the whole of text is a
// single parenthesized form. Otherwise it returns text unchanged.
func Descend(text string) string {
	if Compound(text) {
		return text[1 : len(text)-1]
	}

	return text
}

// Literal returns the value of text if text is a self-evaluating literal.
// It returns false if text is not a literal. An error is returned for
// text that looks like a literal but whose value cannot be represented.
func Literal(text string) (cell.I, bool, error) {
	ts := lexer.New(label, text).All()
	if len(ts) != 1 {
		return nil, false, nil
	}

	t := ts[0]
	v := t.Value()

	switch t.Class() {
	case token.Integer:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s", fault.ErrRange, v)
		}

		return num.Int(i), true, nil

	case token.Float:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, false, fmt.Errorf("%w: %s", fault.ErrRange, v)
		}

		return num.Float(f), true, nil

	case token.String:
		s, err := adapted.ActualBytes(v[1 : len(v)-1])
		if err != nil {
			return nil, false, fmt.Errorf("%w in %s", fault.ErrEscape, v)
		}

		return str.New(s), true, nil

	case token.Atom:
		if b, ok := boolean.Parse(v); ok {
			return b, true, nil
		}
	}

	return nil, false, nil
}

// Match returns the text from the first opening delimiter in text through
// its matching closing delimiter.
func Match(text string) (string, error) {
	l := lexer.New(label, text)

	for t := l.Token(); t != nil; t = l.Token() {
		if t.Is(token.Error) {
			return "", unclosed(t)
		}

		if t.Is(token.Open) {
			end, err := match(l, t)
			if err != nil {
				return "", err
			}

			return text[t.Offset():end], nil
		}
	}

	return "", fmt.Errorf("%w: no opening bracket in %q", fault.ErrBracket, text)
}

// Split divides text into its top-level expressions. A parenthesized form
// is a single expression regardless of the whitespace it contains.
func Split(text string) ([]string, error) {
	l := lexer.New(label, text)

	var exprs []string

	for t := l.Token(); t != nil; t = l.Token() {
		switch t.Class() {
		case token.Error:
			return nil, unclosed(t)

		case token.Space:
			continue

		case token.Close:
			return nil, fmt.Errorf(
				"%w: unexpected ')' at %s", fault.ErrBracket, t.Source(),
			)

		case token.Open:
			end, err := match(l, t)
			if err != nil {
				return nil, err
			}

			exprs = append(exprs, text[t.Offset():end])

		default:
			exprs = append(exprs, t.Value())
		}
	}

	return exprs, nil
}

// match consumes tokens from l up to and including the delimiter that
// closes the already consumed opening delimiter o. It returns the offset
// just past the closing delimiter.
func match(l *lexer.T, o *token.T) (int, error) {
	depth := 1

	for t := l.Token(); t != nil; t = l.Token() {
		switch t.Class() {
		case token.Error:
			return 0, unclosed(t)

		case token.Open:
			depth++

		case token.Close:
			depth--
			if depth == 0 {
				return t.End(), nil
			}
		}
	}

	return 0, fmt.Errorf(
		"%w: bracket not closed at %s", fault.ErrBracket, o.Source(),
	)
}

func unclosed(t *token.T) error {
	return fmt.Errorf("%w at %s", fault.ErrQuote, t.Source())
}
