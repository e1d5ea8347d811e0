// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for sublisp expressions.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Every byte of the scanned text belongs to exactly one token so that
// joining the values of all tokens reproduces the text.
package lexer

import (
	"unicode/utf8"

	"github.com/michaelmacinnis/sublisp/internal/common/struct/loc"
	"github.com/michaelmacinnis/sublisp/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	line  int    // Line of the current byte.
	runes int    // Runes scanned on the current line.
	saved action // Escaped action.
	state action // Current action.

	source loc.T // Location of the current token's first byte.

	tokens chan *token.T
}

// New creates a new T for text. Label can be a file name or other identifier.
func New(label, text string) *T {
	return &T{
		bytes: text,
		line:  1,
		runes: 1,
		state: startState,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		tokens: make(chan *token.T, 1),
	}
}

// All scans the remaining text and returns every token.
func (l *T) All() []*token.T {
	var ts []*token.T

	for t := l.Token(); t != nil; t = l.Token() {
		ts = append(ts, t)
	}

	return ts
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil when the text is exhausted.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return nil
			}

			l.state = l.state(l)
		}
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class) {
	l.tokens <- token.New(c, l.Text(), l.source)
	l.skip()
}

func (l *T) escape(escaped, a action) action {
	l.saved = escaped
	return a
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) resume() action {
	resumed := l.saved
	l.saved = nil

	return resumed
}

func (l *T) skip() {
	l.first = l.index
	l.source.Char = l.runes
	l.source.Line = l.line
	l.source.Offset = l.index
}

// T states.

func escapeNextCharacter(l *T) action {
	if l.next() == eof {
		l.emit(token.Error)
		return nil
	}

	return l.resume()
}

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		if r == eof || delimiter(r) {
			l.emit(classify(l.Text()))
			return startState
		}

		l.accept(r, w)
	}
}

func scanComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.emit(token.Space)
			return nil
		case '\n':
			return scanSpace
		}

		l.accept(r, w)
	}
}

func scanSpace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == ';':
			l.accept(r, w)
			return scanComment
		case space(r):
			l.accept(r, w)
		default:
			l.emit(token.Space)
			return startState
		}
	}
}

func scanString(l *T) action {
	for {
		switch l.next() {
		case eof:
			l.emit(token.Error)
			return nil
		case '"':
			l.emit(token.String)
			return startState
		case '\\':
			return l.escape(scanString, escapeNextCharacter)
		}
	}
}

func startState(l *T) action {
	r, w := l.peek()

	switch {
	case r == eof:
		return nil
	case r == '(':
		l.accept(r, w)
		l.emit(token.Open)
	case r == ')':
		l.accept(r, w)
		l.emit(token.Close)
	case r == '"':
		l.accept(r, w)
		return scanString
	case r == ';' || space(r):
		return scanSpace
	default:
		return scanAtom
	}

	return startState
}

// Helper functions.

// classify decides if an atom is an integer, a float or neither.
//
//	integer = [sign] digits
//	float   = [sign] (digits "." [digits] | "." digits) [exponent]
//	        | [sign] digits exponent
//	exponent = ("e" | "E") [sign] digits
func classify(s string) token.Class {
	i := 0

	sign := func() {
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
	}

	digits := func() int {
		n := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			n++
		}

		return n
	}

	sign()

	mantissa := digits()
	float := false

	if i < len(s) && s[i] == '.' {
		i++
		mantissa += digits()
		float = true
	}

	if mantissa == 0 {
		return token.Atom
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		sign()

		if digits() == 0 {
			return token.Atom
		}

		float = true
	}

	switch {
	case i != len(s):
		return token.Atom
	case float:
		return token.Float
	}

	return token.Integer
}

func delimiter(r rune) bool {
	return r == '(' || r == ')' || r == '"' || r == ';' || space(r)
}

func space(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '\v'
}
