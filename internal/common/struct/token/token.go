// Released under an MIT license. See LICENSE.

// Package token is shared by the sublisp lexer and reader.
package token

import (
	"strconv"
	"unicode"

	"github.com/michaelmacinnis/sublisp/internal/common/struct/loc"
)

// Class is a token's type.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	source loc.T
	value  string
}

type token = T

// Token classes. Delimiters use their own rune as their class.
const (
	Error Class = iota

	Open  Class = '('
	Close Class = ')'

	Atom Class = unicode.MaxRune + iota
	Float
	Integer
	Space
	String
)

// New creates a new token.
func New(class Class, value string, source loc.T) *token {
	return &token{
		class:  class,
		source: source,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Atom:
		return "Atom"
	case Float:
		return "Float"
	case Integer:
		return "Integer"
	case Space:
		return "Space"
	case String:
		return "String"
	}

	return strconv.QuoteRune(rune(c))
}

// Class returns the token's class.
func (t *token) Class() Class {
	return t.class
}

// End returns the byte offset just past the end of the token.
func (t *token) End() int {
	return t.source.Offset + len(t.value)
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Offset returns the byte offset of the start of the token.
func (t *token) Offset() int {
	return t.source.Offset
}

// Source returns the source location for this token.
func (t *token) Source() *loc.T {
	return &t.source
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		t.source.String() + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
