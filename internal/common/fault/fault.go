// Released under an MIT license. See LICENSE.

// Package fault defines the kinds of error reported while reading and
// evaluating sublisp expressions. Errors returned by sublisp packages wrap
// one of these and should be tested with errors.Is.
package fault

import (
	"errors"
)

//nolint:gochecknoglobals
var (
	ErrArity           = errors.New("wrong number of arguments")
	ErrBracket         = errors.New("unbalanced brackets")
	ErrDivision        = errors.New("division by zero")
	ErrEscape          = errors.New("invalid escape sequence")
	ErrExhausted       = errors.New("expression too large")
	ErrMalformedDefine = errors.New("malformed define")
	ErrNotEvaluable    = errors.New("not evaluable")
	ErrQuote           = errors.New("string not closed")
	ErrRange           = errors.New("number out of range")
	ErrRecursion       = errors.New("maximum recursion depth exceeded")
	ErrType            = errors.New("wrong type")
)
