// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/sublisp/internal/reader"
)

// Kind is the category of an expression.
type Kind int

// Expression kinds, in the order they are checked.
const (
	Unknown Kind = iota
	Definition
	Variable
	Compound
	Literal
)

const reserved = "define"

// String returns the name of the kind k.
func (k Kind) String() string {
	switch k {
	case Definition:
		return "definition"
	case Variable:
		return "variable"
	case Compound:
		return "compound"
	case Literal:
		return "literal"
	}

	return "unknown"
}

// Classify determines the kind of the expression text. The checks overlap,
// so order matters: a definition is also a compound form, and a name bound
// in the symbol table wins over a literal with the same text.
func (e *T) Classify(text string) (Kind, error) {
	tokens, err := reader.Split(reader.Descend(text))
	if err != nil {
		return Unknown, err
	}

	if len(tokens) > 0 && tokens[0] == reserved {
		return Definition, nil
	}

	if _, ok := e.scope.Lookup(text); ok {
		return Variable, nil
	}

	if reader.Compound(text) {
		return Compound, nil
	}

	_, ok, err := reader.Literal(text)
	if err != nil {
		return Unknown, err
	}

	if ok {
		return Literal, nil
	}

	return Unknown, nil
}
