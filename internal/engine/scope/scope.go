// Released under an MIT license. See LICENSE.

// Package scope provides the symbol and procedure tables used by the evaluator.
package scope

import (
	"sort"

	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/procedure"
	"github.com/michaelmacinnis/sublisp/internal/common/struct/hash"
)

// T (scope) maps variable names to values and operator names to procedures.
// Entries are never removed. Defining an existing name replaces it.
type T struct {
	procedures *hash.T[procedure.T]
	symbols    *hash.T[cell.I]
}

type scope = T

// New creates a new, empty scope.
func New() *scope {
	return &scope{
		procedures: hash.New[procedure.T](),
		symbols:    hash.New[cell.I](),
	}
}

// Define associates the variable name k with the value v.
func (s *scope) Define(k string, v cell.I) {
	s.symbols.Set(k, v)
}

// Lookup retrieves the value of the variable name k.
func (s *scope) Lookup(k string) (cell.I, bool) {
	return s.symbols.Get(k)
}

// Names returns every variable and procedure name in sorted order.
func (s *scope) Names() []string {
	names := append(s.symbols.Names(), s.procedures.Names()...)

	sort.Strings(names)

	unique := names[:0]
	for i, n := range names {
		if i == 0 || n != names[i-1] {
			unique = append(unique, n)
		}
	}

	return unique
}

// Procedure retrieves the procedure registered as the operator name k.
func (s *scope) Procedure(k string) (procedure.T, bool) {
	return s.procedures.Get(k)
}

// Register associates the operator name k with the procedure p.
func (s *scope) Register(k string, p procedure.T) {
	s.procedures.Set(k, p)
}

// Size returns the number of variables and procedures in the scope.
func (s *scope) Size() (variables, procedures int) {
	return s.symbols.Size(), s.procedures.Size()
}
