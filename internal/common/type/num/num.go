// Released under an MIT license. See LICENSE.

// Package num provides sublisp's integer and floating point number types.
package num

import (
	"strconv"
	"strings"

	"github.com/michaelmacinnis/sublisp/internal/common"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/sublisp/internal/common/interface/truth"
)

const (
	floatName   = "float"
	integerName = "integer"
)

// I is implemented by both number types.
type I interface {
	cell.I

	Float64() float64
}

// Integer wraps Go's int64 type.
type Integer int64

// Real wraps Go's float64 type.
type Real float64

// Int creates a new integer cell.
func Int(i int64) cell.I {
	v := Integer(i)

	return &v
}

// Float creates a new floating point cell.
func Float(f float64) cell.I {
	v := Real(f)

	return &v
}

// Is returns true if c is either number type.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}

// IsFloat returns true if c is a floating point number. These are
// exactly the numbers whose text contains a decimal point (or is NaN or
// an infinity).
func IsFloat(c cell.I) bool {
	_, ok := c.(*Real)

	return ok
}

// Bool returns the boolean value of the integer i.
func (i *Integer) Bool() bool {
	return *i != 0
}

// Equal returns true if c is a number with the same value as i.
func (i *Integer) Equal(c cell.I) bool {
	if o, ok := c.(*Integer); ok {
		return *i == *o
	}

	n, ok := c.(I)

	return ok && i.Float64() == n.Float64()
}

// Float64 returns the value of the integer i as a float64.
func (i *Integer) Float64() float64 {
	return float64(*i)
}

// Int64 returns the value of the integer i.
func (i *Integer) Int64() int64 {
	return int64(*i)
}

// Literal returns the literal representation of the integer i.
func (i *Integer) Literal() string {
	return i.String()
}

// Name returns the type name for the integer i.
func (i *Integer) Name() string {
	return integerName
}

// String returns the text of the integer i.
func (i *Integer) String() string {
	return strconv.FormatInt(int64(*i), 10)
}

// Bool returns the boolean value of the real r.
func (r *Real) Bool() bool {
	return *r != 0
}

// Equal returns true if c is a number with the same value as r.
func (r *Real) Equal(c cell.I) bool {
	n, ok := c.(I)

	return ok && r.Float64() == n.Float64()
}

// Float64 returns the value of the real r.
func (r *Real) Float64() float64 {
	return float64(*r)
}

// Literal returns the literal representation of the real r.
func (r *Real) Literal() string {
	return r.String()
}

// Name returns the type name for the real r.
func (r *Real) Name() string {
	return floatName
}

// String returns the text of the real r. The text of a finite value
// always contains a decimal point.
func (r *Real) String() string {
	s := strconv.FormatFloat(float64(*r), 'g', -1, 64)

	if strings.ContainsAny(s, ".IN") {
		return s
	}

	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}

	return s + ".0"
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var i Integer

	// The integer type is a number.
	_ = I(&i)

	// The integer type has a literal representation.
	_ = literal.I(&i)

	// The integer type is a stringer.
	_ = common.Stringer(&i)

	// The integer type has a truth value.
	_ = truth.I(&i)

	var r Real

	// The real type is a number.
	_ = I(&r)

	// The real type has a literal representation.
	_ = literal.I(&r)

	// The real type is a stringer.
	_ = common.Stringer(&r)

	// The real type has a truth value.
	_ = truth.I(&r)
}
