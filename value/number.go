// Package value - number.go
// Number holds either an integer or a floating-point value in one slot.
// NULL, TRUE and FALSE are all Numbers (NULL is Number(0), matching
// spec.md's data model); there is no separate nil/null value kind.
/*
File    : libra/value/number.go
*/
package value

import (
	"math"
	"strconv"

	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/position"
)

// Number is either an int64 or a float64; IsFloat selects which.
type Number struct {
	base
	IsFloat bool
	IntVal  int64
	FltVal  float64
}

// NewInt builds an integer Number.
func NewInt(v int64) *Number { return &Number{IntVal: v} }

// NewFloat builds a floating-point Number.
func NewFloat(v float64) *Number { return &Number{IsFloat: true, FltVal: v} }

// Float returns the value widened to float64 regardless of IsFloat.
func (n *Number) Float() float64 {
	if n.IsFloat {
		return n.FltVal
	}
	return float64(n.IntVal)
}

func (n *Number) Kind() Kind { return NumberKind }

func (n *Number) ToString() string {
	if n.IsFloat {
		return strconv.FormatFloat(n.FltVal, 'g', -1, 64)
	}
	return strconv.FormatInt(n.IntVal, 10)
}

func (n *Number) ToDisplay() string { return n.ToString() }

// IsTruthy: 0 is the only falsy Number.
func (n *Number) IsTruthy() bool {
	if n.IsFloat {
		return n.FltVal != 0
	}
	return n.IntVal != 0
}

func (n *Number) WithPos(start, end position.Position) Value {
	cp := *n
	cp.posStart, cp.posEnd = start, end
	return &cp
}

func (n *Number) WithContext(ctx *context.Context) Value {
	cp := *n
	cp.ctx = ctx
	return &cp
}

// AddedTo, SubtractedBy, etc. implement the Number x Number row of the
// operator table (spec.md §4.3). Mixed int/float widens to float; division
// always produces a float.

func (n *Number) AddedTo(other *Number) *Number { return n.arith(other, func(a, b float64) float64 { return a + b }, func(a, b int64) int64 { return a + b }) }
func (n *Number) SubtractedBy(other *Number) *Number { return n.arith(other, func(a, b float64) float64 { return a - b }, func(a, b int64) int64 { return a - b }) }
func (n *Number) MultipliedBy(other *Number) *Number { return n.arith(other, func(a, b float64) float64 { return a * b }, func(a, b int64) int64 { return a * b }) }

func (n *Number) DividedBy(other *Number, start, end position.Position, ctx *context.Context) (*Number, *errors.LibraError) {
	if other.Float() == 0 {
		return nil, errors.RuntimeError(start, end, "Division by zero", ctx)
	}
	return NewFloat(n.Float() / other.Float()), nil
}

// ModuloBy implements '%' with sign-follows-divisor (floor-mod) semantics,
// matching Python's '%' for both int and float operands.
func (n *Number) ModuloBy(other *Number) *Number {
	if n.IsFloat || other.IsFloat {
		a, b := n.Float(), other.Float()
		return NewFloat(a - b*math.Floor(a/b))
	}
	return NewInt(((n.IntVal % other.IntVal) + other.IntVal) % other.IntVal)
}

func (n *Number) PowerOf(other *Number) *Number {
	if !n.IsFloat && !other.IsFloat && other.IntVal >= 0 {
		result := int64(1)
		for i := int64(0); i < other.IntVal; i++ {
			result *= n.IntVal
		}
		return NewInt(result)
	}
	return NewFloat(math.Pow(n.Float(), other.Float()))
}

func (n *Number) arith(other *Number, ff func(a, b float64) float64, fi func(a, b int64) int64) *Number {
	if n.IsFloat || other.IsFloat {
		return NewFloat(ff(n.Float(), other.Float()))
	}
	return NewInt(fi(n.IntVal, other.IntVal))
}

// boolNumber converts a Go bool into the Number(1)/Number(0) convention
// used for every comparison and logical operator result.
func boolNumber(b bool) *Number {
	if b {
		return NewInt(1)
	}
	return NewInt(0)
}

func (n *Number) EqualsTo(other *Number) *Number    { return boolNumber(n.Float() == other.Float()) }
func (n *Number) NotEqualsTo(other *Number) *Number { return boolNumber(n.Float() != other.Float()) }
func (n *Number) LessThan(other *Number) *Number     { return boolNumber(n.Float() < other.Float()) }
func (n *Number) GreaterThan(other *Number) *Number  { return boolNumber(n.Float() > other.Float()) }
func (n *Number) LessThanEq(other *Number) *Number    { return boolNumber(n.Float() <= other.Float()) }
func (n *Number) GreaterThanEq(other *Number) *Number { return boolNumber(n.Float() >= other.Float()) }

func (n *Number) AndedBy(other *Number) *Number { return boolNumber(n.IsTruthy() && other.IsTruthy()) }
func (n *Number) OredBy(other *Number) *Number  { return boolNumber(n.IsTruthy() || other.IsTruthy()) }

// Notted implements unary NOT: 1 if the operand is 0 (falsy), else 0.
func (n *Number) Notted() *Number {
	if n.IsTruthy() {
		return NewInt(0)
	}
	return NewInt(1)
}

// Negated implements unary '-': value * -1.
func (n *Number) Negated() *Number { return n.MultipliedBy(NewInt(-1)) }
