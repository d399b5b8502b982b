// Package value - list.go
// List is an ordered, mutable sequence of values. Elements is a pointer to
// a slice so that every List produced by Copy shares the same backing
// storage as its source — mutating builtins (append, ccat, pop) must be
// observable through every alias of a list, matching the reference
// implementation's List.copy(), which wraps the same underlying Python
// list object rather than cloning it.
/*
File    : libra/value/list.go
*/
package value

import (
	"strings"

	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/position"
)

type List struct {
	base
	Elements *[]Value
}

// NewList wraps elems in a fresh, independently-owned backing slice.
func NewList(elems []Value) *List {
	backing := make([]Value, len(elems))
	copy(backing, elems)
	return &List{Elements: &backing}
}

func (l *List) Kind() Kind { return ListKind }

func (l *List) ToString() string {
	parts := make([]string, len(*l.Elements))
	for i, e := range *l.Elements {
		parts[i] = e.ToString()
	}
	return strings.Join(parts, ", ")
}

func (l *List) ToDisplay() string {
	parts := make([]string, len(*l.Elements))
	for i, e := range *l.Elements {
		parts[i] = e.ToDisplay()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// IsTruthy: every List is truthy, including the empty list.
func (l *List) IsTruthy() bool { return true }

func (l *List) WithPos(start, end position.Position) Value {
	cp := *l
	cp.posStart, cp.posEnd = start, end
	return &cp
}

func (l *List) WithContext(ctx *context.Context) Value {
	cp := *l
	cp.ctx = ctx
	return &cp
}

// Copy returns a new List header pointing at the SAME backing slice, so
// mutations through either alias are visible through both.
func (l *List) Copy() *List {
	cp := *l
	return &cp
}

// Append mutates the list in place by adding v, matching the "append T to
// list" cell of the + row of the operator table.
func (l *List) Append(v Value) {
	*l.Elements = append(*l.Elements, v)
}

// Extend mutates the list in place by appending other's elements.
func (l *List) Extend(other *List) {
	*l.Elements = append(*l.Elements, *other.Elements...)
}

// RemoveAt mutates the list in place by removing and returning the element
// at index, or a runtime error if index is out of bounds.
func (l *List) RemoveAt(index int64, start, end position.Position, ctx *context.Context) (Value, *errors.LibraError) {
	elems := *l.Elements
	if index < 0 || index >= int64(len(elems)) {
		return nil, errors.RuntimeError(start, end, "Element at this index could not be removed from list because index is out of bounds", ctx)
	}
	removed := elems[index]
	*l.Elements = append(elems[:index], elems[index+1:]...)
	return removed, nil
}

// ElementAt returns the element at index (no removal), or a runtime error
// if index is out of bounds; backs the List/Number '/' (index) operator.
func (l *List) ElementAt(index int64, start, end position.Position, ctx *context.Context) (Value, *errors.LibraError) {
	elems := *l.Elements
	if index < 0 || index >= int64(len(elems)) {
		return nil, errors.RuntimeError(start, end, "Element at this index could not be retrieved from list because index is out of bounds", ctx)
	}
	return elems[index], nil
}
