// Package value - string.go
// String holds immutable text. The only operator-table cells it
// participates in are String+String (concatenate) and String*Number
// (repeat).
/*
File    : libra/value/string.go
*/
package value

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/position"
)

type String struct {
	base
	Value string
}

func NewString(v string) *String { return &String{Value: v} }

func (s *String) Kind() Kind { return StringKind }

func (s *String) ToString() string { return s.Value }

// ToDisplay renders the string quoted, with escape sequences preserved,
// matching the debug form used for result-list/REPL echo output.
func (s *String) ToDisplay() string { return strconv.Quote(s.Value) }

func (s *String) IsTruthy() bool { return len(s.Value) > 0 }

func (s *String) WithPos(start, end position.Position) Value {
	cp := *s
	cp.posStart, cp.posEnd = start, end
	return &cp
}

func (s *String) WithContext(ctx *context.Context) Value {
	cp := *s
	cp.ctx = ctx
	return &cp
}

func (s *String) AddedTo(other *String) *String { return &String{Value: s.Value + other.Value} }

func (s *String) MultipliedBy(n *Number) *String {
	return &String{Value: strings.Repeat(s.Value, int(n.IntVal))}
}
