// Package value - value.go
// The tagged runtime value hierarchy: Number, String, List, Function and
// BuiltInFunction. Every value carries a non-semantic position/context
// annotation used only to attribute diagnostics.
/*
File    : libra/value/value.go
*/
package value

import "github.com/akashmaji946/libra/context"
import "github.com/akashmaji946/libra/position"

// Kind identifies which concrete value variant a Value is.
type Kind string

const (
	NumberKind   Kind = "NUMBER"
	StringKind   Kind = "STRING"
	ListKind     Kind = "LIST"
	FunctionKind Kind = "FUNCTION"
	BuiltinKind  Kind = "BUILT-IN FUNCTION"
)

// Value is implemented by every runtime value kind. ToString is the
// `print`-facing rendering; ToDisplay is the quoted/bracketed debug
// rendering used for result-list and REPL echo output.
type Value interface {
	Kind() Kind
	ToString() string
	ToDisplay() string
	IsTruthy() bool
	WithPos(start, end position.Position) Value
	WithContext(ctx *context.Context) Value
	Pos() (position.Position, position.Position)
	Context() *context.Context
}

// base is embedded by every concrete value to carry the shared
// position/context annotation. Copying a value via WithPos/WithContext
// never touches a value's own payload, only this annotation.
type base struct {
	posStart position.Position
	posEnd   position.Position
	ctx      *context.Context
}

func (b base) Pos() (position.Position, position.Position) { return b.posStart, b.posEnd }
func (b base) Context() *context.Context                   { return b.ctx }
