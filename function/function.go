// Package function - function.go
// Function is the runtime value produced by evaluating a FuncDef node: a
// name, parameter names, a body node, the auto_return flag and the
// environment captured at the point of definition. Structurally grounded
// on the teacher's function.Function{Name,Params,Body,Scp}; the captured
// environment is stored by reference, never copied, so a function's
// closure observes later mutation of its captured scope (spec.md §8/§9).
/*
File    : libra/function/function.go
*/
package function

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/environment"
	"github.com/akashmaji946/libra/parser"
	"github.com/akashmaji946/libra/position"
	"github.com/akashmaji946/libra/value"
)

// Function implements value.Value.
type Function struct {
	Name       string
	Params     []string
	Body       parser.Node
	AutoReturn bool
	Env        *environment.SymbolTable

	posStart, posEnd position.Position
	ctx              *context.Context
}

// NewFunction captures env by reference: env is the live scope active at
// the point of FuncDef evaluation, and remains live (not a snapshot) for
// as long as this Function is reachable.
func NewFunction(name string, params []string, body parser.Node, autoReturn bool, env *environment.SymbolTable) *Function {
	if name == "" {
		name = "<anonymous>"
	}
	return &Function{Name: name, Params: params, Body: body, AutoReturn: autoReturn, Env: env}
}

func (f *Function) Kind() value.Kind { return value.FunctionKind }

func (f *Function) ToString() string  { return "<function " + f.Name + ">" }
func (f *Function) ToDisplay() string { return f.ToString() }
func (f *Function) IsTruthy() bool    { return true }

func (f *Function) Pos() (position.Position, position.Position) { return f.posStart, f.posEnd }
func (f *Function) Context() *context.Context                   { return f.ctx }

func (f *Function) WithPos(start, end position.Position) value.Value {
	cp := *f
	cp.posStart, cp.posEnd = start, end
	return &cp
}

func (f *Function) WithContext(ctx *context.Context) value.Value {
	cp := *f
	cp.ctx = ctx
	return &cp
}
