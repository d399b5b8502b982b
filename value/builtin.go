// Package value - builtin.go
// BuiltInFunction wraps one of the closed set of built-in functions
// (spec.md §6). Runtime is the narrow interface a builtin's callback needs
// to call back into the interpreter (e.g. `exec` evaluating a loaded
// file's source, or `print` reaching the configured output stream);
// interpreter.Interpreter implements it, mirroring the teacher's own
// std.Runtime interface.
/*
File    : libra/value/builtin.go
*/
package value

import (
	"bufio"
	"io"
	"strconv"

	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/position"
)

// Runtime is the callback-facing view of the interpreter. It is
// deliberately narrow: none of Libra's closed built-in set needs to call
// back into a user function, only to read/write and to re-enter
// evaluation for `exec`.
type Runtime interface {
	Writer() io.Writer
	Reader() *bufio.Reader
	// Execute lexes, parses and evaluates source in the global environment,
	// backing the `exec` builtin.
	Execute(fileName, source string) *errors.LibraError
}

// BuiltinCallback is the signature every built-in function implements.
type BuiltinCallback func(rt Runtime, args []Value, start, end position.Position, ctx *context.Context) (Value, *errors.LibraError)

type BuiltInFunction struct {
	base
	Name     string
	Callback BuiltinCallback
	Arity    int // number of declared parameters, for arity-mismatch messages
}

func NewBuiltInFunction(name string, arity int, cb BuiltinCallback) *BuiltInFunction {
	return &BuiltInFunction{Name: name, Arity: arity, Callback: cb}
}

func (b *BuiltInFunction) Kind() Kind { return BuiltinKind }

func (b *BuiltInFunction) ToString() string  { return "<built-in function " + b.Name + ">" }
func (b *BuiltInFunction) ToDisplay() string { return b.ToString() }
func (b *BuiltInFunction) IsTruthy() bool    { return true }

func (b *BuiltInFunction) WithPos(start, end position.Position) Value {
	cp := *b
	cp.posStart, cp.posEnd = start, end
	return &cp
}

func (b *BuiltInFunction) WithContext(ctx *context.Context) Value {
	cp := *b
	cp.ctx = ctx
	return &cp
}

// Execute invokes the builtin's callback, first checking arity the same
// way user functions are checked.
func (b *BuiltInFunction) Execute(rt Runtime, args []Value, start, end position.Position, callCtx *context.Context) (Value, *errors.LibraError) {
	if len(args) > b.Arity {
		return nil, errors.RuntimeError(start, end, tooMany(len(args)-b.Arity, b.Name), callCtx)
	}
	if len(args) < b.Arity {
		return nil, errors.RuntimeError(start, end, tooFew(b.Arity-len(args), b.Name), callCtx)
	}
	return b.Callback(rt, args, start, end, callCtx)
}

func tooMany(n int, name string) string {
	return strconv.Itoa(n) + " too many args passed into " + name
}

func tooFew(n int, name string) string {
	return strconv.Itoa(n) + " too few args passed into " + name
}
