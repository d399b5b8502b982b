// Package interpreter - interpreter_functions.go
// FuncDef/Call node evaluation and the calling convention (spec.md §4.2
// "Function definition" / §4.3 "Calling convention"). A `ret` outcome is
// consumed at the call boundary and converted back to a value; `cont`/
// `brk` are deliberately NOT consumed here and leak outward past the call
// (spec.md §9 — preserved, not fixed).
/*
File    : libra/interpreter/interpreter_functions.go
*/
package interpreter

import (
	"strconv"

	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/environment"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/function"
	"github.com/akashmaji946/libra/parser"
	"github.com/akashmaji946/libra/position"
	"github.com/akashmaji946/libra/value"
)

// evalFuncDef creates a Function value capturing env BY REFERENCE (not a
// snapshot): later mutation of a name in env is visible inside the
// closure, matching the reference implementation's shared symbol table.
// If the definition is named, it is also bound there.
func (it *Interpreter) evalFuncDef(n *parser.FuncDefNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	fn := function.NewFunction(n.Name, n.Params, n.Body, n.AutoReturn, env)
	fnVal := value.Value(fn).WithPos(n.Start(), n.End()).WithContext(ctx)
	if n.Name != "" {
		env.Set(n.Name, fnVal)
	}
	return ValueResult(fnVal)
}

// evalCall evaluates the callee, then each argument left-to-right, then
// invokes the callable with that argument list.
func (it *Interpreter) evalCall(n *parser.CallNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	calleeR := it.Eval(n.Callee, env, ctx)
	if calleeR.ShouldReturn() {
		return calleeR
	}

	args := make([]value.Value, 0, len(n.Args))
	for _, a := range n.Args {
		r := it.Eval(a, env, ctx)
		if r.ShouldReturn() {
			return r
		}
		args = append(args, r.Value)
	}

	result := it.callValue(calleeR.Value, args, n.Start(), n.End(), ctx)
	if result.Outcome == OutcomeValue {
		return ValueResult(result.Value.WithPos(n.Start(), n.End()).WithContext(ctx))
	}
	return result
}

// callValue implements the calling convention for both user functions and
// built-in functions: each call gets a fresh child Context (display name,
// caller, call site). A user function also gets a fresh child SymbolTable
// whose parent is its captured closure environment; a built-in gets no
// SymbolTable, since its callback is not given an environment.
func (it *Interpreter) callValue(fn value.Value, args []value.Value, start, end position.Position, callerCtx *context.Context) RTResult {
	switch f := fn.(type) {
	case *function.Function:
		if len(args) > len(f.Params) {
			return ErrorResult(errors.RuntimeError(start, end, tooManyArgs(len(args)-len(f.Params), f.Name), callerCtx))
		}
		if len(args) < len(f.Params) {
			return ErrorResult(errors.RuntimeError(start, end, tooFewArgs(len(f.Params)-len(args), f.Name), callerCtx))
		}

		callCtx := context.NewContext(f.Name, callerCtx, start)
		callEnv := environment.NewSymbolTable(f.Env)
		for i, p := range f.Params {
			callEnv.Set(p, args[i])
		}

		bodyR := it.Eval(f.Body, callEnv, callCtx)

		if bodyR.Outcome == OutcomeError {
			return bodyR
		}
		if bodyR.Outcome == OutcomeContinue || bodyR.Outcome == OutcomeBreak {
			// Deliberately not consumed: leaks to the caller's enclosing loop.
			return bodyR
		}
		if f.AutoReturn {
			return ValueResult(bodyR.Value)
		}
		if bodyR.Outcome == OutcomeReturn {
			return ValueResult(bodyR.Value)
		}
		return ValueResult(nullValue())

	case *value.BuiltInFunction:
		callCtx := context.NewContext(f.Name, callerCtx, start)
		v, err := f.Execute(it, args, start, end, callCtx)
		if err != nil {
			return ErrorResult(err)
		}
		return ValueResult(v)

	default:
		return ErrorResult(errors.RuntimeError(start, end, "Illegal operation", callerCtx))
	}
}

func tooManyArgs(n int, name string) string {
	return strconv.Itoa(n) + " too many args passed into " + name
}

func tooFewArgs(n int, name string) string {
	return strconv.Itoa(n) + " too few args passed into " + name
}
