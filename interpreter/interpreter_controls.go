// Package interpreter - interpreter_controls.go
// Ret node evaluation. Cont/Brk have no sub-evaluation and are dispatched
// directly in Eval's type-switch.
/*
File    : libra/interpreter/interpreter_controls.go
*/
package interpreter

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/environment"
	"github.com/akashmaji946/libra/parser"
)

// evalRet evaluates the optional expression (default NULL) and yields a
// ret outcome, which propagates until the nearest active function call
// consumes it.
func (it *Interpreter) evalRet(n *parser.RetNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	if n.Value == nil {
		return ReturnResult(nullValue())
	}
	r := it.Eval(n.Value, env, ctx)
	if r.ShouldReturn() {
		return r
	}
	return ReturnResult(r.Value)
}
