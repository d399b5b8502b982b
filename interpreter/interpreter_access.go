// Package interpreter - interpreter_access.go
// VarAccess/VarAssign node evaluation.
/*
File    : libra/interpreter/interpreter_access.go
*/
package interpreter

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/environment"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/parser"
)

// evalVarAccess looks up name, walking the parent chain, and returns a
// positional copy (new span, same context) so further operations
// attribute to the access site rather than the definition site.
func (it *Interpreter) evalVarAccess(n *parser.VarAccessNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	v, ok := env.Get(n.Name)
	if !ok {
		return ErrorResult(errors.RuntimeError(n.Start(), n.End(), "'"+n.Name+"' is not defined", ctx))
	}
	return ValueResult(v.WithPos(n.Start(), n.End()).WithContext(ctx))
}

// evalVarAssign evaluates the RHS, binds it into the CURRENT environment
// (never walking to a parent scope), and yields the RHS value.
func (it *Interpreter) evalVarAssign(n *parser.VarAssignNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	r := it.Eval(n.Value, env, ctx)
	if r.ShouldReturn() {
		return r
	}
	env.Set(n.Name, r.Value)
	return ValueResult(r.Value)
}
