// Package interpreter - interpreter_conditionals.go
// If node evaluation (spec.md §4.3).
/*
File    : libra/interpreter/interpreter_conditionals.go
*/
package interpreter

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/environment"
	"github.com/akashmaji946/libra/parser"
	"github.com/akashmaji946/libra/value"
)

func nullValue() value.Value { return value.NewInt(0) }

// evalIf evaluates cases in order; the first whose condition is truthy has
// its body evaluated and becomes the result (NULL if that clause is a
// block); otherwise the else clause runs; otherwise NULL.
func (it *Interpreter) evalIf(n *parser.IfNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	for _, c := range n.Cases {
		condR := it.Eval(c.Cond, env, ctx)
		if condR.ShouldReturn() {
			return condR
		}
		if condR.Value.IsTruthy() {
			bodyR := it.Eval(c.Body, env, ctx)
			if bodyR.ShouldReturn() {
				return bodyR
			}
			if c.IsBlock {
				return ValueResult(nullValue())
			}
			return bodyR
		}
	}

	if n.ElseBody != nil {
		elseR := it.Eval(n.ElseBody, env, ctx)
		if elseR.ShouldReturn() {
			return elseR
		}
		if n.ElseIsBlock {
			return ValueResult(nullValue())
		}
		return elseR
	}

	return ValueResult(nullValue())
}
