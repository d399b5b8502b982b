// Package interpreter - interpreter_loops.go
// From/Until loop evaluation (spec.md §4.2/§4.3). A loop boundary consumes
// cont/brk but passes ret/error through unchanged; completing without brk
// yields NULL (block form) or the list of per-iteration values (inline
// form).
/*
File    : libra/interpreter/interpreter_loops.go
*/
package interpreter

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/environment"
	"github.com/akashmaji946/libra/parser"
	"github.com/akashmaji946/libra/value"
)

func (it *Interpreter) evalFrom(n *parser.FromNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	startR := it.Eval(n.Start, env, ctx)
	if startR.ShouldReturn() {
		return startR
	}
	endR := it.Eval(n.End, env, ctx)
	if endR.ShouldReturn() {
		return endR
	}
	startNum, _ := startR.Value.(*value.Number)
	endNum, _ := endR.Value.(*value.Number)

	step := value.NewFloat(1)
	if n.Step != nil {
		stepR := it.Eval(n.Step, env, ctx)
		if stepR.ShouldReturn() {
			return stepR
		}
		step, _ = stepR.Value.(*value.Number)
	}

	var elements []value.Value
	i := startNum.Float()
	for (step.Float() >= 0 && i < endNum.Float()) || (step.Float() < 0 && i > endNum.Float()) {
		env.Set(n.VarName, value.NewFloat(i))

		bodyR := it.Eval(n.Body, env, ctx)
		i += step.Float()

		if bodyR.ShouldReturnThroughLoop() {
			return bodyR
		}
		if bodyR.Outcome == OutcomeBreak {
			break
		}
		if bodyR.Outcome == OutcomeContinue {
			continue
		}
		elements = append(elements, bodyR.Value)
	}

	if n.IsBlock {
		return ValueResult(nullValue())
	}
	return ValueResult(value.NewList(elements).WithPos(n.Start(), n.End()).WithContext(ctx))
}

func (it *Interpreter) evalUntil(n *parser.UntilNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	var elements []value.Value

	for {
		condR := it.Eval(n.Cond, env, ctx)
		if condR.ShouldReturn() {
			return condR
		}
		if !condR.Value.IsTruthy() {
			break
		}

		bodyR := it.Eval(n.Body, env, ctx)
		if bodyR.ShouldReturnThroughLoop() {
			return bodyR
		}
		if bodyR.Outcome == OutcomeBreak {
			break
		}
		if bodyR.Outcome == OutcomeContinue {
			continue
		}
		elements = append(elements, bodyR.Value)
	}

	if n.IsBlock {
		return ValueResult(nullValue())
	}
	return ValueResult(value.NewList(elements).WithPos(n.Start(), n.End()).WithContext(ctx))
}
