// Package interpreter - interpreter_literals.go
// Number/String/List node evaluation (spec.md §4.3 dispatch table).
/*
File    : libra/interpreter/interpreter_literals.go
*/
package interpreter

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/environment"
	"github.com/akashmaji946/libra/parser"
	"github.com/akashmaji946/libra/value"
)

func (it *Interpreter) evalNumber(n *parser.NumberNode, ctx *context.Context) RTResult {
	var num *value.Number
	switch v := n.Tok.Value.(type) {
	case int64:
		num = value.NewInt(v)
	case float64:
		num = value.NewFloat(v)
	default:
		num = value.NewInt(0)
	}
	return ValueResult(num.WithPos(n.Start(), n.End()).WithContext(ctx))
}

func (it *Interpreter) evalString(n *parser.StringNode, ctx *context.Context) RTResult {
	s, _ := n.Tok.Value.(string)
	return ValueResult(value.NewString(s).WithPos(n.Start(), n.End()).WithContext(ctx))
}

// evalList evaluates elements left-to-right, short-circuiting on the
// first non-value outcome.
func (it *Interpreter) evalList(n *parser.ListNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	elems := make([]value.Value, 0, len(n.Elements))
	for _, el := range n.Elements {
		r := it.Eval(el, env, ctx)
		if r.ShouldReturn() {
			return r
		}
		elems = append(elems, r.Value)
	}
	return ValueResult(value.NewList(elems).WithPos(n.Start(), n.End()).WithContext(ctx))
}
