// Package interpreter - interpreter_operators.go
// BinOp/UnaryOp node evaluation and the full operator table (spec.md
// §4.3). Every blank cell of the table becomes an "Illegal operation"
// runtime error spanning the left operand's start to the right operand's
// end.
/*
File    : libra/interpreter/interpreter_operators.go
*/
package interpreter

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/environment"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/lexer"
	"github.com/akashmaji946/libra/parser"
	"github.com/akashmaji946/libra/position"
	"github.com/akashmaji946/libra/value"
)

func (it *Interpreter) evalBinOp(n *parser.BinOpNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	leftR := it.Eval(n.Left, env, ctx)
	if leftR.ShouldReturn() {
		return leftR
	}
	rightR := it.Eval(n.Right, env, ctx)
	if rightR.ShouldReturn() {
		return rightR
	}
	left, right := leftR.Value, rightR.Value
	start, _ := left.Pos()
	_, end := right.Pos()

	result, rerr := applyBinOp(n.Op, left, right, start, end, ctx)
	if rerr != nil {
		return ErrorResult(rerr)
	}
	return ValueResult(result.WithContext(ctx))
}

// applyBinOp dispatches on the operator token and the concrete types of
// left/right, implementing every filled cell of the operator table.
func applyBinOp(op lexer.Token, left, right value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	illegal := func() (value.Value, *errors.LibraError) {
		return nil, errors.RuntimeError(start, end, "Illegal operation", ctx)
	}

	if op.Matches(lexer.KEYWORD, "AND") || op.Matches(lexer.KEYWORD, "OR") {
		ln, lok := left.(*value.Number)
		rn, rok := right.(*value.Number)
		if !lok || !rok {
			return illegal()
		}
		if op.Value == "AND" {
			return ln.AndedBy(rn), nil
		}
		return ln.OredBy(rn), nil
	}

	switch op.Kind {
	case lexer.PLUS:
		switch l := left.(type) {
		case *value.Number:
			if r, ok := right.(*value.Number); ok {
				return l.AddedTo(r), nil
			}
		case *value.String:
			if r, ok := right.(*value.String); ok {
				return l.AddedTo(r), nil
			}
		case *value.List:
			cp := l.Copy()
			cp.Append(right)
			return cp, nil
		}
		return illegal()

	case lexer.MINUS:
		switch l := left.(type) {
		case *value.Number:
			if r, ok := right.(*value.Number); ok {
				return l.SubtractedBy(r), nil
			}
		case *value.List:
			if r, ok := right.(*value.Number); ok {
				if r.IsFloat {
					return nil, errors.RuntimeError(start, end, "Element at this index could not be removed from list because index is out of bounds", ctx)
				}
				cp := l.Copy()
				return cp.RemoveAt(r.IntVal, start, end, ctx)
			}
		}
		return illegal()

	case lexer.MUL:
		switch l := left.(type) {
		case *value.Number:
			if r, ok := right.(*value.Number); ok {
				return l.MultipliedBy(r), nil
			}
		case *value.String:
			if r, ok := right.(*value.Number); ok {
				return l.MultipliedBy(r), nil
			}
		case *value.List:
			if r, ok := right.(*value.List); ok {
				cp := l.Copy()
				cp.Extend(r)
				return cp, nil
			}
		}
		return illegal()

	case lexer.DIV:
		switch l := left.(type) {
		case *value.Number:
			if r, ok := right.(*value.Number); ok {
				return l.DividedBy(r, start, end, ctx)
			}
		case *value.List:
			if r, ok := right.(*value.Number); ok {
				if r.IsFloat {
					return nil, errors.RuntimeError(start, end, "Element at this index could not be retrieved from list because index is out of bounds", ctx)
				}
				return l.ElementAt(r.IntVal, start, end, ctx)
			}
		}
		return illegal()

	case lexer.MOD:
		if l, ok := left.(*value.Number); ok {
			if r, ok := right.(*value.Number); ok {
				return l.ModuloBy(r), nil
			}
		}
		return illegal()

	case lexer.POW:
		if l, ok := left.(*value.Number); ok {
			if r, ok := right.(*value.Number); ok {
				return l.PowerOf(r), nil
			}
		}
		return illegal()

	case lexer.EE:
		if l, ok := left.(*value.Number); ok {
			if r, ok := right.(*value.Number); ok {
				return l.EqualsTo(r), nil
			}
		}
		return illegal()

	case lexer.NE:
		if l, ok := left.(*value.Number); ok {
			if r, ok := right.(*value.Number); ok {
				return l.NotEqualsTo(r), nil
			}
		}
		return illegal()

	case lexer.LT:
		if l, ok := left.(*value.Number); ok {
			if r, ok := right.(*value.Number); ok {
				return l.LessThan(r), nil
			}
		}
		return illegal()

	case lexer.GT:
		if l, ok := left.(*value.Number); ok {
			if r, ok := right.(*value.Number); ok {
				return l.GreaterThan(r), nil
			}
		}
		return illegal()

	case lexer.LTE:
		if l, ok := left.(*value.Number); ok {
			if r, ok := right.(*value.Number); ok {
				return l.LessThanEq(r), nil
			}
		}
		return illegal()

	case lexer.GTE:
		if l, ok := left.(*value.Number); ok {
			if r, ok := right.(*value.Number); ok {
				return l.GreaterThanEq(r), nil
			}
		}
		return illegal()
	}

	return illegal()
}

// evalUnaryOp implements unary '-' (value * -1) and NOT (logical negation,
// defined only on Number).
func (it *Interpreter) evalUnaryOp(n *parser.UnaryOpNode, env *environment.SymbolTable, ctx *context.Context) RTResult {
	r := it.Eval(n.Operand, env, ctx)
	if r.ShouldReturn() {
		return r
	}
	num, ok := r.Value.(*value.Number)
	if !ok {
		return ErrorResult(errors.RuntimeError(n.Start(), n.End(), "Illegal operation", ctx))
	}

	var result *value.Number
	if n.Op.Matches(lexer.KEYWORD, "NOT") {
		result = num.Notted()
	} else if n.Op.Kind == lexer.MINUS {
		result = num.Negated()
	} else {
		result = num
	}
	return ValueResult(result.WithPos(n.Start(), n.End()).WithContext(ctx))
}
