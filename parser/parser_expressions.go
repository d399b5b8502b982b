// Package parser - parser_expressions.go
// The expression precedence ladder (spec.md §4.2, lowest to highest):
// assignment, AND/OR, NOT, comparisons, additive, multiplicative, unary
// +/-, power, call, atoms.
/*
File    : libra/parser/parser_expressions.go
*/
package parser

import (
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/lexer"
)

// expr is `var IDENT = expr` or the AND/OR level.
func (p *Parser) expr() (Node, *errors.LibraError) {
	if p.curIsKeyword("var") {
		start := p.Cur.PosStart
		p.advance()
		nameTok, err := p.expect(lexer.IDENTIFIER, "identifier")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.EQ, "'='"); err != nil {
			return nil, err
		}
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		name, _ := nameTok.Value.(string)
		return &VarAssignNode{span: span{start, value.End()}, Name: name, Value: value}, nil
	}

	left, err := p.compExpr()
	if err != nil {
		return nil, err
	}
	for p.curIsKeyword("AND") || p.curIsKeyword("OR") {
		op := p.Cur
		p.advance()
		right, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		left = &BinOpNode{span: span{left.Start(), right.End()}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

// compExpr is `NOT comp-expr` or the comparison level.
func (p *Parser) compExpr() (Node, *errors.LibraError) {
	if p.curIsKeyword("NOT") {
		op := p.Cur
		p.advance()
		operand, err := p.compExpr()
		if err != nil {
			return nil, err
		}
		return &UnaryOpNode{span: span{op.PosStart, operand.End()}, Op: op, Operand: operand}, nil
	}

	left, err := p.arithExpr()
	if err != nil {
		return nil, err
	}
	for isComparisonOp(p.Cur.Kind) {
		op := p.Cur
		p.advance()
		right, err := p.arithExpr()
		if err != nil {
			return nil, err
		}
		left = &BinOpNode{span: span{left.Start(), right.End()}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

func isComparisonOp(k lexer.TokenKind) bool {
	switch k {
	case lexer.EE, lexer.NE, lexer.LT, lexer.GT, lexer.LTE, lexer.GTE:
		return true
	}
	return false
}

// arithExpr is the additive level.
func (p *Parser) arithExpr() (Node, *errors.LibraError) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.Cur.Kind == lexer.PLUS || p.Cur.Kind == lexer.MINUS {
		op := p.Cur
		p.advance()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &BinOpNode{span: span{left.Start(), right.End()}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

// term is the multiplicative level.
func (p *Parser) term() (Node, *errors.LibraError) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for p.Cur.Kind == lexer.MUL || p.Cur.Kind == lexer.DIV || p.Cur.Kind == lexer.MOD {
		op := p.Cur
		p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &BinOpNode{span: span{left.Start(), right.End()}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

// factor is unary +/- or the power level.
func (p *Parser) factor() (Node, *errors.LibraError) {
	if p.Cur.Kind == lexer.PLUS || p.Cur.Kind == lexer.MINUS {
		op := p.Cur
		p.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &UnaryOpNode{span: span{op.PosStart, operand.End()}, Op: op, Operand: operand}, nil
	}
	return p.power()
}

// power is the call level, right-associative via `^`, with the right
// operand parsed as a full unary expression (spec.md §4.2 item 8).
func (p *Parser) power() (Node, *errors.LibraError) {
	left, err := p.call()
	if err != nil {
		return nil, err
	}
	for p.Cur.Kind == lexer.POW {
		op := p.Cur
		p.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &BinOpNode{span: span{left.Start(), right.End()}, Left: left, Op: op, Right: right}
	}
	return left, nil
}

// call is an atom optionally followed by `( args? )`.
func (p *Parser) call() (Node, *errors.LibraError) {
	atomNode, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.Cur.Kind != lexer.LPAREN {
		return atomNode, nil
	}
	p.advance()
	var args []Node
	if p.Cur.Kind != lexer.RPAREN {
		first, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.Cur.Kind == lexer.COMMA {
			p.advance()
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	end, err := p.expect(lexer.RPAREN, "')'")
	if err != nil {
		return nil, err
	}
	return &CallNode{span: span{atomNode.Start(), end.PosEnd}, Callee: atomNode, Args: args}, nil
}
