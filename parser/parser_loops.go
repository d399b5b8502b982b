// Package parser - parser_loops.go
// from/until loop productions (spec.md §4.2 "From loop"/"Until loop").
/*
File    : libra/parser/parser_loops.go
*/
package parser

import (
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/lexer"
	"github.com/akashmaji946/libra/position"
)

// fromExpr parses `from IDENT = start to end [step step_expr] then body`.
func (p *Parser) fromExpr() (Node, *errors.LibraError) {
	start := p.Cur.PosStart
	if err := p.expectKeyword("from"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lexer.IDENTIFIER, "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.EQ, "'='"); err != nil {
		return nil, err
	}
	startExpr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("to"); err != nil {
		return nil, err
	}
	endExpr, err := p.expr()
	if err != nil {
		return nil, err
	}
	var stepExpr Node
	if p.curIsKeyword("step") {
		p.advance()
		stepExpr, err = p.expr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	body, isBlock, end, err := p.loopBody()
	if err != nil {
		return nil, err
	}
	name, _ := nameTok.Value.(string)
	return &FromNode{span: span{start, end}, VarName: name, Start: startExpr, End: endExpr, Step: stepExpr, Body: body, IsBlock: isBlock}, nil
}

// untilExpr parses `until cond then body`.
func (p *Parser) untilExpr() (Node, *errors.LibraError) {
	start := p.Cur.PosStart
	if err := p.expectKeyword("until"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("then"); err != nil {
		return nil, err
	}
	body, isBlock, end, err := p.loopBody()
	if err != nil {
		return nil, err
	}
	return &UntilNode{span: span{start, end}, Cond: cond, Body: body, IsBlock: isBlock}, nil
}

// loopBody parses the body of a from/until loop after `then`: a NEWL
// selects the block form (terminated by `just`), otherwise a single
// inline statement.
func (p *Parser) loopBody() (Node, bool, position.Position, *errors.LibraError) {
	if p.curIsNewl() {
		p.advance()
		start := p.Cur.PosStart
		stmts, err := p.statements(func() bool { return p.curIsKeyword("just") })
		if err != nil {
			return nil, false, position.Position{}, err
		}
		body := &ListNode{span: span{start, p.Cur.PosEnd}, Elements: stmts}
		if jerr := p.expectKeyword("just"); jerr != nil {
			return nil, false, position.Position{}, jerr
		}
		return body, true, p.Cur.PosEnd, nil
	}
	body, err := p.statement()
	if err != nil {
		return nil, false, position.Position{}, err
	}
	return body, false, body.End(), nil
}
