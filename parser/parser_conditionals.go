// Package parser - parser_conditionals.go
// if/elsif/else chain (spec.md §4.2 "If-chain structure"). In block form,
// exactly one `just` terminates the entire chain; per-clause terminators
// do not exist.
/*
File    : libra/parser/parser_conditionals.go
*/
package parser

import (
	"github.com/akashmaji946/libra/errors"
)

func (p *Parser) ifExpr() (Node, *errors.LibraError) {
	start := p.Cur.PosStart
	if err := p.expectKeyword("if"); err != nil {
		return nil, err
	}

	var cases []IfCase
	firstCase, err := p.ifCaseCond()
	if err != nil {
		return nil, err
	}
	cases = append(cases, firstCase)

	allBlock := firstCase.IsBlock
	end := firstCase.Body.End()

	for p.curIsKeyword("elsif") {
		p.advance()
		c, err := p.ifCaseCond()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
		end = c.Body.End()
	}

	var elseBody Node
	elseIsBlock := false
	if p.curIsKeyword("else") {
		p.advance()
		if p.curIsNewl() {
			p.advance()
			stmts, err := p.statements(func() bool { return p.curIsKeyword("just") })
			if err != nil {
				return nil, err
			}
			elseBody = &ListNode{span: span{start, p.Cur.PosEnd}, Elements: stmts}
			elseIsBlock = true
		} else {
			elseBody, err = p.statement()
			if err != nil {
				return nil, err
			}
		}
		end = elseBody.End()
	}

	if allBlock || elseIsBlock {
		justErr := p.expectKeyword("just")
		if justErr != nil {
			return nil, justErr
		}
		end = p.Cur.PosEnd
	}

	return &IfNode{span: span{start, end}, Cases: cases, ElseBody: elseBody, ElseIsBlock: elseIsBlock}, nil
}

// ifCaseCond parses `cond then body`, choosing block vs inline form based
// on whether a NEWL immediately follows `then`. Block-form bodies are NOT
// individually terminated by `just` — only the whole chain is.
func (p *Parser) ifCaseCond() (IfCase, *errors.LibraError) {
	cond, err := p.expr()
	if err != nil {
		return IfCase{}, err
	}
	if err := p.expectKeyword("then"); err != nil {
		return IfCase{}, err
	}
	if p.curIsNewl() {
		p.advance()
		start := p.Cur.PosStart
		stmts, err := p.statements(func() bool {
			return p.curIsKeyword("just") || p.curIsKeyword("elsif") || p.curIsKeyword("else")
		})
		if err != nil {
			return IfCase{}, err
		}
		body := &ListNode{span: span{start, p.Cur.PosEnd}, Elements: stmts}
		return IfCase{Cond: cond, Body: body, IsBlock: true}, nil
	}
	body, err := p.statement()
	if err != nil {
		return IfCase{}, err
	}
	return IfCase{Cond: cond, Body: body, IsBlock: false}, nil
}
