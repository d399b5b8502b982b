// Package parser - parser_statements.go
// statements/statement productions (spec.md §4.2).
/*
File    : libra/parser/parser_statements.go
*/
package parser

import (
	"github.com/akashmaji946/libra/errors"
)

// statements parses zero or more statements separated by one or more NEWL,
// absorbing leading and trailing newlines, until end() reports true; it
// returns no statements when end() already holds after the leading newlines.
func (p *Parser) statements(end func() bool) ([]Node, *errors.LibraError) {
	var stmts []Node

	p.skipNewlines()
	if end() {
		return stmts, nil
	}

	first, err := p.statement()
	if err != nil {
		return nil, err
	}
	stmts = append(stmts, first)

	for {
		mark := p.mark()
		newlineCount := 0
		for p.curIsNewl() {
			p.advance()
			newlineCount++
		}
		if newlineCount == 0 || end() {
			break
		}
		next, err := p.statement()
		if err != nil {
			// Speculative: no further statement follows these newlines,
			// e.g. a trailing blank line before `just`/EOF. Undo the
			// newlines consumed this iteration and stop, matching
			// statements()'s absorb-then-try discipline.
			p.reset(mark)
			break
		}
		stmts = append(stmts, next)
	}

	return stmts, nil
}

// statement is `ret [expr]` | `cont` | `brk` | expr.
func (p *Parser) statement() (Node, *errors.LibraError) {
	start := p.Cur.PosStart

	if p.curIsKeyword("ret") {
		p.advance()
		mark := p.mark()
		if p.atEOF() || p.curIsNewl() || p.curIsKeyword("just") {
			return &RetNode{span: span{start, start}, Value: nil}, nil
		}
		value, err := p.expr()
		if err != nil {
			p.reset(mark)
			return &RetNode{span: span{start, start}, Value: nil}, nil
		}
		return &RetNode{span: span{start, value.End()}, Value: value}, nil
	}

	if p.curIsKeyword("cont") {
		p.advance()
		return &ContNode{span{start, start}}, nil
	}

	if p.curIsKeyword("brk") {
		p.advance()
		return &BrkNode{span{start, start}}, nil
	}

	return p.expr()
}
