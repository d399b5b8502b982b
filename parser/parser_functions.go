// Package parser - parser_functions.go
// Function-definition production (spec.md §4.2 "Function definition").
/*
File    : libra/parser/parser_functions.go
*/
package parser

import (
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/lexer"
)

// funcDef parses `fun [name] ( [IDENT (, IDENT)*] ) ( : expr | NEWL statements just )`.
func (p *Parser) funcDef() (Node, *errors.LibraError) {
	start := p.Cur.PosStart
	if err := p.expectKeyword("fun"); err != nil {
		return nil, err
	}

	name := ""
	if p.Cur.Kind == lexer.IDENTIFIER {
		name, _ = p.Cur.Value.(string)
		p.advance()
	}

	if _, err := p.expect(lexer.LPAREN, "'('"); err != nil {
		return nil, err
	}

	var params []string
	if p.Cur.Kind == lexer.IDENTIFIER {
		pname, _ := p.Cur.Value.(string)
		params = append(params, pname)
		p.advance()
		for p.Cur.Kind == lexer.COMMA {
			p.advance()
			tok, err := p.expect(lexer.IDENTIFIER, "identifier")
			if err != nil {
				return nil, err
			}
			pname, _ := tok.Value.(string)
			params = append(params, pname)
		}
	}

	if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
		return nil, err
	}

	if p.Cur.Kind == lexer.COLON {
		p.advance()
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &FuncDefNode{span: span{start, body.End()}, Name: name, Params: params, Body: body, AutoReturn: true}, nil
	}

	if _, err := p.expect(lexer.NEWL, "':' or newline"); err != nil {
		return nil, err
	}
	bodyStart := p.Cur.PosStart
	stmts, err := p.statements(func() bool { return p.curIsKeyword("just") })
	if err != nil {
		return nil, err
	}
	body := &ListNode{span: span{bodyStart, p.Cur.PosEnd}, Elements: stmts}
	if jerr := p.expectKeyword("just"); jerr != nil {
		return nil, jerr
	}
	return &FuncDefNode{span: span{start, p.Cur.PosEnd}, Name: name, Params: params, Body: body, AutoReturn: false}, nil
}
