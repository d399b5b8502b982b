// Package parser - parser_atoms.go
// atom production: literals, identifiers, parenthesized expressions,
// lists, and the introducers of if/from/until/fun (spec.md §4.2 item 10).
/*
File    : libra/parser/parser_atoms.go
*/
package parser

import (
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/lexer"
)

func (p *Parser) atom() (Node, *errors.LibraError) {
	tok := p.Cur

	switch {
	case tok.Kind == lexer.INT || tok.Kind == lexer.FLOAT:
		p.advance()
		return &NumberNode{span: span{tok.PosStart, tok.PosEnd}, Tok: tok}, nil

	case tok.Kind == lexer.STRING:
		p.advance()
		return &StringNode{span: span{tok.PosStart, tok.PosEnd}, Tok: tok}, nil

	case tok.Kind == lexer.IDENTIFIER:
		p.advance()
		name, _ := tok.Value.(string)
		return &VarAccessNode{span: span{tok.PosStart, tok.PosEnd}, Name: name}, nil

	case tok.Kind == lexer.LPAREN:
		p.advance()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return inner, nil

	case tok.Kind == lexer.LSQB:
		return p.listExpr()

	case tok.Matches(lexer.KEYWORD, "if"):
		return p.ifExpr()

	case tok.Matches(lexer.KEYWORD, "from"):
		return p.fromExpr()

	case tok.Matches(lexer.KEYWORD, "until"):
		return p.untilExpr()

	case tok.Matches(lexer.KEYWORD, "fun"):
		return p.funcDef()
	}

	return nil, errors.InvalidSyntaxError(tok.PosStart, tok.PosEnd,
		"Expected int, float, identifier, '+', '-', '(', '[', 'if', 'from', 'until' or 'fun'")
}

// listExpr parses `[ expr (, expr)* ]` (and the empty `[]`).
func (p *Parser) listExpr() (Node, *errors.LibraError) {
	start := p.Cur.PosStart
	p.advance() // '['
	var elems []Node
	if p.Cur.Kind != lexer.RSQB {
		first, err := p.expr()
		if err != nil {
			return nil, errors.InvalidSyntaxError(p.Cur.PosStart, p.Cur.PosEnd,
				"Expected ']', 'var', 'if', 'from', 'until', 'fun', int, float, identifier, '+', '-', '(', '[' or 'NOT'")
		}
		elems = append(elems, first)
		for p.Cur.Kind == lexer.COMMA {
			p.advance()
			el, err := p.expr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
		}
	}
	end, err := p.expect(lexer.RSQB, "']'")
	if err != nil {
		return nil, err
	}
	return &ListNode{span: span{start, end.PosEnd}, Elements: elems}, nil
}
