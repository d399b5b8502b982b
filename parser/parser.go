// Package parser - parser.go
// Parser core: token cursor and the speculative-parse snapshot/restore
// primitive. Per spec.md §9's re-architecture guidance, speculative
// parsing is implemented as an index snapshot/restore around a production
// rather than the reference implementation's ParseResult.try_register
// fold; this intentionally does not reuse the teacher's own Pratt-style
// parser/parser.go (token->parseFunc maps), since spec.md §4.2 specifies
// an explicit precedence-function ladder instead.
/*
File    : libra/parser/parser.go
*/
package parser

import (
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/lexer"
)

// Parser walks a fixed token slice with one-token lookahead via Cur.
type Parser struct {
	FileName string
	Tokens   []lexer.Token
	Idx      int
	Cur      lexer.Token
}

// NewParser builds a Parser positioned at the first token.
func NewParser(fileName string, tokens []lexer.Token) *Parser {
	p := &Parser{FileName: fileName, Tokens: tokens, Idx: -1}
	p.advance()
	return p
}

func (p *Parser) advance() lexer.Token {
	p.Idx++
	if p.Idx < len(p.Tokens) {
		p.Cur = p.Tokens[p.Idx]
	}
	return p.Cur
}

// mark / reset implement the snapshot/restore speculative-parse protocol:
// a production attempts itself, and on failure the caller resets back to
// the mark instead of re-lexing or folding a parse-result chain.
func (p *Parser) mark() int { return p.Idx }

func (p *Parser) reset(idx int) {
	p.Idx = idx
	p.Cur = p.Tokens[p.Idx]
}

func (p *Parser) atEOF() bool { return p.Cur.Kind == lexer.EOF }

func (p *Parser) curIsNewl() bool { return p.Cur.Kind == lexer.NEWL }

func (p *Parser) curIsKeyword(kw string) bool { return p.Cur.Matches(lexer.KEYWORD, kw) }

// expect advances past Cur if it matches kind, else returns an
// InvalidSyntaxError naming what was expected.
func (p *Parser) expect(kind lexer.TokenKind, expected string) (lexer.Token, *errors.LibraError) {
	if p.Cur.Kind != kind {
		return lexer.Token{}, errors.InvalidSyntaxError(p.Cur.PosStart, p.Cur.PosEnd, "Expected "+expected)
	}
	tok := p.Cur
	p.advance()
	return tok, nil
}

func (p *Parser) expectKeyword(kw string) *errors.LibraError {
	if !p.curIsKeyword(kw) {
		return errors.InvalidSyntaxError(p.Cur.PosStart, p.Cur.PosEnd, "Expected '"+kw+"'")
	}
	p.advance()
	return nil
}

// skipNewlines consumes zero or more NEWL tokens.
func (p *Parser) skipNewlines() {
	for p.curIsNewl() {
		p.advance()
	}
}

// Parse parses the whole token stream and returns the root List node (one
// statement-result per top-level statement), or the first syntax error.
func (p *Parser) Parse() (Node, *errors.LibraError) {
	start := p.Cur.PosStart
	stmts, err := p.statements(func() bool { return p.atEOF() })
	if err != nil {
		return nil, err
	}
	if !p.atEOF() {
		return nil, errors.InvalidSyntaxError(p.Cur.PosStart, p.Cur.PosEnd,
			"Expected '+', '-', '*', '/' or an operator")
	}
	return &ListNode{span: span{start, p.Cur.PosEnd}, Elements: stmts}, nil
}
