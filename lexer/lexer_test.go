/*
File    : libra/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []TokenKind {
	out := make([]TokenKind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestMakeTokensArithmetic(t *testing.T) {
	toks, err := NewLexer("<test>", "1 + 2.5 * 3").MakeTokens()
	assert.Nil(t, err)
	assert.Equal(t, []TokenKind{INT, PLUS, FLOAT, MUL, INT, EOF}, kinds(toks))
	assert.Equal(t, int64(1), toks[0].Value)
	assert.Equal(t, 2.5, toks[2].Value)
}

func TestMakeTokensNewlinesAndSemicolons(t *testing.T) {
	toks, err := NewLexer("<test>", "var a = 1\nvar b = 2; var c = 3").MakeTokens()
	assert.Nil(t, err)
	var newls int
	for _, k := range kinds(toks) {
		if k == NEWL {
			newls++
		}
	}
	assert.Equal(t, 2, newls)
}

func TestMakeTokensComment(t *testing.T) {
	toks, err := NewLexer("<test>", "1 !! this is a comment\n2").MakeTokens()
	assert.Nil(t, err)
	assert.Equal(t, []TokenKind{INT, NEWL, INT, EOF}, kinds(toks))
}

func TestMakeTokensString(t *testing.T) {
	toks, err := NewLexer("<test>", `"hello\nworld"`).MakeTokens()
	assert.Nil(t, err)
	assert.Equal(t, STRING, toks[0].Kind)
	assert.Equal(t, "hello\nworld", toks[0].Value)
}

func TestMakeTokensKeywordsAndIdentifiers(t *testing.T) {
	toks, err := NewLexer("<test>", "var fun_name").MakeTokens()
	assert.Nil(t, err)
	assert.Equal(t, KEYWORD, toks[0].Kind)
	assert.Equal(t, IDENTIFIER, toks[1].Kind)
	assert.Equal(t, "fun_name", toks[1].Value)
}

func TestMakeTokensDoubleColon(t *testing.T) {
	toks, err := NewLexer("<test>", "fun f(x) :: x").MakeTokens()
	assert.Nil(t, err)
	assert.Contains(t, kinds(toks), COLON)
}

func TestMakeTokensComparisonOperators(t *testing.T) {
	toks, err := NewLexer("<test>", "a == b != c <= d >= e").MakeTokens()
	assert.Nil(t, err)
	assert.Equal(t, []TokenKind{IDENTIFIER, EE, IDENTIFIER, NE, IDENTIFIER, LTE, IDENTIFIER, GTE, IDENTIFIER, EOF}, kinds(toks))
}

func TestMakeTokensLoneColonIsIllegal(t *testing.T) {
	_, err := NewLexer("<test>", ":").MakeTokens()
	assert.NotNil(t, err)
	assert.Equal(t, "Illegal Character", err.Name)
}

func TestMakeTokensLoneBangRequiresEquals(t *testing.T) {
	_, err := NewLexer("<test>", "!").MakeTokens()
	assert.NotNil(t, err)
	assert.Equal(t, "Expected Character", err.Name)
}

func TestMakeTokensIllegalCharacter(t *testing.T) {
	_, err := NewLexer("<test>", "@").MakeTokens()
	assert.NotNil(t, err)
	assert.Equal(t, "Illegal Character", err.Name)
}
