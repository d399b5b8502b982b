/*
File    : libra/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/libra/lexer"
	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, src string) *ListNode {
	t.Helper()
	toks, lexErr := lexer.NewLexer("<test>", src).MakeTokens()
	assert.Nil(t, lexErr)
	root, err := NewParser("<test>", toks).Parse()
	assert.Nil(t, err)
	list, ok := root.(*ListNode)
	assert.True(t, ok)
	return list
}

func TestParseVarAssign(t *testing.T) {
	root := parse(t, "var a = 1 + 2")
	assert.Len(t, root.Elements, 1)
	assign, ok := root.Elements[0].(*VarAssignNode)
	assert.True(t, ok)
	assert.Equal(t, "a", assign.Name)
	_, ok = assign.Value.(*BinOpNode)
	assert.True(t, ok)
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	root := parse(t, "2 ^ 3 ^ 2")
	bin, ok := root.Elements[0].(*BinOpNode)
	assert.True(t, ok)
	_, ok = bin.Right.(*BinOpNode)
	assert.True(t, ok, "right operand of the outer ^ should itself be a ^ node")
}

func TestParseInlineFuncDef(t *testing.T) {
	root := parse(t, "fun add(a, b) :: a + b")
	fn, ok := root.Elements[0].(*FuncDefNode)
	assert.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
	assert.True(t, fn.AutoReturn)
}

func TestParseBlockFuncDef(t *testing.T) {
	root := parse(t, "fun f(x)\nret x\njust")
	fn, ok := root.Elements[0].(*FuncDefNode)
	assert.True(t, ok)
	assert.False(t, fn.AutoReturn)
}

func TestParseIfElsifElseSingleJust(t *testing.T) {
	root := parse(t, "if a then\nret 1\nelsif b then\nret 2\nelse\nret 3\njust")
	ifNode, ok := root.Elements[0].(*IfNode)
	assert.True(t, ok)
	assert.Len(t, ifNode.Cases, 2)
	assert.NotNil(t, ifNode.ElseBody)
}

func TestParseFromLoop(t *testing.T) {
	root := parse(t, "from i = 0 to 5 then i*i")
	from, ok := root.Elements[0].(*FromNode)
	assert.True(t, ok)
	assert.Equal(t, "i", from.VarName)
	assert.False(t, from.IsBlock)
}

func TestParseUntilLoop(t *testing.T) {
	root := parse(t, "until 1 == 1 then brk")
	until, ok := root.Elements[0].(*UntilNode)
	assert.True(t, ok)
	assert.False(t, until.IsBlock)
	_, ok = until.Body.(*BrkNode)
	assert.True(t, ok)
}

func TestParseCallWithArgs(t *testing.T) {
	root := parse(t, "fact(5)")
	call, ok := root.Elements[0].(*CallNode)
	assert.True(t, ok)
	assert.Len(t, call.Args, 1)
}

func TestParseListLiteral(t *testing.T) {
	root := parse(t, "[1, 2, 3]")
	list, ok := root.Elements[0].(*ListNode)
	assert.True(t, ok)
	assert.Len(t, list.Elements, 3)
}

func TestParseRetWithoutValue(t *testing.T) {
	root := parse(t, "fun f()\nret\njust")
	fn := root.Elements[0].(*FuncDefNode)
	body := fn.Body.(*ListNode)
	retNode, ok := body.Elements[0].(*RetNode)
	assert.True(t, ok)
	assert.Nil(t, retNode.Value)
}

func TestParseInvalidSyntaxReportsError(t *testing.T) {
	toks, lexErr := lexer.NewLexer("<test>", "var = 1").MakeTokens()
	assert.Nil(t, lexErr)
	_, err := NewParser("<test>", toks).Parse()
	assert.NotNil(t, err)
	assert.Equal(t, "Invalid Syntax", err.Name)
}
