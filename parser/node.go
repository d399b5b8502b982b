// Package parser - node.go
// The AST node set (spec.md §3). Nodes are tagged variants dispatched by
// the interpreter via a Go type-switch, not a visitor interface — matching
// the teacher's actual evaluator dispatch (a type-switch in
// evaluator_expressions.go) rather than its demo NodeVisitor, and matching
// spec.md §9's "tagged variants over dynamic dispatch" guidance.
/*
File    : libra/parser/node.go
*/
package parser

import (
	"github.com/akashmaji946/libra/lexer"
	"github.com/akashmaji946/libra/position"
)

// Node is implemented by every AST node; every node carries its span.
type Node interface {
	Start() position.Position
	End() position.Position
}

// span is embedded by every concrete node to satisfy Node.
type span struct {
	posStart position.Position
	posEnd   position.Position
}

func (s span) Start() position.Position { return s.posStart }
func (s span) End() position.Position   { return s.posEnd }

// NumberNode wraps an INT or FLOAT token.
type NumberNode struct {
	span
	Tok lexer.Token
}

// StringNode wraps a STRING token.
type StringNode struct {
	span
	Tok lexer.Token
}

// ListNode is an ordered sequence of element expressions, e.g. `[1, 2, 3]`.
type ListNode struct {
	span
	Elements []Node
}

// VarAccessNode reads an identifier.
type VarAccessNode struct {
	span
	Name string
}

// VarAssignNode binds Name to the value of Value in the current scope.
type VarAssignNode struct {
	span
	Name  string
	Value Node
}

// BinOpNode is `Left Op Right`; Op is either an operator token or a
// KEYWORD token (for AND/OR).
type BinOpNode struct {
	span
	Left  Node
	Op    lexer.Token
	Right Node
}

// UnaryOpNode is `Op Operand` (unary +, -, or NOT).
type UnaryOpNode struct {
	span
	Op      lexer.Token
	Operand Node
}

// IfCase is one (condition, body) arm of an If node.
type IfCase struct {
	Cond    Node
	Body    Node
	IsBlock bool
}

// IfNode is an if/elsif*/else? chain.
type IfNode struct {
	span
	Cases       []IfCase
	ElseBody    Node // nil if there is no else clause
	ElseIsBlock bool
}

// FromNode is a `from i = start to end [step step] then body` loop.
type FromNode struct {
	span
	VarName  string
	Start    Node
	End      Node
	Step     Node // nil: defaults to 1 at evaluation time
	Body     Node
	IsBlock  bool
}

// UntilNode is an `until cond then body` loop.
type UntilNode struct {
	span
	Cond    Node
	Body    Node
	IsBlock bool
}

// FuncDefNode is a `fun [name] ( params ) body` definition.
type FuncDefNode struct {
	span
	Name       string // "" for anonymous
	Params     []string
	Body       Node
	AutoReturn bool
}

// CallNode is `Callee ( args... )`.
type CallNode struct {
	span
	Callee Node
	Args   []Node
}

// RetNode is `ret [value]`.
type RetNode struct {
	span
	Value Node // nil if no expression follows
}

// ContNode is `cont`.
type ContNode struct{ span }

// BrkNode is `brk`.
type BrkNode struct{ span }
