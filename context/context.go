// Package context - context.go
// Context is a traceback frame: a display name, a link to the calling
// frame, and the position of the call site in the parent. Unlike
// environment.SymbolTable (which holds bindings), Context exists purely to
// render a runtime error's call stack.
/*
File    : libra/context/context.go
*/
package context

import "github.com/akashmaji946/libra/position"

// Context is one frame of a call stack, used only when constructing a
// runtime error's traceback.
type Context struct {
	DisplayName    string
	Parent         *Context
	ParentEntryPos position.Position
}

// NewContext builds a Context. parent may be nil for the program's
// top-level context (conventionally named "<program>").
func NewContext(displayName string, parent *Context, parentEntryPos position.Position) *Context {
	return &Context{DisplayName: displayName, Parent: parent, ParentEntryPos: parentEntryPos}
}
