// Package errors - errors.go
// The four closed error kinds produced by the Libra pipeline: Illegal
// Character and Expected Character (lexer), Invalid Syntax (parser), and
// Runtime Error (interpreter). Each carries the originating span; Runtime
// Error additionally carries the active call context for traceback
// rendering.
/*
File    : libra/errors/errors.go
*/
package errors

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/position"
)

// LibraError is the common shape of all four error kinds.
type LibraError struct {
	PosStart position.Position
	PosEnd   position.Position
	Name     string
	Details  string
	Ctx      *context.Context // nil for lexer/parser errors
}

func (e *LibraError) Error() string {
	if e.Ctx != nil {
		return e.traceback() + fmt.Sprintf("%s: %s", e.Name, e.Details)
	}
	header := fmt.Sprintf("%s: %s\n", e.Name, e.Details)
	location := fmt.Sprintf("File %s, line %d", e.PosStart.FileName, e.PosStart.Line+1)
	return header + location
}

// traceback renders "Traceback (most recent call last):" followed by one
// "File <name>, line <n>, in <context-name>" line per frame, parent-first.
func (e *LibraError) traceback() string {
	var b strings.Builder
	var frames []string
	pos := e.PosStart
	ctx := e.Ctx
	for ctx != nil {
		frames = append(frames, fmt.Sprintf("  File %s, line %d, in %s", pos.FileName, pos.Line+1, ctx.DisplayName))
		pos = ctx.ParentEntryPos
		ctx = ctx.Parent
	}
	b.WriteString("Traceback (most recent call last):\n")
	for i := len(frames) - 1; i >= 0; i-- {
		b.WriteString(frames[i])
		b.WriteString("\n")
	}
	return b.String()
}

// IllegalCharError — lexer: an unrecognized character.
func IllegalCharError(start, end position.Position, details string) *LibraError {
	return &LibraError{PosStart: start, PosEnd: end, Name: "Illegal Character", Details: details}
}

// ExpectedCharError — lexer: a required character was missing.
func ExpectedCharError(start, end position.Position, details string) *LibraError {
	return &LibraError{PosStart: start, PosEnd: end, Name: "Expected Character", Details: details}
}

// InvalidSyntaxError — parser: token stream cannot continue a production.
func InvalidSyntaxError(start, end position.Position, details string) *LibraError {
	return &LibraError{PosStart: start, PosEnd: end, Name: "Invalid Syntax", Details: details}
}

// RuntimeError — interpreter: evaluation failure, carries the active context.
func RuntimeError(start, end position.Position, details string, ctx *context.Context) *LibraError {
	return &LibraError{PosStart: start, PosEnd: end, Name: "Runtime Error", Details: details, Ctx: ctx}
}
