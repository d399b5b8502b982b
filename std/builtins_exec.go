// Package std - builtins_exec.go
// exec (spec.md §6): opens and reads a file, then lexes, parses and
// evaluates its contents in the global environment. The only resource
// touched — the file handle — is opened, fully read and closed within
// file.ReadAll's single scoped call; nothing escapes it (spec.md §5).
/*
File    : libra/std/builtins_exec.go
*/
package std

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/file"
	"github.com/akashmaji946/libra/position"
	"github.com/akashmaji946/libra/value"
)

func biExec(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	fname, ok := args[0].(*value.String)
	if !ok {
		return nil, errors.RuntimeError(start, end, "Argument must be a string", ctx)
	}

	source, err := file.ReadAll(fname.Value)
	if err != nil {
		return nil, errors.RuntimeError(start, end, "Failed to load script \""+fname.Value+"\"\n"+err.Error(), ctx)
	}

	if rerr := rt.Execute(fname.Value, source); rerr != nil {
		return nil, errors.RuntimeError(start, end, "Failed to finish executing script \""+fname.Value+"\"\n"+rerr.Error(), ctx)
	}

	return value.NewInt(0), nil
}
