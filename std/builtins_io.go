// Package std - builtins_io.go
// print/print_ret/input/input_int/clear/clrscr (spec.md §6).
/*
File    : libra/std/builtins_io.go
*/
package std

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/position"
	"github.com/akashmaji946/libra/value"
)

func biPrint(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	fmt.Fprintln(rt.Writer(), args[0].ToString())
	return value.NewInt(0), nil
}

func biPrintRet(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	return value.NewString(args[0].ToString()), nil
}

func biInput(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	line, _ := rt.Reader().ReadString('\n')
	return value.NewString(strings.TrimRight(line, "\r\n")), nil
}

// biInputInt re-prompts until a line parses as an integer: each line that
// does not parse is discarded and an "Invalid input!" message is written.
// Once the input is exhausted it stops with a runtime error.
func biInputInt(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	for {
		line, err := rt.Reader().ReadString('\n')
		line = strings.TrimSpace(line)
		n, perr := strconv.ParseInt(line, 10, 64)
		if perr == nil {
			return value.NewInt(n), nil
		}
		fmt.Fprintln(rt.Writer(), "Invalid input! Must be an integer.")
		if err != nil {
			return nil, errors.RuntimeError(start, end, "input_int: no more input", ctx)
		}
	}
}

// biClear clears the terminal screen using the standard ANSI escape
// sequence; there is no real-terminal dependency in the pack for this, so
// it is written directly the same way the teacher's own demo code talks
// to the terminal.
func biClear(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	fmt.Fprint(rt.Writer(), "\033[H\033[2J")
	return value.NewInt(0), nil
}
