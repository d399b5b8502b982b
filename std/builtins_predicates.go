// Package std - builtins_predicates.go
// isnum/isstr/islist/isfun type predicates (spec.md §6).
/*
File    : libra/std/builtins_predicates.go
*/
package std

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/position"
	"github.com/akashmaji946/libra/value"
)

func boolValue(b bool) value.Value {
	if b {
		return value.NewInt(1)
	}
	return value.NewInt(0)
}

func biIsNum(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	return boolValue(args[0].Kind() == value.NumberKind), nil
}

func biIsStr(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	return boolValue(args[0].Kind() == value.StringKind), nil
}

func biIsList(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	return boolValue(args[0].Kind() == value.ListKind), nil
}

// biIsFun is true for both user-defined and built-in functions.
func biIsFun(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	k := args[0].Kind()
	return boolValue(k == value.FunctionKind || k == value.BuiltinKind), nil
}
