// Package std - builtins_list.go
// append/pop/ccat/len (spec.md §6). All type mismatches identify the bad
// argument by position, matching spec.md §6's "all type mismatches in
// built-ins produce runtime errors identifying the bad argument".
/*
File    : libra/std/builtins_list.go
*/
package std

import (
	"github.com/akashmaji946/libra/context"
	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/position"
	"github.com/akashmaji946/libra/value"
)

func biAppend(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, errors.RuntimeError(start, end, "First argument must be a list", ctx)
	}
	list.Append(args[1])
	return value.NewInt(0), nil
}

func biPop(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, errors.RuntimeError(start, end, "First argument must be a list", ctx)
	}
	idx, ok := args[1].(*value.Number)
	if !ok {
		return nil, errors.RuntimeError(start, end, "Second argument must be a number", ctx)
	}
	return list.RemoveAt(idx.IntVal, start, end, ctx)
}

func biCcat(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	listA, ok := args[0].(*value.List)
	if !ok {
		return nil, errors.RuntimeError(start, end, "First argument must be a list", ctx)
	}
	listB, ok := args[1].(*value.List)
	if !ok {
		return nil, errors.RuntimeError(start, end, "Second argument must be a list", ctx)
	}
	listA.Extend(listB)
	return value.NewInt(0), nil
}

func biLen(rt value.Runtime, args []value.Value, start, end position.Position, ctx *context.Context) (value.Value, *errors.LibraError) {
	list, ok := args[0].(*value.List)
	if !ok {
		return nil, errors.RuntimeError(start, end, "Argument must be a list", ctx)
	}
	return value.NewInt(int64(len(*list.Elements))), nil
}
