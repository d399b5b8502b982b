// Package std - std.go
// The closed built-in function registry (spec.md §6). Structurally
// grounded on the teacher's std/builtins.go (Builtin{Name,Callback},
// global registry slice); the registry itself is far smaller here since
// Libra's built-in set is closed, unlike GoMix's open, growing one.
/*
File    : libra/std/std.go
*/
package std

import "github.com/akashmaji946/libra/value"

// Builtins returns one fresh BuiltInFunction per entry in spec.md §6's
// table. Called once, at interpreter construction, to seed the global
// environment.
func Builtins() []*value.BuiltInFunction {
	return []*value.BuiltInFunction{
		value.NewBuiltInFunction("print", 1, biPrint),
		value.NewBuiltInFunction("print_ret", 1, biPrintRet),
		value.NewBuiltInFunction("input", 0, biInput),
		value.NewBuiltInFunction("input_int", 0, biInputInt),
		value.NewBuiltInFunction("clear", 0, biClear),
		value.NewBuiltInFunction("clrscr", 0, biClear),
		value.NewBuiltInFunction("isnum", 1, biIsNum),
		value.NewBuiltInFunction("isstr", 1, biIsStr),
		value.NewBuiltInFunction("islist", 1, biIsList),
		value.NewBuiltInFunction("isfun", 1, biIsFun),
		value.NewBuiltInFunction("append", 2, biAppend),
		value.NewBuiltInFunction("pop", 2, biPop),
		value.NewBuiltInFunction("ccat", 2, biCcat),
		value.NewBuiltInFunction("len", 1, biLen),
		value.NewBuiltInFunction("exec", 1, biExec),
	}
}
