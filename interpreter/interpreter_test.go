/*
File    : libra/interpreter/interpreter_test.go
*/
package interpreter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/akashmaji946/libra/value"
	"github.com/stretchr/testify/assert"
)

func runOK(t *testing.T, src string) (*value.List, string) {
	t.Helper()
	it := NewInterpreter()
	var out bytes.Buffer
	it.SetWriter(&out)
	result, err := it.Run("<test>", src)
	assert.Nil(t, err, "unexpected runtime error: %v", err)
	list, ok := result.(*value.List)
	assert.True(t, ok, "top-level result must be a List")
	return list, out.String()
}

// Scenario 1: print concatenates and writes to stdout; the top-level
// result list has one element, NULL (print's return value).
func TestEndToEndPrintConcatenation(t *testing.T) {
	list, out := runOK(t, `print("Hello"+" "+"World")`)
	assert.Equal(t, "Hello World\n", out)
	assert.Len(t, *list.Elements, 1)
	assert.Equal(t, int64(0), (*list.Elements)[0].(*value.Number).IntVal)
}

// Scenario 2: three top-level statements each contribute one element.
func TestEndToEndAssignmentsAndPower(t *testing.T) {
	list, _ := runOK(t, "var a = 2; var b = 3; a^b")
	elems := *list.Elements
	assert.Len(t, elems, 3)
	assert.Equal(t, int64(2), elems[0].(*value.Number).IntVal)
	assert.Equal(t, int64(3), elems[1].(*value.Number).IntVal)
	assert.Equal(t, int64(8), elems[2].(*value.Number).IntVal)
}

// Scenario 3: an inline `from` loop's result is itself a List of
// per-iteration values.
func TestEndToEndFromLoopCollectsSquares(t *testing.T) {
	list, _ := runOK(t, "from i = 0 to 5 then i*i")
	inner, ok := (*list.Elements)[0].(*value.List)
	assert.True(t, ok)
	var got []int64
	for _, e := range *inner.Elements {
		got = append(got, int64(e.(*value.Number).Float()))
	}
	assert.Equal(t, []int64{0, 1, 4, 9, 16}, got)
}

// Scenario 4: recursive factorial via an auto-return function definition.
func TestEndToEndRecursiveFactorial(t *testing.T) {
	list, _ := runOK(t, "fun fact(n) :: if n <= 1 then 1 else n * fact(n - 1); fact(5)")
	elems := *list.Elements
	last := elems[len(elems)-1].(*value.Number)
	assert.Equal(t, int64(120), int64(last.Float()))
}

// Scenario 5: append mutates the list in place; len observes the mutation
// through the SAME backing storage.
func TestEndToEndListAppendAndLen(t *testing.T) {
	list, _ := runOK(t, "var xs = [1,2,3]; append(xs, 4); len(xs)")
	elems := *list.Elements
	last := elems[len(elems)-1].(*value.Number)
	assert.Equal(t, int64(4), last.IntVal)
}

// Scenario 6: division by zero is a runtime error, not a panic.
func TestEndToEndDivisionByZeroIsRuntimeError(t *testing.T) {
	it := NewInterpreter()
	_, err := it.Run("<test>", "var d = 10 / 0")
	assert.NotNil(t, err)
	assert.Equal(t, "Division by zero", err.Details)
}

// Scenario 7: an until-loop whose condition is true from the start exits
// on the first iteration via brk, without ever appending an element.
func TestEndToEndUntilLoopImmediateBreak(t *testing.T) {
	list, _ := runOK(t, "until 1 == 1 then brk")
	inner, ok := (*list.Elements)[0].(*value.List)
	assert.True(t, ok)
	assert.Len(t, *inner.Elements, 0)
}

func TestClosuresCaptureEnvironmentByReference(t *testing.T) {
	list, _ := runOK(t, "var a = 1; fun g() :: a; var a = 2; g()")
	elems := *list.Elements
	last := elems[len(elems)-1].(*value.Number)
	assert.Equal(t, int64(2), last.IntVal, "captured scope is shared by reference, so g() observes the later rebinding")
}

// A brk executed inside a called function's body is NOT consumed at the
// call boundary: it leaks out of the call, through the statement that
// invoked it, and is caught by the ENCLOSING from-loop instead — stopping
// that loop after a single iteration instead of running all 3.
func TestBreakLeaksPastCallBoundaryIntoEnclosingLoop(t *testing.T) {
	src := "fun f()\nbrk\njust\nfrom i = 0 to 3 then\nf()\njust\ni"
	list, _ := runOK(t, src)
	elems := *list.Elements
	loopResult := elems[len(elems)-2]
	assert.Equal(t, int64(0), loopResult.(*value.Number).IntVal, "block-form from always yields NULL, regardless of how it ended")
	lastI := elems[len(elems)-1].(*value.Number)
	assert.Equal(t, 0.0, lastI.Float(), "the loop must stop after its first iteration, leaving i at 0")
}

// exec loads another script and evaluates it against the SAME global
// environment, so a variable it defines is visible to the caller
// afterwards.
func TestExecRunsScriptAgainstGlobalEnvironment(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lib.lb")
	assert.Nil(t, os.WriteFile(path, []byte("var fromLib = 99"), 0o644))

	it := NewInterpreter()
	var out bytes.Buffer
	it.SetWriter(&out)
	_, err := it.Run("<test>", `exec("`+filepath.ToSlash(path)+`")`)
	assert.Nil(t, err)

	v, ok := it.Global.Get("fromLib")
	assert.True(t, ok)
	assert.Equal(t, int64(99), v.(*value.Number).IntVal)
}

func TestExecMissingFileIsRuntimeError(t *testing.T) {
	it := NewInterpreter()
	_, err := it.Run("<test>", `exec("/nonexistent/path/to/script.lb")`)
	assert.NotNil(t, err)
}

// A non-integer (float) list index is out of bounds, not a silent index-0
// fallback: IntVal is the Go zero value on a float Number, so indexing with
// it instead of erroring would read the wrong element.
func TestListIndexWithFloatIsOutOfBoundsError(t *testing.T) {
	it := NewInterpreter()
	_, err := it.Run("<test>", "var xs = [10, 20, 30]; xs / 1.5")
	assert.NotNil(t, err)
	assert.Equal(t, "Element at this index could not be retrieved from list because index is out of bounds", err.Details)
}
