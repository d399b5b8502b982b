/*
File    : libra/std/std_test.go
*/
package std

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/akashmaji946/libra/errors"
	"github.com/akashmaji946/libra/position"
	"github.com/akashmaji946/libra/value"
	"github.com/stretchr/testify/assert"
)

// fakeRuntime is a minimal value.Runtime for exercising builtins in
// isolation, without a real Interpreter.
type fakeRuntime struct {
	out    bytes.Buffer
	reader *bufio.Reader
}

func newFakeRuntime(input string) *fakeRuntime {
	return &fakeRuntime{reader: bufio.NewReader(strings.NewReader(input))}
}

func (f *fakeRuntime) Writer() io.Writer                         { return &f.out }
func (f *fakeRuntime) Reader() *bufio.Reader                     { return f.reader }
func (f *fakeRuntime) Execute(string, string) *errors.LibraError { return nil }

func zeroPos() position.Position { return position.Position{} }

func TestBuiltinsRegistersFifteenEntries(t *testing.T) {
	assert.Len(t, Builtins(), 15)
}

func TestBiPrintWritesLineAndReturnsNull(t *testing.T) {
	rt := newFakeRuntime("")
	v, err := biPrint(rt, []value.Value{value.NewString("hi")}, zeroPos(), zeroPos(), nil)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), v.(*value.Number).IntVal)
	assert.Equal(t, "hi\n", rt.out.String())
}

func TestBiPrintRetReturnsStringOfValue(t *testing.T) {
	rt := newFakeRuntime("")
	v, err := biPrintRet(rt, []value.Value{value.NewInt(42)}, zeroPos(), zeroPos(), nil)
	assert.Nil(t, err)
	assert.Equal(t, "42", v.(*value.String).Value)
}

func TestBiInputTrimsNewline(t *testing.T) {
	rt := newFakeRuntime("hello\n")
	v, err := biInput(rt, nil, zeroPos(), zeroPos(), nil)
	assert.Nil(t, err)
	assert.Equal(t, "hello", v.(*value.String).Value)
}

func TestBiIsNumAndBiIsList(t *testing.T) {
	rt := newFakeRuntime("")
	n, _ := biIsNum(rt, []value.Value{value.NewInt(1)}, zeroPos(), zeroPos(), nil)
	assert.Equal(t, int64(1), n.(*value.Number).IntVal)

	l, _ := biIsList(rt, []value.Value{value.NewString("x")}, zeroPos(), zeroPos(), nil)
	assert.Equal(t, int64(0), l.(*value.Number).IntVal)
}

func TestBiAppendMutatesInPlace(t *testing.T) {
	rt := newFakeRuntime("")
	list := value.NewList([]value.Value{value.NewInt(1)})
	_, err := biAppend(rt, []value.Value{list, value.NewInt(2)}, zeroPos(), zeroPos(), nil)
	assert.Nil(t, err)
	assert.Len(t, *list.Elements, 2)
}

func TestBiAppendRejectsNonList(t *testing.T) {
	rt := newFakeRuntime("")
	_, err := biAppend(rt, []value.Value{value.NewInt(1), value.NewInt(2)}, zeroPos(), zeroPos(), nil)
	assert.NotNil(t, err)
}

func TestBiLenReportsElementCount(t *testing.T) {
	rt := newFakeRuntime("")
	list := value.NewList([]value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)})
	v, err := biLen(rt, []value.Value{list}, zeroPos(), zeroPos(), nil)
	assert.Nil(t, err)
	assert.Equal(t, int64(3), v.(*value.Number).IntVal)
}

func TestBiCcatConcatenatesLists(t *testing.T) {
	rt := newFakeRuntime("")
	a := value.NewList([]value.Value{value.NewInt(1)})
	b := value.NewList([]value.Value{value.NewInt(2), value.NewInt(3)})
	_, err := biCcat(rt, []value.Value{a, b}, zeroPos(), zeroPos(), nil)
	assert.Nil(t, err)
	assert.Len(t, *a.Elements, 3)
}
