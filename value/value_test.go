/*
File    : libra/value/value_test.go
*/
package value

import (
	"testing"

	"github.com/akashmaji946/libra/position"
	"github.com/stretchr/testify/assert"
)

func pos() position.Position { return position.Position{} }

func TestNumberArithmeticWidensToFloat(t *testing.T) {
	sum := NewInt(2).AddedTo(NewFloat(0.5))
	assert.True(t, sum.IsFloat)
	assert.Equal(t, 2.5, sum.FltVal)
}

func TestNumberDivisionAlwaysFloat(t *testing.T) {
	q, err := NewInt(4).DividedBy(NewInt(2), pos(), pos(), nil)
	assert.Nil(t, err)
	assert.True(t, q.IsFloat)
	assert.Equal(t, 2.0, q.FltVal)
}

func TestNumberDivisionByZero(t *testing.T) {
	_, err := NewInt(1).DividedBy(NewInt(0), pos(), pos(), nil)
	assert.NotNil(t, err)
	assert.Equal(t, "Division by zero", err.Details)
}

func TestNumberPowerIntegerExponent(t *testing.T) {
	p := NewInt(2).PowerOf(NewInt(3))
	assert.False(t, p.IsFloat)
	assert.Equal(t, int64(8), p.IntVal)
}

func TestNumberPowerFractionalExponent(t *testing.T) {
	p := NewInt(4).PowerOf(NewFloat(0.5))
	assert.True(t, p.IsFloat)
	assert.Equal(t, 2.0, p.FltVal)
}

func TestNumberModuloNegativeOperandFollowsDivisorSign(t *testing.T) {
	assert.Equal(t, int64(1), NewInt(-7).ModuloBy(NewInt(2)).IntVal)
	assert.Equal(t, 1.0, NewFloat(-7).ModuloBy(NewFloat(2)).FltVal)
}

func TestNumberIsTruthy(t *testing.T) {
	assert.False(t, NewInt(0).IsTruthy())
	assert.True(t, NewInt(1).IsTruthy())
	assert.False(t, NewFloat(0).IsTruthy())
}

func TestStringConcatAndRepeat(t *testing.T) {
	s := NewString("ab").AddedTo(NewString("cd"))
	assert.Equal(t, "abcd", s.Value)

	r := NewString("ab").MultipliedBy(NewInt(3))
	assert.Equal(t, "ababab", r.Value)
}

func TestListCopySharesBackingStorage(t *testing.T) {
	a := NewList([]Value{NewInt(1)})
	b := a.Copy()
	a.Append(NewInt(2))
	assert.Len(t, *b.Elements, 2, "mutating through one alias must be visible through the other")
}

func TestListRemoveAtOutOfBounds(t *testing.T) {
	l := NewList([]Value{NewInt(1)})
	_, err := l.RemoveAt(5, pos(), pos(), nil)
	assert.NotNil(t, err)
}

func TestListElementAtInBounds(t *testing.T) {
	l := NewList([]Value{NewInt(10), NewInt(20)})
	v, err := l.ElementAt(1, pos(), pos(), nil)
	assert.Nil(t, err)
	assert.Equal(t, int64(20), v.(*Number).IntVal)
}

func TestListIsAlwaysTruthy(t *testing.T) {
	assert.True(t, NewList(nil).IsTruthy())
}
