/*
File    : libra/environment/environment_test.go
*/
package environment

import (
	"testing"

	"github.com/akashmaji946/libra/value"
	"github.com/stretchr/testify/assert"
)

func TestGetWalksParentChain(t *testing.T) {
	parent := NewSymbolTable(nil)
	parent.Set("a", value.NewInt(1))
	child := NewSymbolTable(parent)

	v, ok := child.Get("a")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(*value.Number).IntVal)
}

func TestGetMissingNameFails(t *testing.T) {
	table := NewSymbolTable(nil)
	_, ok := table.Get("missing")
	assert.False(t, ok)
}

func TestSetDoesNotPromoteToParent(t *testing.T) {
	parent := NewSymbolTable(nil)
	parent.Set("a", value.NewInt(1))
	child := NewSymbolTable(parent)

	child.Set("a", value.NewInt(2))

	childVal, _ := child.Get("a")
	parentVal, _ := parent.Get("a")
	assert.Equal(t, int64(2), childVal.(*value.Number).IntVal)
	assert.Equal(t, int64(1), parentVal.(*value.Number).IntVal, "Set must never write through to a parent table")
}

func TestRemoveOnlyAffectsCurrentTable(t *testing.T) {
	table := NewSymbolTable(nil)
	table.Set("a", value.NewInt(1))
	table.Remove("a")
	_, ok := table.Get("a")
	assert.False(t, ok)

	parent := NewSymbolTable(nil)
	parent.Set("b", value.NewInt(1))
	child := NewSymbolTable(parent)
	child.Remove("b")
	_, ok = parent.Get("b")
	assert.True(t, ok, "Remove on a child table must not delete the parent's binding")
}
