// Package environment - environment.go
// SymbolTable is a lexically-scoped mapping from identifier name to value,
// chained to an optional parent scope. Structurally grounded on the
// teacher's scope.Scope (Variables map + Parent pointer, NewScope, LookUp);
// Set deliberately does NOT walk the parent chain the way the teacher's
// Scope.Assign does — spec.md requires `set` to write only the current
// table, with no shadowing promotion.
/*
File    : libra/environment/environment.go
*/
package environment

import "github.com/akashmaji946/libra/value"

// SymbolTable is one scope of name-to-value bindings.
type SymbolTable struct {
	Variables map[string]value.Value
	Parent    *SymbolTable
}

// NewSymbolTable builds an empty table chained to parent (nil for the
// process-wide global table).
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{Variables: make(map[string]value.Value), Parent: parent}
}

// Get walks the parent chain until the name is found or the chain is
// exhausted.
func (s *SymbolTable) Get(name string) (value.Value, bool) {
	v, ok := s.Variables[name]
	if ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.Get(name)
	}
	return nil, false
}

// Set writes to the current table only, never the parent chain.
func (s *SymbolTable) Set(name string, v value.Value) {
	s.Variables[name] = v
}

// Remove deletes a binding from the current table only.
func (s *SymbolTable) Remove(name string) {
	delete(s.Variables, name)
}
