package asm

import (
	"iter"
)

// SymbolTable maps normalized names to resolved integer values, either
// addresses or constants. A name may be bound more than once and the last
// write wins; the LABEL: / LABEL EQU n idiom depends on a later EQU
// replacing the label's address, so redefinition is not an error.
type SymbolTable struct {
	values map[string]int
	order  []string
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		values: make(map[string]int, 16),
	}
}

// Define binds name to value, silently overwriting any previous binding.
func (st *SymbolTable) Define(name string, value int) {
	key := Normalize(name)
	if _, ok := st.values[key]; !ok {
		st.order = append(st.order, key)
	}
	st.values[key] = value
}

// Lookup resolves a name. Matching is case-insensitive and ignores
// surrounding whitespace.
func (st *SymbolTable) Lookup(name string) (value int, ok bool) {
	value, ok = st.values[Normalize(name)]
	return
}

// Len is the number of defined symbols.
func (st *SymbolTable) Len() int {
	return len(st.values)
}

// All yields the symbols in definition order.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		for _, name := range st.order {
			if !yield(name, st.values[name]) {
				return
			}
		}
	}
}
