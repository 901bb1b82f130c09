// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package assembler

// Maps symbols to RAM/ROM addresses for a single translation. Labels are
// bound during the first pass, variables are allocated during the second.
type SymTable struct {
	Symbols map[string]int

	// Next free variable address
	Next int
}

func NewSymTable() *SymTable {
	symtable := &SymTable{
		Symbols: make(map[string]int, len(predefined)),
		Next:    VARIABLE_BASE,
	}

	for symbol, addr := range predefined {
		symtable.Symbols[symbol] = addr
	}

	return symtable
}

func (st *SymTable) Lookup(symbol string) (int, bool) {
	addr, exists := st.Symbols[symbol]
	return addr, exists
}

// Binds a label, replacing any earlier binding of the same name
func (st *SymTable) Bind(symbol string, addr int) {
	st.Symbols[symbol] = addr
}

// Returns the address of symbol, allocating the next free variable
// address if it has not been seen before
func (st *SymTable) Resolve(symbol string) int {
	if addr, exists := st.Symbols[symbol]; exists {
		return addr
	}

	for st.Next == ADDRESS_SCREEN || st.Next == ADDRESS_KEYBOARD {
		st.Next++
	}

	addr := st.Next
	st.Symbols[symbol] = addr
	st.Next++

	return addr
}
