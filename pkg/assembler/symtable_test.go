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

package assembler_test

import (
	"testing"

	"github.com/k0kubun/pp/v3"

	"github.com/lassandro/gohack/pkg/assembler"
)

func TestSymTablePredefined(t *testing.T) {
	symtable := assembler.NewSymTable()

	want := map[string]int{
		"SP": 0, "LCL": 1, "ARG": 2, "THIS": 3, "THAT": 4,
		"R0": 0, "R1": 1, "R2": 2, "R3": 3, "R4": 4, "R5": 5,
		"R6": 6, "R7": 7, "R8": 8, "R9": 9, "R10": 10, "R11": 11,
		"R12": 12, "R13": 13, "R14": 14, "R15": 15,
		"SCREEN": 16384, "KBD": 24576,
	}

	if len(symtable.Symbols) != len(want) {
		t.Fatalf(
			"Invalid symtable size\nwant:%d\nhave:%s",
			len(want),
			pp.Sprint(symtable.Symbols),
		)
	}

	for symbol, addr := range want {
		if have, exists := symtable.Lookup(symbol); !exists || have != addr {
			t.Fatalf("%s\nwant:%d\nhave:%d", symbol, addr, have)
		}
	}

	if symtable.Next != assembler.VARIABLE_BASE {
		t.Fatalf("Next\nwant:%d\nhave:%d", assembler.VARIABLE_BASE, symtable.Next)
	}
}

func TestSymTableResolve(t *testing.T) {
	symtable := assembler.NewSymTable()

	for i, symbol := range []string{"x", "y", "x", "R3", "z", "y"} {
		want := []int{16, 17, 16, 3, 18, 17}[i]

		if have := symtable.Resolve(symbol); have != want {
			t.Fatalf(
				"Resolve(%q)\nwant:%d\nhave:%d\n%s",
				symbol,
				want,
				have,
				pp.Sprint(symtable.Symbols),
			)
		}
	}

	if symtable.Next != 19 {
		t.Fatalf("Next\nwant:19\nhave:%d", symtable.Next)
	}
}

func TestSymTableResolveSkipsReserved(t *testing.T) {
	symtable := assembler.NewSymTable()

	symtable.Next = assembler.ADDRESS_SCREEN
	if have := symtable.Resolve("a"); have != assembler.ADDRESS_SCREEN+1 {
		t.Fatalf("want:%d\nhave:%d", assembler.ADDRESS_SCREEN+1, have)
	}

	symtable.Next = assembler.ADDRESS_KEYBOARD
	if have := symtable.Resolve("b"); have != assembler.ADDRESS_KEYBOARD+1 {
		t.Fatalf("want:%d\nhave:%d", assembler.ADDRESS_KEYBOARD+1, have)
	}
}

func TestSymTableBind(t *testing.T) {
	symtable := assembler.NewSymTable()

	symtable.Bind("LOOP", 4)
	symtable.Bind("LOOP", 9)

	if have, _ := symtable.Lookup("LOOP"); have != 9 {
		t.Fatalf("want:9\nhave:%d", have)
	}

	if have := symtable.Resolve("LOOP"); have != 9 {
		t.Fatalf("want:9\nhave:%d", have)
	}

	if symtable.Next != assembler.VARIABLE_BASE {
		t.Fatalf("Bound label advanced the variable allocator to %d", symtable.Next)
	}

	if _, exists := assembler.NewSymTable().Lookup("LOOP"); exists {
		t.Fatal("Bindings leaked between symtables")
	}
}
