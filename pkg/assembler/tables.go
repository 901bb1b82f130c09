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

import "strings"

var computations = map[string]Computation{
	"0":   {0, 0b101010},
	"1":   {0, 0b111111},
	"-1":  {0, 0b111010},
	"D":   {0, 0b001100},
	"A":   {0, 0b110000},
	"!D":  {0, 0b001101},
	"!A":  {0, 0b110001},
	"-D":  {0, 0b001111},
	"-A":  {0, 0b110011},
	"D+1": {0, 0b011111},
	"A+1": {0, 0b110111},
	"D-1": {0, 0b001110},
	"A-1": {0, 0b110010},
	"D+A": {0, 0b000010},
	"D-A": {0, 0b010011},
	"A-D": {0, 0b000111},
	"D&A": {0, 0b000000},
	"D|A": {0, 0b010101},
	"M":   {1, 0b110000},
	"!M":  {1, 0b110001},
	"-M":  {1, 0b110011},
	"M+1": {1, 0b110111},
	"M-1": {1, 0b110010},
	"D+M": {1, 0b000010},
	"D-M": {1, 0b010011},
	"M-D": {1, 0b000111},
	"D&M": {1, 0b000000},
	"D|M": {1, 0b010101},
}

var destinations = map[string]uint16{
	"":    0b000,
	"M":   0b001,
	"D":   0b010,
	"MD":  0b011,
	"A":   0b100,
	"AM":  0b101,
	"AD":  0b110,
	"AMD": 0b111,
}

var jumps = map[string]uint16{
	"":    0b000,
	"JGT": 0b001,
	"JEQ": 0b010,
	"JGE": 0b011,
	"JLT": 0b100,
	"JNE": 0b101,
	"JLE": 0b110,
	"JMP": 0b111,
}

var predefined = map[string]int{
	"SP":     0,
	"LCL":    1,
	"ARG":    2,
	"THIS":   3,
	"THAT":   4,
	"R0":     0,
	"R1":     1,
	"R2":     2,
	"R3":     3,
	"R4":     4,
	"R5":     5,
	"R6":     6,
	"R7":     7,
	"R8":     8,
	"R9":     9,
	"R10":    10,
	"R11":    11,
	"R12":    12,
	"R13":    13,
	"R14":    14,
	"R15":    15,
	"SCREEN": ADDRESS_SCREEN,
	"KBD":    ADDRESS_KEYBOARD,
}

func parseComputation(ident string) (Computation, bool) {
	comp, ok := computations[ident]
	return comp, ok
}

// Destinations may list their registers in any order, e.g. DM == MD
func parseDestination(ident string) (uint16, bool) {
	var bits uint16

	for _, char := range ident {
		var bit uint16

		switch char {
		case 'A':
			bit = DEST_A
		case 'M':
			bit = DEST_M
		case 'D':
			bit = DEST_D
		default:
			return 0, false
		}

		if bits&bit != 0 {
			return 0, false
		}

		bits |= bit
	}

	var builder strings.Builder

	if bits&DEST_A != 0 {
		builder.WriteByte('A')
	}

	if bits&DEST_M != 0 {
		builder.WriteByte('M')
	}

	if bits&DEST_D != 0 {
		builder.WriteByte('D')
	}

	dest, ok := destinations[builder.String()]
	return dest, ok
}

func parseJump(ident string) (uint16, bool) {
	jump, ok := jumps[ident]
	return jump, ok
}
