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

const (
	LINE_BLANK LineType = iota
	LINE_COMMENT
	LINE_LABEL
	LINE_INSTRUCTION
)

const (
	FIELD_DEST FieldType = iota
	FIELD_COMP
	FIELD_JUMP
)

const (
	COMMENT_MARKER = '/'
	LABEL_OPEN     = '('
	LABEL_CLOSE    = ')'
	ADDRESS_PREFIX = '@'
	DEST_SEPARATOR = '='
	JUMP_SEPARATOR = ';'
)

const (
	ADDRESS_BITS     = 15
	ADDRESS_MAX      = 1<<ADDRESS_BITS - 1
	COMPUTE_PREFIX   = 0b111 << 13
	VARIABLE_BASE    = 16
	ADDRESS_SCREEN   = 0x4000
	ADDRESS_KEYBOARD = 0x6000
)

// Destination register bits
const (
	DEST_M uint16 = 1 << iota
	DEST_D
	DEST_A
)
