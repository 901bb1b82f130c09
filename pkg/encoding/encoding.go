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

package encoding

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

const WORD_BITS = 16

// Decodes an unsigned base-10 string in the format: 123
func DecodeDecimal(s string) (int, error) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	}) != -1 {
		return 0, errors.New("Invalid decimal string")
	}

	result, err := strconv.ParseUint(s, 10, 31)

	if err != nil {
		return 0, err
	}

	return int(result), nil
}

// Encodes a word as a 16 character string of '0' and '1', MSB first
func EncodeWord(value uint16) string {
	s := strconv.FormatUint(uint64(value), 2)

	return strings.Repeat("0", WORD_BITS-len(s)) + s
}

// Decodes a 16 character string of '0' and '1', MSB first
func DecodeWord(s string) (uint16, error) {
	if len(s) != WORD_BITS {
		return 0, errors.New("Invalid word length")
	}

	result, err := strconv.ParseUint(s, 2, WORD_BITS)

	if err != nil {
		return 0, err
	}

	return uint16(result), nil
}

// Writes each word on its own newline-terminated line
func WriteWords(w io.Writer, words []uint16) error {
	writer := bufio.NewWriter(w)

	for _, word := range words {
		if _, err := writer.WriteString(EncodeWord(word)); err != nil {
			return err
		}

		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}

	return writer.Flush()
}
