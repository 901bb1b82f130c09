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

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lassandro/gohack/pkg/encoding"
)

type computeFields struct {
	Dest string
	Comp string
	Jump string
}

func parseCompute(line *Line) (fields computeFields, err error) {
	text := strings.Join(strings.Fields(line.Text), "")

	malformed := func(reason string) error {
		return &MalformedInstructionError{line.Position, line.Text, reason}
	}

	if strings.Count(text, string(DEST_SEPARATOR)) > 1 {
		return fields, malformed("multiple destinations")
	}

	if strings.Count(text, string(JUMP_SEPARATOR)) > 1 {
		return fields, malformed("multiple jumps")
	}

	dest := strings.IndexByte(text, DEST_SEPARATOR)
	jump := strings.IndexByte(text, JUMP_SEPARATOR)

	if dest != -1 && jump != -1 && dest > jump {
		return fields, malformed("destination follows jump")
	}

	if jump != -1 {
		fields.Jump = text[jump+1:]
		text = text[:jump]

		if fields.Jump == "" {
			return fields, malformed("missing jump")
		}
	}

	if dest != -1 {
		fields.Dest = text[:dest]
		text = text[dest+1:]

		if fields.Dest == "" {
			return fields, malformed("missing destination")
		}
	}

	if fields.Comp = text; fields.Comp == "" {
		return fields, malformed("missing computation")
	}

	return fields, nil
}

// 111a_cccc_ccdd_djjj
func encodeCompute(line *Line) (uint16, error) {
	fields, err := parseCompute(line)

	if err != nil {
		return 0, err
	}

	comp, ok := parseComputation(fields.Comp)

	if !ok {
		return 0, &UnknownMnemonicError{line.Position, FIELD_COMP, fields.Comp}
	}

	dest, ok := parseDestination(fields.Dest)

	if !ok {
		return 0, &UnknownMnemonicError{line.Position, FIELD_DEST, fields.Dest}
	}

	jump, ok := parseJump(fields.Jump)

	if !ok {
		return 0, &UnknownMnemonicError{line.Position, FIELD_JUMP, fields.Jump}
	}

	return COMPUTE_PREFIX | comp.A<<12 | comp.C<<6 | dest<<3 | jump, nil
}

// 0vvv_vvvv_vvvv_vvvv
func encodeAddress(line *Line, symtable *SymTable) (uint16, error) {
	operand := strings.TrimSpace(line.Text[1:])

	var addr int

	switch {
	case operand == "":
		return 0, &MalformedInstructionError{
			line.Position, line.Text, "missing address",
		}

	case operand[0] >= '0' && operand[0] <= '9':
		result, err := encoding.DecodeDecimal(operand)

		if errors.Is(err, strconv.ErrRange) {
			return 0, &AddressOverflowError{
				line.Position, ADDRESS_MAX, operand,
			}
		} else if err != nil {
			return 0, &MalformedInstructionError{
				line.Position, line.Text, "invalid decimal address",
			}
		}

		addr = result

	case isSymbol(operand):
		addr = symtable.Resolve(operand)

	default:
		return 0, &MalformedInstructionError{
			line.Position, line.Text, "invalid symbol",
		}
	}

	if addr > ADDRESS_MAX {
		return 0, &AddressOverflowError{line.Position, ADDRESS_MAX, addr}
	}

	return uint16(addr), nil
}

// Binds every label to the address of the instruction that follows it
func resolveLabels(lines []Line, symtable *SymTable) (errs []error) {
	var program int = 0

	for i := range lines {
		line := &lines[i]

		switch line.Type {
		case LINE_LABEL:
			label, ok := line.Label()

			if !ok {
				errs = append(errs, &MalformedInstructionError{
					line.Position, line.Text, "invalid label",
				})
				continue
			}

			symtable.Bind(label, program)

		case LINE_INSTRUCTION:
			program++
		}
	}

	return errs
}

func encodeInstructions(lines []Line, symtable *SymTable) (result []uint16, errs []error) {
	result = make([]uint16, 0, len(lines))

	for i := range lines {
		line := &lines[i]

		if line.Type != LINE_INSTRUCTION {
			continue
		}

		var word uint16
		var err error

		if line.Text[0] == ADDRESS_PREFIX {
			word, err = encodeAddress(line, symtable)
		} else {
			word, err = encodeCompute(line)
		}

		if err != nil {
			errs = append(errs, err)
			continue
		}

		result = append(result, word)
	}

	return result, errs
}

// Assembles Hack source into one word per instruction. A nil symtable is
// replaced by a fresh one. No words are returned if any error occurred.
func AssembleHackSource(input io.Reader, symtable *SymTable) (result []uint16, errs []error) {
	if symtable == nil {
		symtable = NewSymTable()
	}

	var lines []Line
	var scanner = bufio.NewScanner(input)

	for number := 1; scanner.Scan(); number++ {
		lines = append(lines, ClassifyLine(scanner.Text(), number))
	}

	if err := scanner.Err(); err != nil {
		return nil, []error{err}
	}

	// Every label must be bound before the second pass can resolve
	// forward references
	if errs = resolveLabels(lines, symtable); len(errs) > 0 {
		return nil, errs
	}

	if result, errs = encodeInstructions(lines, symtable); len(errs) > 0 {
		return nil, errs
	}

	return result, nil
}

func AssembleHackFile(path string, symtable *SymTable) (result []uint16, errs []error) {
	file, err := os.Open(path)

	if err != nil {
		return nil, []error{&InputNotFoundError{path, err}}
	}

	defer file.Close()

	if stat, err := file.Stat(); err != nil {
		return nil, []error{&InputNotFoundError{path, err}}
	} else if stat.IsDir() {
		return nil, []error{&InputNotFoundError{
			path, fmt.Errorf("%s is a directory", path),
		}}
	}

	return AssembleHackSource(file, symtable)
}
