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
	"fmt"
)

type LineType uint
type FieldType uint

type Cursor struct {
	Line   int
	Column int
	Size   int
}

type Line struct {
	Type     LineType
	Text     string
	Position Cursor
}

type Computation struct {
	A uint16
	C uint16
}

func (field FieldType) String() string {
	switch field {
	case FIELD_DEST:
		return "destination"
	case FIELD_COMP:
		return "computation"
	case FIELD_JUMP:
		return "jump"
	}

	return "<invalid>"
}

// Implemented by every error tied to a position in the source
type EncodingError interface {
	error
	GetPosition() Cursor
}

type InputNotFoundError struct {
	Path string
	Err  error
}

func (err *InputNotFoundError) Error() string {
	return fmt.Sprintf("Unable to read input '%s': %v", err.Path, err.Err)
}

func (err *InputNotFoundError) Unwrap() error {
	return err.Err
}

type MalformedInstructionError struct {
	Position Cursor
	Received string
	Reason   string
}

func (err *MalformedInstructionError) GetPosition() Cursor {
	return err.Position
}

func (err *MalformedInstructionError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Malformed instruction '%s': %s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
		err.Reason,
	)
}

type UnknownMnemonicError struct {
	Position Cursor
	Field    FieldType
	Received string
}

func (err *UnknownMnemonicError) GetPosition() Cursor {
	return err.Position
}

func (err *UnknownMnemonicError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown %s mnemonic '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Field,
		err.Received,
	)
}

type AddressOverflowError struct {
	Position Cursor
	Required int
	Received interface{}
}

func (err *AddressOverflowError) GetPosition() Cursor {
	return err.Position
}

func (err *AddressOverflowError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Address exceeds allowed size\n\twant:%d\n\thave:%v",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}
