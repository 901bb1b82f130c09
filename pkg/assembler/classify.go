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
	"strings"
	"unicode"
)

// Classifies a raw source line. Instruction lines have their inline
// comment and surrounding whitespace removed.
func ClassifyLine(raw string, line int) Line {
	var result Line
	result.Position.Line = line

	start := strings.IndexFunc(raw, func(r rune) bool {
		return !unicode.IsSpace(r)
	})

	if start == -1 {
		result.Type = LINE_BLANK
		return result
	}

	if raw[start] == COMMENT_MARKER {
		result.Type = LINE_COMMENT
		return result
	}

	text := raw[start:]

	if i := strings.IndexByte(text, COMMENT_MARKER); i != -1 {
		text = text[:i]
	}

	text = strings.TrimRightFunc(text, unicode.IsSpace)

	if text[0] == LABEL_OPEN {
		result.Type = LINE_LABEL
	} else {
		result.Type = LINE_INSTRUCTION
	}

	result.Text = text
	result.Position.Column = start + 1
	result.Position.Size = len(text)

	return result
}

// Returns the text between the parentheses of a label line and whether
// the line holds exactly one well formed label
func (l Line) Label() (string, bool) {
	if l.Type != LINE_LABEL || len(l.Text) < 2 {
		return "", false
	}

	if l.Text[len(l.Text)-1] != LABEL_CLOSE {
		return "", false
	}

	label := l.Text[1 : len(l.Text)-1]

	if !isSymbol(label) {
		return label, false
	}

	return label, true
}

// Symbols are letters, digits, '_', '.', '$' and ':', not starting with
// a digit
func isSymbol(s string) bool {
	if s == "" {
		return false
	}

	for i, char := range s {
		switch {
		case char >= 'a' && char <= 'z', char >= 'A' && char <= 'Z':
		case char == '_', char == '.', char == '$', char == ':':
		case char >= '0' && char <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}
