// This file is part of os9rof.
//
// os9rof is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// os9rof is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with os9rof.  If not, see <https://www.gnu.org/licenses/>.

package disassembly

import (
	"fmt"
	"strings"
)

// Entry is a single line of the disassembly.
type Entry struct {
	// offset of the entry from the start of the code section
	Offset uint32

	// the raw bytes of the entry. either one or two bytes long
	Bytes []byte

	// whether the bytes were decoded as an instruction
	Decoded bool

	// string representations of the entry. Operand will be empty for
	// instructions with no operands
	Label    string
	Address  string
	Bytecode string
	Operator string
	Operand  string

	// relocations affecting the bytes of this entry
	Notes []string
}

// dataDirective returns the assembler directive for data of the given width.
func dataDirective(n int) string {
	if n == 1 {
		return "dc.b"
	}
	return "dc.w"
}

func newEntry(offset uint32, b []byte, decoded string) *Entry {
	e := &Entry{
		Offset:   offset,
		Bytes:    b,
		Address:  fmt.Sprintf("%08X", offset),
		Bytecode: fmt.Sprintf("% x", b),
	}

	if decoded != "" {
		e.Decoded = true
		e.Operator, e.Operand, _ = strings.Cut(decoded, " ")
		return e
	}

	e.Operator = dataDirective(len(b))
	e.Operand = fmt.Sprintf("$%x", b)

	return e
}

// Contains returns true if the offset is one of the bytes of the entry.
func (e *Entry) Contains(offset uint32) bool {
	return offset >= e.Offset && offset < e.Offset+uint32(len(e.Bytes))
}

// String returns a very simple representation of the entry.
func (e *Entry) String() string {
	if e.Operand == "" {
		return e.Operator
	}
	return fmt.Sprintf("%s %s", e.Operator, e.Operand)
}
