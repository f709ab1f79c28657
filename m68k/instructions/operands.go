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

package instructions

import (
	"fmt"

	"github.com/jetsetilly/os9rof/bitfield"
)

// InstructionSize is the size of the data the instruction operates on.
type InstructionSize int

// List of valid InstructionSize values.
const (
	Byte InstructionSize = iota
	Word
	Long
)

// String returns the size suffix used in mnemonics.
func (s InstructionSize) String() string {
	switch s {
	case Byte:
		return "B"
	case Word:
		return "W"
	case Long:
		return "L"
	}
	return "?"
}

// SizeSelector chooses the size of an instruction.
type SizeSelector interface {
	Size(word uint16) InstructionSize
}

// SizeBit selects the size from a single bit of the instruction word. A
// clear bit is Word and a set bit is Long.
//
// There is no way for SizeBit to select a Byte size.
type SizeBit struct {
	Bit uint
}

// Size implements the SizeSelector interface.
func (s SizeBit) Size(word uint16) InstructionSize {
	if bitfield.Bit(word, s.Bit) {
		return Long
	}
	return Word
}

// Extractor returns a value that is used to help decode an instruction.
type Extractor interface {
	Extract(word uint16) uint8
}

// Read extracts Len bits from the instruction word starting at bit Pos.
type Read struct {
	Pos uint
	Len uint
}

// Extract implements the Extractor interface.
func (r Read) Extract(word uint16) uint8 {
	return uint8(bitfield.Field(word, r.Pos, r.Len))
}

// Fixed is an Extractor that ignores the instruction word and always
// returns the same value.
type Fixed uint8

// Extract implements the Extractor interface.
func (f Fixed) Extract(_ uint16) uint8 {
	return uint8(f)
}

// EAReader decodes an effective address operand.
type EAReader struct {
	Mode    Extractor
	Reg     Extractor
	Allowed ModeList
}

// DefaultEAReader returns an EAReader for the standard placement of the
// effective address in the lowest six bits of the instruction word. The mode
// is in bits 3 to 5 and the register in bits 0 to 2.
func DefaultEAReader(allowed ModeList) EAReader {
	return EAReader{
		Mode:    Read{Pos: 3, Len: 3},
		Reg:     Read{Pos: 0, Len: 3},
		Allowed: allowed,
	}
}

// Parse the effective address in the instruction word. Returns the empty
// string if the addressing mode is not allowed.
func (ea EAReader) Parse(word uint16) string {
	return ea.Allowed.Render(ea.Mode.Extract(word), ea.Reg.Extract(word))
}

// OperandParser produces the operand text for an instruction. The text
// includes any size suffix and so is appended directly to the mnemonic.
type OperandParser interface {
	Parse(word uint16) string
}

// TwoArgs is an OperandParser for instructions with a size and a source and
// destination operand.
type TwoArgs struct {
	Size   SizeSelector
	Source EAReader
	Dest   EAReader
}

// Parse implements the OperandParser interface.
func (a TwoArgs) Parse(word uint16) string {
	return fmt.Sprintf(".%s %s,%s", a.Size.Size(word), a.Source.Parse(word), a.Dest.Parse(word))
}
