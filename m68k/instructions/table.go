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

// Definition describes how to recognise and decode an instruction.
type Definition struct {
	Mnemonic  string
	Indicator uint16
	Mask      uint16
	Operands  OperandParser
}

// lineMask selects the top four bits of an instruction word. the line of
// an instruction is always significant
const lineMask = 0xf000

// NewDefinition is the preferred method of initialisation for the
// Definition type. The line is the top four bits of the instruction word.
// The value of pattern is the expected value of the bits selected by mask,
// in addition to the line.
func NewDefinition(mnemonic string, line uint8, pattern uint16, mask uint16, operands OperandParser) Definition {
	return Definition{
		Mnemonic:  mnemonic,
		Indicator: uint16(line)<<12 | pattern,
		Mask:      lineMask | mask,
		Operands:  operands,
	}
}

// Matches returns true if the instruction word is an instance of the
// Definition.
func (d Definition) Matches(word uint16) bool {
	return word&d.Mask == d.Indicator
}

// Decode the instruction word. The result is undefined if the word does not
// match the Definition.
func (d Definition) Decode(word uint16) string {
	if d.Operands == nil {
		return d.Mnemonic
	}
	return d.Mnemonic + d.Operands.Parse(word)
}

// Table is an ordered list of instruction definitions.
type Table []Definition

// Lookup returns the first Definition in the Table that matches the
// instruction word.
func (t Table) Lookup(word uint16) (Definition, bool) {
	for _, d := range t {
		if d.Matches(word) {
			return d, true
		}
	}
	return Definition{}, false
}

// Decode the instruction word using the first matching Definition. Returns
// the empty string if there is no match.
func (t Table) Decode(word uint16) string {
	d, ok := t.Lookup(word)
	if !ok {
		return ""
	}
	return d.Decode(word)
}

// address arithmetic operands. the size is in bit 8 and the destination is
// always an address register, numbered in bits 9 to 11
var addressArithmetic = TwoArgs{
	Size:   SizeBit{Bit: 8},
	Source: DefaultEAReader(AllModes),
	Dest: EAReader{
		Mode:    Fixed(AddressReg.Mode),
		Reg:     Read{Pos: 9, Len: 3},
		Allowed: AddressOnly,
	},
}

// Instructions is the Table used by the Decode() function.
var Instructions = Table{
	NewDefinition("ADDA", 0b1101, 0o300, 0o300, addressArithmetic),
	NewDefinition("SUBA", 0b1001, 0o300, 0o300, addressArithmetic),
	NewDefinition("CMPA", 0b1011, 0o300, 0o300, addressArithmetic),
}

// Decode the instruction word using the Instructions table.
func Decode(word uint16) string {
	return Instructions.Decode(word)
}
