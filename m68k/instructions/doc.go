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

// Package instructions decodes 68000 instruction words into assembler
// mnemonics.
//
// Decoding is table driven. Each Definition in a Table has a mask and an
// indicator and a word matches the definition if:
//
//	word & mask == indicator
//
// The first matching Definition in the Table is used. The top four bits of
// the instruction word is the "line" of the instruction and is always part
// of the mask.
//
// The operands of an instruction are described by composing small parts. A
// SizeSelector chooses the instruction size from the word. An Extractor
// pulls a field out of the word (or supplies a fixed value). An EAReader
// combines two Extractors, one for the addressing mode and one for the
// register, and a ModeList of the addressing modes that are permitted for
// the operand.
//
// For example, the operands for the ADDA instruction:
//
//	TwoArgs{
//		Size:   SizeBit{Bit: 8},
//		Source: DefaultEAReader(AllModes),
//		Dest:   EAReader{Mode: Fixed(1), Reg: Read{Pos: 9, Len: 3}, Allowed: AddressOnly},
//	}
//
// Decoding never fails. A word that matches no Definition decodes to the
// empty string. An operand that matches no permitted addressing mode is also
// the empty string.
//
// Only single word instructions with register based addressing modes are
// decoded. Extension words are never read.
package instructions
