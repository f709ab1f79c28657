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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/os9rof/m68k/instructions"
	"github.com/jetsetilly/os9rof/test"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		word uint16
		str  string
	}{
		{0b1101<<12 | 0o1302, "ADDA.W D2,A1"},
		{0b1101<<12 | 0o1702, "ADDA.L D2,A1"},
		{0b1101<<12 | 0o1312, "ADDA.W A2,A1"},
		{0b1101<<12 | 0o1322, "ADDA.W (A2),A1"},
		{0b1101<<12 | 0o1332, "ADDA.W (A2)+,A1"},
		{0b1101<<12 | 0o1342, "ADDA.W -(A2),A1"},
		{0b1101<<12 | 0o7700, "ADDA.L D0,A7"},
		{0b1001<<12 | 0o1302, "SUBA.W D2,A1"},
		{0b1001<<12 | 0o0714, "SUBA.L A4,A0"},
		{0b1011<<12 | 0o7704, "CMPA.L D4,A7"},
		{0b1011<<12 | 0o5323, "CMPA.W (A3),A5"},
	}

	for _, tst := range tests {
		test.ExpectEquality(t, instructions.Decode(tst.word), tst.str, tst.word)
	}
}

func TestDecodeUnknown(t *testing.T) {
	for _, w := range []uint16{
		0x0000,
		0x4e71, // NOP
		0x4e75, // RTS
		0xd000, // ADD.B D0,D0
		0xd040, // ADD.W D0,D0
		0x9080, // SUB.L D0,D0
		0xffff,
	} {
		test.ExpectEquality(t, instructions.Decode(w), "", w)
	}
}

func TestDecodeUnsupportedMode(t *testing.T) {
	// source with a displacement addressing mode is not decoded but the
	// instruction is still recognised
	test.ExpectEquality(t, instructions.Decode(0b1101<<12|0o1352), "ADDA.W ,A1")
	test.ExpectEquality(t, instructions.Decode(0b1101<<12|0o1372), "ADDA.W ,A1")
}

func TestDecodeEveryWord(t *testing.T) {
	// decoding must never panic and must only produce output for words that
	// match a definition
	for w := 0; w < 0x10000; w++ {
		word := uint16(w)
		s := instructions.Decode(word)
		_, ok := instructions.Instructions.Lookup(word)
		test.ExpectEquality(t, s != "", ok, word)
	}
}

func TestLookupOrder(t *testing.T) {
	tbl := instructions.Table{
		instructions.NewDefinition("FIRST", 0b0001, 0x0000, 0x0000, nil),
		instructions.NewDefinition("SECOND", 0b0001, 0x0000, 0x0000, nil),
	}
	test.ExpectEquality(t, tbl.Decode(0x1234), "FIRST")
	test.ExpectEquality(t, tbl.Decode(0x2234), "")

	d, ok := tbl.Lookup(0x1fff)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Indicator, uint16(0x1000))
	test.ExpectEquality(t, d.Mask, uint16(0xf000))
}

func TestExtractors(t *testing.T) {
	test.ExpectEquality(t, instructions.Read{Pos: 9, Len: 3}.Extract(0xd2c2), uint8(1))
	test.ExpectEquality(t, instructions.Read{Pos: 3, Len: 3}.Extract(0xd2c2), uint8(0))
	test.ExpectEquality(t, instructions.Read{Pos: 0, Len: 3}.Extract(0xd2c2), uint8(2))
	test.ExpectEquality(t, instructions.Read{Pos: 12, Len: 4}.Extract(0xd2c2), uint8(0xd))
	test.ExpectEquality(t, instructions.Fixed(5).Extract(0xffff), uint8(5))
	test.ExpectEquality(t, instructions.Fixed(5).Extract(0x0000), uint8(5))
}

func TestSizeBit(t *testing.T) {
	s := instructions.SizeBit{Bit: 8}
	test.ExpectEquality(t, s.Size(0x0000), instructions.Word)
	test.ExpectEquality(t, s.Size(0x0100), instructions.Long)
	test.ExpectEquality(t, s.Size(0xfeff), instructions.Word)

	test.ExpectEquality(t, instructions.Byte.String(), "B")
	test.ExpectEquality(t, instructions.Word.String(), "W")
	test.ExpectEquality(t, instructions.Long.String(), "L")
}
