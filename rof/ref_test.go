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

package rof_test

import (
	"testing"

	"github.com/jetsetilly/os9rof/rof"
	"github.com/jetsetilly/os9rof/test"
)

func TestRefTarget(t *testing.T) {
	tests := []struct {
		detail uint8
		target rof.Section
	}{
		{0b000, rof.Data},
		{0b001, rof.InitData},
		{0b010, rof.RemoteData},
		{0b011, rof.RemoteInitData},
		{0b100, rof.Code},
		{0b101, rof.Code},
		{0b110, rof.Equ},
		{0b111, rof.Equ},

		// bits above bit 2 do not affect the target
		{0b1111_1000, rof.Data},
		{0b1111_1101, rof.Code},
	}

	for _, tst := range tests {
		r := rof.Ref{Detail: tst.detail}
		test.ExpectEquality(t, r.Target(), tst.target, tst.detail)
	}
}

func TestReplacementInfoSize(t *testing.T) {
	test.ExpectEquality(t, rof.NewReplacementInfo(rof.Ref{Detail: 0b00_000}).Size, rof.SizeUnspecified)
	test.ExpectEquality(t, rof.NewReplacementInfo(rof.Ref{Detail: 0b01_000}).Size, rof.Byte)
	test.ExpectEquality(t, rof.NewReplacementInfo(rof.Ref{Detail: 0b10_000}).Size, rof.Word)
	test.ExpectEquality(t, rof.NewReplacementInfo(rof.Ref{Detail: 0b11_000}).Size, rof.Long)

	test.ExpectEquality(t, rof.SizeUnspecified.Width(), 0)
	test.ExpectEquality(t, rof.Byte.Width(), 1)
	test.ExpectEquality(t, rof.Word.Width(), 2)
	test.ExpectEquality(t, rof.Long.Width(), 4)
}

func TestReplacementInfoFlags(t *testing.T) {
	// the bit positions are an assumption about the format. this test pins
	// the assumption down: bit 7 is relative and bit 6 is negative
	test.ExpectEquality(t, rof.RelativeBit, 7)
	test.ExpectEquality(t, rof.NegativeBit, 6)

	ri := rof.NewReplacementInfo(rof.Ref{Detail: 0x80})
	test.ExpectSuccess(t, ri.Relative)
	test.ExpectFailure(t, ri.Negative)

	ri = rof.NewReplacementInfo(rof.Ref{Detail: 0x40})
	test.ExpectFailure(t, ri.Relative)
	test.ExpectSuccess(t, ri.Negative)

	ri = rof.NewReplacementInfo(rof.Ref{Detail: 0xc0})
	test.ExpectSuccess(t, ri.Relative)
	test.ExpectSuccess(t, ri.Negative)
}

func TestReplacementInfoTarget(t *testing.T) {
	test.ExpectEquality(t, rof.NewReplacementInfo(rof.Ref{}).Target, rof.InitData)
	test.ExpectEquality(t, rof.NewReplacementInfo(rof.Ref{Detail: 0x20}).Target, rof.Code)

	// the remote initialised bit in the info field takes priority
	test.ExpectEquality(t, rof.NewReplacementInfo(rof.Ref{Info: 0x02}).Target, rof.RemoteInitData)
	test.ExpectEquality(t, rof.NewReplacementInfo(rof.Ref{Info: 0x02, Detail: 0x20}).Target, rof.RemoteInitData)

	ri := rof.NewReplacementInfo(rof.Ref{Offset: 0x1234})
	test.ExpectEquality(t, ri.Offset, uint32(0x1234))
}

func TestTargetsAreIndependent(t *testing.T) {
	// the same Ref can have different answers for the two classifications.
	// both are kept because they answer different questions
	r := rof.Ref{Detail: 0x1c}
	test.ExpectEquality(t, r.Target(), rof.Code)
	test.ExpectEquality(t, rof.NewReplacementInfo(r).Target, rof.InitData)
	test.ExpectEquality(t, rof.NewReplacementInfo(r).Size, rof.Long)

	r = rof.Ref{Detail: 0x20}
	test.ExpectEquality(t, r.Target(), rof.Data)
	test.ExpectEquality(t, rof.NewReplacementInfo(r).Target, rof.Code)
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, rof.Code.String(), "code")
	test.ExpectEquality(t, rof.RemoteInitData.String(), "ridata")
	test.ExpectEquality(t, rof.Long.String(), "long")

	ri := rof.NewReplacementInfo(rof.Ref{Detail: 0xbc, Offset: 0x10})
	test.ExpectEquality(t, ri.String(), "code@00000010 long relative")
}
