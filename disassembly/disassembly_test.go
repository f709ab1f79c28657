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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/os9rof/disassembly"
	"github.com/jetsetilly/os9rof/logger"
	"github.com/jetsetilly/os9rof/rof"
	"github.com/jetsetilly/os9rof/test"
)

func newSegment() *rof.Segment {
	return &rof.Segment{
		Name: "prog",
		Symbols: []rof.Symbol{
			{Name: "start", Reference: rof.Ref{Detail: 0x04, Offset: 0x00}},
			{Name: "loop", Reference: rof.Ref{Detail: 0x04, Offset: 0x04}},
			{Name: "table", Reference: rof.Ref{Detail: 0x01, Offset: 0x00}},
		},
		ObjectCode: []byte{0xd2, 0xc2, 0x4e, 0x71, 0x4e, 0x75, 0x00, 0x00, 0xd0},
		ExternRefs: []rof.ExternRefGroup{
			{Name: "printf", Refs: []rof.Ref{{Detail: 0x38, Offset: 0x02}}},
		},
		LocalRefs: []rof.Ref{
			// word in the code section at offset 6 referring to the code section
			{Detail: 0x34, Offset: 0x06},

			// relocation in the initialised data is not part of the disassembly
			{Detail: 0x1c, Offset: 0x00},
		},
	}
}

func TestDisassembly(t *testing.T) {
	dsm, err := disassembly.FromSegment(newSegment())
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(dsm.Entries), 5)

	e := dsm.Entries[0]
	test.ExpectEquality(t, e.Offset, uint32(0))
	test.ExpectSuccess(t, e.Decoded)
	test.ExpectEquality(t, e.Label, "start")
	test.ExpectEquality(t, e.Operator, "ADDA.W")
	test.ExpectEquality(t, e.Operand, "D2,A1")
	test.ExpectEquality(t, e.Bytecode, "d2 c2")
	test.ExpectEquality(t, e.String(), "ADDA.W D2,A1")

	e = dsm.Entries[1]
	test.ExpectFailure(t, e.Decoded)
	test.ExpectEquality(t, e.String(), "dc.w $4e71")
	test.ExpectEquality(t, len(e.Notes), 1)

	e = dsm.Entries[2]
	test.ExpectEquality(t, e.Label, "loop")

	e = dsm.Entries[4]
	test.ExpectEquality(t, e.Offset, uint32(8))
	test.ExpectEquality(t, e.String(), "dc.b $d0")
	test.ExpectEquality(t, len(e.Bytes), 1)
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromSegment(newSegment())
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	err = dsm.Write(w, disassembly.WriteAttr{Notes: true})
	test.ExpectSuccess(t, err)

	expected := strings.Join([]string{
		"start 00000000 ADDA.W D2,A1",
		"      00000002 dc.w   $4e71 ; long printf",
		"loop  00000004 dc.w   $4e75",
		"      00000006 dc.w   $0000 ; word start",
		"      00000008 dc.b   $d0",
		"",
	}, "\n")
	test.ExpectSuccess(t, w.Compare(expected), w.String())

	w.Clear()
	err = dsm.WriteEntry(w, disassembly.WriteAttr{ByteCode: true}, dsm.Entries[0])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "start 00000000 d2 c2 ADDA.W D2,A1\n")
}

func TestEntryAt(t *testing.T) {
	dsm, err := disassembly.FromSegment(newSegment())
	test.DemandSuccess(t, err)

	e, ok := dsm.EntryAt(3)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Offset, uint32(2))

	e, ok = dsm.EntryAt(8)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, e.Offset, uint32(8))

	_, ok = dsm.EntryAt(9)
	test.ExpectFailure(t, ok)

	_, ok = dsm.EntryAt(0x1000)
	test.ExpectFailure(t, ok)
}

func TestGrep(t *testing.T) {
	dsm, err := disassembly.FromSegment(newSegment())
	test.DemandSuccess(t, err)

	w := &test.Writer{}
	n, err := dsm.Grep(w, disassembly.WriteAttr{}, disassembly.GrepOperator, "DC.W", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	w.Clear()
	n, err = dsm.Grep(w, disassembly.WriteAttr{}, disassembly.GrepOperator, "DC.W", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, w.String(), "")

	w.Clear()
	n, err = dsm.Grep(w, disassembly.WriteAttr{}, disassembly.GrepAll, "printf", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 1)
	test.ExpectSuccess(t, strings.Contains(w.String(), "00000002"))
}

func TestOutOfBoundsRelocation(t *testing.T) {
	seg := newSegment()

	// long at offset 6 runs past the end of the code section
	seg.LocalRefs = []rof.Ref{{Detail: 0x3c, Offset: 0x06}}

	logger.Clear()
	defer logger.Clear()

	dsm, err := disassembly.FromSegment(seg)
	test.DemandSuccess(t, err)

	// the relocation is not shown but is logged
	e, ok := dsm.EntryAt(6)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, len(e.Notes), 0)

	w := &test.Writer{}
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), rof.OutOfBounds.Error()))
}

func TestEmptySegment(t *testing.T) {
	dsm, err := disassembly.FromSegment(&rof.Segment{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(dsm.Entries), 0)

	w := &test.Writer{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), "")
}
