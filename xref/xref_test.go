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

package xref_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/os9rof/rof"
	"github.com/jetsetilly/os9rof/test"
	"github.com/jetsetilly/os9rof/xref"
)

const (
	detailData     = 0x00
	detailInitData = 0x01
	detailCode     = 0x04
	detailEqu      = 0x06
)

func newSegment() *rof.Segment {
	return &rof.Segment{
		Name: "prog",
		Symbols: []rof.Symbol{
			{Name: "start", Reference: rof.Ref{Detail: detailCode, Offset: 0x00}},
			{Name: "loop", Reference: rof.Ref{Detail: detailCode, Offset: 0x04}},
			{Name: "done", Reference: rof.Ref{Detail: detailCode, Offset: 0x20}},
			{Name: "again", Reference: rof.Ref{Detail: detailCode, Offset: 0x04}},
			{Name: "table", Reference: rof.Ref{Detail: detailInitData, Offset: 0x02}},
			{Name: "counter", Reference: rof.Ref{Detail: detailData, Offset: 0x10}},
			{Name: "MAXLEN", Reference: rof.Ref{Detail: detailEqu, Offset: 0x50}},
		},
		ObjectCode: []byte{0xd2, 0xc2, 0x4e, 0x71, 0x4e, 0x75, 0x00, 0x00},
		InitData:   []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x22, 0x81},
		InitRemote: []byte{0xca, 0xfe},
	}
}

func TestResolveSymbol(t *testing.T) {
	seg := newSegment()

	tests := []struct {
		section rof.Section
		offset  uint32
		str     string
	}{
		{rof.Code, 0x00, "start"},
		{rof.Code, 0x02, "start+2"},
		{rof.Code, 0x04, "loop"},
		{rof.Code, 0x1f, "loop+1B"},
		{rof.Code, 0x20, "done"},
		{rof.Code, 0x1234, "done+1214"},
		{rof.InitData, 0x00, "00000000"},
		{rof.InitData, 0x01, "00000001"},
		{rof.InitData, 0x02, "table"},
		{rof.InitData, 0x0a, "table+8"},
		{rof.Data, 0x0f, "0000000F"},
		{rof.Data, 0x10, "counter"},
		{rof.Equ, 0x50, "MAXLEN"},
		{rof.RemoteData, 0x00, "00000000"},
		{rof.RemoteInitData, 0xdeadbeef, "DEADBEEF"},
	}

	for _, tst := range tests {
		res := xref.ResolveSymbol(tst.section, tst.offset, seg)
		test.ExpectEquality(t, res.String(), tst.str, tst.section, tst.offset)
		test.ExpectEquality(t, res.Section, tst.section)
		test.ExpectEquality(t, res.Offset, tst.offset)
	}
}

func TestResolveSymbolTie(t *testing.T) {
	seg := newSegment()

	// "loop" and "again" are both at offset 4 in the code section. the first
	// in the symbol table is chosen
	res := xref.ResolveSymbol(rof.Code, 0x04, seg)
	test.ExpectEquality(t, res.Symbol, "loop")
	test.ExpectSuccess(t, res.Exact())

	res = xref.ResolveSymbol(rof.Code, 0x06, seg)
	test.ExpectEquality(t, res.Symbol, "loop")
	test.ExpectEquality(t, res.Delta, uint32(2))
	test.ExpectFailure(t, res.Exact())
}

func TestResolveSymbolEmpty(t *testing.T) {
	seg := &rof.Segment{}
	for _, sec := range rof.Sections {
		res := xref.ResolveSymbol(sec, 0x100, seg)
		test.ExpectFailure(t, res.Resolved)
		test.ExpectFailure(t, res.Exact())
		test.ExpectEquality(t, res.String(), "00000100")
	}
}

func TestResolveSymbolMonotonic(t *testing.T) {
	seg := newSegment()

	// as the offset increases, the chosen symbol's offset never decreases
	for _, sec := range rof.Sections {
		var prev uint32
		var prevResolved bool

		for o := uint32(0); o < 0x60; o++ {
			res := xref.ResolveSymbol(sec, o, seg)
			if !res.Resolved {
				test.ExpectFailure(t, prevResolved, sec, o)
				continue
			}

			symOffset := o - res.Delta
			test.ExpectSuccess(t, symOffset <= o, sec, o)
			if prevResolved {
				test.ExpectSuccess(t, symOffset >= prev, sec, o)
			}
			prev = symOffset
			prevResolved = true
		}
	}
}

func TestIndex(t *testing.T) {
	seg := newSegment()
	idx := xref.NewIndex(seg)

	// the index must agree with the linear scan for every query
	for _, sec := range rof.Sections {
		for o := uint32(0); o < 0x60; o++ {
			test.ExpectEquality(t, idx.Resolve(sec, o), xref.ResolveSymbol(sec, o, seg), sec, o)
		}
	}

	l, ok := idx.Label(rof.Code, 0x04)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, l, "loop")

	_, ok = idx.Label(rof.Code, 0x05)
	test.ExpectFailure(t, ok)

	_, ok = idx.Label(rof.RemoteData, 0x00)
	test.ExpectFailure(t, ok)
}

func TestResolveLocalReference(t *testing.T) {
	seg := newSegment()

	// long in the initialised data at offset 0. the value there is 4 and the
	// reference target is the code section
	ref := rof.Ref{Detail: 0x1c, Offset: 0x00}
	res, err := xref.ResolveLocalReference(ref, seg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.String(), "loop")

	// word in the initialised data at offset 4. value 0x22
	ref = rof.Ref{Detail: 0x14, Offset: 0x04}
	res, err = xref.ResolveLocalReference(ref, seg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.String(), "done+2")

	// byte in the initialised data at offset 6. value 0x81. the target is
	// the initialised data section
	ref = rof.Ref{Detail: 0x09, Offset: 0x06}
	res, err = xref.ResolveLocalReference(ref, seg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.String(), "table+7F")

	// word in the object code at offset 2. value 0x4e71
	ref = rof.Ref{Detail: 0x34, Offset: 0x02}
	v, err := xref.ReferencedValue(ref, seg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0x4e71))

	// word in the remote initialised data
	ref = rof.Ref{Info: 0x02, Detail: 0x10, Offset: 0x00}
	v, err = xref.ReferencedValue(ref, seg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0xcafe))

	// the index gives the same answer
	idx := xref.NewIndex(seg)
	res, err = idx.ResolveLocalReference(rof.Ref{Detail: 0x1c, Offset: 0x00})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.String(), "loop")
}

func TestResolveLocalReferenceOutOfBounds(t *testing.T) {
	seg := newSegment()

	tests := []rof.Ref{
		// long at offset 4 of a 7 byte section
		{Detail: 0x1c, Offset: 0x04},
		// byte beyond the end of the section
		{Detail: 0x08, Offset: 0x07},
		// offset well beyond the end
		{Detail: 0x08, Offset: 0x1000},
		// word at the last byte of the object code
		{Detail: 0x30, Offset: 0x07},
		// word beyond the end of the remote initialised data
		{Info: 0x02, Detail: 0x10, Offset: 0x02},
	}

	for _, ref := range tests {
		_, err := xref.ResolveLocalReference(ref, seg)
		test.ExpectFailure(t, err, ref)
		test.ExpectSuccess(t, errors.Is(err, rof.OutOfBounds), ref)
	}
}

func TestReferencedValueNilSection(t *testing.T) {
	seg := newSegment()
	seg.InitData = nil

	// a nil data section is the same as an empty data section
	_, err := xref.ReferencedValue(rof.Ref{Detail: 0x1c, Offset: 0x100}, seg)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, rof.OutOfBounds))

	seg.InitData = []byte{}
	_, err = xref.ReferencedValue(rof.Ref{Detail: 0x1c, Offset: 0x100}, seg)
	test.ExpectSuccess(t, errors.Is(err, rof.OutOfBounds))
}

func TestReferencedValueZeroSegment(t *testing.T) {
	seg := &rof.Segment{}

	tests := []rof.Ref{
		// word in the code section
		{Detail: 0x30, Offset: 0x100},
		// byte at the very start of the initialised data
		{Detail: 0x08, Offset: 0x00},
		// long in the remote initialised data
		{Info: 0x02, Detail: 0x18, Offset: 0x00},
	}

	for _, ref := range tests {
		_, err := xref.ReferencedValue(ref, seg)
		test.ExpectSuccess(t, errors.Is(err, rof.OutOfBounds), ref)

		_, err = xref.ResolveLocalReference(ref, seg)
		test.ExpectSuccess(t, errors.Is(err, rof.OutOfBounds), ref)
	}

	// an unspecified size reads nothing
	v, err := xref.ReferencedValue(rof.Ref{Detail: 0x20, Offset: 0x00}, seg)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint32(0))
}
