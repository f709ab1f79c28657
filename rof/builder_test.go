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
	"encoding/binary"

	"github.com/jetsetilly/os9rof/rof"
)

// builder creates big-endian ROF data for tests
type builder struct {
	data []byte
}

func (b *builder) u8(v uint8) *builder {
	b.data = append(b.data, v)
	return b
}

func (b *builder) u16(v uint16) *builder {
	b.data = binary.BigEndian.AppendUint16(b.data, v)
	return b
}

func (b *builder) u32(v uint32) *builder {
	b.data = binary.BigEndian.AppendUint32(b.data, v)
	return b
}

func (b *builder) str(s string) *builder {
	b.data = append(b.data, []byte(s)...)
	b.data = append(b.data, 0x00)
	return b
}

func (b *builder) raw(d []byte) *builder {
	b.data = append(b.data, d...)
	return b
}

func (b *builder) ref(r rof.Ref) *builder {
	return b.u8(r.Info).u8(r.Detail).u32(r.Offset)
}

func (b *builder) header(h rof.Header) *builder {
	b.u16(h.TypeLanguage).u16(h.AttributeRev).u16(h.AsmValid).u16(h.AsmVersion)
	b.u16(h.Date1).u16(h.Date2).u16(h.Date3).u16(h.Edition)
	b.u32(h.SizeStatic).u32(h.SizeInitialised).u32(h.SizeCode).u32(h.SizeStack)
	b.u32(h.EntryPoint).u32(h.TrapEntryPoint)
	b.u32(h.SizeRemoteStatic).u32(h.SizeRemoteInitialised).u32(h.SizeDebug)
	return b
}

// segment appends the sync word and the complete segment. byte sections are
// taken from the Segment and the sizes in the header are overwritten to match
func (b *builder) segment(seg rof.Segment) *builder {
	seg.Header.SizeCode = uint32(len(seg.ObjectCode))
	seg.Header.SizeInitialised = uint32(len(seg.InitData))
	seg.Header.SizeRemoteInitialised = uint32(len(seg.InitRemote))

	b.u32(rof.Magic)
	b.header(seg.Header)
	b.str(seg.Name)

	b.u16(uint16(len(seg.Symbols)))
	for _, s := range seg.Symbols {
		b.str(s.Name).ref(s.Reference)
	}

	b.raw(seg.ObjectCode).raw(seg.InitData).raw(seg.InitRemote)

	b.u16(uint16(len(seg.ExternRefs)))
	for _, g := range seg.ExternRefs {
		b.str(g.Name)
		b.u16(uint16(len(g.Refs)))
		for _, r := range g.Refs {
			b.ref(r)
		}
	}

	b.u16(uint16(len(seg.LocalRefs)))
	for _, r := range seg.LocalRefs {
		b.ref(r)
	}

	return b.raw(make([]byte, 16))
}

// a segment with something in every table and section
var exampleSegment = rof.Segment{
	Header: rof.Header{
		TypeLanguage: 0x0101,
		AttributeRev: 0x8001,
		AsmValid:     0x0001,
		AsmVersion:   0x0105,
		Date1:        0x5a0b,
		Date2:        0x110e,
		Date3:        0x2a00,
		Edition:      3,
		SizeStatic:   0x40,
		SizeStack:    0x200,
		EntryPoint:   0x04,
		SizeDebug:    0,
	},
	Name: "prog",
	Symbols: []rof.Symbol{
		{Name: "start", Reference: rof.Ref{Detail: 0x04, Offset: 0x0000}},
		{Name: "loop", Reference: rof.Ref{Detail: 0x04, Offset: 0x0004}},
		{Name: "table", Reference: rof.Ref{Detail: 0x01, Offset: 0x0000}},
		{Name: "counter", Reference: rof.Ref{Detail: 0x00, Offset: 0x0010}},
	},
	ObjectCode: []byte{0xd2, 0xc2, 0x4e, 0x71, 0x4e, 0x75, 0x00, 0x00},
	InitData:   []byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x00},
	InitRemote: []byte{0xca, 0xfe},
	ExternRefs: []rof.ExternRefGroup{
		{Name: "printf", Refs: []rof.Ref{{Detail: 0x38, Offset: 0x0002}}},
		{Name: "exit", Refs: []rof.Ref{{Detail: 0x38, Offset: 0x0006}, {Detail: 0xb8, Offset: 0x0004}}},
	},
	LocalRefs: []rof.Ref{
		{Detail: 0x1c, Offset: 0x0000},
	},
}
