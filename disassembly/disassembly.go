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
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/os9rof/logger"
	"github.com/jetsetilly/os9rof/m68k/instructions"
	"github.com/jetsetilly/os9rof/rof"
	"github.com/jetsetilly/os9rof/stream"
	"github.com/jetsetilly/os9rof/xref"
)

// Disassembly represents the disassembly of the code section of a segment.
type Disassembly struct {
	seg *rof.Segment

	// symbols used to label and annotate entries
	Index *xref.Index

	// the instruction table used for decoding
	Table instructions.Table

	// entries in order of offset
	Entries []*Entry

	// formatting information for all entries
	fields fields
}

// FromSegment disassembles the object code of the segment using the
// standard instruction table.
func FromSegment(seg *rof.Segment) (*Disassembly, error) {
	return FromSegmentWithTable(seg, instructions.Instructions)
}

// FromSegmentWithTable disassembles the object code of the segment using
// the supplied instruction table.
func FromSegmentWithTable(seg *rof.Segment, tbl instructions.Table) (*Disassembly, error) {
	dsm := &Disassembly{
		seg:   seg,
		Index: xref.NewIndex(seg),
		Table: tbl,
	}

	err := dsm.decode()
	if err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	dsm.annotate()

	for _, e := range dsm.Entries {
		dsm.fields.update(e)
	}

	logger.Logf(logger.Allow, "disassembly", "%s: %d entries from %d bytes of object code",
		seg.Name, len(dsm.Entries), len(seg.ObjectCode))

	return dsm, nil
}

// decode pass. every word of the object code is decoded in turn
func (dsm *Disassembly) decode() error {
	r := stream.NewReader(dsm.seg.ObjectCode, binary.BigEndian)

	for r.Remaining() > 0 {
		offset := uint32(r.Pos())

		var e *Entry

		// a single trailing byte can only ever be data
		if r.Remaining() == 1 {
			b, err := r.ReadBytes(1)
			if err != nil {
				return err
			}
			e = newEntry(offset, b, "")
		} else {
			w, err := r.ReadU16()
			if err != nil {
				return err
			}
			e = newEntry(offset, []byte{uint8(w >> 8), uint8(w)}, dsm.Table.Decode(w))
		}

		if l, ok := dsm.Index.Label(rof.Code, offset); ok {
			e.Label = l
		}

		dsm.Entries = append(dsm.Entries, e)
	}

	return nil
}

// annotate pass. notes are added to every entry that is patched by a
// relocation
func (dsm *Disassembly) annotate() {
	for _, ref := range dsm.seg.LocalRefs {
		ri := rof.NewReplacementInfo(ref)
		if ri.Target != rof.Code {
			continue
		}

		e, ok := dsm.EntryAt(ri.Offset)
		if !ok {
			continue
		}

		res, err := dsm.Index.ResolveLocalReference(ref)
		if err != nil {
			logger.Log(logger.Allow, "disassembly", err)
			continue
		}

		e.Notes = append(e.Notes, fmt.Sprintf("%s %s", ri.Size, res))
	}

	for _, grp := range dsm.seg.ExternRefs {
		for _, ref := range grp.Refs {
			ri := rof.NewReplacementInfo(ref)
			if ri.Target != rof.Code {
				continue
			}

			e, ok := dsm.EntryAt(ri.Offset)
			if !ok {
				continue
			}

			e.Notes = append(e.Notes, fmt.Sprintf("%s %s", ri.Size, grp.Name))
		}
	}
}

// EntryAt returns the entry that contains the offset.
func (dsm *Disassembly) EntryAt(offset uint32) (*Entry, bool) {
	// entries are two bytes long except for a possible last entry
	i := int(offset / 2)
	if i >= len(dsm.Entries) {
		return nil, false
	}
	e := dsm.Entries[i]
	return e, e.Contains(offset)
}
