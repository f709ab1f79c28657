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

package xref

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jetsetilly/os9rof/rof"
	"github.com/jetsetilly/os9rof/stream"
)

// Resolution is the result of resolving an offset in a section.
type Resolution struct {
	Section rof.Section
	Offset  uint32

	// Resolved is false if no symbol was found. in which case the Symbol
	// and Delta fields are not meaningful
	Resolved bool
	Symbol   string
	Delta    uint32
}

// Exact returns true if the offset is exactly at the symbol.
func (res Resolution) Exact() bool {
	return res.Resolved && res.Delta == 0
}

func (res Resolution) String() string {
	if !res.Resolved {
		return fmt.Sprintf("%08X", res.Offset)
	}
	if res.Delta == 0 {
		return res.Symbol
	}
	return fmt.Sprintf("%s+%X", res.Symbol, res.Delta)
}

// ResolveSymbol finds the symbol in the section with the greatest offset
// that is not greater than the offset being resolved. If more than one
// symbol shares that offset then the first in the symbol table is used.
func ResolveSymbol(section rof.Section, offset uint32, seg *rof.Segment) Resolution {
	res := Resolution{
		Section: section,
		Offset:  offset,
	}

	var best *rof.Symbol
	for i := range seg.Symbols {
		s := &seg.Symbols[i]
		if s.Reference.Target() != section || s.Reference.Offset > offset {
			continue
		}
		if best == nil || s.Reference.Offset > best.Reference.Offset {
			best = s
		}
	}

	if best == nil {
		return res
	}

	res.Resolved = true
	res.Symbol = best.Name
	res.Delta = offset - best.Reference.Offset
	return res
}

// ResolveLocalReference reads the value at the location described by the
// local reference and resolves it as an offset into the section given by
// ref.Target().
//
// Returns an error wrapping rof.OutOfBounds if the location is outside the
// section data.
func ResolveLocalReference(ref rof.Ref, seg *rof.Segment) (Resolution, error) {
	v, err := ReferencedValue(ref, seg)
	if err != nil {
		return Resolution{}, err
	}
	return ResolveSymbol(ref.Target(), v, seg), nil
}

// ReferencedValue returns the value at the location described by the
// ReplacementInfo of the reference. The value is read big-endian and has the
// width of the ReplacementInfo size.
//
// Sections with no data in the ROF file (the uninitialised data sections and
// the equates) always have a value of zero. The data sections of the segment
// are always bounds checked, even if they are nil.
func ReferencedValue(ref rof.Ref, seg *rof.Segment) (uint32, error) {
	ri := rof.NewReplacementInfo(ref)

	switch ri.Target {
	case rof.Code, rof.InitData, rof.RemoteInitData:
	default:
		return 0, nil
	}

	data := seg.SectionData(ri.Target)
	r := stream.NewReader(data, binary.BigEndian)

	err := r.Seek(int(ri.Offset))
	if err != nil {
		return 0, outOfBounds(ri, len(data), err)
	}

	var v uint32
	switch ri.Size {
	case rof.Byte:
		var b uint8
		b, err = r.ReadU8()
		v = uint32(b)
	case rof.Word:
		var w uint16
		w, err = r.ReadU16()
		v = uint32(w)
	case rof.Long:
		v, err = r.ReadU32()
	default:
		// an unspecified size has no width and so no value
	}
	if err != nil {
		return 0, outOfBounds(ri, len(data), err)
	}

	return v, nil
}

func outOfBounds(ri rof.ReplacementInfo, l int, err error) error {
	if errors.Is(err, stream.Exhausted) {
		return fmt.Errorf("%w: %s value at %#x in %s section of %d bytes",
			rof.OutOfBounds, ri.Size, ri.Offset, ri.Target, l)
	}
	return err
}
