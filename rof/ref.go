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

package rof

import (
	"fmt"

	"github.com/jetsetilly/os9rof/bitfield"
)

// Ref is the reference record found in symbol tables and in the external and
// local reference tables.
type Ref struct {
	Info   uint8
	Detail uint8
	Offset uint32
}

// bits in the detail field used by Target()
const (
	detailInitialised = 0
	detailRemote      = 1
	detailCode        = 2
)

// Target returns the Section that the Ref points into.
//
// If the code bit (bit 2) of the detail field is clear, the section is one of
// the four data sections, chosen by the remote (bit 1) and initialised
// (bit 0) bits. If the code bit is set then bit 1 distinguishes Equ from
// Code.
//
// Note that ReplacementInfo has its own interpretation of the same byte and
// the two can disagree.
func (r Ref) Target() Section {
	if !bitfield.Bit(r.Detail, detailCode) {
		remote := bitfield.BitValue(r.Detail, detailRemote)
		initialised := bitfield.BitValue(r.Detail, detailInitialised)
		return Section(remote*2 + initialised)
	}
	if bitfield.Bit(r.Detail, detailRemote) {
		return Equ
	}
	return Code
}

func (r Ref) String() string {
	return fmt.Sprintf("%02x/%02x %08X (%s)", r.Info, r.Detail, r.Offset, r.Target())
}

// Size is the width of a value to be replaced during relocation.
type Size int

// List of valid Size values. The value matches bits 3 and 4 of the detail
// field. A zero value means the size has not been specified.
const (
	SizeUnspecified Size = iota
	Byte
	Word
	Long
)

func (s Size) String() string {
	switch s {
	case Byte:
		return "byte"
	case Word:
		return "word"
	case Long:
		return "long"
	}
	return "unspecified"
}

// Width returns the number of bytes for the Size.
func (s Size) Width() int {
	switch s {
	case Byte:
		return 1
	case Word:
		return 2
	case Long:
		return 4
	}
	return 0
}

// Bit positions in the detail field used by ReplacementInfo.
//
// The two versions of the format description that have been seen disagree
// on which of bits 6 and 7 is the relative flag and which is the negative
// flag. Files seen in practice only make sense with bit 7 as the relative
// flag. If this turns out to be wrong then these two values are the only
// thing that needs to change.
const (
	RelativeBit = 7
	NegativeBit = 6
)

// other bits used by ReplacementInfo
const (
	sizeLo         = 3
	sizeHi         = 4
	replaceCode    = 5
	infoRemoteInit = 1
)

// ReplacementInfo describes the location and nature of a value to be
// replaced during relocation.
type ReplacementInfo struct {
	// the section containing the value to be replaced
	Target Section

	// offset of the value in the Target section
	Offset uint32

	Size     Size
	Relative bool
	Negative bool
}

// NewReplacementInfo derives the ReplacementInfo from a Ref.
//
// The Target field is not the same as the Ref.Target() value. It is decided
// by bit 1 of the info field (remote initialised data) and then by bit 5 of
// the detail field (code or initialised data).
func NewReplacementInfo(r Ref) ReplacementInfo {
	ri := ReplacementInfo{
		Offset:   r.Offset,
		Size:     Size(bitfield.BitValue(r.Detail, sizeHi)*2 + bitfield.BitValue(r.Detail, sizeLo)),
		Relative: bitfield.Bit(r.Detail, RelativeBit),
		Negative: bitfield.Bit(r.Detail, NegativeBit),
	}

	if bitfield.Bit(r.Info, infoRemoteInit) {
		ri.Target = RemoteInitData
	} else if bitfield.Bit(r.Detail, replaceCode) {
		ri.Target = Code
	} else {
		ri.Target = InitData
	}

	return ri
}

func (ri ReplacementInfo) String() string {
	s := fmt.Sprintf("%s@%08X %s", ri.Target, ri.Offset, ri.Size)
	if ri.Relative {
		s = fmt.Sprintf("%s relative", s)
	}
	if ri.Negative {
		s = fmt.Sprintf("%s negative", s)
	}
	return s
}
