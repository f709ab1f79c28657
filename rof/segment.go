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

// Symbol is an entry in the symbol table of a segment.
type Symbol struct {
	Name      string
	Reference Ref
}

// ExternRefGroup lists every place in a segment that refers to a symbol
// that is defined outside of the segment.
type ExternRefGroup struct {
	Name string
	Refs []Ref
}

// Segment is a single, fully decoded, segment from a ROF file.
type Segment struct {
	Header Header
	Name   string

	Symbols []Symbol

	// the length of each section is the size given by the Header
	ObjectCode []byte
	InitData   []byte
	InitRemote []byte

	ExternRefs []ExternRefGroup
	LocalRefs  []Ref
}

// SectionData returns the bytes for the Section. Only Code, InitData and
// RemoteInitData have any data in a ROF file. The other sections return
// nil.
func (seg *Segment) SectionData(section Section) []byte {
	switch section {
	case Code:
		return seg.ObjectCode
	case InitData:
		return seg.InitData
	case RemoteInitData:
		return seg.InitRemote
	}
	return nil
}

// SymbolsIn returns the symbols with a Ref.Target() equal to section. The
// order of the symbols is the order of the symbol table.
func (seg *Segment) SymbolsIn(section Section) []Symbol {
	var syms []Symbol
	for _, s := range seg.Symbols {
		if s.Reference.Target() == section {
			syms = append(syms, s)
		}
	}
	return syms
}
