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
	"sort"

	"github.com/jetsetilly/os9rof/rof"
)

type entry struct {
	offset uint32
	name   string
}

// Index is a precomputed form of a segment's symbol table. Resolve() gives
// the same result as ResolveSymbol() without scanning the entire symbol
// table each time.
//
// An Index does not see changes made to the segment after it was built.
type Index struct {
	seg *rof.Segment

	// one list for each section, sorted by offset. each offset appears only
	// once
	sections map[rof.Section][]entry
}

// NewIndex is the preferred method of initialisation for the Index type.
func NewIndex(seg *rof.Segment) *Index {
	idx := &Index{
		seg:      seg,
		sections: make(map[rof.Section][]entry),
	}

	for _, s := range seg.Symbols {
		sec := s.Reference.Target()
		idx.sections[sec] = append(idx.sections[sec], entry{
			offset: s.Reference.Offset,
			name:   s.Name,
		})
	}

	for sec, ents := range idx.sections {
		// stable sort so that the first symbol at any offset stays first
		sort.SliceStable(ents, func(i, j int) bool {
			return ents[i].offset < ents[j].offset
		})

		// drop later symbols that share an offset
		n := 0
		for i := range ents {
			if n > 0 && ents[n-1].offset == ents[i].offset {
				continue
			}
			ents[n] = ents[i]
			n++
		}
		idx.sections[sec] = ents[:n]
	}

	return idx
}

// Resolve the offset in the section.
func (idx *Index) Resolve(section rof.Section, offset uint32) Resolution {
	res := Resolution{
		Section: section,
		Offset:  offset,
	}

	ents := idx.sections[section]

	// first entry beyond the offset. the entry we want is the one before it
	i := sort.Search(len(ents), func(i int) bool {
		return ents[i].offset > offset
	})
	if i == 0 {
		return res
	}

	e := ents[i-1]
	res.Resolved = true
	res.Symbol = e.name
	res.Delta = offset - e.offset
	return res
}

// Label returns the name of the symbol that is exactly at the offset in the
// section. Returns false if there is no such symbol.
func (idx *Index) Label(section rof.Section, offset uint32) (string, bool) {
	res := idx.Resolve(section, offset)
	if !res.Exact() {
		return "", false
	}
	return res.Symbol, true
}

// ResolveLocalReference is the same as the package level function of the
// same name but uses the Index for the final resolution.
func (idx *Index) ResolveLocalReference(ref rof.Ref) (Resolution, error) {
	v, err := ReferencedValue(ref, idx.seg)
	if err != nil {
		return Resolution{}, err
	}
	return idx.Resolve(ref.Target(), v), nil
}
