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

package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/os9rof/disassembly"
	"github.com/jetsetilly/os9rof/rof"
	"github.com/jetsetilly/os9rof/xref"
)

// SymbolFilter decides which symbols are included in a symbol listing.
type SymbolFilter interface {
	Include(sym rof.Symbol) (bool, error)
}

// DefaultHexWidth is the number of bytes in each row of a hex dump if the
// HexWidth field of the Dumper is not set.
const DefaultHexWidth = 16

// Dumper writes text descriptions of ROF segments.
type Dumper struct {
	Output   io.Writer
	Terminal Terminal

	// number of bytes in each row of a hex dump. the width will be reduced
	// if necessary to fit the terminal
	HexWidth int

	// label and annotate disassemblies with symbol names
	Symbols bool

	// include bytecode in disassemblies
	Bytecode bool

	// if Filter is nil then all symbols are listed
	Filter SymbolFilter
}

func (d *Dumper) printf(format string, a ...any) {
	fmt.Fprintf(d.Output, format, a...)
}

func (d *Dumper) heading(s string) {
	d.printf("%s\n", d.colour(headingPen, s))
}

// Segment writes everything about the segment. The header, the symbol table,
// the references and a hex dump of each section with data.
func (d *Dumper) Segment(seg *rof.Segment) error {
	d.Header(seg)

	d.printf("\n")
	err := d.SymbolTable(seg)
	if err != nil {
		return err
	}

	d.printf("\n")
	d.ExternRefs(seg)

	d.printf("\n")
	d.LocalRefs(seg)

	for _, sec := range []rof.Section{rof.Code, rof.InitData, rof.RemoteInitData} {
		data := seg.SectionData(sec)
		if len(data) == 0 {
			continue
		}
		d.printf("\n")
		d.Hex(fmt.Sprintf("%s section (%d bytes)", sec, len(data)), data)
	}

	return nil
}

// Header writes the name and header of the segment.
func (d *Dumper) Header(seg *rof.Segment) {
	d.heading(fmt.Sprintf("segment %s", seg.Name))
	d.printf("%s\n", seg.Header)
}

// SymbolTable writes the symbols of the segment that pass the Filter.
func (d *Dumper) SymbolTable(seg *rof.Segment) error {
	syms := make([]rof.Symbol, 0, len(seg.Symbols))
	for _, s := range seg.Symbols {
		if d.Filter != nil {
			ok, err := d.Filter.Include(s)
			if err != nil {
				return fmt.Errorf("dump: %w", err)
			}
			if !ok {
				continue
			}
		}
		syms = append(syms, s)
	}

	if len(syms) == len(seg.Symbols) {
		d.heading(fmt.Sprintf("symbols: %d", len(syms)))
	} else {
		d.heading(fmt.Sprintf("symbols: %d of %d", len(syms), len(seg.Symbols)))
	}

	width := 0
	for _, s := range syms {
		width = max(width, len(s.Name))
	}

	for _, s := range syms {
		d.printf("  %s %s %s\n",
			d.colour(symbolPen, fmt.Sprintf("%-*s", width, s.Name)),
			d.colour(sectionPen, fmt.Sprintf("%-6s", s.Reference.Target())),
			d.colour(addressPen, fmt.Sprintf("%08X", s.Reference.Offset)))
	}

	return nil
}

// ExternRefs writes the external reference groups of the segment.
func (d *Dumper) ExternRefs(seg *rof.Segment) {
	d.heading(fmt.Sprintf("external references: %d", len(seg.ExternRefs)))
	for _, grp := range seg.ExternRefs {
		d.printf("  %s\n", d.colour(symbolPen, grp.Name))
		for _, r := range grp.Refs {
			d.printf("    %s\n", rof.NewReplacementInfo(r))
		}
	}
}

// LocalRefs writes each local reference of the segment in the form:
//
//	section@offset->target
//
// where section and offset are where the reference is and target is the
// section that the value at that place refers to. Where possible, the value
// is resolved and shown as a note.
func (d *Dumper) LocalRefs(seg *rof.Segment) {
	idx := xref.NewIndex(seg)

	d.heading(fmt.Sprintf("local references: %d", len(seg.LocalRefs)))
	for _, r := range seg.LocalRefs {
		ri := rof.NewReplacementInfo(r)

		s := fmt.Sprintf("%s@%s->%s",
			d.colour(sectionPen, ri.Target.String()),
			d.colour(addressPen, fmt.Sprintf("%08X", ri.Offset)),
			d.colour(sectionPen, r.Target().String()))

		res, err := idx.ResolveLocalReference(r)
		if err != nil {
			s = fmt.Sprintf("%s %s", s, d.colour(notePen, fmt.Sprintf("; %v", err)))
		} else if d.Symbols {
			s = fmt.Sprintf("%s %s", s, d.colour(notePen, fmt.Sprintf("; %s %s", ri.Size, res)))
		}

		d.printf("  %s\n", s)
	}
}

// hexWidth returns the number of bytes in each row of a hex dump.
func (d *Dumper) hexWidth() int {
	w := d.HexWidth
	if w <= 0 {
		w = DefaultHexWidth
	}

	// each row is an eight digit offset followed by two spaces. each byte
	// then needs three characters for the hex and one for the ascii and
	// there are two extra characters either side of the ascii
	if d.Terminal.Width > 0 {
		fit := (d.Terminal.Width - 12) / 4
		w = min(w, max(fit, 1))
	}

	return w
}

// Hex writes a hex dump of the data with a title.
func (d *Dumper) Hex(title string, data []byte) {
	d.heading(title)

	w := d.hexWidth()

	for offset := 0; offset < len(data); offset += w {
		row := data[offset:min(offset+w, len(data))]

		s := strings.Builder{}
		for i := 0; i < w; i++ {
			if i < len(row) {
				s.WriteString(fmt.Sprintf("%02x ", row[i]))
			} else {
				s.WriteString("   ")
			}
		}

		a := strings.Builder{}
		for _, b := range row {
			if b >= 0x20 && b < 0x7f {
				a.WriteByte(b)
			} else {
				a.WriteByte('.')
			}
		}

		d.printf("%s  %s|%s|\n", d.colour(addressPen, fmt.Sprintf("%08X", offset)), s.String(), a.String())
	}
}

// disassemble the object code of the segment. symbols are not used unless
// the Symbols field is set
func (d *Dumper) disassemble(seg *rof.Segment) (*disassembly.Disassembly, error) {
	src := seg
	if !d.Symbols {
		cp := *seg
		cp.Symbols = nil
		src = &cp
	}

	dsm, err := disassembly.FromSegment(src)
	if err != nil {
		return nil, fmt.Errorf("dump: %w", err)
	}
	return dsm, nil
}

// Disasm writes a disassembly of the object code of the segment.
func (d *Dumper) Disasm(seg *rof.Segment) error {
	dsm, err := d.disassemble(seg)
	if err != nil {
		return err
	}

	d.heading(fmt.Sprintf("disassembly of %s (%d bytes)", seg.Name, len(seg.ObjectCode)))

	return dsm.Write(d.Output, disassembly.WriteAttr{
		ByteCode: d.Bytecode,
		Notes:    true,
	})
}

// Grep writes the disassembly entries of the segment that contain the search
// string. The search is not case sensitive. Returns the number of matching
// entries.
func (d *Dumper) Grep(seg *rof.Segment, search string) (int, error) {
	dsm, err := d.disassemble(seg)
	if err != nil {
		return 0, err
	}

	return dsm.Grep(d.Output, disassembly.WriteAttr{
		ByteCode: d.Bytecode,
		Notes:    true,
	}, disassembly.GrepAll, search, false)
}

// Refs writes the segment name, the number of symbols and the local
// references. This is a short summary of the segment.
func (d *Dumper) Refs(seg *rof.Segment) {
	d.heading(seg.Name)
	d.printf("symbols: %d\n", len(seg.Symbols))
	d.LocalRefs(seg)
}
