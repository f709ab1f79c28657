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
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Notes    bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		err := dsm.WriteEntry(output, attr, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	s.WriteString(dsm.GetField(FldLabel, e))
	s.WriteString(" ")
	s.WriteString(dsm.GetField(FldAddress, e))
	s.WriteString(" ")

	if attr.ByteCode {
		s.WriteString(dsm.GetField(FldBytecode, e))
		s.WriteString(" ")
	}

	s.WriteString(dsm.GetField(FldOperator, e))
	s.WriteString(" ")
	s.WriteString(dsm.GetField(FldOperand, e))

	if attr.Notes && len(e.Notes) > 0 {
		s.WriteString(" ")
		s.WriteString(dsm.GetField(FldNotes, e))
	}

	_, err := io.WriteString(output, strings.TrimRight(s.String(), " ")+"\n")
	return err
}
