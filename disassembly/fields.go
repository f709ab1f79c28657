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
	"fmt"
	"strings"
)

type widths struct {
	label    int
	address  int
	bytecode int
	operator int
	operand  int
}

type fields struct {
	widths widths
}

// update width information for entry fields
func (fld *fields) update(e *Entry) {
	fld.widths.label = max(fld.widths.label, len(e.Label))
	fld.widths.address = max(fld.widths.address, len(e.Address))
	fld.widths.bytecode = max(fld.widths.bytecode, len(e.Bytecode))
	fld.widths.operator = max(fld.widths.operator, len(e.Operator))
	fld.widths.operand = max(fld.widths.operand, len(e.Operand))
}

// Field identifies which part of the disassembly entry is of interest.
type Field int

// List of valid fields.
const (
	FldLabel Field = iota
	FldAddress
	FldBytecode
	FldOperator
	FldOperand
	FldNotes
)

// GetField returns the formatted field from the specified Entry. Fields are
// padded to the width of the widest instance of the field in the
// disassembly.
func (dsm *Disassembly) GetField(field Field, e *Entry) string {
	switch field {
	case FldLabel:
		return fmt.Sprintf("%-*s", dsm.fields.widths.label, e.Label)
	case FldAddress:
		return fmt.Sprintf("%*s", dsm.fields.widths.address, e.Address)
	case FldBytecode:
		return fmt.Sprintf("%-*s", dsm.fields.widths.bytecode, e.Bytecode)
	case FldOperator:
		return fmt.Sprintf("%-*s", dsm.fields.widths.operator, e.Operator)
	case FldOperand:
		return fmt.Sprintf("%-*s", dsm.fields.widths.operand, e.Operand)
	case FldNotes:
		if len(e.Notes) == 0 {
			return ""
		}
		return fmt.Sprintf("; %s", strings.Join(e.Notes, ", "))
	}
	return ""
}
