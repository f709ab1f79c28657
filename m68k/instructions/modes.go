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

package instructions

import "fmt"

// AnyRegister indicates that an AddressingMode matches any register number.
const AnyRegister = -1

// AddressingMode describes one effective addressing mode.
type AddressingMode struct {
	Name string

	// the value of the three bit mode field
	Mode uint8

	// the value the register field must have for the mode to match. modes
	// that use the register field to hold a register number will have a
	// value of AnyRegister
	Register int

	format func(reg uint8) string
}

// Matches returns true if the mode and register field values describe this
// AddressingMode.
func (m AddressingMode) Matches(mode uint8, reg uint8) bool {
	return m.Mode == mode && (m.Register == AnyRegister || m.Register == int(reg))
}

// Render the addressing mode with the register number.
func (m AddressingMode) Render(reg uint8) string {
	return m.format(reg)
}

func (m AddressingMode) String() string {
	return m.Name
}

// The register based addressing modes.
var (
	DataReg = AddressingMode{
		Name:     "data register direct",
		Mode:     0b000,
		Register: AnyRegister,
		format:   func(reg uint8) string { return fmt.Sprintf("D%d", reg) },
	}
	AddressReg = AddressingMode{
		Name:     "address register direct",
		Mode:     0b001,
		Register: AnyRegister,
		format:   func(reg uint8) string { return fmt.Sprintf("A%d", reg) },
	}
	Indirect = AddressingMode{
		Name:     "address register indirect",
		Mode:     0b010,
		Register: AnyRegister,
		format:   func(reg uint8) string { return fmt.Sprintf("(A%d)", reg) },
	}
	IndirectInc = AddressingMode{
		Name:     "address register indirect with postincrement",
		Mode:     0b011,
		Register: AnyRegister,
		format:   func(reg uint8) string { return fmt.Sprintf("(A%d)+", reg) },
	}
	IndirectDec = AddressingMode{
		Name:     "address register indirect with predecrement",
		Mode:     0b100,
		Register: AnyRegister,
		format:   func(reg uint8) string { return fmt.Sprintf("-(A%d)", reg) },
	}
)

// ModeList is an ordered list of addressing modes.
type ModeList []AddressingMode

// Lookup returns the first AddressingMode in the list that matches the mode
// and register field values.
func (l ModeList) Lookup(mode uint8, reg uint8) (AddressingMode, bool) {
	for _, m := range l {
		if m.Matches(mode, reg) {
			return m, true
		}
	}
	return AddressingMode{}, false
}

// Render the first AddressingMode in the list that matches the mode and
// register field values. Returns the empty string if there is no match.
func (l ModeList) Render(mode uint8, reg uint8) string {
	m, ok := l.Lookup(mode, reg)
	if !ok {
		return ""
	}
	return m.Render(reg)
}

// Commonly used lists of addressing modes.
var (
	AllModes    = ModeList{DataReg, AddressReg, Indirect, IndirectInc, IndirectDec}
	AddressOnly = ModeList{AddressReg, Indirect, IndirectInc, IndirectDec}
)
