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
	"strings"
)

// Header is the fixed size part at the start of every segment.
type Header struct {
	TypeLanguage uint16
	AttributeRev uint16
	AsmValid     uint16
	AsmVersion   uint16

	// assembly date. the three words are kept as they are found in the file
	Date1 uint16
	Date2 uint16
	Date3 uint16

	Edition uint16

	SizeStatic      uint32
	SizeInitialised uint32
	SizeCode        uint32
	SizeStack       uint32

	EntryPoint     uint32
	TrapEntryPoint uint32

	SizeRemoteStatic      uint32
	SizeRemoteInitialised uint32
	SizeDebug             uint32
}

// Type returns the module type, from the upper byte of TypeLanguage.
func (h Header) Type() uint8 {
	return uint8(h.TypeLanguage >> 8)
}

// Language returns the language, from the lower byte of TypeLanguage.
func (h Header) Language() uint8 {
	return uint8(h.TypeLanguage)
}

// Date returns the three date words in the form they are usually shown.
func (h Header) Date() string {
	return fmt.Sprintf("%04x/%04x/%04x", h.Date1, h.Date2, h.Date3)
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("type/lang: %02x/%02x  attr/rev: %04x  edition: %d\n", h.Type(), h.Language(), h.AttributeRev, h.Edition))
	s.WriteString(fmt.Sprintf("assembler: %04x (valid %04x)  date: %s\n", h.AsmVersion, h.AsmValid, h.Date()))
	s.WriteString(fmt.Sprintf("code: %d  idata: %d  static: %d  stack: %d\n", h.SizeCode, h.SizeInitialised, h.SizeStatic, h.SizeStack))
	s.WriteString(fmt.Sprintf("remote idata: %d  remote static: %d  debug: %d\n", h.SizeRemoteInitialised, h.SizeRemoteStatic, h.SizeDebug))
	s.WriteString(fmt.Sprintf("entry: %08X  trap entry: %08X", h.EntryPoint, h.TrapEntryPoint))
	return s.String()
}
