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

// Section classifies symbols and the targets of references.
type Section int

// List of valid Section values. The first four values are significant
// because they are built directly from the initialised and remote bits of a
// Ref's detail field.
const (
	Data Section = iota
	InitData
	RemoteData
	RemoteInitData
	Equ
	Code
)

func (s Section) String() string {
	switch s {
	case Data:
		return "data"
	case InitData:
		return "idata"
	case RemoteData:
		return "rdata"
	case RemoteInitData:
		return "ridata"
	case Equ:
		return "equ"
	case Code:
		return "code"
	}
	return "unknown section"
}

// Sections lists every Section in order.
var Sections = []Section{Data, InitData, RemoteData, RemoteInitData, Equ, Code}
