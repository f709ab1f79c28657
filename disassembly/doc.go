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

// Package disassembly produces a listing of the object code of a ROF
// segment.
//
// The disassembly is linear. Every word of the object code is decoded as an
// instruction, starting at offset zero. Words that do not decode are listed
// as data with a dc.w (or dc.b for a trailing odd byte) directive. There is
// no flow analysis and so data placed in the code section is decoded as
// though it were code.
//
// Entries are labelled with the name of the symbol at that offset, if there
// is one. Words that are the target of a relocation (a local reference or an
// external reference into the code section) are annotated with the
// resolution of that relocation.
//
// For quick disassemblies the FromSegment() function will return a complete
// Disassembly that can be output with the Write() function.
package disassembly
