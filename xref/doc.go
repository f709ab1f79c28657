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

// Package xref answers the question "which symbol is this?" for an offset
// into one of the sections of a ROF segment.
//
// The answer is a Resolution. A Resolution names the closest symbol in the
// section that does not come after the offset, together with the distance
// from that symbol. When no such symbol exists the Resolution is raw and
// prints as the offset itself.
//
//	start        the offset is exactly at the symbol "start"
//	loop+A       the offset is ten bytes after the symbol "loop"
//	00000010     there is no symbol at or before offset 0x10
//
// ResolveSymbol() performs a linear scan of the symbol table on every call.
// This is fine for one-off queries. For repeated queries, such as when
// labelling every line of a disassembly, an Index should be built with
// NewIndex(). An Index gives the same answers as ResolveSymbol().
//
// ResolveLocalReference() goes one step further. The value found at the
// location named by a local reference is itself treated as an offset and
// resolved.
package xref
