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

// Package bitfield extracts fixed-width bit ranges from the small unsigned
// values found in ROF reference records and 68000 instruction words.
//
// Bit positions count from zero at the least significant bit. For example,
// the register field of a 68000 effective address occupies bits 0 to 2 and
// the mode field bits 3 to 5:
//
//	mode := bitfield.Field(word, 3, 3)
//	reg := bitfield.Field(word, 0, 3)
package bitfield
