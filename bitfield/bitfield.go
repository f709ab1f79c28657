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

package bitfield

// Value is the set of types that bit fields can be read from.
type Value interface {
	~uint8 | ~uint16 | ~uint32
}

// Mask returns a value with the lowest length bits set.
func Mask[T Value](length uint) T {
	if length == 0 {
		return 0
	}
	return T(1<<length - 1)
}

// Field returns length bits of v starting at bit position pos. The result is
// shifted down so that bit pos of v becomes bit 0 of the result.
func Field[T Value](v T, pos uint, length uint) T {
	return (v >> pos) & Mask[T](length)
}

// Bit returns true if bit n of v is set.
func Bit[T Value](v T, n uint) bool {
	return v&(1<<n) != 0
}

// BitValue is like Bit but returns the bit as a 0 or 1 of the same type as
// the input. useful when bits are combined arithmetically.
func BitValue[T Value](v T, n uint) T {
	return (v >> n) & 0x01
}
