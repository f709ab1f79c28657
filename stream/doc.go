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

// Package stream is a byte-oriented input abstraction. A Reader supplies
// sequential reads of unsigned integers in a configured byte order, raw byte
// runs and skips, with explicit control of the read position.
//
// Every read fails fast when fewer bytes remain than are requested. The
// error in that case always satisfies errors.Is(err, stream.Exhausted) and
// the read position is left unchanged.
package stream
