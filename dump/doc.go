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

// Package dump presents decoded ROF segments as text. It is the output side
// of the rdump command.
//
// A Dumper writes to any io.Writer. If the writer is a terminal the output
// can be coloured and the width of hex dumps limited to the width of the
// terminal. The DetectTerminal() function inspects a file and returns the
// Terminal settings that are suitable for it.
//
// The Pause() function waits for a single key press on the controlling
// terminal. It is used between segments when the output is being read
// interactively.
//
// The Graph() function writes the structure of decoded segments as a
// graphviz dot file. This is useful when checking the work of the ROF reader
// against an unfamiliar file.
package dump
