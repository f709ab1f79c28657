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

package dump

import (
	"os"

	"golang.org/x/term"
)

// Terminal describes the capabilities of the output.
type Terminal struct {
	// use ANSI colour sequences
	Colour bool

	// width in characters. a value of zero means the width is not known
	Width int
}

// DetectTerminal returns the Terminal settings for the file. A file that is
// not a terminal has no colour and an unknown width.
func DetectTerminal(f *os.File) Terminal {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return Terminal{}
	}

	t := Terminal{Colour: true}
	if w, _, err := term.GetSize(fd); err == nil {
		t.Width = w
	}

	return t
}
