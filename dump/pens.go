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

// pen is an ANSI control sequence used to colour text.
type pen string

// the pens used by the dumper. normalPen resets the colour
const (
	normalPen  pen = "\033[0m"
	headingPen pen = "\033[1m"
	symbolPen  pen = "\033[96m"
	addressPen pen = "\033[33m"
	sectionPen pen = "\033[32m"
	notePen    pen = "\033[2m"
)

// colour the string with the pen if the terminal supports colour.
func (d *Dumper) colour(p pen, s string) string {
	if !d.Terminal.Colour || s == "" {
		return s
	}
	return string(p) + s + string(normalPen)
}
