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
	"fmt"
	"io"

	"github.com/pkg/term"
)

// the controlling terminal. key presses are read from here rather than
// stdin so that Pause() works when input has been redirected
const controllingTerminal = "/dev/tty"

// Pause writes the prompt to output and waits for a single key press. The
// terminal is put into cbreak mode so that the key press does not need to
// be followed by return.
func Pause(output io.Writer, prompt string) error {
	t, err := term.Open(controllingTerminal)
	if err != nil {
		return fmt.Errorf("pause: %w", err)
	}
	defer t.Close()

	err = term.CBreakMode(t)
	if err != nil {
		return fmt.Errorf("pause: %w", err)
	}
	defer t.Restore()

	fmt.Fprint(output, prompt)

	b := make([]byte, 1)
	_, err = t.Read(b)
	fmt.Fprintln(output)
	if err != nil {
		return fmt.Errorf("pause: %w", err)
	}

	return nil
}
