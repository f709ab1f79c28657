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


package main

import (
	"github.com/jetsetilly/os9rof/dump"
	"github.com/jetsetilly/os9rof/paths"
	"github.com/jetsetilly/os9rof/prefs"
)

// name of the prefs file in the resource directory
const prefsFile = "prefs"

// preferences that persist between invocations of the command
type preferences struct {
	dsk *prefs.Disk

	// label and annotate disassemblies and reference lists with symbol names
	symbols prefs.Bool

	// bytes in each row of a hex dump
	hexWidth prefs.Int

	// use colour if the output is a terminal
	colour prefs.Bool
}

// newPreferences is the preferred method of initialisation for the
// preferences type. Values are loaded from disk and from the command line
// stack.
func newPreferences() (*preferences, error) {
	p := &preferences{}

	p.symbols.Set(true)
	p.hexWidth.Set(dump.DefaultHexWidth)
	p.hexWidth.SetRange(1, 64)
	p.colour.Set(true)

	pth, err := paths.ResourcePath(prefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("rdump.symbols", &p.symbols)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rdump.hexwidth", &p.hexWidth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("rdump.colour", &p.colour)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}
