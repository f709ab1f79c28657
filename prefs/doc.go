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

// Package prefs stores user preferences for the os9rof tools.
//
// A preference is one of the Bool, Int or String types. Each type can be
// Set() with a value of the correct Go type or with a string, which is
// converted as required. Preferences are grouped together with a Disk,
// which associates each preference with a key and saves them to a single
// file.
//
//	var symbols prefs.Bool
//	dsk, err := prefs.NewDisk(fn)
//	err = dsk.Add("rdump.symbols", &symbols)
//	err = dsk.Load()
//
// The file is plain text, one preference per line, with a short warning
// at the start of the file. Lines with a key that has not been added to the
// Disk are preserved when the file is saved.
//
// Preferences can also be given on the command line with a string of
// key::value pairs separated by semicolons. PushCommandLineStack() makes
// these values available and they take priority over the values in the
// file the next time the Disk is loaded.
package prefs
