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

// Package modalflag wraps the flag package of the standard library. It adds
// "modes" to the command line, where each mode has its own set of flags.
//
// For example, the rdump command has a DISASM mode with flags that only
// make sense for a disassembly:
//
//	rdump -log DISASM -bytecode prog.r
//
// The -log flag belongs to the top level and the -bytecode flag belongs to
// the DISASM mode. Arguments are given to a Modes type with NewArgs() and
// parsed one level at a time with Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DUMP", "DISASM")
//	log := md.AddBool("log", false, "echo log to stderr")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "DISASM":
//		md.NewMode()
//		bytecode := md.AddBool("bytecode", false, "show bytecode")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default mode. The
// default is used when the first argument after the flags is not the name
// of a mode. Mode names are not case sensitive.
//
// Help is printed to the Output writer when the -help (or -h) flag is
// given. It lists the flags and sub-modes for the current level.
package modalflag
