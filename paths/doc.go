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

// Package paths returns the location of the files that the os9rof tools
// keep between sessions, such as the preferences file.
//
// If a directory named .os9rof exists in the current working directory then
// that is used as the base path. This is useful during development and for
// keeping more than one set of preferences. Otherwise, the base path is the
// os9rof directory in the user's configuration directory. See the
// os.UserConfigDir() function for the location on each host OS.
package paths
