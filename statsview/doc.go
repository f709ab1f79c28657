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

// Package statsview is a wrapper for the statsview runtime statistics
// server. It is only included when the statsview build tag is given:
//
//	go build -tags statsview
//
// Without the tag, Available() returns false and Launch() does nothing. The
// server is useful when decoding very large numbers of ROF files, to see the
// memory used by the decoded segments.
package statsview
