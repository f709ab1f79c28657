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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() and ExpectInequality() functions compare values of any
// comparable type. ExpectSuccess() and ExpectFailure() accept bool and error
// values and interpret them in the obvious way: a true bool or a nil error is
// a success.
//
// The Demand*() functions are the same as the equivalent Expect*() functions
// except that the test is terminated immediately on failure.
//
// Writer is an implementation of io.Writer that is useful for testing
// functions that write to an io.Writer.
package test
