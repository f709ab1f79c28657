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

package rof

import (
	"errors"
	"fmt"
)

// TruncatedInput is returned when a fixed size or length prefixed read runs
// past the end of the available data.
var TruncatedInput = errors.New("truncated input")

// UnexpectedSync is returned when a sync word has been read but is not equal
// to Magic. The error will be a *SyncError which carries the value read.
var UnexpectedSync = errors.New("wrong sync bytes")

// OutOfBounds is returned when a value is read from beyond the end of a
// section.
var OutOfBounds = errors.New("out of bounds")

// SyncError is the error returned by ReadAll() when a sync word is not equal
// to Magic.
type SyncError struct {
	// the value that was read in place of the sync word
	Sync uint32

	// offset in the stream of the sync word
	Offset int
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("%v: %08X at offset %#x", UnexpectedSync, e.Sync, e.Offset)
}

// Is implements the interface used by errors.Is(). A SyncError is always an
// UnexpectedSync error.
func (e *SyncError) Is(target error) bool {
	return target == UnexpectedSync
}
