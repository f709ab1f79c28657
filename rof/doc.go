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

// Package rof reads relocatable object files (ROF) as produced by the OS-9
// 68000 assembler and linker.
//
// A ROF file is a sequence of segments, each preceded by the sync word
// 0xDEADFACE. All multi-byte values are big-endian. A segment is laid out as
// follows:
//
//	header          17 fixed width fields (see Header)
//	name            NUL terminated
//	symbols         u16 count, then each: NUL terminated name, Ref
//	object code     Header.SizeCode bytes
//	init data       Header.SizeInitialised bytes
//	remote init     Header.SizeRemoteInitialised bytes
//	external refs   u16 count, then each: NUL terminated name, u16 count, Refs
//	local refs      u16 count, then Refs
//	padding         16 bytes
//
// A Ref is a one byte info field, a one byte detail field and a four byte
// offset.
//
// ReadAll() reads every segment in a stream. It stops cleanly when the
// stream runs out while reading a sync word. A sync word that is read in full
// but which is not the expected value is an error (UnexpectedSync). Running
// out of data while reading a segment is also an error (TruncatedInput).
//
// On error, ReadAll() still returns the segments that were completely decoded
// before the error. Callers that present segments should decide whether to
// show those partial results or discard them. A partially decoded segment is
// never returned.
//
// Segments are decoded in one pass and nothing about a segment depends on
// any other segment.
package rof
