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

	"github.com/jetsetilly/os9rof/logger"
	"github.com/jetsetilly/os9rof/stream"
)

// Magic is the sync word that precedes every segment.
const Magic uint32 = 0xdeadface

// the number of padding bytes at the end of every segment
const paddingLen = 16

// truncated wraps a stream error with the TruncatedInput error and the name
// of the field being read
func truncated(field string, err error) error {
	if errors.Is(err, stream.Exhausted) {
		return fmt.Errorf("%w: %s: %w", TruncatedInput, field, err)
	}
	return fmt.Errorf("%s: %w", field, err)
}

// readString reads a NUL terminated string. the terminator is consumed but is
// not part of the returned string
func readString(r *stream.Reader) (string, error) {
	var s []byte
	for {
		c, err := r.ReadU8()
		if err != nil {
			return "", err
		}
		if c == 0x00 {
			return string(s), nil
		}
		s = append(s, c)
	}
}

// readTable reads a u16 count followed by that many entries
func readTable[E any](r *stream.Reader, readEntry func(*stream.Reader) (E, error)) ([]E, error) {
	n, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	tbl := make([]E, 0, n)
	for i := uint16(0); i < n; i++ {
		e, err := readEntry(r)
		if err != nil {
			return nil, err
		}
		tbl = append(tbl, e)
	}

	return tbl, nil
}

func readHeader(r *stream.Reader) (Header, error) {
	var h Header
	var err error

	u16 := []*uint16{
		&h.TypeLanguage, &h.AttributeRev, &h.AsmValid, &h.AsmVersion,
		&h.Date1, &h.Date2, &h.Date3, &h.Edition,
	}
	for _, f := range u16 {
		if *f, err = r.ReadU16(); err != nil {
			return Header{}, err
		}
	}

	u32 := []*uint32{
		&h.SizeStatic, &h.SizeInitialised, &h.SizeCode, &h.SizeStack,
		&h.EntryPoint, &h.TrapEntryPoint,
		&h.SizeRemoteStatic, &h.SizeRemoteInitialised, &h.SizeDebug,
	}
	for _, f := range u32 {
		if *f, err = r.ReadU32(); err != nil {
			return Header{}, err
		}
	}

	return h, nil
}

func readRef(r *stream.Reader) (Ref, error) {
	var ref Ref
	var err error
	if ref.Info, err = r.ReadU8(); err != nil {
		return Ref{}, err
	}
	if ref.Detail, err = r.ReadU8(); err != nil {
		return Ref{}, err
	}
	if ref.Offset, err = r.ReadU32(); err != nil {
		return Ref{}, err
	}
	return ref, nil
}

func readSymbol(r *stream.Reader) (Symbol, error) {
	name, err := readString(r)
	if err != nil {
		return Symbol{}, err
	}
	ref, err := readRef(r)
	if err != nil {
		return Symbol{}, err
	}
	return Symbol{Name: name, Reference: ref}, nil
}

func readExternRefGroup(r *stream.Reader) (ExternRefGroup, error) {
	name, err := readString(r)
	if err != nil {
		return ExternRefGroup{}, err
	}
	refs, err := readTable(r, readRef)
	if err != nil {
		return ExternRefGroup{}, err
	}
	return ExternRefGroup{Name: name, Refs: refs}, nil
}

// ReadSegment decodes a single segment, starting at the current position of
// the stream.Reader. The sync word must already have been consumed.
//
// On success the read position will be immediately after the segment's
// padding. Any short read results in an error that satisfies
// errors.Is(err, TruncatedInput).
func ReadSegment(r *stream.Reader) (*Segment, error) {
	var err error
	seg := &Segment{}

	if seg.Header, err = readHeader(r); err != nil {
		return nil, truncated("header", err)
	}
	if seg.Name, err = readString(r); err != nil {
		return nil, truncated("name", err)
	}
	if seg.Symbols, err = readTable(r, readSymbol); err != nil {
		return nil, truncated("symbol table", err)
	}
	if seg.ObjectCode, err = r.ReadBytes(int(seg.Header.SizeCode)); err != nil {
		return nil, truncated("object code", err)
	}
	if seg.InitData, err = r.ReadBytes(int(seg.Header.SizeInitialised)); err != nil {
		return nil, truncated("initialised data", err)
	}
	if seg.InitRemote, err = r.ReadBytes(int(seg.Header.SizeRemoteInitialised)); err != nil {
		return nil, truncated("remote initialised data", err)
	}
	if seg.ExternRefs, err = readTable(r, readExternRefGroup); err != nil {
		return nil, truncated("external references", err)
	}
	if seg.LocalRefs, err = readTable(r, readRef); err != nil {
		return nil, truncated("local references", err)
	}
	if err = r.Skip(paddingLen); err != nil {
		return nil, truncated("padding", err)
	}

	logger.Logf(logger.Allow, "rof", "%s: %d symbols, %d code bytes, %d extern groups, %d local refs",
		seg.Name, len(seg.Symbols), len(seg.ObjectCode), len(seg.ExternRefs), len(seg.LocalRefs))

	return seg, nil
}

// ReadAll reads every segment from the stream.Reader.
//
// Reading stops without error when the stream is exhausted while reading a
// sync word. This includes the case where there are between one and three
// bytes remaining. A sync word that is read in full but which is not equal to
// Magic is a *SyncError.
//
// On error, the segments that were completely decoded before the error are
// returned alongside the error. A partially decoded segment is never
// returned.
func ReadAll(r *stream.Reader) ([]*Segment, error) {
	var segments []*Segment

	for {
		offset := r.Pos()

		sync, err := r.ReadU32()
		if err != nil {
			if errors.Is(err, stream.Exhausted) {
				return segments, nil
			}
			return segments, err
		}

		if sync != Magic {
			return segments, &SyncError{Sync: sync, Offset: offset}
		}

		seg, err := ReadSegment(r)
		if err != nil {
			return segments, fmt.Errorf("segment %d at %#x: %w", len(segments), offset, err)
		}

		segments = append(segments, seg)
	}
}
