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

package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Exhausted is returned when a read requests more bytes than remain.
var Exhausted = errors.New("stream exhausted")

// Reader reads from an in-memory byte slice.
type Reader struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

// NewReader returns a Reader for data. Multi-byte values are read in the
// specified byte order.
func NewReader(data []byte, order binary.ByteOrder) *Reader {
	return &Reader{
		data:  data,
		order: order,
	}
}

// NewReaderFrom reads everything from r and returns a Reader for the data.
func NewReaderFrom(r io.Reader, order binary.ByteOrder) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	return NewReader(data, order), nil
}

// Pos returns the current read position as an offset from the start of the
// data.
func (r *Reader) Pos() int {
	return r.pos
}

// Len returns the total number of bytes in the stream.
func (r *Reader) Len() int {
	return len(r.data)
}

// Remaining returns the number of bytes between the read position and the end
// of the stream.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Seek sets the read position. It is valid to seek to the end of the stream
// but not beyond it.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("%w: seek to %#x in stream of %d bytes", Exhausted, pos, len(r.data))
	}
	r.pos = pos
	return nil
}

// take returns the next n bytes and advances the read position
func (r *Reader) take(n int) ([]byte, error) {
	if n < 0 || n > r.Remaining() {
		return nil, fmt.Errorf("%w: %d bytes requested at %#x with %d remaining", Exhausted, n, r.pos, r.Remaining())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// Skip advances the read position by n bytes.
func (r *Reader) Skip(n int) error {
	_, err := r.take(n)
	return err
}

// ReadBytes returns a copy of the next n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	c := make([]byte, n)
	copy(c, b)
	return c, nil
}

// ReadU8 reads a single byte.
func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadU16 reads a 16 bit value in the byte order of the Reader.
func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(b), nil
}

// ReadU32 reads a 32 bit value in the byte order of the Reader.
func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return r.order.Uint32(b), nil
}
