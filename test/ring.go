// This file is part of pulse6502.
//
// pulse6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pulse6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pulse6502.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
)

// RingWriter is an implementation of io.Writer that keeps only the most
// recently written bytes. Used to capture the tail of long running output
// such as an execution trace.
type RingWriter struct {
	buffer []byte
	size   int
	cursor int
	full   bool
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		size:   size,
		buffer: make([]byte, size),
	}, nil
}

func (r *RingWriter) String() string {
	if !r.full {
		return string(r.buffer[:r.cursor])
	}
	s := make([]byte, 0, r.size)
	s = append(s, r.buffer[r.cursor:]...)
	s = append(s, r.buffer[:r.cursor]...)
	return string(s)
}

// Reset empties the ring.
func (r *RingWriter) Reset() {
	r.cursor = 0
	r.full = false
}

// Write implements io.Writer.
func (r *RingWriter) Write(p []byte) (n int, err error) {
	n = len(p)

	// only the tail of an oversized write can survive
	if len(p) >= r.size {
		copy(r.buffer, p[len(p)-r.size:])
		r.cursor = 0
		r.full = true
		return n, nil
	}

	c := copy(r.buffer[r.cursor:], p)
	if c < len(p) {
		copy(r.buffer, p[c:])
		r.full = true
	} else if r.cursor+c == r.size {
		r.full = true
	}
	r.cursor = (r.cursor + len(p)) % r.size

	return n, nil
}
