// This file is part of Inputrelay.
//
// Inputrelay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Inputrelay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Inputrelay.  If not, see <https://www.gnu.org/licenses/>.

package test

import (
	"fmt"
	"strings"
	"sync"
)

// RingWriter is an io.Writer that keeps only the most recent bytes written
// to it. Useful for checking the tail of output that is written continuously,
// such as a log echo or a terminal surface.
//
// Writes and reads are safe to call from different goroutines.
type RingWriter struct {
	crit sync.Mutex
	buf  []byte
	size int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type. The size is the number of bytes kept.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: ring writer size must be positive (%d)", size)
	}
	return &RingWriter{
		buf:  make([]byte, 0, size),
		size: size,
	}, nil
}

// Write implements the io.Writer interface. All of p is accepted but only
// the final bytes are kept if the ring overflows.
func (r *RingWriter) Write(p []byte) (int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	if len(p) >= r.size {
		r.buf = append(r.buf[:0], p[len(p)-r.size:]...)
		return len(p), nil
	}

	if over := len(r.buf) + len(p) - r.size; over > 0 {
		n := copy(r.buf, r.buf[over:])
		r.buf = r.buf[:n]
	}
	r.buf = append(r.buf, p...)

	return len(p), nil
}

// String returns the kept bytes, oldest first.
func (r *RingWriter) String() string {
	r.crit.Lock()
	defer r.crit.Unlock()
	return string(r.buf)
}

// Contains is a shorthand for strings.Contains() on the kept bytes.
func (r *RingWriter) Contains(s string) bool {
	return strings.Contains(r.String(), s)
}

// Reset discards everything kept.
func (r *RingWriter) Reset() {
	r.crit.Lock()
	defer r.crit.Unlock()
	r.buf = r.buf[:0]
}
