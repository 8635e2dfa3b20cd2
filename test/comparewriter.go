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

import "strings"

// CompareWriter is an implementation of the io.Writer interface. It should be
// used to capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer strings.Builder
}

// Write implements the io.Writer interface.
func (w *CompareWriter) Write(p []byte) (n int, err error) {
	return w.buffer.Write(p)
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.buffer.Reset()
}

// Compare buffered output with predefined/example string.
func (w *CompareWriter) Compare(s string) bool {
	return s == w.buffer.String()
}

// Lines returns the buffered output split into lines. A trailing newline
// does not produce an empty final line.
func (w *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(w.buffer.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (w *CompareWriter) String() string {
	return w.buffer.String()
}
