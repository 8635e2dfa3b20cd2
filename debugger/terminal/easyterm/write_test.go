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

package easyterm

import (
	"testing"

	"github.com/jetsetilly/pulse6502/test"
)

func TestWriteNewlines(t *testing.T) {
	w := &test.CompareWriter{}
	et := &Terminal{out: w}

	et.Print("PC=%04x\n", 0xc000)
	test.ExpectSuccess(t, w.Compare("PC=c000\n"))

	// raw mode output has no post-processing so a carriage return is needed
	// for every newline
	w.Clear()
	et.raw = true
	n, err := et.Write([]byte("a\nb\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectSuccess(t, w.Compare("a\r\nb\r\n"))
}
