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

package easyterm_test

import (
	"testing"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/debugger/terminal/easyterm"
	"github.com/jetsetilly/pulse6502/test"
)

func TestDecodeKey(t *testing.T) {
	k := easyterm.DecodeKey([]byte{' '})
	test.ExpectEquality(t, k.Rune, ' ')
	test.ExpectEquality(t, k.Esc, rune(0))

	k = easyterm.DecodeKey([]byte{easyterm.KeyEsc, easyterm.EscCursor, easyterm.CursorUp})
	test.ExpectEquality(t, k.Rune, rune(easyterm.KeyEsc))
	test.ExpectEquality(t, k.Esc, rune(easyterm.CursorUp))

	k = easyterm.DecodeKey([]byte{easyterm.KeyEsc})
	test.ExpectEquality(t, k.Rune, rune(easyterm.KeyEsc))
	test.ExpectEquality(t, k.Esc, rune(0))

	k = easyterm.DecodeKey(nil)
	test.ExpectEquality(t, k.Rune, rune(0))
}

func TestNewTerminalError(t *testing.T) {
	_, err := easyterm.NewTerminal("/dev/pulse6502-missing-tty", &test.CompareWriter{})
	test.ExpectSuccess(t, curated.Is(err, easyterm.TerminalError))
}
