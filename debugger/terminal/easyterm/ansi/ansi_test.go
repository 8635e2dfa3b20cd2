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

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/debugger/terminal/easyterm/ansi"
	"github.com/jetsetilly/pulse6502/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("red", "", "", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91m")

	s, err = ansi.ColorBuild("green", "black", "bold", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[32;40;1m")

	_, err = ansi.ColorBuild("puce", "", "", false, false)
	test.ExpectSuccess(t, curated.Is(err, ansi.UnknownStyle))
	test.ExpectEquality(t, err.Error(), "ansi: unknown pen (puce)")

	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectSuccess(t, curated.Is(err, ansi.UnknownStyle))

	test.ExpectEquality(t, ansi.NormalPen, "\033[m")
	test.ExpectEquality(t, ansi.DimPens["cyan"], "\033[36m")
}
