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

package nestest_test

import (
	"testing"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/nestest"
	"github.com/jetsetilly/pulse6502/test"
)

func TestParseLine(t *testing.T) {
	l, err := nestest.ParseLine("C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.PC, uint16(0xc000))
	test.ExpectEquality(t, l.Text, "4C F5 C5  JMP $C5F5")
	test.ExpectEquality(t, l.P, uint8(0x24))
	test.ExpectEquality(t, l.SP, uint8(0xfd))
	test.ExpectEquality(t, l.PPU, "0,21")
	test.ExpectEquality(t, l.Cycles, uint64(7))

	// legacy layout with a space before the cycle count
	l, err = nestest.ParseLine("C736  18        CLC                             A:00 X:00 Y:00 P:27 SP:FB CYC: 87\r")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.PC, uint16(0xc736))
	test.ExpectEquality(t, l.P, uint8(0x27))
	test.ExpectEquality(t, l.SP, uint8(0xfb))
	test.ExpectEquality(t, l.PPU, "")
	test.ExpectEquality(t, l.Cycles, uint64(87))

	// the disassembly can contain values that look like registers
	l, err = nestest.ParseLine("C72E  A9 40     LDA #$40 = A:00                 A:FF X:01 Y:02 P:A5 SP:FB PPU:  0, 78 CYC:26")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, l.A, uint8(0xff))
	test.ExpectEquality(t, l.X, uint8(0x01))
	test.ExpectEquality(t, l.Y, uint8(0x02))
	test.ExpectEquality(t, l.P, uint8(0xa5))
}

func TestParseLineMalformed(t *testing.T) {
	for _, s := range []string{
		"",
		"C0",
		"XXXX  4C F5 C5  JMP $C5F5  A:00 X:00 Y:00 P:24 SP:FD CYC:7",
		"C000  4C F5 C5  JMP $C5F5",
		"C000  4C F5 C5  JMP $C5F5  A:00 X:00 Y:00 P:24 CYC:7",
		"C000  4C F5 C5  JMP $C5F5  A:00 X:00 Y:00 P:24 SP:FD",
		"C000  4C F5 C5  JMP $C5F5  A:00 X:00 Y:00 P:2G SP:FD CYC:7",
		"C000  4C F5 C5  JMP $C5F5  A:00 X:00 Y:00 P:24 SP:FD CYC:x",
	} {
		_, err := nestest.ParseLine(s)
		test.ExpectSuccess(t, curated.Is(err, nestest.MalformedLine), s)
	}
}
