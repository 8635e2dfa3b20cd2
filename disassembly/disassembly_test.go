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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/pulse6502/disassembly"
	"github.com/jetsetilly/pulse6502/hardware/cpu/instructions"
	"github.com/jetsetilly/pulse6502/hardware/memory"
	"github.com/jetsetilly/pulse6502/test"
)

func newMem(t *testing.T, origin uint16, data ...uint8) *memory.MemoryMap {
	t.Helper()
	mem := memory.NewMemoryMap()
	test.DemandSuccess(t, mem.AddROM("test", origin, data))
	return mem
}

func TestDisassemble(t *testing.T) {
	mem := newMem(t, 0xc000,
		0x4c, 0xf5, 0xc5, // JMP $C5F5
		0xa9, 0x00, // LDA #$00
		0x91, 0x80, // STA ($80),Y
		0xa1, 0x80, // LDA ($80,X)
		0xbe, 0x00, 0x03, // LDX $0300,Y
		0x6c, 0x00, 0x02, // JMP ($0200)
		0x0a,       // ASL A
		0xea,       // NOP
		0x04, 0xa9, // *NOP $A9
		0xf0, 0xfc, // BEQ $C011
		0xb6, 0x10, // LDX $10,Y
	)

	for _, c := range []struct {
		address uint16
		s       string
	}{
		{0xc000, "C000  4C F5 C5  JMP $C5F5"},
		{0xc003, "C003  A9 00     LDA #$00"},
		{0xc005, "C005  91 80     STA ($80),Y"},
		{0xc007, "C007  A1 80     LDA ($80,X)"},
		{0xc009, "C009  BE 00 03  LDX $0300,Y"},
		{0xc00c, "C00C  6C 00 02  JMP ($0200)"},
		{0xc00f, "C00F  0A        ASL A"},
		{0xc010, "C010  EA        NOP"},
		{0xc011, "C011  04 A9    *NOP $A9"},
		{0xc013, "C013  F0 FC     BEQ $C011"},
		{0xc015, "C015  B6 10     LDX $10,Y"},
	} {
		e := disassembly.Disassemble(mem, c.address)
		test.ExpectEquality(t, e.String(), c.s)
	}

	e := disassembly.Disassemble(mem, 0xc013)
	test.ExpectEquality(t, e.Operand, uint16(0xc011))
	test.ExpectEquality(t, e.Defn.Operator, instructions.BEQ)
	test.ExpectEquality(t, e.Next(), uint16(0xc015))
}

func TestSequence(t *testing.T) {
	mem := newMem(t, 0x0600, 0xa2, 0x00, 0xe8, 0xd0, 0xfd, 0x00)
	s := disassembly.Sequence(mem, 0x0600, 4)
	test.DemandEquality(t, len(s), 4)
	test.ExpectEquality(t, s[0].Instruction(), "LDX #$00")
	test.ExpectEquality(t, s[1].Instruction(), "INX")
	test.ExpectEquality(t, s[2].Instruction(), "BNE $0602")
	test.ExpectEquality(t, s[3].Instruction(), "BRK")
	test.ExpectEquality(t, s[3].Address, uint16(0x0605))
}

func TestWrite(t *testing.T) {
	mem := newMem(t, 0x0600, 0xa2, 0x00, 0xe8, 0x00)
	w := &test.CompareWriter{}
	test.DemandSuccess(t, disassembly.Write(w, mem, 0x0600, 0x0603))
	test.ExpectSuccess(t, w.Compare("0600  A2 00     LDX #$00\n0602  E8        INX\n0603  00        BRK\n"))

	// unmapped memory disassembles as zero and the address space ends at $ffff
	w.Clear()
	test.DemandSuccess(t, disassembly.Write(w, mem, 0xfffe, 0xffff))
	test.ExpectEquality(t, len(w.Lines()), 2)
}
