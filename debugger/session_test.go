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

package debugger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/pulse6502/debugger"
	"github.com/jetsetilly/pulse6502/hardware/cpu"
	"github.com/jetsetilly/pulse6502/hardware/memory"
	"github.com/jetsetilly/pulse6502/test"
)

// counts X from zero to five, storing each value in $10, and then jams
//
//	C000  LDX #$00
//	C002  INX
//	C003  STX $10
//	C005  CPX #$05
//	C007  BNE $C002
//	C009  KIL
var program = []uint8{
	0xa2, 0x00,
	0xe8,
	0x86, 0x10,
	0xe0, 0x05,
	0xd0, 0xf9,
	0x02,
}

func newSession(t *testing.T) *debugger.Session {
	t.Helper()

	mem, ppu, err := memory.NewNES()
	test.DemandSuccess(t, err)

	data := make([]uint8, 0x4000)
	copy(data, program)
	data[0x3ffc] = 0x00
	data[0x3ffd] = 0xc0
	test.DemandSuccess(t, mem.AddROM("PRG", 0xc000, data))

	mc := cpu.NewCPU(mem)
	mc.Logging = false

	s := debugger.NewSession(mc, mem, ppu)
	test.DemandSuccess(t, s.Reset())
	return s
}

func TestStepInstruction(t *testing.T) {
	s := newSession(t)
	test.ExpectEquality(t, s.CPU.PC, uint16(0xc000))
	test.ExpectEquality(t, s.CPU.Cycles, uint64(7))

	test.ExpectSuccess(t, s.StepInstruction())
	test.ExpectEquality(t, s.CPU.PC, uint16(0xc002))
	test.ExpectEquality(t, s.CPU.Cycles, uint64(9))

	test.ExpectSuccess(t, s.StepInstruction())
	test.ExpectEquality(t, s.CPU.PC, uint16(0xc003))
	test.ExpectEquality(t, s.CPU.X, uint8(1))
	test.ExpectEquality(t, s.CPU.Cycles, uint64(11))
}

func TestQuantum(t *testing.T) {
	s := newSession(t)

	s.Quantum = debugger.QuantumCycle
	test.ExpectSuccess(t, s.Step())
	test.ExpectEquality(t, s.CPU.Cycles, uint64(8))
	test.ExpectEquality(t, s.CPU.InstructionBoundary(), false)

	// completes the current instruction
	s.Quantum = debugger.QuantumInstruction
	test.ExpectSuccess(t, s.Step())
	test.ExpectEquality(t, s.CPU.Cycles, uint64(9))
	test.ExpectEquality(t, s.CPU.PC, uint16(0xc002))
}

func TestRunCycles(t *testing.T) {
	s := newSession(t)

	// LDX and the first cycle of INX
	test.ExpectSuccess(t, s.RunCycles(3))
	test.ExpectEquality(t, s.CPU.Cycles, uint64(10))
	test.ExpectEquality(t, s.CPU.InstructionBoundary(), false)

	test.ExpectSuccess(t, s.StepInstruction())
	test.ExpectEquality(t, s.CPU.Cycles, uint64(11))
	test.ExpectEquality(t, s.CPU.PC, uint16(0xc003))
}

func TestRunUntil(t *testing.T) {
	s := newSession(t)

	h, err := s.RunUntil(0xc009, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.HaltTarget)
	test.ExpectEquality(t, h.PC, uint16(0xc009))
	test.ExpectEquality(t, s.CPU.X, uint8(5))
	test.ExpectEquality(t, s.Peek(0x0010), uint8(5))

	// reset + LDX + four taken loops + one loop where the branch is not taken
	test.ExpectEquality(t, s.CPU.Cycles, uint64(7+2+4*10+9))

	// the next instruction is KIL
	h, err = s.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.HaltKilled)
	test.ExpectEquality(t, s.CPU.Killed, true)
}

func TestRunLimit(t *testing.T) {
	s := newSession(t)

	// the limit is only checked at instruction boundaries
	h, err := s.Run(10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.HaltLimit)
	test.ExpectEquality(t, h.PC, uint16(0xc002))
	test.ExpectEquality(t, s.CPU.Cycles, uint64(19))
}

func TestBreakpoints(t *testing.T) {
	s := newSession(t)
	test.ExpectEquality(t, s.Breaks(), "no breakpoints")

	test.ExpectSuccess(t, s.AddBreak(0xc003))
	test.ExpectFailure(t, s.AddBreak(0xc003))
	test.ExpectSuccess(t, s.AddBreak(0xc000))
	test.ExpectEquality(t, s.Breaks(), "$c000 $c003")

	// breakpoint at the current PC
	h, err := s.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.HaltBreakpoint)
	test.ExpectEquality(t, h.PC, uint16(0xc000))

	// running again does not halt at the same breakpoint
	h, err = s.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.HaltBreakpoint)
	test.ExpectEquality(t, h.PC, uint16(0xc003))
	test.ExpectEquality(t, s.CPU.X, uint8(1))

	h, err = s.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.PC, uint16(0xc003))
	test.ExpectEquality(t, s.CPU.X, uint8(2))

	test.ExpectSuccess(t, s.DropBreak(0xc003))
	test.ExpectFailure(t, s.DropBreak(0xc003))
	test.ExpectEquality(t, s.Breaks(), "$c000")

	s.ClearBreaks()
	test.ExpectEquality(t, s.Breaks(), "no breakpoints")

	h, err = s.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.HaltKilled)
}

func TestTraps(t *testing.T) {
	s := newSession(t)
	test.ExpectEquality(t, s.Traps(), "no traps")

	test.ExpectSuccess(t, s.AddTrap(0x0010))
	test.ExpectFailure(t, s.AddTrap(0x0010))
	test.ExpectEquality(t, s.Traps(), "$0010")

	// halts on the instruction after the STX
	h, err := s.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.HaltTrap)
	test.ExpectEquality(t, h.PC, uint16(0xc005))
	test.ExpectEquality(t, h.Detail, "$0010 00 -> 01")

	h, err = s.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Reason, debugger.HaltTrap)
	test.ExpectEquality(t, h.Detail, "$0010 01 -> 02")

	// poking the trapped address also springs the trap
	test.ExpectSuccess(t, s.Poke(0x0010, 0xff))
	h, err = s.Run(0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.Detail, "$0010 02 -> ff")
	test.ExpectEquality(t, h.PC, uint16(0xc005))

	test.ExpectSuccess(t, s.DropTrap(0x0010))
	test.ExpectFailure(t, s.DropTrap(0x0010))

	test.ExpectSuccess(t, s.AddTrap(0x0011))
	s.ClearTraps()
	test.ExpectEquality(t, s.Traps(), "no traps")
}

func TestPoke(t *testing.T) {
	s := newSession(t)
	test.ExpectSuccess(t, s.Poke(0x0200, 0x42))
	test.ExpectEquality(t, s.Peek(0x0200), uint8(0x42))

	// unmapped memory
	test.ExpectFailure(t, s.Poke(0x5000, 0x42))
	test.ExpectEquality(t, s.Peek(0x5000), uint8(0))
}

func TestTrace(t *testing.T) {
	s := newSession(t)

	l := debugger.TraceLine(s.CPU, s.Mem)
	test.ExpectSuccess(t, strings.HasPrefix(l, "C000  A2 00     LDX #$00"))
	test.ExpectEquality(t, strings.Index(l, "A:"), 48)
	test.ExpectSuccess(t, strings.HasSuffix(l, "A:00 X:00 Y:00 P:24 SP:FD CYC:7"))

	var lines []string
	s.Trace = func(l string) {
		lines = append(lines, l)
	}
	test.ExpectSuccess(t, s.StepInstruction())
	test.ExpectSuccess(t, s.StepInstruction())
	test.ExpectEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "C002  E8        INX"))
	test.ExpectSuccess(t, strings.HasSuffix(lines[1], "CYC:9"))
}

func TestDump(t *testing.T) {
	s := newSession(t)
	b := &bytes.Buffer{}
	s.Dump(b)
	test.ExpectSuccess(t, strings.Contains(b.String(), "digraph"))
	test.ExpectSuccess(t, strings.Contains(b.String(), "PPUSTATUS"))
}
