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

package main

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pulse6502/debugger"
	"github.com/jetsetilly/pulse6502/debugger/terminal/easyterm"
	"github.com/jetsetilly/pulse6502/hardware/cpu"
	"github.com/jetsetilly/pulse6502/hardware/memory"
	"github.com/jetsetilly/pulse6502/test"
)

func newStepSession(t *testing.T, program ...uint8) *debugger.Session {
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
	sess := debugger.NewSession(mc, mem, ppu)
	test.DemandSuccess(t, sess.Reset())
	return sess
}

func keyPresses(keys ...rune) <-chan easyterm.Key {
	ch := make(chan easyterm.Key, len(keys))
	for _, k := range keys {
		ch <- easyterm.Key{Rune: k}
	}
	close(ch)
	return ch
}

func noSuspend() error {
	return nil
}

func TestStepInterrupt(t *testing.T) {
	// JMP $C000
	sess := newStepSession(t, 0x4c, 0x00, 0xc0)
	w := &test.CompareWriter{}

	// ctrl-c at the prompt ends the session. the key after it is never seen
	err := stepSession(w, sess, keyPresses(easyterm.KeyInterrupt, 'n'), noSuspend)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sess.CPU.PC, uint16(0xc000))
	test.ExpectEquality(t, sess.CPU.Cycles, uint64(7))

	// continue on a program that never ends is stopped by ctrl-c
	w.Clear()
	err = stepSession(w, sess, keyPresses('c', easyterm.KeyInterrupt), noSuspend)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(w.String(), "interrupted at $c000\n"))
	test.ExpectSuccess(t, sess.CPU.Cycles > stepRunSlice)
	test.ExpectSuccess(t, sess.CPU.InstructionBoundary())
}

func TestStepSuspend(t *testing.T) {
	sess := newStepSession(t, 0x4c, 0x00, 0xc0)
	w := &test.CompareWriter{}

	var suspended int
	suspend := func() error {
		suspended++
		return nil
	}

	err := stepSession(w, sess, keyPresses(easyterm.KeySuspend, easyterm.KeySuspend), suspend)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, suspended, 2)
	test.ExpectEquality(t, sess.CPU.Cycles, uint64(7))
}

func TestStepKeys(t *testing.T) {
	// LDX #$01, KIL
	sess := newStepSession(t, 0xa2, 0x01, 0x02)
	w := &test.CompareWriter{}

	err := stepSession(w, sess, keyPresses('p', 'n', ' ', 'q'), noSuspend)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, sess.CPU.X, uint8(1))
	test.ExpectSuccess(t, sess.CPU.Killed)
	test.ExpectSuccess(t, strings.HasSuffix(w.String(), "cpu killed\n"))

	lines := w.Lines()
	test.ExpectEquality(t, len(lines), 5)
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "C000  A2 01"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[2], "  PC="))
	test.ExpectSuccess(t, strings.HasPrefix(lines[3], "C002  02"))
}
