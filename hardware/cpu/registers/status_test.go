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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/pulse6502/hardware/cpu/registers"
	"github.com/jetsetilly/pulse6502/test"
)

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister

	test.ExpectEquality(t, sr.String(), "nv-bdizc")
	test.ExpectEquality(t, sr.Value(), uint8(0x20))

	sr.Set(registers.Negative, true)
	sr.Set(registers.Carry, true)
	test.ExpectEquality(t, sr.String(), "Nv-bdizC")
	test.ExpectEquality(t, sr.Value(), uint8(0xa1))

	sr.Set(registers.Carry, false)
	test.ExpectFailure(t, sr.Get(registers.Carry))
	test.ExpectSuccess(t, sr.Get(registers.Negative))
	test.ExpectEquality(t, sr.Label(), "P")
}

func TestUpdateNZ(t *testing.T) {
	var sr registers.StatusRegister

	for v := 0; v <= 0xff; v++ {
		sr.UpdateNZ(uint8(v))
		test.ExpectEquality(t, sr.Get(registers.Negative), v&0x80 != 0, v)
		test.ExpectEquality(t, sr.Get(registers.Zero), v == 0, v)
	}
}

func TestPushPull(t *testing.T) {
	var sr registers.StatusRegister
	sr.Load(0x24)

	// pushed value always has the break and unused bits set
	test.ExpectEquality(t, sr.Push(), uint8(0x34))

	// pulling ignores the break and unused bits of the pulled value
	sr.Pull(0xff)
	test.ExpectEquality(t, uint8(sr), uint8(0xef))
	sr.Load(0x30)
	sr.Pull(0x00)
	test.ExpectEquality(t, uint8(sr), uint8(0x30))
}
