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

// the reference uses signed arithmetic to decide overflow rather than the
// bitwise formula used by Add()
func referenceAdd(a, m int, c int) (int, bool, bool) {
	sum := a + m + c
	signed := int(int8(a)) + int(int8(m)) + c
	return sum & 0xff, sum > 0xff, signed < -128 || signed > 127
}

func TestAddExhaustive(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for m := 0; m <= 0xff; m++ {
			for c := 0; c <= 1; c++ {
				r, carry, overflow := registers.Add(uint8(a), uint8(m), c == 1)
				er, ecarry, eoverflow := referenceAdd(a, m, c)
				if int(r) != er || carry != ecarry || overflow != eoverflow {
					t.Fatalf("ADC %02x %02x %d: got %02x %v %v, wanted %02x %v %v",
						a, m, c, r, carry, overflow, er, ecarry, eoverflow)
				}
			}
		}
	}
}

func TestSubtractExhaustive(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for m := 0; m <= 0xff; m++ {
			for c := 0; c <= 1; c++ {
				r, carry, overflow := registers.Subtract(uint8(a), uint8(m), c == 1)

				// borrow is the inverse of carry
				diff := a - m - (1 - c)
				signed := int(int8(a)) - int(int8(m)) - (1 - c)
				if int(r) != diff&0xff || carry != (diff >= 0) || overflow != (signed < -128 || signed > 127) {
					t.Fatalf("SBC %02x %02x %d: got %02x %v %v", a, m, c, r, carry, overflow)
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	r, c := registers.Compare(0x10, 0x10)
	test.ExpectEquality(t, r, uint8(0))
	test.ExpectSuccess(t, c)

	r, c = registers.Compare(0x10, 0x11)
	test.ExpectEquality(t, r, uint8(0xff))
	test.ExpectFailure(t, c)

	_, c = registers.Compare(0xff, 0x00)
	test.ExpectSuccess(t, c)
}

func TestShifts(t *testing.T) {
	r, c := registers.ASL(0x81)
	test.ExpectEquality(t, r, uint8(0x02))
	test.ExpectSuccess(t, c)

	r, c = registers.LSR(0x81)
	test.ExpectEquality(t, r, uint8(0x40))
	test.ExpectSuccess(t, c)

	r, c = registers.ROL(0x80, true)
	test.ExpectEquality(t, r, uint8(0x01))
	test.ExpectSuccess(t, c)

	r, c = registers.ROR(0x01, true)
	test.ExpectEquality(t, r, uint8(0x80))
	test.ExpectSuccess(t, c)

	r, c = registers.ROR(0x02, false)
	test.ExpectEquality(t, r, uint8(0x01))
	test.ExpectFailure(t, c)
}
