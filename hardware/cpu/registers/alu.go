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

package registers

// Add returns a+m+carry. The carry and overflow results are those of the
// 6502 ADC instruction.
func Add(a, m uint8, carry bool) (result uint8, carryOut bool, overflow bool) {
	sum := uint16(a) + uint16(m)
	if carry {
		sum++
	}
	result = uint8(sum)
	carryOut = sum > 0xff

	// overflow if both operands have the same sign and the sign of the
	// result is different
	overflow = ^(a^m)&(a^result)&0x80 != 0

	return result, carryOut, overflow
}

// Subtract returns a-m-!carry. Subtraction is the addition of the one's
// complement of the operand, as in the 6502 SBC instruction.
func Subtract(a, m uint8, carry bool) (result uint8, carryOut bool, overflow bool) {
	return Add(a, ^m, carry)
}

// Compare returns r-m and the carry flag of the CMP, CPX and CPY
// instructions. The carry is set if r >= m.
func Compare(r, m uint8) (result uint8, carry bool) {
	return r - m, r >= m
}

// ASL shifts the value left by one bit. The carry is the bit shifted out.
func ASL(v uint8) (result uint8, carry bool) {
	return v << 1, v&0x80 == 0x80
}

// LSR shifts the value right by one bit. The carry is the bit shifted out.
func LSR(v uint8) (result uint8, carry bool) {
	return v >> 1, v&0x01 == 0x01
}

// ROL rotates the value left through the carry.
func ROL(v uint8, carry bool) (result uint8, carryOut bool) {
	result = v << 1
	if carry {
		result |= 0x01
	}
	return result, v&0x80 == 0x80
}

// ROR rotates the value right through the carry.
func ROR(v uint8, carry bool) (result uint8, carryOut bool) {
	result = v >> 1
	if carry {
		result |= 0x80
	}
	return result, v&0x01 == 0x01
}

// IsNegative returns true if bit 7 of the value is set.
func IsNegative(v uint8) bool {
	return v&0x80 == 0x80
}
