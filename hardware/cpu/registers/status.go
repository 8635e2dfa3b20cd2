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

import (
	"strings"
)

// Flag is a single bit in the status register.
type Flag uint8

// List of status register flags.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	Decimal          Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Negative         Flag = 0x80
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
//
// The Break and Unused bits do not exist in the hardware register. They
// only appear in the value pushed to the stack.
type StatusRegister uint8

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// String returns the flags as a string. A flag that is set is shown in
// upper-case.
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for _, f := range []struct {
		flag Flag
		r    rune
	}{
		{Negative, 'n'}, {Overflow, 'v'}, {Unused, '-'}, {Break, 'b'},
		{Decimal, 'd'}, {InterruptDisable, 'i'}, {Zero, 'z'}, {Carry, 'c'},
	} {
		if f.flag == Unused {
			s.WriteRune(f.r)
		} else if sr.Get(f.flag) {
			s.WriteRune(f.r - 'a' + 'A')
		} else {
			s.WriteRune(f.r)
		}
	}
	return s.String()
}

// Get returns true if the flag is set.
func (sr StatusRegister) Get(f Flag) bool {
	return uint8(sr)&uint8(f) == uint8(f)
}

// Set or clear the flag.
func (sr *StatusRegister) Set(f Flag, v bool) {
	if v {
		*sr |= StatusRegister(f)
	} else {
		*sr &^= StatusRegister(f)
	}
}

// UpdateNZ sets the Negative flag from bit 7 of the value and the Zero flag
// if the value is zero.
func (sr *StatusRegister) UpdateNZ(v uint8) {
	sr.Set(Negative, v&0x80 == 0x80)
	sr.Set(Zero, v == 0)
}

// Load sets every bit of the register.
func (sr *StatusRegister) Load(v uint8) {
	*sr = StatusRegister(v)
}

// Value returns the register as an 8 bit value, as it would be observed on
// the data bus. The Unused bit is always set.
func (sr StatusRegister) Value() uint8 {
	return uint8(sr) | uint8(Unused)
}

// Push returns the value to be written to the stack by PHP and BRK. The Break
// and Unused bits are always set.
func (sr StatusRegister) Push() uint8 {
	return uint8(sr) | uint8(Break) | uint8(Unused)
}

// Pull loads the register with a value taken from the stack by PLP and RTI.
// The Break and Unused bits are not changed.
func (sr *StatusRegister) Pull(v uint8) {
	const mask = uint8(Break) | uint8(Unused)
	*sr = StatusRegister((v &^ mask) | (uint8(*sr) & mask))
}
