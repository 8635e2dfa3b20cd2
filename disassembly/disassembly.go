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

package disassembly

import (
	"github.com/jetsetilly/pulse6502/hardware/cpu/instructions"
)

// Peeker is the memory interface required by the disassembler. Addresses
// that cannot be peeked are treated as containing zero.
type Peeker interface {
	Peek(address uint16) (uint8, error)
}

func peek(mem Peeker, address uint16) uint8 {
	v, _ := mem.Peek(address)
	return v
}

// Disassemble decodes the instruction at the address. Addresses wrap around
// the end of the address space.
func Disassemble(mem Peeker, address uint16) Entry {
	opcode := peek(mem, address)
	defn := instructions.Lookup(opcode)

	e := Entry{
		Address: address,
		Defn:    defn,
		Bytes:   []uint8{opcode},
	}

	for i := 1; i < defn.Bytes; i++ {
		e.Bytes = append(e.Bytes, peek(mem, address+uint16(i)))
	}

	switch len(e.Bytes) {
	case 2:
		e.Operand = uint16(e.Bytes[1])
	case 3:
		e.Operand = uint16(e.Bytes[1]) | uint16(e.Bytes[2])<<8
	}

	// absolute branch destination
	if defn.IsBranch() {
		e.Operand = e.Next() + uint16(int8(e.Bytes[1]))
	}

	return e
}

// Sequence decodes n consecutive instructions starting at the address.
func Sequence(mem Peeker, address uint16, n int) []Entry {
	s := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		e := Disassemble(mem, address)
		s = append(s, e)
		address = e.Next()
	}
	return s
}
