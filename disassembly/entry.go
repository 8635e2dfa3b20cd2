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
	"fmt"
	"strings"

	"github.com/jetsetilly/pulse6502/hardware/cpu/instructions"
)

// Entry is a disassembled instruction.
type Entry struct {
	Address uint16

	// the opcode and operand bytes of the instruction
	Bytes []uint8

	Defn instructions.Definition

	// the operand as a 16bit value. zero if the instruction has no operand.
	// for branch instructions this is the destination address
	Operand uint16
}

// Next returns the address of the instruction that follows the entry in
// memory.
func (e Entry) Next() uint16 {
	return e.Address + uint16(len(e.Bytes))
}

// Bytecode returns the bytes of the instruction as space separated hex
// pairs.
func (e Entry) Bytecode() string {
	s := make([]string, len(e.Bytes))
	for i, b := range e.Bytes {
		s[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(s, " ")
}

// Mnemonic returns the operator of the instruction.
func (e Entry) Mnemonic() string {
	return e.Defn.Operator.String()
}

// OperandString returns the operand decorated according to the addressing
// mode.
func (e Entry) OperandString() string {
	var operand string

	switch e.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate, instructions.ZeroPage, instructions.ZeroPageIndexedX,
		instructions.ZeroPageIndexedY, instructions.IndexedIndirect, instructions.IndirectIndexed:
		operand = fmt.Sprintf("$%02X", e.Operand)
	default:
		operand = fmt.Sprintf("$%04X", e.Operand)
	}

	return addrModeDecoration(operand, e.Defn.AddressingMode)
}

// Instruction returns the mnemonic and operand.
func (e Entry) Instruction() string {
	if s := e.OperandString(); s != "" {
		return fmt.Sprintf("%s %s", e.Mnemonic(), s)
	}
	return e.Mnemonic()
}

func (e Entry) String() string {
	undoc := ' '
	if e.Defn.Undocumented {
		undoc = '*'
	}
	return fmt.Sprintf("%04X  %-8s %c%s", e.Address, e.Bytecode(), undoc, e.Instruction())
}

// add decoration to operand according to the addressing mode of the entry.
func addrModeDecoration(operand string, mode instructions.AddressingMode) string {
	s := operand

	switch mode {
	case instructions.Implied:
	case instructions.Immediate:
		s = fmt.Sprintf("#%s", operand)
	case instructions.Relative:
	case instructions.Absolute:
	case instructions.ZeroPage:
	case instructions.Indirect:
		s = fmt.Sprintf("(%s)", operand)
	case instructions.IndexedIndirect:
		s = fmt.Sprintf("(%s,X)", operand)
	case instructions.IndirectIndexed:
		s = fmt.Sprintf("(%s),Y", operand)
	case instructions.AbsoluteIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.AbsoluteIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	case instructions.ZeroPageIndexedX:
		s = fmt.Sprintf("%s,X", operand)
	case instructions.ZeroPageIndexedY:
		s = fmt.Sprintf("%s,Y", operand)
	}

	return s
}
