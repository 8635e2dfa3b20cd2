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

// Package cpu emulates the 6502 microprocessor, one bus cycle at a time.
//
// The CPU is driven by calls to the Pulse() function. Each call performs
// exactly one bus transaction, either a read or a write depending on the
// state of the read intent, and then runs one micro-op. A micro-op updates
// the registers and decides the address and direction of the next bus
// transaction. It also decides which micro-op runs after that transaction.
//
// Between calls to Pulse() the entire state of the CPU is held in the CPU
// type. There are no goroutines and nothing is hidden on a call stack. This
// means a CPU can be stopped after any cycle and inspected.
//
// The TCU field counts the cycles of the current instruction. It is zero
// only at an instruction boundary, meaning that the next call to Pulse()
// will fetch an opcode. A driver that wants to run a whole instruction
// pulses the CPU until TCU is zero:
//
//	for {
//		if err := mc.Pulse(); err != nil {
//			return err
//		}
//		if mc.TCU == 0 {
//			break
//		}
//	}
//
// Opcodes are decoded from their bit fields in the same way the decode
// logic of the real chip groups them. The instructions package contains a
// table of opcodes but it is not used for execution.
//
// Every opcode is implemented, including the undocumented opcodes. The
// opcodes that jam a real 6502 set the Killed field and the CPU does nothing
// until it is reset. Undocumented opcodes can be refused by setting the
// NoUndocumented field, in which case they cause an UnimplementedOpcode error.
package cpu
