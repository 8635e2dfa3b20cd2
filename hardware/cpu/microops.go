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

package cpu

import (
	"github.com/jetsetilly/pulse6502/hardware/cpu/instructions"
	"github.com/jetsetilly/pulse6502/hardware/cpu/registers"
	"github.com/jetsetilly/pulse6502/hardware/memory/cpubus"
)

// microOp identifies the work to be done after a bus transaction. The value
// stored in the CPU between calls to Pulse() is the entire control state of
// the CPU.
type microOp int

// List of micro-ops. The comments describe the bus transaction that has just
// completed when the micro-op runs.
const (
	opFetchOpcode microOp = iota // read opcode
	opDecode                     // read byte after opcode

	// generic memory access
	opExecute   // read operand
	opWriteDone // write result
	opRMWRead   // read operand of read-modify-write
	opRMWModify // dummy write of unmodified operand

	// indexing
	opIndexZeroPage       // dummy read of unindexed zero page address
	opAbsoluteHigh        // read high byte of absolute address
	opAbsoluteIndexedHigh // read high byte of indexed absolute address
	opIndexFix            // dummy read of partially indexed address

	// indirection
	opIndexPointer    // dummy read of unindexed zero page pointer
	opPointerLow      // read low byte from zero page pointer
	opPointerHigh     // read high byte from zero page pointer
	opPointerHighY    // read high byte from zero page pointer, to be indexed by Y
	opJumpHigh        // read high byte of JMP address
	opJumpPointerHigh // read high byte of JMP indirect pointer
	opJumpTargetLow   // read low byte of JMP indirect target
	opJumpTargetHigh  // read high byte of JMP indirect target

	// branching
	opBranchTaken // dummy read of next opcode
	opBranchFix   // dummy read of partially calculated destination

	// stack
	opPushDone  // write register to stack
	opPullStack // dummy read of stack
	opPullDone  // read register from stack

	// subroutines
	opJSRStack    // dummy read of stack
	opJSRPushHigh // write PCH
	opJSRPushLow  // write PCL
	opJSRJump     // read high byte of subroutine address

	opRTSStack     // dummy read of stack
	opRTSPullLow   // read PCL
	opRTSPullHigh  // read PCH
	opRTSIncrement // dummy read of return address

	// interrupts
	opRTIStack    // dummy read of stack
	opRTIPullP    // read P
	opRTIPullLow  // read PCL
	opRTIPullHigh // read PCH

	opBRKPushHigh   // write PCH
	opBRKPushLow    // write PCL
	opBRKPushP      // write P
	opBRKVectorLow  // read low byte of vector
	opBRKVectorHigh // read high byte of vector

	// terminal states
	opJammed
	opUnimplemented
)

var microOpNames = [...]string{
	opFetchOpcode:         "fetch opcode",
	opDecode:              "decode",
	opExecute:             "execute",
	opWriteDone:           "write done",
	opRMWRead:             "rmw read",
	opRMWModify:           "rmw modify",
	opIndexZeroPage:       "index zero page",
	opAbsoluteHigh:        "absolute high",
	opAbsoluteIndexedHigh: "absolute indexed high",
	opIndexFix:            "index fix",
	opIndexPointer:        "index pointer",
	opPointerLow:          "pointer low",
	opPointerHigh:         "pointer high",
	opPointerHighY:        "pointer high (Y)",
	opJumpHigh:            "jump high",
	opJumpPointerHigh:     "jump pointer high",
	opJumpTargetLow:       "jump target low",
	opJumpTargetHigh:      "jump target high",
	opBranchTaken:         "branch taken",
	opBranchFix:           "branch fix",
	opPushDone:            "push done",
	opPullStack:           "pull stack",
	opPullDone:            "pull done",
	opJSRStack:            "jsr stack",
	opJSRPushHigh:         "jsr push high",
	opJSRPushLow:          "jsr push low",
	opJSRJump:             "jsr jump",
	opRTSStack:            "rts stack",
	opRTSPullLow:          "rts pull low",
	opRTSPullHigh:         "rts pull high",
	opRTSIncrement:        "rts increment",
	opRTIStack:            "rti stack",
	opRTIPullP:            "rti pull P",
	opRTIPullLow:          "rti pull low",
	opRTIPullHigh:         "rti pull high",
	opBRKPushHigh:         "brk push high",
	opBRKPushLow:          "brk push low",
	opBRKPushP:            "brk push P",
	opBRKVectorLow:        "brk vector low",
	opBRKVectorHigh:       "brk vector high",
	opJammed:              "jammed",
	opUnimplemented:       "unimplemented",
}

func (op microOp) String() string {
	if op < 0 || int(op) >= len(microOpNames) {
		return "unknown micro-op"
	}
	return microOpNames[op]
}

// step runs the micro-op and returns the micro-op to run after the next bus
// transaction.
func (mc *CPU) step(op microOp) microOp {
	switch op {
	case opFetchOpcode:
		mc.IR = mc.DataBus
		mc.PC++
		mc.AddressBus = mc.PC
		return opDecode

	case opDecode:
		return mc.decode()

	case opExecute:
		mc.execute(mc.DataBus)
		return mc.end()

	case opWriteDone:
		return mc.end()

	case opRMWRead:
		// the unmodified value is written back while the modification
		// takes place
		mc.Read = false
		return opRMWModify

	case opRMWModify:
		mc.DataBus = mc.modify(mc.DataBus)
		return opWriteDone

	case opIndexZeroPage:
		mc.AddressBus = mc.addr
		return mc.access()

	case opAbsoluteHigh:
		mc.PC++
		mc.AddressBus = uint16(mc.PD) | uint16(mc.DataBus)<<8
		mc.base = mc.AddressBus
		return mc.access()

	case opAbsoluteIndexedHigh:
		mc.PC++
		return mc.indexed(uint16(mc.PD) | uint16(mc.DataBus)<<8)

	case opIndexFix:
		mc.AddressBus = mc.addr
		return mc.access()

	case opIndexPointer:
		mc.pointer += mc.X
		mc.AddressBus = uint16(mc.pointer)
		return opPointerLow

	case opPointerLow:
		// the pointer wraps around the zero page
		mc.AddressBus = uint16(mc.pointer + 1)
		if mc.mode == instructions.IndirectIndexed {
			return opPointerHighY
		}
		return opPointerHigh

	case opPointerHigh:
		mc.AddressBus = uint16(mc.PD) | uint16(mc.DataBus)<<8
		mc.base = mc.AddressBus
		return mc.access()

	case opPointerHighY:
		return mc.indexed(uint16(mc.PD) | uint16(mc.DataBus)<<8)

	case opJumpHigh:
		mc.PC = uint16(mc.PD) | uint16(mc.DataBus)<<8
		return mc.end()

	case opJumpPointerHigh:
		mc.addr = uint16(mc.PD) | uint16(mc.DataBus)<<8
		mc.AddressBus = mc.addr
		return opJumpTargetLow

	case opJumpTargetLow:
		// the high byte of the target is read without carrying into the
		// high byte of the pointer
		mc.AddressBus = (mc.addr & 0xff00) | uint16(uint8(mc.addr)+1)
		return opJumpTargetHigh

	case opJumpTargetHigh:
		mc.PC = uint16(mc.PD) | uint16(mc.DataBus)<<8
		return mc.end()

	case opBranchTaken:
		if mc.addr&0xff00 == mc.PC&0xff00 {
			mc.PC = mc.addr
			return mc.end()
		}
		// +1 cycle
		mc.AddressBus = (mc.PC & 0xff00) | (mc.addr & 0x00ff)
		return opBranchFix

	case opBranchFix:
		mc.PC = mc.addr
		return mc.end()

	case opPushDone:
		mc.SP--
		return mc.end()

	case opPullStack:
		mc.SP++
		mc.AddressBus = mc.stack()
		return opPullDone

	case opPullDone:
		if mc.operator == instructions.PLP {
			mc.P.Pull(mc.DataBus)
		} else {
			mc.A = mc.DataBus
			mc.P.UpdateNZ(mc.A)
		}
		return mc.end()

	case opJSRStack:
		mc.DataBus = uint8(mc.PC >> 8)
		mc.Read = false
		return opJSRPushHigh

	case opJSRPushHigh:
		mc.SP--
		mc.AddressBus = mc.stack()
		mc.DataBus = uint8(mc.PC)
		return opJSRPushLow

	case opJSRPushLow:
		mc.SP--
		mc.AddressBus = mc.PC
		mc.Read = true
		return opJSRJump

	case opJSRJump:
		mc.PC = uint16(mc.jsrLow) | uint16(mc.DataBus)<<8
		return mc.end()

	case opRTSStack:
		mc.SP++
		mc.AddressBus = mc.stack()
		return opRTSPullLow

	case opRTSPullLow:
		mc.SP++
		mc.AddressBus = mc.stack()
		return opRTSPullHigh

	case opRTSPullHigh:
		mc.PC = uint16(mc.PD) | uint16(mc.DataBus)<<8
		mc.AddressBus = mc.PC
		return opRTSIncrement

	case opRTSIncrement:
		mc.PC++
		return mc.end()

	case opRTIStack:
		mc.SP++
		mc.AddressBus = mc.stack()
		return opRTIPullP

	case opRTIPullP:
		mc.P.Pull(mc.DataBus)
		mc.SP++
		mc.AddressBus = mc.stack()
		return opRTIPullLow

	case opRTIPullLow:
		mc.SP++
		mc.AddressBus = mc.stack()
		return opRTIPullHigh

	case opRTIPullHigh:
		mc.PC = uint16(mc.PD) | uint16(mc.DataBus)<<8
		return mc.end()

	case opBRKPushHigh:
		mc.SP--
		mc.AddressBus = mc.stack()
		mc.DataBus = uint8(mc.PC)
		return opBRKPushLow

	case opBRKPushLow:
		mc.SP--
		mc.AddressBus = mc.stack()
		mc.DataBus = mc.P.Push()
		return opBRKPushP

	case opBRKPushP:
		mc.SP--
		mc.P.Set(registers.InterruptDisable, true)
		mc.AddressBus = cpubus.BRK
		mc.Read = true
		return opBRKVectorLow

	case opBRKVectorLow:
		mc.AddressBus = cpubus.BRK + 1
		return opBRKVectorHigh

	case opBRKVectorHigh:
		mc.PC = uint16(mc.PD) | uint16(mc.DataBus)<<8
		return mc.end()

	case opJammed:
		return opJammed
	}

	return opUnimplemented
}

// access sets up the bus transaction at the effective address according to
// the effect of the instruction. the address bus must already be set.
func (mc *CPU) access() microOp {
	switch mc.effect {
	case instructions.Write:
		mc.DataBus = mc.store()
		mc.Read = false
		return opWriteDone
	case instructions.RMW:
		return opRMWRead
	}
	return opExecute
}

// indexed adds the index register to the base address. an extra cycle is
// taken if the index crosses a page or if the instruction is not a read.
func (mc *CPU) indexed(base uint16) microOp {
	mc.base = base
	mc.addr = base + uint16(mc.index)

	if mc.effect == instructions.Read && mc.addr&0xff00 == base&0xff00 {
		mc.AddressBus = mc.addr
		return mc.access()
	}

	// the first access is to the unfixed address. the high byte is
	// corrected in the next cycle
	mc.AddressBus = (base & 0xff00) | (mc.addr & 0x00ff)
	return opIndexFix
}
