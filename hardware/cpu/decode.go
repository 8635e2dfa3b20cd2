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
	"github.com/jetsetilly/pulse6502/logger"
)

// the operators in each opcode group, indexed by the top three bits of the
// opcode
var (
	controlOperators  = [8]instructions.Operator{instructions.NOP, instructions.BIT, instructions.JMP, instructions.JMP, instructions.STY, instructions.LDY, instructions.CPY, instructions.CPX}
	aluOperators      = [8]instructions.Operator{instructions.ORA, instructions.AND, instructions.EOR, instructions.ADC, instructions.STA, instructions.LDA, instructions.CMP, instructions.SBC}
	rmwOperators      = [8]instructions.Operator{instructions.ASL, instructions.ROL, instructions.LSR, instructions.ROR, instructions.STX, instructions.LDX, instructions.DEC, instructions.INC}
	combinedOperators = [8]instructions.Operator{instructions.SLO, instructions.RLA, instructions.SRE, instructions.RRA, instructions.SAX, instructions.LAX, instructions.DCP, instructions.ISC}
	immediateCombined = [8]instructions.Operator{instructions.ANC, instructions.ANC, instructions.ALR, instructions.ARR, instructions.XAA, instructions.LXA, instructions.AXS, instructions.SBC}
)

// the addressing mode of the ALU group, indexed by the middle three bits of
// the opcode
var aluModes = [8]instructions.AddressingMode{
	instructions.IndexedIndirect,
	instructions.ZeroPage,
	instructions.Immediate,
	instructions.Absolute,
	instructions.IndirectIndexed,
	instructions.ZeroPageIndexedX,
	instructions.AbsoluteIndexedY,
	instructions.AbsoluteIndexedX,
}

// decode runs after the byte following the opcode has been read. for
// instructions with an operand the byte is the first byte of the operand.
//
// the opcode is split into three fields, aaabbbcc. the c field selects the
// group of instructions, the a field selects the operation within the group
// and the b field selects the addressing mode.
func (mc *CPU) decode() microOp {
	a := mc.IR >> 5 & 0x07
	b := mc.IR >> 2 & 0x07
	c := mc.IR & 0x03

	// opcodes that do not follow the pattern of their group
	switch mc.IR {
	case 0x00:
		mc.set(instructions.BRK, instructions.Implied, instructions.Interrupt)
		mc.PC++
		mc.AddressBus = mc.stack()
		mc.DataBus = uint8(mc.PC >> 8)
		mc.Read = false
		return opBRKPushHigh

	case 0x20:
		mc.set(instructions.JSR, instructions.Absolute, instructions.Subroutine)
		mc.PC++
		mc.jsrLow = mc.DataBus
		mc.AddressBus = mc.stack()
		return opJSRStack

	case 0x40:
		mc.set(instructions.RTI, instructions.Implied, instructions.Interrupt)
		mc.AddressBus = mc.stack()
		return opRTIStack

	case 0x60:
		mc.set(instructions.RTS, instructions.Implied, instructions.Subroutine)
		mc.AddressBus = mc.stack()
		return opRTSStack

	case 0x4c:
		mc.set(instructions.JMP, instructions.Absolute, instructions.Flow)
		mc.PC++
		mc.AddressBus = mc.PC
		return opJumpHigh

	case 0x6c:
		mc.set(instructions.JMP, instructions.Indirect, instructions.Flow)
		mc.PC++
		mc.AddressBus = mc.PC
		return opJumpPointerHigh

	case 0x89:
		return mc.undocumented(instructions.NOP, instructions.Immediate, instructions.Read)
	}

	switch c {
	case 0x00:
		return mc.decodeControl(a, b)
	case 0x01:
		return mc.decodeALU(a, b)
	case 0x02:
		return mc.decodeRMW(a, b)
	case 0x03:
		return mc.decodeCombined(a, b)
	}

	return opUnimplemented
}

// the effect of an instruction in the RMW and combined groups
func rmwEffect(a uint8) instructions.Effect {
	switch a {
	case 0x04:
		return instructions.Write
	case 0x05:
		return instructions.Read
	}
	return instructions.RMW
}

func (mc *CPU) decodeControl(a, b uint8) microOp {
	effect := instructions.Read
	if a == 0x04 {
		effect = instructions.Write
	}

	switch b {
	case 0x00:
		if a == 0x04 {
			return mc.undocumented(instructions.NOP, instructions.Immediate, instructions.Read)
		}
		return mc.instruction(controlOperators[a], instructions.Immediate, instructions.Read)

	case 0x01:
		if a == 0x00 || a == 0x02 || a == 0x03 {
			return mc.undocumented(instructions.NOP, instructions.ZeroPage, instructions.Read)
		}
		return mc.instruction(controlOperators[a], instructions.ZeroPage, effect)

	case 0x02:
		return mc.decodeStack(a)

	case 0x03:
		if a == 0x00 {
			return mc.undocumented(instructions.NOP, instructions.Absolute, instructions.Read)
		}
		return mc.instruction(controlOperators[a], instructions.Absolute, effect)

	case 0x04:
		return mc.branch(a)

	case 0x05:
		if a == 0x04 || a == 0x05 {
			return mc.instruction(controlOperators[a], instructions.ZeroPageIndexedX, effect)
		}
		return mc.undocumented(instructions.NOP, instructions.ZeroPageIndexedX, instructions.Read)

	case 0x06:
		return mc.instruction([8]instructions.Operator{
			instructions.CLC, instructions.SEC, instructions.CLI, instructions.SEI,
			instructions.TYA, instructions.CLV, instructions.CLD, instructions.SED,
		}[a], instructions.Implied, instructions.Read)

	case 0x07:
		switch a {
		case 0x04:
			return mc.undocumented(instructions.SHY, instructions.AbsoluteIndexedX, instructions.Write)
		case 0x05:
			return mc.instruction(instructions.LDY, instructions.AbsoluteIndexedX, instructions.Read)
		}
		return mc.undocumented(instructions.NOP, instructions.AbsoluteIndexedX, instructions.Read)
	}

	return opUnimplemented
}

func (mc *CPU) decodeStack(a uint8) microOp {
	switch a {
	case 0x00:
		mc.set(instructions.PHP, instructions.Implied, instructions.Write)
		mc.AddressBus = mc.stack()
		mc.DataBus = mc.P.Push()
		mc.Read = false
		return opPushDone
	case 0x01:
		mc.set(instructions.PLP, instructions.Implied, instructions.Read)
		mc.AddressBus = mc.stack()
		return opPullStack
	case 0x02:
		mc.set(instructions.PHA, instructions.Implied, instructions.Write)
		mc.AddressBus = mc.stack()
		mc.DataBus = mc.A
		mc.Read = false
		return opPushDone
	case 0x03:
		mc.set(instructions.PLA, instructions.Implied, instructions.Read)
		mc.AddressBus = mc.stack()
		return opPullStack
	case 0x04:
		return mc.instruction(instructions.DEY, instructions.Implied, instructions.Read)
	case 0x05:
		return mc.instruction(instructions.TAY, instructions.Implied, instructions.Read)
	case 0x06:
		return mc.instruction(instructions.INY, instructions.Implied, instructions.Read)
	case 0x07:
		return mc.instruction(instructions.INX, instructions.Implied, instructions.Read)
	}
	return opUnimplemented
}

// branch instructions test one of four flags. bits 7 and 6 of the opcode
// select the flag and bit 5 is the value the flag must have for the branch
// to be taken.
func (mc *CPU) branch(a uint8) microOp {
	var flag registers.Flag
	var op instructions.Operator

	switch a >> 1 {
	case 0x00:
		flag = registers.Negative
		op = [2]instructions.Operator{instructions.BPL, instructions.BMI}[a&0x01]
	case 0x01:
		flag = registers.Overflow
		op = [2]instructions.Operator{instructions.BVC, instructions.BVS}[a&0x01]
	case 0x02:
		flag = registers.Carry
		op = [2]instructions.Operator{instructions.BCC, instructions.BCS}[a&0x01]
	case 0x03:
		flag = registers.Zero
		op = [2]instructions.Operator{instructions.BNE, instructions.BEQ}[a&0x01]
	}

	mc.set(op, instructions.Relative, instructions.Flow)
	mc.PC++

	if mc.P.Get(flag) != (a&0x01 == 0x01) {
		return mc.end()
	}

	// +1 cycle
	mc.addr = mc.PC + uint16(int8(mc.DataBus))
	mc.AddressBus = mc.PC
	return opBranchTaken
}

func (mc *CPU) decodeALU(a, b uint8) microOp {
	effect := instructions.Read
	if a == 0x04 {
		effect = instructions.Write
	}
	return mc.instruction(aluOperators[a], aluModes[b], effect)
}

func (mc *CPU) decodeRMW(a, b uint8) microOp {
	effect := rmwEffect(a)

	switch b {
	case 0x00:
		switch {
		case a < 0x04:
			return mc.jam()
		case a == 0x05:
			return mc.instruction(instructions.LDX, instructions.Immediate, instructions.Read)
		}
		return mc.undocumented(instructions.NOP, instructions.Immediate, instructions.Read)

	case 0x01:
		return mc.instruction(rmwOperators[a], instructions.ZeroPage, effect)

	case 0x02:
		if a < 0x04 {
			return mc.instruction(rmwOperators[a], instructions.Accumulator, instructions.RMW)
		}
		return mc.instruction([4]instructions.Operator{
			instructions.TXA, instructions.TAX, instructions.DEX, instructions.NOP,
		}[a-0x04], instructions.Implied, instructions.Read)

	case 0x03:
		return mc.instruction(rmwOperators[a], instructions.Absolute, effect)

	case 0x04:
		return mc.jam()

	case 0x05:
		if a == 0x04 || a == 0x05 {
			return mc.instruction(rmwOperators[a], instructions.ZeroPageIndexedY, effect)
		}
		return mc.instruction(rmwOperators[a], instructions.ZeroPageIndexedX, effect)

	case 0x06:
		switch a {
		case 0x04:
			return mc.instruction(instructions.TXS, instructions.Implied, instructions.Read)
		case 0x05:
			return mc.instruction(instructions.TSX, instructions.Implied, instructions.Read)
		}
		return mc.undocumented(instructions.NOP, instructions.Implied, instructions.Read)

	case 0x07:
		switch a {
		case 0x04:
			return mc.undocumented(instructions.SHX, instructions.AbsoluteIndexedY, instructions.Write)
		case 0x05:
			return mc.instruction(instructions.LDX, instructions.AbsoluteIndexedY, instructions.Read)
		}
		return mc.instruction(rmwOperators[a], instructions.AbsoluteIndexedX, effect)
	}

	return opUnimplemented
}

// the combined group is entirely undocumented. most instructions combine the
// operation of the RMW group with the operation of the ALU group
func (mc *CPU) decodeCombined(a, b uint8) microOp {
	effect := rmwEffect(a)
	mode := aluModes[b]

	switch b {
	case 0x02:
		return mc.undocumented(immediateCombined[a], instructions.Immediate, instructions.Read)

	case 0x04:
		if a == 0x04 {
			return mc.undocumented(instructions.SHA, mode, instructions.Write)
		}

	case 0x05:
		if a == 0x04 || a == 0x05 {
			mode = instructions.ZeroPageIndexedY
		}

	case 0x06:
		switch a {
		case 0x04:
			return mc.undocumented(instructions.TAS, mode, instructions.Write)
		case 0x05:
			return mc.undocumented(instructions.LAS, mode, instructions.Read)
		}

	case 0x07:
		switch a {
		case 0x04:
			return mc.undocumented(instructions.SHA, instructions.AbsoluteIndexedY, instructions.Write)
		case 0x05:
			mode = instructions.AbsoluteIndexedY
		}
	}

	return mc.undocumented(combinedOperators[a], mode, effect)
}

func (mc *CPU) set(op instructions.Operator, mode instructions.AddressingMode, effect instructions.Effect) {
	mc.operator = op
	mc.mode = mode
	mc.effect = effect
}

// undocumented instructions are refused if NoUndocumented is set
func (mc *CPU) undocumented(op instructions.Operator, mode instructions.AddressingMode, effect instructions.Effect) microOp {
	if mc.NoUndocumented {
		return opUnimplemented
	}
	return mc.instruction(op, mode, effect)
}

// jam stops the CPU until the next reset. the instruction boundary is
// signalled so that drivers waiting for the end of the instruction are not
// stuck.
func (mc *CPU) jam() microOp {
	if mc.NoUndocumented {
		return opUnimplemented
	}
	mc.set(instructions.KIL, instructions.Implied, instructions.Read)
	mc.Killed = true
	mc.TCU = 0
	logger.Logf(mc, "cpu", "killed by opcode %#02x at %#04x", mc.IR, mc.PC-1)
	return opJammed
}

// instruction prepares the bus for the first access of the addressing mode.
// instructions without a memory access complete immediately.
func (mc *CPU) instruction(op instructions.Operator, mode instructions.AddressingMode, effect instructions.Effect) microOp {
	mc.set(op, mode, effect)

	switch mode {
	case instructions.Implied:
		mc.implied()
		return mc.end()

	case instructions.Accumulator:
		mc.A = mc.modify(mc.A)
		return mc.end()

	case instructions.Immediate:
		mc.PC++
		mc.execute(mc.DataBus)
		return mc.end()

	case instructions.ZeroPage:
		mc.PC++
		mc.AddressBus = uint16(mc.DataBus)
		mc.base = mc.AddressBus
		return mc.access()

	case instructions.ZeroPageIndexedX:
		mc.PC++
		mc.addr = uint16(mc.DataBus + mc.X)
		mc.AddressBus = uint16(mc.DataBus)
		return opIndexZeroPage

	case instructions.ZeroPageIndexedY:
		mc.PC++
		mc.addr = uint16(mc.DataBus + mc.Y)
		mc.AddressBus = uint16(mc.DataBus)
		return opIndexZeroPage

	case instructions.Absolute:
		mc.PC++
		mc.AddressBus = mc.PC
		return opAbsoluteHigh

	case instructions.AbsoluteIndexedX:
		mc.PC++
		mc.index = mc.X
		mc.AddressBus = mc.PC
		return opAbsoluteIndexedHigh

	case instructions.AbsoluteIndexedY:
		mc.PC++
		mc.index = mc.Y
		mc.AddressBus = mc.PC
		return opAbsoluteIndexedHigh

	case instructions.IndexedIndirect:
		mc.PC++
		mc.pointer = mc.DataBus
		mc.AddressBus = uint16(mc.pointer)
		return opIndexPointer

	case instructions.IndirectIndexed:
		mc.PC++
		mc.pointer = mc.DataBus
		mc.index = mc.Y
		mc.AddressBus = uint16(mc.pointer)
		return opPointerLow
	}

	return opUnimplemented
}
