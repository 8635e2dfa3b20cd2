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
)

// magic constant used by the unstable XAA and LXA instructions. the value
// differs between individual chips
const magicConstant = 0xee

func (mc *CPU) adc(v uint8) {
	r, c, o := registers.Add(mc.A, v, mc.P.Get(registers.Carry))
	mc.A = r
	mc.P.Set(registers.Carry, c)
	mc.P.Set(registers.Overflow, o)
	mc.P.UpdateNZ(r)
}

func (mc *CPU) sbc(v uint8) {
	r, c, o := registers.Subtract(mc.A, v, mc.P.Get(registers.Carry))
	mc.A = r
	mc.P.Set(registers.Carry, c)
	mc.P.Set(registers.Overflow, o)
	mc.P.UpdateNZ(r)
}

func (mc *CPU) compare(reg uint8, v uint8) {
	r, c := registers.Compare(reg, v)
	mc.P.Set(registers.Carry, c)
	mc.P.UpdateNZ(r)
}

// execute the operator with the value read from memory or from the operand
// of an immediate instruction.
func (mc *CPU) execute(v uint8) {
	switch mc.operator {
	case instructions.LDA:
		mc.A = v
		mc.P.UpdateNZ(mc.A)
	case instructions.LDX:
		mc.X = v
		mc.P.UpdateNZ(mc.X)
	case instructions.LDY:
		mc.Y = v
		mc.P.UpdateNZ(mc.Y)
	case instructions.LAX:
		mc.A = v
		mc.X = v
		mc.P.UpdateNZ(v)
	case instructions.ORA:
		mc.A |= v
		mc.P.UpdateNZ(mc.A)
	case instructions.AND:
		mc.A &= v
		mc.P.UpdateNZ(mc.A)
	case instructions.EOR:
		mc.A ^= v
		mc.P.UpdateNZ(mc.A)
	case instructions.ADC:
		mc.adc(v)
	case instructions.SBC:
		mc.sbc(v)
	case instructions.CMP:
		mc.compare(mc.A, v)
	case instructions.CPX:
		mc.compare(mc.X, v)
	case instructions.CPY:
		mc.compare(mc.Y, v)
	case instructions.BIT:
		mc.P.Set(registers.Zero, mc.A&v == 0)
		mc.P.Set(registers.Negative, v&0x80 == 0x80)
		mc.P.Set(registers.Overflow, v&0x40 == 0x40)
	case instructions.NOP:
		// the read still happens
	case instructions.LAS:
		v &= mc.SP
		mc.A = v
		mc.X = v
		mc.SP = v
		mc.P.UpdateNZ(v)
	case instructions.ANC:
		mc.A &= v
		mc.P.UpdateNZ(mc.A)
		mc.P.Set(registers.Carry, registers.IsNegative(mc.A))
	case instructions.ALR:
		var c bool
		mc.A, c = registers.LSR(mc.A & v)
		mc.P.Set(registers.Carry, c)
		mc.P.UpdateNZ(mc.A)
	case instructions.ARR:
		mc.A, _ = registers.ROR(mc.A&v, mc.P.Get(registers.Carry))
		mc.P.UpdateNZ(mc.A)
		mc.P.Set(registers.Carry, mc.A&0x40 == 0x40)
		mc.P.Set(registers.Overflow, (mc.A>>6^mc.A>>5)&0x01 == 0x01)
	case instructions.XAA:
		mc.A = (mc.A | magicConstant) & mc.X & v
		mc.P.UpdateNZ(mc.A)
	case instructions.LXA:
		mc.A = (mc.A | magicConstant) & v
		mc.X = mc.A
		mc.P.UpdateNZ(mc.A)
	case instructions.AXS:
		r, c := registers.Compare(mc.A&mc.X, v)
		mc.X = r
		mc.P.Set(registers.Carry, c)
		mc.P.UpdateNZ(mc.X)
	}
}

// store returns the value to be written by a store instruction.
func (mc *CPU) store() uint8 {
	// the unstable store instructions AND the value with the high byte of
	// the unindexed address plus one
	h := uint8(mc.base>>8) + 1

	switch mc.operator {
	case instructions.STA:
		return mc.A
	case instructions.STX:
		return mc.X
	case instructions.STY:
		return mc.Y
	case instructions.SAX:
		return mc.A & mc.X
	case instructions.SHA:
		return mc.A & mc.X & h
	case instructions.SHX:
		return mc.X & h
	case instructions.SHY:
		return mc.Y & h
	case instructions.TAS:
		mc.SP = mc.A & mc.X
		return mc.SP & h
	}
	return mc.A
}

// modify returns the result of a read-modify-write instruction. the combined
// instructions also apply their ALU operation to the accumulator.
func (mc *CPU) modify(v uint8) uint8 {
	var c bool

	switch mc.operator {
	case instructions.ASL:
		v, c = registers.ASL(v)
		mc.P.Set(registers.Carry, c)
		mc.P.UpdateNZ(v)
	case instructions.LSR:
		v, c = registers.LSR(v)
		mc.P.Set(registers.Carry, c)
		mc.P.UpdateNZ(v)
	case instructions.ROL:
		v, c = registers.ROL(v, mc.P.Get(registers.Carry))
		mc.P.Set(registers.Carry, c)
		mc.P.UpdateNZ(v)
	case instructions.ROR:
		v, c = registers.ROR(v, mc.P.Get(registers.Carry))
		mc.P.Set(registers.Carry, c)
		mc.P.UpdateNZ(v)
	case instructions.INC:
		v++
		mc.P.UpdateNZ(v)
	case instructions.DEC:
		v--
		mc.P.UpdateNZ(v)
	case instructions.SLO:
		v, c = registers.ASL(v)
		mc.P.Set(registers.Carry, c)
		mc.A |= v
		mc.P.UpdateNZ(mc.A)
	case instructions.RLA:
		v, c = registers.ROL(v, mc.P.Get(registers.Carry))
		mc.P.Set(registers.Carry, c)
		mc.A &= v
		mc.P.UpdateNZ(mc.A)
	case instructions.SRE:
		v, c = registers.LSR(v)
		mc.P.Set(registers.Carry, c)
		mc.A ^= v
		mc.P.UpdateNZ(mc.A)
	case instructions.RRA:
		v, c = registers.ROR(v, mc.P.Get(registers.Carry))
		mc.P.Set(registers.Carry, c)
		mc.adc(v)
	case instructions.DCP:
		v--
		mc.compare(mc.A, v)
	case instructions.ISC:
		v++
		mc.sbc(v)
	}

	return v
}

// implied executes instructions that have no operand.
func (mc *CPU) implied() {
	switch mc.operator {
	case instructions.CLC:
		mc.P.Set(registers.Carry, false)
	case instructions.SEC:
		mc.P.Set(registers.Carry, true)
	case instructions.CLI:
		mc.P.Set(registers.InterruptDisable, false)
	case instructions.SEI:
		mc.P.Set(registers.InterruptDisable, true)
	case instructions.CLV:
		mc.P.Set(registers.Overflow, false)
	case instructions.CLD:
		mc.P.Set(registers.Decimal, false)
	case instructions.SED:
		mc.P.Set(registers.Decimal, true)
	case instructions.TAX:
		mc.X = mc.A
		mc.P.UpdateNZ(mc.X)
	case instructions.TXA:
		mc.A = mc.X
		mc.P.UpdateNZ(mc.A)
	case instructions.TAY:
		mc.Y = mc.A
		mc.P.UpdateNZ(mc.Y)
	case instructions.TYA:
		mc.A = mc.Y
		mc.P.UpdateNZ(mc.A)
	case instructions.TSX:
		mc.X = mc.SP
		mc.P.UpdateNZ(mc.X)
	case instructions.TXS:
		// TXS does not affect the flags
		mc.SP = mc.X
	case instructions.INX:
		mc.X++
		mc.P.UpdateNZ(mc.X)
	case instructions.INY:
		mc.Y++
		mc.P.UpdateNZ(mc.Y)
	case instructions.DEX:
		mc.X--
		mc.P.UpdateNZ(mc.X)
	case instructions.DEY:
		mc.Y--
		mc.P.UpdateNZ(mc.Y)
	case instructions.NOP:
	}
}
