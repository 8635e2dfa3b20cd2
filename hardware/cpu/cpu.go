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
	"fmt"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/hardware/cpu/instructions"
	"github.com/jetsetilly/pulse6502/hardware/cpu/registers"
	"github.com/jetsetilly/pulse6502/hardware/memory/cpubus"
	"github.com/jetsetilly/pulse6502/logger"
)

// Sentinal error patterns for the cpu package.
const (
	UnimplementedOpcode = "cpu: unimplemented opcode (%#02x)"
	MidInstruction      = "cpu: %s cannot be used mid-instruction"
)

// CPU implements the 6502. The exported fields are the register file and the
// state of the bus. They can be read at any time and can be changed between
// instructions, when TCU is zero.
type CPU struct {
	mem cpubus.Memory

	PC uint16
	A  uint8
	X  uint8
	Y  uint8
	SP uint8
	P  registers.StatusRegister

	// IR is the opcode of the current instruction
	IR uint8

	// PD is the value of the data bus in the previous cycle
	PD uint8

	AddressBus uint16
	DataBus    uint8

	// Read is true if the next bus transaction is a read
	Read bool

	// TCU is the number of cycles into the current instruction. zero at an
	// instruction boundary
	TCU uint8

	// Cycles is the total number of bus cycles since the CPU was created.
	// Reset() counts as seven cycles
	Cycles uint64

	// the cpu has encountered a KIL instruction. requires a Reset()
	Killed bool

	// the most recent AddressError returned by the memory. nil if no error
	// has happened since the last Reset()
	BusError error

	// NoUndocumented causes undocumented opcodes to be treated as
	// unimplemented opcodes
	NoUndocumented bool

	// Logging controls whether the CPU makes entries in the central log
	Logging bool

	// the micro-op to run after the next bus transaction
	next microOp

	// the operation, addressing mode and effect decided by the decoder
	operator instructions.Operator
	mode     instructions.AddressingMode
	effect   instructions.Effect

	// addressing latches. base is the address before indexing and is needed
	// by the SHA, SHX, SHY and TAS operators
	addr    uint16
	base    uint16
	index   uint8
	pointer uint8

	// low byte of the JSR operand. held while the return address is pushed
	jsrLow uint8
}

// NewCPU is the preferred method of initialisation for the CPU structure.
// The CPU must be Reset() before it can be used.
func NewCPU(mem cpubus.Memory) *CPU {
	return &CPU{
		mem:     mem,
		SP:      0xfd,
		Read:    true,
		Logging: true,
		next:    opFetchOpcode,
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

// AllowLogging implements the logger.Permission interface.
func (mc *CPU) AllowLogging() bool {
	return mc.Logging
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x %s=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.P.Label(), mc.P)
}

// Reset performs the reset sequence of the 6502. The PC is loaded from the
// reset vector and the CPU will fetch an opcode from that address on the next
// call to Pulse().
//
// The seven cycles taken by the reset sequence are added to the cycle count
// but the bus transactions of those cycles are not performed.
func (mc *CPU) Reset() error {
	mc.Killed = false
	mc.BusError = nil

	mc.P.Set(registers.InterruptDisable, true)
	mc.P.Set(registers.Unused, true)
	mc.P.Set(registers.Decimal, false)

	lo, err := mc.read(cpubus.Reset)
	if err != nil {
		return err
	}
	hi, err := mc.read(cpubus.Reset + 1)
	if err != nil {
		return err
	}

	mc.PC = uint16(lo) | uint16(hi)<<8
	mc.Cycles += 7
	mc.end()

	logger.Logf(mc, "cpu", "reset to %#04x", mc.PC)

	return nil
}

// LoadPC loads the PC with an address and prepares the CPU to fetch an
// opcode from that address. Can only be used at an instruction boundary.
func (mc *CPU) LoadPC(address uint16) error {
	if mc.TCU != 0 {
		return curated.Errorf(MidInstruction, "LoadPC()")
	}
	mc.PC = address
	mc.AddressBus = address
	return nil
}

// InstructionBoundary returns true if the next Pulse() will fetch an opcode.
func (mc *CPU) InstructionBoundary() bool {
	return mc.TCU == 0
}

// Pulse advances the CPU by one bus cycle.
//
// Returns an error if the opcode being decoded is not implemented or if the
// memory returns an error that is not an AddressError.
func (mc *CPU) Pulse() error {
	if mc.Killed {
		return nil
	}

	// the CPU does not advance past an unimplemented opcode. Reset() is
	// required
	if mc.next == opUnimplemented {
		return curated.Errorf(UnimplementedOpcode, mc.IR)
	}

	mc.TCU++
	mc.Cycles++

	var err error
	if mc.Read {
		mc.DataBus, err = mc.mem.Read(mc.AddressBus)
	} else {
		err = mc.mem.Write(mc.AddressBus, mc.DataBus)
	}
	if err != nil {
		if !curated.Is(err, cpubus.AddressError) {
			return err
		}
		mc.BusError = err
		logger.Log(mc, "cpu", err)
	}

	// the micro-op sees the data bus of the previous cycle in PD. the value
	// on the data bus now becomes PD for the next micro-op
	latch := mc.DataBus
	mc.next = mc.step(mc.next)
	mc.PD = latch

	if mc.next == opUnimplemented {
		return curated.Errorf(UnimplementedOpcode, mc.IR)
	}

	return nil
}

// read is used outside of the normal bus cycle. address errors are tolerated
// in the same way as during Pulse()
func (mc *CPU) read(address uint16) (uint8, error) {
	v, err := mc.mem.Read(address)
	if err != nil {
		if !curated.Is(err, cpubus.AddressError) {
			return 0, err
		}
		mc.BusError = err
		logger.Log(mc, "cpu", err)
	}
	return v, nil
}

// end of instruction. the next bus cycle fetches an opcode from the PC
func (mc *CPU) end() microOp {
	mc.AddressBus = mc.PC
	mc.Read = true
	mc.TCU = 0
	mc.next = opFetchOpcode
	return opFetchOpcode
}

// stack address for the current value of SP
func (mc *CPU) stack() uint16 {
	return cpubus.StackOrigin | uint16(mc.SP)
}

// Operator returns the operator of the current instruction. Only meaningful
// once the opcode has been decoded.
func (mc *CPU) Operator() instructions.Operator {
	return mc.operator
}

// MicroOp returns the name of the micro-op that will run after the next bus
// transaction.
func (mc *CPU) MicroOp() string {
	return mc.next.String()
}
