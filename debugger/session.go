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

package debugger

import (
	"slices"

	"github.com/jetsetilly/pulse6502/curated"
	"github.com/jetsetilly/pulse6502/hardware/cpu"
	"github.com/jetsetilly/pulse6502/hardware/memory"
	"github.com/jetsetilly/pulse6502/logger"
)

// Sentinal error patterns for the debugger package.
const (
	NoMemory = "debugger: no memory at %#04x"
)

// the maximum number of cycles StepInstruction() will run before deciding
// the instruction will never complete
const maxInstructionCycles = 16

// Session ties together a CPU and its memory.
type Session struct {
	CPU *cpu.CPU
	Mem *memory.MemoryMap

	// the PPU register block of the memory map. can be nil
	PPU *memory.PPURegisters

	// the granularity of the Step() function
	Quantum Quantum

	// if Trace is not nil it is called with a trace line at the start of
	// every instruction run by the Run*() functions and StepInstruction()
	Trace func(string)

	breakpoints breakpoints
	traps       traps
}

// NewSession is the preferred method of initialisation for the Session type.
// The CPU is not reset.
func NewSession(mc *cpu.CPU, mem *memory.MemoryMap, ppu *memory.PPURegisters) *Session {
	return &Session{
		CPU: mc,
		Mem: mem,
		PPU: ppu,
	}
}

// AllowLogging implements the logger.Permission interface.
func (s *Session) AllowLogging() bool {
	return true
}

// Reset the CPU.
func (s *Session) Reset() error {
	return s.CPU.Reset()
}

// Peek returns the value at the address. Unmapped addresses return zero.
func (s *Session) Peek(address uint16) uint8 {
	v, _ := s.Mem.Peek(address)
	return v
}

// Poke sets the value at the address. The value is written even if the
// address is ROM.
func (s *Session) Poke(address uint16, data uint8) error {
	if err := s.Mem.Poke(address, data); err != nil {
		return curated.Errorf(NoMemory, address)
	}
	return nil
}

// AddBreak adds a breakpoint at the address. Returns false if the breakpoint
// already exists.
func (s *Session) AddBreak(address uint16) bool {
	return s.breakpoints.add(address)
}

// DropBreak removes the breakpoint at the address. Returns false if there
// was no breakpoint.
func (s *Session) DropBreak(address uint16) bool {
	return s.breakpoints.drop(address)
}

// ClearBreaks removes all breakpoints.
func (s *Session) ClearBreaks() {
	s.breakpoints.clear()
}

// Breaks returns a description of all breakpoints.
func (s *Session) Breaks() string {
	return s.breakpoints.String()
}

// AddTrap adds a trap on the memory address. Returns false if the trap
// already exists.
func (s *Session) AddTrap(address uint16) bool {
	return s.traps.add(address, s.Peek(address))
}

// DropTrap removes the trap on the address. Returns false if there was no
// trap.
func (s *Session) DropTrap(address uint16) bool {
	return s.traps.drop(address)
}

// ClearTraps removes all traps.
func (s *Session) ClearTraps() {
	s.traps.clear()
}

// Traps returns a description of all traps.
func (s *Session) Traps() string {
	return s.traps.String()
}

// Pulse advances the CPU by one bus cycle.
func (s *Session) Pulse() error {
	return s.CPU.Pulse()
}

func (s *Session) trace() {
	if s.Trace != nil && s.CPU.InstructionBoundary() {
		s.Trace(TraceLine(s.CPU, s.Mem))
	}
}

// StepInstruction runs the CPU until the next instruction boundary. If the
// CPU is mid-instruction then the current instruction is completed.
func (s *Session) StepInstruction() error {
	if s.CPU.Killed {
		return nil
	}

	s.trace()

	for i := 0; i < maxInstructionCycles; i++ {
		if err := s.CPU.Pulse(); err != nil {
			return err
		}
		if s.CPU.InstructionBoundary() {
			return nil
		}
	}

	return curated.Errorf("debugger: instruction at %#04x did not complete", s.CPU.PC)
}

// Step advances the emulation by the current Quantum.
func (s *Session) Step() error {
	if s.Quantum == QuantumCycle {
		return s.Pulse()
	}
	return s.StepInstruction()
}

// halt checks the halt conditions. called at every instruction boundary
func (s *Session) halt(target uint16, useTarget bool) (Halt, bool) {
	pc := s.CPU.PC

	if s.CPU.Killed {
		return Halt{Reason: HaltKilled, PC: pc}, true
	}

	if sprung := s.traps.check(s.Peek); sprung != "" {
		return Halt{Reason: HaltTrap, PC: pc, Detail: sprung}, true
	}

	if useTarget && pc == target {
		return Halt{Reason: HaltTarget, PC: pc}, true
	}

	if s.breakpoints.check(pc) {
		return Halt{Reason: HaltBreakpoint, PC: pc}, true
	}

	return Halt{}, false
}

// run is the shared loop of the Run*() functions. a limit of zero means no
// limit
func (s *Session) run(limit uint64, target uint16, useTarget bool) (Halt, error) {
	start := s.CPU.Cycles

	// complete the current instruction without checking halt conditions
	if !s.CPU.InstructionBoundary() {
		if err := s.StepInstruction(); err != nil {
			return Halt{}, err
		}
	}

	for {
		if h, ok := s.halt(target, useTarget); ok {
			logger.Logf(s, "debugger", "halted: %s", h)
			return h, nil
		}

		if limit > 0 && s.CPU.Cycles-start >= limit {
			return Halt{Reason: HaltLimit, PC: s.CPU.PC}, nil
		}

		if err := s.StepInstruction(); err != nil {
			return Halt{}, err
		}
	}
}

// Run the emulation until a breakpoint or trap is met, or until the CPU is
// killed. The limit is the maximum number of cycles to run. A limit of zero
// means there is no limit.
func (s *Session) Run(limit uint64) (Halt, error) {
	return s.run(limit, 0, false)
}

// RunUntil runs the emulation until the PC is at the target address at an
// instruction boundary. Breakpoints and traps are also checked. A limit of
// zero means there is no limit.
func (s *Session) RunUntil(target uint16, limit uint64) (Halt, error) {
	return s.run(limit, target, true)
}

// RunCycles runs the emulation for exactly n bus cycles. Halt conditions are
// not checked. Returns early without error if the CPU is killed.
func (s *Session) RunCycles(n uint64) error {
	for i := uint64(0); i < n; i++ {
		if s.CPU.Killed {
			return nil
		}
		if err := s.CPU.Pulse(); err != nil {
			return err
		}
	}
	return nil
}

// IsBreak returns true if there is a breakpoint at the address.
func (s *Session) IsBreak(address uint16) bool {
	return slices.Contains(s.breakpoints.breaks, address)
}
