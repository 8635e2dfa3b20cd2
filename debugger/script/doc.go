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

// Package script binds a debugger Session to a Lua interpreter. Scripts can
// drive the CPU, inspect and change registers and memory, and print to the
// output given to NewScript().
//
// The following functions are available to Lua scripts:
//
//	pulse()                 advance one bus cycle
//	step()                  advance one instruction
//	run([limit])            run until a halt condition. returns the halt as a string
//	rununtil(pc, [limit])   run until the PC reaches the address
//	reset()                 reset the CPU
//	reg(name)               value of a register (pc, a, x, y, sp, p, ir, tcu)
//	setreg(name, value)     change a register
//	peek(address)           value in memory
//	poke(address, value)    change memory
//	cycles()                number of bus cycles since the CPU was created
//	tcu()                   number of cycles into the current instruction
//	killed()                true if the CPU has been killed
//	breakpoint(address)     add a breakpoint
//	disasm(address)         disassembly of the instruction at the address
//	trace()                 nestest style trace line for the current state
//
// Register names are not case sensitive. Errors raised by the emulation are
// raised as Lua errors and will stop the script.
package script
