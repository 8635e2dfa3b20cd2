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

// Package debugger provides a Session type that drives a CPU and its memory
// for interactive and scripted use. The emulation can be advanced by a single
// bus cycle with Pulse(), by a single instruction with StepInstruction(), or
// run until a halt condition is met with Run(), RunUntil() or RunCycles().
//
// Halt conditions are breakpoints and traps. A breakpoint halts the emulation
// when the PC reaches an address at an instruction boundary. A trap halts the
// emulation when the value at a memory address changes.
//
// The user interfaces to the Session are in the sub-packages. The monitor
// package is a full screen terminal interface, the script package binds the
// Session to Lua, and the easyterm package provides the single keypress
// input used by the STEP mode of the pulse6502 program.
package debugger
