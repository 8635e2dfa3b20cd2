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

// Package hardware is the base package for the 6502 emulation. The
// sub-packages contain everything required for a headless emulation: the CPU
// in the cpu package and the address space it is plumbed into in the memory
// package.
//
// A machine is assembled by creating a memory map, plumbing it into a new CPU
// and calling Reset(). The CPU is then advanced one bus cycle at a time with
// Pulse(). The debugger package builds instruction stepping and breakpoints on
// top of that.
package hardware
