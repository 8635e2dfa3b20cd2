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

// Package monitor is a full screen terminal interface to a debugger Session.
// The screen is divided into panels showing the CPU registers, the PPU
// registers, a disassembly of the instructions at the PC and a page of
// memory.
//
// The monitor is driven by single keypresses:
//
//	space       advance one bus cycle
//	n           advance one instruction
//	c           run until a halt condition is met
//	r           run until the PC reaches an address (prompts for the address)
//	b           toggle a breakpoint at the PC
//	d           dump the CPU state as a graphviz file
//	up/down     scroll the memory panel by one row
//	pgup/pgdn   scroll the memory panel by one page
//	q           quit
//
// Any tcell.Screen can be used. Tests use the tcell simulation screen.
package monitor
