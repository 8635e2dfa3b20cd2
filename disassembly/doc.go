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

// Package disassembly decodes 6502 machine code into a human readable form.
//
// Disassemble() decodes the single instruction at an address and Sequence()
// decodes a run of consecutive instructions. Memory is accessed through the
// Peeker interface so that disassembly never causes side effects in memory
// mapped peripherals.
//
// The string representation of an Entry follows the layout of the well known
// nestest.log file:
//
//	C000  4C F5 C5  JMP $C5F5
//	C6BD  04 A9    *NOP $A9
//
// Undocumented instructions are marked with an asterisk before the
// mnemonic. Branch operands are shown as the destination address rather than
// the offset.
package disassembly
