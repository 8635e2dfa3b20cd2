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

// Package instructions defines the 6502 instruction set. The Definitions
// table describes every one of the 256 opcodes, including the undocumented
// opcodes and the opcodes that jam the CPU.
//
// The table is used by the disassembler and by tests. The CPU itself decodes
// opcodes by looking at the bit fields of the opcode and does not consult
// the table during execution.
package instructions
