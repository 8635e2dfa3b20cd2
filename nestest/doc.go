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

// Package nestest checks the execution of the CPU against a trace log in the
// format of the nestest.log file. Each line of the log records the state of
// the CPU at the start of an instruction:
//
//	C000  4C F5 C5  JMP $C5F5                       A:00 X:00 Y:00 P:24 SP:FD PPU:  0, 21 CYC:7
//
// The Harness runs the CPU one instruction at a time. Before each instruction
// the PC is compared with the address in the log. After each instruction the
// registers and the cycle count are compared with the next line of the log.
//
// Older versions of the log record the cycle count in PPU dots, which is
// three times the number of CPU cycles. The Scale field of the Harness should
// be set to three for those logs.
package nestest
