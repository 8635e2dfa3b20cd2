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

// Package singlestep runs the 6502 single-step tests maintained by Thom
// Harte against the CPU. Each test describes the state of the CPU and memory
// before and after a single instruction, along with every bus transaction
// made by the instruction.
//
// https://github.com/SingleStepTests/65x02
//
// The test files are large and are not included in the repository. Copy the
// files for the opcodes you want to test from the 6502/v1 directory of the
// project to the 6502/v1 directory in this package. The test is skipped if
// there are no files.
//
// Tests that rely on behaviour the emulation does not implement are skipped.
// Specifically, decimal mode arithmetic, the address corruption of the
// unstable store instructions and the KIL instructions.
package singlestep
